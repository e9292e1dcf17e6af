// Package migrations bootstraps the leaves table with goose. Each supported
// dialect has its own directory of embedded SQL files.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/pressly/goose/v3"
)

// Goose dialect names accepted by [Migrate].
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var dialectDirs = map[string]string{
	DialectPostgres: "postgres",
	DialectSQLite:   "sqlite",
}

// Migrate applies every pending schema file for dialect to db.
func Migrate(db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("func", "migrations.Migrate").Msgf(format, v...)
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Str("func", "migrations.Migrate").Msgf(format, v...)
}
