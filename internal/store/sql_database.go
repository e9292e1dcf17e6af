package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect names the database/sql driver behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

func (d Dialect) placeholder() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// DB is a database handle bound to a dialect, an error classifier and a logger.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN: postgres:// and
// postgresql:// URLs use pgx, anything else is treated as an SQLite file.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies the embedded schema for the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect), db.logger)
}

// Dialect reports the driver the DB was opened with.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
