package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
)

// Storages aggregates the persistence backends used by the server.
type Storages struct {
	LeaveRepository LeaveRepository

	// IdempotencyStore is nil when idempotent create is disabled.
	IdempotencyStore IdempotencyStore

	db *DB
}

// NewStorages connects to the configured database, bootstraps the schema and
// opens the idempotency store when a path is configured.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Str("func", "NewStorages").Msg("error bootstrapping schema")
		return nil, err
	}

	storages := &Storages{
		LeaveRepository: NewLeaveRepository(db, log),
		db:              db,
	}

	if cfg.IdempotencyPath != "" {
		idempotencyStore, err := NewBoltIdempotencyStore(cfg.IdempotencyPath, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		storages.IdempotencyStore = idempotencyStore
	}

	return storages, nil
}

// Close releases the database connection and the idempotency store.
func (s *Storages) Close() error {
	var errs []error
	if s.IdempotencyStore != nil {
		errs = append(errs, s.IdempotencyStore.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
