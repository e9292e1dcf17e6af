package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/models"
)

// leaveRepository is the database/sql implementation of [LeaveRepository]
// for both the postgres and SQLite dialects.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type leaveRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLeaveRepository constructs a [LeaveRepository] backed by db.
func NewLeaveRepository(db *DB, logger *logger.Logger) LeaveRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating leave repository")
	return &leaveRepository{
		db:     db,
		logger: logger,
	}
}

func (r *leaveRepository) ListLeaves(ctx context.Context) ([]models.LeaveRequest, error) {
	return r.list(ctx, "", "*leaveRepository.ListLeaves")
}

func (r *leaveRepository) ListLeavesByName(ctx context.Context, name string) ([]models.LeaveRequest, error) {
	return r.list(ctx, name, "*leaveRepository.ListLeavesByName")
}

func (r *leaveRepository) list(ctx context.Context, name, funcName string) ([]models.LeaveRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListLeavesQuery(r.db.dialect, name)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Bool("retryable", r.db.retryable(err)).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	leaves := make([]models.LeaveRequest, 0)
	for rows.Next() {
		leave, err := scanLeave(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		leaves = append(leaves, leave)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return leaves, nil
}

// CreateLeave inserts leave with a single INSERT ... RETURNING statement.
func (r *leaveRepository) CreateLeave(ctx context.Context, leave models.LeaveRequest) (models.LeaveRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateLeaveQuery(r.db.dialect, leave)
	if err != nil {
		log.Err(err).Str("func", "*leaveRepository.CreateLeave").Msg("error building query")
		return models.LeaveRequest{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*leaveRepository.CreateLeave").
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error executing insert")
		return models.LeaveRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	created, err := scanLeave(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Error().Str("func", "*leaveRepository.CreateLeave").Msg("insert returned no row")
		return models.LeaveRequest{}, ErrLeaveNotSaved
	}
	if err != nil {
		log.Err(err).Str("func", "*leaveRepository.CreateLeave").Msg("error scanning created row")
		return models.LeaveRequest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	log.Debug().Str("func", "*leaveRepository.CreateLeave").Int64("id", created.ID).Msg("leave created")
	return created, nil
}

// DeleteLeave removes one record with a single DELETE ... RETURNING statement.
func (r *leaveRepository) DeleteLeave(ctx context.Context, id int64) (models.LeaveRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteLeaveQuery(r.db.dialect, id)
	if err != nil {
		log.Err(err).Str("func", "*leaveRepository.DeleteLeave").Msg("error building query")
		return models.LeaveRequest{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*leaveRepository.DeleteLeave").
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error executing delete")
		return models.LeaveRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	deleted, err := scanLeave(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*leaveRepository.DeleteLeave").Int64("id", id).Msg("no leave with given id")
		return models.LeaveRequest{}, fmt.Errorf("%w: id %d", ErrLeaveNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "*leaveRepository.DeleteLeave").Msg("error scanning deleted row")
		return models.LeaveRequest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return deleted, nil
}
