package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLeaveNotFound is returned when a delete targets an id that matches no
	// leave record.
	ErrLeaveNotFound = errors.New("leave request was not found")

	// ErrLeaveNotSaved is returned when an INSERT completes without returning
	// the created row.
	ErrLeaveNotSaved = errors.New("leave request was not saved")

	// ErrUnsupportedDSN is returned when a DSN names neither a postgres URL nor
	// an SQLite file.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan leave row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan leave rows")
)

// Idempotency store errors.
var (
	ErrOpeningIdempotencyStore = errors.New("error opening idempotency store")
	ErrReadingIdempotencyStore = errors.New("error reading idempotency store")
	ErrWritingIdempotencyStore = errors.New("error writing idempotency store")
)
