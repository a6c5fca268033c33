package store

import "errors"

// Sentinel errors returned by the client draft queue. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrLocalDraftNotFound is returned by Get when no record is queued for
	// the requested draft id.
	ErrLocalDraftNotFound = errors.New("local draft not found")

	// ErrLocalStoreUnavailable is returned (wrapped) when the local database
	// cannot be opened or migrated.
	ErrLocalStoreUnavailable = errors.New("local draft store unavailable")
)

// Sentinel errors of the server-side draft repository.
var (
	// ErrVersionConflict is returned when the version supplied by the client
	// does not match the current version of the stored draft.
	ErrVersionConflict = errors.New("draft version conflict occurred")

	// ErrDraftNotFound is returned when a server-side draft does not exist.
	ErrDraftNotFound = errors.New("draft was not found")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a draft row fails.
	ErrScanningRow = errors.New("failed to scan local draft row")
)
