package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the requested login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSnapshotNotFound is returned when the user has never pushed a snapshot.
	ErrSnapshotNotFound = errors.New("snapshot was not found")

	// ErrEntityNotFound is returned by local delete mutators for an unknown id.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrMissingEntityID is returned when saving a collection entity without an id.
	ErrMissingEntityID = errors.New("entity id is required")

	// ErrUnknownCollection is returned for a collection kind the local store
	// does not manage.
	ErrUnknownCollection = errors.New("unknown collection kind")

	// ErrEmptyOwner is returned when claiming the local document without a user id.
	ErrEmptyOwner = errors.New("owner user id is required")
)

// Low-level database operation errors. These are wrapped together with the
// driver error so both can be matched.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot build a statement.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingPayload is returned when an entity cannot be (un)marshaled.
	ErrEncodingPayload = errors.New("failed to encode payload")
)
