package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is the root of every "record does not exist" error. The
	// entity-specific sentinels below wrap it, so errors.Is(err, ErrNotFound)
	// matches all of them.
	ErrNotFound = errors.New("not found")

	// ErrUserNotFound is returned when a user lookup, or a foreign key to
	// users, does not resolve.
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// ErrDeckNotFound is returned when a deck lookup, or a foreign key to
	// decks, does not resolve.
	ErrDeckNotFound = fmt.Errorf("deck %w", ErrNotFound)

	// ErrCardNotFound is returned when a card lookup does not resolve or an
	// update/delete affected no row.
	ErrCardNotFound = fmt.Errorf("card %w", ErrNotFound)

	// ErrUserAlreadyExists is returned when an insert violates the unique
	// username or email constraint.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrQuotaExhausted is returned by CommitGenerationCall when the atomic
	// conditional update matched no row: the window is open and the counter
	// already reached the limit.
	ErrQuotaExhausted = errors.New("generation quota exhausted")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
