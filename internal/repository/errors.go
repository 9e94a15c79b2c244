package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

var (
	// ErrNotFound signals that the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate signals a unique-constraint violation on insert.
	ErrDuplicate = errors.New("duplicate record")
	// ErrVersionConflict signals that a guarded update matched no row
	// because the row moved under a concurrent writer.
	ErrVersionConflict = errors.New("version conflict")
)

// DatabaseError normalizes any underlying store failure (timeout,
// disconnect, constraint breakage) into a single non-retryable condition
// carrying a human-readable cause. Callers must not infer business
// outcomes from it.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error during %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// wrapError maps driver-level failures onto the repository error set.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicate
	}
	return &DatabaseError{Op: op, Err: err}
}
