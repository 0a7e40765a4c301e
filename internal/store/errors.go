package store

import (
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation is returned when a write breaks a unique,
	// primary key or foreign key constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrForeignKey is returned together with ErrConstraintViolation when the
	// write references a row that does not exist.
	ErrForeignKey = errors.New("foreign key constraint failed")

	// ErrClientHasReports is returned when deleting a client that still owns
	// reports.
	ErrClientHasReports = fmt.Errorf("%w: client still has reports", ErrConstraintViolation)

	// ErrMissingField is returned when a required column would be left empty.
	ErrMissingField = errors.New("required field is empty")
)

// mapError translates driver errors into the package sentinels. Anything it
// does not recognize is returned as is.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}

	code := se.Code()

	switch {
	case code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%w: %w: %s", ErrConstraintViolation, ErrForeignKey, se.Error())
	case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE,
		code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%w: %s", ErrConstraintViolation, se.Error())
	default:
		return err
	}
}
