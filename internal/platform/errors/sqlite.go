package errors

// SQLite-specific helpers for mapping driver errors to project ErrorCode and retry semantics

import (
	"context"
	stderrs "errors"
	"strings"

	sqlite "modernc.org/sqlite"
)

// Primary SQLite result codes we care about
// extended codes carry the primary code in the low byte
const (
	sqliteErrBusy       = 5
	sqliteErrLocked     = 6
	sqliteErrReadOnly   = 8
	sqliteErrIOErr      = 10
	sqliteErrCorrupt    = 11
	sqliteErrCantOpen   = 14
	sqliteErrConstraint = 19
	sqliteErrNotADB     = 26
)

// ExtractSQLiteError returns (*sqlite.Error, true) if the root cause is a driver error
func ExtractSQLiteError(err error) (*sqlite.Error, bool) {
	var se *sqlite.Error
	if stderrs.As(Root(err), &se) {
		return se, true
	}
	return nil, false
}

// IsSQLiteCode reports whether the error carries the given primary result code
func IsSQLiteCode(err error, code int) bool {
	se, ok := ExtractSQLiteError(err)
	return ok && se.Code()&0xff == code
}

// Human-friendly predicates for common result classes.

// IsBusy reports whether the store was busy or locked by another connection
func IsBusy(err error) bool {
	return IsSQLiteCode(err, sqliteErrBusy) || IsSQLiteCode(err, sqliteErrLocked)
}

// IsCorrupt reports whether the store file is damaged or not a database at all
func IsCorrupt(err error) bool {
	return IsSQLiteCode(err, sqliteErrCorrupt) || IsSQLiteCode(err, sqliteErrNotADB)
}

// IsCantOpen reports whether the store file could not be opened
func IsCantOpen(err error) bool { return IsSQLiteCode(err, sqliteErrCantOpen) }

// IsRetryable reports whether a retry may succeed
// busy and locked are the only transient classes a read-only consumer sees
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	return IsBusy(err)
}

// FromSQLite maps any error coming out of the store layer into a project *Error
// non-driver errors pass through to a generic DB wrap
func FromSQLite(err error, op string) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err // already ours
	}
	switch {
	case IsBusy(err):
		return WithOp(Wrapf(err, ErrorCodeUnavailable, "store busy"), op)
	case IsCorrupt(err):
		return WithOp(Wrapf(err, ErrorCodeDB, "store corrupt"), op)
	case IsCantOpen(err):
		return WithOp(Wrapf(err, ErrorCodeDB, "store unreadable"), op)
	}
	// database/sql surfaces some open failures as plain strings
	if strings.Contains(err.Error(), "unable to open database") {
		return WithOp(Wrapf(err, ErrorCodeDB, "store unreadable"), op)
	}
	return WithOp(Wrapf(err, ErrorCodeDB, "store query failed"), op)
}
