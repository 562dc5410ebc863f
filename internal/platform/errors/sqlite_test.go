package errors

import (
	"context"
	stderrs "errors"
	"testing"
)

func TestFromSQLiteVariants(t *testing.T) {
	// nil passthrough
	if FromSQLite(nil, "x") != nil {
		t.Fatalf("FromSQLite(nil) should be nil")
	}

	// already-ours passthrough keeps the original code
	ours := NoMatchf("no candidate")
	if got := FromSQLite(ours, "resolve"); CodeOf(got) != ErrorCodeNoMatch {
		t.Fatalf("FromSQLite rewrapped a project error: %v", got)
	}

	// open failures surfaced as plain strings by database/sql
	open := stderrs.New("unable to open database file")
	if got := FromSQLite(open, "open"); CodeOf(got) != ErrorCodeDB {
		t.Fatalf("open failure mapped to %v", CodeOf(got))
	}

	// anything else lands on the generic DB wrap with op attached
	got := FromSQLite(stderrs.New("boom"), "messages")
	if CodeOf(got) != ErrorCodeDB {
		t.Fatalf("generic error mapped to %v", CodeOf(got))
	}
	if e, ok := As(got); !ok || e.Op() != "messages" {
		t.Fatalf("op not attached: %v", got)
	}
	if Root(got).Error() != "boom" {
		t.Fatalf("cause lost: %v", Root(got))
	}
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(nil) {
		t.Fatalf("nil should not be retryable")
	}
	if IsRetryable(context.Canceled) || IsRetryable(context.DeadlineExceeded) {
		t.Fatalf("context errors are not retryable")
	}
	if IsRetryable(stderrs.New("random")) {
		t.Fatalf("foreign errors are not retryable")
	}
}

func TestSQLitePredicatesOnForeignErrors(t *testing.T) {
	e := stderrs.New("not a driver error")
	if IsBusy(e) || IsCorrupt(e) || IsCantOpen(e) {
		t.Fatalf("predicates should be false for non-driver errors")
	}
	if _, ok := ExtractSQLiteError(e); ok {
		t.Fatalf("ExtractSQLiteError should fail for non-driver errors")
	}
}
