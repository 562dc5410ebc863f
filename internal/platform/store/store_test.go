package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T, readOnly bool, path string) *Store {
	t.Helper()
	s, err := Open(context.Background(), Config{
		AppName: "store-test",
		Messages: MessagesConfig{
			Enabled:     true,
			Path:        path,
			ReadOnly:    readOnly,
			BusyTimeout: time.Second,
		},
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestOpenDisabledLeavesSeamNil(t *testing.T) {
	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Messages != nil {
		t.Fatal("expected nil Messages seam when disabled")
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard on empty store: %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), Config{Messages: MessagesConfig{Enabled: true}})
	if err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestExecQueryRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "messages.db")
	s := openTestStore(t, false, path)

	if _, err := s.Messages.Exec(ctx, `CREATE TABLE note (id INTEGER PRIMARY KEY, body TEXT)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	tag, err := s.Messages.Exec(ctx, `INSERT INTO note (body) VALUES (?), (?)`, "a", "b")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got := tag.RowsAffected(); got != 2 {
		t.Fatalf("RowsAffected = %d, want 2", got)
	}

	rows, err := s.Messages.Query(ctx, `SELECT body FROM note ORDER BY id`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()

	var got []string
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			t.Fatalf("scan: %v", err)
		}
		got = append(got, b)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows err: %v", err)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("rows = %v", got)
	}
	if cols := rows.Columns(); len(cols) != 1 || cols[0] != "body" {
		t.Fatalf("columns = %v", cols)
	}

	var n int
	if err := s.Messages.QueryRow(ctx, `SELECT COUNT(*) FROM note`).Scan(&n); err != nil {
		t.Fatalf("query row: %v", err)
	}
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
}

func TestTxRollbackOnError(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "messages.db")
	s := openTestStore(t, false, path)

	if _, err := s.Messages.Exec(ctx, `CREATE TABLE note (id INTEGER PRIMARY KEY, body TEXT)`); err != nil {
		t.Fatalf("create: %v", err)
	}

	sentinel := errors.New("boom")
	err := s.Messages.Tx(ctx, func(q RowQuerier) error {
		if _, err := q.Exec(ctx, `INSERT INTO note (body) VALUES (?)`, "doomed"); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Tx err = %v, want sentinel", err)
	}

	var n int
	if err := s.Messages.QueryRow(ctx, `SELECT COUNT(*) FROM note`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("count after rollback = %d, want 0", n)
	}
}

func TestTxCommit(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "messages.db")
	s := openTestStore(t, false, path)

	if _, err := s.Messages.Exec(ctx, `CREATE TABLE note (id INTEGER PRIMARY KEY, body TEXT)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := s.Messages.Tx(ctx, func(q RowQuerier) error {
		_, err := q.Exec(ctx, `INSERT INTO note (body) VALUES (?)`, "kept")
		return err
	})
	if err != nil {
		t.Fatalf("Tx: %v", err)
	}

	var body string
	if err := s.Messages.QueryRow(ctx, `SELECT body FROM note`).Scan(&body); err != nil {
		t.Fatalf("query row: %v", err)
	}
	if body != "kept" {
		t.Fatalf("body = %q", body)
	}
}

func TestGuardPingsMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.db")
	s := openTestStore(t, false, path)
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard: %v", err)
	}
}
