package store

import (
	"context"
	"database/sql"
	"strconv"

	perr "chatexport/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// sqliteAdapter adapts database/sql over modernc sqlite to our seams
type sqliteAdapter struct {
	db *sql.DB
}

var (
	_ RowQuerier = (*sqliteAdapter)(nil)
	_ TxRunner   = (*sqliteAdapter)(nil)
	_ Pinger     = (*sqliteAdapter)(nil)
)

// Exec executes a statement and returns its command tag
func (a *sqliteAdapter) Exec(ctx context.Context, q string, args ...any) (CommandTag, error) {
	res, err := a.db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, perr.FromSQLite(err, "exec")
	}
	return sqlTag{res: res}, nil
}

// Query runs a query and returns an iterable result set
func (a *sqliteAdapter) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	rs, err := a.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, perr.FromSQLite(err, "query")
	}
	return &sqlRows{rs: rs}, nil
}

// QueryRow runs a query expected to return at most one row
func (a *sqliteAdapter) QueryRow(ctx context.Context, q string, args ...any) Row {
	return sqlRow{row: a.db.QueryRowContext(ctx, q, args...)}
}

// Tx runs fn inside a transaction, rolling back on error or panic
func (a *sqliteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return perr.FromSQLite(err, "begin")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()
	if err := fn(&sqlTxAdapter{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return perr.FromSQLite(err, "commit")
	}
	return nil
}

// Ping reports whether the database file is reachable
func (a *sqliteAdapter) Ping(ctx context.Context) error {
	if err := a.db.PingContext(ctx); err != nil {
		return perr.FromSQLite(err, "ping")
	}
	return nil
}

// Close releases the underlying pool
func (a *sqliteAdapter) Close() error { return a.db.Close() }

// sqlTxAdapter exposes the querier surface scoped to one transaction
type sqlTxAdapter struct {
	tx *sql.Tx
}

var _ RowQuerier = (*sqlTxAdapter)(nil)

func (a *sqlTxAdapter) Exec(ctx context.Context, q string, args ...any) (CommandTag, error) {
	res, err := a.tx.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, perr.FromSQLite(err, "tx exec")
	}
	return sqlTag{res: res}, nil
}

func (a *sqlTxAdapter) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	rs, err := a.tx.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, perr.FromSQLite(err, "tx query")
	}
	return &sqlRows{rs: rs}, nil
}

func (a *sqlTxAdapter) QueryRow(ctx context.Context, q string, args ...any) Row {
	return sqlRow{row: a.tx.QueryRowContext(ctx, q, args...)}
}

// sqlRows adapts *sql.Rows to the Rows seam
type sqlRows struct {
	rs *sql.Rows
}

func (r *sqlRows) Next() bool             { return r.rs.Next() }
func (r *sqlRows) Scan(dest ...any) error { return r.rs.Scan(dest...) }
func (r *sqlRows) Err() error             { return r.rs.Err() }
func (r *sqlRows) Close()                 { _ = r.rs.Close() }

// Columns returns the column names, empty on driver error
func (r *sqlRows) Columns() []string {
	cols, err := r.rs.Columns()
	if err != nil {
		return nil
	}
	return cols
}

// sqlRow adapts *sql.Row to the Row seam
type sqlRow struct {
	row *sql.Row
}

func (r sqlRow) Scan(dest ...any) error { return r.row.Scan(dest...) }

// sqlTag adapts sql.Result to CommandTag
type sqlTag struct {
	res sql.Result
}

func (t sqlTag) RowsAffected() int64 {
	n, err := t.res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}

func (t sqlTag) String() string {
	return "rows affected " + strconv.FormatInt(t.RowsAffected(), 10)
}
