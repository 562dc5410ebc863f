package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"
)

// openMessages opens the sqlite message store and verifies connectivity
func openMessages(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	mc := cfg.Messages.normalized()
	if mc.Path == "" {
		return nil, fmt.Errorf("messages: empty database path")
	}

	db, err := sql.Open("sqlite", messagesDSN(mc))
	if err != nil {
		return nil, fmt.Errorf("messages open: %w", err)
	}
	if mc.MaxConns > 0 {
		db.SetMaxOpenConns(mc.MaxConns)
	}

	a := &sqliteAdapter{db: db}

	// quick retry to ride out a transient lock on the file
	var pingErr error
	for attempt := 1; attempt <= 3; attempt++ {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		pingErr = a.Ping(pctx)
		cancel()
		if pingErr == nil {
			break
		}
		s.Log.Warn().Err(pingErr).Int("attempt", attempt).Msg("message store ping failed")
		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * 250 * time.Millisecond):
		}
	}
	if pingErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("messages ping: %w", pingErr)
	}

	s.Log.Info().Str("path", mc.Path).Bool("read_only", mc.ReadOnly).Msg("message store opened")
	return a, nil
}

// messagesDSN builds the modernc sqlite DSN for the configured file
func messagesDSN(mc MessagesConfig) string {
	q := url.Values{}
	if mc.ReadOnly {
		q.Set("mode", "ro")
	}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", mc.BusyTimeout.Milliseconds()))
	return "file:" + mc.Path + "?" + q.Encode()
}
