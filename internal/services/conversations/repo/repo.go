// Package repo queries the message store
package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"chatexport/internal/core/phone"
	"chatexport/internal/modkit/repokit"
	perr "chatexport/internal/platform/errors"
	"chatexport/internal/services/conversations/domain"
)

type (
	sqlite struct{ q repokit.Queryer }
	binder struct{}
)

// NewSQLite constructs a repo binder for the sqlite message store
func NewSQLite() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &sqlite{q: q} }

// Storage defines the conversations repository
type Storage interface {
	// LocateDirectChat returns the chat id of the unique direct chat
	// whose single participant matches any of the identity forms
	LocateDirectChat(ctx context.Context, forms phone.Forms) (int64, error)

	// Messages returns the textual messages of a chat in store order
	Messages(ctx context.Context, chatID int64) ([]domain.MessageRecord, error)
}

// LocateDirectChat implements Storage
// each identity form contributes its own handle predicate, empty forms
// are skipped so a short identity never degenerates into LIKE '%%'
func (s *sqlite) LocateDirectChat(ctx context.Context, forms phone.Forms) (int64, error) {
	var preds []string
	var args []any
	add := func(pred string, arg string) {
		preds = append(preds, pred)
		args = append(args, arg)
	}
	if forms.Raw != "" {
		add("h.id = ?", forms.Raw)
		add("h.id LIKE ?", "%"+forms.Raw)
	}
	if forms.Digits != "" {
		add("h.id LIKE ?", "%"+forms.Digits+"%")
	}
	if forms.Last10 != "" {
		add("h.id LIKE ?", "%"+forms.Last10)
	}
	if len(preds) == 0 {
		return 0, perr.NotFoundf("identity has no usable form")
	}

	// a chat qualifies only when its full membership is a single handle,
	// a group chat with one matching participant must not win
	q := `
		SELECT chj.chat_id
		FROM chat_handle_join chj
		JOIN handle h ON h.rowid = chj.handle_id
		WHERE ` + strings.Join(preds, " OR ") + `
		GROUP BY chj.chat_id
		HAVING (SELECT COUNT(*) FROM chat_handle_join x WHERE x.chat_id = chj.chat_id) = 1
		ORDER BY chj.chat_id
		LIMIT 1`

	var chatID int64
	if err := s.q.QueryRow(ctx, q, args...).Scan(&chatID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, perr.NotFoundf("no direct conversation for identity")
		}
		return 0, perr.FromSQLite(err, "locate direct chat")
	}
	return chatID, nil
}

// Messages implements Storage
func (s *sqlite) Messages(ctx context.Context, chatID int64) ([]domain.MessageRecord, error) {
	q := `
		SELECT m.date, m.text, m.is_from_me
		FROM message m
		JOIN chat_message_join cmj ON cmj.message_id = m.rowid
		WHERE cmj.chat_id = ?
			AND m.text IS NOT NULL AND m.text <> ''
		ORDER BY m.date ASC`

	rows, err := s.q.Query(ctx, q, chatID)
	if err != nil {
		return nil, perr.FromSQLite(err, "read messages")
	}
	defer rows.Close()

	var out []domain.MessageRecord
	for rows.Next() {
		var (
			date     sql.NullInt64
			text     string
			fromSelf int64
		)
		if err := rows.Scan(&date, &text, &fromSelf); err != nil {
			return nil, perr.FromSQLite(err, "scan message")
		}
		// a NULL date falls back to the store epoch rather than
		// aborting the whole read
		out = append(out, domain.MessageRecord{
			DateRaw:  date.Int64,
			Text:     text,
			FromSelf: fromSelf == 1,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromSQLite(err, "iterate messages")
	}
	return out, nil
}
