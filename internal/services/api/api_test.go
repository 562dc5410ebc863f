package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"chatexport/internal/platform/config"
	phttp "chatexport/internal/platform/net/http"
	"chatexport/internal/platform/store"
	kit "chatexport/internal/platform/testkit"
)

// mountTestAPI stands up the whole API over throwaway snapshot and store files
func mountTestAPI(t *testing.T) *chi.Mux {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	snapshot := kit.WriteFile(t, dir, "contacts.csv",
		"Name,Phone\nAmy Li,+15551234567\n")
	t.Setenv("SERVICE_CONTACTS_SNAPSHOT", snapshot)
	t.Setenv("CORE_EXPORT_DIR", filepath.Join(dir, "exports"))

	st, err := store.Open(ctx, store.Config{
		Messages: store.MessagesConfig{
			Enabled:     true,
			Path:        filepath.Join(dir, "chat.db"),
			BusyTimeout: time.Second,
		},
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	stmts := []string{
		`CREATE TABLE handle (rowid INTEGER PRIMARY KEY, id TEXT)`,
		`CREATE TABLE chat_handle_join (chat_id INTEGER, handle_id INTEGER)`,
		`CREATE TABLE message (rowid INTEGER PRIMARY KEY, date INTEGER, text TEXT, is_from_me INTEGER)`,
		`CREATE TABLE chat_message_join (chat_id INTEGER, message_id INTEGER)`,
		`INSERT INTO handle (rowid, id) VALUES (1, '+15551234567')`,
		`INSERT INTO chat_handle_join (chat_id, handle_id) VALUES (1, 1)`,
		`INSERT INTO message (rowid, date, text, is_from_me) VALUES (10, 0, 'hi', 1)`,
		`INSERT INTO chat_message_join (chat_id, message_id) VALUES (1, 10)`,
	}
	for _, stmt := range stmts {
		if _, err := st.Messages.Exec(ctx, stmt); err != nil {
			t.Fatalf("fixture: %v", err)
		}
	}

	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), Options{
		Config: config.New(),
		Store:  st,
	})
	return m
}

func TestMountedHealth(t *testing.T) {
	m := mountTestAPI(t)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/meta/health", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestMountedLookup(t *testing.T) {
	m := mountTestAPI(t)
	req := httptest.NewRequest("POST", "/api/v1/contacts/lookup", strings.NewReader(`{"name":"amy"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data struct {
			Phone string `json:"phone"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Data.Phone != "+15551234567" {
		t.Fatalf("phone = %q", env.Data.Phone)
	}
}

func TestMountedExportEndToEnd(t *testing.T) {
	m := mountTestAPI(t)
	req := httptest.NewRequest("POST", "/api/v1/conversations/export", strings.NewReader(`{"name":"Amy Li"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data struct {
			Path     string `json:"path"`
			Messages int    `json:"messages"`
			ExportID string `json:"export_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Data.Messages != 1 || env.Data.Path == "" || env.Data.ExportID == "" {
		t.Fatalf("data = %+v", env.Data)
	}
}

func TestMountedExportNoMatchIs404(t *testing.T) {
	m := mountTestAPI(t)
	req := httptest.NewRequest("POST", "/api/v1/conversations/export", strings.NewReader(`{"name":"Zebadiah"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, req)
	if rec.Code != 404 {
		t.Fatalf("status = %d, want 404, body %s", rec.Code, rec.Body.String())
	}
}
