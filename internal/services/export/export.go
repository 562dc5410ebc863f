// Package export writes conversation artifacts to disk
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	perr "chatexport/internal/platform/errors"
	"chatexport/internal/services/conversations/domain"
)

// Write serializes records as a pretty printed JSON array at path
// the file is created or overwritten and the path is returned
// non ASCII text is preserved literally
func Write(records []domain.ExportRecord, path string) (string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", perr.DBf("create export dir %q: %v", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", perr.DBf("create export file %q: %v", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		_ = f.Close()
		return "", perr.JSONErrf("encode export: %v", err)
	}
	if err := f.Close(); err != nil {
		return "", perr.DBf("close export file %q: %v", path, err)
	}
	return path, nil
}

// DefaultPath builds the timestamped artifact name used when the
// caller does not pick one: <dir>/<name>_<yyyy-mm-dd_hhmmss>.json
func DefaultPath(dir, name string, now time.Time) string {
	base := fmt.Sprintf("%s_%s.json", sanitizeName(name), now.Format("2006-01-02_150405"))
	return filepath.Join(dir, base)
}

// sanitizeName keeps the contact name readable while staying a single path element
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "conversation"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\':
			return '-'
		}
		return r
	}, name)
}
