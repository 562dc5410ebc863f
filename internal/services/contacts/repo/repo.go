// Package repo reads the address book CSV snapshot
package repo

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	perr "chatexport/internal/platform/errors"
	"chatexport/internal/services/contacts/domain"
)

// Storage loads the contact snapshot
type Storage interface {
	Load(ctx context.Context) ([]domain.Contact, error)
}

// csvSnapshot reads a Name,Phone CSV produced by the refresh command
type csvSnapshot struct {
	path string
}

// NewCSV constructs a snapshot reader over the given file
func NewCSV(path string) Storage { return &csvSnapshot{path: path} }

// Load re-reads the snapshot from disk on every call
// rows with an empty trimmed name are skipped, duplicates keep file order
func (s *csvSnapshot) Load(ctx context.Context) ([]domain.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, perr.DBf("open contact snapshot %q: %v", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate extra columns

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, perr.DBf("contact snapshot %q is empty", s.path)
		}
		return nil, perr.DBf("read contact snapshot header: %v", err)
	}
	nameIdx, phoneIdx := columnIndexes(header)
	if nameIdx < 0 || phoneIdx < 0 {
		return nil, perr.DBf("contact snapshot %q missing Name/Phone columns", s.path)
	}

	var out []domain.Contact
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, perr.DBf("read contact snapshot row: %v", err)
		}
		if nameIdx >= len(rec) {
			continue
		}
		name := strings.TrimSpace(rec[nameIdx])
		if name == "" {
			continue
		}
		phone := ""
		if phoneIdx < len(rec) {
			phone = strings.TrimSpace(rec[phoneIdx])
		}
		out = append(out, domain.Contact{Name: name, Phone: phone})
	}
	return out, nil
}

// columnIndexes resolves Name and Phone columns case insensitively
func columnIndexes(header []string) (name, phone int) {
	name, phone = -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			if name < 0 {
				name = i
			}
		case "phone":
			if phone < 0 {
				phone = i
			}
		}
	}
	return name, phone
}
