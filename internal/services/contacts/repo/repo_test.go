package repo

import (
	"context"
	"path/filepath"
	"testing"

	perr "chatexport/internal/platform/errors"
	kit "chatexport/internal/platform/testkit"
	"chatexport/internal/services/contacts/domain"
)

func TestLoadReadsSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := kit.WriteFile(t, dir, "contacts.csv",
		"Name,Phone\nAmy Li,+15551234567\nBob Chen,+15559876543\n")

	got, err := NewCSV(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []domain.Contact{
		{Name: "Amy Li", Phone: "+15551234567"},
		{Name: "Bob Chen", Phone: "+15559876543"},
	}
	if len(got) != len(want) {
		t.Fatalf("rows = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadSkipsBlankNamesAndTolerates(t *testing.T) {
	dir := t.TempDir()
	path := kit.WriteFile(t, dir, "contacts.csv",
		"name,phone,email\n  ,+15550000000,x@y.z\nAmy Li,+15551234567,amy@y.z\nSolo\n")

	got, err := NewCSV(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("rows = %d, want 2: %+v", len(got), got)
	}
	if got[0].Name != "Amy Li" || got[0].Phone != "+15551234567" {
		t.Fatalf("row 0 = %+v", got[0])
	}
	// row without a phone column keeps an empty phone
	if got[1].Name != "Solo" || got[1].Phone != "" {
		t.Fatalf("row 1 = %+v", got[1])
	}
}

func TestLoadKeepsDuplicateNamesInFileOrder(t *testing.T) {
	dir := t.TempDir()
	path := kit.WriteFile(t, dir, "contacts.csv",
		"Name,Phone\nAmy Li,+15551111111\nAmy Li,+15552222222\n")

	got, err := NewCSV(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || got[0].Phone != "+15551111111" {
		t.Fatalf("rows = %+v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := NewCSV(filepath.Join(dir, "nope.csv")).Load(context.Background())
		if !perr.IsCode(err, perr.ErrorCodeDB) {
			t.Fatalf("err = %v, want DB code", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := kit.WriteFile(t, dir, "empty.csv", "")
		_, err := NewCSV(path).Load(context.Background())
		if !perr.IsCode(err, perr.ErrorCodeDB) {
			t.Fatalf("err = %v, want DB code", err)
		}
	})

	t.Run("wrong header", func(t *testing.T) {
		path := kit.WriteFile(t, dir, "bad.csv", "First,Number\nAmy,1\n")
		_, err := NewCSV(path).Load(context.Background())
		if !perr.IsCode(err, perr.ErrorCodeDB) {
			t.Fatalf("err = %v, want DB code", err)
		}
	})
}
