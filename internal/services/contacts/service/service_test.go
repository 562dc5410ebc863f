package service

import (
	"context"
	"errors"
	"testing"

	perr "chatexport/internal/platform/errors"
	"chatexport/internal/platform/logger"
	"chatexport/internal/services/contacts/domain"
)

type fakeStorage struct {
	contacts []domain.Contact
	err      error
	loads    int
}

func (f *fakeStorage) Load(context.Context) ([]domain.Contact, error) {
	f.loads++
	return f.contacts, f.err
}

func testLog() logger.Logger { return logger.Named("contacts-test").With().Logger() }

func TestResolveFuzzyMatch(t *testing.T) {
	st := &fakeStorage{contacts: []domain.Contact{
		{Name: "Amy Li", Phone: "+15551234567"},
		{Name: "Bob Chen", Phone: "+15559876543"},
	}}
	svc := New(st, Config{}, testLog())

	cases := []struct {
		name  string
		query string
		want  string
	}{
		{"partial lowercase", "amy", "+15551234567"},
		{"all caps", "AMY LI", "+15551234567"},
		{"typo within cutoff", "Bob Chan", "+15559876543"},
		{"nothing close", "Zebadiah Quartermain", ""},
		{"blank query", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Resolve(context.Background(), tc.query)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tc.query, got, tc.want)
			}
		})
	}
}

func TestResolveBlankQuerySkipsIO(t *testing.T) {
	st := &fakeStorage{}
	svc := New(st, Config{}, testLog())
	if _, err := svc.Resolve(context.Background(), ""); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if st.loads != 0 {
		t.Fatalf("loads = %d, want 0", st.loads)
	}
}

func TestResolveRereadsSnapshotEachCall(t *testing.T) {
	st := &fakeStorage{contacts: []domain.Contact{{Name: "Amy Li", Phone: "1"}}}
	svc := New(st, Config{}, testLog())
	for i := 0; i < 3; i++ {
		if _, err := svc.Resolve(context.Background(), "amy"); err != nil {
			t.Fatalf("Resolve: %v", err)
		}
	}
	if st.loads != 3 {
		t.Fatalf("loads = %d, want 3", st.loads)
	}
}

func TestResolveDuplicateNamesFirstWins(t *testing.T) {
	st := &fakeStorage{contacts: []domain.Contact{
		{Name: "Amy Li", Phone: "first"},
		{Name: "Amy Li", Phone: "second"},
	}}
	svc := New(st, Config{}, testLog())
	got, err := svc.Resolve(context.Background(), "Amy Li")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "first" {
		t.Fatalf("Resolve = %q, want first row", got)
	}
}

func TestResolveCutoffConfigurable(t *testing.T) {
	st := &fakeStorage{contacts: []domain.Contact{{Name: "Amy Li", Phone: "1"}}}
	strict := New(st, Config{MatchCutoff: 0.95}, testLog())
	got, err := strict.Resolve(context.Background(), "amy")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "" {
		t.Fatalf("strict cutoff matched %q", got)
	}
}

func TestResolvePropagatesStorageError(t *testing.T) {
	boom := perr.DBf("snapshot gone")
	svc := New(&fakeStorage{err: boom}, Config{}, testLog())
	_, err := svc.Resolve(context.Background(), "amy")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want storage error", err)
	}
}

func TestRefreshRunsCommand(t *testing.T) {
	dir := t.TempDir()
	svc := New(&fakeStorage{}, Config{
		SnapshotPath: dir + "/contacts.csv",
		RefreshCmd:   "printf 'Name,Phone\\n' > " + dir + "/contacts.csv",
	}, testLog())

	path, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if path != dir+"/contacts.csv" {
		t.Fatalf("path = %q", path)
	}
}

func TestRefreshErrors(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		svc := New(&fakeStorage{}, Config{}, testLog())
		_, err := svc.Refresh(context.Background())
		if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
			t.Fatalf("err = %v, want Unavailable", err)
		}
	})
	t.Run("nonzero exit", func(t *testing.T) {
		svc := New(&fakeStorage{}, Config{RefreshCmd: "exit 3"}, testLog())
		_, err := svc.Refresh(context.Background())
		if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
			t.Fatalf("err = %v, want Unavailable", err)
		}
	})
}
