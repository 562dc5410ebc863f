// Package service implements contact resolution and snapshot refresh
package service

import (
	"context"
	"os/exec"
	"strings"

	"chatexport/internal/core/fuzzy"
	"chatexport/internal/core/namefold"
	perr "chatexport/internal/platform/errors"
	"chatexport/internal/platform/logger"
	"chatexport/internal/services/contacts/domain"
	"chatexport/internal/services/contacts/repo"
)

// Config for the contacts service
type Config struct {
	// SnapshotPath is where the refresh command writes the CSV
	SnapshotPath string

	// RefreshCmd is a shell command that regenerates the snapshot
	RefreshCmd string

	// MatchCutoff is the minimum similarity ratio for a match
	MatchCutoff float64
}

// Service implements domain.ResolverPort and domain.RefresherPort
type Service struct {
	storage repo.Storage
	cfg     Config
	log     logger.Logger
}

// New constructs a contacts service over the given snapshot storage
func New(storage repo.Storage, cfg Config, log logger.Logger) *Service {
	if cfg.MatchCutoff <= 0 {
		cfg.MatchCutoff = 0.6
	}
	return &Service{storage: storage, cfg: cfg, log: log}
}

// Resolve implements domain.ResolverPort
// the snapshot is re-read on every call so a refresh takes effect immediately
func (s *Service) Resolve(ctx context.Context, query string) (string, error) {
	needle := namefold.Fold(query)
	if needle == "" {
		return "", nil
	}

	contacts, err := s.storage.Load(ctx)
	if err != nil {
		return "", err
	}

	folded := make([]string, len(contacts))
	for i, c := range contacts {
		folded[i] = namefold.Fold(c.Name)
	}

	idx, score := fuzzy.Closest(needle, folded, s.cfg.MatchCutoff)
	if idx < 0 {
		s.log.Debug().Str("query", query).Msg("no contact close enough")
		return "", nil
	}

	s.log.Debug().
		Str("query", query).
		Str("matched", contacts[idx].Name).
		Float64("score", score).
		Msg("contact resolved")
	return contacts[idx].Phone, nil
}

// Refresh implements domain.RefresherPort
// the heavy lifting lives in an external command so the snapshot
// producer can be swapped without touching this service
func (s *Service) Refresh(ctx context.Context) (string, error) {
	cmdline := strings.TrimSpace(s.cfg.RefreshCmd)
	if cmdline == "" {
		return "", perr.Unavailablef("no contact refresh command configured")
	}

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", cmdline)
	out, err := cmd.CombinedOutput()
	if err != nil {
		s.log.Error().Err(err).Str("output", string(out)).Msg("contact refresh failed")
		return "", perr.Unavailablef("contact refresh command failed: %v", err)
	}

	s.log.Info().Str("snapshot", s.cfg.SnapshotPath).Msg("contact snapshot refreshed")
	return s.cfg.SnapshotPath, nil
}

var (
	_ domain.ResolverPort  = (*Service)(nil)
	_ domain.RefresherPort = (*Service)(nil)
)
