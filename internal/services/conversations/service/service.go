// Package service implements conversation location, extraction, and export
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"chatexport/internal/core/phone"
	"chatexport/internal/modkit/repokit"
	perr "chatexport/internal/platform/errors"
	"chatexport/internal/platform/logger"
	contactsdomain "chatexport/internal/services/contacts/domain"
	"chatexport/internal/services/conversations/domain"
	"chatexport/internal/services/conversations/repo"
	"chatexport/internal/services/export"
)

// Config for the conversations service
type Config struct {
	// ExportDir receives artifacts when the caller does not pick a path
	ExportDir string
}

// Service implements the conversation ports
type Service struct {
	tx       repokit.TxRunner
	binder   repokit.Binder[repo.Storage]
	resolver contactsdomain.ResolverPort
	cfg      Config
	log      logger.Logger

	// now is swappable for tests of the default artifact name
	now func() time.Time
}

// New constructs a conversations service over the message store seam
func New(
	tx repokit.TxRunner,
	binder repokit.Binder[repo.Storage],
	resolver contactsdomain.ResolverPort,
	cfg Config,
	log logger.Logger,
) *Service {
	if cfg.ExportDir == "" {
		cfg.ExportDir = "exports"
	}
	return &Service{
		tx:       tx,
		binder:   binder,
		resolver: resolver,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// Locate implements domain.LocatorPort
func (s *Service) Locate(ctx context.Context, forms phone.Forms) (int64, error) {
	return s.locate(ctx, repokit.MustBind(s.binder, s.tx), forms)
}

// Extract implements domain.ExtractorPort
func (s *Service) Extract(ctx context.Context, chatID int64, contactLabel string) ([]domain.ExportRecord, error) {
	return s.extract(ctx, repokit.MustBind(s.binder, s.tx), chatID, contactLabel)
}

func (s *Service) locate(ctx context.Context, st repo.Storage, forms phone.Forms) (int64, error) {
	if forms.Empty() {
		return 0, perr.NotFoundf("identity has no usable form")
	}
	return st.LocateDirectChat(ctx, forms)
}

func (s *Service) extract(ctx context.Context, st repo.Storage, chatID int64, contactLabel string) ([]domain.ExportRecord, error) {
	msgs, err := st.Messages(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return nil, perr.EmptyConversationf("no text messages in conversation %d", chatID)
	}
	out := make([]domain.ExportRecord, len(msgs))
	for i, m := range msgs {
		out[i] = m.Record(contactLabel)
	}
	return out, nil
}

// Export implements domain.ExporterPort
func (s *Service) Export(ctx context.Context, in domain.ExportInput) (domain.ExportResult, error) {
	var zero domain.ExportResult

	identity, err := s.resolver.Resolve(ctx, in.Name)
	if err != nil {
		return zero, err
	}
	if identity == "" {
		return zero, perr.NoMatchf("no contact matched %q", in.Name)
	}

	label := strings.TrimSpace(in.Name)
	if label == "" {
		label = identity
	}

	// locate and extract share one transaction so both reads see the
	// same store snapshot
	var (
		chatID  int64
		records []domain.ExportRecord
	)
	err = repokit.WithTx(ctx, s.tx, func(q repokit.Queryer) error {
		st := s.binder.Bind(q)
		chatID, err = s.locate(ctx, st, phone.Normalize(identity))
		if err != nil {
			return err
		}
		records, err = s.extract(ctx, st, chatID, label)
		return err
	})
	if err != nil {
		return zero, err
	}

	path := in.Out
	if path == "" {
		path = export.DefaultPath(s.cfg.ExportDir, label, s.now())
	}
	path, err = export.Write(records, path)
	if err != nil {
		return zero, err
	}

	res := domain.ExportResult{
		Path:     path,
		Messages: len(records),
		ExportID: uuid.NewString(),
	}
	s.log.Info().
		Str("export_id", res.ExportID).
		Str("path", res.Path).
		Int("messages", res.Messages).
		Int64("chat_id", chatID).
		Msg("conversation exported")
	return res, nil
}

var (
	_ domain.LocatorPort   = (*Service)(nil)
	_ domain.ExtractorPort = (*Service)(nil)
	_ domain.ExporterPort  = (*Service)(nil)
)
