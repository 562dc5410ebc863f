package domain

import (
	"context"

	"chatexport/internal/core/phone"
)

// LocatorPort finds the unique direct conversation for an identity
type LocatorPort interface {
	Locate(ctx context.Context, forms phone.Forms) (int64, error)
}

// ExtractorPort reads a conversation into export records
type ExtractorPort interface {
	Extract(ctx context.Context, chatID int64, contactLabel string) ([]ExportRecord, error)
}

// ExporterPort runs the whole resolve, locate, extract, write pipeline
type ExporterPort interface {
	Export(ctx context.Context, in ExportInput) (ExportResult, error)
}
