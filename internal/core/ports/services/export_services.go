package services

import (
	"context"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/SscSPs/cashflow_dashboard/internal/utils/export"
)

// ExportSvcFacade renders entry listings as downloadable files.
type ExportSvcFacade interface {
	// ExportEntries requires the export permission. All matching entries are included.
	ExportEntries(ctx context.Context, filter domain.EntryFilter, format export.Format, userID string) (*export.File, error)
}
