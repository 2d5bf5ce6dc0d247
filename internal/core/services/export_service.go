package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/utils/export"
)

// EntriesExportBase is the file name prefix of entry exports.
const EntriesExportBase = "lancamentos"

type exportService struct {
	BaseService
	entryRepo portsrepo.EntryReader
}

func NewExportService(entryRepo portsrepo.EntryReader, opts ...ServiceOption) portssvc.ExportSvcFacade {
	return &exportService{BaseService: newBaseService(opts...), entryRepo: entryRepo}
}

func (s *exportService) ExportEntries(ctx context.Context, filter domain.EntryFilter, format export.Format, userID string) (*export.File, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.ActionExport); err != nil {
		return nil, err
	}

	filter.Limit = 0
	filter.NextToken = nil
	entries, _, err := s.entryRepo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for export")
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	file, err := export.Render(export.EntriesDataset(entries), format, EntriesExportBase, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to render export", slog.String("format", string(format)))
		return nil, err
	}
	s.LogInfo(ctx, "Entries exported",
		slog.String("format", string(format)), slog.Int("rows", len(entries)), slog.String("file", file.Name))
	return file, nil
}
