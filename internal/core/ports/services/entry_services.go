package services

import (
	"context"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
)

// EntryReaderSvc defines read operations for entries
type EntryReaderSvc interface {
	GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries returns entries matching the filter and, when paginating, the token of the next page.
	ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, *string, error)
}

// EntryWriterSvc defines write operations for entries
type EntryWriterSvc interface {
	// CreateEntry validates and records a new entry. Month and year are derived from the date.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.Entry, error)
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
