package repositories

import (
	"context"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
)

// EntryReader defines read operations for entries
type EntryReader interface {
	// FindEntryByID retrieves a single entry with its category, responsible and tag names joined.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntries retrieves entries matching the filter, newest first.
	// When filter.Limit is positive the returned token, if not nil, continues the listing.
	ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, *string, error)
}

// EntryWriter defines write operations for entries.
// Entries are immutable, so there is no update or delete.
type EntryWriter interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.Entry) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
