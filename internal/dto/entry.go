package dto

import (
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = time.DateOnly

// CreateEntryRequest defines the data needed to record a new entry.
type CreateEntryRequest struct {
	Date          string             `json:"date" binding:"required,datetime=2006-01-02"`
	Kind          domain.EntryKind   `json:"kind" binding:"required,entry_kind"`
	CategoryID    string             `json:"categoryID" binding:"required"`
	ResponsibleID string             `json:"responsibleID" binding:"required"`
	Description   string             `json:"description" binding:"max=500"`
	Amount        decimal.Decimal    `json:"amount" binding:"positive_decimal"`
	Status        domain.EntryStatus `json:"status" binding:"required,entry_status"`
	TagID         *string            `json:"tagID"`
}

// EntryFilterParams are the query filters shared by entry listing, dashboards and exports.
type EntryFilterParams struct {
	Month         *int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year          *int    `form:"year" binding:"omitempty,min=1900,max=9999"`
	Kind          *string `form:"kind" binding:"omitempty,entry_kind"`
	Status        *string `form:"status" binding:"omitempty,entry_status"`
	CategoryID    *string `form:"categoryID"`
	ResponsibleID *string `form:"responsibleID"`
	TagID         *string `form:"tagID"`
}

// ToFilter converts the query parameters into a domain filter without pagination.
func (p EntryFilterParams) ToFilter() domain.EntryFilter {
	f := domain.EntryFilter{
		Month:         p.Month,
		Year:          p.Year,
		CategoryID:    nonEmpty(p.CategoryID),
		ResponsibleID: nonEmpty(p.ResponsibleID),
		TagID:         nonEmpty(p.TagID),
	}
	if p.Kind != nil && *p.Kind != "" {
		k := domain.EntryKind(*p.Kind)
		f.Kind = &k
	}
	if p.Status != nil && *p.Status != "" {
		s := domain.EntryStatus(*p.Status)
		f.Status = &s
	}
	return f
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	EntryFilterParams
	Limit     int     `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

func (p ListEntriesParams) ToFilter() domain.EntryFilter {
	f := p.EntryFilterParams.ToFilter()
	f.Limit = p.Limit
	f.NextToken = nonEmpty(p.NextToken)
	return f
}

// EntryResponse is the wire view of an entry, with a calendar date.
type EntryResponse struct {
	EntryID         string             `json:"entryID"`
	Date            string             `json:"date"`
	Month           int                `json:"month"`
	Year            int                `json:"year"`
	Kind            domain.EntryKind   `json:"kind"`
	CategoryID      string             `json:"categoryID"`
	CategoryName    string             `json:"categoryName"`
	ResponsibleID   string             `json:"responsibleID"`
	ResponsibleName string             `json:"responsibleName"`
	Description     string             `json:"description"`
	Amount          decimal.Decimal    `json:"amount"`
	Status          domain.EntryStatus `json:"status"`
	TagID           *string            `json:"tagID,omitempty"`
	TagName         string             `json:"tagName,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	CreatedBy       string             `json:"createdBy"`
}

// ListEntriesResponse wraps a page of entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:         e.EntryID,
		Date:            e.Date.Format(DateLayout),
		Month:           e.Month,
		Year:            e.Year,
		Kind:            e.Kind,
		CategoryID:      e.CategoryID,
		CategoryName:    e.CategoryName,
		ResponsibleID:   e.ResponsibleID,
		ResponsibleName: e.ResponsibleName,
		Description:     e.Description,
		Amount:          e.Amount,
		Status:          e.Status,
		TagID:           e.TagID,
		TagName:         e.TagName,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
}

func ToListEntriesResponse(entries []domain.Entry, nextToken *string) ListEntriesResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = ToEntryResponse(&entries[i])
	}
	return ListEntriesResponse{Entries: out, NextToken: nextToken}
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
