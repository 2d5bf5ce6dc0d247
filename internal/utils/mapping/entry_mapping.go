package mapping

import (
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/SscSPs/cashflow_dashboard/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry
func ToModelEntry(d domain.Entry) models.Entry {
	return models.Entry{
		EntryID:         d.EntryID,
		EntryDate:       d.Date,
		Month:           int16(d.Month),
		Year:            int16(d.Year),
		Kind:            string(d.Kind),
		CategoryID:      d.CategoryID,
		CategoryName:    d.CategoryName,
		ResponsibleID:   d.ResponsibleID,
		ResponsibleName: d.ResponsibleName,
		Description:     d.Description,
		Amount:          d.Amount,
		Status:          string(d.Status),
		TagID:           toNullString(d.TagID),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model Entry to a domain Entry
func ToDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:         m.EntryID,
		Date:            m.EntryDate,
		Month:           int(m.Month),
		Year:            int(m.Year),
		Kind:            domain.EntryKind(m.Kind),
		CategoryID:      m.CategoryID,
		CategoryName:    m.CategoryName,
		ResponsibleID:   m.ResponsibleID,
		ResponsibleName: m.ResponsibleName,
		Description:     m.Description,
		Amount:          m.Amount,
		Status:          domain.EntryStatus(m.Status),
		TagID:           fromNullString(m.TagID),
		TagName:         m.TagName.String,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntrySlice converts a slice of model Entries to a slice of domain Entries
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	return toDomainSlice(ms, ToDomainEntry)
}
