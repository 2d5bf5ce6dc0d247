package mapping

import (
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/SscSPs/cashflow_dashboard/internal/models"
)

func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Kind:        string(d.Kind),
		Color:       d.Color,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Kind:        domain.EntryKind(m.Kind),
		Color:       m.Color,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	return toDomainSlice(ms, ToDomainCategory)
}

func ToModelResponsible(d domain.Responsible) models.Responsible {
	return models.Responsible{
		ResponsibleID: d.ResponsibleID,
		Name:          d.Name,
		Email:         toNullString(d.Email),
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainResponsible(m models.Responsible) domain.Responsible {
	return domain.Responsible{
		ResponsibleID: m.ResponsibleID,
		Name:          m.Name,
		Email:         fromNullString(m.Email),
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainResponsibleSlice(ms []models.Responsible) []domain.Responsible {
	return toDomainSlice(ms, ToDomainResponsible)
}

func ToModelTag(d domain.Tag) models.Tag {
	return models.Tag{
		TagID:       d.TagID,
		Name:        d.Name,
		Color:       d.Color,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainTag(m models.Tag) domain.Tag {
	return domain.Tag{
		TagID:       m.TagID,
		Name:        m.Name,
		Color:       m.Color,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainTagSlice(ms []models.Tag) []domain.Tag {
	return toDomainSlice(ms, ToDomainTag)
}
