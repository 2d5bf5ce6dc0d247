package mapping

import (
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/SscSPs/cashflow_dashboard/internal/models"
)

// ToModelGoal converts a domain Goal to a model Goal
func ToModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		GoalID:       d.GoalID,
		CategoryID:   d.CategoryID,
		CategoryName: d.CategoryName,
		Kind:         string(d.Kind),
		TargetAmount: d.TargetAmount,
		Month:        int16(d.Month),
		Year:         int16(d.Year),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGoal converts a model Goal to a domain Goal
func ToDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:       m.GoalID,
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		Kind:         domain.EntryKind(m.Kind),
		TargetAmount: m.TargetAmount,
		Month:        int(m.Month),
		Year:         int(m.Year),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGoalSlice converts a slice of model Goals to a slice of domain Goals
func ToDomainGoalSlice(ms []models.Goal) []domain.Goal {
	return toDomainSlice(ms, ToDomainGoal)
}
