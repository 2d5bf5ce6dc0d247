package analytics

import (
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// NoResponsibleLabel groups entries without a responsible party.
const NoResponsibleLabel = "Sem responsável"

// NoCategoryLabel groups entries without a category.
const NoCategoryLabel = "Sem categoria"

var hundred = decimal.NewFromInt(100)

// percentOf returns part / whole * 100, or zero when whole is zero.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// dateOnly drops the clock part of t, keeping its calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}

func distinctDays(entries []domain.Entry) int {
	days := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		days[dateKey(e.Date)] = struct{}{}
	}
	return len(days)
}

func responsibleLabel(e domain.Entry) string {
	if e.ResponsibleName == "" {
		return NoResponsibleLabel
	}
	return e.ResponsibleName
}

func categoryLabel(e domain.Entry) string {
	if e.CategoryName == "" {
		return NoCategoryLabel
	}
	return e.CategoryName
}
