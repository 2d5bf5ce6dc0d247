package analytics

import (
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	daysPerMonth      = decimal.NewFromInt(30)
	criticalCoverage  = decimal.NewFromInt(50)
	attentionCoverage = hundred
)

// FinancialHealth estimates how long the saldo of the given entries covers their spending rate.
// Goal progress uses the first inflow and first outflow goal of (month, year), measured against
// the kind totals.
func FinancialHealth(entries []domain.Entry, goals []domain.Goal, month, year int) domain.FinancialHealth {
	totals := ComputeTotals(entries)
	days := distinctDays(entries)
	if days == 0 {
		days = 1
	}

	daily := totals.Outflow.Div(decimal.NewFromInt(int64(days)))
	monthly := daily.Mul(daysPerMonth)

	h := domain.FinancialHealth{
		Month:          month,
		Year:           year,
		Inflow:         totals.Inflow,
		Outflow:        totals.Outflow,
		Saldo:          totals.Saldo,
		ActiveDays:     distinctDays(entries),
		DailyExpense:   daily,
		MonthlyExpense: monthly,
		RunwayMonths:   decimal.Zero,
		Coverage:       percentOf(totals.Saldo, monthly),
		Status:         domain.HealthHealthy,
	}
	if monthly.IsPositive() && totals.Saldo.IsPositive() {
		h.RunwayMonths = totals.Saldo.Div(monthly)
	}
	// Without expenses there is nothing to cover, so the status stays healthy.
	if monthly.IsPositive() {
		switch {
		case h.Coverage.LessThan(criticalCoverage):
			h.Status = domain.HealthCritical
		case h.Coverage.LessThan(attentionCoverage):
			h.Status = domain.HealthAttention
		}
	}

	for _, g := range goals {
		if g.Month != month || g.Year != year {
			continue
		}
		switch {
		case g.Kind == domain.Inflow && h.InflowGoal == nil:
			p := progressFor(g, totals.Inflow)
			h.InflowGoal = &p
		case g.Kind == domain.Outflow && h.OutflowGoal == nil:
			p := progressFor(g, totals.Outflow)
			h.OutflowGoal = &p
		}
	}
	return h
}
