package analytics

import (
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var onTrackThreshold = decimal.NewFromInt(75)

// GoalProgress measures each goal against the entries of its kind, category and period.
func GoalProgress(entries []domain.Entry, goals []domain.Goal) []domain.GoalProgress {
	out := make([]domain.GoalProgress, 0, len(goals))
	for _, g := range goals {
		realized := decimal.Zero
		for _, e := range entries {
			if matchesGoal(e, g) {
				realized = realized.Add(e.Amount)
			}
		}
		out = append(out, progressFor(g, realized))
	}
	return out
}

func matchesGoal(e domain.Entry, g domain.Goal) bool {
	if e.Kind != g.Kind {
		return false
	}
	if int(e.Date.Month()) != g.Month || e.Date.Year() != g.Year {
		return false
	}
	if e.CategoryID != "" && g.CategoryID != "" {
		return e.CategoryID == g.CategoryID
	}
	return e.CategoryName == g.CategoryName
}

func progressFor(g domain.Goal, realized decimal.Decimal) domain.GoalProgress {
	percent := percentOf(realized, g.TargetAmount)
	remaining := g.TargetAmount.Sub(realized)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return domain.GoalProgress{
		GoalID:         g.GoalID,
		CategoryID:     g.CategoryID,
		CategoryName:   g.CategoryName,
		Kind:           g.Kind,
		Month:          g.Month,
		Year:           g.Year,
		Target:         g.TargetAmount,
		Realized:       realized,
		Percent:        percent,
		DisplayPercent: decimal.Min(percent, hundred),
		Remaining:      remaining,
		Status:         goalStatus(percent),
	}
}

func goalStatus(percent decimal.Decimal) domain.GoalStatus {
	switch {
	case percent.GreaterThanOrEqual(hundred):
		return domain.GoalAchieved
	case percent.GreaterThanOrEqual(onTrackThreshold):
		return domain.GoalOnTrack
	default:
		return domain.GoalBehind
	}
}
