package analytics

import (
	"cmp"
	"slices"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeBreakdown builds the full report: totals plus per-category and per-responsible groups,
// each ordered by the amount moved (inflow + outflow), largest first.
func ComputeBreakdown(entries []domain.Entry) domain.Breakdown {
	totals := ComputeTotals(entries)
	b := domain.Breakdown{
		Totals:         totals,
		AverageTicket:  decimal.Zero,
		OutflowPercent: percentOf(totals.Outflow, totals.Inflow),
		ByCategory:     groupBy(entries, categoryLabel),
		ByResponsible:  groupBy(entries, responsibleLabel),
	}
	if totals.Count > 0 {
		b.AverageTicket = totals.Inflow.Add(totals.Outflow).Div(decimal.NewFromInt(int64(totals.Count)))
	}
	return b
}

func groupBy(entries []domain.Entry, label func(domain.Entry) string) []domain.BreakdownItem {
	groups := make(map[string]*domain.BreakdownItem)
	for _, e := range entries {
		name := label(e)
		g, ok := groups[name]
		if !ok {
			g = &domain.BreakdownItem{Name: name, Inflow: decimal.Zero, Outflow: decimal.Zero}
			groups[name] = g
		}
		g.Count++
		if e.Kind == domain.Inflow {
			g.Inflow = g.Inflow.Add(e.Amount)
		} else {
			g.Outflow = g.Outflow.Add(e.Amount)
		}
	}

	out := make([]domain.BreakdownItem, 0, len(groups))
	for _, g := range groups {
		g.Saldo = g.Inflow.Sub(g.Outflow)
		out = append(out, *g)
	}
	slices.SortFunc(out, func(a, b domain.BreakdownItem) int {
		if c := b.Inflow.Add(b.Outflow).Cmp(a.Inflow.Add(a.Outflow)); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
