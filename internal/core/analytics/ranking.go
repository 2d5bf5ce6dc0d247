package analytics

import (
	"cmp"
	"slices"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RankResponsibles groups entries by responsible name and orders the groups by number of
// transactions, most active first. Ties are ordered by name.
func RankResponsibles(entries []domain.Entry) []domain.ResponsibleRank {
	groups := make(map[string]*domain.ResponsibleRank)
	for _, e := range entries {
		name := responsibleLabel(e)
		r, ok := groups[name]
		if !ok {
			r = &domain.ResponsibleRank{Name: name, Inflow: decimal.Zero, Outflow: decimal.Zero}
			groups[name] = r
		}
		r.Count++
		if e.Kind == domain.Inflow {
			r.Inflow = r.Inflow.Add(e.Amount)
		} else {
			r.Outflow = r.Outflow.Add(e.Amount)
		}
	}

	out := make([]domain.ResponsibleRank, 0, len(groups))
	for _, r := range groups {
		r.Saldo = r.Inflow.Sub(r.Outflow)
		r.AverageTicket = r.Inflow.Add(r.Outflow).Div(decimal.NewFromInt(int64(r.Count)))
		r.OutflowRatio = percentOf(r.Outflow, r.Inflow)
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b domain.ResponsibleRank) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
