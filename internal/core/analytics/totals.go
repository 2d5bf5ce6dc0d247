package analytics

import (
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeTotals sums inflows and outflows. Saldo is always exactly Inflow - Outflow.
func ComputeTotals(entries []domain.Entry) domain.Totals {
	inflow, outflow := decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch e.Kind {
		case domain.Inflow:
			inflow = inflow.Add(e.Amount)
		case domain.Outflow:
			outflow = outflow.Add(e.Amount)
		}
	}
	saldo := inflow.Sub(outflow)
	return domain.Totals{
		Inflow:  inflow,
		Outflow: outflow,
		Saldo:   saldo,
		Margin:  percentOf(saldo, inflow),
		Count:   len(entries),
	}
}

// FilterPeriod returns the entries whose date falls in the given calendar month.
func FilterPeriod(entries []domain.Entry, month, year int) []domain.Entry {
	out := make([]domain.Entry, 0)
	for _, e := range entries {
		if int(e.Date.Month()) == month && e.Date.Year() == year {
			out = append(out, e)
		}
	}
	return out
}
