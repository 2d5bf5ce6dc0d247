package analytics

import (
	"slices"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AdvancedMetrics computes ticket averages, extremes and the daily and cumulative flow series.
func AdvancedMetrics(entries []domain.Entry) domain.AdvancedMetrics {
	m := domain.AdvancedMetrics{
		AvgInflowTicket:  decimal.Zero,
		AvgOutflowTicket: decimal.Zero,
		LargestInflow:    decimal.Zero,
		LargestOutflow:   decimal.Zero,
	}

	inSum, outSum := decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.Kind == domain.Inflow {
			m.InflowCount++
			inSum = inSum.Add(e.Amount)
			m.LargestInflow = decimal.Max(m.LargestInflow, e.Amount)
		} else {
			m.OutflowCount++
			outSum = outSum.Add(e.Amount)
			m.LargestOutflow = decimal.Max(m.LargestOutflow, e.Amount)
		}
	}
	if m.InflowCount > 0 {
		m.AvgInflowTicket = inSum.Div(decimal.NewFromInt(int64(m.InflowCount)))
	}
	if m.OutflowCount > 0 {
		m.AvgOutflowTicket = outSum.Div(decimal.NewFromInt(int64(m.OutflowCount)))
	}

	m.CumulativeFlow = cumulativeFlow(entries)
	m.DailyFlow = dailyFlow(entries)
	return m
}

// cumulativeFlow emits one point per entry in date order with the running saldo.
func cumulativeFlow(entries []domain.Entry) []domain.FlowPoint {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b domain.Entry) int { return a.Date.Compare(b.Date) })

	out := make([]domain.FlowPoint, 0, len(sorted))
	running := decimal.Zero
	for _, e := range sorted {
		running = running.Add(e.SignedAmount())
		p := domain.FlowPoint{Date: dateKey(e.Date), Inflow: decimal.Zero, Outflow: decimal.Zero, Saldo: e.SignedAmount(), Cumulative: running}
		if e.Kind == domain.Inflow {
			p.Inflow = e.Amount
		} else {
			p.Outflow = e.Amount
		}
		out = append(out, p)
	}
	return out
}

// dailyFlow aggregates entries per date, ascending, with a running saldo across days.
func dailyFlow(entries []domain.Entry) []domain.FlowPoint {
	byDate := make(map[string]*domain.FlowPoint)
	for _, e := range entries {
		k := dateKey(e.Date)
		p, ok := byDate[k]
		if !ok {
			p = &domain.FlowPoint{Date: k, Inflow: decimal.Zero, Outflow: decimal.Zero}
			byDate[k] = p
		}
		if e.Kind == domain.Inflow {
			p.Inflow = p.Inflow.Add(e.Amount)
		} else {
			p.Outflow = p.Outflow.Add(e.Amount)
		}
	}

	out := make([]domain.FlowPoint, 0, len(byDate))
	for _, p := range byDate {
		p.Saldo = p.Inflow.Sub(p.Outflow)
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b domain.FlowPoint) int {
		switch {
		case a.Date < b.Date:
			return -1
		case a.Date > b.Date:
			return 1
		}
		return 0
	})
	running := decimal.Zero
	for i := range out {
		running = running.Add(out[i].Saldo)
		out[i].Cumulative = running
	}
	return out
}
