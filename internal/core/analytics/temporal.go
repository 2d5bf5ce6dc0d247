package analytics

import (
	"slices"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var weekdayLabels = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// TemporalBreakdown buckets entries by weekday (0 = Sunday) and by day of month.
func TemporalBreakdown(entries []domain.Entry) domain.TemporalBreakdown {
	weekdays := make([]domain.TemporalBucket, 7)
	for i := range weekdays {
		weekdays[i] = newBucket(i, weekdayLabels[i])
	}
	days := make(map[int]*domain.TemporalBucket)

	for _, e := range entries {
		addToBucket(&weekdays[int(e.Date.Weekday())], e)
		d := e.Date.Day()
		b, ok := days[d]
		if !ok {
			nb := newBucket(d, "")
			b = &nb
			days[d] = b
		}
		addToBucket(b, e)
	}

	result := domain.TemporalBreakdown{
		Weekdays:       weekdays,
		DaysOfMonth:    make([]domain.TemporalBucket, 0, len(days)),
		BusiestWeekday: -1,
	}
	for _, b := range days {
		result.DaysOfMonth = append(result.DaysOfMonth, *b)
	}
	slices.SortFunc(result.DaysOfMonth, func(a, b domain.TemporalBucket) int { return a.Key - b.Key })

	if len(entries) == 0 {
		return result
	}

	best := 0
	for i, b := range weekdays {
		if b.Count > weekdays[best].Count {
			best = i
		}
	}
	result.BusiestWeekday = weekdays[best].Key

	bestDay := result.DaysOfMonth[0]
	for _, b := range result.DaysOfMonth[1:] {
		if b.Saldo.GreaterThan(bestDay.Saldo) {
			bestDay = b
		}
	}
	result.BestDayOfMonth = bestDay.Key
	return result
}

func newBucket(key int, label string) domain.TemporalBucket {
	return domain.TemporalBucket{Key: key, Label: label, Inflow: decimal.Zero, Outflow: decimal.Zero, Saldo: decimal.Zero}
}

func addToBucket(b *domain.TemporalBucket, e domain.Entry) {
	b.Count++
	if e.Kind == domain.Inflow {
		b.Inflow = b.Inflow.Add(e.Amount)
	} else {
		b.Outflow = b.Outflow.Add(e.Amount)
	}
	b.Saldo = b.Inflow.Sub(b.Outflow)
}
