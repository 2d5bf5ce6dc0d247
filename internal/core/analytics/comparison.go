package analytics

import (
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PreviousPeriod returns the month before (month, year), wrapping January to December.
func PreviousPeriod(month, year int) (int, int) {
	if month <= 1 {
		return 12, year - 1
	}
	return month - 1, year
}

// CompareMonths compares the given month with the previous one. Entries are bucketed by the
// calendar month of their date, not by their stored month/year fields.
func CompareMonths(entries []domain.Entry, month, year int) domain.MonthComparison {
	prevMonth, prevYear := PreviousPeriod(month, year)

	current := domain.PeriodTotals{Month: month, Year: year, Totals: ComputeTotals(FilterPeriod(entries, month, year))}
	previous := domain.PeriodTotals{Month: prevMonth, Year: prevYear, Totals: ComputeTotals(FilterPeriod(entries, prevMonth, prevYear))}

	return domain.MonthComparison{
		Current:          current,
		Previous:         previous,
		InflowVariation:  variation(current.Inflow, previous.Inflow),
		OutflowVariation: variation(current.Outflow, previous.Outflow),
		SaldoVariation:   variation(current.Saldo, previous.Saldo),
	}
}

// variation is (current - previous) / |previous| * 100, defined as zero when previous is zero.
func variation(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous.Abs()).Mul(hundred)
}
