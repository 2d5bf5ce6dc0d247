package analytics_test

import (
	"testing"

	"github.com/SscSPs/cashflow_dashboard/internal/core/analytics"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.Entry
		inflow  string
		outflow string
		saldo   string
		margin  string
	}{
		{
			name:    "empty input",
			entries: nil,
			inflow:  "0", outflow: "0", saldo: "0", margin: "0",
		},
		{
			name: "one inflow one outflow",
			entries: []domain.Entry{
				newEntry("2025-01-05", domain.Inflow, 5000),
				newEntry("2025-01-10", domain.Outflow, 2000),
			},
			inflow: "5000", outflow: "2000", saldo: "3000", margin: "60",
		},
		{
			name: "only outflows",
			entries: []domain.Entry{
				newEntry("2025-01-05", domain.Outflow, 100),
				newEntry("2025-01-06", domain.Outflow, 250),
			},
			inflow: "0", outflow: "350", saldo: "-350", margin: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analytics.ComputeTotals(tt.entries)
			assertDecimal(t, tt.inflow, got.Inflow)
			assertDecimal(t, tt.outflow, got.Outflow)
			assertDecimal(t, tt.saldo, got.Saldo)
			assertDecimal(t, tt.margin, got.Margin)
			assert.Equal(t, len(tt.entries), got.Count)
		})
	}
}

func TestComputeTotals_SaldoIsExactDifference(t *testing.T) {
	entries := []domain.Entry{
		newEntry("2025-02-01", domain.Inflow, 0),
		newEntry("2025-02-02", domain.Outflow, 0),
	}
	entries[0].Amount = decimal.RequireFromString("1234.57")
	entries[1].Amount = decimal.RequireFromString("0.1")
	entries = append(entries, domain.Entry{Kind: domain.Outflow, Amount: decimal.RequireFromString("0.2"), Date: mustDate("2025-02-03")})

	got := analytics.ComputeTotals(entries)
	assert.True(t, got.Inflow.Sub(got.Outflow).Equal(got.Saldo))
	assertDecimal(t, "1234.27", got.Saldo)
}

func TestFilterPeriod(t *testing.T) {
	entries := []domain.Entry{
		newEntry("2024-12-31", domain.Inflow, 1),
		newEntry("2025-01-01", domain.Inflow, 2),
		newEntry("2025-01-31", domain.Outflow, 3),
		newEntry("2026-01-15", domain.Outflow, 4),
	}

	got := analytics.FilterPeriod(entries, 1, 2025)
	assert.Len(t, got, 2)
	assert.NotNil(t, analytics.FilterPeriod(nil, 1, 2025))
}
