package analytics

import (
	"fmt"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// ProjectionDays is the number of days projected after today; points cover day 0..ProjectionDays.
	ProjectionDays = 30
	// TrailingWindowDays is the look-back used for the daily averages.
	TrailingWindowDays = 30
)

// DefaultCriticalThreshold is the saldo under which a still-positive projection is flagged.
var DefaultCriticalThreshold = decimal.NewFromInt(500)

type projectionConfig struct {
	criticalThreshold decimal.Decimal
}

// ProjectionOption customizes ProjectCashFlow.
type ProjectionOption func(*projectionConfig)

// WithCriticalThreshold overrides DefaultCriticalThreshold. Non-positive values are ignored.
func WithCriticalThreshold(threshold decimal.Decimal) ProjectionOption {
	return func(c *projectionConfig) {
		if threshold.IsPositive() {
			c.criticalThreshold = threshold
		}
	}
}

// ProjectCashFlow projects the saldo for the next ProjectionDays days from the average daily
// flow of the trailing window ending at today.
func ProjectCashFlow(entries []domain.Entry, today time.Time, opts ...ProjectionOption) domain.CashFlowProjection {
	cfg := projectionConfig{criticalThreshold: DefaultCriticalThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	day := dateOnly(today)
	windowStart := day.AddDate(0, 0, -TrailingWindowDays)

	historical := decimal.Zero
	windowIn, windowOut := decimal.Zero, decimal.Zero
	windowDays := make(map[string]struct{})
	for _, e := range entries {
		d := dateOnly(e.Date)
		if d.After(day) {
			continue
		}
		historical = historical.Add(e.SignedAmount())
		if d.Before(windowStart) {
			continue
		}
		windowDays[dateKey(d)] = struct{}{}
		if e.Kind == domain.Inflow {
			windowIn = windowIn.Add(e.Amount)
		} else {
			windowOut = windowOut.Add(e.Amount)
		}
	}

	divisor := len(windowDays)
	if divisor == 0 {
		divisor = 1
	}
	avgIn := windowIn.Div(decimal.NewFromInt(int64(divisor)))
	avgOut := windowOut.Div(decimal.NewFromInt(int64(divisor)))
	net := avgIn.Sub(avgOut)

	result := domain.CashFlowProjection{
		HistoricalSaldo: historical,
		AvgDailyInflow:  avgIn,
		AvgDailyOutflow: avgOut,
		DailyNetFlow:    net,
		WindowDays:      len(windowDays),
		Points:          make([]domain.ProjectionPoint, 0, ProjectionDays+1),
		Warnings:        make([]domain.ProjectionWarning, 0),
	}

	var negativeSeen, criticalSeen bool
	projected := historical
	for i := 0; i <= ProjectionDays; i++ {
		date := dateKey(day.AddDate(0, 0, i))
		result.Points = append(result.Points, domain.ProjectionPoint{
			Day:       i,
			Date:      date,
			Saldo:     decimal.Max(decimal.Zero, projected.Round(2)),
			RealSaldo: projected,
		})

		if !projected.IsNegative() {
			result.NonNegativeDays++
		}
		if projected.IsNegative() && !negativeSeen {
			negativeSeen = true
			result.Warnings = append(result.Warnings, domain.ProjectionWarning{
				Kind:    domain.WarningNegative,
				Day:     i,
				Date:    date,
				Message: fmt.Sprintf("cash balance turns negative in %d days", i),
			})
		}
		if projected.IsPositive() && projected.LessThan(cfg.criticalThreshold) && !criticalSeen {
			criticalSeen = true
			result.Warnings = append(result.Warnings, domain.ProjectionWarning{
				Kind:    domain.WarningCritical,
				Day:     i,
				Date:    date,
				Message: fmt.Sprintf("cash balance drops below %s in %d days", cfg.criticalThreshold.StringFixed(2), i),
			})
		}
		result.FinalSaldo = projected
		projected = projected.Add(net)
	}

	if result.NonNegativeDays < ProjectionDays+1 {
		result.Warnings = append(result.Warnings, domain.ProjectionWarning{
			Kind:    domain.WarningRunway,
			Day:     result.NonNegativeDays,
			Message: fmt.Sprintf("cash runway of only %d days", result.NonNegativeDays),
		})
	}
	return result
}
