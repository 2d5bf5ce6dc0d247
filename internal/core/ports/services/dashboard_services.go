package services

import (
	"context"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
)

// DashboardSvcFacade loads data and runs the analytics for each dashboard panel.
// Month and year select the period; callers resolve missing values to the current month.
type DashboardSvcFacade interface {
	Summary(ctx context.Context, filter domain.EntryFilter, month, year int) (*domain.DashboardSummary, error)
	Comparison(ctx context.Context, filter domain.EntryFilter, month, year int) (*domain.MonthComparison, error)
	Projection(ctx context.Context, filter domain.EntryFilter) (*domain.CashFlowProjection, error)
	Goals(ctx context.Context, month, year int) ([]domain.GoalProgress, error)
	Ranking(ctx context.Context, filter domain.EntryFilter) ([]domain.ResponsibleRank, error)
	Top(ctx context.Context, filter domain.EntryFilter, n int) (*domain.TopTransactions, error)
	Temporal(ctx context.Context, filter domain.EntryFilter) (*domain.TemporalBreakdown, error)
	Health(ctx context.Context, filter domain.EntryFilter, month, year int) (*domain.FinancialHealth, error)
	Advanced(ctx context.Context, filter domain.EntryFilter) (*domain.AdvancedMetrics, error)
	Breakdown(ctx context.Context, filter domain.EntryFilter) (*domain.Breakdown, error)
}
