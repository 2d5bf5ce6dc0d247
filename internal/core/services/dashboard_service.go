package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/cashflow_dashboard/internal/core/analytics"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// dashboardService loads fresh data on every call and hands it to the analytics package.
type dashboardService struct {
	BaseService
	entryRepo         portsrepo.EntryReader
	goalRepo          portsrepo.GoalReader
	criticalThreshold decimal.Decimal
}

func NewDashboardService(entryRepo portsrepo.EntryReader, goalRepo portsrepo.GoalReader, criticalThreshold decimal.Decimal, opts ...ServiceOption) portssvc.DashboardSvcFacade {
	return &dashboardService{
		BaseService:       newBaseService(opts...),
		entryRepo:         entryRepo,
		goalRepo:          goalRepo,
		criticalThreshold: criticalThreshold,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// loadEntries fetches every entry matching the filter, ignoring pagination.
func (s *dashboardService) loadEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	filter.Limit = 0
	filter.NextToken = nil
	entries, _, err := s.entryRepo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for dashboard")
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	return entries, nil
}

func (s *dashboardService) loadGoals(ctx context.Context, month, year int) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoals(ctx, domain.GoalFilter{Month: &month, Year: &year})
	if err != nil {
		s.LogError(ctx, err, "Failed to load goals for dashboard")
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	return goals, nil
}

// loadEntriesAndGoals runs both loads concurrently.
func (s *dashboardService) loadEntriesAndGoals(ctx context.Context, filter domain.EntryFilter, month, year int) ([]domain.Entry, []domain.Goal, error) {
	var entries []domain.Entry
	var goals []domain.Goal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		entries, err = s.loadEntries(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		goals, err = s.loadGoals(gctx, month, year)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return entries, goals, nil
}

// withoutPeriod drops the month and year so that neighbouring periods are loaded too.
func withoutPeriod(filter domain.EntryFilter) domain.EntryFilter {
	filter.Month = nil
	filter.Year = nil
	return filter
}

func (s *dashboardService) Summary(ctx context.Context, filter domain.EntryFilter, month, year int) (*domain.DashboardSummary, error) {
	entries, goals, err := s.loadEntriesAndGoals(ctx, withoutPeriod(filter), month, year)
	if err != nil {
		return nil, err
	}
	return &domain.DashboardSummary{
		Totals:     analytics.ComputeTotals(analytics.FilterPeriod(entries, month, year)),
		Comparison: analytics.CompareMonths(entries, month, year),
		Goals:      analytics.GoalProgress(entries, goals),
	}, nil
}

func (s *dashboardService) Comparison(ctx context.Context, filter domain.EntryFilter, month, year int) (*domain.MonthComparison, error) {
	entries, err := s.loadEntries(ctx, withoutPeriod(filter))
	if err != nil {
		return nil, err
	}
	cmp := analytics.CompareMonths(entries, month, year)
	return &cmp, nil
}

// Projection always considers the whole history up to today.
func (s *dashboardService) Projection(ctx context.Context, filter domain.EntryFilter) (*domain.CashFlowProjection, error) {
	entries, err := s.loadEntries(ctx, withoutPeriod(filter))
	if err != nil {
		return nil, err
	}
	p := analytics.ProjectCashFlow(entries, s.Now(), analytics.WithCriticalThreshold(s.criticalThreshold))
	return &p, nil
}

func (s *dashboardService) Goals(ctx context.Context, month, year int) ([]domain.GoalProgress, error) {
	entries, goals, err := s.loadEntriesAndGoals(ctx, domain.EntryFilter{Month: &month, Year: &year}, month, year)
	if err != nil {
		return nil, err
	}
	return analytics.GoalProgress(entries, goals), nil
}

func (s *dashboardService) Ranking(ctx context.Context, filter domain.EntryFilter) ([]domain.ResponsibleRank, error) {
	entries, err := s.loadEntries(ctx, filter)
	if err != nil {
		return nil, err
	}
	return analytics.RankResponsibles(entries), nil
}

func (s *dashboardService) Top(ctx context.Context, filter domain.EntryFilter, n int) (*domain.TopTransactions, error) {
	entries, err := s.loadEntries(ctx, filter)
	if err != nil {
		return nil, err
	}
	top := analytics.TopTransactions(entries, n)
	return &top, nil
}

func (s *dashboardService) Temporal(ctx context.Context, filter domain.EntryFilter) (*domain.TemporalBreakdown, error) {
	entries, err := s.loadEntries(ctx, filter)
	if err != nil {
		return nil, err
	}
	t := analytics.TemporalBreakdown(entries)
	return &t, nil
}

func (s *dashboardService) Health(ctx context.Context, filter domain.EntryFilter, month, year int) (*domain.FinancialHealth, error) {
	filter.Month = &month
	filter.Year = &year
	entries, goals, err := s.loadEntriesAndGoals(ctx, filter, month, year)
	if err != nil {
		return nil, err
	}
	h := analytics.FinancialHealth(entries, goals, month, year)
	return &h, nil
}

func (s *dashboardService) Advanced(ctx context.Context, filter domain.EntryFilter) (*domain.AdvancedMetrics, error) {
	entries, err := s.loadEntries(ctx, filter)
	if err != nil {
		return nil, err
	}
	m := analytics.AdvancedMetrics(entries)
	return &m, nil
}

func (s *dashboardService) Breakdown(ctx context.Context, filter domain.EntryFilter) (*domain.Breakdown, error) {
	entries, err := s.loadEntries(ctx, filter)
	if err != nil {
		return nil, err
	}
	b := analytics.ComputeBreakdown(entries)
	return &b, nil
}
