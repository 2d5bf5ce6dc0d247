package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	entryRepo *MockEntryRepository
	goalRepo  *MockGoalRepository
	service   portssvc.DashboardSvcFacade
	ctx       context.Context
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.entryRepo = new(MockEntryRepository)
	s.goalRepo = new(MockGoalRepository)
	s.service = services.NewDashboardService(s.entryRepo, s.goalRepo, decimal.NewFromInt(500), services.WithClock(fixedClock))
	s.ctx = context.Background()
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func dashEntry(id string, date string, kind domain.EntryKind, amount int64, responsible string) domain.Entry {
	d, _ := time.Parse(time.DateOnly, date)
	return domain.Entry{
		EntryID:         id,
		Date:            d,
		Month:           int(d.Month()),
		Year:            d.Year(),
		Kind:            kind,
		CategoryID:      "c-" + string(kind),
		CategoryName:    "Cat " + string(kind),
		ResponsibleName: responsible,
		Amount:          decimal.NewFromInt(amount),
		Status:          domain.StatusPaid,
	}
}

func sampleEntries() []domain.Entry {
	return []domain.Entry{
		dashEntry("e1", "2024-03-05", domain.Inflow, 5000, "Ana"),
		dashEntry("e2", "2024-03-10", domain.Outflow, 2000, "Bruno"),
		dashEntry("e3", "2024-02-10", domain.Inflow, 2500, "Ana"),
		dashEntry("e4", "2024-02-12", domain.Outflow, 1000, "Bruno"),
	}
}

func noPeriod(f domain.EntryFilter) bool {
	return f.Month == nil && f.Year == nil && f.Limit == 0 && f.NextToken == nil
}

func (s *DashboardServiceTestSuite) TestSummary_LoadsAllPeriods() {
	month, year := 3, 2024
	s.entryRepo.On("ListEntries", mock.Anything, mock.MatchedBy(noPeriod)).Return(sampleEntries(), nil, nil).Once()
	s.goalRepo.On("ListGoals", mock.Anything, domain.GoalFilter{Month: &month, Year: &year}).Return([]domain.Goal{{
		GoalID: "g1", CategoryID: "c-entrada", Kind: domain.Inflow, TargetAmount: decimal.NewFromInt(4000), Month: 3, Year: 2024,
	}}, nil).Once()

	filter := domain.EntryFilter{Month: &month, Year: &year, Limit: 50}
	summary, err := s.service.Summary(s.ctx, filter, month, year)

	s.Require().NoError(err)
	s.True(summary.Totals.Inflow.Equal(decimal.NewFromInt(5000)))
	s.True(summary.Totals.Outflow.Equal(decimal.NewFromInt(2000)))
	s.True(summary.Totals.Saldo.Equal(decimal.NewFromInt(3000)))
	s.True(summary.Comparison.Previous.Inflow.Equal(decimal.NewFromInt(2500)))
	s.Require().Len(summary.Goals, 1)
	s.Equal(domain.GoalAchieved, summary.Goals[0].Status)
}

func (s *DashboardServiceTestSuite) TestComparison() {
	s.entryRepo.On("ListEntries", mock.Anything, mock.MatchedBy(noPeriod)).Return(sampleEntries(), nil, nil).Once()

	cmp, err := s.service.Comparison(s.ctx, domain.EntryFilter{}, 3, 2024)

	s.Require().NoError(err)
	s.Equal(2, cmp.Previous.Month)
	s.True(cmp.InflowVariation.Equal(decimal.NewFromInt(100)))
}

func (s *DashboardServiceTestSuite) TestProjection_UsesClockAndThreshold() {
	s.entryRepo.On("ListEntries", mock.Anything, mock.MatchedBy(noPeriod)).Return(sampleEntries(), nil, nil).Once()

	p, err := s.service.Projection(s.ctx, domain.EntryFilter{})

	s.Require().NoError(err)
	s.True(p.HistoricalSaldo.Equal(decimal.NewFromInt(4500)))
	s.Require().NotEmpty(p.Points)
	s.Equal(fixedNow.Format(time.DateOnly), p.Points[0].Date)
}

func (s *DashboardServiceTestSuite) TestHealth_RestrictsToPeriod() {
	month, year := 3, 2024
	s.entryRepo.On("ListEntries", mock.Anything, mock.MatchedBy(func(f domain.EntryFilter) bool {
		return f.Month != nil && *f.Month == 3 && f.Year != nil && *f.Year == 2024
	})).Return(sampleEntries()[:2], nil, nil).Once()
	s.goalRepo.On("ListGoals", mock.Anything, mock.Anything).Return(nil, nil).Once()

	h, err := s.service.Health(s.ctx, domain.EntryFilter{}, month, year)

	s.Require().NoError(err)
	s.Equal(3, h.Month)
	s.True(h.Saldo.Equal(decimal.NewFromInt(3000)))
}

func (s *DashboardServiceTestSuite) TestRankingTopTemporalAdvancedBreakdown() {
	s.entryRepo.On("ListEntries", mock.Anything, mock.Anything).Return(sampleEntries(), nil, nil)

	ranking, err := s.service.Ranking(s.ctx, domain.EntryFilter{})
	s.Require().NoError(err)
	s.Len(ranking, 2)

	top, err := s.service.Top(s.ctx, domain.EntryFilter{}, 2)
	s.Require().NoError(err)
	s.Len(top.Items, 2)
	s.True(top.CombinedAmount.LessThanOrEqual(top.GrandTotal))

	temporal, err := s.service.Temporal(s.ctx, domain.EntryFilter{})
	s.Require().NoError(err)
	s.Len(temporal.Weekdays, 7)

	adv, err := s.service.Advanced(s.ctx, domain.EntryFilter{})
	s.Require().NoError(err)
	s.Equal(2, adv.InflowCount)

	b, err := s.service.Breakdown(s.ctx, domain.EntryFilter{})
	s.Require().NoError(err)
	s.Equal(4, b.Totals.Count)
}

func (s *DashboardServiceTestSuite) TestLoadFailure() {
	s.entryRepo.On("ListEntries", mock.Anything, mock.Anything).Return(nil, nil, errors.New("db down")).Once()
	s.goalRepo.On("ListGoals", mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	_, err := s.service.Goals(s.ctx, 3, 2024)

	s.Error(err)
}
