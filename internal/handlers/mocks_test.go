package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/SscSPs/cashflow_dashboard/internal/utils/export"
	"github.com/stretchr/testify/mock"
)

// result returns the first mock return value as T, or the zero value when it is nil.
func result[T any](args mock.Arguments, i int) T {
	var zero T
	if v := args.Get(i); v != nil {
		return v.(T)
	}
	return zero
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	return result[*domain.User](args, 0), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return result[*domain.User](args, 0), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	return result[[]domain.User](args, 0), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorID)
	return result[*domain.User](args, 0), args.Error(1)
}

func (m *MockUserService) EnsureAdmin(ctx context.Context, email, password string) error {
	return m.Called(ctx, email, password).Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	return result[*domain.User](args, 0), args.Error(1)
}

func (m *MockUserService) Authorize(ctx context.Context, userID string, action domain.Action) error {
	return m.Called(ctx, userID, action).Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), result[time.Time](args, 1), args.Error(2)
}

func (m *MockTokenService) IssueRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), result[time.Time](args, 1), args.Error(2)
}

func (m *MockTokenService) RotateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, string, time.Time, error) {
	args := m.Called(ctx, refreshToken)
	return result[*domain.User](args, 0), args.String(1), result[time.Time](args, 2), args.Error(3)
}

func (m *MockTokenService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleAuthService ---
type MockGoogleAuthService struct {
	mock.Mock
}

func (m *MockGoogleAuthService) ValidateIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, idToken)
	return result[*domain.GoogleUserInfo](args, 0), args.Error(1)
}

func (m *MockGoogleAuthService) ExchangeCode(ctx context.Context, code string) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, code)
	return result[*domain.GoogleUserInfo](args, 0), args.Error(1)
}

var _ portssvc.GoogleAuthSvcFacade = (*MockGoogleAuthService)(nil)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	return result[*domain.Entry](args, 0), args.Error(1)
}

func (m *MockEntryService) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, *string, error) {
	args := m.Called(ctx, filter)
	return result[[]domain.Entry](args, 0), result[*string](args, 1), args.Error(2)
}

func (m *MockEntryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.Entry, error) {
	args := m.Called(ctx, req, userID)
	return result[*domain.Entry](args, 0), args.Error(1)
}

var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

// --- Mock ReferenceDataService ---
type MockReferenceService struct {
	mock.Mock
}

func (m *MockReferenceService) GetReferenceData(ctx context.Context) (*domain.ReferenceData, error) {
	args := m.Called(ctx)
	return result[*domain.ReferenceData](args, 0), args.Error(1)
}

func (m *MockReferenceService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return result[[]domain.Category](args, 0), args.Error(1)
}

func (m *MockReferenceService) ListResponsibles(ctx context.Context) ([]domain.Responsible, error) {
	args := m.Called(ctx)
	return result[[]domain.Responsible](args, 0), args.Error(1)
}

func (m *MockReferenceService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	return result[[]domain.Tag](args, 0), args.Error(1)
}

func (m *MockReferenceService) CreateCategory(ctx context.Context, req dto.CategoryRequest, userID string) (*domain.Category, error) {
	args := m.Called(ctx, req, userID)
	return result[*domain.Category](args, 0), args.Error(1)
}

func (m *MockReferenceService) UpdateCategory(ctx context.Context, categoryID string, req dto.CategoryRequest, userID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, req, userID)
	return result[*domain.Category](args, 0), args.Error(1)
}

func (m *MockReferenceService) DeleteCategory(ctx context.Context, categoryID string, userID string) error {
	return m.Called(ctx, categoryID, userID).Error(0)
}

func (m *MockReferenceService) CreateResponsible(ctx context.Context, req dto.ResponsibleRequest, userID string) (*domain.Responsible, error) {
	args := m.Called(ctx, req, userID)
	return result[*domain.Responsible](args, 0), args.Error(1)
}

func (m *MockReferenceService) UpdateResponsible(ctx context.Context, responsibleID string, req dto.ResponsibleRequest, userID string) (*domain.Responsible, error) {
	args := m.Called(ctx, responsibleID, req, userID)
	return result[*domain.Responsible](args, 0), args.Error(1)
}

func (m *MockReferenceService) DeleteResponsible(ctx context.Context, responsibleID string, userID string) error {
	return m.Called(ctx, responsibleID, userID).Error(0)
}

func (m *MockReferenceService) CreateTag(ctx context.Context, req dto.TagRequest, userID string) (*domain.Tag, error) {
	args := m.Called(ctx, req, userID)
	return result[*domain.Tag](args, 0), args.Error(1)
}

func (m *MockReferenceService) UpdateTag(ctx context.Context, tagID string, req dto.TagRequest, userID string) (*domain.Tag, error) {
	args := m.Called(ctx, tagID, req, userID)
	return result[*domain.Tag](args, 0), args.Error(1)
}

func (m *MockReferenceService) DeleteTag(ctx context.Context, tagID string, userID string) error {
	return m.Called(ctx, tagID, userID).Error(0)
}

var _ portssvc.ReferenceDataSvcFacade = (*MockReferenceService)(nil)

// --- Mock GoalService ---
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) ListGoals(ctx context.Context, filter domain.GoalFilter) ([]domain.Goal, error) {
	args := m.Called(ctx, filter)
	return result[[]domain.Goal](args, 0), args.Error(1)
}

func (m *MockGoalService) CreateGoal(ctx context.Context, req dto.GoalRequest, userID string) (*domain.Goal, error) {
	args := m.Called(ctx, req, userID)
	return result[*domain.Goal](args, 0), args.Error(1)
}

func (m *MockGoalService) UpdateGoal(ctx context.Context, goalID string, req dto.GoalRequest, userID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID, req, userID)
	return result[*domain.Goal](args, 0), args.Error(1)
}

func (m *MockGoalService) DeleteGoal(ctx context.Context, goalID string, userID string) error {
	return m.Called(ctx, goalID, userID).Error(0)
}

var _ portssvc.GoalSvcFacade = (*MockGoalService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context, filter domain.EntryFilter, month, year int) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, filter, month, year)
	return result[*domain.DashboardSummary](args, 0), args.Error(1)
}

func (m *MockDashboardService) Comparison(ctx context.Context, filter domain.EntryFilter, month, year int) (*domain.MonthComparison, error) {
	args := m.Called(ctx, filter, month, year)
	return result[*domain.MonthComparison](args, 0), args.Error(1)
}

func (m *MockDashboardService) Projection(ctx context.Context, filter domain.EntryFilter) (*domain.CashFlowProjection, error) {
	args := m.Called(ctx, filter)
	return result[*domain.CashFlowProjection](args, 0), args.Error(1)
}

func (m *MockDashboardService) Goals(ctx context.Context, month, year int) ([]domain.GoalProgress, error) {
	args := m.Called(ctx, month, year)
	return result[[]domain.GoalProgress](args, 0), args.Error(1)
}

func (m *MockDashboardService) Ranking(ctx context.Context, filter domain.EntryFilter) ([]domain.ResponsibleRank, error) {
	args := m.Called(ctx, filter)
	return result[[]domain.ResponsibleRank](args, 0), args.Error(1)
}

func (m *MockDashboardService) Top(ctx context.Context, filter domain.EntryFilter, n int) (*domain.TopTransactions, error) {
	args := m.Called(ctx, filter, n)
	return result[*domain.TopTransactions](args, 0), args.Error(1)
}

func (m *MockDashboardService) Temporal(ctx context.Context, filter domain.EntryFilter) (*domain.TemporalBreakdown, error) {
	args := m.Called(ctx, filter)
	return result[*domain.TemporalBreakdown](args, 0), args.Error(1)
}

func (m *MockDashboardService) Health(ctx context.Context, filter domain.EntryFilter, month, year int) (*domain.FinancialHealth, error) {
	args := m.Called(ctx, filter, month, year)
	return result[*domain.FinancialHealth](args, 0), args.Error(1)
}

func (m *MockDashboardService) Advanced(ctx context.Context, filter domain.EntryFilter) (*domain.AdvancedMetrics, error) {
	args := m.Called(ctx, filter)
	return result[*domain.AdvancedMetrics](args, 0), args.Error(1)
}

func (m *MockDashboardService) Breakdown(ctx context.Context, filter domain.EntryFilter) (*domain.Breakdown, error) {
	args := m.Called(ctx, filter)
	return result[*domain.Breakdown](args, 0), args.Error(1)
}

var _ portssvc.DashboardSvcFacade = (*MockDashboardService)(nil)

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportEntries(ctx context.Context, filter domain.EntryFilter, format export.Format, userID string) (*export.File, error) {
	args := m.Called(ctx, filter, format, userID)
	return result[*export.File](args, 0), args.Error(1)
}

var _ portssvc.ExportSvcFacade = (*MockExportService)(nil)
