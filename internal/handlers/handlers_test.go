package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/SscSPs/cashflow_dashboard/internal/handlers"
	"github.com/SscSPs/cashflow_dashboard/internal/platform/config"
	"github.com/SscSPs/cashflow_dashboard/internal/utils"
	"github.com/SscSPs/cashflow_dashboard/internal/utils/export"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	cfg    *config.Config

	userService      *MockUserService
	tokenService     *MockTokenService
	googleService    *MockGoogleAuthService
	entryService     *MockEntryService
	referenceService *MockReferenceService
	goalService      *MockGoalService
	dashboardService *MockDashboardService
	exportService    *MockExportService
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.cfg = &config.Config{
		IsProduction:           true,
		JWTSecret:              "test-secret-key-that-is-long-enough",
		JWTIssuer:              "cashflow-test",
		RefreshTokenCookieName: "rtid",
		RefreshTokenCookiePath: "/api/v1/auth",
		FrontendBaseURL:        "http://localhost:3000",
		LoginRateLimit:         "1000-M",
	}

	s.userService = new(MockUserService)
	s.tokenService = new(MockTokenService)
	s.googleService = new(MockGoogleAuthService)
	s.entryService = new(MockEntryService)
	s.referenceService = new(MockReferenceService)
	s.goalService = new(MockGoalService)
	s.dashboardService = new(MockDashboardService)
	s.exportService = new(MockExportService)

	container := &portssvc.ServiceContainer{
		User:       s.userService,
		Entry:      s.entryService,
		Reference:  s.referenceService,
		Goal:       s.goalService,
		Dashboard:  s.dashboardService,
		Export:     s.exportService,
		Token:      s.tokenService,
		GoogleAuth: s.googleService,
	}

	s.router = gin.New()
	s.Require().NoError(handlers.RegisterRoutes(s.router, s.cfg, container, nil))
}

func (s *HandlerTestSuite) token(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, string(role), s.cfg.JWTSecret, time.Hour, s.cfg.JWTIssuer)
	s.Require().NoError(err)
	return token
}

func (s *HandlerTestSuite) do(method, path string, body any, userID string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+s.token(userID, domain.RoleAnalyst))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) refreshCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == s.cfg.RefreshTokenCookieName {
			return c
		}
	}
	return nil
}

func (s *HandlerTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlerTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: "user-1", Email: "ana@example.com", Name: "Ana", Role: domain.RoleAnalyst}
	expires := time.Now().Add(time.Hour)
	s.userService.On("AuthenticateUser", mock.Anything, "ana@example.com", "secret123").Return(user, nil).Once()
	s.tokenService.On("IssueRefreshToken", mock.Anything, user).Return("raw-refresh", time.Now().Add(24*time.Hour), nil).Once()
	s.tokenService.On("GenerateAccessToken", mock.Anything, user).Return("access-jwt", expires, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Email: "ana@example.com", Password: "secret123"}, "")

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.AuthResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("access-jwt", resp.AccessToken)
	s.Equal("Bearer", resp.TokenType)
	s.Equal("user-1", resp.User.UserID)

	cookie := s.refreshCookie(w)
	s.Require().NotNil(cookie)
	s.Equal("raw-refresh", cookie.Value)
	s.True(cookie.HttpOnly)
	s.True(cookie.Secure)
	s.Equal(http.SameSiteStrictMode, cookie.SameSite)
	s.Equal("/api/v1/auth", cookie.Path)
	s.userService.AssertExpectations(s.T())
	s.tokenService.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestLogin_InvalidCredentials() {
	s.userService.On("AuthenticateUser", mock.Anything, "ana@example.com", "wrong").
		Return(nil, apperrors.NewUnauthorizedError("Invalid email or password")).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Email: "ana@example.com", Password: "wrong"}, "")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"error":"Invalid email or password"}`, w.Body.String())
	s.Nil(s.refreshCookie(w))
	s.tokenService.AssertNotCalled(s.T(), "IssueRefreshToken", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestLogin_BadBody() {
	w := s.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "not-an-email"}, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.userService.AssertNotCalled(s.T(), "AuthenticateUser", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestGoogleLogin_UnknownEmail() {
	info := &domain.GoogleUserInfo{Subject: "g-1", Email: "new@example.com", EmailVerified: true}
	s.googleService.On("ValidateIDToken", mock.Anything, "id-token").Return(info, nil).Once()
	s.userService.On("GetUserByEmail", mock.Anything, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/google", dto.GoogleLoginRequest{IDToken: "id-token"}, "")

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Nil(s.refreshCookie(w))
	s.googleService.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestGoogleExchangeCode_Success() {
	user := &domain.User{UserID: "user-2", Email: "bia@example.com", Role: domain.RoleViewer}
	info := &domain.GoogleUserInfo{Subject: "g-2", Email: "bia@example.com", EmailVerified: true}
	s.googleService.On("ExchangeCode", mock.Anything, "auth-code").Return(info, nil).Once()
	s.userService.On("GetUserByEmail", mock.Anything, "bia@example.com").Return(user, nil).Once()
	s.tokenService.On("IssueRefreshToken", mock.Anything, user).Return("raw", time.Now().Add(time.Hour), nil).Once()
	s.tokenService.On("GenerateAccessToken", mock.Anything, user).Return("jwt", time.Now().Add(time.Hour), nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/google/exchange-code", dto.GoogleCodeExchangeRequest{Code: "auth-code"}, "")

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	s.NotNil(s.refreshCookie(w))
}

func (s *HandlerTestSuite) TestRefresh_MissingCookie() {
	w := s.do(http.MethodPost, "/api/v1/auth/refresh", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.tokenService.AssertNotCalled(s.T(), "RotateRefreshToken", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestRefresh_RotatesCookie() {
	user := &domain.User{UserID: "user-1", Email: "ana@example.com", Role: domain.RoleAnalyst}
	s.tokenService.On("RotateRefreshToken", mock.Anything, "old-token").
		Return(user, "new-token", time.Now().Add(24*time.Hour), nil).Once()
	s.tokenService.On("GenerateAccessToken", mock.Anything, user).Return("jwt", time.Now().Add(time.Hour), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "rtid", Value: "old-token"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	cookie := s.refreshCookie(w)
	s.Require().NotNil(cookie)
	s.Equal("new-token", cookie.Value)
}

func (s *HandlerTestSuite) TestRefresh_ExpiredClearsCookie() {
	expired := apperrors.NewAppError(http.StatusUnauthorized, "Refresh token expired", apperrors.ErrRefreshTokenExpired)
	s.tokenService.On("RotateRefreshToken", mock.Anything, "stale").Return(nil, "", time.Time{}, expired).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "rtid", Value: "stale"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
	cookie := s.refreshCookie(w)
	s.Require().NotNil(cookie)
	s.Empty(cookie.Value)
	s.Less(cookie.MaxAge, 0)
}

func (s *HandlerTestSuite) TestLogout_RevokesAndClears() {
	s.tokenService.On("RevokeRefreshToken", mock.Anything, "live").Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "rtid", Value: "live"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNoContent, w.Code)
	s.Require().NotNil(s.refreshCookie(w))
	s.tokenService.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestProtectedRoutesRequireToken() {
	w := s.do(http.MethodGet, "/api/v1/entries", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.entryService.AssertNotCalled(s.T(), "ListEntries", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestGetMe() {
	user := &domain.User{UserID: "user-1", Email: "ana@example.com", Name: "Ana", Role: domain.RoleAnalyst}
	s.userService.On("GetUserByID", mock.Anything, "user-1").Return(user, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/users/me", nil, "user-1")

	s.Require().Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("ana@example.com", resp.Email)
}

func validEntryRequest() map[string]any {
	return map[string]any{
		"date":          "2024-03-10",
		"kind":          "saida",
		"categoryID":    "cat-rent",
		"responsibleID": "resp-1",
		"description":   "Aluguel",
		"amount":        "1500.00",
		"status":        "pago",
	}
}

func (s *HandlerTestSuite) TestCreateEntry_Success() {
	userID := uuid.NewString()
	created := &domain.Entry{
		EntryID:       "entry-1",
		Date:          time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Month:         3,
		Year:          2024,
		Kind:          domain.Outflow,
		CategoryID:    "cat-rent",
		ResponsibleID: "resp-1",
		Description:   "Aluguel",
		Amount:        decimal.RequireFromString("1500.00"),
		Status:        domain.StatusPaid,
	}
	s.entryService.On("CreateEntry", mock.Anything, mock.MatchedBy(func(req dto.CreateEntryRequest) bool {
		return req.Date == "2024-03-10" && req.Kind == domain.Outflow && req.Amount.Equal(decimal.NewFromInt(1500))
	}), userID).Return(created, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/entries", validEntryRequest(), userID)

	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.EntryResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("entry-1", resp.EntryID)
	s.Equal("2024-03-10", resp.Date)
	s.Equal(3, resp.Month)
	s.entryService.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestCreateEntry_ValidationErrors() {
	cases := map[string]func(map[string]any){
		"zero amount":    func(b map[string]any) { b["amount"] = "0" },
		"negative":       func(b map[string]any) { b["amount"] = "-10" },
		"bad kind":       func(b map[string]any) { b["kind"] = "transfer" },
		"bad status":     func(b map[string]any) { b["status"] = "done" },
		"bad date":       func(b map[string]any) { b["date"] = "10/03/2024" },
		"missing holder": func(b map[string]any) { delete(b, "responsibleID") },
	}
	for name, mutate := range cases {
		s.Run(name, func() {
			body := validEntryRequest()
			mutate(body)
			w := s.do(http.MethodPost, "/api/v1/entries", body, "user-1")
			s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	s.entryService.AssertNotCalled(s.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCreateEntry_Forbidden() {
	s.entryService.On("CreateEntry", mock.Anything, mock.Anything, "viewer-1").
		Return(nil, apperrors.NewForbiddenError("You are not allowed to create entries")).Once()

	w := s.do(http.MethodPost, "/api/v1/entries", validEntryRequest(), "viewer-1")

	s.Equal(http.StatusForbidden, w.Code)
	s.JSONEq(`{"error":"You are not allowed to create entries"}`, w.Body.String())
}

func (s *HandlerTestSuite) TestCreateEntry_InternalErrorIsMasked() {
	s.entryService.On("CreateEntry", mock.Anything, mock.Anything, "user-1").
		Return(nil, fmt.Errorf("pgx: connection refused")).Once()

	w := s.do(http.MethodPost, "/api/v1/entries", validEntryRequest(), "user-1")

	s.Equal(http.StatusInternalServerError, w.Code)
	s.JSONEq(`{"error":"Failed to create entry"}`, w.Body.String())
}

func (s *HandlerTestSuite) TestListEntries_PassesFilters() {
	next := "cursor-2"
	entries := []domain.Entry{
		{EntryID: "e-2", Date: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), Kind: domain.Inflow, Amount: decimal.NewFromInt(300)},
		{EntryID: "e-1", Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Kind: domain.Inflow, Amount: decimal.NewFromInt(100)},
	}
	s.entryService.On("ListEntries", mock.Anything, mock.MatchedBy(func(f domain.EntryFilter) bool {
		return f.Month != nil && *f.Month == 3 &&
			f.Year != nil && *f.Year == 2024 &&
			f.Kind != nil && *f.Kind == domain.Inflow &&
			f.CategoryID == nil &&
			f.Limit == 20
	})).Return(entries, &next, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/entries?month=3&year=2024&kind=entrada&categoryID=&limit=20", nil, "user-1")

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListEntriesResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Entries, 2)
	s.Equal("e-2", resp.Entries[0].EntryID)
	s.Require().NotNil(resp.NextToken)
	s.Equal("cursor-2", *resp.NextToken)
}

func (s *HandlerTestSuite) TestListEntries_DefaultLimit() {
	s.entryService.On("ListEntries", mock.Anything, mock.MatchedBy(func(f domain.EntryFilter) bool {
		return f.Limit == 50 && f.NextToken == nil
	})).Return([]domain.Entry{}, nil, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/entries", nil, "user-1")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"entries":[]}`, w.Body.String())
}

func (s *HandlerTestSuite) TestListEntries_RejectsBadMonth() {
	w := s.do(http.MethodGet, "/api/v1/entries?month=13", nil, "user-1")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestGetEntry_NotFound() {
	s.entryService.On("GetEntryByID", mock.Anything, "missing").Return(nil, apperrors.NewNotFoundError("entry not found")).Once()

	w := s.do(http.MethodGet, "/api/v1/entries/missing", nil, "user-1")

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestReferenceData() {
	data := &domain.ReferenceData{
		Categories:   []domain.Category{{CategoryID: "cat-1", Name: "Vendas", Kind: domain.Inflow, IsActive: true}},
		Responsibles: []domain.Responsible{{ResponsibleID: "resp-1", Name: "Ana"}},
		Tags:         []domain.Tag{},
	}
	s.referenceService.On("GetReferenceData", mock.Anything).Return(data, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/reference", nil, "user-1")

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Contains(w.Body.String(), `"Vendas"`)
}

func (s *HandlerTestSuite) TestCreateCategory_Conflict() {
	s.referenceService.On("CreateCategory", mock.Anything, mock.Anything, "admin-1").
		Return(nil, apperrors.NewConflictError("category already exists")).Once()

	w := s.do(http.MethodPost, "/api/v1/categories", map[string]any{"name": "Vendas", "kind": "entrada"}, "admin-1")

	s.Equal(http.StatusConflict, w.Code, w.Body.String())
}

func (s *HandlerTestSuite) TestDeleteTag_NoContent() {
	s.referenceService.On("DeleteTag", mock.Anything, "tag-1", "admin-1").Return(nil).Once()

	w := s.do(http.MethodDelete, "/api/v1/tags/tag-1", nil, "admin-1")

	s.Equal(http.StatusNoContent, w.Code)
	s.referenceService.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestDeleteGoal_NotFound() {
	s.goalService.On("DeleteGoal", mock.Anything, "goal-x", "admin-1").Return(apperrors.ErrNotFound).Once()

	w := s.do(http.MethodDelete, "/api/v1/goals/goal-x", nil, "admin-1")

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestDashboardSummary_DefaultsToCurrentMonth() {
	now := time.Now()
	summary := &domain.DashboardSummary{}
	s.dashboardService.On("Summary", mock.Anything, domain.EntryFilter{}, int(now.Month()), now.Year()).Return(summary, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/summary", nil, "user-1")

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	s.dashboardService.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestDashboardSummary_ExplicitPeriod() {
	s.dashboardService.On("Summary", mock.Anything, mock.MatchedBy(func(f domain.EntryFilter) bool {
		return f.ResponsibleID != nil && *f.ResponsibleID == "resp-1"
	}), 1, 2023).Return(&domain.DashboardSummary{}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/summary?month=1&year=2023&responsibleID=resp-1", nil, "user-1")

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	s.dashboardService.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestDashboardTop_DefaultLimit() {
	s.dashboardService.On("Top", mock.Anything, domain.EntryFilter{}, 5).Return(&domain.TopTransactions{}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/top", nil, "user-1")

	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *HandlerTestSuite) TestDashboardProjection_Error() {
	s.dashboardService.On("Projection", mock.Anything, domain.EntryFilter{}).Return(nil, fmt.Errorf("boom")).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard/projection", nil, "user-1")

	s.Equal(http.StatusInternalServerError, w.Code)
	s.JSONEq(`{"error":"Failed to compute projection"}`, w.Body.String())
}

func (s *HandlerTestSuite) TestExportEntries_Attachment() {
	file := &export.File{
		Name:        "lancamentos_2024-03-15.xlsx",
		ContentType: export.FormatXLSX.ContentType(),
		Body:        []byte("PK\x03\x04"),
	}
	s.exportService.On("ExportEntries", mock.Anything, domain.EntryFilter{}, export.FormatXLSX, "user-1").Return(file, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/exports/entries?format=xlsx", nil, "user-1")

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal(`attachment; filename="lancamentos_2024-03-15.xlsx"`, w.Header().Get("Content-Disposition"))
	s.True(strings.HasPrefix(w.Header().Get("Content-Type"), export.FormatXLSX.ContentType()))
	s.Equal("PK\x03\x04", w.Body.String())
}

func (s *HandlerTestSuite) TestExportEntries_UnknownFormat() {
	w := s.do(http.MethodGet, "/api/v1/exports/entries?format=pdf", nil, "user-1")
	s.Equal(http.StatusBadRequest, w.Code)
	s.exportService.AssertNotCalled(s.T(), "ExportEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestExportEntries_Forbidden() {
	s.exportService.On("ExportEntries", mock.Anything, domain.EntryFilter{}, export.FormatCSV, "viewer-1").
		Return(nil, apperrors.ErrForbidden).Once()

	w := s.do(http.MethodGet, "/api/v1/exports/entries", nil, "viewer-1")

	s.Equal(http.StatusForbidden, w.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
