package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/gin-gonic/gin"
)

// dashboardHandler exposes one endpoint per dashboard panel.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
	now              func() time.Time
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade, now func() time.Time) {
	h := &dashboardHandler{dashboardService: dashboardService, now: now}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.summary)
		dashboard.GET("/comparison", h.comparison)
		dashboard.GET("/projection", h.projection)
		dashboard.GET("/goals", h.goals)
		dashboard.GET("/ranking", h.ranking)
		dashboard.GET("/top", h.top)
		dashboard.GET("/temporal", h.temporal)
		dashboard.GET("/health", h.health)
		dashboard.GET("/advanced", h.advanced)
		dashboard.GET("/breakdown", h.breakdown)
	}
}

// period resolves missing month or year to the current ones.
func (h *dashboardHandler) period(month, year *int) (int, int) {
	now := h.now()
	m, y := int(now.Month()), now.Year()
	if month != nil {
		m = *month
	}
	if year != nil {
		y = *year
	}
	return m, y
}

func (h *dashboardHandler) bindFilter(c *gin.Context) (dto.EntryFilterParams, bool) {
	var params dto.EntryFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return params, false
	}
	return params, true
}

// summary godoc
// @Summary KPI summary
// @Description Totals of the month, comparison with the previous month and goal progress.
// @Tags dashboard
// @Produce json
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Param kind query string false "entrada or saida"
// @Param status query string false "Entry status"
// @Param categoryID query string false "Category"
// @Param responsibleID query string false "Responsible"
// @Param tagID query string false "Tag"
// @Success 200 {object} domain.DashboardSummary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *dashboardHandler) summary(c *gin.Context) {
	params, ok := h.bindFilter(c)
	if !ok {
		return
	}
	month, year := h.period(params.Month, params.Year)
	out, err := h.dashboardService.Summary(c.Request.Context(), params.ToFilter(), month, year)
	if err != nil {
		respondError(c, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, out)
}

// comparison godoc
// @Summary Month over month comparison
// @Tags dashboard
// @Produce json
// @Param month query int false "Current month"
// @Param year query int false "Current year"
// @Success 200 {object} domain.MonthComparison
// @Security BearerAuth
// @Router /dashboard/comparison [get]
func (h *dashboardHandler) comparison(c *gin.Context) {
	params, ok := h.bindFilter(c)
	if !ok {
		return
	}
	month, year := h.period(params.Month, params.Year)
	out, err := h.dashboardService.Comparison(c.Request.Context(), params.ToFilter(), month, year)
	if err != nil {
		respondError(c, err, "Failed to compute comparison")
		return
	}
	c.JSON(http.StatusOK, out)
}

// projection godoc
// @Summary 30 day cash-flow projection
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.CashFlowProjection
// @Security BearerAuth
// @Router /dashboard/projection [get]
func (h *dashboardHandler) projection(c *gin.Context) {
	params, ok := h.bindFilter(c)
	if !ok {
		return
	}
	out, err := h.dashboardService.Projection(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to compute projection")
		return
	}
	c.JSON(http.StatusOK, out)
}

// goals godoc
// @Summary Goal progress of a month
// @Tags dashboard
// @Produce json
// @Param month query int false "Month"
// @Param year query int false "Year"
// @Success 200 {array} domain.GoalProgress
// @Security BearerAuth
// @Router /dashboard/goals [get]
func (h *dashboardHandler) goals(c *gin.Context) {
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	month, year := h.period(params.Month, params.Year)
	out, err := h.dashboardService.Goals(c.Request.Context(), month, year)
	if err != nil {
		respondError(c, err, "Failed to compute goal progress")
		return
	}
	c.JSON(http.StatusOK, out)
}

// ranking godoc
// @Summary Responsible ranking
// @Tags dashboard
// @Produce json
// @Success 200 {array} domain.ResponsibleRank
// @Security BearerAuth
// @Router /dashboard/ranking [get]
func (h *dashboardHandler) ranking(c *gin.Context) {
	params, ok := h.bindFilter(c)
	if !ok {
		return
	}
	out, err := h.dashboardService.Ranking(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to compute ranking")
		return
	}
	c.JSON(http.StatusOK, out)
}

// top godoc
// @Summary Largest transactions
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of transactions" default(5)
// @Success 200 {object} domain.TopTransactions
// @Security BearerAuth
// @Router /dashboard/top [get]
func (h *dashboardHandler) top(c *gin.Context) {
	var params dto.TopTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.dashboardService.Top(c.Request.Context(), params.ToFilter(), params.Limit)
	if err != nil {
		respondError(c, err, "Failed to compute top transactions")
		return
	}
	c.JSON(http.StatusOK, out)
}

// temporal godoc
// @Summary Weekday and day-of-month breakdown
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.TemporalBreakdown
// @Security BearerAuth
// @Router /dashboard/temporal [get]
func (h *dashboardHandler) temporal(c *gin.Context) {
	params, ok := h.bindFilter(c)
	if !ok {
		return
	}
	out, err := h.dashboardService.Temporal(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to compute temporal breakdown")
		return
	}
	c.JSON(http.StatusOK, out)
}

// health godoc
// @Summary Financial health of a month
// @Tags dashboard
// @Produce json
// @Param month query int false "Month"
// @Param year query int false "Year"
// @Success 200 {object} domain.FinancialHealth
// @Security BearerAuth
// @Router /dashboard/health [get]
func (h *dashboardHandler) health(c *gin.Context) {
	params, ok := h.bindFilter(c)
	if !ok {
		return
	}
	month, year := h.period(params.Month, params.Year)
	out, err := h.dashboardService.Health(c.Request.Context(), params.ToFilter(), month, year)
	if err != nil {
		respondError(c, err, "Failed to compute financial health")
		return
	}
	c.JSON(http.StatusOK, out)
}

// advanced godoc
// @Summary Ticket and flow metrics
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.AdvancedMetrics
// @Security BearerAuth
// @Router /dashboard/advanced [get]
func (h *dashboardHandler) advanced(c *gin.Context) {
	params, ok := h.bindFilter(c)
	if !ok {
		return
	}
	out, err := h.dashboardService.Advanced(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to compute metrics")
		return
	}
	c.JSON(http.StatusOK, out)
}

// breakdown godoc
// @Summary Report breakdown by category and responsible
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.Breakdown
// @Security BearerAuth
// @Router /dashboard/breakdown [get]
func (h *dashboardHandler) breakdown(c *gin.Context) {
	params, ok := h.bindFilter(c)
	if !ok {
		return
	}
	out, err := h.dashboardService.Breakdown(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to compute breakdown")
		return
	}
	c.JSON(http.StatusOK, out)
}
