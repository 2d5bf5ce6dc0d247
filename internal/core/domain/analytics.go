package domain

import "github.com/shopspring/decimal"

// Totals is the inflow/outflow summary of a set of entries.
type Totals struct {
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Saldo   decimal.Decimal `json:"saldo"`
	Margin  decimal.Decimal `json:"margin"` // saldo as a percentage of inflow
	Count   int             `json:"count"`
}

// PeriodTotals are Totals scoped to a calendar month.
type PeriodTotals struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	Totals
}

// MonthComparison compares a month against the month before it.
type MonthComparison struct {
	Current          PeriodTotals    `json:"current"`
	Previous         PeriodTotals    `json:"previous"`
	InflowVariation  decimal.Decimal `json:"inflowVariation"`
	OutflowVariation decimal.Decimal `json:"outflowVariation"`
	SaldoVariation   decimal.Decimal `json:"saldoVariation"`
}

// ProjectionWarningKind identifies a cash projection alert.
type ProjectionWarningKind string

const (
	WarningNegative ProjectionWarningKind = "negative"
	WarningCritical ProjectionWarningKind = "critical"
	WarningRunway   ProjectionWarningKind = "runway"
)

type ProjectionWarning struct {
	Kind    ProjectionWarningKind `json:"kind"`
	Day     int                   `json:"day"`
	Date    string                `json:"date,omitempty"`
	Message string                `json:"message"`
}

// ProjectionPoint is one projected day. Saldo is clamped at zero for display, RealSaldo is not.
type ProjectionPoint struct {
	Day       int             `json:"day"`
	Date      string          `json:"date"`
	Saldo     decimal.Decimal `json:"saldo"`
	RealSaldo decimal.Decimal `json:"realSaldo"`
}

type CashFlowProjection struct {
	HistoricalSaldo decimal.Decimal     `json:"historicalSaldo"`
	AvgDailyInflow  decimal.Decimal     `json:"avgDailyInflow"`
	AvgDailyOutflow decimal.Decimal     `json:"avgDailyOutflow"`
	DailyNetFlow    decimal.Decimal     `json:"dailyNetFlow"`
	WindowDays      int                 `json:"windowDays"`
	NonNegativeDays int                 `json:"nonNegativeDays"`
	FinalSaldo      decimal.Decimal     `json:"finalSaldo"`
	Points          []ProjectionPoint   `json:"points"`
	Warnings        []ProjectionWarning `json:"warnings"`
}

// GoalStatus classifies how far a goal has been realized.
type GoalStatus string

const (
	GoalAchieved GoalStatus = "achieved"
	GoalOnTrack  GoalStatus = "on_track"
	GoalBehind   GoalStatus = "behind"
)

type GoalProgress struct {
	GoalID         string          `json:"goalID"`
	CategoryID     string          `json:"categoryID"`
	CategoryName   string          `json:"categoryName"`
	Kind           EntryKind       `json:"kind"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	Target         decimal.Decimal `json:"target"`
	Realized       decimal.Decimal `json:"realized"`
	Percent        decimal.Decimal `json:"percent"`
	DisplayPercent decimal.Decimal `json:"displayPercent"`
	Remaining      decimal.Decimal `json:"remaining"`
	Status         GoalStatus      `json:"status"`
}

// ResponsibleRank is the performance of one responsible party.
type ResponsibleRank struct {
	Name          string          `json:"name"`
	Count         int             `json:"count"`
	Inflow        decimal.Decimal `json:"inflow"`
	Outflow       decimal.Decimal `json:"outflow"`
	Saldo         decimal.Decimal `json:"saldo"`
	AverageTicket decimal.Decimal `json:"averageTicket"`
	OutflowRatio  decimal.Decimal `json:"outflowRatio"`
}

type TopTransaction struct {
	EntryID         string          `json:"entryID"`
	Date            string          `json:"date"`
	Kind            EntryKind       `json:"kind"`
	Description     string          `json:"description"`
	CategoryName    string          `json:"categoryName"`
	ResponsibleName string          `json:"responsibleName"`
	Amount          decimal.Decimal `json:"amount"`
}

type TopTransactions struct {
	Items          []TopTransaction `json:"items"`
	CombinedAmount decimal.Decimal  `json:"combinedAmount"`
	GrandTotal     decimal.Decimal  `json:"grandTotal"`
	Share          decimal.Decimal  `json:"share"`
}

// TemporalBucket accumulates entries falling on one weekday or one day of the month.
type TemporalBucket struct {
	Key     int             `json:"key"`
	Label   string          `json:"label,omitempty"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Saldo   decimal.Decimal `json:"saldo"`
	Count   int             `json:"count"`
}

type TemporalBreakdown struct {
	Weekdays       []TemporalBucket `json:"weekdays"`
	DaysOfMonth    []TemporalBucket `json:"daysOfMonth"`
	BusiestWeekday int              `json:"busiestWeekday"` // -1 when there are no entries
	BestDayOfMonth int              `json:"bestDayOfMonth"` // 0 when there are no entries
}

// HealthStatus is the coverage classification of a month.
type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthAttention HealthStatus = "attention"
	HealthCritical  HealthStatus = "critical"
)

type FinancialHealth struct {
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	Inflow         decimal.Decimal `json:"inflow"`
	Outflow        decimal.Decimal `json:"outflow"`
	Saldo          decimal.Decimal `json:"saldo"`
	ActiveDays     int             `json:"activeDays"`
	DailyExpense   decimal.Decimal `json:"dailyExpense"`
	MonthlyExpense decimal.Decimal `json:"monthlyExpense"`
	RunwayMonths   decimal.Decimal `json:"runwayMonths"`
	Coverage       decimal.Decimal `json:"coverage"`
	Status         HealthStatus    `json:"status"`
	InflowGoal     *GoalProgress   `json:"inflowGoal,omitempty"`
	OutflowGoal    *GoalProgress   `json:"outflowGoal,omitempty"`
}

// FlowPoint is the movement of a single date.
type FlowPoint struct {
	Date       string          `json:"date"`
	Inflow     decimal.Decimal `json:"inflow"`
	Outflow    decimal.Decimal `json:"outflow"`
	Saldo      decimal.Decimal `json:"saldo"`
	Cumulative decimal.Decimal `json:"cumulative"`
}

type AdvancedMetrics struct {
	InflowCount      int             `json:"inflowCount"`
	OutflowCount     int             `json:"outflowCount"`
	AvgInflowTicket  decimal.Decimal `json:"avgInflowTicket"`
	AvgOutflowTicket decimal.Decimal `json:"avgOutflowTicket"`
	LargestInflow    decimal.Decimal `json:"largestInflow"`
	LargestOutflow   decimal.Decimal `json:"largestOutflow"`
	CumulativeFlow   []FlowPoint     `json:"cumulativeFlow"`
	DailyFlow        []FlowPoint     `json:"dailyFlow"`
}

type BreakdownItem struct {
	Name    string          `json:"name"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Saldo   decimal.Decimal `json:"saldo"`
	Count   int             `json:"count"`
}

// Breakdown is the full report view: totals plus per-category and per-responsible groups.
type Breakdown struct {
	Totals         Totals          `json:"totals"`
	AverageTicket  decimal.Decimal `json:"averageTicket"`
	OutflowPercent decimal.Decimal `json:"outflowPercent"`
	ByCategory     []BreakdownItem `json:"byCategory"`
	ByResponsible  []BreakdownItem `json:"byResponsible"`
}

// DashboardSummary is the KPI tile payload.
type DashboardSummary struct {
	Totals     Totals          `json:"totals"`
	Comparison MonthComparison `json:"comparison"`
	Goals      []GoalProgress  `json:"goals"`
}
