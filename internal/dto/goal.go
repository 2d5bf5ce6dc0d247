package dto

import (
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalRequest is used to create or replace a monthly goal.
type GoalRequest struct {
	CategoryID   string           `json:"categoryID" binding:"required"`
	Kind         domain.EntryKind `json:"kind" binding:"required,entry_kind"`
	TargetAmount decimal.Decimal  `json:"targetAmount" binding:"positive_decimal"`
	Month        int              `json:"month" binding:"required,min=1,max=12"`
	Year         int              `json:"year" binding:"required,min=1900,max=9999"`
}

// GoalFilterParams defines query parameters for listing goals.
type GoalFilterParams struct {
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  *int `form:"year" binding:"omitempty,min=1900,max=9999"`
}

func (p GoalFilterParams) ToFilter() domain.GoalFilter {
	return domain.GoalFilter{Month: p.Month, Year: p.Year}
}

type ListGoalsResponse struct {
	Goals []domain.Goal `json:"goals"`
}
