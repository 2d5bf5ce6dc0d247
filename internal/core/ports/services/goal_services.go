package services

import (
	"context"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
)

// GoalSvcFacade manages monthly goals.
type GoalSvcFacade interface {
	ListGoals(ctx context.Context, filter domain.GoalFilter) ([]domain.Goal, error)
	CreateGoal(ctx context.Context, req dto.GoalRequest, userID string) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, req dto.GoalRequest, userID string) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID string, userID string) error
}
