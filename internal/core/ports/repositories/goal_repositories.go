package repositories

import (
	"context"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
)

// GoalReader defines read operations for goals
type GoalReader interface {
	// ListGoals retrieves goals, optionally restricted to a period, with category names joined.
	ListGoals(ctx context.Context, filter domain.GoalFilter) ([]domain.Goal, error)

	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)
}

// GoalWriter defines write operations for goals
type GoalWriter interface {
	SaveGoal(ctx context.Context, goal domain.Goal) error
	UpdateGoal(ctx context.Context, goal domain.Goal) error
	DeleteGoal(ctx context.Context, goalID string) error
}

// GoalRepositoryFacade combines all goal-related repository interfaces
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
