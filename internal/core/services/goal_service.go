package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/SscSPs/cashflow_dashboard/internal/events"
	"github.com/google/uuid"
)

type goalService struct {
	BaseService
	goalRepo     portsrepo.GoalRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade, opts ...ServiceOption) portssvc.GoalSvcFacade {
	return &goalService{
		BaseService:  newBaseService(opts...),
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) ListGoals(ctx context.Context, filter domain.GoalFilter) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoals(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals")
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if goals == nil {
		return []domain.Goal{}, nil
	}
	return goals, nil
}

func (s *goalService) CreateGoal(ctx context.Context, req dto.GoalRequest, userID string) (*domain.Goal, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.ActionManage); err != nil {
		return nil, err
	}
	category, err := s.validateGoal(ctx, req)
	if err != nil {
		return nil, err
	}

	goal := domain.Goal{
		GoalID:       uuid.NewString(),
		CategoryID:   category.CategoryID,
		CategoryName: category.Name,
		Kind:         req.Kind,
		TargetAmount: req.TargetAmount,
		Month:        req.Month,
		Year:         req.Year,
		AuditFields:  s.auditFields(userID),
	}
	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		return nil, s.goalWriteError(ctx, err, "create goal")
	}
	s.LogInfo(ctx, "Goal created", slog.String("goal_id", goal.GoalID), slog.Int("month", goal.Month), slog.Int("year", goal.Year))
	s.publish(ctx, events.New(events.GoalChanged, events.OpCreated, goal.GoalID, userID))
	return &goal, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, goalID string, req dto.GoalRequest, userID string) (*domain.Goal, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.ActionManage); err != nil {
		return nil, err
	}
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	category, err := s.validateGoal(ctx, req)
	if err != nil {
		return nil, err
	}

	goal.CategoryID = category.CategoryID
	goal.CategoryName = category.Name
	goal.Kind = req.Kind
	goal.TargetAmount = req.TargetAmount
	goal.Month = req.Month
	goal.Year = req.Year
	goal.AuditFields = s.touch(goal.AuditFields, userID)

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		return nil, s.goalWriteError(ctx, err, "update goal")
	}
	s.publish(ctx, events.New(events.GoalChanged, events.OpUpdated, goalID, userID))
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		return s.goalWriteError(ctx, err, "delete goal")
	}
	s.publish(ctx, events.New(events.GoalChanged, events.OpDeleted, goalID, userID))
	return nil
}

// validateGoal checks the amount and period and that the goal kind matches its category.
func (s *goalService) validateGoal(ctx context.Context, req dto.GoalRequest) (*domain.Category, error) {
	if !req.TargetAmount.IsPositive() {
		return nil, apperrors.NewValidationFailedError("target amount must be greater than zero")
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid month %d", req.Month))
	}
	if !req.Kind.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid kind %q", req.Kind))
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("category %s does not exist", req.CategoryID))
		}
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}
	if category.Kind != req.Kind {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("category %s only accepts %s goals", category.Name, category.Kind))
	}
	return category, nil
}

func (s *goalService) goalWriteError(ctx context.Context, err error, op string) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) || errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	s.LogError(ctx, err, "Failed to "+op)
	return fmt.Errorf("failed to %s: %w", op, err)
}
