package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/SscSPs/cashflow_dashboard/internal/events"
	"github.com/SscSPs/cashflow_dashboard/internal/utils"
	"github.com/google/uuid"
)

// SystemUserID is recorded as the creator of users bootstrapped at startup.
const SystemUserID = "system"

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user service. It is also the authorizer of every other service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, opts ...ServiceOption) portssvc.UserSvcFacade {
	s := &userService{BaseService: newBaseService(opts...), userRepo: userRepo}
	if s.Authorizer == nil {
		s.Authorizer = s
	}
	return s
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by email")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// Authorize loads the user's current role so that role changes apply to live tokens.
func (s *userService) Authorize(ctx context.Context, userID string, action domain.Action) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewForbiddenError("unknown user")
		}
		return fmt.Errorf("failed to load user for authorization: %w", err)
	}
	if !user.Role.HasPermission(action) {
		s.LogInfo(ctx, "Action denied by role",
			slog.String("user_id", userID), slog.String("role", string(user.Role)), slog.String("action", string(action)))
		return apperrors.NewForbiddenError(fmt.Sprintf("role %s may not %s", user.Role, action))
	}
	return nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorID string) (*domain.User, error) {
	if err := s.AuthorizeUser(ctx, creatorID, domain.ActionManage); err != nil {
		return nil, err
	}
	return s.createUser(ctx, req, creatorID)
}

func (s *userService) createUser(ctx context.Context, req dto.CreateUserRequest, creatorID string) (*domain.User, error) {
	email := normalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.NewValidationFailedError("a valid email is required")
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid role %q", req.Role))
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflictError("a user with this email already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing user")
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Role:         req.Role,
		AuditFields:  s.auditFields(creatorID),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	s.publish(ctx, events.New(events.UserCreated, events.OpCreated, user.UserID, creatorID))
	return &user, nil
}

func (s *userService) EnsureAdmin(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" {
		return nil
	}
	_, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}
	_, err = s.createUser(ctx, dto.CreateUserRequest{
		Email:    email,
		Password: password,
		Role:     domain.RoleAdmin,
	}, SystemUserID)
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin user: %w", err)
	}
	return nil
}

// AuthenticateUser returns ErrUnauthorized for unknown emails and wrong passwords alike.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		s.LogError(ctx, err, "Failed to load user for authentication")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}
	return user, nil
}
