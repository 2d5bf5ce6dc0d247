package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/platform/config"
	"github.com/SscSPs/cashflow_dashboard/internal/utils"
)

// tokenService signs access tokens and manages the single refresh token each user holds.
// Only the SHA-256 hash of a refresh token is persisted.
type tokenService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, opts ...ServiceOption) portssvc.TokenSvcFacade {
	return &tokenService{
		BaseService: newBaseService(opts...),
		cfg:         cfg,
		userRepo:    userRepo,
	}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := s.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

func (s *tokenService) IssueRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	plain, hash, err := utils.NewRefreshToken()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate refresh token", slog.String("user_id", user.UserID))
		return "", time.Time{}, err
	}
	expiryTime := s.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, hash, expiryTime); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return plain, expiryTime, nil
}

// RotateRefreshToken looks the token up by hash, so a leaked old token stops working as
// soon as the legitimate client rotates it.
func (s *tokenService) RotateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, string, time.Time, error) {
	user, err := s.findByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	if user.RefreshTokenExpiryTime == nil || s.Now().After(*user.RefreshTokenExpiryTime) {
		s.LogInfo(ctx, "Stored refresh token has expired", slog.String("user_id", user.UserID))
		if err := s.userRepo.ClearRefreshToken(ctx, user.UserID); err != nil {
			s.LogError(ctx, err, "Failed to clear expired refresh token", slog.String("user_id", user.UserID))
		}
		return nil, "", time.Time{}, apperrors.NewAppError(401, "refresh token expired", apperrors.ErrRefreshTokenExpired)
	}
	if !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		return nil, "", time.Time{}, apperrors.NewUnauthorizedError("invalid refresh token")
	}

	plain, expiry, err := s.IssueRefreshToken(ctx, user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, plain, expiry, nil
}

func (s *tokenService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	user, err := s.findByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return nil
		}
		return err
	}
	if err := s.userRepo.ClearRefreshToken(ctx, user.UserID); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", user.UserID))
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (s *tokenService) findByRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	if refreshToken == "" {
		return nil, apperrors.NewUnauthorizedError("missing refresh token")
	}
	user, err := s.userRepo.FindUserByRefreshTokenHash(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid refresh token")
		}
		s.LogError(ctx, err, "Failed to look up refresh token")
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	return user, nil
}
