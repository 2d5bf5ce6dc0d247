package services

import (
	"context"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a short lived access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// IssueRefreshToken creates a new refresh token and stores its hash on the user, replacing any previous one.
	IssueRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// RotateRefreshToken validates a refresh token and replaces it with a new one.
	// It returns the owner and the new token.
	RotateRefreshToken(ctx context.Context, refreshToken string) (*domain.User, string, time.Time, error)

	// RevokeRefreshToken clears the session identified by the refresh token. Unknown tokens are ignored.
	RevokeRefreshToken(ctx context.Context, refreshToken string) error
}

// GoogleAuthSvcFacade defines Google sign-in operations.
type GoogleAuthSvcFacade interface {
	// ValidateIDToken verifies a Google ID token issued for this application.
	ValidateIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error)

	// ExchangeCode exchanges an authorization code and validates the returned ID token.
	ExchangeCode(ctx context.Context, code string) (*domain.GoogleUserInfo, error)
}
