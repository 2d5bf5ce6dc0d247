package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// IDTokenValidator verifies a Google ID token for an audience. idtoken.Validate satisfies it.
type IDTokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// GoogleAuthOption customizes the Google sign-in service.
type GoogleAuthOption func(*googleAuthService)

// WithIDTokenValidator replaces idtoken.Validate.
func WithIDTokenValidator(v IDTokenValidator) GoogleAuthOption {
	return func(s *googleAuthService) { s.validate = v }
}

// WithOAuth2Endpoint replaces the Google OAuth endpoint used for code exchange.
func WithOAuth2Endpoint(e oauth2.Endpoint) GoogleAuthOption {
	return func(s *googleAuthService) { s.oauth2Config.Endpoint = e }
}

type googleAuthService struct {
	BaseService
	clientID     string
	oauth2Config *oauth2.Config
	validate     IDTokenValidator
}

// NewGoogleAuthService creates the Google sign-in service. Without a client ID every call fails.
func NewGoogleAuthService(cfg *config.Config, opts ...GoogleAuthOption) portssvc.GoogleAuthSvcFacade {
	s := &googleAuthService{
		BaseService: newBaseService(),
		clientID:    cfg.GoogleClientID,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateIDToken validates an ID token received from Google and returns its identity claims.
func (s *googleAuthService) ValidateIDToken(ctx context.Context, idToken string) (*domain.GoogleUserInfo, error) {
	if s.clientID == "" {
		return nil, errors.New("google client ID is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.LogInfo(ctx, "Google ID token rejected", "error", err.Error())
		return nil, apperrors.NewAppError(401, "invalid google ID token", fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err))
	}

	info := &domain.GoogleUserInfo{Subject: payload.Subject}
	if v, ok := payload.Claims["email"].(string); ok {
		info.Email = v
	}
	if v, ok := payload.Claims["email_verified"].(bool); ok {
		info.EmailVerified = v
	}
	if v, ok := payload.Claims["name"].(string); ok {
		info.Name = v
	}
	if info.Email == "" || !info.EmailVerified {
		return nil, apperrors.NewUnauthorizedError("google account email is not verified")
	}
	return info, nil
}

// ExchangeCode exchanges an OAuth authorization code and validates the ID token in the response.
func (s *googleAuthService) ExchangeCode(ctx context.Context, code string) (*domain.GoogleUserInfo, error) {
	if s.clientID == "" {
		return nil, errors.New("google client ID is not configured")
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogInfo(ctx, "Google code exchange failed", "error", err.Error())
		return nil, apperrors.NewAppError(401, "failed to exchange google authorization code", fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err))
	}
	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return nil, apperrors.NewUnauthorizedError("google response did not include an ID token")
	}
	return s.ValidateIDToken(ctx, idToken)
}
