package services_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/core/services"
	"github.com/SscSPs/cashflow_dashboard/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

func fakeValidator(t *testing.T, wantToken string, claims map[string]any) services.IDTokenValidator {
	return func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "client-123", audience)
		if token != wantToken {
			return nil, errors.New("idtoken: invalid token")
		}
		return &idtoken.Payload{Subject: "google-sub", Claims: claims}, nil
	}
}

func TestGoogleAuth_ValidateIDToken(t *testing.T) {
	cfg := &config.Config{GoogleClientID: "client-123"}

	t.Run("verified email", func(t *testing.T) {
		svc := services.NewGoogleAuthService(cfg, services.WithIDTokenValidator(fakeValidator(t, "good", map[string]any{
			"email": "ana@example.com", "email_verified": true, "name": "Ana",
		})))
		info, err := svc.ValidateIDToken(context.Background(), "good")
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", info.Email)
		assert.Equal(t, "Ana", info.Name)
		assert.Equal(t, "google-sub", info.Subject)
	})

	t.Run("unverified email", func(t *testing.T) {
		svc := services.NewGoogleAuthService(cfg, services.WithIDTokenValidator(fakeValidator(t, "good", map[string]any{
			"email": "ana@example.com", "email_verified": false,
		})))
		_, err := svc.ValidateIDToken(context.Background(), "good")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc := services.NewGoogleAuthService(cfg, services.WithIDTokenValidator(fakeValidator(t, "good", nil)))
		_, err := svc.ValidateIDToken(context.Background(), "forged")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("not configured", func(t *testing.T) {
		svc := services.NewGoogleAuthService(&config.Config{})
		_, err := svc.ValidateIDToken(context.Background(), "good")
		assert.Error(t, err)
	})
}

func TestGoogleAuth_ExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		if r.Form.Get("code") != "auth-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"Bearer","expires_in":3600,"id_token":"good"}`))
	}))
	defer srv.Close()

	cfg := &config.Config{GoogleClientID: "client-123", GoogleClientSecret: "secret"}
	svc := services.NewGoogleAuthService(cfg,
		services.WithOAuth2Endpoint(oauth2.Endpoint{TokenURL: srv.URL, AuthStyle: oauth2.AuthStyleInParams}),
		services.WithIDTokenValidator(fakeValidator(t, "good", map[string]any{"email": "ana@example.com", "email_verified": true})),
	)

	info, err := svc.ExchangeCode(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", info.Email)

	_, err = svc.ExchangeCode(context.Background(), "bad-code")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
