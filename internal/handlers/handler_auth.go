package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/SscSPs/cashflow_dashboard/internal/middleware"
	"github.com/SscSPs/cashflow_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles login, session refresh and logout.
type authHandler struct {
	userService   portssvc.UserSvcFacade
	tokenService  portssvc.TokenSvcFacade
	googleService portssvc.GoogleAuthSvcFacade
	cfg           *config.Config
}

func newAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:   services.User,
		tokenService:  services.Token,
		googleService: services.GoogleAuth,
		cfg:           cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes. Credential endpoints are rate limited.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, limit gin.HandlerFunc) {
	h := newAuthHandler(services, cfg)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limit, h.login)
		auth.POST("/google", limit, h.googleLogin)
		auth.POST("/google/exchange-code", limit, h.googleExchangeCode)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user with email and password. The refresh token is set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to authenticate")
		return
	}
	h.startSession(c, user)
}

// googleLogin godoc
// @Summary Sign in with a Google ID token
// @Description Validates an ID token from Google Identity Services. Only existing users may sign in.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [post]
func (h *authHandler) googleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.googleSession(c, func(ctx context.Context) (*domain.GoogleUserInfo, error) {
		return h.googleService.ValidateIDToken(ctx, req.IDToken)
	})
}

// googleExchangeCode godoc
// @Summary Sign in with a Google authorization code
// @Description Exchanges an OAuth authorization code server-side and validates the returned ID token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleCodeExchangeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *authHandler) googleExchangeCode(c *gin.Context) {
	var req dto.GoogleCodeExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.googleSession(c, func(ctx context.Context) (*domain.GoogleUserInfo, error) {
		return h.googleService.ExchangeCode(ctx, req.Code)
	})
}

func (h *authHandler) googleSession(c *gin.Context, verify func(context.Context) (*domain.GoogleUserInfo, error)) {
	ctx := c.Request.Context()
	info, err := verify(ctx)
	if err != nil {
		respondError(c, err, "Failed to verify Google sign-in")
		return
	}
	user, err := h.userService.GetUserByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromContext(c).Info("Google sign-in for unknown email", slog.String("google_sub", info.Subject))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No account is registered for this Google email"})
			return
		}
		respondError(c, err, "Failed to load user")
		return
	}
	h.startSession(c, user)
}

// refresh godoc
// @Summary Refresh the session
// @Description Rotates the refresh token cookie and returns a new access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	token, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token missing"})
		return
	}
	user, newToken, expiresAt, err := h.tokenService.RotateRefreshToken(c.Request.Context(), token)
	if err != nil {
		if statusFor(err) == http.StatusUnauthorized {
			h.clearCookie(c)
		}
		respondError(c, err, "Failed to refresh session")
		return
	}
	h.setCookie(c, newToken, expiresAt)
	h.respondWithAccessToken(c, user)
}

// logout godoc
// @Summary Log out
// @Description Revokes the refresh token and clears its cookie.
// @Tags auth
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	if token, err := c.Cookie(h.cfg.RefreshTokenCookieName); err == nil && token != "" {
		if err := h.tokenService.RevokeRefreshToken(c.Request.Context(), token); err != nil {
			respondError(c, err, "Failed to log out")
			return
		}
	}
	h.clearCookie(c)
	c.Status(http.StatusNoContent)
}

// startSession issues a refresh token cookie and responds with an access token.
func (h *authHandler) startSession(c *gin.Context, user *domain.User) {
	refreshToken, expiresAt, err := h.tokenService.IssueRefreshToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to start session")
		return
	}
	h.setCookie(c, refreshToken, expiresAt)
	middleware.GetLoggerFromContext(c).Info("User logged in", slog.String("user_id", user.UserID))
	h.respondWithAccessToken(c, user)
}

func (h *authHandler) respondWithAccessToken(c *gin.Context, user *domain.User) {
	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}
	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        dto.ToUserResponse(user),
	})
}

func (h *authHandler) setCookie(c *gin.Context, value string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, value, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func (h *authHandler) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}
