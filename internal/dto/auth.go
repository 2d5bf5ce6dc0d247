package dto

import "time"

// LoginRequest holds email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries an ID token obtained by the frontend from Google Identity Services.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// GoogleCodeExchangeRequest carries an OAuth authorization code to exchange server-side.
type GoogleCodeExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}

// AuthResponse is returned by every endpoint that starts or refreshes a session.
// The refresh token itself travels in an HttpOnly cookie.
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}
