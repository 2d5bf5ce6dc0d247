package config

import (
	"errors"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string
	RefreshTokenCookiePath     string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	FrontendBaseURL    string

	// Reference data cache. Redis is used when RedisAddr is set.
	RedisAddr         string
	ReferenceCacheTTL time.Duration

	// Mutation events. Disabled when AMQPURL is empty.
	AMQPURL      string
	AMQPExchange string

	PosthogAPIKey   string
	PosthogEndpoint string

	// LoginRateLimit uses the ulule/limiter format, e.g. "5-M".
	LoginRateLimit string

	// CashCriticalThreshold is the balance below which the projection raises a critical warning.
	CashCriticalThreshold decimal.Decimal

	// Bootstrap administrator, created on startup when no user has this email.
	AdminEmail    string
	AdminPassword string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "cashflow-dashboard")
	v.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	v.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "rtid")
	v.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/api/v1/auth")
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URL", "")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REFERENCE_CACHE_TTL", "5m")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "cashflow.events")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("CASH_CRITICAL_THRESHOLD", "500")
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   v.GetString("PGSQL_URL"),
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),

		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTExpiryDuration: durationOrDefault(v, "JWT_EXPIRY_DURATION", time.Hour),
		JWTIssuer:         v.GetString("JWT_ISSUER"),

		RefreshTokenExpiryDuration: durationOrDefault(v, "REFRESH_TOKEN_EXPIRY_DURATION", 7*24*time.Hour),
		RefreshTokenCookieName:     v.GetString("REFRESH_TOKEN_COOKIE_NAME"),
		RefreshTokenCookiePath:     v.GetString("REFRESH_TOKEN_COOKIE_PATH"),

		GoogleClientID:     v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  v.GetString("GOOGLE_REDIRECT_URL"),
		FrontendBaseURL:    v.GetString("FRONTEND_BASE_URL"),

		RedisAddr:         v.GetString("REDIS_ADDR"),
		ReferenceCacheTTL: durationOrDefault(v, "REFERENCE_CACHE_TTL", 5*time.Minute),

		AMQPURL:      v.GetString("AMQP_URL"),
		AMQPExchange: v.GetString("AMQP_EXCHANGE"),

		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint: v.GetString("POSTHOG_ENDPOINT"),

		LoginRateLimit: v.GetString("LOGIN_RATE_LIMIT"),

		AdminEmail:    v.GetString("ADMIN_EMAIL"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
	}

	threshold, err := decimal.NewFromString(v.GetString("CASH_CRITICAL_THRESHOLD"))
	if err != nil {
		slog.Warn("Invalid CASH_CRITICAL_THRESHOLD, defaulting to 500", slog.String("value", v.GetString("CASH_CRITICAL_THRESHOLD")))
		threshold = decimal.NewFromInt(500)
	}
	cfg.CashCriticalThreshold = threshold

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		slog.Warn("JWT_SECRET not set, using default insecure key")
	}
	if cfg.GoogleClientID == "" {
		slog.Warn("GOOGLE_CLIENT_ID not set, Google sign-in will not function")
	}

	return cfg, nil
}

// durationOrDefault parses a duration key, falling back to def when it is missing or invalid.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("Invalid duration, using default",
			slog.String("key", key), slog.String("value", raw), slog.String("default", def.String()))
		return def
	}
	return d
}
