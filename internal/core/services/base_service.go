package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/apperrors"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/events"
	"github.com/SscSPs/cashflow_dashboard/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.AuthorizerSvc
	Publisher  events.Publisher
	Now        func() time.Time
}

// ServiceOption configures the BaseService embedded in every service.
type ServiceOption func(*BaseService)

// WithAuthorizer sets the permission checker used by AuthorizeUser.
func WithAuthorizer(a portssvc.AuthorizerSvc) ServiceOption {
	return func(b *BaseService) { b.Authorizer = a }
}

// WithPublisher sets where mutation events are sent.
func WithPublisher(p events.Publisher) ServiceOption {
	return func(b *BaseService) { b.Publisher = p }
}

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(b *BaseService) { b.Now = now }
}

func newBaseService(opts ...ServiceOption) BaseService {
	b := BaseService{Publisher: events.NoopPublisher{}, Now: time.Now}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).ErrorContext(ctx, msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).InfoContext(ctx, msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).DebugContext(ctx, msg, keyvals...)
}

// AuthorizeUser checks that the user's role allows the action.
// Without an authorizer every action is denied.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID string, action domain.Action) error {
	if s.Authorizer == nil {
		s.LogError(ctx, apperrors.ErrForbidden, "No authorizer configured, denying action",
			slog.String("user_id", userID), slog.String("action", string(action)))
		return apperrors.NewForbiddenError("action not allowed")
	}
	return s.Authorizer.Authorize(ctx, userID, action)
}

// publish sends an event. Failures are logged and never returned to the caller.
func (s *BaseService) publish(ctx context.Context, event events.Event) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish event",
			slog.String("event_type", string(event.Type)), slog.String("entity_id", event.EntityID))
	}
}

func (s *BaseService) auditFields(userID string) domain.AuditFields {
	now := s.Now().UTC()
	return domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}
}

func (s *BaseService) touch(a domain.AuditFields, userID string) domain.AuditFields {
	a.LastUpdatedAt = s.Now().UTC()
	a.LastUpdatedBy = userID
	return a
}
