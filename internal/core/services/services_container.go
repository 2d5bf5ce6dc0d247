package services

import (
	"log/slog"

	"github.com/SscSPs/cashflow_dashboard/internal/cache"
	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/cashflow_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/events"
	"github.com/SscSPs/cashflow_dashboard/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

const referenceCachePrefix = "cashflow:ref:"

// NewReferenceCaches builds the reference caches on Redis when a client is given and in memory otherwise.
func NewReferenceCaches(redisClient *redis.Client, cfg *config.Config, logger *slog.Logger) ReferenceCaches {
	return ReferenceCaches{
		Categories:   cache.New[[]domain.Category](redisClient, referenceCachePrefix, cfg.ReferenceCacheTTL, logger),
		Responsibles: cache.New[[]domain.Responsible](redisClient, referenceCachePrefix, cfg.ReferenceCacheTTL, logger),
		Tags:         cache.New[[]domain.Tag](redisClient, referenceCachePrefix, cfg.ReferenceCacheTTL, logger),
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	publisher events.Publisher,
	redisClient *redis.Client,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The user service is the authorizer of every other service, so it comes first.
	container.User = NewUserService(repos.UserRepo, WithPublisher(publisher))
	opts := []ServiceOption{WithAuthorizer(container.User), WithPublisher(publisher)}

	container.Entry = NewEntryService(repos.EntryRepo, repos.CategoryRepo, repos.ResponsibleRepo, repos.TagRepo, opts...)
	container.Reference = NewReferenceDataService(
		repos.CategoryRepo,
		repos.ResponsibleRepo,
		repos.TagRepo,
		NewReferenceCaches(redisClient, cfg, logger),
		opts...,
	)
	container.Goal = NewGoalService(repos.GoalRepo, repos.CategoryRepo, opts...)
	container.Dashboard = NewDashboardService(repos.EntryRepo, repos.GoalRepo, cfg.CashCriticalThreshold, opts...)
	container.Export = NewExportService(repos.EntryRepo, opts...)

	container.Token = NewTokenService(cfg, repos.UserRepo)
	container.GoogleAuth = NewGoogleAuthService(cfg)

	return container
}
