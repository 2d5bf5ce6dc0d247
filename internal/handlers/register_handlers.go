package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/cashflow_dashboard/cmd/docs"
	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/middleware"
	"github.com/SscSPs/cashflow_dashboard/internal/platform/config"
	"github.com/SscSPs/cashflow_dashboard/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	tracker *utils.Tracker,
) error {
	RegisterValidators()

	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	loginLimiter, err := middleware.NewRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login rate limiter: %w", err)
	}
	registerAuthRoutes(r, cfg, services, middleware.RateLimit(loginLimiter))

	setupAPIV1Routes(r, cfg, services, tracker)

	setupSwaggerRoutes(r, cfg)
	return nil
}

const defaultFrontendOrigin = "http://localhost:3000"

func corsConfig(cfg *config.Config) cors.Config {
	origins := make([]string, 0, 1)
	for _, o := range strings.Split(cfg.FrontendBaseURL, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = append(origins, defaultFrontendOrigin)
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// setupAPIV1Routes configures the authenticated /api/v1 group
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	tracker *utils.Tracker,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		middleware.PosthogMiddleware(tracker),
	)

	registerUserRoutes(v1, services.User)
	registerEntryRoutes(v1, services.Entry)
	registerReferenceRoutes(v1, services.Reference)
	registerGoalRoutes(v1, services.Goal)
	registerDashboardRoutes(v1, services.Dashboard, time.Now)
	registerExportRoutes(v1, services.Export)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
