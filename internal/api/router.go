package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/zynor/field-service-api/internal/api/handler"
	"github.com/zynor/field-service-api/internal/api/middleware"
	"github.com/zynor/field-service-api/internal/core/domain"
	"github.com/zynor/field-service-api/internal/core/service"
	"github.com/zynor/field-service-api/internal/infrastructure/db/postgres"
	"github.com/zynor/field-service-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fieldservice"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	technicianRepo := postgres.NewTechnicianRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	jobRepo := postgres.NewJobRepository(db)

	tokenTTL := time.Duration(cfg.TokenTTLMinutes) * time.Minute
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL, log)
	technicianService := service.NewTechnicianService(technicianRepo, log)
	customerService := service.NewCustomerService(customerRepo, log)
	jobService := service.NewJobService(jobRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	technicianHandler := handler.NewTechnicianHandler(technicianService)
	customerHandler := handler.NewCustomerHandler(customerService)
	jobHandler := handler.NewJobHandler(jobService)
	metaHandler := handler.NewMetaHandler(cfg.AppName, cfg.Env)

	requireAuth := middleware.Auth(authService)
	optionalAuth := middleware.OptionalAuth(authService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, requireAuth)

	// --- Technician routes ---
	e.POST("/technicians", technicianHandler.Create, optionalAuth)
	e.GET("/technicians", technicianHandler.List)
	e.GET("/technicians/:id", technicianHandler.Get)
	e.PUT("/technicians/:id", technicianHandler.Update, optionalAuth)
	e.PATCH("/technicians/:id", technicianHandler.Patch, requireAuth, adminOnly)
	e.DELETE("/technicians/:id", technicianHandler.Delete)

	// --- Customer routes ---
	e.POST("/customers", customerHandler.Create)
	e.GET("/customers", customerHandler.List)
	e.GET("/customers/:id", customerHandler.Get)
	e.PUT("/customers/:id", customerHandler.Update)
	e.PATCH("/customers/:id", customerHandler.Update) // same partial-merge semantics
	e.DELETE("/customers/:id", customerHandler.Delete)

	// --- Job routes ---
	e.POST("/jobs", jobHandler.Create, optionalAuth)
	e.GET("/jobs", jobHandler.List)
	e.GET("/jobs/:id", jobHandler.Get)
	e.PUT("/jobs/:id", jobHandler.Update, optionalAuth)
	e.PATCH("/jobs/:id", jobHandler.Update, optionalAuth)
	e.DELETE("/jobs/:id", jobHandler.Delete)

	// --- Meta, health, and observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db)

	e.GET("/", metaHandler.Root)
	e.GET("/version", metaHandler.Version)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
