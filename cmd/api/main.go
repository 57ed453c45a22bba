package main

import (
	"context"
	"time"

	"github.com/zynor/field-service-api/internal/api"
	"github.com/zynor/field-service-api/internal/core/service"
	"github.com/zynor/field-service-api/internal/infrastructure/db/postgres"
	"github.com/zynor/field-service-api/internal/pkg/config"
	"github.com/zynor/field-service-api/pkg/logger"

	_ "github.com/zynor/field-service-api/docs"
)

// @title                      Field Service API
// @version                    0.3.0
// @description                Resource management API for field service operations: technicians, customers, and jobs.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Service: cfg.AppName,
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	db, err := postgres.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	// Seed the admin account before the server accepts traffic.
	userRepo := postgres.NewUserRepository(db)
	tokenTTL := time.Duration(cfg.TokenTTLMinutes) * time.Minute
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL, log)
	if err := authService.EnsureAdmin(context.Background(), cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	e := api.NewRouter(db, cfg, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
