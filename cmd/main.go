package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SebasEPV/TimeBoxing/config"
	"github.com/SebasEPV/TimeBoxing/db"
	"github.com/SebasEPV/TimeBoxing/internal/auth/handler"
	repo "github.com/SebasEPV/TimeBoxing/internal/auth/repository/postgres"
	"github.com/SebasEPV/TimeBoxing/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx := context.Background()

	if err := db.Migrate(cfg.DBURL); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	userRepo := repo.NewRepository(dbPool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryHours)
	authService := service.NewAuthService(userRepo, tokenService, logger)
	authHandler := handler.NewAuthHandler(authService, tokenService, logger)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	logger.Info("starting auth service", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
