// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/staffhub/staffhub/internal/app"
	"github.com/staffhub/staffhub/internal/auth"
	"github.com/staffhub/staffhub/internal/config"
	"github.com/staffhub/staffhub/internal/database/database"
	"github.com/staffhub/staffhub/internal/database/migrate"
	"github.com/staffhub/staffhub/pkg/logger"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	gin.SetMode(cfg.GinMode)

	db, err := database.New(sugar)
	if err != nil {
		sugar.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			sugar.Errorw("failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db, sugar); err != nil {
		sugar.Fatalw("failed to apply migrations", "error", err)
	}

	router, err := app.NewRouter(db, auth.NewManager(cfg.Auth), sugar)
	if err != nil {
		sugar.Fatalw("failed to build router", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx, app.NewServer(cfg.Server, router), cfg.Server, sugar); err != nil {
		sugar.Errorw("server error", "error", err)
		os.Exit(1)
	}
}
