package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bagdasarian/group-managers/internal/auth"
	"github.com/bagdasarian/group-managers/internal/config"
	"github.com/bagdasarian/group-managers/internal/db"
	"github.com/bagdasarian/group-managers/internal/features"
	"github.com/bagdasarian/group-managers/internal/handler"
	"github.com/bagdasarian/group-managers/internal/handler/server"
	"github.com/bagdasarian/group-managers/internal/moderators"
	"github.com/bagdasarian/group-managers/internal/plugin"
	"github.com/bagdasarian/group-managers/internal/repository/postgres"
	"github.com/bagdasarian/group-managers/internal/service"
)

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.Logging.Level)}))
	slog.SetDefault(logger)

	if cfg.Auth.JWTSecret == "" {
		logger.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	featureManager := features.NewManager(cfg.Features)
	if err := featureManager.LoadFile(cfg.Features.File); err != nil {
		logger.Error("failed to load features file", "path", cfg.Features.File, "error", err)
		os.Exit(1)
	}

	registry := plugin.NewRegistry(plugin.DuplicateError)
	guards := plugin.NewNavGuards(plugin.DefaultNavGuards())
	snapshot, err := moderators.InitializeExtensions(moderators.Config{
		Features: featureManager,
		Registry: registry,
		Guards:   guards,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("failed to initialize extensions", "error", err)
		os.Exit(1)
	}
	logger.Info("extensions initialized",
		"premium_features", featureManager.Enabled(),
		"extensions", snapshot.ExtensionNames(),
		"overridden_guards", snapshot.Overridden,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database := db.MustLoad(ctx, cfg)
	cancel()
	logger.Info("Successfully connected to database!")
	defer database.Close()

	groupRepo := postgres.NewGroupRepository(database)
	membershipRepo := postgres.NewMembershipRepository(database)
	userRepo := postgres.NewUserRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	groupService := service.NewGroupService(groupRepo)
	membershipService := service.NewMembershipService(membershipRepo, groupRepo, userRepo, registry)
	userService := service.NewUserService(userRepo)
	statsService := service.NewStatsService(statsRepo)

	verifier := auth.NewJWTVerifier([]byte(cfg.Auth.JWTSecret))

	h := handler.NewHandler(groupService, membershipService, userService, statsService, registry, guards)
	srv := server.NewServer(h, cfg.Server.HTTPAddr, auth.HTTPMiddleware(verifier, userService), logger)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}
}
