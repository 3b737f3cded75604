package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rosterhub/rosterhub/internal/api"
	"github.com/rosterhub/rosterhub/internal/factory"
	"github.com/rosterhub/rosterhub/internal/services/auth"
	redisstorage "github.com/rosterhub/rosterhub/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build auth config from environment
	authCfg := auth.DefaultConfig()
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		authCfg.Secret = []byte(secret)
	} else {
		// An ephemeral secret invalidates sessions on restart; fine for
		// development, not for anything else
		logger.Warn("JWT_SECRET not set, sessions will not survive restarts")
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			logger.Error("invalid TOKEN_TTL", slog.String("error", err.Error()))
			os.Exit(1)
		}
		authCfg.TokenTTL = parsed
	}

	// Build factory config from environment
	cfg := factory.Config{
		AuthConfig:  authCfg,
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Ensure an admin account exists
	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
		logger.Warn("ADMIN_PASSWORD not set, using default admin credentials")
	}
	if err := app.AuthService.SeedAdmin(context.Background(), adminUsername, adminPassword); err != nil {
		logger.Error("failed to seed admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:               logger,
		AuthService:          app.AuthService,
		RosterController:     app.RosterController,
		ScheduleController:   app.ScheduleController,
		AttendanceController: app.AttendanceController,
		TokenTTL:             authCfg.TokenTTL,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		parsed, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid PORT", slog.String("error", err.Error()))
			os.Exit(1)
		}
		serverConfig.Port = parsed
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
