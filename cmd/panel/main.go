package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/voyago/admin-panel/internal/api/http"
	"github.com/voyago/admin-panel/internal/api/http/handlers"
	"github.com/voyago/admin-panel/internal/backend"
	"github.com/voyago/admin-panel/internal/config"
	"github.com/voyago/admin-panel/internal/observability"
	"github.com/voyago/admin-panel/internal/session"
	"github.com/voyago/admin-panel/internal/tokenstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var tokens tokenstore.Store
	var tokenPinger handlers.Pinger
	if cfg.Redis.Addr != "" {
		redisStore := tokenstore.NewRedisStore(cfg.Redis, cfg.TokenStore.KeyPrefix, logger)
		defer redisStore.Close()
		tokens = redisStore
		tokenPinger = redisStore
	} else {
		logger.Warn("no redis configured, tokens will not survive a restart")
		tokens = tokenstore.NewMemoryStore()
	}

	api := backend.NewClient(cfg.Backend, tokens, logger)
	guard := session.NewGuard(api, logger)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, tokenPinger, metrics)
	authHandler := handlers.NewAuthHandler(guard)
	dashboardHandler := handlers.NewDashboardHandler(api)
	usersHandler := handlers.NewUsersHandler(api)
	commissionsHandler := handlers.NewCommissionsHandler(api)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      healthHandler,
		Auth:        authHandler,
		Dashboard:   dashboardHandler,
		Users:       usersHandler,
		Commissions: commissionsHandler,
		Guard:       guard,
	})

	go guard.Hydrate(ctx)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
