package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"banner-buddy/internal/core/cache"
	"banner-buddy/internal/core/config"
	"banner-buddy/internal/core/logger"
	"banner-buddy/internal/core/metrics"
	"banner-buddy/internal/core/server"
	banneradapter "banner-buddy/internal/features/banners/adapters"
	bannerhandler "banner-buddy/internal/features/banners/handler"
	bannerports "banner-buddy/internal/features/banners/ports"
	bannerservice "banner-buddy/internal/features/banners/service"
	editorhandler "banner-buddy/internal/features/editor/handler"
	editorservice "banner-buddy/internal/features/editor/service"
	themehandler "banner-buddy/internal/features/theming/handler"
	themeservice "banner-buddy/internal/features/theming/service"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title Banner Buddy API
// @version 1.0
// @description Resolves banner themes and drives sticky and ticker banner display sessions.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL, "bannerbuddy:")
	if err != nil {
		l.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Warn("Redis is not reachable yet", zap.Error(err))
	}
	cancel()

	m := metrics.Default()

	// Banner sessions
	provider := newBannerProvider(cfg, redisCache)
	store := banneradapter.NewRedisDismissalStore(redisCache, cfg.Session.TTL)
	sessionSvc := bannerservice.NewSessionService(provider, store, bannerservice.SessionOptions{
		Individual:       cfg.Display.Individual(),
		AutoDismissDelay: cfg.Session.AutoDismissDelay,
		TTL:              cfg.Session.TTL,
		MaxSessions:      cfg.Session.MaxSessions,
		Metrics:          m,
	})
	bannerHdl := bannerhandler.NewBannerHandler(sessionSvc)

	// Theming and editors
	themeHdl := themehandler.NewThemeHandler(themeservice.NewThemeService(cfg.Display.Individual()))
	editorHdl := editorhandler.NewEditorHandler(editorservice.NewEditorService())

	srv := server.New(cfg,
		server.WithHealthCheck("redis", redisCache),
		server.WithMetrics(m.Handler()),
	)

	// Register Routes
	bannerHdl.RegisterRoutes(srv.App)
	themeHdl.RegisterRoutes(srv.App)
	editorHdl.RegisterRoutes(srv.App)

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	sessionSvc.Close()
	if err := srv.Shutdown(ctx); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
	l.Info("Application stopped")
}

// newBannerProvider selects the GraphQL source when a URL is configured and the file source otherwise.
func newBannerProvider(cfg *config.AppConfig, c cache.Cache) bannerports.BannerProvider {
	var provider bannerports.BannerProvider
	if cfg.BannerSource.URL != "" {
		provider = banneradapter.NewGraphQLProvider(cfg.BannerSource, cfg.Proxy)
		logger.Get().Info("Using GraphQL banner source", zap.String("url", cfg.BannerSource.URL))
	} else {
		provider = banneradapter.NewStaticProvider(cfg.BannerSource.File)
		logger.Get().Info("Using file banner source", zap.String("file", cfg.BannerSource.File))
	}
	return banneradapter.NewCachedProvider(provider, c, cfg.BannerSource.CacheTTL)
}
