package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"yatube/backend/internal/cache"
	"yatube/backend/internal/config"
	"yatube/backend/internal/database"
	"yatube/backend/internal/handler"
	"yatube/backend/internal/hub"
	"yatube/backend/internal/metrics"
	"yatube/backend/internal/router"
	"yatube/backend/internal/storage"
	"yatube/backend/internal/store"
)

// @title           Yatube API
// @version         1.0
// @description     Blogging platform: posts, groups, comments and follows.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		zap.NewExample().Fatal("Failed to load configuration", zap.Error(err))
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		zap.NewExample().Fatal("Failed to build logger", zap.Error(err))
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	// Connect to the database
	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	st, err := storage.New(cfg)
	if err != nil {
		logger.Fatal("Failed to set up image storage", zap.Error(err))
	}

	var pageCache cache.Cache
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			logger.Warn("Redis unavailable, page cache disabled", zap.Error(err))
		} else {
			defer redisCache.Close()
			pageCache = redisCache
			logger.Info("Page cache enabled", zap.Duration("ttl", cfg.CacheTTL))
		}
	}

	m := metrics.New()
	entities := store.New(db)

	h := handler.New(handler.Deps{
		Store:   entities,
		Storage: st,
		Hub:     hub.NewHub(),
		Metrics: m,
		Logger:  logger,
		Config:  cfg,
	})

	engine := router.Setup(router.Options{
		Handler:  h,
		Users:    entities,
		Config:   cfg,
		Cache:    pageCache,
		Metrics:  m,
		Gatherer: prometheus.DefaultGatherer,
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	go func() {
		logger.Info("Server is running", zap.String("addr", srv.Addr))
		logger.Info("Swagger UI is available at /swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
