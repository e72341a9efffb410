package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Baaaki/gigflow/internal/cache"
	"github.com/Baaaki/gigflow/internal/config"
	"github.com/Baaaki/gigflow/internal/database"
	"github.com/Baaaki/gigflow/internal/handler"
	"github.com/Baaaki/gigflow/internal/journal"
	"github.com/Baaaki/gigflow/internal/middleware"
	"github.com/Baaaki/gigflow/internal/repository"
	"github.com/Baaaki/gigflow/internal/service"
	"github.com/Baaaki/gigflow/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize lifecycle journal
	lifecycle, err := journal.Open(cfg.JournalPath)
	if err != nil {
		logger.Log.Fatal("Failed to open lifecycle journal",
			zap.String("path", cfg.JournalPath),
			zap.Error(err),
		)
	}
	defer lifecycle.Close()

	// Redis is optional: without it listings are uncached and requests unlimited
	var (
		redisClient *redis.Client
		gigCache    cache.GigCache = cache.NopGigCache{}
		apiLimiter  *middleware.RateLimiter
		authLimiter *middleware.RateLimiter
	)
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err = cache.NewRedisClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			logger.Log.Warn("Redis unavailable, running without cache and rate limiting", zap.Error(err))
			redisClient = nil
		}
	}
	if redisClient != nil {
		defer redisClient.Close()

		gigCache = cache.NewRedisGigCache(redisClient, cfg.GigCacheTTL)
		apiLimiter = middleware.NewRateLimiter(redisClient, middleware.RateLimiterConfig{
			Name:        "api",
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
		})
		authLimiter = middleware.NewRateLimiter(redisClient, middleware.RateLimiterConfig{
			Name:        "auth",
			MaxRequests: max(cfg.RateLimitMaxRequests/10, 5),
			Window:      cfg.RateLimitWindow,
		})
		logger.Log.Info("Redis connected")
	}

	store := repository.NewStore(db)

	authService := service.NewAuthService(store.Users(), cfg.JWTSecret, cfg.JWTExpiry, cfg.Environment)
	gigService := service.NewGigService(store, gigCache, lifecycle)
	bidService := service.NewBidService(store, gigCache, lifecycle)

	router := handler.SetupRouter(handler.RouterConfig{
		Auth:         handler.NewAuthHandler(authService),
		Gigs:         handler.NewGigHandler(gigService),
		Bids:         handler.NewBidHandler(bidService),
		Health:       handler.NewHealthHandler(db, redisClient),
		JWTSecret:    cfg.JWTSecret,
		IsProduction: cfg.IsProduction(),
		CORSOrigins:  cfg.CORSOrigins,
		APILimiter:   apiLimiter,
		AuthLimiter:  authLimiter,
	})

	srv := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server starting",
			zap.String("addr", cfg.ServerPort),
			zap.String("environment", cfg.Environment),
			zap.String("database", cfg.DatabaseDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Log.Info("Server exited")
}
