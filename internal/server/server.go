// Package server wires configuration, storage and services into the running HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"kushfilms/database"
	"kushfilms/internal/cache"
	"kushfilms/internal/config"
	"kushfilms/internal/microservices/http-api/handler"
	"kushfilms/internal/microservices/http-api/middleware"
	"kushfilms/internal/microservices/http-api/repository"
	"kushfilms/internal/microservices/http-api/service"
	"kushfilms/internal/microservices/websocket"
	"kushfilms/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const limiterCleanupInterval = 10 * time.Minute

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql handle: %w", err)
	}

	// the cart lives only in Redis, so the API cannot start without it
	rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		return err
	}
	defer rdb.Close()
	logger.Info("Connected to Redis")
	redisCache := cache.NewRedisCache(rdb, "kushfilms:")

	files, uploadDir, err := newFileStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	hub := websocket.NewHub(logger)
	limiter := middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	store := repository.NewStore(db)
	aggregator := service.NewAggregationService()
	authService := service.NewAuthService(store.Users(), service.NewJWTProvider(cfg.JWTSecret, cfg.JWTExpiry))
	orderService := service.NewOrderService(store, redisCache, hub, logger)

	router, err := handler.NewRouter(handler.RouterConfig{
		DB:             sqlDB,
		Hub:            hub,
		Limiter:        limiter,
		Logger:         logger,
		RequestTimeout: cfg.RequestTimeout,
		CORSOrigins:    cfg.CORSOrigins,
		Metrics:        cfg.PrometheusEnabled,
		UploadDir:      uploadDir,
	}, handler.Services{
		Auth:         authService,
		Movies:       service.NewMovieService(store, redisCache, logger),
		Foods:        service.NewFoodService(store.Foods()),
		Categories:   service.NewCategoryService(store.Categories(), redisCache, cfg.CacheTTL, logger),
		Ratings:      service.NewRatingService(store, aggregator),
		Comments:     service.NewCommentService(store),
		Favorites:    service.NewFavoriteService(store),
		WatchHistory: service.NewWatchHistoryService(store),
		Cart:         service.NewCartService(repository.NewCartRepository(rdb, cfg.CartTTL), store.Foods(), orderService, logger),
		Orders:       orderService,
		Users:        service.NewUserService(store, aggregator, redisCache, logger),
		Stats:        service.NewStatsService(store.Stats(), redisCache, cfg.CacheTTL, logger),
		Uploads:      service.NewUploadService(files, cfg.UploadMaxBytes(), logger),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		})(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})
	g.Go(func() error {
		limiter.Cleanup(gctx, limiterCleanupInterval)
		return nil
	})
	g.Go(func() error {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newFileStore returns the upload backend and, for local storage, the directory to serve.
func newFileStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.FileStore, string, error) {
	if cfg.StorageDriver == "s3" {
		s3Store, err := storage.NewS3Store(ctx, storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PublicURL: cfg.S3PublicURL,
		}, logger)
		if err != nil {
			return nil, "", err
		}
		return s3Store, "", nil
	}

	local, err := storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		return nil, "", err
	}
	return local, local.Dir(), nil
}
