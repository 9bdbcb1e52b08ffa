package handler

import (
	"fmt"
	"time"

	"kushfilms/internal/microservices/http-api/dto"
	"kushfilms/internal/microservices/http-api/middleware"
	"kushfilms/internal/microservices/http-api/service"
	"kushfilms/internal/microservices/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Auth         service.AuthService
	Movies       service.MovieService
	Foods        service.FoodService
	Categories   service.CategoryService
	Ratings      service.RatingService
	Comments     service.CommentService
	Favorites    service.FavoriteService
	WatchHistory service.WatchHistoryService
	Cart         service.CartService
	Orders       service.OrderService
	Users        service.UserService
	Stats        service.StatsService
	Uploads      service.UploadService
}

type RouterConfig struct {
	DB             Pinger
	Hub            *websocket.Hub
	Limiter        *middleware.IPRateLimiter
	Logger         *zap.Logger
	RequestTimeout time.Duration
	CORSOrigins    []string
	Metrics        bool
	// UploadDir is served under /uploads when set
	UploadDir string
}

// NewRouter builds the gin engine with every API route registered.
func NewRouter(cfg RouterConfig, svc Services) (*gin.Engine, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			return nil, fmt.Errorf("register validators: %w", err)
		}
	}

	r := gin.New()
	r.Use(middleware.Recovery(cfg.Logger), middleware.RequestLogger(cfg.Logger))
	if cfg.Metrics {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	r.Use(RequestTimeout(cfg.RequestTimeout))

	r.GET("/health", NewHealthHandler(cfg.DB).Health)
	if cfg.UploadDir != "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	authMW := middleware.AuthMiddleware(svc.Auth)
	api := r.Group("/api")

	NewAuthHandler(svc.Auth).RegisterRoutes(api.Group("/auth"), authMW, middleware.RateLimit(cfg.Limiter))

	movies := NewMovieHandler(svc.Movies)
	movies.RegisterRoutes(api.Group("/movies"))
	foods := NewFoodHandler(svc.Foods)
	foods.RegisterRoutes(api.Group("/foods"))
	categories := NewCategoryHandler(svc.Categories)
	categories.RegisterRoutes(api.Group("/categories"))
	NewCommentHandler(svc.Comments).RegisterRoutes(api.Group("/comments"), authMW)

	NewRatingHandler(svc.Ratings).RegisterRoutes(api.Group("/ratings", authMW))
	NewFavoriteHandler(svc.Favorites).RegisterRoutes(api.Group("/favorites", authMW))
	NewWatchHistoryHandler(svc.WatchHistory).RegisterRoutes(api.Group("/watch-history", authMW))
	NewCartHandler(svc.Cart).RegisterRoutes(api.Group("/cart", authMW))

	orders := NewOrderHandler(svc.Orders)
	orderGroup := api.Group("/orders", authMW)
	orderGroup.GET("/events", websocket.WSHandler(cfg.Hub, cfg.CORSOrigins, cfg.Logger))
	orders.RegisterRoutes(orderGroup)

	admin := api.Group("/admin", authMW, middleware.RequireAdmin())
	movies.RegisterAdminRoutes(admin.Group("/movies"))
	foods.RegisterAdminRoutes(admin.Group("/foods"))
	categories.RegisterAdminRoutes(admin.Group("/categories"))
	orders.RegisterAdminRoutes(admin.Group("/orders"))
	NewAdminHandler(svc.Users, svc.Stats, svc.Uploads).RegisterRoutes(admin)

	return r, nil
}
