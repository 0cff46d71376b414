package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"gamecomment/database"
	"gamecomment/internal/config"
	"gamecomment/internal/http-api/handler"
	"gamecomment/internal/http-api/middleware"
	"gamecomment/internal/http-api/models"
	"gamecomment/internal/http-api/repository"
	"gamecomment/internal/http-api/service"
	"gamecomment/internal/ratelimit"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	tables := models.ResolveTables(cfg.ProjectPrefix)

	// Best-effort: a bootstrap failure surfaces later as request errors
	// instead of blocking startup.
	database.Bootstrap(db, tables, cfg.ProjectPrefix, cfg.AdminPassword, logger)

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	gameRepo := repository.NewGameRepository(db, tables)
	commentRepo := repository.NewCommentRepository(db, tables)
	ratingRepo := repository.NewRatingRepository(db, tables)

	// Services
	authService := service.NewAuthService(adminRepo, cfg)
	commentService := service.NewCommentService(commentRepo, gameRepo)
	ratingService := service.NewRatingService(ratingRepo, gameRepo)
	adminDataService := service.NewAdminDataService(gameRepo, commentRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	commentHandler := handler.NewCommentHandler(commentService, logger)
	ratingHandler := handler.NewRatingHandler(ratingService, logger)
	adminHandler := handler.NewAdminHandler(adminDataService, commentService, ratingService, logger)

	limiter := ratelimit.NewLimiter(newRateLimitStore(cfg, logger), cfg.RateLimitWindow)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	readLimit := middleware.RateLimit(limiter, cfg.ReadRateLimit, "too many requests, please try again later", logger)
	commentLimit := middleware.RateLimit(limiter, cfg.CommentRateLimit, "only one comment per minute is allowed, please try again later", logger)
	ratingLimit := middleware.RateLimit(limiter, cfg.RatingRateLimit, "only one rating per minute is allowed, please try again later", logger)

	r.GET("/health", handler.Health)

	public := r.Group("")
	commentHandler.RegisterRoutes(public, readLimit, commentLimit)
	ratingHandler.RegisterRoutes(public, readLimit, ratingLimit)

	admin := r.Group("/admin")
	authHandler.RegisterPublicRoutes(admin)
	admin.Use(middleware.RequireAdmin(authService))
	authHandler.RegisterProtectedRoutes(admin)
	adminHandler.RegisterRoutes(admin)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server listening", "addr", addr, "project_id", cfg.ProjectPrefix)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// newRateLimitStore picks the counter backend: Redis when configured (so the
// quota holds across processes), otherwise the in-process store.
func newRateLimitStore(cfg *config.Config, logger *slog.Logger) ratelimit.Store {
	if cfg.RedisURL == "" {
		return ratelimit.NewMemoryStore()
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Error("invalid REDIS_URL, falling back to in-memory rate limiting", "error", err)
		return ratelimit.NewMemoryStore()
	}

	logger.Info("rate limiting backed by redis")
	return ratelimit.NewRedisStore(redis.NewClient(opts))
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
