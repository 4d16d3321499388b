package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"cineverse/api/routes"
	"cineverse/internal/shared/config"
	"cineverse/pkg/logger"
	"cineverse/pkg/ratelimit"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Load config
	cfg := config.Load()

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Initialize Rate Limiter. Redis is only dialed when limiting is on;
	// everything else in the process is in-memory.
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			appLogger.Error("Redis unreachable, rate limiting disabled", slog.Any("error", err))
		} else {
			rateLimiter = ratelimit.NewRateLimiter(redisClient, &ratelimit.Config{
				Enabled:         cfg.RateLimit.Enabled,
				WindowDuration:  cfg.RateLimit.WindowDuration,
				DefaultRequests: cfg.RateLimit.DefaultRequests,
				PublicRequests:  cfg.RateLimit.PublicRequests,
				AuthRequests:    cfg.RateLimit.AuthRequests,
				BookingRequests: cfg.RateLimit.BookingRequests,
				PaymentRequests: cfg.RateLimit.PaymentRequests,
				AdminRequests:   cfg.RateLimit.AdminRequests,
				HealthRequests:  cfg.RateLimit.PublicRequests,
				WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
			})
			appLogger.Info("Rate limiter initialized",
				slog.Duration("window", cfg.RateLimit.WindowDuration),
				slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
			)
		}
		cancel()
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	// Setup router with rate limiter
	router, err := setupRouter(cfg, rateLimiter)
	if err != nil {
		appLogger.Error("Failed to build router", slog.Any("error", err))
		os.Exit(1)
	}

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("api_status", fmt.Sprintf("http://localhost:%s%s/status", cfg.Port, cfg.GetAPIBasePath())),
			slog.String("version", cfg.APIVersion),
			slog.Bool("rate_limiting", rateLimiter != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown. The booking session store and ledger are
	// in-memory, so there is nothing to flush.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, rateLimiter *ratelimit.RateLimiter) (*gin.Engine, error) {
	engine := gin.New()
	appLogger := logger.GetDefault()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(RequestLoggerMiddleware(appLogger), gin.Recovery())

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true // allow every origin dynamically
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-RateLimit-*"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Global rate limiting middleware (applied to all routes)
	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	// Initialize and setup routes
	appRouter, err := routes.NewRouter(cfg)
	if err != nil {
		return nil, err
	}
	appRouter.SetupRoutes(engine)

	return engine, nil
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.LogHTTPRequest(c, duration)
	}
}
