package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/croftwave/storefront/internal/api/handlers"
	"github.com/croftwave/storefront/internal/api/middleware"
	"github.com/croftwave/storefront/internal/config"
	"github.com/croftwave/storefront/internal/health"
	"github.com/croftwave/storefront/internal/metrics"
	repository "github.com/croftwave/storefront/internal/repositories"
	service "github.com/croftwave/storefront/internal/services"
	"github.com/croftwave/storefront/internal/telemetry"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Local overrides for development; absence is fine
	_ = godotenv.Load()

	cfg := config.MustLoad()

	if cfg.Telemetry.Enabled {
		shutdownTelemetry, err := telemetry.Setup(context.Background(), cfg)
		if err != nil {
			slog.Error("Error setting up telemetry", slog.String("error", err.Error()))
			os.Exit(1)
		}

		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdownTelemetry(ctx); err != nil {
				slog.Error("Error shutting down telemetry", slog.String("error", err.Error()))
			}
		}()
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}()

	// Redis is optional; it only backs the rate limiter and health check
	var redisClient *redis.Client

	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
			cancel()
			os.Exit(1)
		}

		cancel()
	}

	productService := service.NewProductService(repos.Product)
	productHandler := handlers.NewProductHandler(productService)
	cartService := service.NewCartService(repos.Cart, repos.Product)
	cartHandler := handlers.NewCartHandler(cartService)
	orderService := service.NewOrderService(repos.Order)
	orderHandler := handlers.NewOrderHandler(orderService)

	healthHandler, err := health.New(cfg)
	if err != nil {
		slog.Error("Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Service initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /products/", productHandler.List())
	routerMux.HandleFunc("POST /products/", productHandler.Create())
	routerMux.HandleFunc("GET /products/{id}", productHandler.Get())
	routerMux.HandleFunc("PUT /products/{id}", productHandler.Update())
	routerMux.HandleFunc("DELETE /products/{id}", productHandler.Delete())
	routerMux.HandleFunc("GET /cart/{session_id}", cartHandler.Get())
	routerMux.HandleFunc("POST /cart/{session_id}/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /cart/{session_id}/items/{item_id}", cartHandler.UpdateItem())
	routerMux.HandleFunc("DELETE /cart/{session_id}/items/{item_id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /cart/{session_id}", cartHandler.Clear())
	routerMux.HandleFunc("GET /orders/", orderHandler.List())
	routerMux.HandleFunc("POST /orders/", orderHandler.Create())
	routerMux.HandleFunc("GET /orders/{id}", orderHandler.Get())
	routerMux.HandleFunc("PATCH /orders/{id}/status", orderHandler.UpdateStatus())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux

	if redisClient != nil && cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit)
		handler = limiter.Middleware(handler)
	}

	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}
}
