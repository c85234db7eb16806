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

	"github.com/dkrasnov/product-catalog-api/internal/config"
	"github.com/dkrasnov/product-catalog-api/internal/handlers"
	"github.com/dkrasnov/product-catalog-api/internal/middleware"
	"github.com/dkrasnov/product-catalog-api/internal/repository"
	"github.com/dkrasnov/product-catalog-api/internal/service"
	"github.com/dkrasnov/product-catalog-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel, cfg.Environment)
	slog.SetDefault(log)

	log.Info("starting product catalog api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
	)

	// Initialize storage. A failed connection is logged but never aborts
	// startup: the server keeps running and /products requests fail until
	// the database comes back.
	productRepo := newProductRepository(cfg.Database.URL, log)

	// Initialize services
	productService := service.NewProductService(productRepo)
	forecastService := service.NewForecastService()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)
	forecastHandler := handlers.NewForecastHandler(forecastService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Location"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register routes
	r.Get("/test", healthHandler.Test)
	r.Get("/health", healthHandler.Health)
	r.Get("/products", productHandler.ListProducts)
	r.Post("/products", productHandler.CreateProduct)
	r.Get("/products/{productId}", productHandler.GetProduct)
	r.Get("/weatherforecast", forecastHandler.GetForecast)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// newProductRepository opens the database and runs the one-time schema and
// seed steps. Any failure leaves the server in a degraded state rather than
// stopping it.
func newProductRepository(databaseURL string, log *slog.Logger) repository.ProductRepository {
	db, err := repository.OpenPostgres(databaseURL)
	if err != nil {
		log.Error("database unavailable, serving in degraded mode", "error", err)
		return repository.NewUnavailableProductRepository(err)
	}

	repo := repository.NewPostgresProductRepository(db)

	ctx := context.Background()
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Error("failed to ensure schema", "error", err)
	} else if err := repo.SeedIfEmpty(ctx); err != nil {
		log.Error("failed to seed products", "error", err)
	}

	return repo
}
