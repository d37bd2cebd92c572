package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inventrack/inventory-service/internal/api/handlers"
	"github.com/inventrack/inventory-service/internal/api/middleware"
	"github.com/inventrack/inventory-service/internal/config"
	"github.com/inventrack/inventory-service/internal/health"
	"github.com/inventrack/inventory-service/internal/metrics"
	repository "github.com/inventrack/inventory-service/internal/repositories"
	service "github.com/inventrack/inventory-service/internal/services"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error opening the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	// Schema init runs to completion before the listener starts, so early
	// requests never race table creation. A failure leaves the service up in
	// a degraded state; requests then surface backend errors.
	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repos.InitSchema(initCtx); err != nil {
		slog.Error("Error initializing database schema; continuing degraded", slog.String("error", err.Error()))
	} else {
		slog.Info("Database schema ready")
	}
	cancelInit()

	productService := service.NewProductService(repos.Product)
	productHandler := handlers.NewProductHandler(productService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/products", productHandler.ListProducts())
	routerMux.HandleFunc("POST /api/products", productHandler.CreateProduct())
	routerMux.HandleFunc("GET /api/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("PUT /api/products/{id}", productHandler.UpdateProduct())
	routerMux.HandleFunc("DELETE /api/products/{id}", productHandler.DeleteProduct())
	routerMux.HandleFunc("GET /api/stats", productHandler.Stats())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("/", http.FileServer(http.Dir(cfg.HTTPServer.StaticDir)))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = middleware.CORS(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.HTTPServer.Addr(),
		Handler: handler,
	}

	slog.Info("Server is starting", slog.String("address", server.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed")
	}

}
