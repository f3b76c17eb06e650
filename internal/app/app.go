package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"mediapulse/internal/config"
	"mediapulse/internal/dataprocessing"
	apierrors "mediapulse/internal/errors"
	"mediapulse/internal/infrastructure"
	"mediapulse/internal/middleware"
	"mediapulse/internal/services"
	transporthttp "mediapulse/internal/transport/http"
)

// Application wires configuration, logging, the dataset store, services
// and the HTTP server together.
type Application struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
}

// NewApplication builds a fully wired application from configuration.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store := dataprocessing.NewCleanStore(logger)
	service := services.NewDashboardService(store, logger, cfg.Upload.MaxRows)
	errorHandler := apierrors.NewErrorHandler(logger)
	handler := transporthttp.NewDashboardHandler(service, logger, errorHandler, cfg.Upload.MaxBytes)

	app := &Application{cfg: cfg, logger: logger}
	app.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.router(handler, errorHandler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return app, nil
}

// router assembles the middleware chain and routes.
func (a *Application) router(handler *transporthttp.DashboardHandler, errorHandler *apierrors.ErrorHandler) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.StructuredLogger(a.logger))
	r.Use(chimiddleware.Recoverer)
	if a.cfg.Security.EnableCORS {
		r.Use(middleware.CORS(a.cfg.Security.AllowedOrigins))
	}

	r.Get("/healthz", a.health)
	r.Method(http.MethodGet, "/metrics", infrastructure.MetricsHandler())
	r.Mount("/api/datasets", handler.Routes())
	r.NotFound(errorHandler.NotFound)

	return r
}

// health reports liveness.
func (a *Application) health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Run starts the HTTP server and blocks until shutdown. SIGINT and
// SIGTERM trigger a graceful drain bounded by the configured timeout.
func (a *Application) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		a.logger.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	a.logger.Info("server stopped")
	return nil
}
