// Package server boots the HTTP server: config, database, cache,
// storage, middleware stack, and routes.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/ovenlight/bakehouse/app/routes"
	"github.com/ovenlight/bakehouse/config"
	"github.com/ovenlight/bakehouse/pkg/cache"
	"github.com/ovenlight/bakehouse/pkg/database"
	"github.com/ovenlight/bakehouse/pkg/logger"
	"github.com/ovenlight/bakehouse/pkg/metrics"
	"github.com/ovenlight/bakehouse/pkg/middleware"
	"github.com/ovenlight/bakehouse/pkg/reqid"
	"github.com/ovenlight/bakehouse/pkg/router"
	"github.com/ovenlight/bakehouse/pkg/storage"
)

// Run boots every subsystem and serves until SIGINT/SIGTERM.
func Run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	if err := database.Connect(); err != nil {
		return err
	}

	// Redis is an optimization, not a dependency; run without it.
	if err := cache.Connect(); err != nil {
		logger.Warn("server: cache unavailable", "error", err.Error())
	}

	storage.Connect()

	r := Build(database.DB)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case sig := <-stop:
		logger.Info("server: shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}

// Build assembles the router: middleware stack, API routes, the
// static uploads mount, and the metrics endpoint.
func Build(db *gorm.DB) *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	routes.Register(r, db)

	// Uploaded product images and avatars, served straight off the
	// local disk.
	if root := storage.LocalRoot(); root != "" {
		fs := http.FileServer(http.Dir(root))
		r.Mount("/uploads", http.StripPrefix("/uploads/", fs))
	}

	r.Mount("/metrics", metrics.Handler())

	return r
}
