// Package server boots the application: configuration, storage, sessions,
// background workers and the HTTP listener.
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

	"github.com/bkormos/portico/app/jobs"
	"github.com/bkormos/portico/app/repositories"
	"github.com/bkormos/portico/app/routes"
	"github.com/bkormos/portico/app/services"
	"github.com/bkormos/portico/app/views"
	"github.com/bkormos/portico/config"
	_ "github.com/bkormos/portico/database/migrations"
	"github.com/bkormos/portico/pkg/cache"
	"github.com/bkormos/portico/pkg/database"
	"github.com/bkormos/portico/pkg/logger"
	"github.com/bkormos/portico/pkg/migration"
	"github.com/bkormos/portico/pkg/queue"
	"github.com/bkormos/portico/pkg/router"
	"github.com/bkormos/portico/pkg/session"
	"github.com/bkormos/portico/pkg/view"
)

// App bundles the booted pieces so the CLI commands can reuse them.
type App struct {
	DB       *gorm.DB
	Sessions *session.Manager
	Router   *router.Router
}

// Boot loads config, connects storage, runs migrations, ensures the admin
// account and builds the router. It does not start listening.
func Boot() (*App, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("server: load config: %w", err)
	}

	db, err := database.Connect()
	if err != nil {
		return nil, fmt.Errorf("server: connect database: %w", err)
	}

	// Redis is optional; the app degrades to in-memory sessions and queue.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, using in-memory fallbacks", "error", err)
	}

	if err := migration.New(db).Run(); err != nil {
		return nil, fmt.Errorf("server: migrate: %w", err)
	}

	sessions, err := buildSessions()
	if err != nil {
		return nil, err
	}

	if err := bootstrapAdmin(db); err != nil {
		return nil, err
	}

	engine, err := view.New(views.FS())
	if err != nil {
		return nil, fmt.Errorf("server: parse views: %w", err)
	}

	r := routes.Web(routes.Deps{DB: db, Views: engine, Sessions: sessions})
	return &App{DB: db, Sessions: sessions, Router: r}, nil
}

// Run boots the app and serves it until SIGINT/SIGTERM, then shuts the
// listener down gracefully.
func Run() error {
	app, err := Boot()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startQueue(ctx)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           app.Router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildSessions() (*session.Manager, error) {
	opts := session.DefaultOptions(config.SessionSecret(), config.SessionTTL())
	opts.Secure = config.AppEnv() == "production"

	var store session.Store
	switch config.SessionDriver() {
	case "redis":
		rs, err := session.NewRedisStore()
		if err != nil {
			logger.Warn("redis session store unavailable, falling back to memory", "error", err)
			store = session.NewMemoryStore()
		} else {
			store = rs
		}
	default:
		store = session.NewMemoryStore()
	}

	return session.NewManager(store, opts), nil
}

func bootstrapAdmin(db *gorm.DB) error {
	auth := services.NewAuthService(repositories.NewUserRepository(db))
	if err := auth.BootstrapAdmin(config.AdminUsername(), config.AdminPassword()); err != nil {
		return fmt.Errorf("server: bootstrap admin: %w", err)
	}
	return nil
}

// startQueue registers job types, picks a driver and launches the workers.
func startQueue(ctx context.Context) {
	jobs.RegisterAll()
	if cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.StartWorkers(ctx, 2)
}
