package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	httpapi "github.com/aussiebroadwan/todolist/internal/todo/http"
	"github.com/aussiebroadwan/todolist/internal/todo/service"
	"github.com/aussiebroadwan/todolist/internal/todo/store"
	"github.com/aussiebroadwan/todolist/internal/todo/store/drivers/postgres"
	"github.com/aussiebroadwan/todolist/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todolist/pkg/cryptox"
	"github.com/aussiebroadwan/todolist/pkg/sessionx"
	"github.com/aussiebroadwan/todolist/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the todo service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db           store.Store
	redis        *redis.Client // nil unless SESSION_STORE=redis
	sessionStore sessionx.Store
	sessions     *sessionx.Manager

	// Services
	authService         *service.AuthService
	todoService         *service.TodoService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "todo-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}
	if err := app.initSessions(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("todo service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down todo service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("todo service stopped")
	return nil
}

// initDatabase opens the configured driver and applies migrations.
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.Database.Driver {
	case "postgres":
		db, err = postgres.NewStore(ctx, app.cfg.Database.URL)
	default:
		db, err = sqlite.NewStore(sqlite.FileDSN(app.cfg.Database.File))
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.Database.Driver)
	return nil
}

// initSessions builds the session store and the cookie manager.
func (app *Application) initSessions(ctx context.Context) error {
	switch app.cfg.Session.Store {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:         app.cfg.Redis.Address,
			Password:     app.cfg.Redis.Password,
			DB:           app.cfg.Redis.Database,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			DialTimeout:  5 * time.Second,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		app.redis = rdb
		app.sessionStore = sessionx.NewRedisStore(rdb, app.cfg.Redis.KeyPrefix)
		app.logger.Info("redis session store connected", "address", app.cfg.Redis.Address, "db", app.cfg.Redis.Database)
	default:
		app.sessionStore = sessionx.NewMemoryStore()
	}

	app.sessions = sessionx.NewManager(app.sessionStore, sessionx.Options{
		CookieName:  app.cfg.Session.CookieName,
		Secure:      app.cfg.Session.CookieSecure,
		IdleTimeout: app.cfg.Session.IdleTimeout,
	})
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:              app.db,
		Hasher:             cryptox.NewHasher(app.cfg.BcryptCost, app.cfg.HashConcurrency),
		SessionIdleTimeout: app.cfg.Session.IdleTimeout,
	}
	app.todoService = &service.TodoService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.sessionStore,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.sessions, app.logger)

	router.AuthService = app.authService
	router.TodoService = app.todoService
	router.StaticFS = app.staticFS()
	router.AllowedOrigins = app.cfg.CORSAllowedOrigins
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// staticFS returns the SPA directory, or nil when it does not exist.
func (app *Application) staticFS() fs.FS {
	info, err := os.Stat(app.cfg.StaticDir)
	if err != nil || !info.IsDir() {
		app.logger.Warn("static directory not found, frontend disabled", "dir", app.cfg.StaticDir)
		return nil
	}
	return os.DirFS(app.cfg.StaticDir)
}
