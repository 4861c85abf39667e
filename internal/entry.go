// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eihojp/corpsite/internal/api"
	"github.com/eihojp/corpsite/internal/assets"
	"github.com/eihojp/corpsite/internal/auth"
	"github.com/eihojp/corpsite/internal/mailer"
	"github.com/eihojp/corpsite/internal/mcpserver"
	"github.com/eihojp/corpsite/internal/sitesvc"
	"github.com/eihojp/corpsite/internal/sse"
	"github.com/eihojp/corpsite/internal/store"
)

// Run starts the HTTP application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("uploads_dir", cfg.Storage.UploadsDir),
		slog.Bool("github_storage", cfg.Storage.GitHub.Enabled()),
		slog.Bool("smtp", cfg.SMTP.Mailer().Enabled()),
		slog.String("log_level", cfg.App.LogLevel.String()))

	db, err := store.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer db.Close()

	// Upload storage: local disk always, GitHub in front when configured.
	local := assets.NewLocalStore(cfg.Storage.UploadsDir)
	uploads := &assets.Resolver{
		Local:   local,
		Managed: cfg.Storage.Managed,
		Logger:  logger,
	}
	if gh := cfg.Storage.GitHub; gh.Enabled() {
		uploads.Remote = assets.NewGitHubStore(gh.Token, gh.Repo, gh.Branch, gh.Prefix, gh.PublicBaseURL)
	}

	library, err := assets.NewLibrary(local)
	if err != nil {
		return fmt.Errorf("init asset library: %w", err)
	}

	broker := sse.NewBroker()
	defer broker.Close()

	svc := sitesvc.New(db, logger)

	var mail *mailer.Mailer
	mailCfg := cfg.SMTP.Mailer()
	if mailCfg.Enabled() {
		mail = mailer.New(mailCfg)
	}

	sessions := auth.NewSessions(cfg.Auth.SecretKey, cfg.Auth.SecureCookies)

	router := api.NewRouter(api.RouterDeps{
		Public:     api.NewHandler(svc, mail, mailCfg.Enabled(), logger),
		Admin:      api.NewAdminHandler(svc, uploads, library, broker, sessions, cfg.Auth.User, cfg.Auth.PasswordHash, logger),
		Broker:     broker,
		UploadsDir: cfg.Storage.UploadsDir,
	})

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the local upload directory so the admin asset list stays fresh.
	g.Go(func() error {
		err := library.Watch(gCtx, logger, func(kind, path string) {
			broker.PublishAssetEvent(kind, path)
		})
		if err != nil {
			logger.Warn("asset watcher stopped", slog.String("error", err.Error()))
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunMCP starts the MCP server on stdin/stdout with the given options. Logs
// go to stderr so stdout stays a clean protocol stream.
func RunMCP(_ context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))

	db, err := store.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer db.Close()

	svc := sitesvc.New(db, logger)
	return mcpserver.New(svc, db).ServeStdio()
}
