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

	httpadapter "charity-ledger/internal/adapter/http"
	"charity-ledger/internal/adapter/notifier"
	"charity-ledger/internal/adapter/postgres"
	"charity-ledger/internal/adapter/pricefeed"
	"charity-ledger/internal/adapter/usecase"
	"charity-ledger/internal/config"
	"charity-ledger/internal/core/domain"
	"charity-ledger/internal/db"
)

// main is the entry point of the charity-ledger service. It loads
// configuration, optionally runs database migrations, initializes the
// database pool and repositories, installs the initial admin, then
// starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	ledgerRepo := postgres.NewLedgerRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)

	// The deployer becomes admin on first start; an existing admin is
	// never overwritten.
	deployer := domain.NormalizeAddress(domain.Address(cfg.Admin.DeployerAddress))
	if deployer.IsZero() {
		logger.Error("admin deployer address must not be the zero address")
		os.Exit(1)
	}
	if err = adminRepo.EnsureAdmin(ctx, deployer); err != nil {
		logger.Error("admin bootstrap error", slog.Any("error", err))
		os.Exit(1)
	}

	feed := pricefeed.NewClient(cfg.Feed.URL, cfg.Feed.Timeout, cfg.Feed.MaxTries)

	ledger := usecase.NewLedgerUseCase(ledgerRepo)
	access := usecase.NewAccessControlUseCase(adminRepo, notifier.NewLogNotifier(logger))
	converter := usecase.NewConverterUseCase(feed)

	handler := httpadapter.NewHandler(ledger, access, converter, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
