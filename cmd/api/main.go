package main

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

	"highwaymetric/internal/config"
	pgRepo "highwaymetric/internal/infra/adapter/persistence/postgres"
	"highwaymetric/internal/infra/db"
	"highwaymetric/internal/observability/logging"
	"highwaymetric/internal/observability/tracing"
	"highwaymetric/internal/resilience/circuitbreaker"
	contractorUC "highwaymetric/internal/usecase/contractor"
	highwayUC "highwaymetric/internal/usecase/highway"
	projectUC "highwaymetric/internal/usecase/project"

	_ "highwaymetric/docs" // swagger docs
)

// @title           Highway Metric API
// @version         1.0
// @description     Tracks highway infrastructure projects, the contractors they are awarded to,
// @description     the highways they cover and the news written about them.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	tp := tracing.NewProvider("highwaymetric", cfg.Version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DatabaseURL, db.ConnectionConfigFrom(cfg))
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(ctx, database); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	breaker := circuitbreaker.NewDBCircuitBreaker()
	tx := pgRepo.NewTransactor(database, breaker)
	contractors := pgRepo.NewContractorRepo(database)
	highways := pgRepo.NewHighwayRepo(database)
	projects := pgRepo.NewProjectRepo(database)
	news := pgRepo.NewNewsArticleRepo(database)

	a := app{
		contractors: &contractorUC.Service{Repo: contractors, Projects: projects, Tx: tx},
		projects: &projectUC.Service{
			Projects:    projects,
			Contractors: contractors,
			Highways:    highways,
			News:        news,
			Tx:          tx,
		},
		highways: &highwayUC.Service{Repo: highways, News: news, Tx: tx},
		db:       database,
		breaker:  breaker,
		version:  cfg.Version,
	}

	handler, err := applyMiddleware(logger, cfg, a.routes())
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("tracer provider shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
