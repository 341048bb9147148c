// Command seed bulk-loads contractors and projects from a YAML file.
//
// Usage:
//
//	seed -file data/seed.yaml
//	seed -file data/seed.yaml -dry-run
//
// With -dry-run the file is loaded into an in-memory store so it can be
// checked without touching the database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"highwaymetric/internal/config"
	"highwaymetric/internal/infra/adapter/persistence/memory"
	pgRepo "highwaymetric/internal/infra/adapter/persistence/postgres"
	"highwaymetric/internal/infra/db"
	"highwaymetric/internal/observability/logging"
	"highwaymetric/internal/resilience/circuitbreaker"
	"highwaymetric/internal/seed"
	contractorUC "highwaymetric/internal/usecase/contractor"
	projectUC "highwaymetric/internal/usecase/project"
)

func main() {
	path := flag.String("file", "seed.yaml", "path to the seed file")
	dryRun := flag.Bool("dry-run", false, "load into memory instead of the database")
	flag.Parse()

	if err := run(*path, *dryRun); err != nil {
		slog.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(path string, dryRun bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	file, err := seed.Parse(f)
	if err != nil {
		return err
	}

	var loader *seed.Loader
	if dryRun {
		slog.SetDefault(logging.NewLogger(os.Getenv("LOG_LEVEL")))
		loader = memoryLoader()
	} else {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		slog.SetDefault(logging.NewLogger(cfg.LogLevel))

		database, err := db.Open(ctx, cfg.DatabaseURL, db.ConnectionConfigFrom(cfg))
		if err != nil {
			return err
		}
		defer func() { _ = database.Close() }()
		if err := db.MigrateUp(ctx, database); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		tx := pgRepo.NewTransactor(database, circuitbreaker.NewDBCircuitBreaker())
		contractors := pgRepo.NewContractorRepo(database)
		projects := pgRepo.NewProjectRepo(database)
		loader = &seed.Loader{
			Contractors: &contractorUC.Service{Repo: contractors, Projects: projects, Tx: tx},
			Projects: &projectUC.Service{
				Projects:    projects,
				Contractors: contractors,
				Highways:    pgRepo.NewHighwayRepo(database),
				News:        pgRepo.NewNewsArticleRepo(database),
				Tx:          tx,
			},
		}
	}

	rep, err := loader.Load(ctx, file)
	if err != nil {
		return err
	}
	slog.Info("seed complete",
		slog.String("file", path),
		slog.Bool("dry_run", dryRun),
		slog.Int("contractors_created", rep.ContractorsCreated),
		slog.Int("contractors_updated", rep.ContractorsUpdated),
		slog.Int("projects_created", rep.ProjectsCreated),
		slog.Any("projects_skipped", rep.SkippedProjects))
	return nil
}

func memoryLoader() *seed.Loader {
	store := memory.New()
	tx := store.Transactor()
	return &seed.Loader{
		Contractors: &contractorUC.Service{Repo: store.Contractors(), Projects: store.Projects(), Tx: tx},
		Projects: &projectUC.Service{
			Projects:    store.Projects(),
			Contractors: store.Contractors(),
			Highways:    store.Highways(),
			News:        store.News(),
			Tx:          tx,
		},
	}
}
