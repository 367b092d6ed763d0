package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	sqliteadapter "github.com/pharmajava/timeclock/internal/adapter/driven/sqlite"
	xlsxadapter "github.com/pharmajava/timeclock/internal/adapter/driven/xlsx"
	"github.com/pharmajava/timeclock/internal/adapter/driving/cli"
	"github.com/pharmajava/timeclock/internal/application"
	"github.com/pharmajava/timeclock/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on missing required env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"data_dir", cfg.DataDir,
		"db_path", cfg.DBPath(),
		"export_dir", cfg.ExportDir,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(cfg.DBPath())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database opened", "path", cfg.DBPath())

	// 4. Run migrations on writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	slog.Info("migrations complete")

	// 5. Wire adapters and services.
	userStore := sqliteadapter.NewUserRepo(db, cfg.Key)
	recordStore := sqliteadapter.NewRecordRepo(db)
	incidentStore := sqliteadapter.NewIncidentRepo(db)
	exporter := xlsxadapter.NewExporter(cfg.ExportDir)

	gate := application.NewGate(cfg.AdminSecret)
	identitySvc := application.NewIdentityService(userStore)
	ledgerSvc := application.NewLedgerService(recordStore)
	incidentSvc := application.NewIncidentService(incidentStore)
	exportSvc := application.NewExportService(recordStore, incidentStore, exporter)

	// 6. Run the interactive loop.
	app := cli.NewApp(gate, identitySvc, ledgerSvc, incidentSvc, exportSvc, db, cfg.DataDir)
	if err := app.Run(ctx); err != nil {
		return err
	}

	// 7. Best-effort backup from the controlled exit path.
	if path, err := db.BackupTo(cfg.DataDir); err != nil {
		slog.Error("shutdown backup failed", "error", err)
	} else {
		slog.Info("shutdown backup created", "path", path)
	}

	return nil
}
