package main

import (
	"context"
	"os"
	"sync"
	"time"

	"ledger/internal/amqp"
	"ledger/internal/cli"
	applog "ledger/internal/log"
	gsheet "ledger/internal/sheets/google"
	"ledger/internal/storage"
	"ledger/internal/worker"
)

func main() {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		cli.SetupLogger("info", applog.ComponentWorker, os.Stdout).Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	logger := cli.SetupLogger(cfg.LogLevel, applog.ComponentWorker, os.Stdout)
	logger.Info("Starting ledger-worker")

	if cfg.DataBackend != "sqlite" {
		logger.Error("ledger-worker reads the SQLite ledger; set LEDGER_BACKEND=sqlite",
			applog.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for ledger-worker")
		os.Exit(1)
	}
	if err := cfg.ValidateExport(); err != nil {
		logger.Error("Export configuration invalid", applog.FieldError, err)
		os.Exit(1)
	}

	// The worker only reads; the terminal app owns the writes.
	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository",
			applog.FieldError, err,
			applog.FieldPath, cfg.SQLiteDBPath)
		os.Exit(1)
	}

	sheetsClient, err := gsheet.New(context.Background(), gsheet.Settings{
		SpreadsheetID:   cfg.GoogleSpreadsheetID,
		DataSheet:       cfg.GoogleSheetName,
		SummarySheet:    cfg.GoogleSummarySheetName,
		CredentialsJSON: cfg.GoogleServiceAccountJSON,
		CredentialsFile: cfg.GoogleServiceAccountFile,
	})
	if err != nil {
		repo.Close()
		logger.Error("Failed to initialize Google Sheets client", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Google Sheets client initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID)

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		repo.Close()
		logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
		os.Exit(1)
	}

	exportWorker := worker.NewExportWorker(repo, sheetsClient, cfg.HistoryWindow)

	var wg sync.WaitGroup
	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		wg.Wait()
		if err := amqpClient.Close(); err != nil {
			logger.Warn("Failed to close AMQP client", applog.FieldError, err)
		}
		if err := repo.Close(); err != nil {
			logger.Warn("Failed to close SQLite repository", applog.FieldError, err)
		}
	})

	ctx = applog.WithContext(ctx, logger)

	// Bring the spreadsheet up to date before waiting for changes.
	if err := exportWorker.ExportNow(ctx); err != nil {
		logger.Error("Initial export failed", applog.FieldError, err)
	} else {
		logger.Info("Initial export complete")
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := amqpClient.ConsumeTransactionChanged(ctx, exportWorker.HandleChange); err != nil && ctx.Err() == nil {
			logger.Error("AMQP consumer stopped", applog.FieldError, err)
		}
	}()
	go func() {
		defer wg.Done()
		exportWorker.RunPeriodic(ctx, cfg.ExportInterval)
	}()

	logger.Info("ledger-worker started",
		"export_interval", cfg.ExportInterval,
		"queue", cfg.AMQPQueue)

	<-done
	logger.Info("ledger-worker stopped")
}
