package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ledger/internal/cli"
	applog "ledger/internal/log"
	"ledger/internal/sheets/google"
	"ledger/internal/worker"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to Google Sheets once",
	Long: `Replace the transactions and summary sheets of the configured
spreadsheet with the current ledger.

Requires GOOGLE_SPREADSHEET_ID and a service account
(GOOGLE_SERVICE_ACCOUNT_JSON or GOOGLE_SERVICE_ACCOUNT_FILE).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.ValidateExport(); err != nil {
			return err
		}
		logger := setupLogger(os.Stderr)
		ctx := applog.WithContext(cmd.Context(), logger)

		res, err := cli.InitLedger(ctx, logger, cfg)
		if err != nil {
			return fmt.Errorf("open ledger: %w", err)
		}
		defer res.Cleanup()

		client, err := google.New(ctx, google.Settings{
			SpreadsheetID:   cfg.GoogleSpreadsheetID,
			DataSheet:       cfg.GoogleSheetName,
			SummarySheet:    cfg.GoogleSummarySheetName,
			CredentialsJSON: cfg.GoogleServiceAccountJSON,
			CredentialsFile: cfg.GoogleServiceAccountFile,
		})
		if err != nil {
			return fmt.Errorf("connect to Google Sheets: %w", err)
		}

		if err := worker.NewExportWorker(res.Ledger, client, cfg.HistoryWindow).ExportNow(ctx); err != nil {
			logger.ErrorContext(ctx, "Export failed",
				applog.FieldOperation, applog.OpExport,
				applog.FieldError, err)
			return err
		}

		logger.InfoContext(ctx, "Export complete",
			applog.FieldOperation, applog.OpExport,
			"spreadsheet_id", cfg.GoogleSpreadsheetID)
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to spreadsheet %s\n", cfg.GoogleSpreadsheetID)
		return nil
	},
}
