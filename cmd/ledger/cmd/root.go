// Package cmd provides the ledger command line.
package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"ledger/internal/cli"
	"ledger/internal/config"
	applog "ledger/internal/log"
	"ledger/internal/session"
	"ledger/internal/tui"
)

var (
	debug bool
	cfg   *config.Config
)

// rootCmd opens the interactive ledger when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Keep a personal ledger in the terminal",
	Long: `ledger is a single-user terminal ledger of credits and debits.

Without a subcommand it opens the interactive view:
- a, e, d add, edit and delete transactions
- s shows the statistics view
- q quits

Example:
  ledger
  ledger stats --window 12
  ledger export`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cli.LoadEnvFile()
		loaded, err := cli.LoadAndValidateConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logFile, err := cli.OpenLogFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer logFile.Close()

		logger := setupLogger(logFile)
		ctx := applog.WithContext(cmd.Context(), logger)

		res, err := cli.InitLedger(ctx, logger, cfg)
		if err != nil {
			return fmt.Errorf("open ledger: %w", err)
		}
		defer res.Cleanup()

		catalog, err := cli.LoadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("load tags: %w", err)
		}

		state := session.New(ctx, res.Ledger, catalog, session.Options{
			Today:  time.Now().Format("2006-01-02"),
			Window: cfg.HistoryWindow,
		})
		logger.Info("Ledger started",
			applog.FieldBackend, cfg.DataBackend,
			applog.FieldCount, len(state.Transactions()))

		err = tui.Run(ctx, session.NewRouter(state), tui.Options{Currency: cfg.Currency})
		logger.Info("Ledger stopped")
		return err
	},
}

// Execute runs the root command. It is called once by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
}

// setupLogger honours --debug over LOG_LEVEL.
func setupLogger(w io.Writer) *applog.Logger {
	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	return cli.SetupLogger(level, applog.ComponentApp, w)
}
