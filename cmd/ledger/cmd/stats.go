package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ledger/internal/analytics"
	"ledger/internal/cli"
	"ledger/internal/core"
)

var statsWindow int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print ledger statistics",
	Long: `Print the totals, top spending tags and monthly history of the ledger.

Example:
  ledger stats
  ledger stats --window 12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogger(os.Stderr)
		ctx := cmd.Context()

		res, err := cli.InitLedger(ctx, logger, cfg)
		if err != nil {
			return fmt.Errorf("open ledger: %w", err)
		}
		defer res.Cleanup()

		txs, err := res.Ledger.ReadAll(ctx)
		if err != nil {
			return fmt.Errorf("read ledger: %w", err)
		}

		window := statsWindow
		if window <= 0 {
			window = cfg.HistoryWindow
		}
		return writeStats(cmd.OutOrStdout(), analytics.Build(txs, window), cfg.Currency)
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsWindow, "window", 0, "months of history (default LEDGER_HISTORY_WINDOW)")
}

func writeStats(out io.Writer, r analytics.Report, currency string) error {
	money := func(v float64) string { return fmt.Sprintf("%s%.2f", currency, v) }

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "=== Ledger Statistics ===")
	fmt.Fprintf(w, "Transactions:\t%d\n", r.Count)
	fmt.Fprintf(w, "Earned:\t%s\n", money(r.Credited))
	fmt.Fprintf(w, "Spent:\t%s\n", money(r.Debited))
	fmt.Fprintf(w, "Balance:\t%s\n", money(r.Balance))
	fmt.Fprintf(w, "Savings rate:\t%.1f%%\n", r.SavingsRate)
	fmt.Fprintf(w, "Largest:\t%s\n", describe(r.Largest, money))
	fmt.Fprintf(w, "Smallest:\t%s\n", describe(r.Smallest, money))

	if len(r.Shares) > 0 {
		fmt.Fprintln(w, "\n=== Top Tags ===")
		for _, s := range r.Shares {
			fmt.Fprintf(w, "%s\t%s\t%.1f%%\n", s.Tag, money(s.Debited), s.Percent)
		}
	}

	if len(r.Monthly) > 0 {
		fmt.Fprintln(w, "\n=== Monthly ===")
		fmt.Fprintln(w, "Month\tEarned\tSpent\tNet")
		for _, b := range r.Monthly {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.Month, money(b.Credited), money(b.Debited), money(b.Net()))
		}
	}
	return w.Flush()
}

func describe(tx *core.Transaction, money func(float64) string) string {
	if tx == nil {
		return "-"
	}
	return fmt.Sprintf("%s %s (%s, %s)", tx.Source, money(tx.Amount), tx.Kind.Label(), tx.Date)
}
