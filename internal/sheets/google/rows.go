package google

import (
	"fmt"
	"math"

	"ledger/internal/analytics"
	"ledger/internal/core"
)

var transactionHeader = []any{"ID", "Date", "Source", "Kind", "Tag", "Amount"}

// transactionRows lays out the snapshot as a header plus one row per
// transaction. Amounts are signed so the column sums to the balance.
func transactionRows(snapshot []core.Transaction) [][]any {
	rows := make([][]any, 0, len(snapshot)+1)
	rows = append(rows, transactionHeader)
	for _, tx := range snapshot {
		rows = append(rows, []any{tx.ID, tx.Date, tx.Source, tx.Kind.Label(), tx.Tag.String(), round2(tx.Signed())})
	}
	return rows
}

// summaryRows lays out the report in three blocks separated by a blank row:
// overview, monthly history and spending per tag.
func summaryRows(report analytics.Report) [][]any {
	rows := [][]any{
		{"Overview", ""},
		{"Transactions", report.Count},
		{"Earned", round2(report.Credited)},
		{"Spent", round2(report.Debited)},
		{"Balance", round2(report.Balance)},
		{"Savings rate %", round2(report.SavingsRate)},
	}
	if report.Largest != nil {
		rows = append(rows, []any{"Largest", describe(*report.Largest)})
	}
	if report.Smallest != nil {
		rows = append(rows, []any{"Smallest", describe(*report.Smallest)})
	}

	rows = append(rows, []any{}, []any{"Month", "Earned", "Spent", "Net"})
	for _, m := range report.Monthly {
		rows = append(rows, []any{m.Month, round2(m.Credited), round2(m.Debited), round2(m.Net())})
	}

	rows = append(rows, []any{}, []any{"Tag", "Spent", "Share %"})
	for _, s := range report.Shares {
		rows = append(rows, []any{s.Tag.String(), round2(s.Debited), round2(s.Percent)})
	}
	return rows
}

func describe(tx core.Transaction) string {
	return fmt.Sprintf("%s %.2f (%s, %s)", tx.Source, tx.Amount, tx.Tag, tx.Date)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
