package google

import (
	"context"
	"errors"
	"sync"
	"testing"

	"ledger/internal/analytics"
	"ledger/internal/core"
)

type fakeWriter struct {
	mu     sync.Mutex
	sheets map[string][][]any
	fail   string
}

func (f *fakeWriter) Replace(ctx context.Context, sheet string, rows [][]any) error {
	if sheet == f.fail {
		return errors.New("quota exceeded")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sheets == nil {
		f.sheets = make(map[string][][]any)
	}
	f.sheets[sheet] = rows
	return nil
}

func sampleSnapshot() []core.Transaction {
	return []core.Transaction{
		{ID: 3, Source: "Salary", Amount: 500, Kind: core.Credit, Tag: "salary", Date: "2026-01-20"},
		{ID: 1, Source: "Groceries", Amount: 100, Kind: core.Debit, Tag: "food", Date: "2026-01-15"},
		{ID: 2, Source: "Cinema", Amount: 12.345, Kind: core.Debit, Tag: "other", Date: "2025-12-30"},
	}
}

func TestExportWritesBothSheets(t *testing.T) {
	w := &fakeWriter{}
	c := newClient(w, "Transactions", "Summary")
	snap := sampleSnapshot()

	if err := c.Export(context.Background(), snap, analytics.Build(snap, 6)); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	data := w.sheets["Transactions"]
	if len(data) != len(snap)+1 {
		t.Fatalf("transactions sheet has %d rows, want %d", len(data), len(snap)+1)
	}
	if data[0][0] != "ID" {
		t.Fatalf("missing header: %v", data[0])
	}
	if got := data[2]; got[0] != int64(1) || got[3] != "Debit" || got[5] != -100.0 {
		t.Fatalf("unexpected debit row %v", got)
	}
	if got := data[3][5]; got != -12.35 && got != -12.34 {
		t.Fatalf("amount should be rounded to cents, got %v", got)
	}

	summary := w.sheets["Summary"]
	if len(summary) == 0 || summary[1][1] != 3 {
		t.Fatalf("unexpected summary %v", summary)
	}
}

func TestExportPropagatesFailure(t *testing.T) {
	w := &fakeWriter{fail: "Summary"}
	c := newClient(w, "Transactions", "Summary")
	err := c.Export(context.Background(), nil, analytics.Build(nil, 6))
	if err == nil {
		t.Fatalf("expected an error")
	}
}

func TestExportWithoutService(t *testing.T) {
	c := &Client{dataSheet: "a", summarySheet: "b"}
	if err := c.Export(context.Background(), nil, analytics.Report{}); err == nil {
		t.Fatalf("expected an error without a service")
	}
}

func TestSummaryRowsLayout(t *testing.T) {
	snap := sampleSnapshot()
	rows := summaryRows(analytics.Build(snap, 6))

	find := func(label string) []any {
		for _, r := range rows {
			if len(r) > 0 && r[0] == label {
				return r
			}
		}
		t.Fatalf("row %q not found in %v", label, rows)
		return nil
	}

	if got := find("Earned")[1]; got != 500.0 {
		t.Errorf("Earned = %v", got)
	}
	if got := find("Balance")[1]; got != 387.66 && got != 387.65 {
		t.Errorf("Balance = %v", got)
	}
	if got := find("2026-01"); got[1] != 500.0 || got[2] != 100.0 || got[3] != 400.0 {
		t.Errorf("month row = %v", got)
	}
	if got := find("food"); got[1] != 100.0 {
		t.Errorf("food row = %v", got)
	}
	if got := find("Largest")[1]; got != "Salary 500.00 (salary, 2026-01-20)" {
		t.Errorf("Largest = %v", got)
	}
}

func TestSummaryRowsEmptyReport(t *testing.T) {
	rows := summaryRows(analytics.Build(nil, 6))
	for _, r := range rows {
		if len(r) > 0 && (r[0] == "Largest" || r[0] == "Smallest") {
			t.Fatalf("empty report must not list extrema: %v", r)
		}
	}
}

func TestQuoteSheet(t *testing.T) {
	cases := map[string]string{
		"Summary":     "'Summary'",
		"My Ledger":   "'My Ledger'",
		"Bob's sheet": "'Bob''s sheet'",
	}
	for in, want := range cases {
		if got := quoteSheet(in); got != want {
			t.Errorf("quoteSheet(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewValidatesSettings(t *testing.T) {
	ctx := context.Background()
	if _, err := New(ctx, Settings{DataSheet: "a", SummarySheet: "b", CredentialsJSON: "{}"}); err == nil {
		t.Errorf("missing spreadsheet id should fail")
	}
	if _, err := New(ctx, Settings{SpreadsheetID: "id", CredentialsJSON: "{}"}); err == nil {
		t.Errorf("missing sheet names should fail")
	}
	if _, err := New(ctx, Settings{SpreadsheetID: "id", DataSheet: "a", SummarySheet: "b"}); err == nil {
		t.Errorf("missing credentials should fail")
	}
}
