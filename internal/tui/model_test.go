package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ledger/internal/core"
	"ledger/internal/session"
	"ledger/internal/storage/memory"
)

func newModel(t *testing.T, seed ...core.Transaction) Model {
	t.Helper()
	catalog := core.NewTagCatalog([]string{"food", "travel", "shopping", "bills", "salary", "other"})
	state := session.New(context.Background(), memory.New(seed...), catalog, session.Options{Today: "2026-02-11"})
	return New(context.Background(), session.NewRouter(state), Options{Currency: "€"})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestToSessionKeys(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want []session.Key
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, []session.Key{{Code: session.KeyEnter}}},
		{tea.KeyMsg{Type: tea.KeyEsc}, []session.Key{{Code: session.KeyEsc}}},
		{tea.KeyMsg{Type: tea.KeyTab}, []session.Key{{Code: session.KeyTab}}},
		{tea.KeyMsg{Type: tea.KeyBackspace}, []session.Key{{Code: session.KeyBackspace}}},
		{tea.KeyMsg{Type: tea.KeyUp}, []session.Key{{Code: session.KeyUp}}},
		{tea.KeyMsg{Type: tea.KeyDown}, []session.Key{{Code: session.KeyDown}}},
		{tea.KeyMsg{Type: tea.KeyLeft}, []session.Key{{Code: session.KeyLeft}}},
		{tea.KeyMsg{Type: tea.KeyRight}, []session.Key{{Code: session.KeyRight}}},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []session.Key{session.RuneKey(' ')}},
		{runes("q"), []session.Key{session.RuneKey('q')}},
		{runes("12,5"), []session.Key{session.RuneKey('1'), session.RuneKey('2'), session.RuneKey(','), session.RuneKey('5')}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, nil},
		{tea.KeyMsg{Type: tea.KeyF1}, nil},
	}
	for _, tt := range tests {
		got := toSessionKeys(tt.msg)
		if len(got) != len(tt.want) {
			t.Errorf("toSessionKeys(%v) = %v, want %v", tt.msg, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("toSessionKeys(%v)[%d] = %v, want %v", tt.msg, i, got[i], tt.want[i])
			}
		}
	}
}

func TestBrowsingView(t *testing.T) {
	m := newModel(t,
		core.Transaction{Source: "Groceries", Amount: 100, Kind: core.Debit, Tag: "food", Date: "2026-01-15"},
		core.Transaction{Source: "Salary", Amount: 500, Kind: core.Credit, Tag: "salary", Date: "2026-01-20"},
	)
	view := m.View()
	for _, want := range []string{"Ledger", "€500.00", "€100.00", "€400.00", "Groceries", "-€100.00", "> 2026-01-20", "add"} {
		if !strings.Contains(view, want) {
			t.Errorf("browsing view missing %q:\n%s", want, view)
		}
	}
}

func TestEmptyBrowsingView(t *testing.T) {
	view := newModel(t).View()
	if !strings.Contains(view, "No transactions yet") {
		t.Fatalf("expected empty hint:\n%s", view)
	}
}

func TestAddThroughKeys(t *testing.T) {
	m := newModel(t)
	m, _ = send(t, m, runes("a"), runes("Coffee"), tea.KeyMsg{Type: tea.KeyTab}, runes("3,5"))

	view := m.View()
	for _, want := range []string{"New transaction", "Coffee", "3,5▏", "< Debit >", "< food >", "2026-02-11", "save"} {
		if !strings.Contains(view, want) {
			t.Errorf("editing view missing %q:\n%s", want, view)
		}
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	txs := m.router.State().Transactions()
	if len(txs) != 1 || txs[0].Source != "Coffee" || txs[0].Amount != 3.5 {
		t.Fatalf("unexpected transactions %+v", txs)
	}
}

func TestReportingView(t *testing.T) {
	m := newModel(t,
		core.Transaction{Source: "Rent", Amount: 800, Kind: core.Debit, Tag: "bills", Date: "2026-01-01"},
		core.Transaction{Source: "Pizza", Amount: 20, Kind: core.Debit, Tag: "food", Date: "2026-01-05"},
		core.Transaction{Source: "Pay", Amount: 2000, Kind: core.Credit, Tag: "salary", Date: "2026-01-28"},
	)
	m, _ = send(t, m, runes("s"))
	view := m.View()
	for _, want := range []string{"Statistics", "Savings rate", "59.0%", "2026-01", "bills", "97.6%", "Largest", "Pay €2000.00", "Smallest", "Pizza", "█", "back"} {
		if !strings.Contains(view, want) {
			t.Errorf("reporting view missing %q:\n%s", want, view)
		}
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.router.State().Mode() != session.Browsing {
		t.Fatalf("esc should return to browsing")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newModel(t)
	if _, cmd := send(t, m, runes("q")); cmd == nil {
		t.Fatalf("q should quit while browsing")
	}
	m, cmd := send(t, m, runes("a"), runes("q"))
	if cmd != nil {
		t.Fatalf("q should be typed while editing")
	}
	if _, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatalf("ctrl+c should always quit")
	}
}

func TestWindowSizeLimitsRows(t *testing.T) {
	var seed []core.Transaction
	for i := 1; i <= 40; i++ {
		seed = append(seed, core.Transaction{Source: "row", Amount: float64(i), Kind: core.Debit, Tag: "food", Date: "2026-01-01"})
	}
	m := newModel(t, seed...)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 20})
	if !strings.Contains(m.View(), "of 40") {
		t.Fatalf("expected a scroll indicator:\n%s", m.View())
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		n, selected, rows int
		start, end        int
	}{
		{5, 0, 10, 0, 5},
		{40, 0, 10, 0, 10},
		{40, 20, 10, 15, 25},
		{40, 39, 10, 30, 40},
	}
	for _, tt := range tests {
		start, end := visibleRange(tt.n, tt.selected, tt.rows)
		if start != tt.start || end != tt.end {
			t.Errorf("visibleRange(%d, %d, %d) = %d, %d, want %d, %d", tt.n, tt.selected, tt.rows, start, end, tt.start, tt.end)
		}
		if tt.selected < start || tt.selected >= end {
			t.Errorf("selected %d not visible in [%d, %d)", tt.selected, start, end)
		}
	}
}

func TestHelpers(t *testing.T) {
	if got := truncate("Supermarket downtown", 8); got != "Superma…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("short", 8); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := bar(5, 10, 10); got != strings.Repeat("█", 5) {
		t.Errorf("bar = %q", got)
	}
	if got := bar(0, 10, 10); got != "" {
		t.Errorf("zero bar = %q", got)
	}
	if got := bar(0.01, 10, 10); got != "█" {
		t.Errorf("tiny bar should still show, got %q", got)
	}
}
