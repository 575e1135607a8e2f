package session

import (
	"context"
	"testing"

	"ledger/internal/core"
	"ledger/internal/storage/memory"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		mode Mode
		key  Key
		want Action
	}{
		{Browsing, RuneKey('q'), ActQuit},
		{Browsing, RuneKey('a'), ActAdd},
		{Browsing, RuneKey('e'), ActEdit},
		{Browsing, Key{Code: KeyEnter}, ActEdit},
		{Browsing, RuneKey('d'), ActDelete},
		{Browsing, RuneKey('s'), ActOpenReport},
		{Browsing, Key{Code: KeyUp}, ActUp},
		{Browsing, RuneKey('k'), ActUp},
		{Browsing, Key{Code: KeyDown}, ActDown},
		{Browsing, RuneKey('j'), ActDown},
		{Browsing, RuneKey('x'), ActNone},
		{Browsing, Key{Code: KeyEsc}, ActNone},

		{Editing, Key{Code: KeyEsc}, ActCancel},
		{Editing, Key{Code: KeyTab}, ActNextField},
		{Editing, Key{Code: KeyEnter}, ActCommit},
		{Editing, Key{Code: KeyLeft}, ActLeft},
		{Editing, Key{Code: KeyRight}, ActRight},
		{Editing, Key{Code: KeyBackspace}, ActBackspace},
		{Editing, RuneKey('q'), ActChar},
		{Editing, RuneKey('é'), ActChar},
		{Editing, RuneKey(' '), ActChar},
		{Editing, RuneKey('\x07'), ActNone},
		{Editing, Key{Code: KeyUp}, ActNone},

		{Reporting, Key{Code: KeyEsc}, ActCancel},
		{Reporting, RuneKey('q'), ActCancel},
		{Reporting, RuneKey('a'), ActNone},
		{Reporting, Key{Code: KeyEnter}, ActNone},
	}
	for _, tt := range tests {
		if got := Resolve(tt.mode, tt.key); got != tt.want {
			t.Errorf("Resolve(%v, %+v) = %v, want %v", tt.mode, tt.key, got, tt.want)
		}
	}
}

// Every key in every mode must be handled without panicking, including on an
// empty ledger.
func TestEveryKeyInEveryMode(t *testing.T) {
	keys := []Key{
		{Code: KeyNone}, {Code: KeyEnter}, {Code: KeyEsc}, {Code: KeyTab},
		{Code: KeyBackspace}, {Code: KeyUp}, {Code: KeyDown}, {Code: KeyLeft}, {Code: KeyRight},
		RuneKey('q'), RuneKey('a'), RuneKey('e'), RuneKey('d'), RuneKey('s'), RuneKey('j'), RuneKey('k'), RuneKey('1'),
	}
	seeds := [][]core.Transaction{
		nil,
		{{Source: "x", Amount: 1, Kind: core.Debit, Tag: "food", Date: "2026-01-01"}},
	}
	enter := map[Mode][]Key{
		Browsing:  nil,
		Editing:   {RuneKey('a')},
		Reporting: {RuneKey('s')},
	}
	ctx := context.Background()
	for _, seed := range seeds {
		for mode, prefix := range enter {
			for _, k := range keys {
				state := New(ctx, memory.New(seed...), testCatalog(), Options{Today: "2026-01-01"})
				r := NewRouter(state)
				for _, p := range prefix {
					r.Handle(ctx, p)
				}
				if state.Mode() != mode {
					t.Fatalf("setup reached %v, want %v", state.Mode(), mode)
				}
				if _, err := r.Handle(ctx, k); err != nil {
					t.Errorf("%v + %+v: %v", mode, k, err)
				}
				checkSelection(t, state)
			}
		}
	}
}

func TestActionString(t *testing.T) {
	if ActOpenReport.String() != "open_report" || Action(99).String() != "unknown" {
		t.Fatalf("unexpected action names")
	}
	if Reporting.String() != "reporting" || Mode(9).String() != "unknown" {
		t.Fatalf("unexpected mode names")
	}
}
