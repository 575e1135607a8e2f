// Package session holds the interactive ledger state machine: which mode the
// user is in, the cached transaction list and selection cursor, the form being
// edited, and the routing of key presses to mutations and store writes.
//
// Everything here runs on a single goroutine. A key press is handled to
// completion, store round trip included, before the next one is looked at.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"ledger/internal/analytics"
	"ledger/internal/core"
	applog "ledger/internal/log"
)

// Mode is the top-level state of a session.
type Mode int

const (
	Browsing Mode = iota
	Editing
	Reporting
)

func (m Mode) String() string {
	switch m {
	case Browsing:
		return "browsing"
	case Editing:
		return "editing"
	case Reporting:
		return "reporting"
	default:
		return "unknown"
	}
}

// Store is the persistence the session needs. Implementations own identity
// assignment and durability; the session only keeps a read replica.
type Store interface {
	ReadAll(ctx context.Context) ([]core.Transaction, error)
	Insert(ctx context.Context, tx core.Transaction) (int64, error)
	Update(ctx context.Context, tx core.Transaction) error
	Delete(ctx context.Context, id int64) error
}

// WriteOp names the store write that failed.
type WriteOp string

const (
	OpInsert WriteOp = "insert"
	OpUpdate WriteOp = "update"
	OpDelete WriteOp = "delete"
)

// WriteError is returned when a store write fails. The session state is left
// as it was before the write was attempted.
type WriteError struct {
	Op  WriteOp
	ID  int64
	Err error
}

func (e *WriteError) Error() string {
	if e.Op == OpInsert {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s #%d failed: %v", e.Op, e.ID, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Options tune a new State.
type Options struct {
	// Today is the date placeholder for new transactions (YYYY-MM-DD).
	Today string
	// Window is the number of months kept in the report history.
	Window int
}

// State is the session state machine.
type State struct {
	store   Store
	catalog core.TagCatalog
	window  int

	mode     Mode
	cache    []core.Transaction
	selected int
	form     Form
	target   *int64
	status   string
	report   analytics.Report
}

// New creates a session in Browsing mode and loads the first snapshot.
func New(ctx context.Context, store Store, catalog core.TagCatalog, opts Options) *State {
	window := opts.Window
	if window <= 0 {
		window = analytics.DefaultWindow
	}
	s := &State{
		store:   store,
		catalog: catalog,
		window:  window,
		mode:    Browsing,
		form:    NewForm(opts.Today),
	}
	s.Refresh(ctx)
	return s
}

func (s *State) Mode() Mode               { return s.mode }
func (s *State) Selected() int            { return s.selected }
func (s *State) Form() Form               { return s.form }
func (s *State) Catalog() core.TagCatalog { return s.catalog }
func (s *State) Report() analytics.Report { return s.report }
func (s *State) Status() string           { return s.status }

// Transactions is the cached snapshot, newest first. Callers must not modify it.
func (s *State) Transactions() []core.Transaction {
	return s.cache
}

// EditTarget returns the id being edited, if the form replaces an existing row.
func (s *State) EditTarget() (int64, bool) {
	if s.target == nil {
		return 0, false
	}
	return *s.target, true
}

// Current returns the selected transaction.
func (s *State) Current() (core.Transaction, bool) {
	if len(s.cache) == 0 {
		return core.Transaction{}, false
	}
	return s.cache[s.selected], true
}

// Refresh re-reads the store. A failed read leaves an empty cache and a
// status message; it never stops the session.
func (s *State) Refresh(ctx context.Context) {
	txs, err := s.store.ReadAll(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Failed to read transactions, showing empty ledger",
			applog.FieldComponent, applog.ComponentSession,
			applog.FieldOperation, applog.OpRead,
			applog.FieldError, err)
		s.status = "could not load transactions: " + err.Error()
		txs = nil
	}
	s.cache = txs
	s.clampSelection()
	s.report = analytics.Build(s.cache, s.window)
}

// clampSelection keeps 0 <= selected < max(1, len(cache)). A shrink moves the
// cursor back by one step; it only returns to 0 when the cache is empty.
func (s *State) clampSelection() {
	n := len(s.cache)
	if s.selected >= n && s.selected > 0 {
		s.selected--
	}
	switch {
	case n == 0:
		s.selected = 0
	case s.selected >= n:
		s.selected = n - 1
	case s.selected < 0:
		s.selected = 0
	}
}

func (s *State) moveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

func (s *State) moveDown() {
	if s.selected < len(s.cache)-1 {
		s.selected++
	}
}

func (s *State) beginAdd() {
	s.form.Reset()
	s.target = nil
	s.mode = Editing
}

func (s *State) beginEdit() {
	tx, ok := s.Current()
	if !ok {
		return
	}
	s.form.LoadFrom(tx, s.catalog)
	id := tx.ID
	s.target = &id
	s.mode = Editing
}

func (s *State) cancelEdit() {
	s.form.Reset()
	s.target = nil
	s.mode = Browsing
}

// commit writes the form. On failure nothing changes, so the user can retry
// or cancel.
func (s *State) commit(ctx context.Context) error {
	draft := s.form.Draft(s.catalog)
	if s.target != nil {
		draft.ID = *s.target
		if err := s.store.Update(ctx, draft); err != nil {
			return &WriteError{Op: OpUpdate, ID: draft.ID, Err: err}
		}
	} else {
		if _, err := s.store.Insert(ctx, draft); err != nil {
			return &WriteError{Op: OpInsert, Err: err}
		}
	}
	s.target = nil
	s.form.Reset()
	s.mode = Browsing
	s.Refresh(ctx)
	return nil
}

func (s *State) deleteSelected(ctx context.Context) error {
	tx, ok := s.Current()
	if !ok {
		return nil
	}
	if err := s.store.Delete(ctx, tx.ID); err != nil {
		return &WriteError{Op: OpDelete, ID: tx.ID, Err: err}
	}
	s.Refresh(ctx)
	return nil
}

// cycle handles left/right on the form. It toggles the kind or steps the tag
// depending on the active field.
func (s *State) cycle(forward bool) {
	switch s.form.Active {
	case FieldKind:
		s.form.ToggleKind()
	case FieldTag:
		if forward {
			s.form.NextTag(s.catalog.Len())
		} else {
			s.form.PrevTag(s.catalog.Len())
		}
	}
}
