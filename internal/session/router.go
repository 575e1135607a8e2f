package session

import (
	"context"
	"log/slog"

	applog "ledger/internal/log"
)

type transition func(ctx context.Context, s *State, k Key) (quit bool, err error)

// transitions is the complete (mode, action) table. A pair that is not listed
// does nothing.
var transitions = map[Mode]map[Action]transition{
	Browsing: {
		ActQuit:       func(context.Context, *State, Key) (bool, error) { return true, nil },
		ActAdd:        stay((*State).beginAdd),
		ActEdit:       stay((*State).beginEdit),
		ActOpenReport: stay(func(s *State) { s.mode = Reporting }),
		ActUp:         stay((*State).moveUp),
		ActDown:       stay((*State).moveDown),
		ActDelete: func(ctx context.Context, s *State, _ Key) (bool, error) {
			return false, s.deleteSelected(ctx)
		},
	},
	Editing: {
		ActCancel:    stay((*State).cancelEdit),
		ActNextField: stay(func(s *State) { s.form.AdvanceField() }),
		ActLeft:      stay(func(s *State) { s.cycle(false) }),
		ActRight:     stay(func(s *State) { s.cycle(true) }),
		ActBackspace: stay(func(s *State) { s.form.PopChar() }),
		ActChar: func(_ context.Context, s *State, k Key) (bool, error) {
			s.form.PushChar(k.Rune)
			return false, nil
		},
		ActCommit: func(ctx context.Context, s *State, _ Key) (bool, error) {
			return false, s.commit(ctx)
		},
	},
	Reporting: {
		ActCancel: stay(func(s *State) { s.mode = Browsing }),
	},
}

func stay(fn func(*State)) transition {
	return func(_ context.Context, s *State, _ Key) (bool, error) {
		fn(s)
		return false, nil
	}
}

// Router feeds key presses into a State.
type Router struct {
	state *State
}

func NewRouter(state *State) *Router {
	return &Router{state: state}
}

func (r *Router) State() *State {
	return r.state
}

// Handle applies one key press. It reports whether the session should end.
// A store write failure comes back as a *WriteError and is also kept as the
// status line until the next key.
func (r *Router) Handle(ctx context.Context, k Key) (bool, error) {
	s := r.state
	s.status = ""

	act := Resolve(s.mode, k)
	fn, ok := transitions[s.mode][act]
	if !ok {
		return false, nil
	}

	quit, err := fn(ctx, s, k)
	if err != nil {
		s.status = err.Error()
		slog.ErrorContext(ctx, "Ledger write failed",
			applog.FieldComponent, applog.ComponentSession,
			applog.FieldMode, s.mode.String(),
			applog.FieldAction, act.String(),
			applog.FieldError, err)
		return false, err
	}
	return quit, nil
}
