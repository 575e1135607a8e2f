// Package tui draws the ledger session in the terminal and feeds key presses
// back into it.
package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	applog "ledger/internal/log"
	"ledger/internal/session"
)

// Options configure the renderer.
type Options struct {
	Currency string
}

// Model is the bubbletea model around a session router.
type Model struct {
	ctx      context.Context
	router   *session.Router
	currency string
	keys     keyMap
	help     help.Model
	width    int
	height   int
}

func New(ctx context.Context, router *session.Router, opts Options) Model {
	currency := opts.Currency
	if currency == "" {
		currency = "$"
	}
	return Model{
		ctx:      ctx,
		router:   router,
		currency: currency,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		for _, k := range toSessionKeys(msg) {
			// Failures are already on the status line.
			quit, _ := m.router.Handle(m.ctx, k)
			if quit {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	s := m.router.State()

	var body string
	switch s.Mode() {
	case session.Editing:
		body = lipgloss.JoinVertical(lipgloss.Left, m.renderBrowsing(), m.renderEditing())
	case session.Reporting:
		body = m.renderReporting()
	default:
		body = m.renderBrowsing()
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if status := s.Status(); status != "" {
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(m.help.ShortHelpView(m.keys.bindings(s.Mode()))))
	return b.String()
}

// Run starts the full-screen program and blocks until the user quits.
func Run(ctx context.Context, router *session.Router, opts Options) error {
	p := tea.NewProgram(New(ctx, router, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		slog.ErrorContext(ctx, "Terminal UI stopped with error",
			applog.FieldComponent, applog.ComponentTUI,
			applog.FieldError, err)
	}
	return err
}
