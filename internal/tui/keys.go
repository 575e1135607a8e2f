package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ledger/internal/session"
)

// toSessionKeys converts a terminal key event into session keys. A paste
// arrives as one event with many runes and becomes one key per rune.
func toSessionKeys(msg tea.KeyMsg) []session.Key {
	switch msg.Type {
	case tea.KeyEnter:
		return []session.Key{{Code: session.KeyEnter}}
	case tea.KeyEsc:
		return []session.Key{{Code: session.KeyEsc}}
	case tea.KeyTab:
		return []session.Key{{Code: session.KeyTab}}
	case tea.KeyBackspace:
		return []session.Key{{Code: session.KeyBackspace}}
	case tea.KeyUp:
		return []session.Key{{Code: session.KeyUp}}
	case tea.KeyDown:
		return []session.Key{{Code: session.KeyDown}}
	case tea.KeyLeft:
		return []session.Key{{Code: session.KeyLeft}}
	case tea.KeyRight:
		return []session.Key{{Code: session.KeyRight}}
	case tea.KeySpace:
		return []session.Key{session.RuneKey(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		keys := make([]session.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, session.RuneKey(r))
		}
		return keys
	}
	return nil
}

// keyMap holds the bindings shown in the footer. Dispatch itself happens in
// session.Resolve; these only describe it.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Stats    key.Binding
	Quit     key.Binding
	Next     key.Binding
	Cycle    key.Binding
	Save     key.Binding
	Cancel   key.Binding
	Back     key.Binding
	ForceEnd key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:     key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Stats:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Cycle:    key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "type/tag")),
		Save:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Back:     key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "back")),
		ForceEnd: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
	}
}

// bindings returns the footer bindings for mode.
func (k keyMap) bindings(mode session.Mode) []key.Binding {
	switch mode {
	case session.Editing:
		return []key.Binding{k.Next, k.Cycle, k.Save, k.Cancel}
	case session.Reporting:
		return []key.Binding{k.Back, k.ForceEnd}
	default:
		return []key.Binding{k.Up, k.Down, k.Add, k.Edit, k.Delete, k.Stats, k.Quit}
	}
}
