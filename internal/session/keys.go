package session

import "unicode"

// KeyCode is the terminal-independent shape of a key press.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Key is one key press. Rune is set only for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
}

// RuneKey is shorthand for a printable key.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Action is what a key means once the current mode is known.
type Action int

const (
	ActNone Action = iota
	ActQuit
	ActAdd
	ActEdit
	ActDelete
	ActOpenReport
	ActCancel
	ActUp
	ActDown
	ActNextField
	ActCommit
	ActLeft
	ActRight
	ActChar
	ActBackspace
)

var actionNames = map[Action]string{
	ActNone:       "none",
	ActQuit:       "quit",
	ActAdd:        "add",
	ActEdit:       "edit",
	ActDelete:     "delete",
	ActOpenReport: "open_report",
	ActCancel:     "cancel",
	ActUp:         "up",
	ActDown:       "down",
	ActNextField:  "next_field",
	ActCommit:     "commit",
	ActLeft:       "left",
	ActRight:      "right",
	ActChar:       "char",
	ActBackspace:  "backspace",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Resolve maps a key to an action for mode. Letters are commands while
// browsing and plain input while editing.
func Resolve(mode Mode, k Key) Action {
	switch mode {
	case Browsing:
		switch k.Code {
		case KeyUp:
			return ActUp
		case KeyDown:
			return ActDown
		case KeyEnter:
			return ActEdit
		case KeyRune:
			switch k.Rune {
			case 'q':
				return ActQuit
			case 'a':
				return ActAdd
			case 'e':
				return ActEdit
			case 'd':
				return ActDelete
			case 's':
				return ActOpenReport
			case 'k':
				return ActUp
			case 'j':
				return ActDown
			}
		}
	case Editing:
		switch k.Code {
		case KeyEsc:
			return ActCancel
		case KeyTab:
			return ActNextField
		case KeyEnter:
			return ActCommit
		case KeyLeft:
			return ActLeft
		case KeyRight:
			return ActRight
		case KeyBackspace:
			return ActBackspace
		case KeyRune:
			if unicode.IsPrint(k.Rune) {
				return ActChar
			}
		}
	case Reporting:
		switch k.Code {
		case KeyEsc:
			return ActCancel
		case KeyRune:
			if k.Rune == 'q' {
				return ActCancel
			}
		}
	}
	return ActNone
}
