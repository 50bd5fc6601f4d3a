package editor

import "fmt"

// KeyKind identifies a discrete input key.
type KeyKind uint8

const (
	KeyRune KeyKind = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
)

func (k KeyKind) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	default:
		return fmt.Sprintf("KeyKind(%d)", uint8(k))
	}
}

// Action is one key press delivered to a Session. Rune is set for KeyRune.
// Ctrl marks a control-modified rune such as ctrl+q.
type Action struct {
	Kind KeyKind
	Rune rune
	Ctrl bool
}

func (a Action) String() string {
	switch {
	case a.Kind != KeyRune:
		return a.Kind.String()
	case a.Ctrl:
		return "ctrl+" + string(a.Rune)
	default:
		return string(a.Rune)
	}
}

// Char returns the action for typing r.
func Char(r rune) Action { return Action{Kind: KeyRune, Rune: r} }

// Ctrl returns the action for ctrl+r.
func Ctrl(r rune) Action { return Action{Kind: KeyRune, Rune: r, Ctrl: true} }

// Key returns the action for a non-rune key.
func Key(k KeyKind) Action { return Action{Kind: k} }

// Chars returns one Char action per rune of s.
func Chars(s string) []Action {
	out := make([]Action, 0, len(s))
	for _, r := range s {
		out = append(out, Char(r))
	}
	return out
}

// Repeat returns a repeated n times.
func Repeat(a Action, n int) []Action {
	out := make([]Action, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, a)
	}
	return out
}
