package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the bindings for keys that are not plain runes.
//
// Quit and Write only act in Normal mode.
type KeyMap struct {
	Quit, Write key.Binding

	Escape, Enter     key.Binding
	Backspace, Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:  key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Write: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "write")),

		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline / run command")),

		// Some terminals send ctrl+h for backspace.
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
	}
}

// Actions translates a key message into session actions. Pasted or
// buffered input yields one action per rune. Unbound keys yield nil.
func (km KeyMap) Actions(msg tea.KeyMsg) []Action {
	switch {
	case key.Matches(msg, km.Quit):
		return []Action{Ctrl('q')}
	case key.Matches(msg, km.Write):
		return []Action{Ctrl('w')}
	case key.Matches(msg, km.Escape):
		return []Action{Key(KeyEscape)}
	case key.Matches(msg, km.Enter):
		return []Action{Key(KeyEnter)}
	case key.Matches(msg, km.Backspace):
		return []Action{Key(KeyBackspace)}
	case key.Matches(msg, km.Delete):
		return []Action{Key(KeyDelete)}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []Action{Char(' ')}
	case tea.KeyTab:
		return []Action{Char('\t')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		out := make([]Action, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, Char(r))
		}
		return out
	}
	return nil
}
