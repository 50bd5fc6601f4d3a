package editor

import "github.com/iw2rmb/piecevi/buffer"

// ChangeEvent is delivered to Config.OnChange after an action changed the
// document.
type ChangeEvent struct {
	Version uint64
	Cursor  Cursor
	Mode    ModeKind

	// Simplest payload; hosts can diff if needed.
	Text string
}

func buildChangeEvent(t *buffer.Table, c Cursor, m Mode) ChangeEvent {
	return ChangeEvent{
		Version: t.Version(),
		Cursor:  c,
		Mode:    m.Kind,
		Text:    t.String(),
	}
}
