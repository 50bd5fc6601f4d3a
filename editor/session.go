package editor

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/iw2rmb/piecevi/buffer"
	"github.com/iw2rmb/piecevi/internal/file"
)

// ErrCursorOutOfBounds reports a cursor that no longer maps to a document
// offset. The action that hit it leaves the session unchanged.
var ErrCursorOutOfBounds = errors.New("editor: cursor out of bounds")

// Store persists the document text. Save returns the number of bytes written.
type Store interface {
	Save(path, text string) (int, error)
}

// Outcome reports side effects of a handled action that the host must act on.
type Outcome struct {
	Quit  bool
	Wrote bool
}

// Session is the editing state machine: a piece table, a cursor and a mode.
// It is not safe for concurrent use.
type Session struct {
	table *buffer.Table
	cur   Cursor
	mode  Mode

	path  string
	store Store
	meta  file.Metadata

	logger   *log.Logger
	onChange func(ChangeEvent)
	now      func() time.Time
}

// NewSession starts a session over cfg.Text in Normal mode at (0,0).
func NewSession(cfg Config) *Session {
	cfg = cfg.withDefaults()
	return &Session{
		table:    buffer.New(cfg.Text),
		mode:     normalMode(),
		path:     cfg.Path,
		store:    cfg.Store,
		meta:     file.Metadata{Path: cfg.Path, Size: len(cfg.Text)},
		logger:   cfg.Logger,
		onChange: cfg.OnChange,
		now:      time.Now,
	}
}

func (s *Session) Table() *buffer.Table { return s.table }
func (s *Session) Text() string { return s.table.String() }
func (s *Session) Cursor() Cursor { return s.cur }
func (s *Session) Mode() Mode { return s.mode }
func (s *Session) Path() string { return s.path }
func (s *Session) Metadata() file.Metadata { return s.meta }

// Rows returns the document split on '\n'. It always has at least one row.
func (s *Session) Rows() []string { return s.table.Rows() }

// Handle applies one action. The returned error is non-nil only when the
// cursor could not be mapped into the document; in that case the document,
// cursor and mode are left as they were.
func (s *Session) Handle(a Action) (Outcome, error) {
	version := s.table.Version()

	var (
		next Mode
		out  Outcome
		err  error
	)
	switch s.mode.Kind {
	case ModeInsert:
		next, err = s.handleInsert(a)
	case ModeCommand:
		next, out = s.handleCommand(a)
	default:
		next, out = s.handleNormal(a)
	}
	if err != nil {
		s.logger.Printf("editor: %s in %s mode: %v", a, s.mode.Kind, err)
		return Outcome{}, err
	}
	s.mode = next
	s.table.Merge()

	if s.table.Version() != version && s.onChange != nil {
		s.onChange(buildChangeEvent(s.table, s.cur, s.mode))
	}
	return out, nil
}

// HandleAll applies actions in order and stops at the first error or quit.
func (s *Session) HandleAll(actions []Action) (Outcome, error) {
	var acc Outcome
	for _, a := range actions {
		out, err := s.Handle(a)
		if err != nil {
			return acc, err
		}
		acc.Wrote = acc.Wrote || out.Wrote
		if out.Quit {
			acc.Quit = true
			return acc, nil
		}
	}
	return acc, nil
}

// offset maps p to a document offset, rejecting positions outside rows.
func (s *Session) offset(rows []string, p buffer.Pos) (int, error) {
	off, ok := buffer.OffsetFromPos(rows, p, buffer.OffsetError)
	if !ok {
		return 0, fmt.Errorf("%w: row %d col %d", ErrCursorOutOfBounds, p.Row, p.Col)
	}
	return off, nil
}
