package editor

import "github.com/iw2rmb/piecevi/buffer"

func (s *Session) handleInsert(a Action) (Mode, error) {
	var err error
	switch a.Kind {
	case KeyEscape:
		s.cur = s.cur.leaveInsert(s.table.Rows())
		return normalMode(), nil
	case KeyRune:
		if a.Ctrl {
			break
		}
		if a.Rune == '\n' || a.Rune == '\r' {
			err = s.splitLine()
		} else {
			err = s.insertRune(a.Rune)
		}
	case KeyEnter:
		err = s.splitLine()
	case KeyBackspace:
		err = s.backspace()
	case KeyDelete:
		err = s.deleteForward()
	}
	return insertMode(), err
}

// insertRune writes r at the cursor and advances past it.
func (s *Session) insertRune(r rune) error {
	rows := s.table.Rows()
	c := s.cur.clampTo(rows)
	off, err := s.offset(rows, c.Pos())
	if err != nil {
		return err
	}
	if err := s.table.Insert(off, string(r)); err != nil {
		return err
	}
	s.cur = c.withX(c.X + 1)
	return nil
}

// splitLine inserts a newline at the cursor and moves to the start of the
// new line.
func (s *Session) splitLine() error {
	rows := s.table.Rows()
	c := s.cur.clampTo(rows)
	off, err := s.offset(rows, c.Pos())
	if err != nil {
		return err
	}
	if err := s.table.Insert(off, "\n"); err != nil {
		return err
	}
	s.cur = Cursor{Y: c.Y + 1}
	return nil
}

// backspace removes the rune before the cursor. At column 0 it joins the
// line with the one above; at (0,0) it does nothing.
func (s *Session) backspace() error {
	rows := s.table.Rows()
	c := s.cur.clampTo(rows)
	switch {
	case c.X == 0 && c.Y == 0:
		return nil
	case c.X == 0:
		off, err := s.offset(rows, buffer.Pos{Row: c.Y})
		if err != nil {
			return err
		}
		if err := s.table.Delete(off - 1); err != nil {
			return err
		}
		s.cur = Cursor{Y: c.Y - 1}.withX(lineLen(rows, c.Y-1))
	default:
		off, err := s.offset(rows, buffer.Pos{Row: c.Y, Col: c.X - 1})
		if err != nil {
			return err
		}
		if err := s.table.Delete(off); err != nil {
			return err
		}
		s.cur = c.withX(c.X - 1)
	}
	return nil
}

// deleteForward removes the rune under the cursor. At the end of a line it
// joins the next line; at the end of the document it does nothing.
func (s *Session) deleteForward() error {
	rows := s.table.Rows()
	c := s.cur.clampTo(rows)
	if c.X >= lineLen(rows, c.Y) && c.Y >= len(rows)-1 {
		return nil
	}
	off, err := s.offset(rows, c.Pos())
	if err != nil {
		return err
	}
	if err := s.table.Delete(off); err != nil {
		return err
	}
	s.cur = c.withX(c.X)
	return nil
}
