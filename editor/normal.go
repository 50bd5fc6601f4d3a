package editor

// handleNormal interprets a in Normal mode. Any pending status message is
// dropped.
func (s *Session) handleNormal(a Action) (Mode, Outcome) {
	if a.Kind != KeyRune {
		return normalMode(), Outcome{}
	}
	if a.Ctrl {
		switch a.Rune {
		case 'q':
			return normalMode(), Outcome{Quit: true}
		case 'w':
			return s.write()
		}
		return normalMode(), Outcome{}
	}

	rows := s.table.Rows()
	switch a.Rune {
	case 'h':
		s.cur = s.cur.left(rows)
	case 'l':
		s.cur = s.cur.right(rows)
	case 'j':
		s.cur = s.cur.down(rows)
	case 'k':
		s.cur = s.cur.up(rows)
	case 'i':
		return insertMode(), Outcome{}
	case 'a':
		s.cur = s.cur.appendAfter(rows)
		return insertMode(), Outcome{}
	case ':':
		return commandMode(""), Outcome{}
	}
	return normalMode(), Outcome{}
}
