package editor

import "fmt"

func (s *Session) handleCommand(a Action) (Mode, Outcome) {
	text := s.mode.Command
	switch a.Kind {
	case KeyRune:
		if a.Ctrl {
			return s.mode, Outcome{}
		}
		return commandMode(text + string(a.Rune)), Outcome{}
	case KeyBackspace:
		if text == "" {
			return normalMode(), Outcome{}
		}
		r := []rune(text)
		return commandMode(string(r[:len(r)-1])), Outcome{}
	case KeyEscape:
		return normalMode(), Outcome{}
	case KeyEnter:
		return s.execute(text)
	}
	return s.mode, Outcome{}
}

// execute runs a command line. Unknown commands return to Normal mode
// silently.
func (s *Session) execute(cmd string) (Mode, Outcome) {
	switch cmd {
	case "q":
		return normalMode(), Outcome{Quit: true}
	case "w":
		return s.write()
	case "wq":
		mode, out := s.write()
		out.Quit = out.Wrote
		return mode, out
	}
	s.logger.Printf("editor: unknown command %q", cmd)
	return normalMode(), Outcome{}
}

// write saves the document through the store and reports the result as a
// one-shot status.
func (s *Session) write() (Mode, Outcome) {
	if s.path == "" {
		return statusMode("no file name", true), Outcome{}
	}
	text := s.table.String()
	n, err := s.store.Save(s.path, text)
	if err != nil {
		s.logger.Printf("editor: write %s: %v", s.path, err)
		return statusMode(err.Error(), true), Outcome{}
	}
	s.meta.Update(n, s.now())
	lines := len(s.table.Lines())
	s.logger.Printf("editor: wrote %s (%d lines, %d bytes)", s.path, lines, n)
	return statusMode(fmt.Sprintf("%q %dL, %dB written", s.path, lines, n), false), Outcome{Wrote: true}
}
