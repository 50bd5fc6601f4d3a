package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/piecevi/internal/cellwidth"
)

func (m *Model) renderContent() string {
	rows := m.sess.Rows()
	cur := m.sess.Cursor()

	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(len(rows))
	}

	out := make([]string, 0, len(rows))
	for row, line := range rows {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if row == cur.Y {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		if row == cur.Y {
			sb.WriteString(m.renderCursorLine(line, cur.X))
		} else {
			sb.WriteString(m.cfg.Style.Text.Render(cellwidth.Expand(line, m.cfg.TabWidth)))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderCursorLine draws line with the cursor cell highlighted. A cursor
// past the last rune is drawn as a blank cell.
func (m *Model) renderCursorLine(line string, col int) string {
	st := m.cfg.Style
	var before, after strings.Builder
	under := " "

	cells := 0
	for i, r := range []rune(line) {
		w := cellwidth.Rune(r, cells, m.cfg.TabWidth)
		s := string(r)
		if r == '\t' {
			s = strings.Repeat(" ", w)
		}
		switch {
		case i < col:
			before.WriteString(s)
		case i == col:
			under = s
		default:
			after.WriteString(s)
		}
		cells += w
	}
	return st.Text.Render(before.String()) + st.Cursor.Render(under) + st.Text.Render(after.String())
}

// renderStatus draws the bottom line: command text, a pending status
// message or the mode, and the cursor position on the right. The position
// gains a "-cell" suffix when tabs or wide runes shift the screen column.
func (m *Model) renderStatus() string {
	st := m.cfg.Style
	mode := m.sess.Mode()
	cur := m.sess.Cursor()

	left := ""
	leftStyle := st.Status
	switch {
	case mode.Kind == ModeCommand:
		left = ":" + mode.Command
	case mode.Status != "":
		left = mode.Status
		if mode.StatusErr {
			leftStyle = st.StatusErr
		}
	case mode.Kind == ModeInsert:
		left = "-- " + mode.Kind.String() + " --"
		leftStyle = st.StatusMode
	}
	right := strconv.Itoa(cur.Y+1) + "," + strconv.Itoa(cur.X+1)
	if cell := cellwidth.ColToCell(lineAt(m.sess.Rows(), cur.Y), cur.X, m.cfg.TabWidth); cell != cur.X {
		right += "-" + strconv.Itoa(cell+1)
	}

	gap := m.width - cellwidth.String(left, m.cfg.TabWidth) - cellwidth.String(right, m.cfg.TabWidth)
	if gap < 1 {
		gap = 1
	}
	return leftStyle.Render(left) + st.Status.Render(strings.Repeat(" ", gap)+right)
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}

func lineAt(rows []string, row int) string {
	if row < 0 || row >= len(rows) {
		return ""
	}
	return rows[row]
}
