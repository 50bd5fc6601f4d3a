package editor

import (
	"unicode/utf8"

	"github.com/iw2rmb/piecevi/buffer"
)

// Cursor is the editing position in rune columns.
//
// DesiredX is the sticky column: vertical moves try to land on it and every
// horizontal move or edit resets it to X.
type Cursor struct {
	X, Y     int
	DesiredX int
}

func (c Cursor) Pos() buffer.Pos { return buffer.Pos{Row: c.Y, Col: c.X} }

// clampNormal bounds x to a character cell of a line of lineLen runes.
func clampNormal(x, lineLen int) int { return clampInt(x, 0, max(lineLen-1, 0)) }

// clampInsert bounds x to an insertion point, which may sit after the last rune.
func clampInsert(x, lineLen int) int { return clampInt(x, 0, lineLen) }

func (c Cursor) withX(x int) Cursor {
	c.X = x
	c.DesiredX = x
	return c
}

func (c Cursor) left(rows []string) Cursor {
	return c.withX(clampNormal(c.X-1, lineLen(rows, c.Y)))
}

func (c Cursor) right(rows []string) Cursor {
	return c.withX(clampNormal(c.X+1, lineLen(rows, c.Y)))
}

func (c Cursor) up(rows []string) Cursor { return c.vertical(rows, -1) }
func (c Cursor) down(rows []string) Cursor { return c.vertical(rows, 1) }

func (c Cursor) vertical(rows []string, dy int) Cursor {
	c.Y = clampInt(c.Y+dy, 0, max(len(rows)-1, 0))
	c.X = clampNormal(c.DesiredX, lineLen(rows, c.Y))
	return c
}

// appendAfter moves to the insertion point after the character under the
// cursor. Empty lines keep the cursor at column 0.
func (c Cursor) appendAfter(rows []string) Cursor {
	n := lineLen(rows, c.Y)
	x := c.X
	if n > 0 {
		x++
	}
	return c.withX(clampInsert(x, n))
}

// leaveInsert steps back onto the last typed character.
func (c Cursor) leaveInsert(rows []string) Cursor {
	return c.withX(clampNormal(c.X-1, lineLen(rows, c.Y)))
}

// clampTo keeps the cursor inside rows using the insert-mode column policy.
func (c Cursor) clampTo(rows []string) Cursor {
	c.Y = clampInt(c.Y, 0, max(len(rows)-1, 0))
	c.X = clampInsert(c.X, lineLen(rows, c.Y))
	return c
}

func lineLen(rows []string, row int) int {
	if row < 0 || row >= len(rows) {
		return 0
	}
	return utf8.RuneCountInString(rows[row])
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
