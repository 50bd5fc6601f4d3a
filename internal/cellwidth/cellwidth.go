// Package cellwidth measures runes and strings in terminal cells.
package cellwidth

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a non-positive tab width is passed in.
const DefaultTabWidth = 4

// Rune returns the cell width of r drawn at cell visualCol. Tabs advance to
// the next multiple of tabWidth.
func Rune(r rune, visualCol, tabWidth int) int {
	if r == '\t' {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.RuneWidth(r)
	if w < 0 {
		w = 0
	}
	if w == 0 && r >= ' ' {
		if fallback := uniseg.StringWidth(string(r)); fallback > w {
			w = fallback
		}
	}
	return w
}

// String returns the cell width of s starting at cell 0.
func String(s string, tabWidth int) int {
	cells := 0
	for _, r := range s {
		cells += Rune(r, cells, tabWidth)
	}
	return cells
}

// ColToCell returns the cell at which rune column col of line starts.
// Columns past the end of line continue one cell per column.
func ColToCell(line string, col, tabWidth int) int {
	cells, i := 0, 0
	for _, r := range line {
		if i >= col {
			return cells
		}
		cells += Rune(r, cells, tabWidth)
		i++
	}
	return cells + (col - i)
}

// Expand replaces tabs in line with spaces up to the next tab stop.
func Expand(line string, tabWidth int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var sb strings.Builder
	cells := 0
	for _, r := range line {
		w := Rune(r, cells, tabWidth)
		if r == '\t' {
			sb.WriteString(strings.Repeat(" ", w))
		} else {
			sb.WriteRune(r)
		}
		cells += w
	}
	return sb.String()
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	adv := tabWidth - visualCol%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}
