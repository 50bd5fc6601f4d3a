package buffer

import "unicode/utf8"

// OffsetClampMode selects how out-of-range input is treated by the
// coordinate conversions.
type OffsetClampMode uint8

const (
	// OffsetError rejects coordinates or offsets outside the document.
	OffsetError OffsetClampMode = iota
	// OffsetClamp clamps them to the nearest valid value.
	OffsetClamp
)

// OffsetFromPos maps p to a flat rune offset over rows, where rows is the
// document split on '\n'. Every row before p.Row contributes its length plus
// one for the newline. p.Col may equal the row length, which addresses the
// gap after the row's last rune.
func OffsetFromPos(rows []string, p Pos, mode OffsetClampMode) (int, bool) {
	p, ok := normalizePos(rows, p, mode)
	if !ok {
		return 0, false
	}

	off := 0
	for row := 0; row < p.Row; row++ {
		off += utf8.RuneCountInString(rows[row]) + 1
	}
	return off + p.Col, true
}

// PosFromOffset is the inverse of OffsetFromPos. The offset of a newline maps
// to the end of the row it terminates.
func PosFromOffset(rows []string, off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, docRuneLen(rows), mode)
	if !ok {
		return Pos{}, false
	}
	if len(rows) == 0 {
		return Pos{}, true
	}

	cur := 0
	for row, line := range rows {
		n := utf8.RuneCountInString(line)
		if off <= cur+n {
			return Pos{Row: row, Col: off - cur}, true
		}
		cur += n + 1
	}
	return Pos{}, false
}

func normalizePos(rows []string, p Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		if p.Row < 0 || p.Row >= len(rows) {
			return Pos{}, false
		}
		if p.Col < 0 || p.Col > rowLen(rows, p.Row) {
			return Pos{}, false
		}
		return p, true
	case OffsetClamp:
		return ClampPos(p, len(rows), func(row int) int { return rowLen(rows, row) }), true
	default:
		return Pos{}, false
	}
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}

func rowLen(rows []string, row int) int {
	if row < 0 || row >= len(rows) {
		return 0
	}
	return utf8.RuneCountInString(rows[row])
}

func docRuneLen(rows []string) int {
	if len(rows) == 0 {
		return 0
	}
	total := len(rows) - 1
	for _, line := range rows {
		total += utf8.RuneCountInString(line)
	}
	return total
}
