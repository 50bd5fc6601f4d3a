package buffer

// Pos points into the logical document by (row, col) in runes.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Source identifies which backing buffer a Piece reads from.
type Source uint8

const (
	SourceOriginal Source = iota
	SourceAdded
)

func (s Source) String() string {
	switch s {
	case SourceOriginal:
		return "original"
	case SourceAdded:
		return "added"
	default:
		return "unknown"
	}
}

// Piece is a run of Len runes starting at Start in the Source buffer.
type Piece struct {
	Source Source
	Start  int
	Len    int
}

// End returns the exclusive end offset of p in its source buffer.
func (p Piece) End() int { return p.Start + p.Len }

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// - rowCount is the number of logical lines (rows).
// - lineLen(row) returns the rune length of the given row.
//
// The returned Pos always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= Col <= lineLen(Row)
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Pos{Row: row, Col: col}
}
