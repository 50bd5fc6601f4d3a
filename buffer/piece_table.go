package buffer

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrOutOfRange reports a flat offset outside the current document.
var ErrOutOfRange = errors.New("buffer: offset out of range")

// Table is a piece table: the document is the in-order concatenation of
// pieces, each referencing a run of the original or the added buffer.
//
// original is never written after New. added only grows; deleting text
// shrinks or splits pieces and leaves the added runes in place.
type Table struct {
	original []rune
	added    []rune
	pieces   []Piece

	version uint64
}

// New returns a table whose document is text.
func New(text string) *Table {
	t := &Table{original: []rune(text)}
	if len(t.original) > 0 {
		t.pieces = []Piece{{Source: SourceOriginal, Start: 0, Len: len(t.original)}}
	}
	return t
}

// Len returns the document length in runes.
func (t *Table) Len() int {
	n := 0
	for _, p := range t.pieces {
		n += p.Len
	}
	return n
}

// Version increases on every mutation that changes the document.
func (t *Table) Version() uint64 { return t.version }

// Pieces returns a copy of the piece sequence.
func (t *Table) Pieces() []Piece { return slices.Clone(t.pieces) }

// Insert inserts text so that its first rune lands at flat offset off.
// Inserting at Len() appends. An empty text is a no-op.
func (t *Table) Insert(off int, text string) error {
	if text == "" {
		return nil
	}
	n := t.Len()
	if off < 0 || off > n {
		return fmt.Errorf("%w: insert at %d (len %d)", ErrOutOfRange, off, n)
	}

	runes := []rune(text)
	piece := Piece{Source: SourceAdded, Start: len(t.added), Len: len(runes)}
	t.added = append(t.added, runes...)

	idx, inner, ok := t.locate(off)
	switch {
	case !ok:
		t.pieces = append(t.pieces, piece)
	case inner == 0:
		t.pieces = slices.Insert(t.pieces, idx, piece)
	default:
		old := t.pieces[idx]
		before := Piece{Source: old.Source, Start: old.Start, Len: inner}
		after := Piece{Source: old.Source, Start: old.Start + inner, Len: old.Len - inner}
		t.pieces = slices.Replace(t.pieces, idx, idx+1, before, piece, after)
	}

	t.version++
	return nil
}

// Append inserts text at the end of the document.
func (t *Table) Append(text string) error {
	return t.Insert(t.Len(), text)
}

// Delete removes the single rune at flat offset off.
func (t *Table) Delete(off int) error {
	idx, inner, ok := t.locate(off)
	if off < 0 || !ok {
		return fmt.Errorf("%w: delete at %d (len %d)", ErrOutOfRange, off, t.Len())
	}

	p := t.pieces[idx]
	switch {
	case p.Len == 1:
		t.pieces = slices.Delete(t.pieces, idx, idx+1)
	case inner == 0:
		t.pieces[idx].Start++
		t.pieces[idx].Len--
	case inner == p.Len-1:
		t.pieces[idx].Len--
	default:
		before := Piece{Source: p.Source, Start: p.Start, Len: inner}
		after := Piece{Source: p.Source, Start: p.Start + inner + 1, Len: p.Len - inner - 1}
		t.pieces = slices.Replace(t.pieces, idx, idx+1, before, after)
	}

	t.version++
	return nil
}

// Merge coalesces adjacent pieces that read contiguous runs of the same
// source. It never changes the document text.
func (t *Table) Merge() {
	if len(t.pieces) < 2 {
		return
	}
	out := t.pieces[:1]
	for _, p := range t.pieces[1:] {
		last := &out[len(out)-1]
		if last.Source == p.Source && last.End() == p.Start {
			last.Len += p.Len
			continue
		}
		out = append(out, p)
	}
	t.pieces = out
}

// Index returns the rune at flat offset i.
func (t *Table) Index(i int) (rune, bool) {
	if i < 0 {
		return 0, false
	}
	idx, inner, ok := t.locate(i)
	if !ok {
		return 0, false
	}
	p := t.pieces[idx]
	return t.runes(p.Source)[p.Start+inner], true
}

// String reconstructs the whole document.
func (t *Table) String() string {
	var sb strings.Builder
	sb.Grow(t.Len())
	for _, p := range t.pieces {
		if p.Len == 0 {
			continue
		}
		for _, r := range t.runes(p.Source)[p.Start:p.End()] {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Lines splits the document on '\n'. A trailing newline does not produce a
// trailing empty line, and an empty document has no lines.
func (t *Table) Lines() []string {
	text := t.String()
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Rows splits the document on '\n' keeping a trailing empty row, so every
// flat offset in [0, Len()] has a (row, col) and the empty document is one
// empty row.
func (t *Table) Rows() []string {
	return strings.Split(t.String(), "\n")
}

// OffsetFromPos maps p over Rows.
func (t *Table) OffsetFromPos(p Pos, mode OffsetClampMode) (int, bool) {
	return OffsetFromPos(t.Rows(), p, mode)
}

// PosFromOffset maps off over Rows.
func (t *Table) PosFromOffset(off int, mode OffsetClampMode) (Pos, bool) {
	return PosFromOffset(t.Rows(), off, mode)
}

// locate finds the piece holding flat offset off and the offset inside it.
// ok is false when off is at or past the end of the document.
func (t *Table) locate(off int) (idx, inner int, ok bool) {
	cur := 0
	for i, p := range t.pieces {
		if off < cur+p.Len {
			return i, off - cur, true
		}
		cur += p.Len
	}
	return len(t.pieces), 0, false
}

func (t *Table) runes(s Source) []rune {
	if s == SourceAdded {
		return t.added
	}
	return t.original
}
