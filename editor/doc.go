// Package editor provides the modal editing core of piecevi and a Bubble Tea
// component that drives it.
//
// A Session owns the piece table, the cursor and the current mode, and
// applies one discrete Action at a time: the cursor is mapped to a flat
// offset, the table is mutated, and the cursor is re-derived from the new
// document shape. Model wraps a Session for use inside a tea.Program and is
// responsible for key translation and rendering only.
package editor
