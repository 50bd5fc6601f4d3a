// Package buffer implements the piece-table document model for piecevi.
//
// The document is never stored as one string. Text loaded from disk lives in
// an immutable original buffer, every inserted rune is appended to an
// append-only added buffer, and an ordered list of pieces references runs of
// either buffer. Concatenating the pieces in order yields the document.
//
// Offsets and coordinates are 0-based and counted in runes. Row views split
// the document on '\n'.
package buffer
