package buffer

import (
	"unicode/utf8"

	"github.com/iw2rmb/promptline/internal/grapheme"
)

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// GraphemeIndex returns the insertion point as an index into the sequence of
// grapheme clusters.
func (b *Buffer) GraphemeIndex() int {
	return grapheme.Index(b.text, b.point)
}

// ByteOffsetFromGrapheme converts a cluster index into a byte offset.
func (b *Buffer) ByteOffsetFromGrapheme(n int, mode OffsetClampMode) (int, bool) {
	n, ok := clampOffset(n, grapheme.Count(b.text), mode)
	if !ok {
		return 0, false
	}
	return grapheme.Offset(b.text, n), true
}

// GraphemeFromByteOffset converts a byte offset into a cluster index.
// Offsets inside a cluster fail in OffsetError mode and round down in
// OffsetClamp mode.
func (b *Buffer) GraphemeFromByteOffset(off int, mode OffsetClampMode) (int, bool) {
	off, ok := clampOffset(off, len(b.text), mode)
	if !ok {
		return 0, false
	}
	if !grapheme.IsBoundary(b.text, off) {
		if mode == OffsetError {
			return 0, false
		}
		off = grapheme.Floor(b.text, off)
	}
	return grapheme.Index(b.text, off), true
}

// RuneOffset returns the insertion point counted in runes.
func (b *Buffer) RuneOffset() int {
	return utf8.RuneCountInString(b.text[:b.point])
}

// CellColumn returns the terminal cell width of the text before the
// insertion point.
func (b *Buffer) CellColumn() int {
	return grapheme.StringWidth(b.text[:b.point])
}

// CellWidth returns the terminal cell width of the whole line.
func (b *Buffer) CellWidth() int {
	return grapheme.StringWidth(b.text)
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
