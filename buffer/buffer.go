package buffer

import "github.com/iw2rmb/promptline/internal/grapheme"

// Buffer is the pure line state: text and insertion point.
type Buffer struct {
	text    string
	point   int
	version uint64

	lastChange    Change
	hasLastChange bool
}

// New returns a buffer holding text with the insertion point at 0.
// Line breaks in text are replaced by spaces.
func New(text string) *Buffer {
	return &Buffer{text: sanitizeLine(text)}
}

func (b *Buffer) Text() string { return b.text }

// Len returns the length of the text in bytes.
func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) IsEmpty() bool { return b.text == "" }

func (b *Buffer) Version() uint64 { return b.version }

// InsertionPoint returns the cursor as a byte offset into Text.
func (b *Buffer) InsertionPoint() int { return b.point }

// SetInsertionPoint moves the cursor to point, which must be a cluster
// boundary within [0, Len()].
func (b *Buffer) SetInsertionPoint(point int) error {
	if point < 0 || point > len(b.text) {
		return ErrOutOfRange
	}
	if !grapheme.IsBoundary(b.text, point) {
		return ErrNotBoundary
	}
	cb := b.beginChange(ChangeMove)
	b.point = point
	b.commitChange(cb, point, "", "")
	return nil
}

// BeforeCursor returns text before the insertion point.
func (b *Buffer) BeforeCursor() string { return b.text[:b.point] }

// AfterCursor returns text from the insertion point to the end.
func (b *Buffer) AfterCursor() string { return b.text[b.point:] }

// GraphemeCount returns the number of clusters in the line.
func (b *Buffer) GraphemeCount() int { return grapheme.Count(b.text) }

// Clear empties the line and resets the insertion point.
func (b *Buffer) Clear() {
	cb := b.beginChange(ChangeClear)
	deleted := b.text
	b.text = ""
	b.point = 0
	b.commitChange(cb, 0, "", deleted)
}

// ReplaceAll swaps in text wholesale and resets the insertion point to 0.
// Use MoveToEnd afterwards to place the cursor after the new text.
func (b *Buffer) ReplaceAll(text string) {
	cb := b.beginChange(ChangeReplace)
	deleted := b.text
	b.text = sanitizeLine(text)
	b.point = 0
	b.commitChange(cb, 0, b.text, deleted)
}
