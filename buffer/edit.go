package buffer

import "github.com/iw2rmb/promptline/internal/grapheme"

// Insert inserts g at point without moving the insertion point past it.
// point must be a cluster boundary. Content after the insertion point that
// shifts right keeps its cursor.
func (b *Buffer) Insert(point int, g string) error {
	if err := b.checkBoundary(point); err != nil {
		return err
	}
	g = sanitizeLine(g)
	if g == "" {
		return nil
	}

	cb := b.beginChange(ChangeInsert)
	next := b.point
	if point < b.point {
		next += len(g)
	}
	b.replaceRange(point, point, g)
	b.point = grapheme.Floor(b.text, next)
	b.commitChange(cb, point, g, "")
	return nil
}

// InsertAtCursor inserts g at the insertion point and advances past it.
//
// When g merges with a neighbouring cluster (a combining mark, a regional
// indicator pair) the point snaps forward to the end of the merged cluster.
func (b *Buffer) InsertAtCursor(g string) {
	g = sanitizeLine(g)
	if g == "" {
		return
	}
	cb := b.beginChange(ChangeInsert)
	at := b.point
	b.replaceRange(at, at, g)
	b.point = grapheme.Ceil(b.text, at+len(g))
	b.commitChange(cb, at, g, "")
}

// RemoveBefore removes the cluster that ends at point and returns it.
func (b *Buffer) RemoveBefore(point int) (string, error) {
	if err := b.checkBoundary(point); err != nil {
		return "", err
	}
	if point == 0 {
		return "", ErrOutOfRange
	}
	start := grapheme.Prev(b.text, point)
	return b.remove(start, point), nil
}

// RemoveAt removes the cluster that starts at point and returns it.
func (b *Buffer) RemoveAt(point int) (string, error) {
	if err := b.checkBoundary(point); err != nil {
		return "", err
	}
	if point == len(b.text) {
		return "", ErrOutOfRange
	}
	end := grapheme.Next(b.text, point)
	return b.remove(point, end), nil
}

// DeleteBackward applies backspace semantics.
// Returns true if a cluster was deleted.
func (b *Buffer) DeleteBackward() bool {
	if b.point == 0 {
		return false
	}
	_, err := b.RemoveBefore(b.point)
	return err == nil
}

// DeleteForward applies delete-key semantics.
// Returns true if a cluster was deleted.
func (b *Buffer) DeleteForward() bool {
	if b.point >= len(b.text) {
		return false
	}
	_, err := b.RemoveAt(b.point)
	return err == nil
}

// TruncateToCursor deletes everything from the insertion point to the end.
func (b *Buffer) TruncateToCursor() {
	if b.point >= len(b.text) {
		return
	}
	cb := b.beginChange(ChangeTruncate)
	at := b.point
	deleted := b.text[at:]
	b.replaceRange(at, len(b.text), "")
	b.commitChange(cb, at, "", deleted)
}

func (b *Buffer) remove(start, end int) string {
	cb := b.beginChange(ChangeDelete)
	deleted := b.text[start:end]

	next := b.point
	switch {
	case next >= end:
		next -= end - start
	case next > start:
		next = start
	}

	b.replaceRange(start, end, "")
	b.point = grapheme.Floor(b.text, next)
	b.commitChange(cb, start, "", deleted)
	return deleted
}

func (b *Buffer) replaceRange(start, end int, text string) {
	b.text = b.text[:start] + text + b.text[end:]
}

func (b *Buffer) checkBoundary(point int) error {
	if point < 0 || point > len(b.text) {
		return ErrOutOfRange
	}
	if !grapheme.IsBoundary(b.text, point) {
		return ErrNotBoundary
	}
	return nil
}
