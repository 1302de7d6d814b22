package buffer

import "github.com/iw2rmb/promptline/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // line start
	DirEnd  // line end
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// Move relocates the insertion point. It reports whether the point moved.
func (b *Buffer) Move(m Move) bool {
	cb := b.beginChange(ChangeMove)
	b.point = grapheme.Floor(b.text, b.moveCursor(b.point, m))
	return b.commitChange(cb, b.point, "", "")
}

// MoveForward advances the insertion point by one grapheme cluster.
func (b *Buffer) MoveForward() bool {
	return b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
}

// MoveBack retreats the insertion point by one grapheme cluster.
func (b *Buffer) MoveBack() bool {
	return b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
}

// MoveWordLeft moves to the start of the word at or before the point.
func (b *Buffer) MoveWordLeft() bool {
	return b.Move(Move{Unit: MoveWord, Dir: DirLeft})
}

// MoveWordRight moves to the start of the next word, or the line end.
func (b *Buffer) MoveWordRight() bool {
	return b.Move(Move{Unit: MoveWord, Dir: DirRight})
}

func (b *Buffer) MoveToStart() bool {
	return b.Move(Move{Unit: MoveLine, Dir: DirHome})
}

func (b *Buffer) MoveToEnd() bool {
	return b.Move(Move{Unit: MoveLine, Dir: DirEnd})
}

func (b *Buffer) moveCursor(p int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveGrapheme(p int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		if p == 0 {
			return p
		}
		return grapheme.Prev(b.text, p)
	case DirRight:
		if p >= len(b.text) {
			return p
		}
		return grapheme.Next(b.text, p)
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveWord(p int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return prevWordStart(b.text, p)
	case DirRight:
		return nextWordStart(b.text, p)
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p int, dir MoveDir) int {
	switch dir {
	case DirHome:
		return 0
	case DirEnd:
		return len(b.text)
	default:
		return p
	}
}

// Word boundary rules:
// - words are UAX #29 word segments holding a letter or digit
// - separators (space, punctuation, symbols, emoji) are skipped, never landed on
func prevWordStart(text string, p int) int {
	p = clampInt(p, 0, len(text))
	words := grapheme.Words(text)
	for i := len(words) - 1; i >= 0; i-- {
		if words[i].Start < p {
			return words[i].Start
		}
	}
	return 0
}

func nextWordStart(text string, p int) int {
	p = clampInt(p, 0, len(text))
	for _, w := range grapheme.Words(text) {
		if w.Start > p {
			return w.Start
		}
	}
	return len(text)
}
