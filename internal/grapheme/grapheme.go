package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Span is a half-open byte range [Start, End) into a string.
type Span struct {
	Start int
	End   int
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Bounds returns every cluster boundary of text as a byte offset, in
// ascending order. Both 0 and len(text) are always included.
func Bounds(text string) []int {
	out := []int{0}
	if text == "" {
		return out
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		_, end := g.Positions()
		out = append(out, end)
	}
	return out
}

// IsBoundary reports whether off is a cluster boundary of text.
func IsBoundary(text string, off int) bool {
	if off == 0 || off == len(text) {
		return off >= 0 && off <= len(text)
	}
	if off < 0 || off > len(text) {
		return false
	}
	for _, b := range Bounds(text) {
		if b == off {
			return true
		}
		if b > off {
			return false
		}
	}
	return false
}

// Next returns the boundary following off, or len(text) at the end.
func Next(text string, off int) int {
	for _, b := range Bounds(text) {
		if b > off {
			return b
		}
	}
	return len(text)
}

// Prev returns the boundary preceding off, or 0 at the start.
func Prev(text string, off int) int {
	prev := 0
	for _, b := range Bounds(text) {
		if b >= off {
			break
		}
		prev = b
	}
	return prev
}

// Floor returns the greatest boundary <= off.
func Floor(text string, off int) int {
	if off >= len(text) {
		return len(text)
	}
	floor := 0
	for _, b := range Bounds(text) {
		if b > off {
			break
		}
		floor = b
	}
	return floor
}

// Ceil returns the smallest boundary >= off.
func Ceil(text string, off int) int {
	if off <= 0 {
		return 0
	}
	for _, b := range Bounds(text) {
		if b >= off {
			return b
		}
	}
	return len(text)
}

// Index returns the number of clusters that end at or before off.
func Index(text string, off int) int {
	n := 0
	for _, b := range Bounds(text)[1:] {
		if b > off {
			break
		}
		n++
	}
	return n
}

// Offset returns the byte offset of the boundary after the first n clusters,
// clamped to [0, len(text)].
func Offset(text string, n int) int {
	if n <= 0 {
		return 0
	}
	bounds := Bounds(text)
	if n >= len(bounds) {
		return len(text)
	}
	return bounds[n]
}

// Width returns the terminal cell width of a single cluster.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(cluster)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

// StringWidth returns the terminal cell width of text, summed per cluster.
func StringWidth(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += Width(c)
	}
	return w
}

// Words returns the spans of UAX #29 word segments that contain at least one
// letter or digit. Whitespace, punctuation and symbol segments are skipped.
func Words(text string) []Span {
	var out []Span
	off := 0
	rest := text
	state := -1
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if IsWord(word) {
			out = append(out, Span{Start: off, End: off + len(word)})
		}
		off += len(word)
	}
	return out
}

// IsWord reports whether segment contains a letter or digit.
func IsWord(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
