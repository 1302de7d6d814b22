package buffer

import (
	"errors"
	"strings"
)

var (
	// ErrOutOfRange is returned for offsets outside [0, Len()] or for removals
	// that have no cluster to remove.
	ErrOutOfRange = errors.New("buffer: offset out of range")
	// ErrNotBoundary is returned for offsets that split a grapheme cluster.
	ErrNotBoundary = errors.New("buffer: offset is not a grapheme boundary")
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// sanitizeLine keeps text on a single line.
func sanitizeLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return lineBreaks.Replace(s)
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
