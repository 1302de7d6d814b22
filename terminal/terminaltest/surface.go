// Package terminaltest provides an in-memory terminal.Surface that emulates
// a single line of cells.
package terminaltest

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/promptline/internal/grapheme"
	"github.com/iw2rmb/promptline/terminal"
)

// Surface records what a real terminal would show on its current line.
//
// A wide glyph occupies its cell plus continuation cells. "\n" moves the
// current line into Lines and leaves the cursor column where it was, the way
// a terminal in raw mode does.
type Surface struct {
	cells []string
	col   int

	// Lines holds every line scrolled off by "\n", oldest first.
	Lines []string

	Foreground string
	Raw        bool
	Flushes    int

	// Calls logs every Surface method invoked, e.g. "move-to-column 2".
	Calls []string

	events []tea.Msg
	fail   map[string]error
}

var _ terminal.Surface = (*Surface)(nil)

func New() *Surface {
	return &Surface{}
}

// Feed queues events for ReadEvent.
func (s *Surface) Feed(msgs ...tea.Msg) {
	s.events = append(s.events, msgs...)
}

// Type queues one KeyRunes event per grapheme cluster of text.
func (s *Surface) Type(text string) {
	for _, g := range grapheme.Split(text) {
		s.Feed(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(g)})
	}
}

// Key queues a key event of the given type.
func (s *Surface) Key(kt tea.KeyType) {
	s.Feed(tea.KeyMsg{Type: kt})
}

// Fail makes the named method ("write", "flush", "read-event", ...) return
// err from now on. A nil err clears it.
func (s *Surface) Fail(method string, err error) {
	if s.fail == nil {
		s.fail = make(map[string]error)
	}
	if err == nil {
		delete(s.fail, method)
		return
	}
	s.fail[method] = err
}

// Line returns the visible current line with trailing blanks trimmed.
func (s *Surface) Line() string {
	var b strings.Builder
	for _, c := range s.cells {
		switch c {
		case "":
			b.WriteByte(' ')
		case continuation:
			// Covered by the wide glyph to its left.
		default:
			b.WriteString(c)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Col returns the cursor column.
func (s *Surface) Col() int { return s.col }

// Pending reports how many queued events have not been read.
func (s *Surface) Pending() int { return len(s.events) }

func (s *Surface) ResetCalls() { s.Calls = nil }

const continuation = "\x00"

func (s *Surface) call(method string, args ...any) error {
	entry := method
	if len(args) > 0 {
		entry += " " + strings.TrimSuffix(fmt.Sprintln(args...), "\n")
	}
	s.Calls = append(s.Calls, entry)
	return s.fail[method]
}

func (s *Surface) ReadEvent() (tea.Msg, error) {
	if err := s.call("read-event"); err != nil {
		return nil, err
	}
	if len(s.events) == 0 {
		return nil, io.EOF
	}
	msg := s.events[0]
	s.events = s.events[1:]
	return msg, nil
}

func (s *Surface) MoveToColumn(col int) error {
	if err := s.call("move-to-column", col); err != nil {
		return err
	}
	s.col = max(0, col)
	return nil
}

func (s *Surface) MoveLeft(n int) error {
	if err := s.call("move-left", n); err != nil {
		return err
	}
	s.col = max(0, s.col-max(0, n))
	return nil
}

func (s *Surface) MoveRight(n int) error {
	if err := s.call("move-right", n); err != nil {
		return err
	}
	s.col += max(0, n)
	return nil
}

func (s *Surface) ClearToEOL() error {
	if err := s.call("clear-to-eol"); err != nil {
		return err
	}
	if s.col < len(s.cells) {
		s.cells = s.cells[:s.col]
	}
	return nil
}

func (s *Surface) Write(text string) error {
	if err := s.call("write", text); err != nil {
		return err
	}
	for _, g := range grapheme.Split(text) {
		switch g {
		case "\n", "\r\n":
			s.Lines = append(s.Lines, s.Line())
			s.cells = nil
			if g == "\r\n" {
				s.col = 0
			}
			continue
		case "\r":
			s.col = 0
			continue
		}
		w := max(1, grapheme.Width(g))
		s.put(g)
		for i := 1; i < w; i++ {
			s.put(continuation)
		}
	}
	return nil
}

func (s *Surface) put(cell string) {
	for len(s.cells) <= s.col {
		s.cells = append(s.cells, "")
	}
	// Overwriting part of a wide glyph blanks the rest of it.
	if s.cells[s.col] == continuation {
		for i := s.col - 1; i >= 0; i-- {
			done := s.cells[i] != continuation
			s.cells[i] = ""
			if done {
				break
			}
		}
	}
	for i := s.col + 1; i < len(s.cells) && s.cells[i] == continuation; i++ {
		s.cells[i] = ""
	}
	s.cells[s.col] = cell
	s.col++
}

func (s *Surface) SetForeground(color string) error {
	if err := s.call("set-foreground", color); err != nil {
		return err
	}
	s.Foreground = color
	return nil
}

func (s *Surface) ResetColor() error {
	if err := s.call("reset-color"); err != nil {
		return err
	}
	s.Foreground = ""
	return nil
}

func (s *Surface) EnterRaw() error {
	if err := s.call("enter-raw"); err != nil {
		return err
	}
	s.Raw = true
	return nil
}

func (s *Surface) LeaveRaw() error {
	if err := s.call("leave-raw"); err != nil {
		return err
	}
	s.Raw = false
	return nil
}

func (s *Surface) CursorColumn() (int, error) {
	if err := s.call("cursor-column"); err != nil {
		return 0, err
	}
	return s.col, nil
}

func (s *Surface) Flush() error {
	if err := s.call("flush"); err != nil {
		return err
	}
	s.Flushes++
	return nil
}
