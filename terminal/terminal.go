package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/iw2rmb/promptline/internal/grapheme"
)

const cursorPositionRequest = termenv.CSI + "6n"

type fdHolder interface {
	Fd() uintptr
}

type Option func(*Terminal)

// WithProfile overrides the color profile detected from the output.
func WithProfile(p termenv.Profile) Option {
	return func(t *Terminal) {
		t.profile = p
		t.profileSet = true
	}
}

// Terminal is a Surface over an input reader and an output writer. When both
// are terminals the cursor column is queried from the terminal; otherwise it
// is tracked from the surface's own output.
type Terminal struct {
	dec *Decoder
	w   *bufio.Writer
	out *termenv.Output

	inFd   int
	inTTY  bool
	outTTY bool
	state  *term.State

	profile    termenv.Profile
	profileSet bool

	col int
}

var _ Surface = (*Terminal)(nil)

func New(in io.Reader, out io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		dec:     NewDecoder(in),
		w:       bufio.NewWriter(out),
		profile: termenv.Ascii,
	}
	if f, ok := in.(fdHolder); ok {
		t.inFd = int(f.Fd())
		t.inTTY = term.IsTerminal(t.inFd)
	}
	if f, ok := out.(fdHolder); ok {
		t.outTTY = term.IsTerminal(int(f.Fd()))
	}
	for _, opt := range opts {
		opt(t)
	}
	if !t.profileSet && t.outTTY {
		t.profile = termenv.NewOutput(out).EnvColorProfile()
	}
	t.out = termenv.NewOutput(t.w, termenv.WithProfile(t.profile))
	return t
}

func (t *Terminal) Profile() termenv.Profile { return t.profile }

func (t *Terminal) IsTerminal() bool { return t.inTTY && t.outTTY }

func (t *Terminal) ReadEvent() (tea.Msg, error) {
	return t.dec.Decode()
}

// MoveToColumn uses cursor horizontal absolute, which termenv does not wrap.
func (t *Terminal) MoveToColumn(col int) error {
	if col < 0 {
		col = 0
	}
	if _, err := fmt.Fprintf(t.w, termenv.CSI+"%dG", col+1); err != nil {
		return err
	}
	t.col = col
	return nil
}

// MoveLeft and MoveRight treat n <= 0 as a no-op; most terminals read a zero
// count as one.
func (t *Terminal) MoveLeft(n int) error {
	if n <= 0 {
		return nil
	}
	t.out.CursorBack(n)
	t.col = max(0, t.col-n)
	return nil
}

func (t *Terminal) MoveRight(n int) error {
	if n <= 0 {
		return nil
	}
	t.out.CursorForward(n)
	t.col += n
	return nil
}

func (t *Terminal) ClearToEOL() error {
	t.out.ClearLineRight()
	return nil
}

func (t *Terminal) Write(s string) error {
	if _, err := t.w.WriteString(s); err != nil {
		return err
	}
	if i := strings.LastIndexByte(s, '\r'); i >= 0 {
		t.col = 0
		s = s[i+1:]
	}
	t.col += grapheme.StringWidth(strings.ReplaceAll(s, "\n", ""))
	return nil
}

func (t *Terminal) SetForeground(color string) error {
	c := t.out.Color(color)
	if c == nil {
		return nil
	}
	seq := c.Sequence(false)
	if seq == "" {
		return nil
	}
	_, err := t.w.WriteString(termenv.CSI + seq + "m")
	return err
}

func (t *Terminal) ResetColor() error {
	if t.profile == termenv.Ascii {
		return nil
	}
	_, err := t.w.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	return err
}

// EnterRaw is a no-op when the input is not a terminal.
func (t *Terminal) EnterRaw() error {
	if !t.inTTY || t.state != nil {
		return nil
	}
	st, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("terminal: enter raw mode: %w", err)
	}
	t.state = st
	return nil
}

func (t *Terminal) LeaveRaw() error {
	if t.state == nil {
		return nil
	}
	st := t.state
	t.state = nil
	if err := term.Restore(t.inFd, st); err != nil {
		return fmt.Errorf("terminal: leave raw mode: %w", err)
	}
	return nil
}

func (t *Terminal) CursorColumn() (int, error) {
	if !t.IsTerminal() {
		return t.col, nil
	}
	if _, err := t.w.WriteString(cursorPositionRequest); err != nil {
		return 0, err
	}
	if err := t.w.Flush(); err != nil {
		return 0, err
	}
	_, col, err := t.dec.ReadCursorPosition()
	if err != nil {
		return 0, fmt.Errorf("terminal: read cursor position: %w", err)
	}
	t.col = max(0, col-1)
	return t.col, nil
}

// Flush reports any write error held by the buffered writer; termenv's
// cursor helpers discard theirs.
func (t *Terminal) Flush() error {
	return t.w.Flush()
}
