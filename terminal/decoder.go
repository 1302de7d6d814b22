package terminal

import (
	"bufio"
	"errors"
	"io"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const esc = 0x1b

// UnknownSequenceMsg carries an escape sequence the decoder has no key for.
type UnknownSequenceMsg string

// ErrNoCursorReport is returned when the input ends before a cursor position
// report arrives.
var ErrNoCursorReport = errors.New("terminal: no cursor position report")

var sequences = map[string]tea.Key{
	"\x1b[A": {Type: tea.KeyUp},
	"\x1b[B": {Type: tea.KeyDown},
	"\x1b[C": {Type: tea.KeyRight},
	"\x1b[D": {Type: tea.KeyLeft},
	"\x1b[H": {Type: tea.KeyHome},
	"\x1b[F": {Type: tea.KeyEnd},
	"\x1bOA": {Type: tea.KeyUp},
	"\x1bOB": {Type: tea.KeyDown},
	"\x1bOC": {Type: tea.KeyRight},
	"\x1bOD": {Type: tea.KeyLeft},
	"\x1bOH": {Type: tea.KeyHome},
	"\x1bOF": {Type: tea.KeyEnd},

	"\x1b[1~": {Type: tea.KeyHome},
	"\x1b[2~": {Type: tea.KeyInsert},
	"\x1b[3~": {Type: tea.KeyDelete},
	"\x1b[4~": {Type: tea.KeyEnd},
	"\x1b[5~": {Type: tea.KeyPgUp},
	"\x1b[6~": {Type: tea.KeyPgDown},
	"\x1b[7~": {Type: tea.KeyHome},
	"\x1b[8~": {Type: tea.KeyEnd},

	// xterm modifier parameters: 2 shift, 3 alt, 5 ctrl.
	"\x1b[1;2A": {Type: tea.KeyShiftUp},
	"\x1b[1;2B": {Type: tea.KeyShiftDown},
	"\x1b[1;2C": {Type: tea.KeyShiftRight},
	"\x1b[1;2D": {Type: tea.KeyShiftLeft},
	"\x1b[1;3A": {Type: tea.KeyUp, Alt: true},
	"\x1b[1;3B": {Type: tea.KeyDown, Alt: true},
	"\x1b[1;3C": {Type: tea.KeyRight, Alt: true},
	"\x1b[1;3D": {Type: tea.KeyLeft, Alt: true},
	"\x1b[1;5A": {Type: tea.KeyCtrlUp},
	"\x1b[1;5B": {Type: tea.KeyCtrlDown},
	"\x1b[1;5C": {Type: tea.KeyCtrlRight},
	"\x1b[1;5D": {Type: tea.KeyCtrlLeft},
	"\x1b[1;5H": {Type: tea.KeyCtrlHome},
	"\x1b[1;5F": {Type: tea.KeyCtrlEnd},
	"\x1b[3;3~": {Type: tea.KeyDelete, Alt: true},

	// rxvt
	"\x1b[a":  {Type: tea.KeyShiftUp},
	"\x1b[b":  {Type: tea.KeyShiftDown},
	"\x1b[c":  {Type: tea.KeyShiftRight},
	"\x1b[d":  {Type: tea.KeyShiftLeft},
	"\x1bOc":  {Type: tea.KeyCtrlRight},
	"\x1bOd":  {Type: tea.KeyCtrlLeft},
	"\x1b[7^": {Type: tea.KeyCtrlHome},
	"\x1b[8^": {Type: tea.KeyCtrlEnd},
}

// Decoder turns raw terminal input into tea.KeyMsg values.
//
// Bytes skipped while waiting for a cursor position report are queued and
// decoded before anything still unread.
type Decoder struct {
	r       *bufio.Reader
	pending []byte
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode blocks for the next key. Printable runes already buffered are
// returned together in one KeyRunes message so that multi-codepoint
// graphemes arrive whole.
func (d *Decoder) Decode() (tea.Msg, error) {
	b, err := d.readByte()
	if err != nil {
		return nil, err
	}

	switch {
	case b == esc:
		return d.decodeEscape()
	case b == 0x7f:
		return tea.KeyMsg{Type: tea.KeyBackspace}, nil
	case b < 0x20:
		return tea.KeyMsg{Type: tea.KeyType(b)}, nil
	}

	r, err := d.finishRune(b)
	if err != nil {
		return nil, err
	}
	runes := []rune{r}
	for {
		next, ok := d.peekByte()
		if !ok || next < 0x20 || next == 0x7f {
			break
		}
		b, _ := d.readByte()
		r, err := d.finishRune(b)
		if err != nil {
			return nil, err
		}
		runes = append(runes, r)
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: runes}, nil
}

func (d *Decoder) decodeEscape() (tea.Msg, error) {
	if _, ok := d.peekByte(); !ok {
		return tea.KeyMsg{Type: tea.KeyEscape}, nil
	}

	b, err := d.readByte()
	if err != nil {
		return nil, err
	}
	switch {
	case b == '[':
		seq := []byte{esc, '['}
		for {
			c, err := d.readByte()
			if err != nil {
				return nil, err
			}
			seq = append(seq, c)
			// Final byte of a CSI sequence.
			if c >= 0x40 && c <= 0x7e {
				break
			}
		}
		return lookupSequence(seq), nil
	case b == 'O':
		c, err := d.readByte()
		if err != nil {
			return nil, err
		}
		return lookupSequence([]byte{esc, 'O', c}), nil
	case b == esc:
		return tea.KeyMsg{Type: tea.KeyEscape, Alt: true}, nil
	case b == 0x7f:
		return tea.KeyMsg{Type: tea.KeyBackspace, Alt: true}, nil
	case b < 0x20:
		return tea.KeyMsg{Type: tea.KeyType(b), Alt: true}, nil
	}

	r, err := d.finishRune(b)
	if err != nil {
		return nil, err
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}, nil
}

func lookupSequence(seq []byte) tea.Msg {
	if k, ok := sequences[string(seq)]; ok {
		return tea.KeyMsg(k)
	}
	return UnknownSequenceMsg(seq)
}

// ReadCursorPosition consumes input up to the next ESC[row;colR report and
// returns its 1-based coordinates. Everything else read on the way is kept
// for Decode.
func (d *Decoder) ReadCursorPosition() (int, int, error) {
	var skipped []byte
	defer func() {
		if len(skipped) > 0 {
			d.pending = append(skipped, d.pending...)
		}
	}()

	for {
		consumed, row, col, ok, err := d.scanReport()
		if err != nil {
			skipped = append(skipped, consumed...)
			if errors.Is(err, io.EOF) {
				err = ErrNoCursorReport
			}
			return 0, 0, err
		}
		if ok {
			return row, col, nil
		}
		skipped = append(skipped, consumed...)
	}
}

// scanReport reads at most one candidate report. When the bytes do not form
// a report they are returned in consumed.
func (d *Decoder) scanReport() (consumed []byte, row, col int, ok bool, err error) {
	b, err := d.readByte()
	if err != nil {
		return nil, 0, 0, false, err
	}
	consumed = append(consumed, b)
	if b != esc {
		return consumed, 0, 0, false, nil
	}

	if b, err = d.readByte(); err != nil {
		return consumed, 0, 0, false, err
	}
	consumed = append(consumed, b)
	if b != '[' {
		return consumed, 0, 0, false, nil
	}

	var nums [2]int
	for i := range nums {
		digits := 0
		for {
			if b, err = d.readByte(); err != nil {
				return consumed, 0, 0, false, err
			}
			consumed = append(consumed, b)
			if b < '0' || b > '9' {
				break
			}
			nums[i] = nums[i]*10 + int(b-'0')
			digits++
		}
		want := byte(';')
		if i == 1 {
			want = 'R'
		}
		if digits == 0 || b != want {
			// Not a report; drain the rest of the CSI sequence so it is
			// decoded as a single key later.
			for b < 0x40 || b > 0x7e {
				if b, err = d.readByte(); err != nil {
					return consumed, 0, 0, false, err
				}
				consumed = append(consumed, b)
			}
			return consumed, 0, 0, false, nil
		}
	}
	return nil, nums[0], nums[1], true, nil
}

func (d *Decoder) readByte() (byte, error) {
	if len(d.pending) > 0 {
		b := d.pending[0]
		d.pending = d.pending[1:]
		return b, nil
	}
	return d.r.ReadByte()
}

// peekByte reports the next byte only if it can be had without blocking.
func (d *Decoder) peekByte() (byte, bool) {
	if len(d.pending) > 0 {
		return d.pending[0], true
	}
	if d.r.Buffered() == 0 {
		return 0, false
	}
	p, err := d.r.Peek(1)
	if err != nil {
		return 0, false
	}
	return p[0], true
}

func (d *Decoder) finishRune(lead byte) (rune, error) {
	if lead < utf8.RuneSelf {
		return rune(lead), nil
	}

	var n int
	switch {
	case lead&0xe0 == 0xc0:
		n = 2
	case lead&0xf0 == 0xe0:
		n = 3
	case lead&0xf8 == 0xf0:
		n = 4
	default:
		return utf8.RuneError, nil
	}

	buf := []byte{lead}
	for len(buf) < n {
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		buf = append(buf, b)
	}
	r, _ := utf8.DecodeRune(buf)
	return r, nil
}
