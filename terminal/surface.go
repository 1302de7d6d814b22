package terminal

import tea "github.com/charmbracelet/bubbletea"

// Surface is a single-line terminal sink plus its input source.
//
// Columns are 0-based. Writes may be buffered until Flush.
type Surface interface {
	// ReadEvent blocks for the next input event. It returns io.EOF when the
	// input is exhausted.
	ReadEvent() (tea.Msg, error)

	MoveToColumn(col int) error
	MoveLeft(n int) error
	MoveRight(n int) error
	ClearToEOL() error
	Write(s string) error

	// SetForeground accepts a termenv color spec: an ANSI index ("4"), an
	// ANSI256 index ("69") or a hex value ("#5f87ff").
	SetForeground(color string) error
	ResetColor() error

	EnterRaw() error
	LeaveRaw() error

	// CursorColumn reports the column the cursor currently sits on.
	CursorColumn() (int, error)

	Flush() error
}

type OpKind uint8

const (
	OpMoveToColumn OpKind = iota
	OpMoveLeft
	OpMoveRight
	OpClearToEOL
	OpWrite
	OpFlush
)

func (k OpKind) String() string {
	switch k {
	case OpMoveToColumn:
		return "move-to-column"
	case OpMoveLeft:
		return "move-left"
	case OpMoveRight:
		return "move-right"
	case OpClearToEOL:
		return "clear-to-eol"
	case OpWrite:
		return "write"
	case OpFlush:
		return "flush"
	default:
		return "unknown"
	}
}

// Op is one surface command. N is the column or distance for movement ops
// and Text is the payload for OpWrite.
type Op struct {
	Kind OpKind
	N    int
	Text string
}

func MoveToColumn(col int) Op { return Op{Kind: OpMoveToColumn, N: col} }
func MoveLeft(n int) Op       { return Op{Kind: OpMoveLeft, N: n} }
func MoveRight(n int) Op      { return Op{Kind: OpMoveRight, N: n} }
func ClearToEOL() Op          { return Op{Kind: OpClearToEOL} }
func Write(s string) Op       { return Op{Kind: OpWrite, Text: s} }
func Flush() Op               { return Op{Kind: OpFlush} }

// Apply runs ops against s in order and stops at the first error.
func Apply(s Surface, ops []Op) error {
	for _, op := range ops {
		var err error
		switch op.Kind {
		case OpMoveToColumn:
			err = s.MoveToColumn(op.N)
		case OpMoveLeft:
			err = s.MoveLeft(op.N)
		case OpMoveRight:
			err = s.MoveRight(op.N)
		case OpClearToEOL:
			err = s.ClearToEOL()
		case OpWrite:
			err = s.Write(op.Text)
		case OpFlush:
			err = s.Flush()
		}
		if err != nil {
			return err
		}
	}
	return nil
}
