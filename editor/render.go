package editor

import (
	"github.com/iw2rmb/promptline/internal/grapheme"
	"github.com/iw2rmb/promptline/terminal"
)

// repaintOps projects the buffer onto the prompt line: draw the whole text
// at the prompt, clear whatever a longer previous line left behind, then put
// the cursor on the insertion point.
func repaintOps(text string, point, promptOffset int) []terminal.Op {
	ops := make([]terminal.Op, 0, 5)
	ops = append(ops, terminal.MoveToColumn(promptOffset))
	if text != "" {
		ops = append(ops, terminal.Write(text))
	}
	return append(ops,
		terminal.ClearToEOL(),
		terminal.MoveToColumn(promptOffset+grapheme.StringWidth(text[:point])),
		terminal.Flush(),
	)
}

// messageOps prints text on a line of its own below the prompt line.
func messageOps(text string) []terminal.Op {
	return []terminal.Op{
		terminal.Write("\n"),
		terminal.MoveToColumn(0),
		terminal.Write(text),
		terminal.Write("\n"),
		terminal.MoveToColumn(0),
		terminal.Flush(),
	}
}

// newlineOps leaves the prompt line without printing anything.
func newlineOps() []terminal.Op {
	return []terminal.Op{
		terminal.Write("\n"),
		terminal.MoveToColumn(0),
		terminal.Flush(),
	}
}

func (s *Session) echoLine(line string) string {
	return s.cfg.Style.Label.Render(s.cfg.EchoLabel) + s.cfg.Style.Line.Render(line)
}
