package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/promptline/buffer"
)

// IntentKind identifies the semantic action a key resolved to.
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentInsert
	IntentDelete
	IntentMove
	IntentKill
	IntentHistory
	IntentSubmit
	IntentExit
)

func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "none"
	case IntentInsert:
		return "insert"
	case IntentDelete:
		return "delete"
	case IntentMove:
		return "move"
	case IntentKill:
		return "kill"
	case IntentHistory:
		return "history"
	case IntentSubmit:
		return "submit"
	case IntentExit:
		return "exit"
	default:
		return "unknown"
	}
}

// EditorState captures buffer-local state before an intent is executed.
type EditorState struct {
	Version uint64
	Point   int
}

// Intent is a typed semantic action resolved from one input event.
type Intent struct {
	Kind    IntentKind
	Before  EditorState
	Payload any
}

// DeleteDirection identifies requested delete direction semantics.
type DeleteDirection uint8

const (
	DeleteBackward DeleteDirection = iota
	DeleteForward
)

// HistoryDirection is the direction of a history step.
type HistoryDirection uint8

const (
	HistoryOlder HistoryDirection = iota
	HistoryNewer
)

type InsertIntentPayload struct {
	Text string
}

type DeleteIntentPayload struct {
	Direction DeleteDirection
}

type MoveIntentPayload struct {
	Move buffer.Move
}

type HistoryIntentPayload struct {
	Direction HistoryDirection
}

func editorStateFromBuffer(b *buffer.Buffer) EditorState {
	if b == nil {
		return EditorState{}
	}
	return EditorState{
		Version: b.Version(),
		Point:   b.InsertionPoint(),
	}
}

// resolveIntent maps a key to an intent. Keys without a binding that carry
// printable runes resolve to an insert; everything else is IntentNone.
func resolveIntent(km KeyMap, msg tea.KeyMsg, b *buffer.Buffer) Intent {
	in := Intent{Before: editorStateFromBuffer(b)}

	move := func(unit buffer.MoveUnit, dir buffer.MoveDir) Intent {
		in.Kind = IntentMove
		in.Payload = MoveIntentPayload{Move: buffer.Move{Unit: unit, Dir: dir}}
		return in
	}

	// Pasted text is always literal and never triggers shortcuts.
	if msg.Paste && len(msg.Runes) > 0 {
		in.Kind = IntentInsert
		in.Payload = InsertIntentPayload{Text: string(msg.Runes)}
		return in
	}

	switch {
	case key.Matches(msg, km.Exit):
		in.Kind = IntentExit
	case key.Matches(msg, km.Submit):
		in.Kind = IntentSubmit

	case key.Matches(msg, km.WordLeft):
		return move(buffer.MoveWord, buffer.DirLeft)
	case key.Matches(msg, km.WordRight):
		return move(buffer.MoveWord, buffer.DirRight)
	case key.Matches(msg, km.Left):
		return move(buffer.MoveGrapheme, buffer.DirLeft)
	case key.Matches(msg, km.Right):
		return move(buffer.MoveGrapheme, buffer.DirRight)
	case key.Matches(msg, km.Home):
		return move(buffer.MoveLine, buffer.DirHome)
	case key.Matches(msg, km.End):
		return move(buffer.MoveLine, buffer.DirEnd)

	case key.Matches(msg, km.Backspace):
		in.Kind = IntentDelete
		in.Payload = DeleteIntentPayload{Direction: DeleteBackward}
	case key.Matches(msg, km.Delete):
		in.Kind = IntentDelete
		in.Payload = DeleteIntentPayload{Direction: DeleteForward}
	case key.Matches(msg, km.KillToEnd):
		in.Kind = IntentKill

	case key.Matches(msg, km.HistoryOlder):
		in.Kind = IntentHistory
		in.Payload = HistoryIntentPayload{Direction: HistoryOlder}
	case key.Matches(msg, km.HistoryNewer):
		in.Kind = IntentHistory
		in.Payload = HistoryIntentPayload{Direction: HistoryNewer}

	default:
		if text, ok := printableText(msg); ok {
			in.Kind = IntentInsert
			in.Payload = InsertIntentPayload{Text: text}
		}
	}
	return in
}

func printableText(msg tea.KeyMsg) (string, bool) {
	if msg.Alt {
		return "", false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return "", false
		}
		return string(msg.Runes), true
	case tea.KeySpace:
		return " ", true
	}
	return "", false
}
