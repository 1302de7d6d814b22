package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Outcome reports what Update did with one event.
type Outcome struct {
	Intent Intent

	// Repaint is set when the visible line no longer matches the buffer.
	Repaint bool

	// Submitted is set when a line was accepted; Line holds it.
	Submitted bool
	Line      string

	// Exit is set when the session should end.
	Exit bool
}

// Update dispatches one event to the buffer and history. It performs no
// terminal I/O.
func (s *Session) Update(msg tea.Msg) Outcome {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		s.hist.ResetCursor()
		return Outcome{}
	}

	in := resolveIntent(s.cfg.KeyMap, km, s.buf)
	if in.Kind != IntentHistory {
		s.hist.ResetCursor()
	}
	out := Outcome{Intent: in}

	switch p := in.Payload.(type) {
	case InsertIntentPayload:
		s.buf.InsertAtCursor(p.Text)
	case DeleteIntentPayload:
		if s.buf.IsEmpty() {
			break
		}
		switch p.Direction {
		case DeleteBackward:
			s.buf.DeleteBackward()
		case DeleteForward:
			s.buf.DeleteForward()
		}
	case MoveIntentPayload:
		s.buf.Move(p.Move)
	case HistoryIntentPayload:
		s.recall(p.Direction)
	}

	switch in.Kind {
	case IntentKill:
		s.buf.TruncateToCursor()
	case IntentSubmit:
		return s.submit(out)
	case IntentExit:
		out.Exit = true
		return out
	}

	if s.buf.Version() != in.Before.Version {
		out.Repaint = true
		s.emitChange()
	}
	return out
}

func (s *Session) recall(dir HistoryDirection) {
	var (
		line string
		ok   bool
	)
	switch dir {
	case HistoryOlder:
		line, ok = s.hist.Older()
	case HistoryNewer:
		line, ok = s.hist.Newer()
	}
	if !ok {
		return
	}
	s.debugf("history: cursor=%d line=%q", s.hist.Cursor(), line)
	s.buf.ReplaceAll(line)
	s.buf.MoveToEnd()
}

func (s *Session) submit(out Outcome) Outcome {
	line := s.buf.Text()
	switch {
	case s.cfg.ExitKeyword != "" && line == s.cfg.ExitKeyword:
		out.Exit = true
		return out
	case line == "":
		return out
	}

	if !s.hist.Push(line) {
		s.debugf("history: skipped duplicate %q", line)
	}
	s.buf.Clear()
	s.debugf("submit: %q (history=%d)", line, s.hist.Len())

	out.Submitted = true
	out.Line = line
	return out
}

func (s *Session) emitChange() {
	ev := buildChangeEvent(s.buf)
	s.debugf("change: %s v%d point=%d text=%q", ev.Change.Kind, ev.Version, ev.Point, ev.Text)
	if s.cfg.OnChange != nil {
		s.cfg.OnChange(ev)
	}
}
