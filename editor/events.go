package editor

import "github.com/iw2rmb/promptline/buffer"

// ChangeEvent describes the buffer after an effective change.
type ChangeEvent struct {
	Version uint64
	Point   int
	Text    string

	// Change is the buffer's own record of the last mutation.
	Change buffer.Change
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Point:   b.InsertionPoint(),
		Text:    b.Text(),
	}
	if ch, ok := b.LastChange(); ok {
		ev.Change = ch
	}
	return ev
}
