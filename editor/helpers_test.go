package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/promptline/internal/grapheme"
	"github.com/iw2rmb/promptline/terminal/terminaltest"
)

func newTestSession(t testing.TB, mutate ...func(*Config)) (*Session, *terminaltest.Surface) {
	t.Helper()

	cfg := DefaultConfig()
	for _, fn := range mutate {
		fn(&cfg)
	}
	surface := terminaltest.New()
	return New(surface, cfg), surface
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyMsg(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

// typeText feeds text one grapheme cluster at a time through Update.
func typeText(s *Session, text string) {
	for _, g := range grapheme.Split(text) {
		s.Update(runes(g))
	}
}

func submitLine(s *Session, line string) Outcome {
	typeText(s, line)
	return s.Update(keyMsg(tea.KeyEnter))
}
