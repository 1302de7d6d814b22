package editor

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EchoesUntilExitKeyword(t *testing.T) {
	s, surface := newTestSession(t)
	surface.Type("hello")
	surface.Key(tea.KeyEnter)
	surface.Type("world")
	surface.Key(tea.KeyEnter)
	surface.Type("exit")
	surface.Key(tea.KeyEnter)
	surface.Type("never read")

	require.NoError(t, s.Run())

	assert.Equal(t, []string{
		">hello",
		"Our buffer: hello",
		">world",
		"Our buffer: world",
		">exit",
	}, surface.Lines)
	assert.False(t, surface.Raw, "raw mode restored")
	assert.Equal(t, []string{"world", "hello"}, s.History().Entries())
	assert.Positive(t, surface.Pending(), "events after exit stay unread")
}

func TestRun_ExitKeyPrintsKeyword(t *testing.T) {
	s, surface := newTestSession(t)
	surface.Type("draft")
	surface.Key(tea.KeyCtrlD)

	require.NoError(t, s.Run())
	assert.Equal(t, []string{">draft", "exit"}, surface.Lines)
	assert.Equal(t, 0, s.History().Len())
}

func TestRun_EndOfInputExits(t *testing.T) {
	s, surface := newTestSession(t)
	surface.Type("a")
	surface.Key(tea.KeyEnter)

	require.NoError(t, s.Run())
	assert.Equal(t, []string{">a", "Our buffer: a", ">", "exit"}, surface.Lines)
}

func TestRun_EmptySubmitIsNotEchoed(t *testing.T) {
	s, surface := newTestSession(t)
	surface.Key(tea.KeyEnter)
	surface.Key(tea.KeyEnter)
	surface.Type("x")
	surface.Key(tea.KeyEnter)
	surface.Key(tea.KeyCtrlD)

	require.NoError(t, s.Run())
	assert.Equal(t, []string{">x", "Our buffer: x", ">", "exit"}, surface.Lines)
}

func TestRun_PromptDrawnInColor(t *testing.T) {
	s, surface := newTestSession(t, func(cfg *Config) {
		cfg.Prompt = "$ "
		cfg.PromptColor = "#5f87ff"
	})
	surface.Key(tea.KeyCtrlD)

	require.NoError(t, s.Run())
	require.GreaterOrEqual(t, len(surface.Calls), 6)
	assert.Equal(t, []string{
		"enter-raw",
		"set-foreground #5f87ff",
		"write $ ",
		"reset-color",
		"flush",
		"cursor-column",
	}, surface.Calls[:6])
	assert.Equal(t, 2, s.PromptOffset())
	assert.Equal(t, "", surface.Foreground)
}

func TestRun_CustomLabelAndKeyword(t *testing.T) {
	s, surface := newTestSession(t, func(cfg *Config) {
		cfg.EchoLabel = "got: "
		cfg.ExitKeyword = "quit"
	})
	surface.Type("exit")
	surface.Key(tea.KeyEnter)
	surface.Type("quit")
	surface.Key(tea.KeyEnter)

	require.NoError(t, s.Run())
	assert.Equal(t, []string{">exit", "got: exit", ">quit"}, surface.Lines)
}

func TestRun_TerminalErrorsAreFatal(t *testing.T) {
	boom := errors.New("boom")

	for _, method := range []string{"flush", "cursor-column", "read-event", "write"} {
		t.Run(method, func(t *testing.T) {
			s, surface := newTestSession(t)
			surface.Type("abc")
			surface.Fail(method, boom)

			err := s.Run()
			require.Error(t, err)
			assert.ErrorIs(t, err, boom)
			assert.False(t, errors.Is(err, ErrExit))
			assert.False(t, surface.Raw, "raw mode restored after failure")
		})
	}
}

func TestRun_EnterRawFailure(t *testing.T) {
	boom := errors.New("no tty")
	s, surface := newTestSession(t)
	surface.Fail("enter-raw", boom)

	err := s.Run()
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, surface.Lines)
}

func TestSession_DebugLogging(t *testing.T) {
	var logs bytes.Buffer
	s, surface := newTestSession(t, func(cfg *Config) {
		cfg.Logger = log.New(&logs, "", 0)
		cfg.Debug = true
	})
	surface.Type("hi")
	surface.Key(tea.KeyEnter)
	surface.Key(tea.KeyUp)
	surface.Key(tea.KeyCtrlD)

	require.NoError(t, s.Run())
	out := logs.String()
	assert.Contains(t, out, "prompt offset=1")
	assert.Contains(t, out, `change: insert`)
	assert.Contains(t, out, `submit: "hi"`)
	assert.Contains(t, out, `history: cursor=0 line="hi"`)
}

func TestSession_NoLoggingWithoutDebug(t *testing.T) {
	var logs bytes.Buffer
	s, surface := newTestSession(t, func(cfg *Config) {
		cfg.Logger = log.New(&logs, "", 0)
	})
	surface.Type("hi")
	surface.Key(tea.KeyEnter)

	require.NoError(t, s.Run())
	assert.Empty(t, strings.TrimSpace(logs.String()))
}
