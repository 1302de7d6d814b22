package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/promptline/terminal"
)

func TestRepaintOps_Projection(t *testing.T) {
	got := repaintOps("テst", 3, 1)
	want := []terminal.Op{
		terminal.MoveToColumn(1),
		terminal.Write("テst"),
		terminal.ClearToEOL(),
		terminal.MoveToColumn(3),
		terminal.Flush(),
	}
	assert.Equal(t, want, got)
}

func TestRepaintOps_EmptyLineStillClears(t *testing.T) {
	got := repaintOps("", 0, 2)
	want := []terminal.Op{
		terminal.MoveToColumn(2),
		terminal.ClearToEOL(),
		terminal.MoveToColumn(2),
		terminal.Flush(),
	}
	assert.Equal(t, want, got)
}

func TestRepaintOps_CursorUsesCellWidth(t *testing.T) {
	cases := []struct {
		text  string
		point int
		col   int
	}{
		{"abc", 2, 12},
		{"\u00e9x", 2, 11},
		{"\U0001F642\U0001F642", 4, 12},
		{"テテx", 6, 14},
	}
	for _, tc := range cases {
		ops := repaintOps(tc.text, tc.point, 10)
		require.GreaterOrEqual(t, len(ops), 2)
		assert.Equal(t, terminal.MoveToColumn(tc.col), ops[len(ops)-2], "text %q point %d", tc.text, tc.point)
	}
}

func TestReadLine_RepaintClearsStaleGlyphs(t *testing.T) {
	s, surface := newTestSession(t)
	surface.Type("hello")
	for i, n := 0, 3; i < n; i++ {
		surface.Key(tea.KeyBackspace)
	}
	surface.Key(tea.KeyEnter)

	line, err := s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "he", line)
	assert.Equal(t, ">he", surface.Line())
}

func TestReadLine_MidLineEditsKeepScreenInSync(t *testing.T) {
	s, surface := newTestSession(t)
	surface.Type("abc")
	surface.Key(tea.KeyLeft)
	surface.Key(tea.KeyLeft)
	surface.Key(tea.KeyBackspace)
	surface.Key(tea.KeyDelete)
	surface.Type("XY")
	surface.Key(tea.KeyEnter)

	line, err := s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "XYc", line)
	assert.Equal(t, ">XYc", surface.Line())
	assert.Equal(t, 3, surface.Col())
}

func TestReadLine_WideGlyphCursorColumn(t *testing.T) {
	s, surface := newTestSession(t)
	require.NoError(t, s.drawPrompt())

	typeText(s, "テテ")
	require.NoError(t, s.repaint())
	assert.Equal(t, 5, surface.Col())

	s.Update(keyMsg(tea.KeyLeft))
	require.NoError(t, s.repaint())
	assert.Equal(t, 3, surface.Col())
	assert.Equal(t, ">テテ", surface.Line())
}

func TestReadLine_EndOfInputScrollsLine(t *testing.T) {
	s, surface := newTestSession(t)
	surface.Type("テテ")

	_, err := s.ReadLine()
	require.ErrorIs(t, err, ErrExit)
	assert.Equal(t, []string{">テテ", "exit"}, surface.Lines)
}

func TestReadLine_CursorTracksBufferAfterEveryEvent(t *testing.T) {
	s, surface := newTestSession(t)
	require.NoError(t, s.drawPrompt())

	events := []tea.KeyMsg{
		runes("f"), runes("o"), runes("o"), runes(" "), runes("テ"), runes("x"),
		keyMsg(tea.KeyLeft), {Type: tea.KeyLeft, Alt: true}, keyMsg(tea.KeyHome),
		keyMsg(tea.KeyEnd), keyMsg(tea.KeyBackspace), {Type: tea.KeyLeft, Alt: true},
		keyMsg(tea.KeyCtrlK),
	}
	for _, ev := range events {
		if out := s.Update(ev); out.Repaint {
			require.NoError(t, s.repaint())
		}
		want := s.PromptOffset() + s.Buffer().CellColumn()
		assert.Equal(t, want, surface.Col(), "after %s", ev)
		assert.Equal(t, strings.TrimRight(">"+s.Buffer().Text(), " "), surface.Line(), "after %s", ev)
	}
}
