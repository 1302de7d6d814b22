package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/promptline/buffer"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	s, _ := newTestSession(t, func(cfg *Config) {
		cfg.OnChange = func(ev ChangeEvent) {
			events = append(events, ev)
		}
	})

	typeText(s, "ab")
	require.Len(t, events, 2)
	assert.Equal(t, "ab", events[1].Text)
	assert.Equal(t, 2, events[1].Point)
	assert.Equal(t, buffer.ChangeInsert, events[1].Change.Kind)

	s.Update(keyMsg(tea.KeyRight)) // no-op at end
	assert.Len(t, events, 2)

	s.Update(keyMsg(tea.KeyLeft))
	require.Len(t, events, 3)
	assert.Equal(t, buffer.ChangeMove, events[2].Change.Kind)
	assert.Equal(t, 1, events[2].Point)
	assert.Greater(t, events[2].Version, events[1].Version)
}
