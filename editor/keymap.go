package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the line editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right         key.Binding
	WordLeft, WordRight key.Binding
	Home, End           key.Binding

	Backspace, Delete key.Binding
	KillToEnd         key.Binding

	HistoryOlder, HistoryNewer key.Binding

	Submit key.Binding
	Exit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left", "alt+b"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right", "alt+f"), key.WithHelp("alt/ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		KillToEnd: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "kill to end")),

		HistoryOlder: key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "older entry")),
		HistoryNewer: key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "newer entry")),

		Submit: key.NewBinding(key.WithKeys("enter", "ctrl+j"), key.WithHelp("enter", "submit")),
		Exit:   key.NewBinding(key.WithKeys("ctrl+d", "ctrl+c"), key.WithHelp("ctrl+d", "exit")),
	}
}

// Bindings lists every binding in display order.
func (km KeyMap) Bindings() []key.Binding {
	return []key.Binding{
		km.Left, km.Right, km.WordLeft, km.WordRight, km.Home, km.End,
		km.Backspace, km.Delete, km.KillToEnd,
		km.HistoryOlder, km.HistoryNewer,
		km.Submit, km.Exit,
	}
}

func (km KeyMap) isZero() bool {
	for _, b := range km.Bindings() {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
