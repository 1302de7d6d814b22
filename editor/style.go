package editor

import "github.com/charmbracelet/lipgloss"

// Style controls how submitted lines are echoed.
type Style struct {
	Label lipgloss.Style
	Line  lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Label: lipgloss.NewStyle(),
		Line:  lipgloss.NewStyle(),
	}
}
