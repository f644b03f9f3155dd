package render

import "github.com/charmbracelet/lipgloss"

var (
	ColorPurple = lipgloss.Color("#7D56F4")
	ColorGreen  = lipgloss.Color("#25A065")
	ColorGray   = lipgloss.Color("#626262")
	ColorWhite  = lipgloss.Color("#FFFFFF")
)

var (
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	BodyStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)
)
