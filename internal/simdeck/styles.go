package simdeck

import "github.com/charmbracelet/lipgloss"

// Color palette for the simulator UI
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	PressedColor = lipgloss.Color("#43BF6D") // Green - pressed key border
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
	BlankColor   = lipgloss.Color("#1A1A1A") // Near-black - keys without images
)

// Cell dimensions of one simulated key in terminal characters
const (
	cellWidth  = 9
	cellHeight = 3
)

var (
	// HeaderStyle renders the simulator title bar
	HeaderStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			PaddingLeft(1)

	// StatusStyle renders brightness and last-event info under the title
	StatusStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(1)

	// KeyStyle is the base style of one key cell
	KeyStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(cellHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor).
			Foreground(TextColor)

	// PressedKeyStyle highlights a key while it is held down
	PressedKeyStyle = KeyStyle.
			BorderForeground(PressedColor).
			Bold(true)

	// HelpStyle renders the key-binding help line
	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(1).
			PaddingTop(1)
)
