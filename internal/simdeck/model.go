package simdeck

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// keyRunes maps terminal characters to slot indices, row-major from the
// top-left key. Layouts larger than 36 keys leave the rest unreachable
// from the keyboard.
const keyRunes = "1234567890abcdefghijklmnopqrstuvwxyz"

// pressDuration is how long a simulated press is held before the
// matching release fires.
const pressDuration = 150 * time.Millisecond

// releaseMsg schedules the release half of a simulated key press.
type releaseMsg struct {
	index int
}

// simKeyMap defines key bindings for the simulator screen
type simKeyMap struct {
	Press key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k simKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k simKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Press, k.Help, k.Quit},
	}
}

func newSimKeyMap() simKeyMap {
	return simKeyMap{
		Press: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-9/a-z", "press key"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Model is the Bubble Tea model driving the simulated deck: a grid of
// colored cells, one per physical key, pressed from the keyboard.
type Model struct {
	deck *Deck
	keys simKeyMap
	help help.Model

	width     int
	lastEvent string
}

// NewModel creates the simulator UI for a deck.
func NewModel(d *Deck) Model {
	return Model{
		deck: d,
		keys: newSimKeyMap(),
		help: help.New(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case releaseMsg:
		m.deck.Release(msg.index)
		m.lastEvent = fmt.Sprintf("key %d released", msg.index)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if index, ok := slotForKey(msg.String(), m.deck); ok {
			// The press runs the whole event pipeline synchronously;
			// the release follows after a short hold.
			m.deck.Press(index)
			m.lastEvent = fmt.Sprintf("key %d pressed", index)
			return m, tea.Tick(pressDuration, func(time.Time) tea.Msg {
				return releaseMsg{index: index}
			})
		}
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	rows, cols := m.deck.KeyLayout()

	var gridRows []string
	for r := 0; r < rows; r++ {
		var cells []string
		for c := 0; c < cols; c++ {
			index := r*cols + c
			cells = append(cells, m.renderCell(index))
		}
		gridRows = append(gridRows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, gridRows...)

	status := fmt.Sprintf("brightness %d%%", m.deck.Brightness())
	if m.lastEvent != "" {
		status += "  |  " + m.lastEvent
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render("deckd simulator"),
		StatusStyle.Render(status),
		grid,
		HelpStyle.Render(m.help.View(m.keys)),
	)
}

// renderCell draws one key: the character that presses it, on the
// average color of the image the manager pushed to the slot.
func (m Model) renderCell(index int) string {
	label := "·"
	if index < len(keyRunes) {
		label = string(keyRunes[index])
	}

	style := KeyStyle
	if m.deck.IsPressed(index) {
		style = PressedKeyStyle
	}

	if swatch := m.deck.Swatch(index); swatch != "" {
		style = style.Background(lipgloss.Color(swatch))
	} else {
		style = style.Background(BlankColor)
	}

	return style.Render(label)
}

// slotForKey maps a typed character to a slot index inside the layout.
func slotForKey(s string, d *Deck) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	rows, cols := d.KeyLayout()
	for i := 0; i < len(keyRunes) && i < rows*cols; i++ {
		if s[0] == keyRunes[i] {
			return i, true
		}
	}
	return 0, false
}

// Run starts the simulator UI and blocks until the user quits.
func Run(d *Deck) error {
	p := tea.NewProgram(NewModel(d), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
