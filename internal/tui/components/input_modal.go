package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/dailyart/internal/tui/styles"
)

// InputModal edits a single line of text, e.g. one preference axis
type InputModal struct {
	visible bool
	title   string
	hint    string
	input   textinput.Model
}

// NewInputModal creates a new input modal
func NewInputModal() InputModal {
	ti := textinput.New()
	ti.Placeholder = "comma-separated, blank clears"
	ti.CharLimit = 200
	ti.Width = 40
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return InputModal{
		input: ti,
	}
}

// Show displays the modal with a title and initial value
func (m *InputModal) Show(title, hint, value string) {
	m.visible = true
	m.title = title
	m.hint = hint
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

// Hide dismisses the modal
func (m *InputModal) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns whether the modal is shown
func (m InputModal) IsVisible() bool {
	return m.visible
}

// Value returns the current input value
func (m InputModal) Value() string {
	return m.input.Value()
}

// Update handles input events, returns (modal, cmd, submitted)
func (m InputModal) Update(msg tea.Msg) (InputModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m, nil, true
		case "esc":
			m.Hide()
			return m, nil, false
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, false
}

// View renders the input modal
func (m InputModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 44

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.White).
		Bold(true).
		Width(modalWidth).
		Background(styles.SlateDark)

	rowStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		rowStyle.Render(""),
		rowStyle.Render(m.input.View()),
		rowStyle.Render(""),
		rowStyle.Foreground(styles.DimGray).Render(m.hint),
	)

	return styles.ModalStyle.Render(content)
}
