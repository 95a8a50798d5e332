package kanban

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// promptPurpose says what a submitted prompt value is used for
type promptPurpose int

const (
	promptNewCard promptPurpose = iota
	promptNewColumn
	promptRenameColumn
	promptUserName
)

// PromptModel is a single-line text modal
type PromptModel struct {
	title     string
	purpose   promptPurpose
	textInput textinput.Model
	width     int
	height    int
}

func NewPromptModel(title, placeholder, value string, limit int, purpose promptPurpose) PromptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = limit
	ti.Width = 50
	ti.SetValue(value)

	return PromptModel{
		title:     title,
		purpose:   purpose,
		textInput: ti,
	}
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards editing keys to the input. enter and esc are handled by the board.
func (m PromptModel) Update(msg tea.KeyMsg) (PromptModel, tea.Cmd) {
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m PromptModel) View() string {
	var s strings.Builder

	s.WriteString(modalTitleStyle.Render(m.title))
	s.WriteString("\n\n")
	s.WriteString(m.textInput.View())
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("enter: save • esc: cancel"))

	box := modalBoxStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m PromptModel) Value() string {
	return strings.TrimSpace(m.textInput.Value())
}
