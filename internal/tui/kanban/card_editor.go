package kanban

import (
	"errors"
	"strings"

	"kanbo/internal/kanban/models"
	"kanbo/internal/kanban/operations"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errDueDate = errors.New("due date must be YYYY-MM-DD")

type editorField int

const (
	fieldText editorField = iota
	fieldDescription
	fieldDue
	fieldCount
)

type editorResult int

const (
	editorPending editorResult = iota
	editorSaved
	editorCancelled
)

// CardEditorModel edits the title, description and due date of one card
type CardEditorModel struct {
	columnID    string
	cardID      string
	focus       editorField
	text        textinput.Model
	description textarea.Model
	due         textinput.Model
	err         string
	width       int
	height      int
}

func NewCardEditorModel(columnID string, card models.Card) CardEditorModel {
	text := textinput.New()
	text.Placeholder = "Card title"
	text.CharLimit = operations.MaxCardTextLength
	text.Width = 50
	text.SetValue(card.Text)
	text.Focus()

	desc := textarea.New()
	desc.Placeholder = "Description"
	desc.CharLimit = operations.MaxCardDescriptionLength
	desc.SetWidth(52)
	desc.SetHeight(4)
	desc.ShowLineNumbers = false
	desc.SetValue(card.Description)

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.CharLimit = len(models.DateLayout)
	due.Width = 20
	due.SetValue(card.DueDateString())

	return CardEditorModel{
		columnID:    columnID,
		cardID:      card.ID,
		text:        text,
		description: desc,
		due:         due,
	}
}

func (m CardEditorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update returns the edited model and whether editing finished.
// enter saves from the single-line fields; ctrl+s saves from anywhere.
func (m CardEditorModel) Update(msg tea.KeyMsg) (CardEditorModel, tea.Cmd, editorResult) {
	switch msg.String() {
	case "esc":
		return m, nil, editorCancelled
	case "ctrl+s":
		return m.trySave()
	case "enter":
		if m.focus != fieldDescription {
			return m.trySave()
		}
	case "tab":
		return m.setFocus((m.focus + 1) % fieldCount), nil, editorPending
	case "shift+tab":
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil, editorPending
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldText:
		m.text, cmd = m.text.Update(msg)
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	case fieldDue:
		m.due, cmd = m.due.Update(msg)
	}
	return m, cmd, editorPending
}

func (m CardEditorModel) trySave() (CardEditorModel, tea.Cmd, editorResult) {
	if _, err := m.Fields(); err != nil {
		m.err = err.Error()
		return m.setFocus(fieldDue), nil, editorPending
	}
	return m, nil, editorSaved
}

func (m CardEditorModel) setFocus(f editorField) CardEditorModel {
	m.focus = f
	m.text.Blur()
	m.description.Blur()
	m.due.Blur()
	switch f {
	case fieldText:
		m.text.Focus()
	case fieldDescription:
		m.description.Focus()
	case fieldDue:
		m.due.Focus()
	}
	return m
}

// Fields returns the edited values. A malformed due date is an error.
func (m CardEditorModel) Fields() (models.CardFields, error) {
	due, err := models.ParseDueDate(strings.TrimSpace(m.due.Value()))
	if err != nil {
		return models.CardFields{}, errDueDate
	}
	return models.CardFields{
		Text:        strings.TrimSpace(m.text.Value()),
		Description: strings.TrimSpace(m.description.Value()),
		DueDate:     due,
	}, nil
}

func (m CardEditorModel) View() string {
	var s strings.Builder

	s.WriteString(modalTitleStyle.Render("Edit Card"))
	s.WriteString("\n\n")

	label := func(f editorField, name string) string {
		if m.focus == f {
			return fieldFocusStyle.Render("► " + name)
		}
		return fieldLabelStyle.Render("  " + name)
	}

	s.WriteString(label(fieldText, "Title") + "\n")
	s.WriteString(m.text.View() + "\n\n")
	s.WriteString(label(fieldDescription, "Description") + "\n")
	s.WriteString(m.description.View() + "\n\n")
	s.WriteString(label(fieldDue, "Due date") + "\n")
	s.WriteString(m.due.View())

	if m.err != "" {
		s.WriteString("\n\n" + errorStyle.Render(m.err))
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("tab: next field • enter/ctrl+s: save • esc: cancel"))

	box := modalBoxStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
