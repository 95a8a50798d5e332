package kanban

import (
	"strings"

	"kanbo/internal/kanban/palette"
	"kanbo/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ThemePickerModel is a single-select list of colour themes
type ThemePickerModel struct {
	names  []string
	cursor int
	width  int
	height int
}

// NewThemePickerModel starts with the cursor on the current theme
func NewThemePickerModel(current string) ThemePickerModel {
	names := palette.Names()
	cursor := 0
	for i, n := range names {
		if n == current {
			cursor = i
		}
	}
	return ThemePickerModel{names: names, cursor: cursor}
}

// Update handles key events. Returns (model, selectedName, done).
// selectedName is non-empty only on enter; done is true on enter or esc.
func (m ThemePickerModel) Update(msg tea.KeyMsg) (ThemePickerModel, string, bool) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(m.names) {
			return m, m.names[m.cursor], true
		}
		return m, "", true
	case "esc", "q":
		return m, "", true
	}
	return m, "", false
}

func (m ThemePickerModel) View() string {
	var lines []string

	lines = append(lines, modalTitleStyle.Render("Choose Theme"))
	lines = append(lines, "")

	for i, name := range m.names {
		style := listItemStyle
		prefix := "  "
		if i == m.cursor {
			style = selectedListItemStyle
			prefix = "► "
		}
		pal, _ := palette.Lookup(name)
		lines = append(lines, style.Width(22).Render(prefix+name)+theme.Swatch(pal))
	}

	lines = append(lines, "")
	lines = append(lines, theme.ModalHelp.Render("j/k: navigate • enter: apply • esc: cancel"))

	box := modalBoxStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
