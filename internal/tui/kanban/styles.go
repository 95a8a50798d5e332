package kanban

import (
	"kanbo/internal/kanban/models"
	"kanbo/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	// Layout constants
	columnWidth             = 36
	columnPaddingHorizontal = 2
	cardPaddingHorizontal   = 1
	cardBorderWidth         = 1
)

var (
	titleStyle = theme.Title.Padding(0, 1)

	userStyle = lipgloss.NewStyle().Foreground(theme.Secondary)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, false, false, true).
			BorderForeground(theme.Border).
			Padding(0, cardPaddingHorizontal).
			MarginBottom(1)

	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	cardPreviewStyle = lipgloss.NewStyle().Foreground(theme.TextMuted)

	emptyColumnStyle = theme.Muted.Italic(true)

	helpStyle = theme.Muted.Padding(1, 2)

	listItemStyle = lipgloss.NewStyle().
			Foreground(theme.Text).
			Padding(0, 2)

	selectedListItemStyle = lipgloss.NewStyle().
				Foreground(theme.Warning).
				Bold(true).
				Padding(0, 2)

	errorStyle   = theme.Error
	warningStyle = theme.Warn
	successStyle = theme.Ok

	modalBoxStyle   = theme.ModalBox.Width(60)
	modalTitleStyle = theme.ModalTitle.Align(lipgloss.Center)
	fieldLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	fieldFocusStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Warning)

	scrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(theme.Primary).
				Italic(true).
				Align(lipgloss.Center)

	filterIndicatorStyle = lipgloss.NewStyle().
				Foreground(theme.Warning).
				Bold(true)
)

// columnStyle draws a column in its palette accent. The selected column gets
// a thick border; a column being dragged gets a double one.
func columnStyle(col models.Column, selected, dragging bool) lipgloss.Style {
	border := lipgloss.RoundedBorder()
	switch {
	case dragging:
		border = lipgloss.DoubleBorder()
	case selected:
		border = lipgloss.ThickBorder()
	}
	fg := theme.Border
	if selected || dragging {
		fg = theme.Accent(col.Color)
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(fg).
		Padding(1, columnPaddingHorizontal).
		Width(columnWidth)
}

func columnTitleStyle(col models.Column, selected bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Accent(col.Color)).
		Align(lipgloss.Center)
	if selected {
		style = style.Underline(true).Background(theme.Surface)
	}
	return style
}

func selectedCardStyle(col models.Column) lipgloss.Style {
	return cardStyle.
		BorderForeground(theme.Accent(col.Color)).
		Background(theme.Surface).
		Bold(true)
}

func draggedCardStyle(col models.Column) lipgloss.Style {
	return cardStyle.
		BorderForeground(theme.Warning).
		Background(lipgloss.Color(col.Color.Background)).
		Foreground(lipgloss.Color("16")).
		Bold(true)
}

// modeIndicatorStyle returns a bold style with the given foreground color for mode badges.
func modeIndicatorStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
