package theme

import (
	"kanbo/internal/kanban/models"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Terminal colors, ANSI 0-15 plus a 256-color surface
// ---------------------------------------------------------------------------

var (
	Text       = lipgloss.Color("7")
	TextMuted  = lipgloss.Color("8")
	TextBright = lipgloss.Color("15")

	Primary   = lipgloss.Color("4")   // blue
	Secondary = lipgloss.Color("6")   // cyan
	Success   = lipgloss.Color("2")   // green
	Warning   = lipgloss.Color("3")   // yellow
	Danger    = lipgloss.Color("1")   // red
	Surface   = lipgloss.Color("236") // dark bg
	Border    = lipgloss.Color("8")   // dim
)

// ---------------------------------------------------------------------------
// Semantic text styles
// ---------------------------------------------------------------------------

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Bold  = lipgloss.NewStyle().Bold(true)

	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	Ok    = lipgloss.NewStyle().Bold(true).Foreground(Success)

	Cursor = lipgloss.NewStyle().Bold(true).Foreground(Success)

	Overdue = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	DueSoon = lipgloss.NewStyle().Foreground(Success)
)

// ---------------------------------------------------------------------------
// Reusable component helpers
// ---------------------------------------------------------------------------

var (
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(Warning)

	ModalHelp = lipgloss.NewStyle().Foreground(TextMuted)

	StatusBar = lipgloss.NewStyle().
			Foreground(TextMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)
)

// Accent returns the main colour of a column, or Primary when it has none
func Accent(pair models.ColorPair) lipgloss.Color {
	if pair.Main == "" {
		return Primary
	}
	return lipgloss.Color(pair.Main)
}

// Swatch renders a small block in each colour of the pairs, used by the theme picker
func Swatch(pairs []models.ColorPair) string {
	var blocks []string
	for _, p := range pairs {
		blocks = append(blocks, lipgloss.NewStyle().Foreground(Accent(p)).Render("██"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// DueStyle picks the style used for a due date label
func DueStyle(status models.DueStatus) lipgloss.Style {
	switch status {
	case models.DueOverdue:
		return Overdue
	case models.DueActive:
		return DueSoon
	default:
		return Muted
	}
}
