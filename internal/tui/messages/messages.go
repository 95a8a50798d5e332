package messages

import (
	"kanbo/internal/prefs"

	tea "github.com/charmbracelet/bubbletea"
)

// PreferencesChangedMsg is sent by the board after the user renames
// themselves or switches theme, so the status bar can refresh
type PreferencesChangedMsg struct {
	Preferences prefs.Preferences
}

// SavedMsg reports the result of persisting the board
type SavedMsg struct {
	Err error
}

func PreferencesChanged(p prefs.Preferences) tea.Cmd {
	return func() tea.Msg {
		return PreferencesChangedMsg{Preferences: p}
	}
}
