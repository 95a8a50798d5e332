package tui

import (
	"fmt"

	"kanbo/internal/kanban/service"
	"kanbo/internal/logs"
	"kanbo/internal/prefs"
	kanbanview "kanbo/internal/tui/kanban"
	"kanbo/internal/tui/messages"
	"kanbo/internal/tui/shared"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures the root model
type Options struct {
	Service   service.BoardService
	BoardName string
	// Source names where the board content came from, shown in the status bar
	Source string
	// Save persists the board; nil disables ctrl+s
	Save func() error
}

// AppModel is the root model: the board view plus a status bar and help overlay
type AppModel struct {
	boardView kanbanview.BoardModel
	prefs     prefs.Preferences
	theme     string
	source    string
	save      func() error
	status    string
	showHelp  bool
	width     int
	height    int
	ready     bool
}

func NewAppModel(opts Options) AppModel {
	return AppModel{
		boardView: kanbanview.NewBoardModel(opts.Service, opts.BoardName),
		prefs:     opts.Service.Preferences(),
		theme:     opts.Service.Theme(),
		source:    opts.Source,
		save:      opts.Save,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.boardView.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.boardView.SetSize(msg.Width, msg.Height-3) // Reserve space for status bar
		return m, nil

	case messages.PreferencesChangedMsg:
		m.prefs = msg.Preferences
		m.theme = msg.Preferences.Theme
		return m, nil

	case messages.SavedMsg:
		if msg.Err != nil {
			logs.Errorf("saving board: %v", msg.Err)
			m.status = "Save failed: " + msg.Err.Error()
		} else {
			m.status = "Board saved"
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if !m.boardView.IsModal() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "ctrl+s":
				return m, m.saveCmd()
			}
		}
		m.status = ""
	}

	var cmd tea.Cmd
	m.boardView, cmd = m.boardView.Update(msg)
	return m, cmd
}

func (m AppModel) saveCmd() tea.Cmd {
	if m.save == nil {
		return func() tea.Msg {
			return messages.SavedMsg{Err: fmt.Errorf("no board directory configured")}
		}
	}
	save := m.save
	return func() tea.Msg {
		return messages.SavedMsg{Err: save()}
	}
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup(helpSections(), m.width, m.height)
	}

	content := m.boardView.View()

	statusText := fmt.Sprintf("%s | theme: %s | source: %s | ?:help | q:quit", m.prefs.Name, m.theme, m.source)
	if m.status != "" {
		statusText = m.status + " | " + statusText
	}
	statusBar := StatusBarStyle.Width(m.width).Render(HelpStyle.Render(statusText))

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{
			Title: "Navigation",
			Binds: []shared.HelpBind{
				{Key: "h/j/k/l", Desc: "Move selection"},
				{Key: "/", Desc: "Filter cards"},
				{Key: "esc", Desc: "Clear filter"},
			},
		},
		{
			Title: "Cards",
			Binds: []shared.HelpBind{
				{Key: "n", Desc: "New card at top of column"},
				{Key: "enter", Desc: "Edit card"},
				{Key: "space", Desc: "Move card (hjkl, then space)"},
				{Key: "D", Desc: "Delete card"},
			},
		},
		{
			Title: "Columns",
			Binds: []shared.HelpBind{
				{Key: "N", Desc: "New column"},
				{Key: "r", Desc: "Rename column"},
				{Key: "g", Desc: "Move column (h/l, then g)"},
				{Key: "X", Desc: "Delete column"},
			},
		},
		{
			Title: "General",
			Binds: []shared.HelpBind{
				{Key: "t", Desc: "Choose theme"},
				{Key: "u", Desc: "Set your name"},
				{Key: "ctrl+s", Desc: "Save board"},
				{Key: "?", Desc: "Show this help"},
				{Key: "q", Desc: "Quit"},
			},
		},
	}
}
