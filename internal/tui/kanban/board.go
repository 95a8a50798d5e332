package kanban

import (
	"fmt"
	"strings"
	"time"

	"kanbo/internal/kanban/drag"
	"kanbo/internal/kanban/models"
	"kanbo/internal/kanban/operations"
	"kanbo/internal/kanban/service"
	"kanbo/internal/logs"
	"kanbo/internal/prefs"
	"kanbo/internal/tui/messages"
	"kanbo/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type boardMode int

const (
	boardModeNormal boardMode = iota
	boardModeDragCard
	boardModeDragColumn
	boardModeConfirmDeleteCard
	boardModeConfirmDeleteColumn
	boardModePrompt
	boardModeCardEdit
	boardModeThemePick
	boardModeFilter
)

// BoardModel renders one board and turns key presses into service calls.
// The view never mutates cards itself; it re-reads a snapshot after every call.
type BoardModel struct {
	svc      service.BoardService
	name     string
	snapshot models.Snapshot

	selectedCol  int
	selectedCard int
	mode         boardMode
	width        int
	height       int
	err          error
	message      string

	prompt      *PromptModel
	cardEditor  *CardEditorModel
	themePicker *ThemePickerModel

	columnScrollOffsets    []int
	columnCursorPos        []int
	columnHorizontalOffset int

	filterInput     textinput.Model
	filterQuery     string
	filterActive    bool
	filteredIndices [][]int

	now func() time.Time
}

func NewBoardModel(svc service.BoardService, name string) BoardModel {
	fi := textinput.New()
	fi.Placeholder = "filter cards..."
	fi.CharLimit = 100
	fi.Width = 40

	m := BoardModel{
		svc:         svc,
		name:        name,
		filterInput: fi,
		now:         time.Now,
	}
	m.refresh()
	return m
}

// SetSize updates the view dimensions
func (m *BoardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.prompt != nil {
		m.prompt.width, m.prompt.height = width, height
	}
	if m.cardEditor != nil {
		m.cardEditor.width, m.cardEditor.height = width, height
	}
	if m.themePicker != nil {
		m.themePicker.width, m.themePicker.height = width, height
	}
	m.adjustHorizontalScrollPosition()
}

// IsModal returns true while the board owns every key, including q and ?
func (m BoardModel) IsModal() bool {
	return m.mode != boardModeNormal
}

// Selection returns the selected column and real card index
func (m BoardModel) Selection() (int, int) {
	return m.selectedCol, m.resolveCardIndex(m.selectedCol, m.selectedCard)
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) Update(msg tea.Msg) (BoardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil
	switch m.mode {
	case boardModeDragCard:
		return m.updateDragCard(keyMsg)
	case boardModeDragColumn:
		return m.updateDragColumn(keyMsg)
	case boardModeConfirmDeleteCard, boardModeConfirmDeleteColumn:
		return m.updateConfirmDelete(keyMsg)
	case boardModePrompt:
		return m.updatePrompt(keyMsg)
	case boardModeCardEdit:
		return m.updateCardEdit(keyMsg)
	case boardModeThemePick:
		return m.updateThemePick(keyMsg)
	case boardModeFilter:
		return m.updateFilter(keyMsg)
	default:
		return m.updateNormal(keyMsg)
	}
}

func (m BoardModel) updateNormal(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	m.message = ""

	switch msg.String() {
	case "esc":
		if m.filterActive {
			m.clearFilter()
		}

	case "h", "left":
		if m.selectedCol > 0 {
			m.columnCursorPos[m.selectedCol] = m.selectedCard
			m.selectedCol--
			m.selectedCard = m.columnCursorPos[m.selectedCol]
			m.clampFilteredCursors()
			m.adjustHorizontalScrollPosition()
			m.adjustScrollPosition()
		}

	case "l", "right":
		if m.selectedCol < len(m.snapshot.Columns)-1 {
			m.columnCursorPos[m.selectedCol] = m.selectedCard
			m.selectedCol++
			m.selectedCard = m.columnCursorPos[m.selectedCol]
			m.clampFilteredCursors()
			m.adjustHorizontalScrollPosition()
			m.adjustScrollPosition()
		}

	case "j", "down":
		if m.hasColumns() && m.selectedCard < len(m.getVisibleCards(m.selectedCol))-1 {
			m.selectedCard++
			m.columnCursorPos[m.selectedCol] = m.selectedCard
			m.adjustScrollPosition()
		}

	case "k", "up":
		if m.hasColumns() && m.selectedCard > 0 {
			m.selectedCard--
			m.columnCursorPos[m.selectedCol] = m.selectedCard
			m.adjustScrollPosition()
		}

	case " ", "m":
		return m.beginCardDrag()

	case "g":
		return m.beginColumnDrag()

	case "n":
		if !m.hasColumns() {
			m.err = fmt.Errorf("add a column first")
			return m, nil
		}
		return m.openPrompt("New Card", "What needs doing?", "", operations.MaxCardTextLength, promptNewCard)

	case "N":
		return m.openPrompt("New Column", "Column title", "", operations.MaxColumnTitleLength, promptNewColumn)

	case "r":
		if !m.hasColumns() {
			return m, nil
		}
		title := m.snapshot.Columns[m.selectedCol].Title
		return m.openPrompt("Rename Column", "Column title", title, operations.MaxColumnTitleLength, promptRenameColumn)

	case "u":
		name := m.svc.Preferences().Name
		return m.openPrompt("Your Name", "Name", name, prefs.MaxNameLength, promptUserName)

	case "enter":
		return m.openCardEditor()

	case "D":
		if _, ok := m.currentCard(); ok {
			m.mode = boardModeConfirmDeleteCard
		}

	case "X":
		if m.hasColumns() {
			m.mode = boardModeConfirmDeleteColumn
		}

	case "t":
		picker := NewThemePickerModel(m.svc.Theme())
		picker.width, picker.height = m.width, m.height
		m.themePicker = &picker
		m.mode = boardModeThemePick

	case "/":
		m.mode = boardModeFilter
		m.filterInput.SetValue(m.filterQuery)
		m.filterInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m BoardModel) beginCardDrag() (BoardModel, tea.Cmd) {
	if m.filterActive {
		m.err = fmt.Errorf("clear the filter before moving cards")
		return m, nil
	}
	if !m.svc.BeginDrag(drag.KindCard, m.selectedCol, m.selectedCard) {
		return m, nil
	}
	m.mode = boardModeDragCard
	m.message = "Moving card"
	return m, nil
}

func (m BoardModel) beginColumnDrag() (BoardModel, tea.Cmd) {
	if m.filterActive {
		m.err = fmt.Errorf("clear the filter before moving columns")
		return m, nil
	}
	if !m.svc.BeginDrag(drag.KindColumn, m.selectedCol, 0) {
		return m, nil
	}
	m.mode = boardModeDragColumn
	m.message = "Moving column"
	return m, nil
}

// updateDragCard drops the dragged card one step in the pressed direction.
// The session stays open until space, enter or esc.
func (m BoardModel) updateDragCard(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	session, ok := m.svc.DragSession()
	if !ok {
		m.mode = boardModeNormal
		return m, nil
	}
	board := m.snapshot.Board()
	colIdx, cardIdx := board.LocateCard(session.CardID)
	if colIdx < 0 {
		m.svc.EndDrag()
		m.mode = boardModeNormal
		return m, nil
	}

	switch msg.String() {
	case "h", "left":
		if colIdx > 0 {
			m.svc.AttemptDrop(drag.KindCard, colIdx-1, cardIdx)
		}
	case "l", "right":
		if colIdx < len(m.snapshot.Columns)-1 {
			m.svc.AttemptDrop(drag.KindCard, colIdx+1, cardIdx)
		}
	case "j", "down":
		if cardIdx < len(m.snapshot.Columns[colIdx].Cards)-1 {
			m.svc.AttemptDrop(drag.KindCard, colIdx, cardIdx+1)
		}
	case "k", "up":
		if cardIdx > 0 {
			m.svc.AttemptDrop(drag.KindCard, colIdx, cardIdx-1)
		}
	case "G":
		m.svc.AttemptDrop(drag.KindCard, colIdx, drag.EndOfList)
	case "K":
		m.svc.AttemptDrop(drag.KindCard, colIdx, 0)
	case " ", "enter", "m":
		m.svc.EndDrag()
		m.mode = boardModeNormal
		m.message = "Card moved"
	case "esc":
		m.svc.EndDrag()
		m.mode = boardModeNormal
	}

	m.refresh()
	m.followCard(session.CardID)
	return m, nil
}

func (m BoardModel) updateDragColumn(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	session, ok := m.svc.DragSession()
	if !ok {
		m.mode = boardModeNormal
		return m, nil
	}
	board := m.snapshot.Board()
	colIdx := board.GetColumnIndex(session.ColumnID)
	if colIdx < 0 {
		m.svc.EndDrag()
		m.mode = boardModeNormal
		return m, nil
	}

	switch msg.String() {
	case "h", "left":
		if colIdx > 0 {
			m.svc.AttemptDrop(drag.KindColumn, colIdx-1, 0)
		}
	case "l", "right":
		if colIdx < len(m.snapshot.Columns)-1 {
			m.svc.AttemptDrop(drag.KindColumn, colIdx+1, 0)
		}
	case "g", " ", "enter":
		m.svc.EndDrag()
		m.mode = boardModeNormal
		m.message = "Column moved"
	case "esc":
		m.svc.EndDrag()
		m.mode = boardModeNormal
	}

	m.refresh()
	board = m.snapshot.Board()
	if idx := board.GetColumnIndex(session.ColumnID); idx >= 0 {
		m.selectColumn(idx)
	}
	return m, nil
}

func (m BoardModel) updateConfirmDelete(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	deletingColumn := m.mode == boardModeConfirmDeleteColumn
	m.mode = boardModeNormal

	switch msg.String() {
	case "y", "Y":
		if !m.hasColumns() {
			return m, nil
		}
		col := m.snapshot.Columns[m.selectedCol]
		if deletingColumn {
			if m.svc.RemoveColumn(col.ID) {
				m.message = fmt.Sprintf("Deleted column %q", col.Title)
			}
		} else if card, ok := m.currentCard(); ok {
			if m.svc.RemoveCard(col.ID, card.ID) {
				m.message = "Card deleted"
			}
		}
		m.refresh()
	}
	return m, nil
}

func (m BoardModel) openPrompt(title, placeholder, value string, limit int, purpose promptPurpose) (BoardModel, tea.Cmd) {
	p := NewPromptModel(title, placeholder, value, limit, purpose)
	p.width, p.height = m.width, m.height
	m.prompt = &p
	m.mode = boardModePrompt
	return m, p.Init()
}

func (m BoardModel) updatePrompt(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	if m.prompt == nil {
		m.mode = boardModeNormal
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.prompt = nil
		m.mode = boardModeNormal
		return m, nil
	case "enter":
		value := m.prompt.Value()
		purpose := m.prompt.purpose
		m.prompt = nil
		m.mode = boardModeNormal
		return m.submitPrompt(purpose, value)
	}

	updated, cmd := m.prompt.Update(msg)
	m.prompt = &updated
	return m, cmd
}

func (m BoardModel) submitPrompt(purpose promptPurpose, value string) (BoardModel, tea.Cmd) {
	switch purpose {
	case promptNewCard:
		col := m.snapshot.Columns[m.selectedCol]
		card, ok := m.svc.AddCard(col.ID, value)
		if !ok {
			return m, nil
		}
		m.refresh()
		m.followCard(card.ID)
		m.message = "Card added"

	case promptNewColumn:
		col, ok := m.svc.AddColumn(value)
		if !ok {
			return m, nil
		}
		m.refresh()
		board := m.snapshot.Board()
		m.selectColumn(board.GetColumnIndex(col.ID))
		m.message = fmt.Sprintf("Added column %q", col.Title)

	case promptRenameColumn:
		col := m.snapshot.Columns[m.selectedCol]
		if m.svc.RenameColumn(col.ID, value) {
			m.refresh()
			m.message = "Column renamed"
		}

	case promptUserName:
		if m.svc.SetUserName(value) {
			name := m.svc.Preferences().Name
			m.message = "Hello, " + name
			return m, messages.PreferencesChanged(m.svc.Preferences())
		}
	}
	return m, nil
}

func (m BoardModel) openCardEditor() (BoardModel, tea.Cmd) {
	card, ok := m.currentCard()
	if !ok {
		return m, nil
	}
	editor := NewCardEditorModel(m.snapshot.Columns[m.selectedCol].ID, card)
	editor.width, editor.height = m.width, m.height
	m.cardEditor = &editor
	m.mode = boardModeCardEdit
	return m, editor.Init()
}

func (m BoardModel) updateCardEdit(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	if m.cardEditor == nil {
		m.mode = boardModeNormal
		return m, nil
	}

	updated, cmd, result := m.cardEditor.Update(msg)
	m.cardEditor = &updated

	switch result {
	case editorCancelled:
		m.cardEditor = nil
		m.mode = boardModeNormal
	case editorSaved:
		fields, err := updated.Fields()
		if err != nil {
			m.err = err
			return m, nil
		}
		if m.svc.UpdateCard(updated.columnID, updated.cardID, fields) {
			m.message = "Card saved"
		}
		m.cardEditor = nil
		m.mode = boardModeNormal
		m.refresh()
		m.followCard(updated.cardID)
	}
	return m, cmd
}

func (m BoardModel) updateThemePick(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	if m.themePicker == nil {
		m.mode = boardModeNormal
		return m, nil
	}

	updated, name, done := m.themePicker.Update(msg)
	m.themePicker = &updated
	if !done {
		return m, nil
	}

	m.themePicker = nil
	m.mode = boardModeNormal
	if name == "" || !m.svc.SelectTheme(name) {
		return m, nil
	}
	m.refresh()
	m.message = "Theme: " + name
	logs.Debugf("theme switched to %s from the board view", name)
	return m, messages.PreferencesChanged(m.svc.Preferences())
}

func (m BoardModel) updateFilter(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = boardModeNormal
		m.filterInput.Blur()
		m.clearFilter()
		return m, nil
	case "enter":
		m.mode = boardModeNormal
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filterQuery = strings.TrimSpace(m.filterInput.Value())
	m.filterActive = m.filterQuery != ""
	m.recomputeFilter()
	m.selectedCard = 0
	m.clampFilteredCursors()
	m.adjustScrollPosition()
	return m, cmd
}

func (m BoardModel) View() string {
	switch {
	case m.mode == boardModePrompt && m.prompt != nil:
		return m.prompt.View()
	case m.mode == boardModeCardEdit && m.cardEditor != nil:
		return m.cardEditor.View()
	case m.mode == boardModeThemePick && m.themePicker != nil:
		return m.themePicker.View()
	}

	var s strings.Builder

	p := m.svc.Preferences()
	header := titleStyle.Render(m.name) + "  " + userStyle.Render("@"+p.Name) + "  " + cardPreviewStyle.Render("theme: "+m.svc.Theme())
	s.WriteString(header)
	s.WriteString("\n")

	if m.mode == boardModeFilter {
		s.WriteString("  / " + m.filterInput.View())
	} else if m.filterActive {
		s.WriteString("  " + filterIndicatorStyle.Render("Filter: "+m.filterQuery))
	}
	s.WriteString("\n")

	fixedColumnHeight := m.columnHeight()

	if !m.hasColumns() {
		s.WriteString(emptyColumnStyle.Render("  No columns yet. Press N to add one."))
		s.WriteString("\n")
	} else {
		startCol, endCol := m.calculateVisibleColumns()
		views := []string{}

		if startCol > 0 {
			views = append(views, m.renderScrollIndicator("◀", fixedColumnHeight))
		} else {
			views = append(views, m.renderScrollIndicator(" ", fixedColumnHeight))
		}

		for i := startCol; i < endCol; i++ {
			views = append(views, m.renderColumn(i, m.snapshot.Columns[i], m.getVisibleCards(i), fixedColumnHeight))
		}

		if endCol < len(m.snapshot.Columns) {
			views = append(views, m.renderScrollIndicator("▶", fixedColumnHeight))
		} else {
			views = append(views, m.renderScrollIndicator(" ", fixedColumnHeight))
		}

		columns := lipgloss.JoinHorizontal(lipgloss.Top, views...)
		s.WriteString(lipgloss.Place(m.width, 0, lipgloss.Center, lipgloss.Top, columns))
		s.WriteString("\n")
	}

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	} else if m.message != "" {
		s.WriteString(successStyle.Render(m.message))
		s.WriteString("\n")
	}

	switch m.mode {
	case boardModeDragCard:
		s.WriteString(modeIndicatorStyle(lipgloss.Color("3")).Render("MOVE CARD "))
		s.WriteString(helpStyle.Render("h/l: column • j/k: position • K/G: top/bottom • space/enter: drop • esc: stop"))
	case boardModeDragColumn:
		s.WriteString(modeIndicatorStyle(lipgloss.Color("3")).Render("MOVE COLUMN "))
		s.WriteString(helpStyle.Render("h/l: move • g/enter: drop • esc: stop"))
	case boardModeConfirmDeleteCard:
		s.WriteString(warningStyle.Render("Delete this card? (y/n)"))
	case boardModeConfirmDeleteColumn:
		s.WriteString(warningStyle.Render("Delete this column and all its cards? (y/n)"))
	case boardModeFilter:
		s.WriteString(helpStyle.Render("type to filter • enter: lock filter • esc: cancel"))
	default:
		helpText := "hjkl: navigate • space: move card • g: move column • enter: edit • n: new card • N: new column • r: rename • D/X: delete • t: theme • u: name • /: filter • ?: help • q: quit"
		if m.filterActive {
			helpText = "hjkl: navigate • enter: edit • /: edit filter • esc: clear filter • q: quit"
		}
		s.WriteString(helpStyle.Render(helpText))
	}

	return s.String()
}

func (m BoardModel) renderColumn(index int, col models.Column, cards []models.Card, fixedHeight int) string {
	var s strings.Builder

	selected := index == m.selectedCol
	dragging := m.mode == boardModeDragColumn && selected
	style := columnStyle(col, selected, dragging).Height(fixedHeight)

	title := fmt.Sprintf("%s (%d)", col.Title, len(col.Cards))
	s.WriteString(columnTitleStyle(col, selected).Render(title))
	s.WriteString("\n\n")

	if len(cards) == 0 {
		s.WriteString(emptyColumnStyle.Render("(empty)"))
		s.WriteString("\n")
		return style.Render(s.String())
	}

	scrollOffset := 0
	if index < len(m.columnScrollOffsets) {
		scrollOffset = min(m.columnScrollOffsets[index], len(cards)-1)
	}

	if scrollOffset > 0 {
		s.WriteString(scrollIndicatorStyle.Render(fmt.Sprintf("▲ +%d cards above", scrollOffset)))
	}
	s.WriteString("\n\n")

	availableCardSpace := fixedHeight - 8

	cardsRendered := 0
	usedHeight := 0
	for i := scrollOffset; i < len(cards); i++ {
		cardView := m.renderCard(index, i, col, cards[i])
		cardHeight := lipgloss.Height(cardView)
		if cardsRendered > 0 && usedHeight+cardHeight > availableCardSpace {
			break
		}
		s.WriteString(cardView)
		s.WriteString("\n")
		cardsRendered++
		usedHeight += cardHeight
	}

	if cardsBelow := len(cards) - scrollOffset - cardsRendered; cardsBelow > 0 {
		s.WriteString(scrollIndicatorStyle.Render(fmt.Sprintf("▼ +%d cards below", cardsBelow)))
	}

	return style.Render(s.String())
}

func (m BoardModel) renderCard(colIndex, cardIndex int, col models.Column, card models.Card) string {
	maxWidth := columnWidth - (2 * columnPaddingHorizontal) - cardBorderWidth - (2 * cardPaddingHorizontal)

	var lines []string
	lines = append(lines, cardTitleStyle.Render(operations.Truncate(card.Text, maxWidth)))

	if card.Description != "" {
		preview := strings.Join(strings.Fields(card.Description), " ")
		lines = append(lines, cardPreviewStyle.Render(operations.Truncate(preview, maxWidth)))
	}

	if card.DueDate != nil {
		lines = append(lines, m.renderDueDate(card))
	}

	content := strings.Join(lines, "\n")

	isSelected := colIndex == m.selectedCol && cardIndex == m.selectedCard
	switch {
	case isSelected && m.mode == boardModeDragCard:
		return draggedCardStyle(col).Render(content)
	case isSelected:
		return selectedCardStyle(col).Render(content)
	default:
		return cardStyle.Render(content)
	}
}

// renderDueDate formats a due date with the number of days left or overdue
func (m BoardModel) renderDueDate(card models.Card) string {
	now := m.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due := time.Date(card.DueDate.Year(), card.DueDate.Month(), card.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	days := int(due.Sub(today).Hours() / 24)

	var when string
	switch {
	case days == 0:
		when = "today"
	case days > 0:
		when = fmt.Sprintf("in %dd", days)
	default:
		when = fmt.Sprintf("%dd overdue", -days)
	}

	status := card.DueStatus(now)
	return theme.DueStyle(status).Render(fmt.Sprintf("due %s (%s)", card.DueDateString(), when))
}

// refresh re-reads the board and keeps cursors and scroll arrays in range
func (m *BoardModel) refresh() {
	m.snapshot = m.svc.Snapshot()

	n := len(m.snapshot.Columns)
	if len(m.columnScrollOffsets) != n {
		offsets := make([]int, n)
		copy(offsets, m.columnScrollOffsets)
		m.columnScrollOffsets = offsets
	}
	if len(m.columnCursorPos) != n {
		positions := make([]int, n)
		copy(positions, m.columnCursorPos)
		m.columnCursorPos = positions
	}

	if m.selectedCol >= n {
		m.selectedCol = max(0, n-1)
	}
	if m.columnHorizontalOffset >= n {
		m.columnHorizontalOffset = max(0, n-1)
	}

	m.recomputeFilter()
	m.clampFilteredCursors()
}

// followCard moves the selection onto a card wherever it now lives
func (m *BoardModel) followCard(cardID string) {
	board := m.snapshot.Board()
	colIdx, cardIdx := board.LocateCard(cardID)
	if colIdx < 0 {
		return
	}
	if m.filterActive {
		cardIdx = m.filteredPosition(colIdx, cardIdx)
		if cardIdx < 0 {
			return
		}
	}
	m.selectedCol = colIdx
	m.selectedCard = cardIdx
	m.columnCursorPos[colIdx] = cardIdx
	m.adjustHorizontalScrollPosition()
	m.adjustScrollPosition()
}

func (m *BoardModel) selectColumn(index int) {
	if index < 0 || index >= len(m.snapshot.Columns) {
		return
	}
	m.selectedCol = index
	m.selectedCard = m.columnCursorPos[index]
	m.clampFilteredCursors()
	m.adjustHorizontalScrollPosition()
}

func (m *BoardModel) hasColumns() bool {
	return len(m.snapshot.Columns) > 0
}

// currentCard returns the card under the cursor, honouring the filter
func (m *BoardModel) currentCard() (models.Card, bool) {
	if !m.hasColumns() {
		return models.Card{}, false
	}
	cards := m.getVisibleCards(m.selectedCol)
	if m.selectedCard < 0 || m.selectedCard >= len(cards) {
		return models.Card{}, false
	}
	return cards[m.selectedCard], true
}

func (m *BoardModel) clearFilter() {
	m.filterQuery = ""
	m.filterActive = false
	m.filteredIndices = nil
	m.filterInput.SetValue("")
	m.clampFilteredCursors()
}

func (m *BoardModel) recomputeFilter() {
	if m.filterQuery == "" {
		m.filterActive = false
		m.filteredIndices = nil
		return
	}
	m.filteredIndices = operations.FilterCards(m.snapshot, m.filterQuery)
}

// getVisibleCards returns the cards to display for a column, respecting the active filter
func (m *BoardModel) getVisibleCards(colIndex int) []models.Card {
	all := m.snapshot.Columns[colIndex].Cards
	if !m.filterActive || m.filteredIndices == nil || colIndex >= len(m.filteredIndices) {
		return all
	}
	indices := m.filteredIndices[colIndex]
	cards := make([]models.Card, len(indices))
	for i, idx := range indices {
		cards[i] = all[idx]
	}
	return cards
}

// resolveCardIndex translates a filtered position back to the real card index
func (m *BoardModel) resolveCardIndex(colIndex, filteredIndex int) int {
	if !m.filterActive || m.filteredIndices == nil || colIndex >= len(m.filteredIndices) {
		return filteredIndex
	}
	indices := m.filteredIndices[colIndex]
	if filteredIndex < len(indices) {
		return indices[filteredIndex]
	}
	return filteredIndex
}

// filteredPosition is the inverse of resolveCardIndex; -1 when the card is hidden
func (m *BoardModel) filteredPosition(colIndex, realIndex int) int {
	if colIndex >= len(m.filteredIndices) {
		return -1
	}
	for pos, idx := range m.filteredIndices[colIndex] {
		if idx == realIndex {
			return pos
		}
	}
	return -1
}

// clampFilteredCursors ensures cursor positions are valid for the visible card sets
func (m *BoardModel) clampFilteredCursors() {
	if m.selectedCol >= len(m.snapshot.Columns) {
		m.selectedCard = 0
		return
	}
	visibleCount := len(m.getVisibleCards(m.selectedCol))
	if m.selectedCard >= visibleCount {
		m.selectedCard = max(0, visibleCount-1)
	}
	m.columnCursorPos[m.selectedCol] = m.selectedCard
}

func (m *BoardModel) columnHeight() int {
	const headerLines, statusLines, marginLines = 3, 3, 2
	return max(m.height-headerLines-statusLines-marginLines, 10)
}

// adjustScrollPosition ensures the selected card is visible by adjusting scroll offset
func (m *BoardModel) adjustScrollPosition() {
	if m.selectedCol >= len(m.snapshot.Columns) {
		return
	}

	col := m.snapshot.Columns[m.selectedCol]
	cards := m.getVisibleCards(m.selectedCol)
	if len(cards) == 0 {
		m.columnScrollOffsets[m.selectedCol] = 0
		return
	}

	availableCardHeight := m.columnHeight() - 8
	scrollOffset := m.columnScrollOffsets[m.selectedCol]

	if m.selectedCard < scrollOffset {
		m.columnScrollOffsets[m.selectedCol] = m.selectedCard
	} else {
		visibleCards := 0
		accumulatedHeight := 0
		for i := scrollOffset; i < len(cards); i++ {
			cardHeight := lipgloss.Height(m.renderCard(m.selectedCol, i, col, cards[i]))
			if visibleCards > 0 && accumulatedHeight+cardHeight > availableCardHeight {
				break
			}
			accumulatedHeight += cardHeight
			visibleCards++
		}
		visibleCards = max(visibleCards, 1)

		if m.selectedCard >= scrollOffset+visibleCards {
			m.columnScrollOffsets[m.selectedCol] = m.selectedCard - visibleCards + 1
		}
	}

	m.columnScrollOffsets[m.selectedCol] = min(max(m.columnScrollOffsets[m.selectedCol], 0), len(cards)-1)
}

// calculateVisibleColumns determines which columns fit in terminal width
func (m *BoardModel) calculateVisibleColumns() (startCol, endCol int) {
	const columnTotalWidth = columnWidth + 6
	const indicatorWidth = 5

	startCol = m.columnHorizontalOffset
	visibleCount := max((m.width-2*indicatorWidth)/columnTotalWidth, 1)
	endCol = min(startCol+visibleCount, len(m.snapshot.Columns))

	if endCol <= startCol && len(m.snapshot.Columns) > 0 {
		endCol = startCol + 1
	}
	return startCol, endCol
}

// renderScrollIndicator renders ◀ and ▶ indicators for horizontal scrolling
func (m *BoardModel) renderScrollIndicator(symbol string, height int) string {
	indicator := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true).
		Render(symbol)
	return lipgloss.NewStyle().
		Width(3).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(indicator)
}

// adjustHorizontalScrollPosition ensures the selected column is visible
func (m *BoardModel) adjustHorizontalScrollPosition() {
	if len(m.snapshot.Columns) == 0 {
		return
	}

	startCol, endCol := m.calculateVisibleColumns()
	if m.selectedCol < startCol {
		m.columnHorizontalOffset = m.selectedCol
		return
	}
	if m.selectedCol >= endCol {
		m.columnHorizontalOffset = max(m.selectedCol-(endCol-startCol)+1, 0)
	}
}
