package server

import (
	"time"

	"kanbo/internal/kanban/drag"
	"kanbo/internal/kanban/models"
)

type colorView struct {
	Main       string `json:"main"`
	Background string `json:"background"`
}

type cardView struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate,omitempty"`
	DueStatus   string `json:"dueStatus"`
}

type columnView struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Color colorView  `json:"color"`
	Cards []cardView `json:"cards"`
}

type dragView struct {
	State       string `json:"state"`
	Kind        string `json:"kind,omitempty"`
	ColumnID    string `json:"columnId,omitempty"`
	CardID      string `json:"cardId,omitempty"`
	ColumnIndex *int   `json:"columnIndex,omitempty"`
	CardIndex   *int   `json:"cardIndex,omitempty"`
}

type boardView struct {
	Theme   string       `json:"theme"`
	Columns []columnView `json:"columns"`
	Drag    dragView     `json:"drag"`
}

func newCardView(card models.Card, now time.Time) cardView {
	return cardView{
		ID:          card.ID,
		Text:        card.Text,
		Description: card.Description,
		DueDate:     card.DueDateString(),
		DueStatus:   card.DueStatus(now).String(),
	}
}

func newColumnView(col models.Column, now time.Time) columnView {
	view := columnView{
		ID:    col.ID,
		Title: col.Title,
		Color: colorView{Main: col.Color.Main, Background: col.Color.Background},
		Cards: make([]cardView, 0, len(col.Cards)),
	}
	for _, card := range col.Cards {
		view.Cards = append(view.Cards, newCardView(card, now))
	}
	return view
}

// newDragView reports where the dragged item is now. A drop keeps the session open,
// so the indices are resolved from the ids rather than taken from where the drag began.
func newDragView(state drag.State, session drag.Session, active bool, board models.Board) dragView {
	view := dragView{State: state.String()}
	if !active {
		return view
	}
	view.Kind = session.Kind.String()
	view.CardID = session.CardID

	if session.Kind == drag.KindCard {
		colIdx, cardIdx := board.LocateCard(session.CardID)
		if colIdx < 0 {
			return view
		}
		view.ColumnID = board.Columns[colIdx].ID
		view.ColumnIndex = &colIdx
		view.CardIndex = &cardIdx
		return view
	}

	view.ColumnID = session.ColumnID
	if colIdx := board.GetColumnIndex(session.ColumnID); colIdx >= 0 {
		view.ColumnIndex = &colIdx
	}
	return view
}

type titleRequest struct {
	Title string `json:"title"`
}

type textRequest struct {
	Text string `json:"text"`
}

type cardRequest struct {
	Text        string `json:"text"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

type themeRequest struct {
	Name string `json:"name"`
}

type prefsRequest struct {
	Name      *string `json:"name"`
	AvatarRef *string `json:"avatarRef"`
}

type dragRequest struct {
	Kind        string `json:"kind"`
	ColumnIndex int    `json:"columnIndex"`
	CardIndex   *int   `json:"cardIndex"`
}
