package operations

import (
	"kanbo/internal/kanban/ids"
	"kanbo/internal/kanban/models"
	"kanbo/internal/kanban/palette"
)

// AddColumn appends an empty column at the end of the board.
// Its colour is taken from pal at the new column's index and is not re-derived later.
func AddColumn(board *models.Board, gen ids.Generator, title string, pal palette.Palette) (models.Column, bool) {
	validatedTitle, ok := ValidateColumnTitle(title)
	if !ok {
		return models.Column{}, false
	}

	column := models.Column{
		ID:    uniqueColumnID(board, gen),
		Title: validatedTitle,
		Cards: []models.Card{},
		Color: pal.At(len(board.Columns)),
	}

	board.Columns = append(board.Columns, column)

	return column, true
}

// RemoveColumn deletes a column together with its cards
func RemoveColumn(board *models.Board, columnID string) bool {
	index := board.GetColumnIndex(columnID)
	if index < 0 {
		return false
	}

	board.Columns = removeAt(board.Columns, index)

	return true
}

// RenameColumn changes a column title (no-op for blank titles)
func RenameColumn(board *models.Board, columnID, newTitle string) bool {
	column := board.GetColumn(columnID)
	if column == nil {
		return false
	}

	validatedTitle, ok := ValidateColumnTitle(newTitle)
	if !ok {
		return false
	}

	column.Title = validatedTitle

	return true
}

func uniqueColumnID(board *models.Board, gen ids.Generator) string {
	for {
		id := gen.NewID()
		if board.GetColumnIndex(id) < 0 {
			return id
		}
	}
}
