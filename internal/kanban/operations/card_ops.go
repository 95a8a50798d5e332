package operations

import (
	"strings"

	"kanbo/internal/kanban/ids"
	"kanbo/internal/kanban/models"
)

// AddCard puts a new card at the front of a column
func AddCard(board *models.Board, gen ids.Generator, columnID, text string) (models.Card, bool) {
	column := board.GetColumn(columnID)
	if column == nil {
		return models.Card{}, false
	}

	validatedText, ok := ValidateCardText(text)
	if !ok {
		return models.Card{}, false
	}

	card := models.Card{
		ID:   uniqueCardID(board, gen),
		Text: validatedText,
	}

	column.Cards = insertAt(column.Cards, 0, card)

	return card, true
}

// UpdateCard replaces the mutable fields of a card in place.
// A blank text keeps the previous title; description and due date are always replaced.
func UpdateCard(board *models.Board, columnID, cardID string, fields models.CardFields) bool {
	column := board.GetColumn(columnID)
	if column == nil {
		return false
	}

	cardIndex := column.GetCardIndex(cardID)
	if cardIndex < 0 {
		return false
	}

	card := &column.Cards[cardIndex]
	if text, ok := ValidateCardText(fields.Text); ok {
		card.Text = text
	}
	card.Description = Truncate(strings.TrimSpace(fields.Description), MaxCardDescriptionLength)

	if fields.DueDate != nil {
		due := *fields.DueDate
		card.DueDate = &due
	} else {
		card.DueDate = nil
	}

	return true
}

// RemoveCard deletes a card from a column
func RemoveCard(board *models.Board, columnID, cardID string) bool {
	column := board.GetColumn(columnID)
	if column == nil {
		return false
	}

	cardIndex := column.GetCardIndex(cardID)
	if cardIndex < 0 {
		return false
	}

	column.Cards = removeAt(column.Cards, cardIndex)

	return true
}

func uniqueCardID(board *models.Board, gen ids.Generator) string {
	for {
		id := gen.NewID()
		if colIdx, _ := board.LocateCard(id); colIdx < 0 {
			return id
		}
	}
}
