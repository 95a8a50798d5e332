package operations

import (
	"strings"

	"kanbo/internal/kanban/ids"
	"kanbo/internal/kanban/models"
	"kanbo/internal/kanban/palette"
)

// ApplyPalette re-derives every column colour from its current index.
// Column order and content are left untouched.
func ApplyPalette(board *models.Board, pal palette.Palette) {
	for i := range board.Columns {
		board.Columns[i].Color = pal.At(i)
	}
}

// BuildBoard turns seeded content into a board.
// Every column and card gets a fresh identifier so that seeded ids can never collide,
// and colours are assigned from pal by index. Columns with a blank title and cards with
// a blank text are dropped.
func BuildBoard(content []models.Column, gen ids.Generator, pal palette.Palette) models.Board {
	board := models.Board{Columns: []models.Column{}}

	for _, seeded := range content {
		column, ok := AddColumn(&board, gen, seeded.Title, pal)
		if !ok {
			continue
		}

		target := board.GetColumn(column.ID)
		for _, seededCard := range seeded.Cards {
			text, ok := ValidateCardText(seededCard.Text)
			if !ok {
				continue
			}
			card := models.Card{
				ID:          uniqueCardID(&board, gen),
				Text:        text,
				Description: Truncate(strings.TrimSpace(seededCard.Description), MaxCardDescriptionLength),
			}
			if seededCard.DueDate != nil {
				due := *seededCard.DueDate
				card.DueDate = &due
			}
			target.Cards = append(target.Cards, card)
		}
	}

	return board
}
