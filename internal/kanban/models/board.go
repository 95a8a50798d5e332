package models

// ColorPair is the presentation-only colour assignment of a column
type ColorPair struct {
	Main       string // Accent colour, e.g. "#4A90E2"
	Background string // Column background, e.g. "#F0F5FF"
}

// Column is a named, ordered list of cards
type Column struct {
	ID    string
	Title string
	Cards []Card
	Color ColorPair
}

// Board is the root of ownership: an ordered list of columns
type Board struct {
	Columns []Column
}

// GetColumn returns a pointer to the column with the given id
func (b *Board) GetColumn(id string) *Column {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return &b.Columns[i]
		}
	}
	return nil
}

// GetColumnIndex returns the index of the column with the given id
func (b *Board) GetColumnIndex(id string) int {
	for i := range b.Columns {
		if b.Columns[i].ID == id {
			return i
		}
	}
	return -1
}

// GetCardIndex returns the index of a card inside a column, or -1
func (c *Column) GetCardIndex(id string) int {
	for i := range c.Cards {
		if c.Cards[i].ID == id {
			return i
		}
	}
	return -1
}

// LocateCard finds a card anywhere on the board.
// Returns (-1, -1) when the card does not exist.
func (b *Board) LocateCard(cardID string) (int, int) {
	for colIdx := range b.Columns {
		if cardIdx := b.Columns[colIdx].GetCardIndex(cardID); cardIdx >= 0 {
			return colIdx, cardIdx
		}
	}
	return -1, -1
}

// ValidColumnIndex checks if index points at an existing column
func (b *Board) ValidColumnIndex(index int) bool {
	return index >= 0 && index < len(b.Columns)
}

// ValidCardIndex checks if (colIndex, cardIndex) points at an existing card
func (b *Board) ValidCardIndex(colIndex, cardIndex int) bool {
	if !b.ValidColumnIndex(colIndex) {
		return false
	}
	return cardIndex >= 0 && cardIndex < len(b.Columns[colIndex].Cards)
}

// CardCount returns the total number of cards across all columns
func (b *Board) CardCount() int {
	total := 0
	for _, col := range b.Columns {
		total += len(col.Cards)
	}
	return total
}

func (c Column) clone() Column {
	cards := make([]Card, len(c.Cards))
	for i, card := range c.Cards {
		cards[i] = card.clone()
	}
	c.Cards = cards
	return c
}
