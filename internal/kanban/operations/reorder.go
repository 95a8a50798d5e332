package operations

import "kanbo/internal/kanban/models"

// MoveCard moves the card at (fromCol, fromCard) to (toCol, toCard).
//
// The card is removed first and toCard is applied to the resulting sequence, clamped to
// its length, so that toCard == len(cards) always appends. A move that would leave the
// card where it is and out-of-range indices are no-ops. Both columns are replaced in one step; no state with
// the card missing or duplicated is ever stored on the board.
func MoveCard(board *models.Board, fromCol, fromCard, toCol, toCard int) bool {
	if !board.ValidCardIndex(fromCol, fromCard) {
		return false
	}
	if !board.ValidColumnIndex(toCol) || toCard < 0 {
		return false
	}
	if fromCol == toCol && fromCard == toCard {
		return false
	}

	source := board.Columns[fromCol].Cards
	card := source[fromCard]
	remaining := removeAt(source, fromCard)

	if fromCol == toCol {
		target := clamp(toCard, len(remaining))
		if target == fromCard {
			return false
		}
		board.Columns[fromCol].Cards = insertAt(remaining, target, card)
		return true
	}

	destination := board.Columns[toCol].Cards
	moved := insertAt(destination, clamp(toCard, len(destination)), card)

	board.Columns[fromCol].Cards = remaining
	board.Columns[toCol].Cards = moved

	return true
}

// MoveColumn moves a column from one position to another with the same
// remove-then-insert rule as MoveCard.
func MoveColumn(board *models.Board, fromIndex, toIndex int) bool {
	if !board.ValidColumnIndex(fromIndex) || toIndex < 0 {
		return false
	}
	target := clamp(toIndex, len(board.Columns)-1)
	if target == fromIndex {
		return false
	}

	column := board.Columns[fromIndex]
	remaining := removeAt(board.Columns, fromIndex)
	board.Columns = insertAt(remaining, target, column)

	return true
}

func clamp(index, length int) int {
	if index > length {
		return length
	}
	return index
}

func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

func insertAt[T any](s []T, i int, v T) []T {
	out := make([]T, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, v)
	return append(out, s[i:]...)
}
