package operations

import (
	"sort"
	"strings"

	"kanbo/internal/kanban/models"

	"github.com/sahilm/fuzzy"
)

// FilterCards fuzzy-matches query against every card and returns, per column,
// the indices of matching cards in board order. An empty query matches nothing.
func FilterCards(snapshot models.Snapshot, query string) [][]int {
	result := make([][]int, len(snapshot.Columns))
	if strings.TrimSpace(query) == "" {
		return result
	}

	for colIdx, col := range snapshot.Columns {
		searchStrings := make([]string, len(col.Cards))
		for i, card := range col.Cards {
			searchStrings[i] = cardSearchString(card)
		}

		matches := fuzzy.Find(query, searchStrings)
		indices := make([]int, len(matches))
		for i, match := range matches {
			indices[i] = match.Index
		}
		sort.Ints(indices)
		result[colIdx] = indices
	}

	return result
}

// cardSearchString builds a single string from all card fields for fuzzy matching
func cardSearchString(card models.Card) string {
	parts := []string{card.Text}
	if card.Description != "" {
		parts = append(parts, card.Description)
	}
	if card.DueDate != nil {
		parts = append(parts, "due:"+card.DueDateString())
	}
	return strings.Join(parts, " ")
}
