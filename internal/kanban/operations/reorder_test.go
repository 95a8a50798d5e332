package operations

import (
	"sort"
	"testing"

	"kanbo/internal/kanban/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveCard_AcrossColumns(t *testing.T) {
	board := newBoard([]string{"A", "B"}, nil)

	require.True(t, MoveCard(board, 0, 0, 1, 0))

	assert.Equal(t, []string{"B"}, cardTexts(board.Columns[0]))
	assert.Equal(t, []string{"A"}, cardTexts(board.Columns[1]))
}

func TestMoveCard_SameColumn(t *testing.T) {
	board := newBoard([]string{"X", "Y", "Z"})

	require.True(t, MoveCard(board, 0, 0, 0, 2))

	assert.Equal(t, []string{"Y", "Z", "X"}, cardTexts(board.Columns[0]))
}

func TestMoveCard_Table(t *testing.T) {
	tests := []struct {
		name                             string
		fromCol, fromCard, toCol, toCard int
		wantApplied                      bool
		want                             [][]string
	}{
		{"move up", 0, 2, 0, 0, true, [][]string{{"C", "A", "B"}, {"D", "E"}}},
		{"move down one", 0, 0, 0, 1, true, [][]string{{"B", "A", "C"}, {"D", "E"}}},
		{"end of own column", 0, 0, 0, 3, true, [][]string{{"B", "C", "A"}, {"D", "E"}}},
		{"clamped past end", 0, 1, 0, 99, true, [][]string{{"A", "C", "B"}, {"D", "E"}}},
		{"into middle of other", 0, 0, 1, 1, true, [][]string{{"B", "C"}, {"D", "A", "E"}}},
		{"end of other", 1, 0, 0, 3, true, [][]string{{"A", "B", "C", "D"}, {"E"}}},
		{"identical coords", 0, 1, 0, 1, false, [][]string{{"A", "B", "C"}, {"D", "E"}}},
		{"last card to end of own column", 0, 2, 0, 3, false, [][]string{{"A", "B", "C"}, {"D", "E"}}},
		{"last card clamped onto itself", 1, 1, 1, 99, false, [][]string{{"A", "B", "C"}, {"D", "E"}}},
		{"bad source column", 5, 0, 0, 0, false, [][]string{{"A", "B", "C"}, {"D", "E"}}},
		{"bad source card", 1, 2, 0, 0, false, [][]string{{"A", "B", "C"}, {"D", "E"}}},
		{"bad target column", 0, 0, 2, 0, false, [][]string{{"A", "B", "C"}, {"D", "E"}}},
		{"negative target", 0, 0, 1, -1, false, [][]string{{"A", "B", "C"}, {"D", "E"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := newBoard([]string{"A", "B", "C"}, []string{"D", "E"})
			applied := MoveCard(board, tt.fromCol, tt.fromCard, tt.toCol, tt.toCard)
			assert.Equal(t, tt.wantApplied, applied)
			assert.Equal(t, 5, board.CardCount())
			for i, want := range tt.want {
				assert.Equal(t, want, cardTexts(board.Columns[i]), "column %d", i)
			}
		})
	}
}

func TestMoveCard_IntoEmptyColumn(t *testing.T) {
	board := newBoard([]string{"A"}, nil)

	require.True(t, MoveCard(board, 0, 0, 1, len(board.Columns[1].Cards)))

	assert.Empty(t, board.Columns[0].Cards)
	assert.Equal(t, []string{"A"}, cardTexts(board.Columns[1]))
}

// Card slices handed out by earlier snapshots must never be mutated by a move
func TestMoveCard_DoesNotAliasSnapshots(t *testing.T) {
	board := newBoard([]string{"A", "B", "C"}, []string{"D"})
	before := board.Snapshot()
	sharedCards := board.Columns[0].Cards

	require.True(t, MoveCard(board, 0, 0, 1, 0))

	assert.Equal(t, []string{"A", "B", "C"}, cardTexts(before.Columns[0]))
	assert.Equal(t, "A", sharedCards[0].Text)
}

// Conservation: any sequence of moves keeps the multiset of card ids
func TestMoveCard_Conservation(t *testing.T) {
	board := newBoard([]string{"A", "B", "C"}, []string{"D"}, nil)
	original := sortedIDs(board)

	moves := [][4]int{
		{0, 0, 2, 0}, {0, 1, 1, 0}, {1, 1, 0, 0}, {2, 0, 2, 5},
		{0, 0, 0, 0}, {1, 0, 2, 1}, {2, 1, 0, 9}, {9, 9, 9, 9},
	}
	for _, m := range moves {
		MoveCard(board, m[0], m[1], m[2], m[3])
		assert.Equal(t, original, sortedIDs(board))
		assertUniqueIDs(t, board)
	}
}

// No-op identity: rejected moves leave the snapshot unchanged
func TestMoveCard_NoOpIdentity(t *testing.T) {
	board := newBoard([]string{"A", "B"}, []string{"C"})
	before := board.Snapshot()

	assert.False(t, MoveCard(board, 0, 0, 0, 0))
	assert.False(t, MoveCard(board, 1, 1, 0, 0))
	assert.False(t, MoveCard(board, -1, 0, 0, 0))

	assert.Equal(t, before, board.Snapshot())
}

func TestMoveColumn(t *testing.T) {
	tests := []struct {
		name        string
		from, to    int
		wantApplied bool
		want        []string
	}{
		{"first to last", 0, 2, true, []string{"col2", "col3", "col1"}},
		{"last to first", 2, 0, true, []string{"col3", "col1", "col2"}},
		{"clamped", 0, 10, true, []string{"col2", "col3", "col1"}},
		{"same index", 1, 1, false, []string{"col1", "col2", "col3"}},
		{"last clamped onto itself", 2, 10, false, []string{"col1", "col2", "col3"}},
		{"bad from", 3, 0, false, []string{"col1", "col2", "col3"}},
		{"negative to", 0, -1, false, []string{"col1", "col2", "col3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := newBoard([]string{"A"}, []string{"B"}, []string{"C"})
			assert.Equal(t, tt.wantApplied, MoveColumn(board, tt.from, tt.to))
			got := []string{}
			for _, col := range board.Columns {
				got = append(got, col.ID)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 3, board.CardCount())
		})
	}
}

func TestMoveColumn_KeepsColours(t *testing.T) {
	board := newBoard(nil, nil)
	first := board.Columns[0].Color

	require.True(t, MoveColumn(board, 0, 1))

	assert.Equal(t, first, board.Columns[1].Color, "colour travels with the column")
}

func sortedIDs(board *models.Board) []string {
	ids := board.Snapshot().CardIDs()
	sort.Strings(ids)
	return ids
}
