package models

// Snapshot is a deep copy of the board taken between operations.
// Mutating a snapshot never affects the board it was taken from.
type Snapshot struct {
	Columns []Column
}

// Snapshot copies the current board state
func (b *Board) Snapshot() Snapshot {
	columns := make([]Column, len(b.Columns))
	for i, col := range b.Columns {
		columns[i] = col.clone()
	}
	return Snapshot{Columns: columns}
}

// Board turns a snapshot back into an independent board value
func (s Snapshot) Board() Board {
	b := Board{Columns: s.Columns}
	return Board{Columns: b.Snapshot().Columns}
}

// CardCount returns the total number of cards in the snapshot
func (s Snapshot) CardCount() int {
	b := Board{Columns: s.Columns}
	return b.CardCount()
}

// CardIDs returns every card id in board order
func (s Snapshot) CardIDs() []string {
	var ids []string
	for _, col := range s.Columns {
		for _, card := range col.Cards {
			ids = append(ids, card.ID)
		}
	}
	return ids
}

// ColumnTitles returns the column titles in board order
func (s Snapshot) ColumnTitles() []string {
	titles := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		titles[i] = col.Title
	}
	return titles
}
