package fs

import (
	"os"
	"path/filepath"
	"testing"

	"kanbo/internal/kanban/models"
)

func TestReadBoard(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, BoardFile), `# Sprint

## To Do

[Write docs](./cards/write_docs.md)

[Fix bug](./cards/fix_bug.md)

## Done

[Release](./cards/release.md)

[External](https://example.com)
`)
	writeFile(t, filepath.Join(dir, CardsDir, "write_docs.md"), "---\nid: a\n---\n# Write docs\n")
	writeFile(t, filepath.Join(dir, CardsDir, "fix_bug.md"), "# Fix bug\n\nIt crashes.\n")
	writeFile(t, filepath.Join(dir, CardsDir, "release.md"), "---\ndue: 2026-05-01\n---\n# Release\n")

	name, board, err := ReadBoard(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if name != "Sprint" {
		t.Errorf("expected name %q, got %q", "Sprint", name)
	}
	if len(board.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(board.Columns))
	}
	if board.Columns[0].Title != "To Do" || board.Columns[1].Title != "Done" {
		t.Errorf("unexpected column titles %v", (&board).Snapshot().ColumnTitles())
	}
	if len(board.Columns[0].Cards) != 2 {
		t.Fatalf("expected 2 cards in To Do, got %d", len(board.Columns[0].Cards))
	}
	if board.Columns[0].Cards[0].ID != "a" {
		t.Errorf("expected id %q, got %q", "a", board.Columns[0].Cards[0].ID)
	}
	if board.Columns[0].Cards[1].Description != "It crashes." {
		t.Errorf("unexpected description %q", board.Columns[0].Cards[1].Description)
	}
	if len(board.Columns[1].Cards) != 1 {
		t.Fatalf("expected 1 card in Done, got %d", len(board.Columns[1].Cards))
	}
	if board.Columns[1].Cards[0].DueDateString() != "2026-05-01" {
		t.Errorf("unexpected due date %q", board.Columns[1].Cards[0].DueDateString())
	}
}

func TestReadBoard_SkipsMissingCards(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, BoardFile), "# B\n\n## Only\n\n[Gone](./cards/gone.md)\n")

	_, board, err := ReadBoard(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(board.Columns) != 1 {
		t.Fatalf("expected 1 column, got %d", len(board.Columns))
	}
	if len(board.Columns[0].Cards) != 0 {
		t.Errorf("expected no cards, got %d", len(board.Columns[0].Cards))
	}
}

func TestReadBoard_MissingDir(t *testing.T) {
	_, _, err := ReadBoard(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestWriteBoard_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	snapshot := models.Snapshot{Columns: []models.Column{
		{ID: "col1", Title: "To Do", Cards: []models.Card{
			{ID: "c1", Text: "Same name"},
			{ID: "c2", Text: "Same name", Description: "second"},
		}},
		{ID: "col2", Title: "Empty", Cards: []models.Card{}},
	}}

	if err := WriteBoard(dir, "Mine", snapshot); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name, board, err := ReadBoard(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Mine" {
		t.Errorf("expected %q, got %q", "Mine", name)
	}
	if len(board.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(board.Columns))
	}
	cards := board.Columns[0].Cards
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].ID != "c1" || cards[1].ID != "c2" {
		t.Errorf("expected order c1,c2 got %s,%s", cards[0].ID, cards[1].ID)
	}
	if cards[1].Description != "second" {
		t.Errorf("unexpected description %q", cards[1].Description)
	}
	if _, err := os.Stat(filepath.Join(dir, CardsDir, "same_name_2.md")); err != nil {
		t.Errorf("expected deduplicated filename: %v", err)
	}
}

func TestWriteBoard_RoundTripsMarkdownInTitles(t *testing.T) {
	dir := t.TempDir()
	cardTexts := []string{"*bold* task", "Issue #", "Use `go test`", "R&amp;D [draft]", `C:\path`, "#1 priority"}
	var cards []models.Card
	for i, text := range cardTexts {
		cards = append(cards, models.Card{ID: string(rune('a' + i)), Text: text})
	}
	snapshot := models.Snapshot{Columns: []models.Column{
		{ID: "col1", Title: "To Do #", Cards: cards},
		{ID: "col2", Title: "*Doing*", Cards: []models.Card{}},
		{ID: "col3", Title: "_Done_ ##", Cards: []models.Card{}},
	}}

	if err := WriteBoard(dir, "Q3 **launch**", snapshot); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name, board, err := ReadBoard(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Q3 **launch**" {
		t.Errorf("expected name %q, got %q", "Q3 **launch**", name)
	}

	wantTitles := []string{"To Do #", "*Doing*", "_Done_ ##"}
	if len(board.Columns) != len(wantTitles) {
		t.Fatalf("expected %d columns, got %d", len(wantTitles), len(board.Columns))
	}
	for i, want := range wantTitles {
		if board.Columns[i].Title != want {
			t.Errorf("column %d: expected %q, got %q", i, want, board.Columns[i].Title)
		}
	}

	got := board.Columns[0].Cards
	if len(got) != len(cardTexts) {
		t.Fatalf("expected %d cards, got %d", len(cardTexts), len(got))
	}
	for i, want := range cardTexts {
		if got[i].Text != want {
			t.Errorf("card %d: expected %q, got %q", i, want, got[i].Text)
		}
	}
}

func TestWriteBoard_RemovesStaleCards(t *testing.T) {
	dir := t.TempDir()
	first := models.Snapshot{Columns: []models.Column{
		{Title: "A", Cards: []models.Card{{ID: "1", Text: "Keep"}, {ID: "2", Text: "Drop"}}},
	}}
	if err := WriteBoard(dir, "B", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := models.Snapshot{Columns: []models.Column{
		{Title: "A", Cards: []models.Card{{ID: "1", Text: "Keep"}}},
	}}
	if err := WriteBoard(dir, "B", second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, CardsDir, "drop.md")); !os.IsNotExist(err) {
		t.Errorf("expected drop.md to be removed, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, CardsDir, "keep.md")); err != nil {
		t.Errorf("expected keep.md to remain: %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Card Title!", "my_card_title"},
		{"  dashes - and   spaces ", "dashes_and_spaces"},
		{"!!!", "card"},
		{"Café crème", "café_crème"},
	}
	for _, tt := range tests {
		if got := ToSnakeCase(tt.in); got != tt.want {
			t.Errorf("ToSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUniqueFilename(t *testing.T) {
	taken := map[string]bool{}
	if got := UniqueFilename("a", taken); got != "a.md" {
		t.Errorf("expected a.md, got %q", got)
	}
	if got := UniqueFilename("a", taken); got != "a_2.md" {
		t.Errorf("expected a_2.md, got %q", got)
	}
	if got := UniqueFilename("a", taken); got != "a_3.md" {
		t.Errorf("expected a_3.md, got %q", got)
	}
}
