package fs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"kanbo/internal/kanban/models"
)

// WriteBoard writes a snapshot to boardPath/board.md and one file per card in boardPath/cards.
// Card files left over from an earlier write that are no longer linked are removed.
func WriteBoard(boardPath, name string, snapshot models.Snapshot) error {
	cardsDir := filepath.Join(boardPath, CardsDir)
	if err := os.MkdirAll(cardsDir, 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	taken := make(map[string]bool)

	buf.WriteString("# ")
	buf.WriteString(escapeHeading(name))
	buf.WriteString("\n\n")

	for _, column := range snapshot.Columns {
		buf.WriteString("## ")
		buf.WriteString(escapeHeading(column.Title))
		buf.WriteString("\n\n")

		for _, card := range column.Cards {
			filename := UniqueFilename(ToSnakeCase(card.Text), taken)
			if err := WriteCard(card, filepath.Join(cardsDir, filename)); err != nil {
				return err
			}

			buf.WriteString("[")
			buf.WriteString(escapeLinkText(card.Text))
			buf.WriteString("](./")
			buf.WriteString(CardsDir)
			buf.WriteString("/")
			buf.WriteString(filename)
			buf.WriteString(")\n\n")
		}
	}

	if err := os.WriteFile(filepath.Join(boardPath, BoardFile), buf.Bytes(), 0644); err != nil {
		return err
	}

	return removeStaleCards(cardsDir, taken)
}

func removeStaleCards(cardsDir string, keep map[string]bool) error {
	entries, err := os.ReadDir(cardsDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") || keep[entry.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(cardsDir, entry.Name())); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func escapeLinkText(s string) string {
	s = strings.ReplaceAll(s, "[", `\[`)
	return strings.ReplaceAll(s, "]", `\]`)
}
