package fs

import (
	"bytes"
	"os"

	"kanbo/internal/kanban/models"

	"gopkg.in/yaml.v3"
)

// WriteCard writes a Card to a markdown file with frontmatter
func WriteCard(card models.Card, path string) error {
	var buf bytes.Buffer

	if card.ID != "" || card.DueDate != nil {
		frontmatter := cardFrontmatter{
			ID:  card.ID,
			Due: card.DueDateString(),
		}

		yamlBytes, err := yaml.Marshal(frontmatter)
		if err != nil {
			return err
		}

		buf.WriteString("---\n")
		buf.Write(yamlBytes)
		buf.WriteString("---\n\n")
	}

	buf.WriteString("# ")
	buf.WriteString(escapeHeading(card.Text))
	buf.WriteString("\n")

	if card.Description != "" {
		buf.WriteString("\n")
		buf.WriteString(card.Description)
		buf.WriteString("\n")
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}
