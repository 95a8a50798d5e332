package fs

import (
	"bytes"
	"os"
	"strings"

	"kanbo/internal/kanban/models"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// cardFrontmatter is the YAML header of a card file
type cardFrontmatter struct {
	ID  string `yaml:"id,omitempty"`
	Due string `yaml:"due,omitempty"`
}

// ReadCard reads a card file and parses its frontmatter and content
func ReadCard(cardPath string) (models.Card, error) {
	content, err := os.ReadFile(cardPath)
	if err != nil {
		return models.Card{}, err
	}

	fm, body := ParseFrontmatter(content)

	title, description := splitTitle(body)

	card := models.Card{
		ID:          fm.ID,
		Text:        title,
		Description: description,
	}

	// An unparseable due date is dropped rather than failing the whole card
	if due, err := models.ParseDueDate(fm.Due); err == nil {
		card.DueDate = due
	}

	return card, nil
}

// ParseFrontmatter extracts YAML frontmatter from markdown content.
// Content without (valid) frontmatter is returned unchanged as the body.
func ParseFrontmatter(content []byte) (cardFrontmatter, []byte) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return cardFrontmatter{}, content
	}

	var frontmatterEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == 0 {
		return cardFrontmatter{}, content
	}

	frontmatterBytes := bytes.Join(lines[1:frontmatterEnd], []byte("\n"))
	var fm cardFrontmatter
	if err := yaml.Unmarshal(frontmatterBytes, &fm); err != nil {
		return cardFrontmatter{}, content
	}

	return fm, bytes.Join(lines[frontmatterEnd+1:], []byte("\n"))
}

// splitTitle returns the first H1 as the title and everything after it as the description
func splitTitle(markdown []byte) (string, string) {
	reader := text.NewReader(markdown)
	doc := goldmark.DefaultParser().Parse(reader)

	var title string
	rest := markdown

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindHeading {
			return ast.WalkContinue, nil
		}
		heading := n.(*ast.Heading)
		if heading.Level != 1 {
			return ast.WalkContinue, nil
		}
		title = headingSource(heading, markdown)
		if lines := heading.Lines(); lines.Len() > 0 {
			rest = markdown[lines.At(lines.Len()-1).Stop:]
		}
		return ast.WalkStop, nil
	})

	if title == "" {
		title = "Untitled"
	}

	return strings.TrimSpace(title), strings.TrimSpace(string(rest))
}
