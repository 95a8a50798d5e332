package fs

import (
	"os"
	"path/filepath"
	"strings"

	"kanbo/internal/kanban/models"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// BoardFile is the index file of a board directory
const BoardFile = "board.md"

// CardsDir is the directory holding one markdown file per card
const CardsDir = "cards"

// ReadBoard reads a board.md file and parses it into a Board.
// Columns come from H2 headings, cards from links into ./cards/ below them.
// Column ids are never stored on disk and come back empty.
func ReadBoard(boardPath string) (string, models.Board, error) {
	content, err := os.ReadFile(filepath.Join(boardPath, BoardFile))
	if err != nil {
		return "", models.Board{}, err
	}

	board := models.Board{Columns: []models.Column{}}
	var name string

	reader := text.NewReader(content)
	doc := goldmark.DefaultParser().Parse(reader)

	var currentColumn *models.Column

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			headingText := headingSource(node, content)

			if node.Level == 1 {
				name = headingText
			} else if node.Level == 2 {
				if currentColumn != nil {
					board.Columns = append(board.Columns, *currentColumn)
				}
				currentColumn = &models.Column{
					Title: headingText,
					Cards: []models.Card{},
				}
			}

		case *ast.Link:
			dest := string(node.Destination)
			if strings.HasPrefix(dest, "./"+CardsDir+"/") || strings.HasPrefix(dest, CardsDir+"/") {
				card, err := ReadCard(filepath.Join(boardPath, dest))
				if err == nil && currentColumn != nil {
					currentColumn.Cards = append(currentColumn.Cards, card)
				}
			}
		}

		return ast.WalkContinue, nil
	})

	if currentColumn != nil {
		board.Columns = append(board.Columns, *currentColumn)
	}

	return name, board, nil
}
