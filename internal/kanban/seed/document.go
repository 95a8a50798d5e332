package seed

import (
	"encoding/json"
	"fmt"

	"kanbo/internal/kanban/models"
)

// Document is the JSON shape of a seeded board:
// [{"title": ..., "cards": [{"text": ..., "description": ..., "dueDate": "YYYY-MM-DD"}]}]
type Document []ColumnDoc

type ColumnDoc struct {
	Title string    `json:"title"`
	Cards []CardDoc `json:"cards"`
}

type CardDoc struct {
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// Decode parses a board document. Unparseable due dates are dropped.
func Decode(data []byte) ([]models.Column, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode board document: %w", err)
	}

	columns := make([]models.Column, 0, len(doc))
	for _, colDoc := range doc {
		col := models.Column{Title: colDoc.Title, Cards: make([]models.Card, 0, len(colDoc.Cards))}
		for _, cardDoc := range colDoc.Cards {
			card := models.Card{Text: cardDoc.Text, Description: cardDoc.Description}
			if due, err := models.ParseDueDate(cardDoc.DueDate); err == nil {
				card.DueDate = due
			}
			col.Cards = append(col.Cards, card)
		}
		columns = append(columns, col)
	}
	return columns, nil
}

// Encode renders a snapshot as a board document
func Encode(snapshot models.Snapshot) ([]byte, error) {
	doc := make(Document, 0, len(snapshot.Columns))
	for _, col := range snapshot.Columns {
		colDoc := ColumnDoc{Title: col.Title, Cards: make([]CardDoc, 0, len(col.Cards))}
		for _, card := range col.Cards {
			colDoc.Cards = append(colDoc.Cards, CardDoc{
				Text:        card.Text,
				Description: card.Description,
				DueDate:     card.DueDateString(),
			})
		}
		doc = append(doc, colDoc)
	}
	return json.MarshalIndent(doc, "", "  ")
}
