package seed

import (
	"context"
	"time"

	"kanbo/internal/kanban/models"
)

// Fallback is the fixed sample board used when no other source answers
type Fallback struct {
	Now func() time.Time
}

func (Fallback) Name() string { return "sample" }

// Fetch never fails
func (f Fallback) Fetch(context.Context) ([]models.Column, error) {
	now := time.Now()
	if f.Now != nil {
		now = f.Now()
	}
	today := dateOnly(now)
	pastDue := today.AddDate(0, 0, -5)

	return []models.Column{
		{Title: "To Do", Cards: []models.Card{
			{Text: "Setup project", Description: "Initialize repository and install dependencies."},
			{Text: "Create components", Description: "Build reusable UI components for the design system.", DueDate: &today},
		}},
		{Title: "In Progress", Cards: []models.Card{
			{Text: "Design landing page", Description: "Create mockups and wireframes in Figma for the main landing page."},
		}},
		{Title: "Done", Cards: []models.Card{
			{Text: "Define project scope", Description: "Initial planning meeting and document creation with stakeholders.", DueDate: &pastDue},
		}},
	}, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
