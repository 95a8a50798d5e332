package models

import "time"

// DateLayout is the calendar-date format used for due dates everywhere
const DateLayout = "2006-01-02"

// DueStatus classifies a card's due date relative to today
type DueStatus int

const (
	DueNone DueStatus = iota
	DueActive
	DueOverdue
)

func (s DueStatus) String() string {
	switch s {
	case DueActive:
		return "active"
	case DueOverdue:
		return "overdue"
	default:
		return "none"
	}
}

// Card represents a single work item owned by exactly one column
type Card struct {
	ID          string     // Immutable once created
	Text        string     // Short title
	Description string     // Optional long-form text
	DueDate     *time.Time // Optional calendar date (time of day is ignored)
}

// CardFields holds the mutable part of a card
type CardFields struct {
	Text        string
	Description string
	DueDate     *time.Time
}

// HasDueDate returns true if the card has a due date
func (c Card) HasDueDate() bool {
	return c.DueDate != nil
}

// DueDateString returns the due date as YYYY-MM-DD, or empty string
func (c Card) DueDateString() string {
	if c.DueDate == nil {
		return ""
	}
	return c.DueDate.Format(DateLayout)
}

// DueStatus reports whether the card is overdue as of now.
// A card due today is still active.
func (c Card) DueStatus(now time.Time) DueStatus {
	if c.DueDate == nil {
		return DueNone
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	due := time.Date(c.DueDate.Year(), c.DueDate.Month(), c.DueDate.Day(), 0, 0, 0, 0, time.Local)
	if due.Before(today) {
		return DueOverdue
	}
	return DueActive
}

// ParseDueDate parses a YYYY-MM-DD string. Empty input yields nil.
func ParseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (c Card) clone() Card {
	if c.DueDate != nil {
		due := *c.DueDate
		c.DueDate = &due
	}
	return c
}
