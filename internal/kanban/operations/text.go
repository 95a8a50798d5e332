package operations

import "strings"

// Input limits
const (
	MaxCardTextLength        = 100
	MaxCardDescriptionLength = 250
	MaxColumnTitleLength     = 50
)

// ValidateColumnTitle trims a column title and enforces the length limit.
// Returns false when nothing is left after trimming.
func ValidateColumnTitle(title string) (string, bool) {
	return normalizeText(title, MaxColumnTitleLength)
}

// ValidateCardText trims a card title and enforces the length limit.
// Returns false when nothing is left after trimming.
func ValidateCardText(text string) (string, bool) {
	return normalizeText(text, MaxCardTextLength)
}

func normalizeText(s string, limit int) (string, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", false
	}
	return Truncate(trimmed, limit), true
}

// Truncate cuts s to at most limit runes
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit]))
}
