package domain

import (
	"strings"
)

// NormalizeText prepares word text for duplicate detection:
//   - trims surrounding whitespace
//   - lowercases
//   - collapses any run of whitespace (spaces, tabs, newlines) into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}
