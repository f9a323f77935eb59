package service

import "regexp"

var (
	decorationPattern = regexp.MustCompile(`[*-]`)

	// List numbering such as "1. " or "12." anywhere in a line. Line breaks
	// after the period are kept so records stay on separate lines.
	numberingPattern = regexp.MustCompile(`\d+\.[^\S\r\n]*`)
)

// Normalize strips decoration characters and list numbering from a raw
// completion. Every '*' and '-' goes, including hyphens inside words and
// price ranges; callers rely on that being lossy in exactly this way.
func Normalize(raw string) string {
	text := decorationPattern.ReplaceAllString(raw, "")
	return numberingPattern.ReplaceAllString(text, "")
}
