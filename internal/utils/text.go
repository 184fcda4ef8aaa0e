package utils

import "strings"

// Truncate shortens text to at most maxLen runes for single-line terminal
// display, appending "..." when anything was cut. Newlines and tabs are
// normalized to spaces first so truncated descriptions stay on one line.
func Truncate(text string, maxLen int) string {
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return strings.TrimSpace(string(runes[:maxLen-3])) + "..."
}
