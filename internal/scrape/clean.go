package scrape

import (
	"strings"
	"unicode"
)

// CleanText collapses every whitespace run, newlines included, into a single
// space and trims the ends. Empty input yields an empty string. The function
// is idempotent, so extractors can apply it without tracking prior cleaning.
func CleanText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}
