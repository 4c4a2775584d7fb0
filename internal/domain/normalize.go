package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares a censor word or phrase for storage and comparison:
// surrounding whitespace is trimmed, letters are lowercased and any inner
// whitespace run becomes a single space. Diacritics, hyphens and apostrophes
// are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevSpace = true
			continue
		}
		prevSpace = false
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
