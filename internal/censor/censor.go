package censor

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Censor returns text with every occurrence of a wl entry masked. Matching
// is case-insensitive. Word entries work on whole tokens and never match
// inside a longer word. Literal entries with symbols match their exact
// folded runes, bounded like words where they start or end with a word
// character. Each masked rune becomes MaskRune; everything else, separators
// inside a matched phrase included, is copied unchanged. A nil or empty
// list returns text as is.
func Censor(text string, wl *WordList) string {
	out, _ := censor(text, wl)
	return out
}

// censor also reports how many entries were masked.
func censor(text string, wl *WordList) (string, int) {
	if text == "" || wl.Len() == 0 {
		return text, 0
	}

	var (
		marks  []span
		masked int
	)
	if wl.depth > 0 {
		spans, n := wl.matchTokens(text)
		marks = append(marks, spans...)
		masked += n
	}
	if len(wl.literals) > 0 {
		spans, n := wl.matchLiterals(text)
		marks = append(marks, spans...)
		masked += n
	}
	if len(marks) == 0 {
		return text, 0
	}

	slices.SortFunc(marks, func(a, b span) int { return a.start - b.start })

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, sp := range marks {
		if sp.end <= last {
			continue
		}
		from := max(sp.start, last)
		b.WriteString(text[last:from])
		writeMask(&b, utf8.RuneCountInString(text[from:sp.end]))
		last = sp.end
	}
	b.WriteString(text[last:])
	return b.String(), masked
}

// matchTokens returns the spans of tokens covered by word entries, longest
// entry first at each token, and the number of tokens masked.
func (wl *WordList) matchTokens(text string) ([]span, int) {
	spans := tokenize(text)
	if len(spans) == 0 {
		return nil, 0
	}

	folded := make([]string, len(spans))
	for i, sp := range spans {
		folded[i] = fold(text[sp.start:sp.end])
	}

	var out []span
	for i := 0; i < len(spans); {
		n := wl.match(folded[i:])
		if n == 0 {
			i++
			continue
		}
		out = append(out, spans[i:i+n]...)
		i += n
	}
	return out, len(out)
}

func writeMask(b *strings.Builder, n int) {
	for range n {
		b.WriteRune(MaskRune)
	}
}
