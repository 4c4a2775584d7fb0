package censor

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// foldedText is text folded rune by rune, keeping the link from every
// folded rune back to the source rune it came from.
type foldedText struct {
	runes  []rune // source runes
	offs   []int  // byte offset of each source rune, plus len(text)
	folded []rune
	first  []int // index into folded of each source rune, plus len(folded)
	owner  []int // source rune index of each folded rune
}

func newFoldedText(text string) *foldedText {
	ft := &foldedText{
		runes:  make([]rune, 0, len(text)),
		offs:   make([]int, 0, len(text)+1),
		folded: make([]rune, 0, len(text)),
		first:  make([]int, 0, len(text)+1),
		owner:  make([]int, 0, len(text)),
	}
	c := cases.Fold()
	for i, r := range text {
		idx := len(ft.runes)
		ft.runes = append(ft.runes, r)
		ft.offs = append(ft.offs, i)
		ft.first = append(ft.first, len(ft.folded))

		if r < utf8.RuneSelf {
			ft.folded = append(ft.folded, unicode.ToLower(r))
			ft.owner = append(ft.owner, idx)
			continue
		}
		for _, f := range c.String(string(r)) {
			ft.folded = append(ft.folded, f)
			ft.owner = append(ft.owner, idx)
		}
	}
	ft.offs = append(ft.offs, len(text))
	ft.first = append(ft.first, len(ft.folded))
	return ft
}

// matchLiterals finds literal entries in text, longest first at each
// position, and returns the byte spans of the matched non-space runes
// together with the number of matches.
func (wl *WordList) matchLiterals(text string) ([]span, int) {
	ft := newFoldedText(text)

	var (
		out []span
		n   int
	)
	for s := 0; s < len(ft.runes); {
		end := -1
		for _, lit := range wl.literals {
			if e, ok := ft.matchAt(lit, s); ok && e > end {
				end = e
			}
		}
		if end < 0 {
			s++
			continue
		}
		for k := s; k < end; k++ {
			if !unicode.IsSpace(ft.runes[k]) {
				out = append(out, span{ft.offs[k], ft.offs[k+1]})
			}
		}
		n++
		s = end
	}
	return out, n
}

// matchAt reports whether lit matches at source rune s and returns the
// source rune index just past the match. A space in lit matches any
// whitespace run. An edge of lit that is a word rune must not touch
// another word rune, so "a$$" never matches inside "ba$$".
func (ft *foldedText) matchAt(lit []rune, s int) (int, bool) {
	if isWordRune(lit[0]) && s > 0 && isWordRune(ft.runes[s-1]) {
		return 0, false
	}

	p := ft.first[s]
	for _, want := range lit {
		if want == ' ' {
			if p >= len(ft.folded) || !unicode.IsSpace(ft.folded[p]) {
				return 0, false
			}
			for p < len(ft.folded) && unicode.IsSpace(ft.folded[p]) {
				p++
			}
			continue
		}
		if p >= len(ft.folded) || ft.folded[p] != want {
			return 0, false
		}
		p++
	}

	end := len(ft.runes)
	if p < len(ft.folded) {
		end = ft.owner[p]
		if ft.first[end] != p {
			// the match stops inside the fold of one source rune
			return 0, false
		}
	}
	if isWordRune(lit[len(lit)-1]) && end < len(ft.runes) && isWordRune(ft.runes[end]) {
		return 0, false
	}
	return end, true
}
