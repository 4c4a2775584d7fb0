// Package censor redacts forbidden words from free text.
//
// A WordList is an immutable compiled snapshot. Filter holds the current
// snapshot and swaps it atomically on Reload, so readers never observe a
// partially built list.
package censor

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// MaskRune replaces every rune of a matched word.
const MaskRune = '*'

type node struct {
	children map[string]*node
	terminal bool
}

// WordList is a compiled, read-only set of forbidden words and phrases.
// Entries made only of word characters are matched per token after Unicode
// case folding; a phrase entry is a sequence of tokens. Entries containing
// symbols, such as "a$$" or "sh!t", are matched as literal folded rune
// sequences instead.
type WordList struct {
	root     *node
	words    []string
	depth    int
	literals [][]rune
	litKeys  map[string]struct{}
}

// Compile builds a WordList. Blank entries and entries made only of
// punctuation are ignored; duplicates collapse. Inner whitespace runs are
// normalized to one space.
func Compile(words []string) *WordList {
	wl := &WordList{root: &node{}, litKeys: map[string]struct{}{}}
	seen := make(map[string]struct{}, len(words))

	for _, w := range words {
		fields := strings.Fields(w)
		if len(fields) == 0 {
			continue
		}

		if !isTokenEntry(fields) {
			key := fold(strings.Join(fields, " "))
			if !hasContent(key) {
				continue
			}
			if _, ok := wl.litKeys[key]; ok {
				continue
			}
			wl.litKeys[key] = struct{}{}
			wl.literals = append(wl.literals, []rune(key))
			wl.words = append(wl.words, key)
			continue
		}

		toks := make([]string, len(fields))
		for i, f := range fields {
			toks[i] = fold(f)
		}
		key := strings.Join(toks, " ")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		n := wl.root
		for _, t := range toks {
			if n.children == nil {
				n.children = make(map[string]*node)
			}
			next, ok := n.children[t]
			if !ok {
				next = &node{}
				n.children[t] = next
			}
			n = next
		}
		n.terminal = true
		wl.words = append(wl.words, key)
		wl.depth = max(wl.depth, len(toks))
	}

	slices.Sort(wl.words)
	return wl
}

// isTokenEntry reports whether every field is a single run of word runes.
func isTokenEntry(fields []string) bool {
	for _, f := range fields {
		for _, r := range f {
			if !isWordRune(r) {
				return false
			}
		}
	}
	return true
}

// hasContent reports whether s has a rune other than whitespace or
// punctuation.
func hasContent(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) && !unicode.IsPunct(r) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct entries.
func (wl *WordList) Len() int {
	if wl == nil {
		return 0
	}
	return len(wl.words)
}

// Words returns the normalized entries in sorted order.
func (wl *WordList) Words() []string {
	if wl == nil {
		return nil
	}
	return slices.Clone(wl.words)
}

// Contains reports whether w, after normalization, is an entry.
func (wl *WordList) Contains(w string) bool {
	if wl.Len() == 0 {
		return false
	}
	fields := strings.Fields(w)
	if len(fields) == 0 {
		return false
	}
	if !isTokenEntry(fields) {
		_, ok := wl.litKeys[fold(strings.Join(fields, " "))]
		return ok
	}
	n := wl.root
	for _, f := range fields {
		n = n.children[fold(f)]
		if n == nil {
			return false
		}
	}
	return n.terminal
}

// match returns how many leading tokens of folded form the longest entry,
// or 0 when none does.
func (wl *WordList) match(folded []string) int {
	n := wl.root
	best := 0
	for i := 0; i < len(folded) && i < wl.depth; i++ {
		n = n.children[folded[i]]
		if n == nil {
			break
		}
		if n.terminal {
			best = i + 1
		}
	}
	return best
}

// span is the byte range of one token inside the source text.
type span struct {
	start, end int
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}

// tokenize returns the spans of maximal word-rune runs in s.
func tokenize(s string) []span {
	res := make([]span, 0, 16)
	start := -1
	for i, r := range s {
		if isWordRune(r) {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			res = append(res, span{start, i})
			start = -1
		}
	}
	if start != -1 {
		res = append(res, span{start, len(s)})
	}
	return res
}

func foldTokens(s string) []string {
	spans := tokenize(s)
	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		out = append(out, fold(s[sp.start:sp.end]))
	}
	return out
}

// fold applies Unicode full case folding. A Caser is not safe for
// concurrent use, so one is created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
