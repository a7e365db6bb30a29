// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match compares song metadata strings tolerantly of case,
// diacritics, and minor spelling differences.
package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so "Beyoncé"
// and "Beyonce" normalize identically.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize lowercases s, strips diacritics and any rune that is not a
// letter, digit, underscore, or space, and trims surrounding whitespace.
func Normalize(s string) string {
	s, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		// Decomposition never fails for valid UTF-8; fall back to the
		// lowercased input for anything else.
		s = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Similarity returns a score in [0, 1] for how closely a and b match after
// normalization. Identical normalized strings score 1; otherwise the score
// is 1 - editDistance/maxLen. Empty input on either side scores 0.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	na := []rune(Normalize(a))
	nb := []rune(Normalize(b))
	if string(na) == string(nb) {
		return 1
	}

	maxLen := len(na)
	if len(nb) > maxLen {
		maxLen = len(nb)
	}
	if maxLen == 0 {
		return 0
	}
	return float64(maxLen-levenshtein(na, nb)) / float64(maxLen)
}

// levenshtein computes the edit distance between two rune slices using the
// two-row dynamic programming form.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, min(prev[j]+1, curr[j-1]+1))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
