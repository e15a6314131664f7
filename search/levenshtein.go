package search

import (
	"strings"
	"unicode/utf8"
)

// Levenshtein returns the minimum number of single-rune insertions,
// deletions and substitutions that turn a into b.
//
// Algorithm Outline (rolling rows):
//  1. Let a be the longer and b the shorter rune sequence (distance is symmetric).
//  2. prev[j] = j for j = 0..|b| (distance from "" to b[:j]).
//  3. For i = 1..|a|:
//     curr[0] = i
//     curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost), cost = 0 if a[i-1]==b[j-1] else 1
//     swap(prev, curr)
//  4. distance = prev[|b|].
//
// Complexity: Time O(|a|·|b|), Memory O(min(|a|,|b|)).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// LevenshteinMatrix returns the full DP table D of size (|a|+1)×(|b|+1) in
// runes, where D[i][j] is the edit distance between a[:i] and b[:j].
// D[|a|][|b|] equals Levenshtein(a, b).
//
// Complexity: Time O(|a|·|b|), Memory O(|a|·|b|).
func LevenshteinMatrix(a, b string) [][]int {
	ra, rb := []rune(a), []rune(b)
	d := make([][]int, len(ra)+1)
	for i := range d {
		d[i] = make([]int, len(rb)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
		}
	}

	return d
}

// Similarity returns 1 − Levenshtein(a', b') / max(|a'|, |b'|) where a' and
// b' are the lower-cased inputs and lengths count runes. Two empty strings
// have similarity 1.
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)

	return similarity(Levenshtein(a, b), a, b)
}

// similarity applies the normalization to an already computed distance.
func similarity(dist int, a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(dist)/float64(longest)
}
