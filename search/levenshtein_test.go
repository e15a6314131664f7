package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevenshtein_KnownValues checks textbook distances.
func TestLevenshtein_KnownValues(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"same", "same", 0},
		{"gumbo", "gambol", 2},
		{"book", "back", 2},
		{"naïve", "naive", 1}, // one rune differs, not two bytes
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, search.Levenshtein(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

// randomWord returns a short word over a small alphabet so that
// distances between random words are interesting.
func randomWord(r *rand.Rand) string {
	const alphabet = "abcd"
	n := r.Intn(8)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}

	return string(b)
}

// TestLevenshtein_MetricLaws checks identity, symmetry, the triangle
// inequality and agreement with the full matrix on random words.
func TestLevenshtein_MetricLaws(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for i := 0; i < 300; i++ {
		a, b, c := randomWord(r), randomWord(r), randomWord(r)

		ab := search.Levenshtein(a, b)
		assert.Zero(t, search.Levenshtein(a, a))
		assert.Equal(t, ab, search.Levenshtein(b, a), "symmetry %q %q", a, b)
		assert.LessOrEqual(t, search.Levenshtein(a, c), ab+search.Levenshtein(b, c), "triangle %q %q %q", a, b, c)
		assert.LessOrEqual(t, ab, max(len(a), len(b)), "bounded by the longer length")

		m := search.LevenshteinMatrix(a, b)
		assert.Equal(t, ab, m[len(a)][len(b)], "matrix corner %q %q", a, b)
	}
}

// TestLevenshteinMatrix_Shape verifies table dimensions and borders.
func TestLevenshteinMatrix_Shape(t *testing.T) {
	m := search.LevenshteinMatrix("ab", "xyz")
	require.Len(t, m, 3)
	for _, row := range m {
		require.Len(t, row, 4)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, m[0])
	assert.Equal(t, 2, m[2][0])
	assert.Equal(t, 3, m[2][3])
}

// TestSimilarity covers case folding and the empty-string policy.
func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, search.Similarity("Apple", "aPPLE"))
	assert.Equal(t, 1.0, search.Similarity("", ""))
	assert.Equal(t, 0.0, search.Similarity("", "abc"))
	assert.InDelta(t, 1-3.0/7.0, search.Similarity("kitten", "sitting"), 1e-12)
}
