package sorting

import "github.com/katalvlaran/algokit/compare"

// IsSorted reports whether c(s[i], s[i+1]) <= 0 for every adjacent pair.
// Empty and single-element slices are sorted.
func IsSorted[T any](s []T, c compare.Comparator[T]) bool {
	compare.MustNotBeNil(c)

	for i := 1; i < len(s); i++ {
		if c(s[i-1], s[i]) > 0 {
			return false
		}
	}

	return true
}
