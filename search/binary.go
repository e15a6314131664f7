package search

import (
	"cmp"

	"github.com/katalvlaran/algokit/compare"
)

// BinarySearch returns the index of some element of sorted that compares
// equal to target, or NotFound. Which index is returned among duplicates is
// unspecified; use BinarySearchFirst for the leftmost one.
//
// sorted must be in non-decreasing order under c. This is not checked.
func BinarySearch[T any](sorted []T, target T, c compare.Comparator[T]) int {
	compare.MustNotBeNil(c)

	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch r := c(sorted[mid], target); {
		case r == 0:
			return mid
		case r < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return NotFound
}

// BinarySearchOrdered is BinarySearch under the natural ordering of T.
func BinarySearchOrdered[T cmp.Ordered](sorted []T, target T) int {
	return BinarySearch(sorted, target, compare.Natural[T]())
}

// BinarySearchFirst returns the smallest index i with c(sorted[i], target) == 0,
// or NotFound.
func BinarySearchFirst[T any](sorted []T, target T, c compare.Comparator[T]) int {
	compare.MustNotBeNil(c)

	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if c(sorted[mid], target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(sorted) && c(sorted[lo], target) == 0 {
		return lo
	}

	return NotFound
}
