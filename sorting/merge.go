package sorting

import (
	"cmp"

	"github.com/katalvlaran/algokit/compare"
)

// MergeSort returns a stably sorted copy of s ordered by c.
//
// Algorithm:
//  1. Copy s into the result slice; allocate one scratch buffer of len(s).
//  2. Recursively halve the range down to single elements.
//  3. Merge adjacent runs, taking the left element whenever c(l, r) <= 0,
//     which keeps equal elements in input order.
//
// Runs that are already in order (c(last of left, first of right) <= 0) are
// left untouched, so sorted input costs O(n) comparisons per level.
func MergeSort[T any](s []T, c compare.Comparator[T]) []T {
	compare.MustNotBeNil(c)

	out := make([]T, len(s))
	copy(out, s)
	if len(out) <= 1 {
		return out
	}

	buf := make([]T, len(out))
	mergeSortRange(out, buf, c)

	return out
}

// MergeSortOrdered is MergeSort under the natural ordering of T.
func MergeSortOrdered[T cmp.Ordered](s []T) []T {
	return MergeSort(s, compare.Natural[T]())
}

// mergeSortRange sorts a in place using buf (same length) as scratch.
func mergeSortRange[T any](a, buf []T, c compare.Comparator[T]) {
	n := len(a)
	if n <= 1 {
		return
	}
	mid := n / 2
	mergeSortRange(a[:mid], buf[:mid], c)
	mergeSortRange(a[mid:], buf[mid:], c)

	// Already ordered across the seam: nothing to merge.
	if c(a[mid-1], a[mid]) <= 0 {
		return
	}

	copy(buf, a)
	var i, j, k = 0, mid, 0
	for i < mid && j < n {
		if c(buf[i], buf[j]) <= 0 {
			a[k] = buf[i]
			i++
		} else {
			a[k] = buf[j]
			j++
		}
		k++
	}
	k += copy(a[k:], buf[i:mid])
	copy(a[k:], buf[j:n])
}
