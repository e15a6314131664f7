package sorting

import (
	"cmp"

	"github.com/katalvlaran/algokit/compare"
)

// span is a half-open range [lo, hi) awaiting partitioning.
type span struct {
	lo, hi int
}

// QuickSort returns a sorted copy of s ordered by c. The result is NOT
// guaranteed to be stable.
//
// Algorithm:
//  1. Pick the middle element of the current range as pivot.
//  2. Partition the range in one pass into <pivot, ==pivot, >pivot.
//  3. Push the larger of the two outer partitions onto an explicit stack and
//     keep working on the smaller one; the equal block is final.
//
// Working on the smaller side first bounds the stack at O(log n) entries
// even when the pivot choice degrades the running time to O(n²).
func QuickSort[T any](s []T, c compare.Comparator[T]) []T {
	compare.MustNotBeNil(c)

	out := make([]T, len(s))
	copy(out, s)
	if len(out) <= 1 {
		return out
	}

	stack := []span{{lo: 0, hi: len(out)}}
	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lo, hi := sp.lo, sp.hi
		for hi-lo > 1 {
			lt, gt := partition3(out, lo, hi, c)
			if lt-lo < hi-gt {
				stack = append(stack, span{lo: gt, hi: hi})
				hi = lt
			} else {
				stack = append(stack, span{lo: lo, hi: lt})
				lo = gt
			}
		}
	}

	return out
}

// QuickSortOrdered is QuickSort under the natural ordering of T.
func QuickSortOrdered[T cmp.Ordered](s []T) []T {
	return QuickSort(s, compare.Natural[T]())
}

// partition3 rearranges a[lo:hi] around the middle element so that
// a[lo:lt] < pivot, a[lt:gt] == pivot and a[gt:hi] > pivot.
func partition3[T any](a []T, lo, hi int, c compare.Comparator[T]) (lt, gt int) {
	pivot := a[lo+(hi-lo)/2]
	lt, gt = lo, hi
	i := lo
	for i < gt {
		switch r := c(a[i], pivot); {
		case r < 0:
			a[lt], a[i] = a[i], a[lt]
			lt++
			i++
		case r > 0:
			gt--
			a[i], a[gt] = a[gt], a[i]
		default:
			i++
		}
	}

	return lt, gt
}
