// Package sorting provides comparator-driven sorting of Go slices.
//
// What:
//
//   - MergeSort: stable top-down merge sort. Equal elements keep their
//     relative input order because the merge takes the left element on ties.
//   - QuickSort: three-way (less / equal / greater) quicksort with a
//     middle-element pivot. Not stable.
//   - IsSorted: verifies non-decreasing order under a comparator.
//
// Both sorts return a NEW slice; the caller's slice is never reordered.
// Empty and single-element inputs are valid and yield a copy.
//
// Complexity:
//
//   - MergeSort: Time O(n log n), Memory O(n) (one scratch buffer shared by all levels)
//   - QuickSort: Time O(n log n) average, O(n²) worst case on adversarial pivots;
//     Memory O(log n) for the explicit range stack (smaller side first)
//
// Comparator panics propagate to the caller untouched. A nil comparator panics
// with "compare: nil comparator".
//
// Usage:
//
//	people := sorting.MergeSort(people, compare.By(func(p Person) int { return p.Age }))
//	nums := sorting.QuickSortOrdered([]int{5, 2, 9, 1})
package sorting
