// Package search implements searching over in-memory collections:
// binary search on sorted slices and approximate (fuzzy) string matching.
//
// What:
//
//   - BinarySearch / BinarySearchFirst: iterative halving over a slice that
//     is already sorted by the same comparator. Return NotFound (−1) when
//     no element compares equal to the target.
//   - Levenshtein: unit-cost edit distance (insert, delete, substitute)
//     over Unicode code points, using two rolling DP rows.
//   - LevenshteinMatrix: the full (|a|+1)×(|b|+1) DP table, for inspection.
//   - Similarity: 1 − distance / max(len(a), len(b)) on lower-cased input.
//   - FuzzySearch: keep the items whose extracted key is at least Threshold
//     similar to the query, ordered by similarity descending (stable).
//   - DistanceCache: goroutine-safe LRU memo of edit distances, shared by
//     repeated fuzzy queries over the same vocabulary.
//   - Matcher: a reusable fuzzy matcher with resolved options and a logger.
//
// Policies:
//
//   - Matching is case-insensitive (strings.ToLower on both sides).
//   - Two empty strings are identical: Similarity("", "") == 1.
//   - BinarySearch on unsorted input returns an unspecified index or
//     NotFound; the precondition is not checked (see sorting.IsSorted).
//
// Complexity:
//
//   - BinarySearch:  Time O(log n), Memory O(1)
//   - Levenshtein:   Time O(|a|·|b|), Memory O(min(|a|,|b|))
//   - FuzzySearch:   Time O(Σ |q|·|key_i| + m log m) for m matches
//
// Errors:
//
//   - ErrOptionViolation: an Option carried an invalid value
//
// Extractor and comparator panics propagate to the caller.
package search
