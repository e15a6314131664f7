// Package algokit is a small in-memory toolkit of classic algorithms that
// work over plain Go slices with caller-defined orderings.
//
// What is inside:
//
//	compare/      Comparator[T] abstraction: Natural, Reverse, By, Then
//	sorting/      MergeSort (stable) and QuickSort (three-way, explicit stack)
//	search/       BinarySearch, Levenshtein distance, FuzzySearch, DistanceCache
//	cluster/      k-means (Lloyd) with an injectable random source
//	regression/   closed-form ordinary least squares on one variable
//
// Every operation is synchronous and side-effect free: inputs are treated as
// read-only and each call returns freshly allocated results. The only source
// of nondeterminism, k-means initialization, is driven by a RandomSource the
// caller may inject.
//
// Errors are split into two categories declared in this package:
//
//	ErrConfiguration   the input has an invalid shape (length mismatch, bad k, …)
//	ErrNumerical       the input is well-formed but numerically degenerate
//
// Each subpackage returns its own "pkg: message" sentinels which wrap one of
// these categories, so callers may match either with errors.Is.
//
//	go get github.com/katalvlaran/algokit
package algokit
