package search

import (
	"strings"

	"github.com/katalvlaran/algokit/compare"
	"github.com/katalvlaran/algokit/sorting"
)

// FuzzySearch scores every item by the similarity between query and
// key(item), keeps the items scoring at least Threshold (DefaultThreshold
// unless WithThreshold is given) and returns them by similarity descending.
// Items with equal similarity keep their input order.
//
// Stages:
//  1. Lower-case the query once and each extracted key.
//  2. distance = Levenshtein(query, key) (through the cache, if configured).
//  3. similarity = 1 − distance / max(len(query), len(key)), in runes.
//  4. Filter by threshold, stable-sort descending, apply Limit.
//
// An empty items slice yields an empty, non-nil result. key must be non-nil;
// a panicking key propagates to the caller.
func FuzzySearch[T any](items []T, query string, key func(T) string, opts ...Option) ([]Match[T], error) {
	if key == nil {
		panic(panicNilKey)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return fuzzySearch(items, query, key, o), nil
}

// bySimilarityDesc orders matches from most to least similar.
func bySimilarityDesc[T any]() compare.Comparator[Match[T]] {
	return compare.Reverse(compare.By(func(m Match[T]) float64 { return m.Similarity }))
}

// fuzzySearch runs the search with already validated options.
func fuzzySearch[T any](items []T, query string, key func(T) string, o Options) []Match[T] {
	q := strings.ToLower(query)
	out := make([]Match[T], 0)
	for _, it := range items {
		k := strings.ToLower(key(it))
		var d int
		if o.Cache != nil {
			d = o.Cache.Distance(q, k)
		} else {
			d = Levenshtein(q, k)
		}
		if s := similarity(d, q, k); s >= o.Threshold {
			out = append(out, Match[T]{Item: it, Similarity: s})
		}
	}

	// MergeSort is stable, so ties keep input order.
	out = sorting.MergeSort(out, bySimilarityDesc[T]())
	if o.Limit > 0 && len(out) > o.Limit {
		out = out[:o.Limit]
	}

	o.Logger.V(1).Info("fuzzy search",
		"query", query,
		"items", len(items),
		"matches", len(out),
		"threshold", o.Threshold,
	)

	return out
}
