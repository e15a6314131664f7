package search

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// pairKey identifies an unordered pair of strings; a <= b always holds.
type pairKey struct {
	a, b string
}

// DistanceCache memoizes Levenshtein distances in a bounded LRU.
// It is safe for concurrent use. Because edit distance is symmetric,
// (a, b) and (b, a) share one entry.
type DistanceCache struct {
	entries *lru.Cache[pairKey, int]
}

// NewDistanceCache returns a cache holding at most size distances.
// size must be positive.
func NewDistanceCache(size int) (*DistanceCache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: cache size must be positive (%d)", ErrOptionViolation, size)
	}
	entries, err := lru.New[pairKey, int](size)
	if err != nil {
		return nil, fmt.Errorf("search: create distance cache: %w", err)
	}

	return &DistanceCache{entries: entries}, nil
}

// Distance returns Levenshtein(a, b), computing and storing it on a miss.
// Inputs are used verbatim; callers lower-case them when needed.
func (c *DistanceCache) Distance(a, b string) int {
	if a > b {
		a, b = b, a
	}
	k := pairKey{a: a, b: b}
	if d, ok := c.entries.Get(k); ok {
		return d
	}
	d := Levenshtein(a, b)
	c.entries.Add(k, d)

	return d
}

// Len returns the number of cached distances.
func (c *DistanceCache) Len() int { return c.entries.Len() }

// Purge drops every cached distance.
func (c *DistanceCache) Purge() { c.entries.Purge() }
