package cluster

import (
	"math/rand"
	"time"
)

// RandomSource is the randomness KMeans needs: a uniform int in [0, n).
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// newSource returns a generator seeded with seed when seeded is true, and a
// time-seeded one otherwise.
func newSource(seed int64, seeded bool) RandomSource {
	if !seeded {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

// sampleDistinct returns k distinct indices drawn uniformly from [0, n)
// without replacement, using a partial Fisher–Yates shuffle.
// Requires 0 <= k <= n.
//
// Complexity: O(n) time and space.
func sampleDistinct(n, k int, src RandomSource) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + src.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:k:k]
}
