package cluster_test

import (
	"testing"

	"github.com/katalvlaran/algokit/cluster"
)

// benchmarkKMeans clusters 4×2500 points in 8 dimensions.
func benchmarkKMeans(b *testing.B, workers int) {
	points := blobs(1, 2500, 5.0,
		[]float64{0, 0, 0, 0, 0, 0, 0, 0},
		[]float64{10, 10, 10, 10, 10, 10, 10, 10},
		[]float64{-10, 0, 10, 0, -10, 0, 10, 0},
		[]float64{0, -10, 0, 10, 0, -10, 0, 10},
	)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cluster.KMeans(points, 4, cluster.WithSeed(1), cluster.WithWorkers(workers)); err != nil {
			b.Fatalf("KMeans failed: %v", err)
		}
	}
}

// BenchmarkKMeans_Sequential runs the assignment step on one goroutine.
func BenchmarkKMeans_Sequential(b *testing.B) { benchmarkKMeans(b, 1) }

// BenchmarkKMeans_Parallel4 splits the assignment step over four goroutines.
func BenchmarkKMeans_Parallel4(b *testing.B) { benchmarkKMeans(b, 4) }
