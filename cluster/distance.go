package cluster

import "math"

// SquaredEuclidean returns Σ (a[i] − b[i])². a and b must have equal length.
func SquaredEuclidean(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return s
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// nearest returns the index of the centroid closest to p; ties go to the
// lowest index.
func nearest(p []float64, centroids [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, c := range centroids {
		if d := SquaredEuclidean(p, c); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}
