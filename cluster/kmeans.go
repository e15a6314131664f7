package cluster

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// KMeans partitions points into k clusters.
//
// Stages:
//  1. Validate shape: non-empty, one shared non-zero dimension, finite
//     coordinates, 1 ≤ k ≤ len(points).
//  2. Initialize k centroids from k distinct points drawn via Options.Source.
//  3. Repeat up to MaxIterations:
//     a. assign each point to its nearest centroid (ties → lowest index);
//     b. recompute each centroid as the mean of its points; empty clusters
//     keep their previous centroid;
//     c. stop when every centroid moved less than Epsilon.
//
// The returned Clusters come from the last assignment step and Centroids are
// their means, so the two always describe the same partition.
//
// Example:
//
//	res, err := cluster.KMeans(points, 3, cluster.WithSeed(42))
//	if err != nil { … }
//	fmt.Println(res.Centroids, res.Clusters)
func KMeans(points [][]float64, k int, opts ...Option) (*Result, error) {
	dim, err := validatePoints(points)
	if err != nil {
		return nil, err
	}
	if k < 1 || k > len(points) {
		return nil, fmt.Errorf("%w: k=%d, points=%d", ErrInvalidK, k, len(points))
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	centroids := make([][]float64, k)
	for i, p := range sampleDistinct(len(points), k, o.Source) {
		centroids[i] = append([]float64(nil), points[p]...)
	}

	labels := make([]int, len(points))
	res := &Result{Labels: labels}
	for iter := 1; iter <= o.MaxIterations; iter++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		if err = assign(o.Ctx, points, centroids, labels, o.Workers); err != nil {
			return nil, err
		}

		next := means(points, labels, centroids, dim)
		var shift float64
		for i := range next {
			shift = math.Max(shift, Euclidean(centroids[i], next[i]))
		}
		centroids = next
		res.Iterations = iter
		o.Logger.V(2).Info("kmeans round", "iteration", iter, "maxShift", shift)

		if shift < o.Epsilon {
			res.Converged = true
			break
		}
	}

	res.Centroids = centroids
	res.Clusters = groupByLabel(labels, k)
	for p, l := range labels {
		res.Inertia += SquaredEuclidean(points[p], centroids[l])
	}
	o.Logger.V(1).Info("kmeans finished",
		"points", len(points),
		"k", k,
		"iterations", res.Iterations,
		"converged", res.Converged,
		"inertia", res.Inertia,
	)

	return res, nil
}

// Predict returns the index of the centroid nearest to point.
func (r *Result) Predict(point []float64) (int, error) {
	if len(r.Centroids) == 0 || len(point) != len(r.Centroids[0]) {
		return 0, fmt.Errorf("%w: point has %d coordinates", ErrDimensionMismatch, len(point))
	}

	return nearest(point, r.Centroids), nil
}

// validatePoints checks shape and finiteness and returns the dimension.
func validatePoints(points [][]float64) (int, error) {
	if len(points) == 0 {
		return 0, ErrEmptyInput
	}
	dim := len(points[0])
	if dim == 0 {
		return 0, fmt.Errorf("%w: point 0 is empty", ErrDimensionMismatch)
	}
	for i, p := range points {
		if len(p) != dim {
			return 0, fmt.Errorf("%w: point %d has %d coordinates, want %d", ErrDimensionMismatch, i, len(p), dim)
		}
		for _, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("%w: point %d", ErrNonFinite, i)
			}
		}
	}

	return dim, nil
}

// assign writes the nearest centroid of every point into labels. With
// workers > 1 the index range is split into contiguous chunks, one per
// goroutine; chunks are disjoint so no synchronization is needed.
func assign(ctx context.Context, points, centroids [][]float64, labels []int, workers int) error {
	if workers <= 1 || len(points) < 2*workers {
		for p := range points {
			labels[p] = nearest(points[p], centroids)
		}

		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(points) + workers - 1) / workers
	for lo := 0; lo < len(points); lo += chunk {
		hi := min(lo+chunk, len(points))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for p := lo; p < hi; p++ {
				labels[p] = nearest(points[p], centroids)
			}

			return nil
		})
	}

	return g.Wait()
}

// means returns the per-cluster mean of points under labels. A cluster with
// no points keeps a copy of its previous centroid.
func means(points [][]float64, labels []int, prev [][]float64, dim int) [][]float64 {
	k := len(prev)
	sums := make([][]float64, k)
	counts := make([]int, k)
	for i := range sums {
		sums[i] = make([]float64, dim)
	}
	for p, l := range labels {
		counts[l]++
		for d, v := range points[p] {
			sums[l][d] += v
		}
	}
	for i := range sums {
		if counts[i] == 0 {
			copy(sums[i], prev[i])
			continue
		}
		n := float64(counts[i])
		for d := range sums[i] {
			sums[i][d] /= n
		}
	}

	return sums
}

// groupByLabel inverts labels into ascending index lists per cluster.
func groupByLabel(labels []int, k int) [][]int {
	clusters := make([][]int, k)
	for i := range clusters {
		clusters[i] = []int{}
	}
	for p, l := range labels {
		clusters[l] = append(clusters[l], p)
	}

	return clusters
}
