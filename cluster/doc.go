// Package cluster partitions numeric vectors into k groups with Lloyd's
// k-means algorithm.
//
// What:
//
//   - KMeans(points, k, opts...) picks k distinct input points as initial
//     centroids, then alternates two steps until the centroids settle:
//     1. assign every point to its nearest centroid (Euclidean distance,
//     ties go to the lowest centroid index);
//     2. move every centroid to the mean of its assigned points. A centroid
//     that received no points stays where it was.
//   - Iteration stops once every centroid moves less than Epsilon
//     (default 1e-4) or after MaxIterations (default 100).
//   - Result.Predict assigns new points to the learned centroids.
//
// Determinism:
//
//	Initialization draws from a RandomSource. Pass WithSeed or
//	WithRandomSource for reproducible runs; otherwise a time-seeded
//	generator is used. *math/rand.Rand satisfies RandomSource but is not
//	goroutine-safe, so never share one between concurrent KMeans calls.
//
// Parallelism:
//
//	WithWorkers(n) splits the assignment step across n goroutines. Each
//	worker owns a disjoint index range, so results are identical to the
//	sequential run.
//
// Errors:
//
//   - ErrEmptyInput        no points
//   - ErrDimensionMismatch zero-length vector or vectors of different lengths
//   - ErrInvalidK          k outside [1, len(points)]
//   - ErrNonFinite         NaN or ±Inf coordinate
//   - ErrOptionViolation   invalid Option value
//   - context errors       cancellation via WithContext
//
// Complexity: Time O(I·n·k·d), Memory O(n + k·d) for I iterations, n points
// of dimension d.
package cluster
