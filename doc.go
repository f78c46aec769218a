// Package kmpp provides k-means++ seeding and a convergence check for
// k-means clustering pipelines.
//
// The package covers the two ends of the k-means loop. The loop itself
// (assigning points to centroids and recomputing centroids) belongs to the
// caller.
//
// # Quick Start
//
//	centroids, err := kmpp.InitClusters(points, kmpp.DefaultK, kmpp.WithSeed(42))
//	for {
//	    next := update(points, centroids) // caller's assignment/update step
//	    done, err := kmpp.HasConverged(next, centroids, 1e-6)
//	    centroids = next
//	    if done {
//	        break
//	    }
//	}
//
// # Seeding
//
// The first centroid is a uniformly random point. Every further centroid is
// drawn with probability proportional to a point's distance to its nearest
// already chosen centroid:
//
//	kmpp.WithWeighting(kmpp.WeightLinear)  // weight = D(x) (default)
//	kmpp.WithWeighting(kmpp.WeightSquared) // weight = D(x)², classic k-means++
//
// Randomness comes from an injected source, so runs are reproducible:
//
//	s := kmpp.NewSeeder(kmpp.WithRand(rand.New(rand.NewPCG(1, 2))))
//	centroids, err := s.Seed(points, 8)
//
// Seeding fails with ErrDegenerateInput when every point coincides with an
// already chosen centroid before k centroids were picked.
//
// # Convergence
//
// HasConverged compares two centroid sets position by position and reports
// false as soon as one centroid moved strictly farther than the threshold.
//
// # Restarts
//
// SeedRestarts runs several independent seedings concurrently and keeps the
// one with the lowest potential (k-means cost):
//
//	best, err := kmpp.SeedRestarts(ctx, points, 8, 16, 42)
//
// # Errors
//
// Precondition violations wrap ErrInvalidArgument; use errors.Is:
//
//	if errors.Is(err, kmpp.ErrInvalidArgument) { ... }
//
// Dimension problems are reported as *ErrDimensionMismatch and length
// problems as *ErrLengthMismatch; both also match ErrInvalidArgument.
package kmpp
