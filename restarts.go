package kmpp

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kmpp/distance"
)

// Seeding is the outcome of one k-means++ seeding.
type Seeding struct {
	Centroids CentroidSet
	Indices   []int
	// Potential is the sum over all points of the squared distance to the
	// nearest centroid.
	Potential float64
	// Restart is the index of the restart that produced this seeding.
	Restart int
}

// SeedRestarts runs `restarts` independent seedings and returns the one with
// the lowest potential. Restart r draws from a source derived from seed and r,
// so the result does not depend on scheduling: ties go to the lowest restart.
//
// Restarts run concurrently, at most GOMAXPROCS at a time. Options apply to
// every restart except that WithRand and WithSeed are overridden.
func SeedRestarts(ctx context.Context, points PointSet, k, restarts int, seed uint64, optFns ...Option) (Seeding, error) {
	start := time.Now()
	o := newOptions(optFns)

	best, err := seedRestarts(ctx, points, k, restarts, seed, optFns)

	o.metricsCollector.RecordRestarts(restarts, time.Since(start), err)
	o.logger.LogRestarts(ctx, restarts, best.Restart, best.Potential, err)
	return best, err
}

func seedRestarts(ctx context.Context, points PointSet, k, restarts int, seed uint64, optFns []Option) (Seeding, error) {
	if restarts < 1 {
		return Seeding{}, fmt.Errorf("%w: restarts=%d must be positive", ErrInvalidArgument, restarts)
	}
	if _, err := validateSeed(points, k); err != nil {
		return Seeding{}, err
	}

	results := make([]Seeding, restarts)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for r := range restarts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			opts := append(slices.Clip(optFns), WithRand(restartRand(seed, r)))
			indices, err := NewSeeder(opts...).SeedIndices(points, k)
			if err != nil {
				return fmt.Errorf("restart %d: %w", r, err)
			}
			centroids := centroidsAt(points, indices)

			phi, err := Potential(points, centroids)
			if err != nil {
				return fmt.Errorf("restart %d: %w", r, err)
			}

			results[r] = Seeding{
				Centroids: centroids,
				Indices:   indices,
				Potential: phi,
				Restart:   r,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Seeding{}, err
	}

	best := 0
	for r := 1; r < restarts; r++ {
		if results[r].Potential < results[best].Potential {
			best = r
		}
	}
	return results[best], nil
}

// restartRand returns the source of restart r: one PCG stream per restart.
func restartRand(seed uint64, r int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(r)+1))
}

// Potential returns the k-means cost of centroids over points: the sum of
// squared Euclidean distances from every point to its nearest centroid.
func Potential(points PointSet, centroids CentroidSet) (float64, error) {
	dim, err := points.Dimension()
	if err != nil {
		return 0, err
	}
	if len(centroids) == 0 {
		return 0, fmt.Errorf("%w: empty centroid set", ErrInvalidArgument)
	}
	for i, c := range centroids {
		if len(c) != dim {
			return 0, &ErrDimensionMismatch{Index: i, Expected: dim, Actual: len(c)}
		}
	}

	var phi float64
	for _, p := range points {
		nearest := math.Inf(1)
		for _, c := range centroids {
			nearest = math.Min(nearest, distance.SquaredEuclidean(p, c))
		}
		phi += nearest
	}
	return phi, nil
}
