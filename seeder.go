package kmpp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hupe1980/kmpp/distance"
	"github.com/hupe1980/kmpp/internal/sample"
)

// Seeder picks initial centroids with k-means++: the first uniformly at
// random, every further one with probability proportional to its distance
// (or squared distance, see WithWeighting) from the nearest centroid chosen
// so far.
//
// A Seeder is not safe for concurrent use; it owns its random source.
// Use one Seeder per goroutine.
type Seeder struct {
	rng       *rand.Rand
	weighting Weighting
	logger    *Logger
	metrics   MetricsCollector
}

// NewSeeder creates a Seeder.
func NewSeeder(optFns ...Option) *Seeder {
	o := newOptions(optFns)
	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Seeder{
		rng:       rng,
		weighting: o.weighting,
		logger:    o.logger,
		metrics:   o.metricsCollector,
	}
}

// Seed returns k centroids drawn from points. Centroid i is a copy of the
// i-th picked point, so callers may mutate the result freely.
//
// Picks are not required to be distinct: duplicate input points may be
// picked more than once.
func (s *Seeder) Seed(points PointSet, k int) (CentroidSet, error) {
	indices, err := s.SeedIndices(points, k)
	if err != nil {
		return nil, err
	}
	return centroidsAt(points, indices), nil
}

// SeedIndices is like Seed but returns the picked point indices in pick order.
func (s *Seeder) SeedIndices(points PointSet, k int) ([]int, error) {
	start := time.Now()
	logger := s.logger.WithK(k).WithCount(len(points))
	indices, err := s.seed(logger, points, k)
	s.metrics.RecordSeed(k, time.Since(start), err)
	logger.LogSeed(context.Background(), err)
	return indices, err
}

func (s *Seeder) seed(logger *Logger, points PointSet, k int) ([]int, error) {
	dim, err := validateSeed(points, k)
	if err != nil {
		return nil, err
	}
	if err := s.weighting.validate(); err != nil {
		return nil, err
	}
	logger = logger.WithDimension(dim)

	indices := make([]int, 1, k)
	indices[0] = s.rng.IntN(len(points))
	logger.LogPick(context.Background(), 0, indices[0], 0)

	return s.extend(logger, points, indices, k)
}

// extend grows indices to k picks. Each round folds the distance column of
// the most recent pick into a running per-point minimum, then samples the
// next pick from that minimum rescaled by its maximum, so the weights sum
// to at most len(points) whatever the coordinate magnitudes.
func (s *Seeder) extend(logger *Logger, points PointSet, indices []int, k int) ([]int, error) {
	if len(indices) >= k {
		return indices, nil
	}

	nearest := make([]float64, len(points))
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}
	// Catch up on picks made before this call.
	for _, idx := range indices[:len(indices)-1] {
		foldNearest(nearest, points, points[idx])
	}

	weights := make([]float64, len(points))
	for len(indices) < k {
		foldNearest(nearest, points, points[indices[len(indices)-1]])

		next, err := s.draw(weights, nearest)
		if err != nil {
			if errors.Is(err, sample.ErrZeroMass) {
				return nil, fmt.Errorf("%w: no point is away from the %d chosen centroids: %w",
					ErrDegenerateInput, len(indices), err)
			}
			return nil, err
		}

		logger.LogPick(context.Background(), len(indices), next, nearest[next])
		indices = append(indices, next)
	}

	return indices, nil
}

func (s *Seeder) draw(weights, nearest []float64) (int, error) {
	weights, err := sample.Rescale(weights, nearest)
	if err != nil {
		return -1, err
	}
	s.weighting.apply(weights)
	return sample.Categorical(weights, s.rng)
}

// foldNearest lowers nearest[i] to the Euclidean distance from points[i] to
// c where that is closer.
func foldNearest(nearest []float64, points PointSet, c Point) {
	for i, p := range points {
		if d := distance.Euclidean(p, c); d < nearest[i] {
			nearest[i] = d
		}
	}
}

func centroidsAt(points PointSet, indices []int) CentroidSet {
	centroids := make(CentroidSet, len(indices))
	for i, idx := range indices {
		centroids[i] = append(Point(nil), points[idx]...)
	}
	return centroids
}

func validateSeed(points PointSet, k int) (int, error) {
	if k < 1 {
		return 0, fmt.Errorf("%w: k=%d must be positive", ErrInvalidK, k)
	}
	dim, err := points.Dimension()
	if err != nil {
		return 0, err
	}
	if k > len(points) {
		return 0, fmt.Errorf("%w: k=%d exceeds %d points", ErrInvalidK, k, len(points))
	}
	return dim, nil
}
