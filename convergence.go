package kmpp

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/kmpp/distance"
)

// HasConverged reports whether no centroid moved farther than threshold
// between oldCentroids and newCentroids. Centroids are compared
// positionally; a movement exactly equal to threshold still counts as
// converged.
func HasConverged(newCentroids, oldCentroids CentroidSet, threshold float64) (bool, error) {
	if err := validateThreshold(threshold); err != nil {
		return false, err
	}
	if err := validatePair(newCentroids, oldCentroids); err != nil {
		return false, err
	}
	return withinThreshold(newCentroids, oldCentroids, threshold), nil
}

// MaxShift returns the largest positional movement between oldCentroids
// and newCentroids. HasConverged(n, o, t) holds exactly when MaxShift(n, o) <= t.
func MaxShift(newCentroids, oldCentroids CentroidSet) (float64, error) {
	if err := validatePair(newCentroids, oldCentroids); err != nil {
		return 0, err
	}
	var shift float64
	for i := range newCentroids {
		shift = math.Max(shift, distance.Euclidean(newCentroids[i], oldCentroids[i]))
	}
	return shift, nil
}

func withinThreshold(newCentroids, oldCentroids CentroidSet, threshold float64) bool {
	for i := range newCentroids {
		if distance.Euclidean(newCentroids[i], oldCentroids[i]) > threshold {
			return false
		}
	}
	return true
}

// ConvergenceChecker is a HasConverged bound to a fixed threshold, with
// logging and metrics. It holds no state between checks and is safe for
// concurrent use.
type ConvergenceChecker struct {
	threshold float64
	logger    *Logger
	metrics   MetricsCollector
}

// NewConvergenceChecker creates a ConvergenceChecker. The threshold must be
// a non-negative number. Only WithLogger and WithMetricsCollector apply;
// seeding options are ignored.
func NewConvergenceChecker(threshold float64, optFns ...Option) (*ConvergenceChecker, error) {
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}
	o := newOptions(optFns)
	return &ConvergenceChecker{
		threshold: threshold,
		logger:    o.logger,
		metrics:   o.metricsCollector,
	}, nil
}

// Threshold returns the configured movement threshold.
func (c *ConvergenceChecker) Threshold() float64 { return c.threshold }

// Check reports whether the clustering has stabilized; see HasConverged.
func (c *ConvergenceChecker) Check(newCentroids, oldCentroids CentroidSet) (bool, error) {
	start := time.Now()
	converged, err := HasConverged(newCentroids, oldCentroids, c.threshold)
	c.metrics.RecordConvergenceCheck(converged, time.Since(start), err)
	c.logger.WithCount(len(newCentroids)).LogConvergence(context.Background(), c.threshold, converged, err)
	return converged, err
}

func validateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 {
		return fmt.Errorf("%w: threshold=%v must be non-negative", ErrInvalidArgument, threshold)
	}
	return nil
}

func validatePair(newCentroids, oldCentroids CentroidSet) error {
	if len(newCentroids) != len(oldCentroids) {
		return &ErrLengthMismatch{New: len(newCentroids), Old: len(oldCentroids)}
	}
	if len(newCentroids) == 0 {
		return fmt.Errorf("%w: empty centroid set", ErrInvalidArgument)
	}
	dim, err := dimensionOf(newCentroids)
	if err != nil {
		return err
	}
	for i, c := range oldCentroids {
		if len(c) != dim {
			return &ErrDimensionMismatch{Index: i, Expected: dim, Actual: len(c)}
		}
		if !distance.Finite(c) {
			return fmt.Errorf("%w: non-finite coordinate in centroid %d", ErrInvalidArgument, i)
		}
	}
	return nil
}
