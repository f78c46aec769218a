package kmpp

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// Weighting selects how a point's distance to its nearest chosen centroid
// becomes its sampling weight during seeding.
type Weighting int

const (
	// WeightLinear weights each point by its Euclidean distance to the
	// nearest chosen centroid. This is the default.
	WeightLinear Weighting = iota

	// WeightSquared weights each point by the squared Euclidean distance
	// to the nearest chosen centroid (the D² weighting of Arthur and
	// Vassilvitskii).
	WeightSquared
)

func (w Weighting) String() string {
	switch w {
	case WeightLinear:
		return "Linear"
	case WeightSquared:
		return "Squared"
	default:
		return fmt.Sprintf("Unknown(%d)", w)
	}
}

func (w Weighting) validate() error {
	switch w {
	case WeightLinear, WeightSquared:
		return nil
	default:
		return fmt.Errorf("%w: unsupported weighting %v", ErrInvalidArgument, w)
	}
}

// apply turns distances rescaled into [0, 1] into sampling weights in place.
func (w Weighting) apply(weights []float64) {
	if w == WeightSquared {
		floats.Mul(weights, weights)
	}
}

type options struct {
	rng              *rand.Rand
	weighting        Weighting
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures seeding and convergence checking. WithRand, WithSeed and
// WithWeighting only affect seeding.
type Option func(*options)

func newOptions(optFns []Option) options {
	o := options{
		weighting:        WeightLinear,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// WithRand injects the random source used for sampling.
//
// The *rand.Rand is consumed by the Seeder and must not be shared with
// concurrently running seeders. If nil is passed, a randomly seeded source
// is used.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed makes seeding reproducible: the same seed and the same points
// yield the same centroids.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, 0))
	}
}

// WithWeighting selects the sampling weight. Default is WeightLinear.
func WithWeighting(w Weighting) Option {
	return func(o *options) {
		o.weighting = w
	}
}

// WithLogger configures structured logging.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures operational metrics.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
