package sample

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrZeroMass is returned when the weights sum to zero (or to a
	// non-finite value), so they cannot be normalized into probabilities.
	ErrZeroMass = errors.New("weights cannot be normalized")

	// ErrNegativeWeight is returned when a weight is negative or NaN.
	ErrNegativeWeight = errors.New("negative weight")
)

// Categorical draws one index in [0, len(weights)) with probability
// weights[i] / sum(weights). src must not be nil.
func Categorical(weights []float64, src rand.Source) (int, error) {
	if len(weights) == 0 {
		return -1, fmt.Errorf("%w: no weights", ErrZeroMass)
	}
	for i, w := range weights {
		if !(w >= 0) {
			return -1, fmt.Errorf("%w: weights[%d]=%v", ErrNegativeWeight, i, w)
		}
	}

	sum := floats.Sum(weights)
	if sum == 0 || math.IsInf(sum, 0) {
		return -1, fmt.Errorf("%w: sum=%v", ErrZeroMass, sum)
	}

	c := distuv.NewCategorical(weights, src)
	return int(c.Rand()), nil
}

// minNormal is the smallest positive normal float64.
const minNormal = 0x1p-1022

// Rescale writes weights divided by their maximum into dst, so every entry
// of dst lies in [0, 1] and the sum stays finite for any finite input.
// When some weights are +Inf, those share all the mass equally and the
// finite ones get none. dst must be at least as long as weights.
func Rescale(dst, weights []float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: no weights", ErrZeroMass)
	}
	dst = dst[:len(weights)]

	maxWeight := floats.Max(weights)
	switch {
	case math.IsNaN(maxWeight) || maxWeight < 0:
		return nil, fmt.Errorf("%w: max=%v", ErrNegativeWeight, maxWeight)
	case maxWeight == 0:
		return nil, fmt.Errorf("%w: sum=0", ErrZeroMass)
	case math.IsInf(maxWeight, 1):
		for i, w := range weights {
			dst[i] = 0
			if math.IsInf(w, 1) {
				dst[i] = 1
			}
		}
		return dst, nil
	}

	if inv := 1 / maxWeight; inv >= minNormal && !math.IsInf(inv, 0) {
		floats.ScaleTo(dst, inv, weights)
		return dst, nil
	}
	// The reciprocal is subnormal or overflows, divide instead.
	for i, w := range weights {
		dst[i] = w / maxWeight
	}
	return dst, nil
}
