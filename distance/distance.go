// Package distance provides public API for point distance calculations.
// Euclidean distances go through gonum's floats package.
package distance

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Euclidean calculates the L2 (Euclidean) distance between two points.
// Assumes points are the same length (caller's responsibility).
// The result is +Inf only when a coordinate difference overflows.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean calculates the squared L2 distance between two points.
// Assumes points are the same length (caller's responsibility).
func SquaredEuclidean(a, b []float64) float64 {
	var d float64
	for i := range a {
		diff := a[i] - b[i]
		d += diff * diff
	}

	return d
}

// Finite reports whether every coordinate of p is neither NaN nor ±Inf.
func Finite(p []float64) bool {
	if floats.HasNaN(p) {
		return false
	}
	for _, v := range p {
		if math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
