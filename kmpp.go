package kmpp

import (
	"fmt"

	"github.com/hupe1980/kmpp/distance"
)

// DefaultK is the number of clusters used when a caller has no preference.
const DefaultK = 3

// Point is a fixed-dimension vector of real numbers.
type Point = []float64

// PointSet is an ordered collection of points sharing one dimension.
// It is read-only for the duration of a seeding.
type PointSet [][]float64

// CentroidSet is an ordered sequence of cluster representatives.
// Centroid i in one iteration corresponds to centroid i in the next.
type CentroidSet [][]float64

// Dimension returns the shared dimension of the points.
// It fails with ErrInvalidArgument for an empty set, zero-dimensional or
// non-finite points, and with *ErrDimensionMismatch for ragged sets.
func (ps PointSet) Dimension() (int, error) {
	return dimensionOf(ps)
}

// Clone returns a deep copy of the centroid set.
func (cs CentroidSet) Clone() CentroidSet {
	if cs == nil {
		return nil
	}
	out := make(CentroidSet, len(cs))
	for i, c := range cs {
		out[i] = append(Point(nil), c...)
	}
	return out
}

// InitClusters picks k initial centroids from points with k-means++ seeding.
//
// It is shorthand for NewSeeder(optFns...).Seed(points, k).
func InitClusters(points PointSet, k int, optFns ...Option) (CentroidSet, error) {
	return NewSeeder(optFns...).Seed(points, k)
}

func dimensionOf(points [][]float64) (int, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("%w: empty point set", ErrInvalidArgument)
	}
	dim := len(points[0])
	if dim == 0 {
		return 0, fmt.Errorf("%w: zero-dimensional points", ErrInvalidArgument)
	}
	for i, p := range points {
		if len(p) != dim {
			return 0, &ErrDimensionMismatch{Index: i, Expected: dim, Actual: len(p)}
		}
		if !distance.Finite(p) {
			return 0, fmt.Errorf("%w: non-finite coordinate in point %d", ErrInvalidArgument, i)
		}
	}
	return dim, nil
}
