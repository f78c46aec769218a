// Package distance provides point distance calculations for k-means seeding.
//
//   - Euclidean: L2 distance with scaled accumulation, used for seeding
//     weights and centroid movement
//   - SquaredEuclidean: squared L2 distance, used for the seeding potential
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	d2 := distance.SquaredEuclidean(a, b)
package distance
