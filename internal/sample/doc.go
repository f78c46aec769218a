// Package sample draws indices from discrete distributions.
//
// Used internally by the k-means++ seeder to pick the next centroid with
// probability proportional to a per-point weight.
package sample
