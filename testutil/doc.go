// Package testutil provides testing utilities for kmpp.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating seeded point sets and a reference
// Lloyd step (assign + recompute) that stands in for the external
// clustering loop.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(100, 2, -1, 1)
//	pts, labels := rng.ClusteredPoints(300, 2, 3, 10, 0.5)
//
// # Reference Update Step
//
//	labels := testutil.Assign(pts, centroids)
//	next := testutil.Recompute(pts, labels, centroids)
package testutil
