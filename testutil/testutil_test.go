package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	p := rng.UniformPoints(8, 3, -1, 1)

	require.Len(t, p, 8)
	for _, pt := range p {
		require.Len(t, pt, 3)
		for _, v := range pt {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.Less(t, v, 1.0)
		}
	}
}

func TestClusteredPoints(t *testing.T) {
	rng := NewRNG(4711)

	p, labels := rng.ClusteredPoints(90, 2, 3, 100, 0.1)

	require.Len(t, p, 90)
	require.Len(t, labels, 90)
	assert.Equal(t, 2, len(p[0]))
	assert.Equal(t, 0, labels[0])
	assert.Equal(t, 1, labels[1])
	assert.Equal(t, 2, labels[2])
	assert.Equal(t, 0, labels[3])
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UniformPoints(1, 10, 0, 1)

	rng.Reset()
	v2 := rng.UniformPoints(1, 10, 0, 1)

	assert.Equal(t, v1, v2)
	assert.Equal(t, uint64(4711), rng.Seed())
}

func TestAssignRecompute(t *testing.T) {
	points := [][]float64{{0, 0}, {0, 2}, {10, 10}, {10, 12}}
	centroids := [][]float64{{1, 1}, {9, 9}}

	labels := Assign(points, centroids)
	assert.Equal(t, []int{0, 0, 1, 1}, labels)

	next := Recompute(points, labels, centroids)
	assert.Equal(t, [][]float64{{0, 1}, {10, 11}}, next)
}

func TestRecompute_EmptyCluster(t *testing.T) {
	points := [][]float64{{0, 0}, {2, 0}}
	previous := [][]float64{{1, 0}, {50, 50}}

	next := Recompute(points, []int{0, 0}, previous)

	assert.Equal(t, []float64{1, 0}, next[0])
	assert.Equal(t, []float64{50, 50}, next[1])
}

func TestContains(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 2}}

	assert.True(t, Contains(points, []float64{1, 2}))
	assert.False(t, Contains(points, []float64{2, 1}))
	assert.False(t, Contains(points, []float64{1}))
}
