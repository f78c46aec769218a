package kmpp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmpp/testutil"
)

func TestSeedRestarts(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(4711)
	raw, labels := rng.ClusteredPoints(120, 2, 3, 100, 0.1)
	points := PointSet(raw)

	best, err := SeedRestarts(ctx, points, 3, 8, 42, WithWeighting(WeightSquared))
	require.NoError(t, err)
	require.Len(t, best.Centroids, 3)
	require.Len(t, best.Indices, 3)

	t.Run("CoversEveryCluster", func(t *testing.T) {
		covered := map[int]bool{}
		for _, idx := range best.Indices {
			covered[labels[idx]] = true
		}
		assert.Len(t, covered, 3)
	})

	t.Run("Deterministic", func(t *testing.T) {
		again, err := SeedRestarts(ctx, points, 3, 8, 42, WithWeighting(WeightSquared))
		require.NoError(t, err)
		assert.Equal(t, best, again)
	})

	t.Run("NoRestartIsBetter", func(t *testing.T) {
		for r := range 8 {
			s := NewSeeder(WithRand(restartRand(42, r)), WithWeighting(WeightSquared))
			centroids, err := s.Seed(points, 3)
			require.NoError(t, err)

			phi, err := Potential(points, centroids)
			require.NoError(t, err)
			assert.LessOrEqual(t, best.Potential, phi)
			if r == best.Restart {
				assert.Equal(t, best.Centroids, centroids)
			}
		}
	})
}

func TestSeedRestarts_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := SeedRestarts(ctx, corners(), 2, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = SeedRestarts(ctx, corners(), 5, 4, 1)
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = SeedRestarts(ctx, PointSet{{1, 1}, {1, 1}}, 2, 4, 1)
	assert.ErrorIs(t, err, ErrDegenerateInput)
}

func TestSeedRestarts_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SeedRestarts(ctx, corners(), 2, 16, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeedRestarts_Metrics(t *testing.T) {
	mc := &BasicMetricsCollector{}

	_, err := SeedRestarts(context.Background(), corners(), 2, 4, 1, WithMetricsCollector(mc))
	require.NoError(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.RestartsCount)
	assert.Equal(t, int64(4), stats.RestartsSeedings)
	assert.Equal(t, int64(4), stats.SeedCount)
	assert.Equal(t, int64(8), stats.SeedCentroids)
}

func TestPotential(t *testing.T) {
	points := corners()

	phi, err := Potential(points, CentroidSet{{0, 0}})
	require.NoError(t, err)
	assert.InDelta(t, 400.0, phi, 1e-9) // 0 + 100 + 100 + 200

	phi, err = Potential(points, CentroidSet{{0, 0}, {10, 10}})
	require.NoError(t, err)
	assert.InDelta(t, 200.0, phi, 1e-9)

	phi, err = Potential(points, CentroidSet(points))
	require.NoError(t, err)
	assert.Zero(t, phi)

	_, err = Potential(points, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Potential(points, CentroidSet{{0}})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
