package kmpp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("Fields", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		l.WithK(3).WithDimension(2).WithCount(10).LogSeed(ctx, nil)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "seeding completed", rec["msg"])
		assert.Equal(t, float64(3), rec["k"])
		assert.Equal(t, float64(2), rec["dimension"])
		assert.Equal(t, float64(10), rec["count"])
		assert.NotContains(t, rec, "error")
	})

	t.Run("Errors", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, nil))

		l.WithCount(2).LogConvergence(ctx, 0.5, false, errors.New("boom"))
		l.LogRestarts(ctx, 4, 0, 0, errors.New("bang"))

		assert.Contains(t, buf.String(), "convergence check failed")
		assert.Contains(t, buf.String(), "count=2")
		assert.Contains(t, buf.String(), "restarts failed")
	})

	t.Run("DebugFilteredAtInfo", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

		l.LogPick(ctx, 1, 2, 3.5)
		l.LogConvergence(ctx, 0.5, true, nil)
		assert.Empty(t, buf.String())

		l.LogRestarts(ctx, 4, 1, 12.5, nil)
		assert.Contains(t, buf.String(), "restarts completed")
	})

	t.Run("Noop", func(t *testing.T) {
		l := NoopLogger()
		assert.False(t, l.Enabled(ctx, slog.LevelError))
	})
}
