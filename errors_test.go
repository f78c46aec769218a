package kmpp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("InvalidK", func(t *testing.T) {
		assert.ErrorIs(t, ErrInvalidK, ErrInvalidArgument)
		assert.NotErrorIs(t, ErrDegenerateInput, ErrInvalidArgument)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		var err error = &ErrDimensionMismatch{Index: 2, Expected: 3, Actual: 4}
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, "dimension mismatch at index 2: expected 3, got 4", err.Error())

		var dm *ErrDimensionMismatch
		assert.True(t, errors.As(err, &dm))
		assert.Equal(t, 4, dm.Actual)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		var err error = &ErrLengthMismatch{New: 2, Old: 3}
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, "centroid count mismatch: new has 2, old has 3", err.Error())
	})
}
