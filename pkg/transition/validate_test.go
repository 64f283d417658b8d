package transition_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sashite/stn-go/pkg/transition"
)

func TestNewFromRaw(t *testing.T) {
	t.Run("Nil Board Value Is The Vacant Marker", func(t *testing.T) {
		tr, err := transition.NewFromRaw(
			map[string]any{"e2": nil, "e4": "C:P"},
			nil, nil,
		)
		require.NoError(t, err)

		v, ok := tr.BoardChange("e2")
		assert.True(t, ok)
		assert.Equal(t, transition.Vacant, v)
		assert.False(t, tr.Toggle(), "absent toggle defaults to false")
	})

	t.Run("Whole Floats Are Integers", func(t *testing.T) {
		// encoding/json decodes every number as float64.
		tr, err := transition.NewFromRaw(nil, map[string]any{"S:P": float64(-1)}, nil)
		require.NoError(t, err)

		d, _ := tr.HandChange("S:P")
		assert.Equal(t, -1, d)
	})

	t.Run("Fractional Float Is Rejected", func(t *testing.T) {
		_, err := transition.NewFromRaw(nil, map[string]any{"S:P": 1.5}, nil)
		require.Error(t, err)
		verr, ok := transition.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, transition.KindDelta, verr.Kind)
	})

	t.Run("Out Of Range Unsigned Delta Is Rejected", func(t *testing.T) {
		// uint64 values above MaxInt must not wrap into a negative delta.
		_, err := transition.NewFromRaw(nil, map[string]any{"S:P": uint64(math.MaxUint64)}, nil)
		require.Error(t, err)
		verr, ok := transition.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, transition.KindDelta, verr.Kind)
	})

	t.Run("Zero Delta Is Rejected", func(t *testing.T) {
		_, err := transition.NewFromRaw(nil, map[string]any{"S:P": float64(0)}, nil)
		require.Error(t, err)
		verr, ok := transition.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, transition.KindDelta, verr.Kind)
	})

	t.Run("Non String Board Value Is A Piece Error", func(t *testing.T) {
		_, err := transition.NewFromRaw(map[string]any{"e4": 42}, nil, nil)
		require.Error(t, err)
		verr, ok := transition.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, transition.KindPiece, verr.Kind)
	})

	t.Run("Bad Coordinate Wins Over Bad Value", func(t *testing.T) {
		_, err := transition.NewFromRaw(map[string]any{"a0": 42}, nil, nil)
		require.Error(t, err)
		verr, ok := transition.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, transition.KindCoordinate, verr.Kind)
	})

	t.Run("Truthy Toggle Is Rejected", func(t *testing.T) {
		_, err := transition.NewFromRaw(nil, nil, "yes")
		require.Error(t, err)
		verr, ok := transition.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, transition.KindInvalid, verr.Kind)
		assert.Equal(t, "toggle", verr.Field)
	})

	t.Run("Non Numeric Delta Is Rejected", func(t *testing.T) {
		_, err := transition.NewFromRaw(nil, map[string]any{"S:P": "one"}, nil)
		require.Error(t, err)
		verr, ok := transition.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, transition.KindDelta, verr.Kind)
	})
}
