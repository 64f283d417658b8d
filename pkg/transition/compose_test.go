package transition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sashite/stn-go/internal/testutils"
	"github.com/sashite/stn-go/pkg/transition"
)

func TestCompose_Identity(t *testing.T) {
	tr := testutils.MustTransition(t, map[string]string{"e4": "C:P"}, map[string]int{"c:p": 1}, true)

	assert.True(t, transition.Empty().Compose(tr).Equal(tr))
	assert.True(t, tr.Compose(transition.Empty()).Equal(tr))
}

func TestCompose_Associativity(t *testing.T) {
	a := testutils.MustTransition(t, map[string]string{"e2": transition.Vacant, "e4": "C:P"}, nil, true)
	b := testutils.MustTransition(t, map[string]string{"e4": "C:Q"}, map[string]int{"C:P": 1}, true)
	c := testutils.MustTransition(t, nil, map[string]int{"C:P": -1, "c:p": 2}, true)

	left := a.Compose(b).Compose(c)
	right := a.Compose(b.Compose(c))
	assert.True(t, left.Equal(right))
}

func TestCompose_BoardOverlay(t *testing.T) {
	first := testutils.MustTransition(t, map[string]string{"e1": "C:A"}, nil, false)
	second := testutils.MustTransition(t, map[string]string{"e1": "C:B"}, nil, false)

	// Last write wins per coordinate, so operand order matters.
	v, _ := first.Compose(second).BoardChange("e1")
	assert.Equal(t, "C:B", v)
	v, _ = second.Compose(first).BoardChange("e1")
	assert.Equal(t, "C:A", v)
}

func TestCompose_HandsCancellation(t *testing.T) {
	drop := testutils.MustTransition(t, nil, map[string]int{"S:P": -1}, false)
	pick := testutils.MustTransition(t, nil, map[string]int{"S:P": 1}, false)

	net := drop.Compose(pick)
	assert.False(t, net.HasHandChange("S:P"), "opposite deltas must cancel out of the result")
	assert.True(t, net.IsEmpty())
}

func TestCompose_ToggleParity(t *testing.T) {
	net := transition.Empty()
	for i := 0; i < 5; i++ {
		net = net.Compose(transition.Pass())
	}
	assert.True(t, net.Toggle(), "odd number of toggles persists")

	net = net.Compose(transition.Pass())
	assert.False(t, net.Toggle(), "even number of toggles cancels")
}

func TestInverse(t *testing.T) {
	tr := testutils.MustTransition(t,
		map[string]string{"e2": transition.Vacant, "e4": "C:P"},
		map[string]int{"C:P": -1, "c:p": 2},
		true,
	)

	inv := tr.Inverse()

	t.Run("Hands Negate", func(t *testing.T) {
		d, _ := inv.HandChange("C:P")
		assert.Equal(t, 1, d)
		d, _ = inv.HandChange("c:p")
		assert.Equal(t, -2, d)
	})

	t.Run("Board Is Untouched", func(t *testing.T) {
		v, ok := inv.BoardChange("e4")
		assert.True(t, ok)
		assert.Equal(t, "C:P", v)
	})

	t.Run("Toggle Carries Unchanged And Cancels Under Compose", func(t *testing.T) {
		assert.True(t, inv.Toggle())
		undone := tr.Compose(inv)
		assert.False(t, undone.Toggle())
		assert.False(t, undone.HasHandChange("C:P"))
	})
}

func TestInverseWithBoard(t *testing.T) {
	tr := testutils.MustTransition(t,
		map[string]string{"e2": transition.Vacant, "e4": "C:P"},
		map[string]int{"c:p": 1},
		true,
	)

	t.Run("Restores Snapshot Values", func(t *testing.T) {
		inv, err := tr.InverseWithBoard(map[string]string{"e2": "C:P", "e4": transition.Vacant})
		require.NoError(t, err)

		v, _ := inv.BoardChange("e2")
		assert.Equal(t, "C:P", v)
		v, ok := inv.BoardChange("e4")
		assert.True(t, ok)
		assert.Equal(t, transition.Vacant, v)

		d, _ := inv.HandChange("c:p")
		assert.Equal(t, -1, d)
		assert.True(t, inv.Toggle())
	})

	t.Run("Missing Snapshot Entry Restores Vacant", func(t *testing.T) {
		// The caller owns snapshot completeness; an omitted coordinate is
		// treated as a cell that was empty.
		inv, err := tr.InverseWithBoard(map[string]string{"e2": "C:P"})
		require.NoError(t, err)

		v, ok := inv.BoardChange("e4")
		assert.True(t, ok)
		assert.Equal(t, transition.Vacant, v)
	})

	t.Run("Invalid Snapshot Piece Fails", func(t *testing.T) {
		_, err := tr.InverseWithBoard(map[string]string{"e2": "pawn", "e4": transition.Vacant})
		require.Error(t, err)
		verr, ok := transition.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, transition.KindPiece, verr.Kind)
	})
}
