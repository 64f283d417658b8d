// Package testutils holds shared construction helpers for package tests.
package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sashite/stn-go/pkg/transition"
)

// MustTransition builds a validated transition and fails the test
// immediately when the inputs do not validate.
func MustTransition(t *testing.T, board map[string]string, hands map[string]int, toggle bool) *transition.Transition {
	t.Helper()

	tr, err := transition.New(board, hands, toggle)
	require.NoError(t, err, "failed to build transition")
	return tr
}
