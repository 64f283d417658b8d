package stn

import (
	"fmt"

	"github.com/sashite/stn-go/internal/dto"
	"github.com/sashite/stn-go/pkg/transition"
)

// Transition is re-exported so that common use only needs this package.
type Transition = transition.Transition

// Vacant is the board value marking a cell that becomes empty.
const Vacant = transition.Vacant

// IsValid reports whether payload parses as a well-formed transition.
// It accepts the same payloads as Parse and never returns an error.
func IsValid(payload any) bool {
	_, err := Parse(payload)
	return err == nil
}

// Parse converts payload into a Transition. The payload is either a raw
// structural map — optional "board", "hands" and "toggle" fields, with
// alternate key spellings such as ":board" or "Board" accepted — or an
// already-constructed *Transition, which is returned unchanged rather than
// copied. Malformed input fails with a *transition.ValidationError.
func Parse(payload any) (*Transition, error) {
	switch v := payload.(type) {
	case *Transition:
		if v == nil {
			return nil, &transition.ValidationError{Kind: transition.KindInvalid, Field: "payload", Reason: "nil transition"}
		}
		return v, nil
	case map[string]any:
		p, err := dto.Decode(v)
		if err != nil {
			return nil, &transition.ValidationError{Kind: transition.KindInvalid, Field: "payload", Reason: err.Error()}
		}
		return transition.NewFromRaw(p.Board, p.Hands, p.Toggle)
	default:
		return nil, &transition.ValidationError{Kind: transition.KindInvalid, Field: "payload", Value: payload, Reason: "payload must be a structural map or a Transition"}
	}
}

// New builds a validated Transition from already-structured arguments.
// Board values are piece identifiers or Vacant; hand deltas must be
// non-zero integers.
func New(board map[string]string, hands map[string]int, toggle bool) (*Transition, error) {
	return transition.New(board, hands, toggle)
}

// Empty returns the canonical empty transition, the identity of Combine.
func Empty() *Transition { return transition.Empty() }

// Pass returns the canonical toggle-only transition.
func Pass() *Transition { return transition.Pass() }

// Combine parses every element — each a *Transition or a raw structural
// map — and left-folds the binary composition starting from Empty().
// Combining nothing returns Empty().
func Combine(items ...any) (*Transition, error) {
	acc := transition.Empty()
	for i, item := range items {
		t, err := Parse(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		acc = acc.Compose(t)
	}
	return acc, nil
}

// ToStructural renders t as the minimal canonical structural map: "board"
// and "hands" are present only when non-empty and "toggle" only when true,
// with board cells that become empty encoded as nil values. The result
// round-trips through Parse.
func ToStructural(t *Transition) map[string]any {
	out := make(map[string]any)

	if changes := t.BoardChanges(); len(changes) > 0 {
		board := make(map[string]any, len(changes))
		for coord, v := range changes {
			if v == Vacant {
				board[coord] = nil
			} else {
				board[coord] = v
			}
		}
		out["board"] = board
	}

	if changes := t.HandChanges(); len(changes) > 0 {
		hands := make(map[string]any, len(changes))
		for piece, d := range changes {
			hands[piece] = d
		}
		out["hands"] = hands
	}

	if t.Toggle() {
		out["toggle"] = true
	}
	return out
}
