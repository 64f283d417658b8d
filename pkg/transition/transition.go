// Package transition holds the immutable delta value type describing the net
// difference between two positions of an abstract strategy game, together
// with its validation and its composition algebra. It records what changed —
// board cells, hand counts, side to move — never why or whether the change
// was legal.
package transition

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Vacant is the explicit empty marker for board values: a coordinate mapped
// to Vacant means the cell becomes empty, which is distinct from the
// coordinate being absent from the delta altogether.
const Vacant = ""

// Transition is the net difference between two positions: which board cells
// changed, how hand (reserve) counts changed, and whether the active player
// switches. A Transition is validated eagerly on construction and never
// mutated afterwards, so instances are safe to share across concurrent
// readers without synchronization.
type Transition struct {
	board  map[string]string
	hands  map[string]int
	toggle bool
}

var (
	emptySingleton = &Transition{}
	passSingleton  = &Transition{toggle: true}
)

// Empty returns the shared identity transition: no board changes, no hand
// changes, toggle false. Composing any transition with it is a no-op.
func Empty() *Transition { return emptySingleton }

// Pass returns the shared toggle-only transition.
func Pass() *Transition { return passSingleton }

// New builds a validated Transition. Board values are piece identifiers or
// Vacant; hand deltas must be non-zero. The input maps are copied, so the
// caller keeps ownership of its arguments.
func New(board map[string]string, hands map[string]int, toggle bool) (*Transition, error) {
	if err := validateBoard(board); err != nil {
		return nil, err
	}
	if err := validateHands(hands); err != nil {
		return nil, err
	}
	return &Transition{
		board:  maps.Clone(board),
		hands:  maps.Clone(hands),
		toggle: toggle,
	}, nil
}

// BoardChange returns the recorded change for coord. The boolean reports
// whether coord is part of the delta at all; when it is, a value of Vacant
// means the cell becomes empty.
func (t *Transition) BoardChange(coord string) (string, bool) {
	v, ok := t.board[coord]
	return v, ok
}

// HandChange returns the delta recorded for piece, and whether one exists.
func (t *Transition) HandChange(piece string) (int, bool) {
	d, ok := t.hands[piece]
	return d, ok
}

// HasBoardChange reports whether coord is part of the board delta.
func (t *Transition) HasBoardChange(coord string) bool {
	_, ok := t.board[coord]
	return ok
}

// HasHandChange reports whether piece is part of the hand delta.
func (t *Transition) HasHandChange(piece string) bool {
	_, ok := t.hands[piece]
	return ok
}

// BoardChanges returns a copy of the board delta map.
func (t *Transition) BoardChanges() map[string]string {
	return maps.Clone(t.board)
}

// HandChanges returns a copy of the hand delta map.
func (t *Transition) HandChanges() map[string]int {
	return maps.Clone(t.hands)
}

// Toggle reports whether the active player switches.
func (t *Transition) Toggle() bool { return t.toggle }

// IsEmpty reports whether t changes nothing at all.
func (t *Transition) IsEmpty() bool {
	return len(t.board) == 0 && len(t.hands) == 0 && !t.toggle
}

// IsPass reports whether t only switches the active player.
func (t *Transition) IsPass() bool {
	return len(t.board) == 0 && len(t.hands) == 0 && t.toggle
}

// WithBoardChange returns a new Transition with the change for coord set to
// value (a piece identifier or Vacant). The receiver is left untouched.
func (t *Transition) WithBoardChange(coord, value string) (*Transition, error) {
	if err := validateBoardEntry(coord, value); err != nil {
		return nil, err
	}
	board := maps.Clone(t.board)
	if board == nil {
		board = make(map[string]string, 1)
	}
	board[coord] = value
	return &Transition{board: board, hands: t.hands, toggle: t.toggle}, nil
}

// WithHandChange returns a new Transition with the delta for piece set to
// delta. The receiver is left untouched.
func (t *Transition) WithHandChange(piece string, delta int) (*Transition, error) {
	if err := validateHandEntry(piece, delta); err != nil {
		return nil, err
	}
	hands := maps.Clone(t.hands)
	if hands == nil {
		hands = make(map[string]int, 1)
	}
	hands[piece] = delta
	return &Transition{board: t.board, hands: hands, toggle: t.toggle}, nil
}

// WithToggle returns a new Transition with the toggle flag set to toggle.
func (t *Transition) WithToggle(toggle bool) *Transition {
	return &Transition{board: t.board, hands: t.hands, toggle: toggle}
}

// WithoutBoardChange returns a new Transition with no change recorded for
// coord.
func (t *Transition) WithoutBoardChange(coord string) *Transition {
	board := maps.Clone(t.board)
	delete(board, coord)
	return &Transition{board: board, hands: t.hands, toggle: t.toggle}
}

// WithoutHandChange returns a new Transition with no delta recorded for
// piece.
func (t *Transition) WithoutHandChange(piece string) *Transition {
	hands := maps.Clone(t.hands)
	delete(hands, piece)
	return &Transition{board: t.board, hands: hands, toggle: t.toggle}
}

// Equal reports structural equality over board changes, hand changes and the
// toggle flag. It is consistent with String, so String output can serve as a
// map or set key standing in for the transition itself.
func (t *Transition) Equal(o *Transition) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.toggle == o.toggle &&
		maps.Equal(t.board, o.board) &&
		maps.Equal(t.hands, o.hands)
}

// String renders a stable canonical encoding with sorted keys, for example
// "board(e2=,e4=C:P) hands(P=-1) toggle". Equal transitions always render
// identically.
func (t *Transition) String() string {
	if t.IsEmpty() {
		return "empty"
	}

	var parts []string
	if len(t.board) > 0 {
		var b strings.Builder
		b.WriteString("board(")
		for i, k := range slices.Sorted(maps.Keys(t.board)) {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(t.board[k])
		}
		b.WriteByte(')')
		parts = append(parts, b.String())
	}
	if len(t.hands) > 0 {
		var b strings.Builder
		b.WriteString("hands(")
		for i, k := range slices.Sorted(maps.Keys(t.hands)) {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%s=%+d", k, t.hands[k])
		}
		b.WriteByte(')')
		parts = append(parts, b.String())
	}
	if t.toggle {
		parts = append(parts, "toggle")
	}
	return strings.Join(parts, " ")
}
