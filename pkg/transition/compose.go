package transition

import "maps"

// Compose merges t with next into the net transition equivalent to applying
// t and then next. Board cells take next's value wherever both touch the
// same cell (last write wins); hand deltas sum, with keys whose sum is zero
// dropped entirely; the toggle flags XOR, so two switches cancel.
//
// Compose is associative, and Empty() is its two-sided identity. It is not
// commutative: the board overlay is order-sensitive.
func (t *Transition) Compose(next *Transition) *Transition {
	board := maps.Clone(t.board)
	if board == nil && len(next.board) > 0 {
		board = make(map[string]string, len(next.board))
	}
	for coord, v := range next.board {
		board[coord] = v
	}

	hands := maps.Clone(t.hands)
	if hands == nil && len(next.hands) > 0 {
		hands = make(map[string]int, len(next.hands))
	}
	for piece, d := range next.hands {
		if sum := hands[piece] + d; sum == 0 {
			delete(hands, piece)
		} else {
			hands[piece] = sum
		}
	}

	out, err := New(board, hands, t.toggle != next.toggle)
	if err != nil {
		// Unreachable: the merge of two validated transitions preserves
		// every invariant the validator checks.
		panic(err)
	}
	return out
}

// Inverse returns the transition that undoes t's hand deltas: hand counts
// negate while the toggle is carried unchanged, so composing t with its
// inverse XORs the switch away and restores the pre-transition side to move.
// Board changes are kept as-is: without the prior board snapshot the
// previous per-cell contents are unknowable — see InverseWithBoard.
func (t *Transition) Inverse() *Transition {
	hands := make(map[string]int, len(t.hands))
	for piece, d := range t.hands {
		hands[piece] = -d
	}
	return &Transition{board: t.board, hands: hands, toggle: t.toggle}
}

// InverseWithBoard returns the transition that undoes t given prev, the
// per-cell contents from before t was applied. Every coordinate t touched is
// restored to prev's value; a coordinate missing from prev is restored to
// Vacant, so supplying a complete snapshot of the touched cells is the
// caller's responsibility. Hands and toggle invert exactly as in Inverse.
//
// prev values are external input and are validated; an invalid piece
// identifier in the snapshot fails with the usual taxonomy.
func (t *Transition) InverseWithBoard(prev map[string]string) (*Transition, error) {
	board := make(map[string]string, len(t.board))
	for coord := range t.board {
		board[coord] = prev[coord]
	}
	return New(board, t.Inverse().hands, t.toggle)
}
