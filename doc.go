/*
Package stn models the net difference ("transition") between two positions of
an abstract strategy game: which board cells changed, how hand (reserve)
piece counts changed, and whether the side to move switched.

It is rule-agnostic by design. A transition records what changed, never why
or whether the change was legal, which makes it a natural primitive for diff
tracking, undo/redo stacks, and network synchronization of game state.

# Concept

A Transition is an immutable value built from three parts: a board delta
(coordinate to piece identifier, or to the explicit Vacant marker for cells
that become empty), a hand delta (piece identifier to a non-zero count), and
a toggle flag (the active player switches). Transitions form a monoid under
Compose: board overlays are last-write-wins, hand deltas sum with zero sums
cancelling out, toggles XOR, and Empty() is the identity.

Coordinates and piece identifiers are validated against the grammar packages
cell and qpi; the core itself only consumes them as opaque predicates.

Serialization is deliberately left to the caller: the package exchanges plain
structural maps (Parse / ToStructural) and owns no wire format.

# Usage

	package main

	import (
		"fmt"
		"log"

		stn "github.com/sashite/stn-go"
	)

	func main() {
		// "e2-e4" as a delta: e2 becomes empty, e4 holds the pawn,
		// and the side to move switches.
		move, err := stn.Parse(map[string]any{
			"board":  map[string]any{"e2": nil, "e4": "C:P"},
			"toggle": true,
		})
		if err != nil {
			log.Fatal(err)
		}

		// Fold a sequence of moves into their net effect.
		game, err := stn.Combine(move, map[string]any{
			"board":  map[string]any{"e7": nil, "e5": "c:p"},
			"toggle": true,
		})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(game) // board(e2=,e4=C:P,e5=c:p,e7=) — both toggles cancelled
	}
*/
package stn
