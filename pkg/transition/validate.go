package transition

import (
	"maps"
	"math"
	"slices"

	"github.com/sashite/stn-go/pkg/cell"
	"github.com/sashite/stn-go/pkg/qpi"
)

// Validation is eager and total: construction either fully succeeds or fails
// on the first offending field, in sorted key order so failures are
// deterministic. The coordinate and piece identifier grammars are external
// collaborators; this package only consumes them as predicates.

func validateBoard(board map[string]string) error {
	for _, coord := range slices.Sorted(maps.Keys(board)) {
		if err := validateBoardEntry(coord, board[coord]); err != nil {
			return err
		}
	}
	return nil
}

func validateHands(hands map[string]int) error {
	for _, piece := range slices.Sorted(maps.Keys(hands)) {
		if err := validateHandEntry(piece, hands[piece]); err != nil {
			return err
		}
	}
	return nil
}

func validateBoardEntry(coord, value string) error {
	if !cell.Valid(coord) {
		return &ValidationError{Kind: KindCoordinate, Field: coord, Reason: "not a valid coordinate"}
	}
	if value != Vacant && !qpi.Valid(value) {
		return &ValidationError{Kind: KindPiece, Field: coord, Value: value, Reason: "not a valid piece identifier"}
	}
	return nil
}

func validateHandEntry(piece string, delta int) error {
	if !qpi.Valid(piece) {
		return &ValidationError{Kind: KindPiece, Field: piece, Reason: "not a valid piece identifier"}
	}
	if delta == 0 {
		return &ValidationError{Kind: KindDelta, Field: piece, Value: delta, Reason: "hand delta must be non-zero"}
	}
	return nil
}

// NewFromRaw validates a raw structural payload whose field values are still
// untyped, as produced by generic decoders. A nil board value is the Vacant
// marker; hand deltas may arrive as float64 (the usual JSON number type) and
// are accepted when whole; the toggle must be strictly boolean or absent.
func NewFromRaw(board, hands map[string]any, toggle any) (*Transition, error) {
	b := make(map[string]string, len(board))
	for _, coord := range slices.Sorted(maps.Keys(board)) {
		// The key check comes first so a bad coordinate is reported as such
		// even when the value is malformed too.
		if !cell.Valid(coord) {
			return nil, &ValidationError{Kind: KindCoordinate, Field: coord, Reason: "not a valid coordinate"}
		}
		switch v := board[coord].(type) {
		case nil:
			b[coord] = Vacant
		case string:
			b[coord] = v
		default:
			return nil, &ValidationError{Kind: KindPiece, Field: coord, Value: v, Reason: "not a valid piece identifier"}
		}
	}

	h := make(map[string]int, len(hands))
	for _, piece := range slices.Sorted(maps.Keys(hands)) {
		if !qpi.Valid(piece) {
			return nil, &ValidationError{Kind: KindPiece, Field: piece, Reason: "not a valid piece identifier"}
		}
		d, ok := asInt(hands[piece])
		if !ok {
			return nil, &ValidationError{Kind: KindDelta, Field: piece, Value: hands[piece], Reason: "hand delta must be a non-zero integer"}
		}
		h[piece] = d
	}

	var flag bool
	switch v := toggle.(type) {
	case nil:
		// absent, defaults to false
	case bool:
		flag = v
	default:
		return nil, &ValidationError{Kind: KindInvalid, Field: "toggle", Value: v, Reason: "must be a boolean"}
	}

	return New(b, h, flag)
}

// asInt coerces the numeric types generic decoders produce. Floats are
// accepted only when they carry a whole number.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n == float64(int64(n)) {
			return int(n), true
		}
		return 0, false
	case float32:
		if float64(n) == float64(int64(n)) {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}
