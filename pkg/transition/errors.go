package transition

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the closed set of validation failures.
type ErrorKind uint8

const (
	// KindInvalid covers malformed shapes: the payload is not a structural
	// map, a field has the wrong container type, or the toggle is not a
	// strict boolean.
	KindInvalid ErrorKind = iota
	// KindCoordinate marks a board key rejected by the coordinate grammar.
	KindCoordinate
	// KindPiece marks a board value or hand key rejected by the piece
	// identifier grammar.
	KindPiece
	// KindDelta marks a hand value that is not a non-zero integer.
	KindDelta
)

func (k ErrorKind) String() string {
	switch k {
	case KindCoordinate:
		return "coordinate"
	case KindPiece:
		return "piece"
	case KindDelta:
		return "delta"
	default:
		return "validation"
	}
}

// ValidationError represents a single field validation failure.
// The taxonomy is closed: callers branch on Kind rather than on type.
type ValidationError struct {
	Kind   ErrorKind
	Field  string // offending key, or the top-level field name for shape errors
	Value  any    // the value that failed validation, when one exists
	Reason string // human-readable reason for failure
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s error: field %q: %s", e.Kind, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s error: field %q: %s (got %v)", e.Kind, e.Field, e.Reason, e.Value)
}

// AsValidationError returns the *ValidationError inside err, if any.
// Otherwise returns nil and false.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
