// Package dto carries the boundary representation of raw structural
// payloads. It normalizes the accepted alternate key spellings to canonical
// field names, then decodes with "mapstructure"; semantic validation of the
// field contents belongs to the transition package.
package dto

import (
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Payload is the decoded shape of a raw structural map. Field values stay
// untyped here on purpose: the transition validator owns the per-entry
// checks and their error taxonomy.
type Payload struct {
	Board  map[string]any `mapstructure:"board"`
	Hands  map[string]any `mapstructure:"hands"`
	Toggle any            `mapstructure:"toggle"`
}

// CanonicalKey maps the accepted alternate spellings of a top-level field
// name onto its canonical form: a leading ':' (the symbol form) is stripped
// and ASCII case is folded. Everything downstream only ever sees canonical
// keys.
func CanonicalKey(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, ":"))
}

// Decode normalizes the top-level keys of raw and decodes the result into a
// Payload. Unknown fields are ignored for forward compatibility.
func Decode(raw map[string]any) (Payload, error) {
	canonical := make(map[string]any, len(raw))
	for k, v := range raw {
		canonical[CanonicalKey(k)] = v
	}

	var p Payload
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &p})
	if err != nil {
		return Payload{}, err
	}
	if err := dec.Decode(canonical); err != nil {
		return Payload{}, err
	}
	return p, nil
}
