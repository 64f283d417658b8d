package qpi

import "testing"

func TestValid(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"C:P", true},
		{"c:p", true},
		{"S:P", true},
		{"SHOGI:K", true},
		{"C:+P", true}, // promoted state prefix
		{"c:-p", true},
		{"C:p", false},  // mixed case
		{"c:P", false},  // mixed case
		{"Ch:P", false}, // mixed case in the style group
		{":P", false},   // missing style
		{"C:", false},   // missing piece
		{"C", false},    // missing colon
		{"C:PP", false}, // piece is a single letter
		{"C:+", false},  // prefix without a piece
		{"C::P", false},
		{"C:1", false},
		{"", false},
	}

	for _, c := range cases {
		if got := Valid(c.id); got != c.want {
			t.Errorf("Valid(%q) = %v, want %v", c.id, got, c.want)
		}
	}
}
