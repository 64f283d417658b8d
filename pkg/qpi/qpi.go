// Package qpi implements the piece identifier grammar. An identifier names a
// piece type/owner combination as a style group, a colon, an optional '+' or
// '-' state prefix, and a single piece letter. Letter case encodes ownership:
// all-uppercase identifiers belong to the first player, all-lowercase to the
// second; mixed case is rejected.
package qpi

import "strings"

// Valid reports whether s is a well-formed piece identifier.
// "C:P", "c:p" and "S:+R" are valid; "C:p", ":P" and "C:" are not.
func Valid(s string) bool {
	colon := strings.IndexByte(s, ':')
	if colon <= 0 || colon == len(s)-1 {
		return false
	}

	style, piece := s[:colon], s[colon+1:]

	up := isUpper(style[0])
	for i := 0; i < len(style); i++ {
		if !isLetter(style[i]) || isUpper(style[i]) != up {
			return false
		}
	}

	if piece[0] == '+' || piece[0] == '-' {
		piece = piece[1:]
	}
	if len(piece) != 1 {
		return false
	}
	return isLetter(piece[0]) && isUpper(piece[0]) == up
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
