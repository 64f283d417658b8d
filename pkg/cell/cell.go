// Package cell implements the coordinate grammar used to address board
// locations. A coordinate is one or more lowercase letters (the file group)
// followed by a rank number counted from 1.
package cell

// Valid reports whether s is a well-formed coordinate.
// The grammar is [a-z]+ followed by a decimal number with no leading zero:
// "e4" and "aa10" are valid; "a0", "E4" and "4e" are not.
func Valid(s string) bool {
	i := 0
	for i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
		i++
	}
	if i == 0 || i == len(s) {
		return false
	}
	if s[i] == '0' {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
