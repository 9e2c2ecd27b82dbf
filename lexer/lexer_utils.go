/*
File    : go-lyra/lexer/lexer_utils.go
Author  : Lyra Maintainers
*/
package lexer

// Character classification helpers for the scanner. Identifiers are
// limited to ASCII letters, digits and underscore, so these predicates
// deliberately avoid unicode tables.

// isWhitespace checks if the given byte is a whitespace character.
// Whitespace is space, tab, carriage return and newline; the newline
// case additionally advances the line counter at the call site.
func isWhitespace(curr byte) bool {
	return curr == ' ' || curr == '\t' || curr == '\r' || curr == '\n'
}

// isNumeric checks if the given byte is an ASCII decimal digit (0-9).
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks if the given byte is an ASCII letter (a-z, A-Z).
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// isAlphanumeric checks if the given byte is an ASCII letter or digit.
func isAlphanumeric(curr byte) bool {
	return isAlpha(curr) || isNumeric(curr)
}
