/*
File    : mlang/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// isWhitespace reports whether b is a space, tab, carriage return, or
// newline.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// isAlpha reports whether b is an ASCII letter. Identifiers start with an
// ASCII letter or underscore and continue with letters, digits, and
// underscores.
func isAlpha(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// isDigit reports whether b is an ASCII digit.
func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
