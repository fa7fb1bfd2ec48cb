package scanner

// Byte-level character classification helpers. The scanner's grammar is
// explicitly ASCII; a non-ASCII byte falls through to the operator
// dispatch, where it fails to match and the call reports no token.

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLetter(r rune) bool {
	return isLower(r) || isUpper(r)
}

func isIdentContinue(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}

func isSpaceOrTab(r rune) bool {
	return r == ' ' || r == '\t'
}

func isNewline(r rune) bool {
	return r == '\n' || r == '\r'
}

// skipSpacesAndTabs consumes a run of spaces and tabs.
func skipSpacesAndTabs(lex Lexer) {
	for isSpaceOrTab(lex.Lookahead()) {
		lex.Advance(true)
	}
}
