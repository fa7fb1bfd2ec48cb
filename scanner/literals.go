package scanner

// identBufCap bounds the internal buffer used to compare a scanned
// identifier against the keyword table. Identifiers longer than this are
// still fully consumed from the input; the buffer is simply clamped, and
// any would-be match longer than a keyword naturally mismatches.
const identBufCap = 63

type identBuf struct {
	bytes [identBufCap]byte
	n     int
}

func (b *identBuf) push(r rune) {
	if b.n < identBufCap {
		b.bytes[b.n] = byte(r)
		b.n++
	}
}

func (b *identBuf) String() string {
	return string(b.bytes[:b.n])
}

// scanLowerIdentOrKeyword handles a lookahead in 'a'-'z': scans
// `[a-z][A-Za-z0-9_]*` and resolves it against the keyword table.
func (s *State) scanLowerIdentOrKeyword(lex Lexer, valid ValidSymbols) (Symbol, bool) {
	var buf identBuf
	buf.push(lex.Lookahead())
	lex.Advance(false)
	for isIdentContinue(lex.Lookahead()) {
		buf.push(lex.Lookahead())
		lex.Advance(false)
	}
	lex.MarkEnd()

	if kw, ok := keywords[buf.String()]; ok && valid[kw] {
		return kw, true
	}
	if !valid[LowerID] {
		return 0, false
	}
	return LowerID, true
}

// scanUpperIdent handles a lookahead in 'A'-'Z': scans
// `[A-Z][A-Za-z0-9_]*`. The single spelling "Fn" is special-cased to
// KW_UPPER_FN when that symbol is valid.
func (s *State) scanUpperIdent(lex Lexer, valid ValidSymbols) (Symbol, bool) {
	var buf identBuf
	buf.push(lex.Lookahead())
	lex.Advance(false)
	for isIdentContinue(lex.Lookahead()) {
		buf.push(lex.Lookahead())
		lex.Advance(false)
	}
	lex.MarkEnd()

	if buf.String() == "Fn" && valid[KwUpperFn] {
		return KwUpperFn, true
	}
	if !valid[UpperID] {
		return 0, false
	}
	return UpperID, true
}

// scanUnderscore handles a lookahead of '_'. A lone '_' ends the token
// after exactly one byte (so a run of underscores is a sequence of
// UNDERSCORE tokens); if more underscores are immediately followed by a
// letter, the whole run plus the identifier tail is re-marked as
// UPPER_ID/LOWER_ID instead.
func (s *State) scanUnderscore(lex Lexer, valid ValidSymbols) (Symbol, bool) {
	lex.Advance(false) // consume the first '_'
	lex.MarkEnd()      // tentative token: just "_"

	for lex.Lookahead() == '_' {
		lex.Advance(false)
	}

	if isLetter(lex.Lookahead()) {
		upper := isUpper(lex.Lookahead())
		lex.Advance(false)
		for isIdentContinue(lex.Lookahead()) {
			lex.Advance(false)
		}
		lex.MarkEnd()
		if upper {
			if !valid[UpperID] {
				return 0, false
			}
			return UpperID, true
		}
		if !valid[LowerID] {
			return 0, false
		}
		return LowerID, true
	}

	if !valid[Underscore] {
		return 0, false
	}
	return Underscore, true
}

// scanQuoteOrLabel handles a lookahead of '\'': either a LABEL
// ('loop1) or a CHAR_LITERAL ('a', '\n') sharing the same opening byte.
func (s *State) scanQuoteOrLabel(lex Lexer, valid ValidSymbols) (Symbol, bool) {
	lex.Advance(false) // consume opening '
	la := lex.Lookahead()

	if isLower(la) && valid[Label] {
		bodyLen := 0
		lex.Advance(false)
		bodyLen++
		for isIdentContinue(lex.Lookahead()) {
			lex.Advance(false)
			bodyLen++
		}
		if lex.Lookahead() == '\'' && bodyLen == 1 && valid[CharLiteral] {
			lex.Advance(false)
			lex.MarkEnd()
			return CharLiteral, true
		}
		lex.MarkEnd()
		return Label, true
	}

	if !valid[CharLiteral] {
		return 0, false
	}

	switch {
	case la == '\\':
		lex.Advance(false)
		if lex.EOF() {
			return 0, false
		}
		lex.Advance(false) // escape byte, consumed uninterpreted
	case la != '\'' && la != 0 && !lex.EOF():
		lex.Advance(false)
	default:
		return 0, false
	}

	if lex.Lookahead() != '\'' {
		return 0, false
	}
	lex.Advance(false)
	lex.MarkEnd()
	return CharLiteral, true
}

// scanIntLiteral handles a lookahead in '0'-'9': `0x[_0-9A-Fa-f]+`,
// `0b[_01]+`, or `[0-9][_0-9]*`.
func (s *State) scanIntLiteral(lex Lexer, valid ValidSymbols) (Symbol, bool) {
	if !valid[IntLiteral] {
		return 0, false
	}

	first := lex.Lookahead()
	lex.Advance(false)

	if first == '0' && lex.Lookahead() == 'x' {
		lex.Advance(false)
		n := 0
		for isHexDigit(lex.Lookahead()) || lex.Lookahead() == '_' {
			lex.Advance(false)
			n++
		}
		if n == 0 {
			return 0, false
		}
		lex.MarkEnd()
		return IntLiteral, true
	}

	if first == '0' && lex.Lookahead() == 'b' {
		lex.Advance(false)
		n := 0
		for lex.Lookahead() == '0' || lex.Lookahead() == '1' || lex.Lookahead() == '_' {
			lex.Advance(false)
			n++
		}
		if n == 0 {
			return 0, false
		}
		lex.MarkEnd()
		return IntLiteral, true
	}

	for isDigit(lex.Lookahead()) || lex.Lookahead() == '_' {
		lex.Advance(false)
	}
	lex.MarkEnd()
	return IntLiteral, true
}
