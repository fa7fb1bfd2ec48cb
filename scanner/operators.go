package scanner

// scanOperator handles every remaining single- and two-character operator
// or punctuator.
func (s *State) scanOperator(lex Lexer, valid ValidSymbols, r rune) (Symbol, bool) {
	switch r {
	case '=':
		return s.scanMaybeTwoChar(lex, valid, '=', EqEq, Eq)
	case '!':
		return s.scanMaybeTwoChar(lex, valid, '=', Neq, Exclamation)
	case '<':
		return s.scanMaybeTwoOfTwo(lex, valid, '=', LtEq, '<', LShift, Lt)
	case '>':
		return s.scanMaybeTwoOfTwo(lex, valid, '=', GtEq, '>', RShift, Gt)
	case '+':
		return s.scanMaybeTwoChar(lex, valid, '=', PlusEq, Plus)
	case '-':
		return s.scanMaybeTwoChar(lex, valid, '=', MinusEq, Minus)
	case '*':
		return s.scanMaybeTwoChar(lex, valid, '=', StarEq, Star)
	case '^':
		return s.scanMaybeTwoChar(lex, valid, '=', CaretEq, Caret)
	case '&':
		return s.scanMaybeTwoChar(lex, valid, '&', AmpAmp, Amp)
	case '.':
		return s.scanMaybeTwoChar(lex, valid, '.', DotDot, Dot)
	case '|':
		return s.scanSingleChar(lex, valid, Pipe)
	case '~':
		return s.scanSingleChar(lex, valid, Tilde)
	case '/':
		return s.scanSingleChar(lex, valid, Slash)
	case '%':
		return s.scanSingleChar(lex, valid, Percent)
	case ':':
		return s.scanSingleChar(lex, valid, Colon)
	case ',':
		return s.scanSingleChar(lex, valid, Comma)
	case ';':
		return s.scanSingleChar(lex, valid, Semicolon)
	default:
		return 0, false
	}
}

// scanMaybeTwoChar consumes r, then extends to a two-character token when
// the following byte is second; otherwise emits the one-character token.
func (s *State) scanMaybeTwoChar(lex Lexer, valid ValidSymbols, second rune, twoSym, oneSym Symbol) (Symbol, bool) {
	lex.Advance(false)
	if lex.Lookahead() == second {
		if !valid[twoSym] {
			return 0, false
		}
		lex.Advance(false)
		lex.MarkEnd()
		return twoSym, true
	}
	if !valid[oneSym] {
		return 0, false
	}
	lex.MarkEnd()
	return oneSym, true
}

// scanMaybeTwoOfTwo is scanMaybeTwoChar generalized to two candidate
// second characters (used for '<' / '>', which each have two expansions).
func (s *State) scanMaybeTwoOfTwo(lex Lexer, valid ValidSymbols, second1 rune, sym1 Symbol, second2 rune, sym2 Symbol, oneSym Symbol) (Symbol, bool) {
	lex.Advance(false)
	switch lex.Lookahead() {
	case second1:
		if !valid[sym1] {
			return 0, false
		}
		lex.Advance(false)
		lex.MarkEnd()
		return sym1, true
	case second2:
		if !valid[sym2] {
			return 0, false
		}
		lex.Advance(false)
		lex.MarkEnd()
		return sym2, true
	default:
		if !valid[oneSym] {
			return 0, false
		}
		lex.MarkEnd()
		return oneSym, true
	}
}

func (s *State) scanSingleChar(lex Lexer, valid ValidSymbols, sym Symbol) (Symbol, bool) {
	if !valid[sym] {
		return 0, false
	}
	lex.Advance(false)
	lex.MarkEnd()
	return sym, true
}
