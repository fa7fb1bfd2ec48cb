package scanner

// scanStringMode implements Phase B: scanning while s.inString is true.
func (s *State) scanStringMode(lex Lexer, valid ValidSymbols) (Symbol, bool) {
	la := lex.Lookahead()

	switch {
	case la != '"' && la != '`' && !lex.EOF():
		if !valid[StringContent] {
			return 0, false
		}
		if !s.scanStringContentRun(lex) {
			return 0, false
		}
		return StringContent, true

	case la == '"':
		if !valid[EndStr] {
			return 0, false
		}
		lex.Advance(false)
		lex.MarkEnd()
		s.inString = false
		return EndStr, true

	case la == '`':
		if !valid[BeginInterpolation] {
			return 0, false
		}
		lex.Advance(false)
		lex.MarkEnd()
		s.inString = false
		s.push(FrameInterpolation, 0)
		return BeginInterpolation, true

	default:
		return 0, false
	}
}

// scanStringContentRun consumes a run of string content, stopping before
// '"', '`', or EOF. A backslash begins an escape: a backslash-newline is a
// continuation that splices away the newline and any following horizontal
// or vertical whitespace; any other escaped byte is consumed literally. An
// empty run is rejected: a STRING_CONTENT token must cover at least one
// byte, or the host's re-entrant loop never makes progress.
func (s *State) scanStringContentRun(lex Lexer) bool {
	hasContent := false
	for {
		r := lex.Lookahead()
		if r == '"' || r == '`' || lex.EOF() {
			break
		}
		if r == '\\' {
			lex.Advance(false)
			if lex.EOF() {
				return false
			}
			if isNewline(lex.Lookahead()) {
				for isNewline(lex.Lookahead()) || isSpaceOrTab(lex.Lookahead()) {
					lex.Advance(false)
				}
			} else {
				lex.Advance(false)
			}
			hasContent = true
			continue
		}
		lex.Advance(false)
		hasContent = true
	}
	if !hasContent {
		return false
	}
	lex.MarkEnd()
	return true
}

// scanBeginStr handles an opening '"' outside of string mode.
func (s *State) scanBeginStr(lex Lexer, valid ValidSymbols) (Symbol, bool) {
	if !valid[BeginStr] {
		return 0, false
	}
	lex.Advance(false)
	lex.MarkEnd()
	s.inString = true
	return BeginStr, true
}

// scanEndInterpolation handles a '`' outside of string mode, closing an
// interpolation hole and re-entering string mode.
func (s *State) scanEndInterpolation(lex Lexer, valid ValidSymbols) (Symbol, bool) {
	if !valid[EndInterpolation] {
		return 0, false
	}
	lex.Advance(false)
	lex.MarkEnd()
	if s.top().kind == FrameInterpolation {
		s.pop()
	}
	s.inString = true
	return EndInterpolation, true
}
