package scanner

// scanLayout is Phase C: deciding whether to emit START_BLOCK, END_BLOCK,
// or NEWLINE before any content token. The third return value reports
// whether nothing applied and the caller should fall through to Phase D
// (concrete token scanning); when it is false, (sym, ok) is the final
// answer for this call.
func (s *State) scanLayout(lex Lexer, valid ValidSymbols) (Symbol, bool, bool) {
	if s.inNonIndented() {
		return s.scanNonIndentedLayout(lex, valid)
	}
	return s.scanIndentedLayout(lex, valid)
}

// scanNonIndentedLayout handles a paren/bracket/interpolation top frame:
// whitespace (including newlines) is not significant there, except that a
// run of newlines can still be reported as a single NEWLINE when the parser
// wants one.
func (s *State) scanNonIndentedLayout(lex Lexer, valid ValidSymbols) (Symbol, bool, bool) {
	skipSpacesAndTabs(lex)

	if valid[Newline] && isNewline(lex.Lookahead()) {
		for isNewline(lex.Lookahead()) || isSpaceOrTab(lex.Lookahead()) {
			lex.Advance(true)
		}
		lex.MarkEnd()
		return Newline, true, false
	}

	for isNewline(lex.Lookahead()) || isSpaceOrTab(lex.Lookahead()) {
		lex.Advance(true)
	}

	if valid[StartBlock] && lex.Lookahead() != '#' {
		s.push(FrameIndented, uint16(lex.Column()))
		lex.MarkEnd()
		return StartBlock, true, false
	}

	return 0, false, true
}

// scanIndentedLayout handles an indented top frame: the column of the
// first non-whitespace byte on a new line drives block opening, delimiter
// auto-close, and indent/dedent comparison.
func (s *State) scanIndentedLayout(lex Lexer, valid ValidSymbols) (Symbol, bool, bool) {
	skipSpacesAndTabs(lex)
	atNewline := false
	for isNewline(lex.Lookahead()) {
		atNewline = true
		lex.Advance(true)
		skipSpacesAndTabs(lex)
	}

	if lex.EOF() {
		sym, ok := s.scanEOF(lex, valid)
		return sym, ok, false
	}

	la := lex.Lookahead()

	if valid[StartBlock] && la != '#' {
		s.push(FrameIndented, uint16(lex.Column()))
		lex.MarkEnd()
		return StartBlock, true, false
	}

	if isAutoCloseTrigger(la) && s.indentedFramesAboveDelimiter() > 0 {
		if valid[Newline] {
			s.pendingEndBlocks = uint8(s.indentedFramesAboveDelimiter())
			lex.MarkEnd()
			return Newline, true, false
		}
		if valid[EndBlock] && s.depth > 1 {
			s.pop()
			lex.MarkEnd()
			return EndBlock, true, false
		}
	}

	if atNewline {
		return s.scanIndentationComparison(lex, valid)
	}

	return 0, false, true
}

func isAutoCloseTrigger(r rune) bool {
	return r == ')' || r == ']' || r == ',' || r == '}'
}

// scanIndentationComparison implements the col-vs-block_col decision after
// a newline was crossed inside an indented frame.
func (s *State) scanIndentationComparison(lex Lexer, valid ValidSymbols) (Symbol, bool, bool) {
	col := uint16(lex.Column())
	frameCol := s.top().blockCol

	switch {
	case col < frameCol:
		count := 0
		for i := int(s.depth) - 1; i >= 1; i-- {
			if s.stack[i].kind == FrameIndented && s.stack[i].blockCol > col {
				count++
			} else {
				break
			}
		}
		if count == 0 {
			count = 1
		}
		if valid[Newline] {
			s.pendingEndBlocks = uint8(count)
			lex.MarkEnd()
			return Newline, true, false
		}
		if valid[EndBlock] {
			if count > 1 {
				s.pendingEndBlocks = uint8(count - 1)
			}
			s.pop()
			lex.MarkEnd()
			return EndBlock, true, false
		}
		return 0, false, false

	case col == frameCol:
		if valid[Newline] {
			lex.MarkEnd()
			return Newline, true, false
		}
		return 0, false, true

	default: // col > frameCol: continuation line
		return 0, false, true
	}
}

// scanEOF is the shared end-of-input rule used both from within an indented
// frame and generically from Scan when layout fell through.
func (s *State) scanEOF(lex Lexer, valid ValidSymbols) (Symbol, bool) {
	if valid[Newline] && !s.eofNewlineEmitted {
		s.eofNewlineEmitted = true
		lex.MarkEnd()
		return Newline, true
	}
	if valid[EndBlock] && s.top().kind == FrameIndented && s.depth > 1 {
		s.pop()
		lex.MarkEnd()
		return EndBlock, true
	}
	return 0, false
}
