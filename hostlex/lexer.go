package hostlex

import "unicode/utf8"

// Lexer drives a scanner.State over an in-memory byte slice, implementing
// scanner.Lexer. It is not safe for concurrent use.
type Lexer struct {
	src []byte

	pos  int
	line uint32
	col  uint32

	markPos  int
	markLine uint32
	markCol  uint32

	// contentStart is the byte offset of the first non-skipped Advance
	// call since the last reset, or -1 if none has happened yet. It lets
	// Driver recover the raw text of the token just scanned.
	contentStart int
}

// New returns a Lexer positioned at the start of src.
func New(src []byte) *Lexer {
	l := &Lexer{src: src}
	l.resetMark()
	return l
}

func (l *Lexer) resetMark() {
	l.markPos = l.pos
	l.markLine = l.line
	l.markCol = l.col
	l.contentStart = -1
}

// Lookahead implements scanner.Lexer.
func (l *Lexer) Lookahead() rune {
	if l.pos >= len(l.src) {
		return -1
	}
	r, _ := utf8.DecodeRune(l.src[l.pos:])
	return r
}

// Advance implements scanner.Lexer.
func (l *Lexer) Advance(skip bool) {
	if l.pos >= len(l.src) {
		return
	}
	r, size := utf8.DecodeRune(l.src[l.pos:])
	if !skip && l.contentStart < 0 {
		l.contentStart = l.pos
	}
	if r == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	l.pos += size
}

// MarkEnd implements scanner.Lexer.
func (l *Lexer) MarkEnd() {
	l.markPos = l.pos
	l.markLine = l.line
	l.markCol = l.col
}

// Column implements scanner.Lexer.
func (l *Lexer) Column() uint32 {
	return l.col
}

// EOF implements scanner.Lexer.
func (l *Lexer) EOF() bool {
	return l.pos >= len(l.src)
}

// Line reports the zero-based line of the current lookahead position, for
// diagnostics.
func (l *Lexer) Line() uint32 {
	return l.line
}

// snapshot captures everything needed to undo a failed scan attempt.
type snapshot struct {
	pos, line, col          int
	markPos, markLine, mCol int
	contentStart            int
}

func (l *Lexer) snapshot() snapshot {
	return snapshot{
		pos: l.pos, line: int(l.line), col: int(l.col),
		markPos: l.markPos, markLine: int(l.markLine), mCol: int(l.markCol),
		contentStart: l.contentStart,
	}
}

func (l *Lexer) restore(sn snapshot) {
	l.pos, l.line, l.col = sn.pos, uint32(sn.line), uint32(sn.col)
	l.markPos, l.markLine, l.markCol = sn.markPos, uint32(sn.markLine), uint32(sn.mCol)
	l.contentStart = sn.contentStart
}

// commit rewinds the cursor to the last MarkEnd position, discarding any
// lookahead advanced past it. This is the mark_end contract real
// tree-sitter hosts implement: a successful scan resumes the next call from
// the mark, not from wherever the scanner's last Advance left off.
func (l *Lexer) commit() {
	l.pos, l.line, l.col = l.markPos, l.markLine, l.markCol
}
