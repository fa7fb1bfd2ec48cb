package hostlex

import "github.com/fir-lang/tree-sitter-fir/scanner"

// Driver pairs a Lexer with a scanner.State and reproduces the commit/
// rewind contract a real tree-sitter host applies around every scan() call:
// on success the cursor is pinned to the marked end and the scanner's
// internal state changes are kept; on failure every byte of progress and
// every state mutation from the attempt is undone.
type Driver struct {
	Lex   *Lexer
	State *scanner.State
}

// NewDriver returns a Driver over src with a freshly reset scanner state.
func NewDriver(src []byte) *Driver {
	return &Driver{Lex: New(src), State: scanner.New()}
}

// Token is one scanned unit: its kind, raw text, and source position.
type Token struct {
	Symbol scanner.Symbol
	Text   string
	Line   uint32
	Col    uint32
}

// Next scans one token under the given valid-symbols bitmap. ok is false
// when no rule in valid applied at the current position, matching
// scanner.State.Scan; the driver's position and state are left exactly as
// they were before the call.
func (d *Driver) Next(valid scanner.ValidSymbols) (Token, bool) {
	lexSnap := d.Lex.snapshot()
	var stateBuf [scanner.MaxSerializedSize]byte
	n := d.State.Serialize(stateBuf[:])

	line, col := d.Lex.line, d.Lex.col

	sym, ok := d.State.Scan(d.Lex, valid)
	if !ok {
		d.Lex.restore(lexSnap)
		d.State.Deserialize(stateBuf[:n])
		return Token{}, false
	}

	start := d.Lex.contentStart
	end := d.Lex.markPos
	text := ""
	if start >= 0 && start <= end {
		text = string(d.Lex.src[start:end])
	}
	d.Lex.commit()
	d.Lex.contentStart = -1

	return Token{Symbol: sym, Text: text, Line: line, Col: col}, true
}

// All scans the remainder of the input and returns the resulting token
// stream. Every symbol is valid except START_BLOCK, which is valid only
// directly after a COLON token. The stream stops once the input is consumed
// with every block closed, or early at the first position where Scan
// produces no token (for example a stray '\' or a non-ASCII byte).
func (d *Driver) All() []Token {
	var toks []Token
	valid := scanner.AllValid()
	valid[scanner.StartBlock] = false
	for {
		tok, ok := d.Next(valid)
		if !ok {
			return toks
		}
		toks = append(toks, tok)
		valid[scanner.StartBlock] = tok.Symbol == scanner.Colon
		if d.Lex.EOF() && d.State.Depth() == 1 && d.State.PendingEndBlocks() == 0 {
			return toks
		}
	}
}
