package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fir-lang/tree-sitter-fir/hostlex"
	"github.com/fir-lang/tree-sitter-fir/scanner"
)

// tok is a (symbol, text) pair used to describe an expected token stream.
type tok struct {
	sym  scanner.Symbol
	text string
}

// scanAll scans src with a valid-symbols bitmap shaped like the grammar's:
// START_BLOCK is valid only directly after a COLON, NEWLINE is not valid
// inside an open paren or bracket, and everything else is always valid. It
// stops once the input is consumed with every block closed.
func scanAll(t *testing.T, src string) []tok {
	t.Helper()
	d := hostlex.NewDriver([]byte(src))
	var got []tok
	prev := scanner.Symbol(-1)
	delims := 0
	for i := 0; i < 10000; i++ {
		valid := scanner.AllValid()
		valid[scanner.StartBlock] = prev == scanner.Colon
		valid[scanner.Newline] = delims == 0
		tt, ok := d.Next(valid)
		if !ok {
			require.True(t, d.Lex.EOF(), "scan failed before EOF at line %d col %d", d.Lex.Line(), d.Lex.Column())
			return got
		}
		got = append(got, tok{tt.Symbol, tt.Text})
		prev = tt.Symbol
		switch tt.Symbol {
		case scanner.LParen, scanner.LBracket, scanner.BackslashLParen:
			delims++
		case scanner.RParen, scanner.RBracket:
			delims--
		}
		if d.Lex.EOF() && d.State.Depth() == 1 && d.State.PendingEndBlocks() == 0 && tt.Symbol != scanner.StartBlock {
			return got
		}
	}
	t.Fatal("scan did not terminate")
	return nil
}

func syms(toks []tok) []scanner.Symbol {
	out := make([]scanner.Symbol, len(toks))
	for i, tk := range toks {
		out[i] = tk.sym
	}
	return out
}

func TestIndentOpensAndClosesBlock(t *testing.T) {
	toks := scanAll(t, "if x:\n    y\n")
	assert.Equal(t, []scanner.Symbol{
		scanner.KwIf, scanner.LowerID, scanner.Colon,
		scanner.StartBlock, scanner.LowerID, scanner.Newline,
		scanner.EndBlock,
	}, syms(toks))
}

func TestDedentByTwoLevelsEmitsTwoEndBlocks(t *testing.T) {
	toks := scanAll(t, "if a:\n    if b:\n        y\nz\n")
	got := syms(toks)
	count := 0
	for _, s := range got {
		if s == scanner.EndBlock {
			count++
		}
	}
	assert.Equal(t, 2, count)
	assert.Equal(t, scanner.LowerID, got[len(got)-2])
}

func TestParenSuppressesLayout(t *testing.T) {
	toks := scanAll(t, "(a,\n b)")
	got := syms(toks)
	assert.NotContains(t, got, scanner.StartBlock)
	assert.Equal(t, []scanner.Symbol{
		scanner.LParen, scanner.LowerID, scanner.Comma, scanner.LowerID, scanner.RParen,
	}, got)
}

func TestAutoCloseOnCommaInsideBracket(t *testing.T) {
	toks := scanAll(t, "[\n    a,\n    b,\n]")
	got := syms(toks)
	assert.Equal(t, scanner.LBracket, got[0])
	assert.Equal(t, scanner.RBracket, got[len(got)-1])
}

func TestStringInterpolation(t *testing.T) {
	toks := scanAll(t, "\"a`b`c\"")
	want := []scanner.Symbol{
		scanner.BeginStr,
		scanner.StringContent,
		scanner.BeginInterpolation,
		scanner.LowerID,
		scanner.EndInterpolation,
		scanner.StringContent,
		scanner.EndStr,
	}
	assert.Equal(t, want, syms(toks))
}

func TestLabelVsCharLiteral(t *testing.T) {
	toks := scanAll(t, "'loop1 'a' '\\n'")
	got := syms(toks)
	assert.Contains(t, got, scanner.Label)
	charCount := 0
	for _, s := range got {
		if s == scanner.CharLiteral {
			charCount++
		}
	}
	assert.Equal(t, 2, charCount)
}

func TestContinuationLineStaysInBlock(t *testing.T) {
	toks := scanAll(t, "let x =\n    1\ny\n")
	got := syms(toks)
	assert.NotContains(t, got, scanner.StartBlock)
}

func TestNestedBlockComment(t *testing.T) {
	d := hostlex.NewDriver([]byte("#| outer #| inner |# still outer |#x"))
	valid := scanner.Only(scanner.BlockComment, scanner.LowerID, scanner.Newline, scanner.EndBlock)
	tt, ok := d.Next(valid)
	require.True(t, ok)
	assert.Equal(t, scanner.BlockComment, tt.Symbol)
	assert.Equal(t, "#| outer #| inner |# still outer |#", tt.Text)
}

func TestEmptyFileProducesOnlyTrailingNewline(t *testing.T) {
	toks := scanAll(t, "")
	assert.Equal(t, []scanner.Symbol{scanner.Newline}, syms(toks))
}

func TestNoTrailingNewlineStillClosesBlocks(t *testing.T) {
	toks := scanAll(t, "if a:\n    y")
	got := syms(toks)
	assert.Equal(t, scanner.EndBlock, got[len(got)-1])
}

func TestMixedTabsAndSpacesIndent(t *testing.T) {
	toks := scanAll(t, "if a:\n\ty\n")
	got := syms(toks)
	assert.Contains(t, got, scanner.StartBlock)
	assert.Contains(t, got, scanner.EndBlock)
}

func TestUnderscoreRunVsIdentifier(t *testing.T) {
	toks := scanAll(t, "_ __ _x")
	want := []scanner.Symbol{
		scanner.Underscore, scanner.Underscore, scanner.Underscore, scanner.LowerID, scanner.Newline,
	}
	assert.Equal(t, want, syms(toks))
}

func TestUpperFnKeyword(t *testing.T) {
	toks := scanAll(t, "Fn Foo")
	got := syms(toks)
	assert.Equal(t, scanner.KwUpperFn, got[0])
	assert.Equal(t, scanner.UpperID, got[1])
}

func TestHexAndBinaryIntLiterals(t *testing.T) {
	toks := scanAll(t, "0xFF_00 0b1010 42")
	want := []scanner.Symbol{scanner.IntLiteral, scanner.IntLiteral, scanner.IntLiteral, scanner.Newline}
	assert.Equal(t, want, syms(toks))
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	d := hostlex.NewDriver([]byte("if a:\n    b:\n        c\n"))
	valid := scanner.AllValid()
	for i := 0; i < 6; i++ {
		_, ok := d.Next(valid)
		require.True(t, ok)
	}

	var buf [scanner.MaxSerializedSize]byte
	n := d.State.Serialize(buf[:])

	restored := scanner.New()
	restored.Deserialize(buf[:n])

	assert.Equal(t, d.State.Depth(), restored.Depth())
	assert.Equal(t, d.State.InString(), restored.InString())
	assert.Equal(t, d.State.PendingEndBlocks(), restored.PendingEndBlocks())

	var buf2 [scanner.MaxSerializedSize]byte
	n2 := restored.Serialize(buf2[:])
	assert.Equal(t, buf[:n], buf2[:n2])
}

func TestDeserializeEmptyBufferResets(t *testing.T) {
	s := scanner.New()
	s.Deserialize(nil)
	assert.Equal(t, 1, s.Depth())
	assert.False(t, s.InString())
}
