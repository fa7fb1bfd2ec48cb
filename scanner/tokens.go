package scanner

// Symbol is the external token kind the scanner can emit. The numeric value
// of every constant is a compatibility contract with the grammar, which
// indexes its `externals` array by ordinal: do not reorder, insert, or
// remove entries without updating the grammar in lockstep.
type Symbol int

const (
	StartBlock Symbol = iota
	EndBlock
	Newline

	UpperID
	LowerID
	Label

	IntLiteral
	CharLiteral

	BeginStr
	EndStr
	StringContent
	BeginInterpolation
	EndInterpolation

	BlockComment
	LineComment

	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	BackslashLParen

	Colon
	Comma
	Dot
	DotDot
	Eq
	Underscore
	Slash
	Semicolon

	Plus
	Minus
	Star
	EqEq
	Neq
	Lt
	Gt
	LtEq
	GtEq
	LShift
	RShift
	Amp
	AmpAmp
	Pipe
	Tilde
	Exclamation
	Percent
	Caret
	PlusEq
	MinusEq
	StarEq
	CaretEq

	KwAnd
	KwAs
	KwBreak
	KwContinue
	KwDo
	KwElif
	KwElse
	KwFn
	KwUpperFn
	KwFor
	KwIf
	KwImpl
	KwImport
	KwIn
	KwIs
	KwLet
	KwLoop
	KwMatch
	KwNot
	KwOr
	KwPrim
	KwReturn
	KwTrait
	KwType
	KwValue
	KwWhile
	KwRow

	symbolCount
)

// SymbolCount is the number of distinct Symbol values; a ValidSymbols
// bitmap from the host must have at least this many entries.
const SymbolCount = int(symbolCount)

func (sym Symbol) GoString() string {
	return symbolNames[sym]
}

func (sym Symbol) String() string {
	return symbolNames[sym]
}

func init() {
	// Make sure we panic at startup if a name was left undeclared, the way
	// sqlparser.TokenType's init does for tokenToDescription.
	for sym := Symbol(0); sym < symbolCount; sym++ {
		if symbolNames[sym] == "" {
			panic("scanner: missing name for symbol")
		}
	}
}

var symbolNames = map[Symbol]string{
	StartBlock: "START_BLOCK",
	EndBlock:   "END_BLOCK",
	Newline:    "NEWLINE",

	UpperID: "UPPER_ID",
	LowerID: "LOWER_ID",
	Label:   "LABEL",

	IntLiteral:  "INT_LITERAL",
	CharLiteral: "CHAR_LITERAL",

	BeginStr:           "BEGIN_STR",
	EndStr:             "END_STR",
	StringContent:      "STRING_CONTENT",
	BeginInterpolation: "BEGIN_INTERPOLATION",
	EndInterpolation:   "END_INTERPOLATION",

	BlockComment: "BLOCK_COMMENT",
	LineComment:  "LINE_COMMENT",

	LParen:          "LPAREN",
	RParen:          "RPAREN",
	LBracket:        "LBRACKET",
	RBracket:        "RBRACKET",
	LBrace:          "LBRACE",
	RBrace:          "RBRACE",
	BackslashLParen: "BACKSLASH_LPAREN",

	Colon:      "COLON",
	Comma:      "COMMA",
	Dot:        "DOT",
	DotDot:     "DOTDOT",
	Eq:         "EQ",
	Underscore: "UNDERSCORE",
	Slash:      "SLASH",
	Semicolon:  "SEMICOLON",

	Plus:        "PLUS",
	Minus:       "MINUS",
	Star:        "STAR",
	EqEq:        "EQEQ",
	Neq:         "NEQ",
	Lt:          "LT",
	Gt:          "GT",
	LtEq:        "LTEQ",
	GtEq:        "GTEQ",
	LShift:      "LSHIFT",
	RShift:      "RSHIFT",
	Amp:         "AMP",
	AmpAmp:      "AMPAMP",
	Pipe:        "PIPE",
	Tilde:       "TILDE",
	Exclamation: "EXCLAMATION",
	Percent:     "PERCENT",
	Caret:       "CARET",
	PlusEq:      "PLUSEQ",
	MinusEq:     "MINUSEQ",
	StarEq:      "STAREQ",
	CaretEq:     "CARETEQ",

	KwAnd:      "KW_AND",
	KwAs:       "KW_AS",
	KwBreak:    "KW_BREAK",
	KwContinue: "KW_CONTINUE",
	KwDo:       "KW_DO",
	KwElif:     "KW_ELIF",
	KwElse:     "KW_ELSE",
	KwFn:       "KW_FN",
	KwUpperFn:  "KW_UPPER_FN",
	KwFor:      "KW_FOR",
	KwIf:       "KW_IF",
	KwImpl:     "KW_IMPL",
	KwImport:   "KW_IMPORT",
	KwIn:       "KW_IN",
	KwIs:       "KW_IS",
	KwLet:      "KW_LET",
	KwLoop:     "KW_LOOP",
	KwMatch:    "KW_MATCH",
	KwNot:      "KW_NOT",
	KwOr:       "KW_OR",
	KwPrim:     "KW_PRIM",
	KwReturn:   "KW_RETURN",
	KwTrait:    "KW_TRAIT",
	KwType:     "KW_TYPE",
	KwValue:    "KW_VALUE",
	KwWhile:    "KW_WHILE",
	KwRow:      "KW_ROW",
}

// keywords maps a scanned lowercase identifier spelling to its reserved
// keyword Symbol. "row" is intentionally absent: it is not a keyword in the
// reference grammar, only KwRow exists so that `row[` can be split into two
// tokens and used as a delimiter in queries.
var keywords = map[string]Symbol{
	"and":      KwAnd,
	"as":       KwAs,
	"break":    KwBreak,
	"continue": KwContinue,
	"do":       KwDo,
	"elif":     KwElif,
	"else":     KwElse,
	"fn":       KwFn,
	"for":      KwFor,
	"if":       KwIf,
	"impl":     KwImpl,
	"import":   KwImport,
	"in":       KwIn,
	"is":       KwIs,
	"let":      KwLet,
	"loop":     KwLoop,
	"match":    KwMatch,
	"not":      KwNot,
	"or":       KwOr,
	"prim":     KwPrim,
	"return":   KwReturn,
	"trait":    KwTrait,
	"type":     KwType,
	"value":    KwValue,
	"while":    KwWhile,
}

// ValidSymbols is the host-supplied bitmap of which Symbol values the
// parser will currently accept; the scanner must never emit a Symbol whose
// entry here is false.
type ValidSymbols [symbolCount]bool

// AllValid returns a bitmap that accepts every Symbol, useful for tests and
// for driving the scanner outside of an actual GLR parser.
func AllValid() ValidSymbols {
	var v ValidSymbols
	for i := range v {
		v[i] = true
	}
	return v
}

// Only returns a bitmap that accepts exactly the given symbols.
func Only(syms ...Symbol) ValidSymbols {
	var v ValidSymbols
	for _, s := range syms {
		v[s] = true
	}
	return v
}
