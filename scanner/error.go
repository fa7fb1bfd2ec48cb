package scanner

import "fmt"

// UnexpectedInputError describes a position where Scan could not produce
// any token under the host's valid-symbols bitmap. The scanner itself
// never constructs one: it only reports failure via Scan's boolean return,
// leaving the host to decide whether a stuck cursor is a syntax error worth
// reporting this way.
type UnexpectedInputError struct {
	Line, Col uint32
	Valid     ValidSymbols
}

func (e UnexpectedInputError) Error() string {
	return fmt.Sprintf("fir scanner: no valid token at %d:%d", e.Line, e.Col)
}
