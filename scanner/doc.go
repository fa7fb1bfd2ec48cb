// Package scanner implements the external scanner for the Fir language: a
// re-entrant layout/delimiter state machine that a parser-generator host
// drives one token at a time.
//
// The scanner never reads the input itself. It is handed a Lexer by the
// host on every call and asked to decide, given the current ValidSymbols
// oracle, whether a token can be produced at the current position. State
// that must survive across calls (the nested-context stack, pending
// dedents, whether the cursor is inside a string literal) lives in State,
// which can be serialized to and restored from a byte buffer so the host
// can snapshot and rewind positions during error recovery.
package scanner
