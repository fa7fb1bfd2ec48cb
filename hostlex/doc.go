// Package hostlex is a reference implementation of the scanner.Lexer
// collaborator interface, driving a scanner.State over an in-memory byte
// slice. It exists so the scanner package can be tested and driven from the
// CLI without a real tree-sitter host; it reproduces the mark_end/rewind
// contract a genuine external-scanner host provides.
package hostlex
