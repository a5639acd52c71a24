package source

import "fmt"

// LexError is raised by the lexer on an unterminated quoted form or a
// disallowed character in an identifier context (e.g. a bare "@" with no
// name behind it). Lexing never recovers from one: the first LexError a
// Lexer produces ends tokenization for that buffer.
type LexError struct {
	Buffer  *Buffer
	Pos     Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Buffer.Name(), e.Pos.Line, e.Pos.Column, e.Message)
}

// SyntaxError is raised by the parser on an unexpected token. It carries
// enough context to reproduce the teacher's diagnostic format: buffer
// name, line, column, what the grammar expected, and what it actually
// found.
type SyntaxError struct {
	Buffer   *Buffer
	Pos      Position
	Expected string // human description of the expected production, e.g. "method name"
	Actual   string // kind name of the token that was actually found
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: expected %s, got %s", e.Buffer.Name(), e.Pos.Line, e.Pos.Column, e.Expected, e.Actual)
}
