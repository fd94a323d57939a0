package parser

import (
	"fmt"

	"nilan/token"
)

// SyntaxError is raised when the parser encounters a token it cannot fit
// into any grammar rule, or when an expected token is missing. Line and
// Column are copied from the offending token so a caller can point the
// programmer at the right place in the source.
type SyntaxError struct {
	Message string
	Line    int
	Column  int
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("💥 SyntaxError: %s", e.Message)
}

func newPeekError(want token.TokenType, got token.Token) SyntaxError {
	return SyntaxError{
		Message: fmt.Sprintf("Expected: %s, Got: %s", want, got.Type),
		Line:    got.Line,
		Column:  got.Column,
	}
}
