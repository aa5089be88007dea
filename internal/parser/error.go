package parser

import (
	"fmt"

	"whitelang/internal/errors"
	"whitelang/internal/lexer"
)

// ParserError is a single syntax error produced while parsing, attached to
// the position at which it was detected.
type ParserError struct {
	Pos     lexer.Position
	Message string
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// Diagnostic converts a ParserError into the shared Diagnostic type so
// parser and validator errors can be reported uniformly.
func (e *ParserError) Diagnostic() *errors.Diagnostic {
	return errors.NewDiagnostic(errors.UnexpectedToken, e.Message, e.Pos)
}
