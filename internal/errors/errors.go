// Package errors implements WhiteLang's closed diagnostic-kind enum and the
// source-line-with-caret error formatting used by the CLI, following the
// teacher project's internal/errors package.
package errors

import (
	"fmt"
	"strings"

	"whitelang/internal/lexer"
)

// ErrorKind is the closed set of parser/validator error kinds.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	MismatchedTypes
	IncompatibleTypes
	BadType
	BadOperator
	BadReturnType
	DuplicateName
	UnknownName
	SymbolDefinitionError
	ArgMismatch
)

var errorKindStrings = [...]string{
	UnexpectedToken:       "UnexpectedToken",
	MismatchedTypes:       "MismatchedTypes",
	IncompatibleTypes:     "IncompatibleTypes",
	BadType:               "BadType",
	BadOperator:           "BadOperator",
	BadReturnType:         "BadReturnType",
	DuplicateName:         "DuplicateName",
	UnknownName:           "UnknownName",
	SymbolDefinitionError: "SymbolDefinitionError",
	ArgMismatch:           "ArgMismatch",
}

// String returns the error kind's name.
func (k ErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(errorKindStrings) {
		return errorKindStrings[k]
	}
	return "UnknownErrorKind"
}

// Diagnostic is a single parser or validator error, attached to the AST node
// that detected it and mirrored on a program-global list.
type Diagnostic struct {
	Kind    ErrorKind
	Message string
	Pos     lexer.Position
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s at %s", d.Message, d.Pos)
}

// NewDiagnostic constructs a Diagnostic.
func NewDiagnostic(kind ErrorKind, message string, pos lexer.Position) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: message, Pos: pos}
}

// CompilerError is a Diagnostic paired with enough source context to
// render a source-line-with-caret presentation.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Kind    ErrorKind
	Pos     lexer.Position
}

// NewCompilerError creates a new compiler error.
func NewCompilerError(pos lexer.Position, kind ErrorKind, message, source, file string) *CompilerError {
	return &CompilerError{Pos: pos, Kind: kind, Message: message, Source: source, File: file}
}

// FromDiagnostics converts Diagnostics into display-ready CompilerErrors.
func FromDiagnostics(diags []*Diagnostic, source, file string) []*CompilerError {
	out := make([]*CompilerError, 0, len(diags))
	for _, d := range diags {
		out = append(out, NewCompilerError(d.Pos, d.Kind, d.Message, source, file))
	}
	return out
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the error with a source line and caret indicator. When
// color is true, ANSI escapes highlight the caret and message.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d [%s]\n", e.File, e.Pos.Line, e.Pos.Column, e.Kind))
	} else {
		sb.WriteString(fmt.Sprintf("Error at %d:%d [%s]\n", e.Pos.Line, e.Pos.Column, e.Kind))
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors formats multiple compiler errors for display, numbering them
// when there is more than one.
func FormatErrors(errs []*CompilerError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compilation failed with %d error(s):\n\n", len(errs)))
	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
