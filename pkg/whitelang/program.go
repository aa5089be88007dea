// Package whitelang is the embeddable public API for running WhiteLang
// programs from Go, following the teacher project's pkg/dwscript package
// (an Engine constructed with functional options, Compile/Run/Eval,
// structured compile errors) trimmed to WhiteLang's smaller surface: no
// warning/hint severities, since every diagnostic WhiteLang produces is
// fatal to compilation.
package whitelang

import (
	"bytes"
	"fmt"
	"io"

	"whitelang/internal/ast"
	"whitelang/internal/errors"
	"whitelang/internal/interp"
	"whitelang/internal/lexer"
	"whitelang/internal/parser"
	"whitelang/internal/semantic"
)

// Engine compiles and runs WhiteLang source. The zero value is not usable;
// construct one with New.
type Engine struct {
	output    io.Writer
	typeCheck bool
}

// Option configures an Engine constructed by New.
type Option func(*Engine)

// WithOutput tees every program's `print` output to w, in addition to the
// output returned on Result.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.output = w }
}

// WithTypeCheck controls whether Compile runs semantic validation. It
// defaults to true; disabling it is only useful for tooling that wants the
// raw parse tree regardless of type errors (the CLI's --dump-ast, for
// instance, works against the internal packages directly rather than
// through Engine).
func WithTypeCheck(enabled bool) Option {
	return func(e *Engine) { e.typeCheck = enabled }
}

// New constructs an Engine. It never fails today, but returns an error to
// leave room for options that validate configuration.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{typeCheck: true}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Program is a compiled, validated WhiteLang program ready to Run.
type Program struct {
	AST *ast.Program
}

// Error is a single compile-time diagnostic, positioned in the source it
// came from.
type Error struct {
	Message string
	Line    int
	Column  int
	Kind    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("error at %d:%d: %s [%s]", e.Line, e.Column, e.Message, e.Kind)
}

// CompileError reports that Compile failed, naming the stage ("parsing" or
// "validation") and every diagnostic produced at that stage.
type CompileError struct {
	Stage  string
	Errors []*Error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s failed with %d error(s)", e.Stage, len(e.Errors))
}

func diagnosticsToErrors(diags []*errors.Diagnostic) []*Error {
	out := make([]*Error, len(diags))
	for i, d := range diags {
		out[i] = &Error{Message: d.Message, Line: d.Pos.Line, Column: d.Pos.Column, Kind: d.Kind.String()}
	}
	return out
}

// Compile lexes, parses, and (unless WithTypeCheck(false) was given)
// validates source, returning a Program ready to Run. A lexical or
// syntactic error fails at the "parsing" stage; a type error fails at the
// "validation" stage.
func (e *Engine) Compile(source string) (*Program, error) {
	l := lexer.New(source)
	tree := parser.ParseProgram(l)

	if len(l.Errors()) > 0 || len(tree.Errors) > 0 {
		diags := append([]*errors.Diagnostic{}, tree.Errors...)
		for _, le := range l.Errors() {
			diags = append(diags, errors.NewDiagnostic(errors.UnexpectedToken, le.Message, le.Pos))
		}
		return nil, &CompileError{Stage: "parsing", Errors: diagnosticsToErrors(diags)}
	}

	if e.typeCheck {
		a := semantic.NewAnalyzer()
		diags := a.Analyze(tree)
		if len(diags) > 0 {
			return nil, &CompileError{Stage: "validation", Errors: diagnosticsToErrors(diags)}
		}
	}

	return &Program{AST: tree}, nil
}

// Result holds a finished run's captured output.
type Result struct {
	Output string
}

// Run executes an already-compiled Program. A runtime failure is returned
// as an error; output produced before the failure is still returned on
// Result.
func (e *Engine) Run(program *Program) (*Result, error) {
	var buf bytes.Buffer
	var w io.Writer = &buf
	if e.output != nil {
		w = io.MultiWriter(&buf, e.output)
	}

	runErr := interp.New(w).Execute(program.AST)
	return &Result{Output: buf.String()}, runErr
}

// Eval compiles and runs source in one step.
func (e *Engine) Eval(source string) (*Result, error) {
	program, err := e.Compile(source)
	if err != nil {
		return nil, err
	}
	return e.Run(program)
}
