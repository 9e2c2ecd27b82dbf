/*
File    : go-lyra/diag/diag.go
Author  : Lyra Maintainers
*/

// Package diag implements the shared diagnostic sink used by every stage
// of the interpreter pipeline. The lexer, parser, resolver and evaluator
// all report into one Sink; the driver inspects the sink between stages
// to decide whether the pipeline may continue, and flushes the collected
// diagnostics to standard error.
package diag

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/lyra-lang/go-lyra/token"
)

// Kind classifies a diagnostic by the pipeline stage that produced it.
type Kind string

const (
	// LexicalKind marks errors found while scanning source text
	LexicalKind Kind = "lexical"
	// SyntaxKind marks errors found while parsing tokens
	SyntaxKind Kind = "syntactic"
	// StaticKind marks errors found by the static resolution pass
	StaticKind Kind = "static-semantic"
	// RuntimeKind marks errors raised during evaluation
	RuntimeKind Kind = "runtime"
)

// Diagnostic is a single reported error. Tok is optional: lexical errors
// have no token to point at, every later stage attaches the offending one.
type Diagnostic struct {
	Kind    Kind         // Which stage produced the diagnostic
	Line    int          // Source line the error refers to (1-indexed)
	Tok     *token.Token // Offending token, nil for lexical errors
	Message string       // Human-readable description
}

// String renders the diagnostic in the interpreter's one-line report
// format:
//
//	[Line N] Error: <message>             (no token)
//	[Line N] Error at '<lexeme>': <message>
//	[Line N] Error at end: <message>      (token is EOF)
func (d Diagnostic) String() string {
	if d.Tok == nil {
		return fmt.Sprintf("[Line %d] Error: %s", d.Line, d.Message)
	}
	if d.Tok.Type == token.EOF_TYPE {
		return fmt.Sprintf("[Line %d] Error at end: %s", d.Line, d.Message)
	}
	return fmt.Sprintf("[Line %d] Error at '%s': %s", d.Line, d.Tok.Lexeme, d.Message)
}

// Sink accumulates diagnostics across pipeline stages.
// Stages report errors instead of aborting, so a single run can surface
// several problems at once; the driver decides between stages whether the
// run may continue.
type Sink struct {
	diagnostics []Diagnostic
}

// NewSink creates an empty diagnostic sink.
func NewSink() *Sink {
	return &Sink{
		diagnostics: make([]Diagnostic, 0),
	}
}

// Report appends a raw diagnostic to the sink.
func (s *Sink) Report(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

// ReportLexical records a scanning error at the given line.
// Lexical errors carry no token because no token was produced.
func (s *Sink) ReportLexical(line int, format string, args ...interface{}) {
	s.Report(Diagnostic{
		Kind:    LexicalKind,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

// ReportToken records a syntax or static-semantic error anchored at the
// offending token.
func (s *Sink) ReportToken(kind Kind, tok token.Token, format string, args ...interface{}) {
	t := tok
	s.Report(Diagnostic{
		Kind:    kind,
		Line:    tok.Line,
		Tok:     &t,
		Message: fmt.Sprintf(format, args...),
	})
}

// ReportRuntime records an evaluation error anchored at the offending
// token.
func (s *Sink) ReportRuntime(tok token.Token, format string, args ...interface{}) {
	s.ReportToken(RuntimeKind, tok, format, args...)
}

// HasErrors reports whether any diagnostic of any kind has accumulated.
func (s *Sink) HasErrors() bool {
	return len(s.diagnostics) > 0
}

// HasKind reports whether a diagnostic of the given kind has accumulated.
// The driver uses HasKind(RuntimeKind) to pick the process exit code.
func (s *Sink) HasKind(kind Kind) bool {
	for _, d := range s.diagnostics {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// Diagnostics returns the accumulated diagnostics in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// Err folds the accumulated diagnostics into a single error value, or
// nil when the sink is clean. Callers that want one error instead of a
// report stream (logging, tests) use this.
func (s *Sink) Err() error {
	var result *multierror.Error
	for _, d := range s.diagnostics {
		result = multierror.Append(result, fmt.Errorf("%s", d.String()))
	}
	return result.ErrorOrNil()
}

// Flush writes every accumulated diagnostic to w, one line each, and
// keeps the sink contents intact.
func (s *Sink) Flush(w io.Writer) {
	for _, d := range s.diagnostics {
		fmt.Fprintln(w, d.String())
	}
}

// Reset discards all accumulated diagnostics so the sink can be reused.
func (s *Sink) Reset() {
	s.diagnostics = s.diagnostics[:0]
}
