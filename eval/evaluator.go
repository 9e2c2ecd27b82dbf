/*
File    : go-lyra/eval/evaluator.go
Author  : Lyra Maintainers
*/

// Package eval implements the tree-walking evaluator of the Lyra
// language. It executes the parsed statement list against a chain of
// lexical scopes, consulting the resolver's distance map for variable
// access. Non-local control flow (return, break) and runtime errors are
// modeled as values threaded through evaluation, so every statement
// executor propagates them and the constructs that own them (call
// frames, loops, the top-level loop) catch them.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/lyra-lang/go-lyra/ast"
	"github.com/lyra-lang/go-lyra/diag"
	"github.com/lyra-lang/go-lyra/objects"
	"github.com/lyra-lang/go-lyra/scope"
	"github.com/lyra-lang/go-lyra/std"
)

// NULL is the shared null value; evaluation produces it wherever the
// language has nothing better to say.
var NULL = &objects.Nil{}

// Evaluator holds the state for evaluating Lyra AST nodes: the global
// scope pre-populated with natives, the currently active scope, the
// resolver's distance map, the shared diagnostic sink and the I/O
// endpoints (swappable for tests, as usual).
type Evaluator struct {
	Globals *scope.Scope  // Global scope holding natives and top-level names
	Scp     *scope.Scope  // Currently active scope
	Locals  map[int]int   // Resolver distances, keyed by expression id
	Writer  io.Writer     // Output writer for print (default: os.Stdout)
	Reader  *bufio.Reader // Input reader for natives (default: os.Stdin)
	Sink    *diag.Sink    // Shared diagnostic sink
	Logger  hclog.Logger  // Trace logger, off unless --debug raises it
}

// NewEvaluator creates and initializes a new Evaluator with default
// configuration: a fresh global scope with every registered native
// bound into it, stdout/stdin endpoints and a silent logger.
func NewEvaluator(sink *diag.Sink) *Evaluator {
	globals := scope.NewScope(nil)
	ev := &Evaluator{
		Globals: globals,
		Scp:     globals,
		Locals:  make(map[int]int),
		Writer:  os.Stdout,
		Reader:  bufio.NewReader(os.Stdin),
		Sink:    sink,
		Logger:  hclog.NewNullLogger(),
	}
	for _, builtin := range std.Builtins {
		globals.Bind(builtin.Name, builtin)
	}
	return ev
}

// SetWriter redirects print output, e.g. to a buffer in tests.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetReader redirects the input natives, e.g. to a string in tests.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = bufio.NewReader(r)
}

// SetLogger installs the trace logger used by the --debug mode.
func (e *Evaluator) SetLogger(logger hclog.Logger) {
	e.Logger = logger
}

// SetSink replaces the diagnostic sink. The REPL swaps in a fresh sink
// per input line while keeping the evaluator (and its globals) alive.
func (e *Evaluator) SetSink(sink *diag.Sink) {
	e.Sink = sink
}

// GetInputReader returns the shared buffered input reader.
// This implements the std.Runtime interface for the input natives.
func (e *Evaluator) GetInputReader() *bufio.Reader {
	return e.Reader
}

// AddLocals merges a resolution map into the evaluator. The REPL
// resolves each line separately and feeds every map into the one
// evaluator; expression ids are process-unique so entries never collide.
func (e *Evaluator) AddLocals(locals map[int]int) {
	for id, distance := range locals {
		e.Locals[id] = distance
	}
}

// Interpret executes a statement list from the top. The first runtime
// error unwinds here, is reported to the sink exactly once, and stops
// execution of the remaining statements.
func (e *Evaluator) Interpret(statements []ast.StatementNode) {
	e.Logger.Debug("interpreting", "statements", len(statements), "resolved", len(e.Locals))
	for _, stmt := range statements {
		result := e.execStatement(stmt)
		if err, ok := result.(*objects.RuntimeError); ok {
			e.Sink.ReportRuntime(err.Tok, "%s", err.Message)
			return
		}
	}
}
