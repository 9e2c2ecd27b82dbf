/*
File    : go-lyra/repl/repl.go
Author  : Lyra Maintainers

Package repl implements the Read-Eval-Print Loop of the Lyra
interpreter. The REPL provides an interactive environment where users
can:
- Enter Lyra code line by line
- See program output immediately
- Navigate command history using arrow keys

Each input line runs through the full lex, parse, resolve and interpret
pipeline against one persistent evaluator, so variables, functions and
classes survive across lines. Diagnostics reset at every prompt: an
error on one line never poisons the next.
*/
package repl

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/lyra-lang/go-lyra/diag"
	"github.com/lyra-lang/go-lyra/eval"
	"github.com/lyra-lang/go-lyra/lexer"
	"github.com/lyra-lang/go-lyra/parser"
	"github.com/lyra-lang/go-lyra/resolver"
)

// Color definitions for REPL output:
// - redColor: diagnostics
// - cyanColor: banner and informational messages
var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// PROMPT is the interactive prompt shown before every input line.
const PROMPT = "> "

// Repl represents one interactive session.
type Repl struct {
	Version string // Interpreter version shown in the banner
}

// NewRepl creates a new REPL instance.
func NewRepl(version string) *Repl {
	return &Repl{Version: version}
}

// historyFile returns the path of the persistent command history.
// LYRA_HISTORY overrides the default ~/.lyra_history; failure to find a
// home directory just disables persistence.
func historyFile() string {
	if path := os.Getenv("LYRA_HISTORY"); path != "" {
		return path
	}
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lyra_history")
}

// Start begins the REPL main loop: print the banner, set up readline
// with history, then read, run and repeat until EOF or '.exit'.
func (r *Repl) Start(writer io.Writer) {
	cyanColor.Fprintf(writer, "Lyra %s interactive interpreter\n", r.Version)
	cyanColor.Fprintf(writer, "Type '.exit' or press Ctrl+D to quit\n")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      PROMPT,
		HistoryFile: historyFile(),
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// One evaluator for the whole session keeps the globals alive.
	evaluator := eval.NewEvaluator(diag.NewSink())
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			break
		}

		rl.SaveHistory(line)
		r.executeLine(line, evaluator)
	}
}

// executeLine runs one input line through the pipeline against the
// persistent evaluator. Diagnostics go to standard error; any stage
// with errors stops the line, and the next prompt starts clean.
func (r *Repl) executeLine(line string, evaluator *eval.Evaluator) {
	sink := diag.NewSink()
	evaluator.SetSink(sink)

	lex := lexer.NewLexer(line, sink)
	tokens := lex.ConsumeTokens()
	if sink.HasErrors() {
		r.reportErrors(sink)
		return
	}

	par := parser.NewParser(tokens, sink)
	statements := par.Parse()
	if sink.HasErrors() {
		r.reportErrors(sink)
		return
	}

	res := resolver.NewResolver(sink)
	locals := res.Resolve(statements)
	if sink.HasErrors() {
		r.reportErrors(sink)
		return
	}

	evaluator.AddLocals(locals)
	evaluator.Interpret(statements)
	if sink.HasErrors() {
		r.reportErrors(sink)
	}
}

// reportErrors writes every accumulated diagnostic to standard error,
// one colored line each.
func (r *Repl) reportErrors(sink *diag.Sink) {
	for _, d := range sink.Diagnostics() {
		redColor.Fprintln(os.Stderr, d.String())
	}
}
