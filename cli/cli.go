/*
File    : go-lyra/cli/cli.go
Author  : Lyra Maintainers

Package cli is the command-line driver of the Lyra interpreter.
It provides two modes of operation:
1. REPL mode (no arguments): interactive Read-Eval-Print Loop
2. File mode (one argument): run a Lyra source file

The driver owns the exit-code mapping:

	0 - clean run
	1 - argument or file error
	2 - lexical, syntax or static-semantic diagnostics
	3 - runtime error

Diagnostics print to standard error, one line each.
*/
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/lyra-lang/go-lyra/ast"
	"github.com/lyra-lang/go-lyra/diag"
	"github.com/lyra-lang/go-lyra/eval"
	"github.com/lyra-lang/go-lyra/lexer"
	"github.com/lyra-lang/go-lyra/parser"
	"github.com/lyra-lang/go-lyra/repl"
	"github.com/lyra-lang/go-lyra/resolver"
)

// VERSION represents the current version of the Lyra interpreter.
var VERSION = "v1.0.0"

// redColor highlights fatal driver errors on standard error.
var redColor = color.New(color.FgRed)

// debugMode is bound to the --debug flag; LYRA_DEBUG=1 is the
// environment equivalent.
var debugMode bool

// rootCmd runs a script file when a path is given and the REPL
// otherwise. Argument validation happens in Args so the exact
// "Too many arguments passed." contract stays ours rather than
// cobra's.
var rootCmd = &cobra.Command{
	Use:           "lyra [script]",
	Short:         "The Lyra programming language interpreter",
	Long:          "Lyra is a small dynamically-typed scripting language with classes,\nfirst-class functions and closures, executed by a tree-walking interpreter.",
	Version:       VERSION,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			fmt.Fprintln(os.Stderr, "Too many arguments passed.")
			os.Exit(1)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			runFile(args[0])
			return
		}
		repler := repl.NewRepl(VERSION)
		repler.Start(os.Stdout)
	},
}

// Execute runs the driver. It is the only call in main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable stage tracing and AST dumps on stderr")
}

// newLogger builds the driver logger. Off unless --debug or LYRA_DEBUG
// asks for tracing; debug output goes to stderr and never mixes with
// program output.
func newLogger() hclog.Logger {
	level := hclog.Off
	if debugMode || os.Getenv("LYRA_DEBUG") == "1" {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "lyra",
		Level:  level,
		Output: os.Stderr,
	})
}

// runFile reads and executes a Lyra source file, then exits with the
// mapped code. A missing or unreadable file is fatal.
func runFile(fileName string) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	os.Exit(RunSource(string(content)))
}

// RunSource drives the full pipeline over one source string and returns
// the process exit code. Each stage aborts the pipeline when the shared
// sink has accumulated any errors after the stage completes.
func RunSource(source string) int {
	logger := newLogger()
	sink := diag.NewSink()

	lex := lexer.NewLexer(source, sink)
	tokens := lex.ConsumeTokens()
	logger.Debug("lexing complete", "tokens", len(tokens))
	if sink.HasErrors() {
		sink.Flush(os.Stderr)
		return 2
	}

	par := parser.NewParser(tokens, sink)
	statements := par.Parse()
	logger.Debug("parsing complete", "statements", len(statements))
	if sink.HasErrors() {
		sink.Flush(os.Stderr)
		return 2
	}
	if logger.IsDebug() {
		printer := &ast.PrintingVisitor{}
		logger.Debug("ast dump\n" + printer.PrintProgram(statements))
	}

	res := resolver.NewResolver(sink)
	locals := res.Resolve(statements)
	logger.Debug("resolution complete", "resolved", len(locals))
	if sink.HasErrors() {
		sink.Flush(os.Stderr)
		return 2
	}

	evaluator := eval.NewEvaluator(sink)
	evaluator.SetLogger(logger)
	evaluator.AddLocals(locals)
	evaluator.Interpret(statements)
	if sink.HasKind(diag.RuntimeKind) {
		sink.Flush(os.Stderr)
		return 3
	}

	return 0
}
