/*
File    : go-lyra/eval/evaluator_test.go
Author  : Lyra Maintainers
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyra-lang/go-lyra/diag"
	"github.com/lyra-lang/go-lyra/lexer"
	"github.com/lyra-lang/go-lyra/parser"
	"github.com/lyra-lang/go-lyra/resolver"
)

// runSource drives the full lex-parse-resolve-interpret pipeline over
// src with stdout captured, mirroring how the driver runs a file.
// Front-end stages must be clean; runtime errors land in the returned
// sink.
func runSource(t *testing.T, src string) (string, *diag.Sink) {
	t.Helper()
	return runSourceWithInput(t, src, "")
}

// runSourceWithInput additionally feeds the input natives from a string.
func runSourceWithInput(t *testing.T, src string, input string) (string, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()

	lex := lexer.NewLexer(src, sink)
	tokens := lex.ConsumeTokens()
	require.False(t, sink.HasErrors(), "lex errors: %v", sink.Err())

	par := parser.NewParser(tokens, sink)
	statements := par.Parse()
	require.False(t, sink.HasErrors(), "parse errors: %v", sink.Err())

	res := resolver.NewResolver(sink)
	locals := res.Resolve(statements)
	require.False(t, sink.HasErrors(), "resolve errors: %v", sink.Err())

	var buf bytes.Buffer
	evaluator := NewEvaluator(sink)
	evaluator.SetWriter(&buf)
	evaluator.SetReader(strings.NewReader(input))
	evaluator.AddLocals(locals)
	evaluator.Interpret(statements)

	return buf.String(), sink
}

// runClean runs src and fails the test on any runtime error.
func runClean(t *testing.T, src string) string {
	t.Helper()
	out, sink := runSource(t, src)
	require.False(t, sink.HasErrors(), "runtime errors: %v", sink.Err())
	return out
}

// expectRuntimeError runs src and returns the single diagnostic line.
func expectRuntimeError(t *testing.T, src string) string {
	t.Helper()
	out, sink := runSource(t, src)
	require.True(t, sink.HasKind(diag.RuntimeKind), "expected a runtime error, got output %q", out)
	diags := sink.Diagnostics()
	require.Len(t, diags, 1, "runtime errors report exactly once")
	return diags[0].String()
}

// TestEvaluator_ArithmeticAndPrecedence covers numeric evaluation and
// grouping.
func TestEvaluator_ArithmeticAndPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print 1 + 2 * 3;", "7\n"},
		{"print (1 + 2) * 3;", "9\n"},
		{"print 10 - 2 - 3;", "5\n"},
		{"print 15 / 3;", "5\n"},
		{"print 7 / 2;", "3.5\n"},
		{"print -3 + 5;", "2\n"},
		{"print -(1 + 2);", "-3\n"},
		{"print 0.1 * 10;", "1\n"},
		{"print 3.14;", "3.14\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, runClean(t, tt.input), "source %q", tt.input)
	}
}

// TestEvaluator_BitwiseOperators covers &, | and ^ with the 32-bit
// truncation of fractional operands.
func TestEvaluator_BitwiseOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print 6 & 3;", "2\n"},
		{"print 6 | 3;", "7\n"},
		{"print 6 ^ 3;", "5\n"},
		{"print 6.9 & 3;", "2\n"},
		{"print 12 & 10 | 1;", "9\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, runClean(t, tt.input), "source %q", tt.input)
	}
}

// TestEvaluator_StringOperations covers concatenation with stringified
// right operands and string comparison.
func TestEvaluator_StringOperations(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print "foo" + "bar";`, "foobar\n"},
		{`print "n = " + 42;`, "n = 42\n"},
		{`print "v = " + null;`, "v = null\n"},
		{`print "b = " + true;`, "b = true\n"},
		{`print "abc" < "abd";`, "true\n"},
		{`print "b" >= "a";`, "true\n"},
		{`print "" == "";`, "true\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, runClean(t, tt.input), "source %q", tt.input)
	}
}

// TestEvaluator_Equality covers value equality, null handling and
// cross-type comparisons.
func TestEvaluator_Equality(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print 1 == 1;", "true\n"},
		{"print 1 == 2;", "false\n"},
		{`print "a" == "a";`, "true\n"},
		{"print true == true;", "true\n"},
		{"print null == null;", "true\n"},
		{`print 1 == "1";`, "false\n"},
		{"print null == false;", "false\n"},
		{`print 1 != "1";`, "true\n"},
		{"print 0 == false;", "false\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, runClean(t, tt.input), "source %q", tt.input)
	}
}

// TestEvaluator_Truthiness covers the falsey set: false, null and 0.
func TestEvaluator_Truthiness(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`if (0) print "t"; else print "f";`, "f\n"},
		{`if (null) print "t"; else print "f";`, "f\n"},
		{`if (false) print "t"; else print "f";`, "f\n"},
		{`if ("") print "t"; else print "f";`, "t\n"},
		{`if (0.5) print "t"; else print "f";`, "t\n"},
		{"print !0;", "true\n"},
		{"print !1;", "false\n"},
		{"print !null;", "true\n"},
		{`print !"";`, "false\n"},
		{"print !!true;", "true\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, runClean(t, tt.input), "source %q", tt.input)
	}
}

// TestEvaluator_LogicalOperators covers operand-valued short-circuit
// results and the keyword aliases.
func TestEvaluator_LogicalOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"print 1 or 2;", "1\n"},
		{"print 0 or 2;", "2\n"},
		{"print null || 3;", "3\n"},
		{"print 1 and 2;", "2\n"},
		{"print 0 and 2;", "0\n"},
		{"print false && true;", "false\n"},
		{`print "" and "second";`, "second\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, runClean(t, tt.input), "source %q", tt.input)
	}
}

// TestEvaluator_ShortCircuitSkipsRightSide verifies via side effects
// that the right operand never evaluates when the left decides.
func TestEvaluator_ShortCircuitSkipsRightSide(t *testing.T) {
	out := runClean(t, `
fun loud() { print "evaluated"; return true; }
print true or loud();
print false and loud();`)
	assert.Equal(t, "true\nfalse\n", out)
}

// TestEvaluator_CompoundAssignment covers += and -= including the
// numeric operand requirement.
func TestEvaluator_CompoundAssignment(t *testing.T) {
	out := runClean(t, `
var x = 1;
x += 2;
print x;
x -= 5;
print x;`)
	assert.Equal(t, "3\n-2\n", out)

	msg := expectRuntimeError(t, `var s = "a"; s += 1;`)
	assert.Equal(t, "[Line 1] Error at '+=': Operands must be a numbers.", msg)
}

// TestEvaluator_AssignmentValue verifies assignment is an expression
// yielding the assigned value, chaining right to left.
func TestEvaluator_AssignmentValue(t *testing.T) {
	out := runClean(t, `
var a = 1;
var b = 2;
print a = b = 7;
print a;
print b;`)
	assert.Equal(t, "7\n7\n7\n", out)
}

// TestEvaluator_Stringify covers the canonical renderings of every
// value family.
func TestEvaluator_Stringify(t *testing.T) {
	out := runClean(t, `
print null;
print true;
print false;
print 3;
print 2.5;
fun named() { return 1; }
print named;
print fun (x) { return x; };
print readline;
class Empty { }
print Empty;
print Empty();`)
	assert.Equal(t, strings.Join([]string{
		"null",
		"true",
		"false",
		"3",
		"2.5",
		"<fun named>",
		"<anonymous>",
		"<native fun readline>",
		"Empty",
		"<Empty> instance",
	}, "\n")+"\n", out)
}

// TestEvaluator_RuntimeErrors covers the operator type checks with
// their exact one-line reports.
func TestEvaluator_RuntimeErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print "a" - 1;`, "[Line 1] Error at '-': Operands must be a numbers."},
		{`print true * 2;`, "[Line 1] Error at '*': Operands must be a numbers."},
		{`print null & 1;`, "[Line 1] Error at '&': Operands must be a numbers."},
		{`print 1 + "a";`, "[Line 1] Error at '+': Invalid operand(s) for '+'."},
		{`print null + 1;`, "[Line 1] Error at '+': Invalid operand(s) for '+'."},
		{`print 1 < "a";`, "[Line 1] Error at '<': Both operands must be comparable to each other."},
		{`print true >= false;`, "[Line 1] Error at '>=': Both operands must be comparable to each other."},
		{`print -"a";`, "[Line 1] Error at '-': Operand must be a number."},
		{`print nope;`, "[Line 1] Error at 'nope': nope is undefined."},
		{`nope = 1;`, "[Line 1] Error at 'nope': nope is undefined."},
		{`var x = 1; x();`, "[Line 1] Error at ')': Can only call functions and classes."},
		{`fun f(a) { return a; } f(1, 2);`, "[Line 1] Error at ')': Expected 1 arguments but got 2."},
		{`var x = 1; print x.y;`, "[Line 1] Error at 'y': Only instances have properties."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, expectRuntimeError(t, tt.input), "source %q", tt.input)
	}
}

// TestEvaluator_RuntimeErrorStopsExecution verifies the first runtime
// error halts the remaining statements after their predecessors ran.
func TestEvaluator_RuntimeErrorStopsExecution(t *testing.T) {
	out, sink := runSource(t, `
print 1;
print "a" - 1;
print 2;`)
	assert.Equal(t, "1\n", out)
	assert.True(t, sink.HasKind(diag.RuntimeKind))
}

// TestEvaluator_VariablesAndBlocks covers declaration, shadowing and
// scope restoration.
func TestEvaluator_VariablesAndBlocks(t *testing.T) {
	out := runClean(t, `
var a = 1;
{
    var a = 2;
    print a;
    a = 3;
    print a;
}
print a;`)
	assert.Equal(t, "2\n3\n1\n", out)
}

// TestEvaluator_UninitializedVariable verifies a declaration without an
// initializer yields null.
func TestEvaluator_UninitializedVariable(t *testing.T) {
	assert.Equal(t, "null\n", runClean(t, "var a; print a;"))
}

// TestEvaluator_WhileAndBreak covers loops, the break signal and its
// confinement to the innermost loop.
func TestEvaluator_WhileAndBreak(t *testing.T) {
	out := runClean(t, `
var i = 0;
while (i < 3) { var j = 0;
  while (j < 3) { if (j == 1) break; print j; j = j + 1; }
  i = i + 1; }`)
	assert.Equal(t, "0\n0\n0\n", out)
}

// TestEvaluator_ForLoopMatchesWhile verifies the desugared for loop
// prints exactly what the hand-written while equivalent prints.
func TestEvaluator_ForLoopMatchesWhile(t *testing.T) {
	forOut := runClean(t, "for (var i = 0; i < 4; i = i + 1) print i;")
	whileOut := runClean(t, "{ var i = 0; while (i < 4) { print i; i = i + 1; } }")
	assert.Equal(t, whileOut, forOut)
	assert.Equal(t, "0\n1\n2\n3\n", forOut)
}

// TestEvaluator_ForLoopBreak verifies break inside a desugared loop.
func TestEvaluator_ForLoopBreak(t *testing.T) {
	out := runClean(t, "for (var i = 0; ; i = i + 1) { if (i == 2) break; print i; }")
	assert.Equal(t, "0\n1\n", out)
}
