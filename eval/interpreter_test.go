/*
File    : go-lyra/eval/interpreter_test.go
Author  : Lyra Maintainers
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInterpreter_FunctionsAndReturn covers declarations, calls,
// implicit null returns and recursion.
func TestInterpreter_FunctionsAndReturn(t *testing.T) {
	out := runClean(t, `
fun add(a, b) { return a + b; }
print add(2, 3);

fun noReturn() { var x = 1; }
print noReturn();

fun fib(n) {
    if (n < 2) return n;
    return fib(n - 1) + fib(n - 2);
}
print fib(10);`)
	assert.Equal(t, "5\nnull\n55\n", out)
}

// TestInterpreter_AnonymousFunctions covers function literals as values
// and immediate invocation.
func TestInterpreter_AnonymousFunctions(t *testing.T) {
	out := runClean(t, `
var double = fun (x) { return x * 2; };
print double(21);

fun apply(f, v) { return f(v); }
print apply(fun (x) { return x + 1; }, 9);`)
	assert.Equal(t, "42\n10\n", out)
}

// TestInterpreter_ClosuresCaptureByReference is the counter scenario:
// the inner function mutates the variable of its defining scope across
// calls.
func TestInterpreter_ClosuresCaptureByReference(t *testing.T) {
	out := runClean(t, `
fun makeCounter() {
  var n = 0;
  fun c() { n = n + 1; return n; }
  return c;
}
var k = makeCounter(); print k(); print k(); print k();`)
	assert.Equal(t, "1\n2\n3\n", out)
}

// TestInterpreter_IndependentClosures verifies two counters from the
// same factory do not share state.
func TestInterpreter_IndependentClosures(t *testing.T) {
	out := runClean(t, `
fun makeCounter() {
  var n = 0;
  fun c() { n = n + 1; return n; }
  return c;
}
var a = makeCounter();
var b = makeCounter();
print a(); print a(); print b();`)
	assert.Equal(t, "1\n2\n1\n", out)
}

// TestInterpreter_StaticScopeResolution is the classic shadowing
// scenario: a function defined before an inner declaration keeps seeing
// the binding it resolved against.
func TestInterpreter_StaticScopeResolution(t *testing.T) {
	out := runClean(t, `
var a = "global";
{ fun show() { print a; } show(); var a = "local"; show(); }`)
	assert.Equal(t, "global\nglobal\n", out)
}

// TestInterpreter_ClassWithInitAndMethod is the basic class scenario.
func TestInterpreter_ClassWithInitAndMethod(t *testing.T) {
	out := runClean(t, `
class Box { init(x) { this.x = x; } get() { return this.x; } }
var b = Box(42); print b.get();`)
	assert.Equal(t, "42\n", out)
}

// TestInterpreter_PropertiesWinOverMethods verifies field reads shadow
// method lookup, and set creates fields on demand.
func TestInterpreter_PropertiesWinOverMethods(t *testing.T) {
	out := runClean(t, `
class Thing { label() { return "method"; } }
var thing = Thing();
print thing.label();
thing.label = "field";
print thing.label;`)
	assert.Equal(t, "method\nfield\n", out)
}

// TestInterpreter_MethodBinding verifies a detached method keeps its
// receiver: after var m = instance.method; m() still sees 'this'.
func TestInterpreter_MethodBinding(t *testing.T) {
	out := runClean(t, `
class Box { init(v) { this.v = v; } get() { return this.v; } }
var b = Box(7);
var m = b.get;
print m();`)
	assert.Equal(t, "7\n", out)
}

// TestInterpreter_InitReturnsInstance verifies init yields the bound
// instance even with an explicit bare return in its body.
func TestInterpreter_InitReturnsInstance(t *testing.T) {
	out := runClean(t, `
class P { init() { this.ready = true; return; } }
var p = P();
print p.ready;
print P();`)
	assert.Equal(t, "true\n<P> instance\n", out)
}

// TestInterpreter_SetExpressionValue verifies a property write yields
// the assigned value.
func TestInterpreter_SetExpressionValue(t *testing.T) {
	out := runClean(t, `
class Box { }
var b = Box();
print b.x = 5;
print b.x;`)
	assert.Equal(t, "5\n5\n", out)
}

// TestInterpreter_Inheritance covers method lookup through the
// superclass chain, including an inherited constructor.
func TestInterpreter_Inheritance(t *testing.T) {
	out := runClean(t, `
class A { greet() { return "A"; } }
class B : A { }
var b = B();
print b.greet();

class C { init(x) { this.x = x; } }
class D : C { }
var d = D(5);
print d.x;`)
	assert.Equal(t, "A\n5\n", out)
}

// TestInterpreter_MethodOverride verifies the subclass method wins.
func TestInterpreter_MethodOverride(t *testing.T) {
	out := runClean(t, `
class A { who() { return "A"; } }
class B : A { who() { return "B"; } }
print B().who();
print A().who();`)
	assert.Equal(t, "B\nA\n", out)
}

// TestInterpreter_ClassErrors covers construction and property error
// paths.
func TestInterpreter_ClassErrors(t *testing.T) {
	msg := expectRuntimeError(t, `
class Box { init(x) { this.x = x; } }
var b = Box();`)
	assert.Equal(t, "[Line 3] Error at ')': Expected 1 arguments but got 0.", msg)

	msg = expectRuntimeError(t, `
class Box { }
var b = Box();
print b.missing;`)
	assert.Equal(t, "[Line 4] Error at 'missing': Property 'missing' is undefined.", msg)

	msg = expectRuntimeError(t, `var x = 1; class B : x { }`)
	assert.Equal(t, "[Line 1] Error at 'x': Superclass must be a class.", msg)

	msg = expectRuntimeError(t, `class B : Missing { }`)
	assert.Equal(t, "[Line 1] Error at 'Missing': Missing is undefined.", msg)
}

// TestInterpreter_CompoundSetRejected verifies the parser-accepted
// compound property forms fail at runtime as invalid targets.
func TestInterpreter_CompoundSetRejected(t *testing.T) {
	msg := expectRuntimeError(t, `
class Box { init() { this.v = 1; } }
var b = Box();
b.v += 1;`)
	assert.Equal(t, "[Line 4] Error at '+=': Invalid assignment target.", msg)
}

// TestInterpreter_EnvRestoredAfterUnwind verifies the scope chain
// survives return unwinding through nested blocks: the outer binding is
// intact afterwards.
func TestInterpreter_EnvRestoredAfterUnwind(t *testing.T) {
	out := runClean(t, `
var depth = "outer";
fun dive() {
    var depth = "inner";
    { { return depth; } }
}
print dive();
print depth;`)
	assert.Equal(t, "inner\nouter\n", out)
}

// TestInterpreter_NativeClock verifies __SysClockSeconds is registered,
// callable and returns a plausible number of fractional seconds.
func TestInterpreter_NativeClock(t *testing.T) {
	out := runClean(t, `
var start = __SysClockSeconds();
print start > 0;
print __SysClockSeconds() >= start;`)
	assert.Equal(t, "true\ntrue\n", out)
}

// TestInterpreter_NativeReadline verifies line reads and the null at
// end of input.
func TestInterpreter_NativeReadline(t *testing.T) {
	out, sink := runSourceWithInput(t, `
print readline();
print readline();
print readline();`, "hello\nworld\n")
	require.False(t, sink.HasErrors(), "%v", sink.Err())
	assert.Equal(t, "hello\nworld\nnull\n", out)
}

// TestInterpreter_NativeReadchar verifies character reads and the null
// at end of input.
func TestInterpreter_NativeReadchar(t *testing.T) {
	out, sink := runSourceWithInput(t, `
print readchar();
print readchar();
print readchar();`, "ab")
	require.False(t, sink.HasErrors(), "%v", sink.Err())
	assert.Equal(t, "a\nb\nnull\n", out)
}

// TestInterpreter_NativeArity verifies natives check their arity like
// any callable.
func TestInterpreter_NativeArity(t *testing.T) {
	msg := expectRuntimeError(t, "readline(1);")
	assert.Equal(t, "[Line 1] Error at ')': Expected 0 arguments but got 1.", msg)
}

// TestInterpreter_ConditionClauses covers if/else wiring end to end.
func TestInterpreter_ConditionClauses(t *testing.T) {
	out := runClean(t, `
fun sign(n) {
    if (n < 0) return "negative";
    else if (n == 0) return "zero";
    return "positive";
}
print sign(-3);
print sign(0);
print sign(9);`)
	assert.Equal(t, "negative\nzero\npositive\n", out)
}

// TestInterpreter_ArgumentOrder verifies arguments evaluate left to
// right, observable through side effects.
func TestInterpreter_ArgumentOrder(t *testing.T) {
	out := runClean(t, `
fun note(tag) { print tag; return tag; }
fun pair(a, b) { return a + b; }
print pair(note("first"), note("second"));`)
	assert.Equal(t, "first\nsecond\nfirstsecond\n", out)
}
