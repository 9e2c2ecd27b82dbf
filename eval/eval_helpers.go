/*
File    : go-lyra/eval/eval_helpers.go
Author  : Lyra Maintainers
*/
package eval

import (
	"fmt"
	"math"

	"github.com/lyra-lang/go-lyra/objects"
	"github.com/lyra-lang/go-lyra/token"
)

// Shared boolean singletons; boolObject hands these out so boolean
// results never allocate.
var (
	TRUE  = &objects.Boolean{Value: true}
	FALSE = &objects.Boolean{Value: false}
)

// IsError reports whether a value is a runtime error being threaded
// through evaluation.
func IsError(obj objects.Object) bool {
	_, ok := obj.(*objects.RuntimeError)
	return ok
}

// runtimeError creates a runtime error value anchored at the given
// token. The error unwinds through evaluation to Interpret, which
// reports it once.
func (e *Evaluator) runtimeError(tok token.Token, format string, args ...interface{}) objects.Object {
	return &objects.RuntimeError{
		Tok:     tok,
		Message: fmt.Sprintf(format, args...),
	}
}

// boolObject converts a Go bool to the shared boolean singletons.
func boolObject(value bool) objects.Object {
	if value {
		return TRUE
	}
	return FALSE
}

// literalObject converts a parsed literal value into a runtime value.
func literalObject(value interface{}) objects.Object {
	switch v := value.(type) {
	case nil:
		return NULL
	case bool:
		return boolObject(v)
	case float64:
		return &objects.Number{Value: v}
	case string:
		return &objects.String{Value: v}
	}
	return NULL
}

// isTruthy implements the language's truthiness: false, null and the
// number 0 are falsey; every other value (non-zero numbers, all strings
// including the empty one, callables, classes, instances) is truthy.
func isTruthy(obj objects.Object) bool {
	switch v := obj.(type) {
	case *objects.Nil:
		return false
	case *objects.Boolean:
		return v.Value
	case *objects.Number:
		return v.Value != 0
	}
	return true
}

// isEqual implements '=='. null equals only null; numbers, strings and
// booleans compare by value; everything else (functions, natives,
// classes, instances) compares by identity. Cross-type comparisons are
// never equal.
func isEqual(a, b objects.Object) bool {
	switch l := a.(type) {
	case *objects.Nil:
		_, ok := b.(*objects.Nil)
		return ok
	case *objects.Number:
		r, ok := b.(*objects.Number)
		return ok && l.Value == r.Value
	case *objects.String:
		r, ok := b.(*objects.String)
		return ok && l.Value == r.Value
	case *objects.Boolean:
		r, ok := b.(*objects.Boolean)
		return ok && l.Value == r.Value
	}
	return a == b
}

// toInt32 truncates a number toward zero into a 32-bit signed integer,
// the operand form of the bitwise operators. NaN maps to 0 and
// out-of-range values clamp to the int32 limits instead of tripping
// undefined float-to-int conversion.
func toInt32(value float64) int32 {
	truncated := math.Trunc(value)
	if math.IsNaN(truncated) {
		return 0
	}
	if truncated >= math.MaxInt32 {
		return math.MaxInt32
	}
	if truncated <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(truncated)
}
