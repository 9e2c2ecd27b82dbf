/*
File    : go-lyra/std/builtins.go
Author  : Lyra Maintainers
*/

// Package std defines the native functions pre-registered in the global
// scope of every Lyra program. The native surface is deliberately tiny:
// a wall-clock reader and two stdin readers. Each native is a Builtin
// value registered during package initialization; the evaluator binds
// every registered builtin into its globals at construction time.
package std

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lyra-lang/go-lyra/objects"
)

// Runtime defines the narrow interface natives need from the evaluator.
// Keeping it here avoids an import cycle between std and eval.
type Runtime interface {
	// GetInputReader returns the buffered standard input reader shared
	// by all input natives, so sequential reads never lose data between
	// buffer swaps.
	GetInputReader() *bufio.Reader
}

// CallbackFunc is the function signature for native implementations.
// It receives the runtime, an io.Writer for output, and the evaluated
// arguments, returning the native's result value.
type CallbackFunc func(rt Runtime, writer io.Writer, args ...objects.Object) objects.Object

// Builtin represents a native function with its name, declared arity and
// implementation callback. Builtins are runtime values: they live in the
// global scope and satisfy the calling convention like any function.
type Builtin struct {
	Name     string       // The name the native is registered under
	Arity    int          // Declared parameter count, checked at call
	Callback CallbackFunc // The function implementing the behavior
}

// ArityCount returns the declared parameter count.
func (b *Builtin) ArityCount() int {
	return b.Arity
}

// GetName returns the registered name of the native.
func (b *Builtin) GetName() string {
	return b.Name
}

// GetType returns the native function type
func (b *Builtin) GetType() objects.ObjectType {
	return objects.NativeType
}

// ToString renders the native as "<native fun name>".
func (b *Builtin) ToString() string {
	return fmt.Sprintf("<native fun %s>", b.Name)
}

// ToObject returns a detailed representation including arity
func (b *Builtin) ToObject() string {
	return fmt.Sprintf("<native fun[%s/%d]>", b.Name, b.Arity)
}

// Builtins is the global registry of native functions. Each std file
// appends its natives during package initialization.
var Builtins = make([]*Builtin, 0)
