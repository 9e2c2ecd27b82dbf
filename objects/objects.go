/*
File    : go-lyra/objects/objects.go
Author  : Lyra Maintainers
*/

// Package objects defines the runtime value types of the Lyra language.
// Values form a tagged variant: null, boolean, number (a 64-bit float),
// string, callable (functions and natives), class and instance. All
// types implement the Object interface, which provides type tags, the
// canonical stringification used by print and '+' concatenation, and a
// detailed representation for debugging. The package also defines the
// control-signal wrappers (return, break) and the runtime error value
// threaded through evaluation.
package objects

import (
	"fmt"
	"strconv"

	"github.com/lyra-lang/go-lyra/token"
)

// ObjectType represents the type of a Lyra object as a string constant.
// These constants identify objects in the language, enabling type checks
// and polymorphic behavior across the value variants.
type ObjectType string

const (
	// NumberType represents 64-bit floating-point values
	NumberType ObjectType = "number"
	// StringType represents string values
	StringType ObjectType = "string"
	// BooleanType represents boolean (true/false) values
	BooleanType ObjectType = "bool"
	// NilType represents the null value
	NilType ObjectType = "null"
	// FunctionType represents user-defined function objects
	FunctionType ObjectType = "fun"
	// NativeType represents pre-registered native functions
	NativeType ObjectType = "native fun"
	// ClassType represents class objects
	ClassType ObjectType = "class"
	// InstanceType represents class instances
	InstanceType ObjectType = "instance"
	// ErrorType represents runtime error values
	ErrorType ObjectType = "error"
	// ReturnType represents a return control signal
	ReturnType ObjectType = "return"
	// BreakType represents a break control signal
	BreakType ObjectType = "break"
)

// Object is the core interface that all Lyra runtime values implement.
type Object interface {
	// GetType returns the ObjectType of the value, used for type checking
	GetType() ObjectType
	// ToString returns the canonical text rendering of the value, used
	// by print and string concatenation
	ToString() string
	// ToObject returns a detailed string representation including type
	// information, used for debugging and inspection
	ToObject() string
}

// Number represents a 64-bit floating-point value in Lyra.
// The language has a single numeric type; integers are whole doubles.
type Number struct {
	Value float64 // The underlying floating-point value
}

// GetType returns the type of the Number object
func (n *Number) GetType() ObjectType {
	return NumberType
}

// ToString renders the number with the host's default float formatting,
// so whole doubles print without a decimal point (e.g. "42", "3.14").
func (n *Number) ToString() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// ToObject returns a detailed representation including type info
func (n *Number) ToObject() string {
	return fmt.Sprintf("<number(%s)>", n.ToString())
}

// String represents a string value in Lyra.
type String struct {
	Value string // The underlying string value
}

// GetType returns the type of the String object
func (s *String) GetType() ObjectType {
	return StringType
}

// ToString returns the string value itself
func (s *String) ToString() string {
	return s.Value
}

// ToObject returns a detailed representation including type info
func (s *String) ToObject() string {
	return fmt.Sprintf("<string(%s)>", s.Value)
}

// Boolean represents a boolean value in Lyra.
type Boolean struct {
	Value bool // The underlying boolean value
}

// GetType returns the type of the Boolean object
func (b *Boolean) GetType() ObjectType {
	return BooleanType
}

// ToString returns "true" or "false"
func (b *Boolean) ToString() string {
	return fmt.Sprintf("%t", b.Value)
}

// ToObject returns a detailed representation including type info
func (b *Boolean) ToObject() string {
	return fmt.Sprintf("<bool(%t)>", b.Value)
}

// Nil represents the null value in Lyra.
type Nil struct{}

// GetType returns the type of the Nil object
func (n *Nil) GetType() ObjectType {
	return NilType
}

// ToString returns the string "null"
func (n *Nil) ToString() string {
	return "null"
}

// ToObject returns a detailed representation "<null()>"
func (n *Nil) ToObject() string {
	return "<null()>"
}

// ReturnValue wraps a value carried by a return statement.
// It unwinds through statement evaluation until the invoking call frame
// catches it and unwraps the payload.
type ReturnValue struct {
	Value Object // The wrapped value returned from a function
}

// GetType returns the return signal type
func (r *ReturnValue) GetType() ObjectType {
	return ReturnType
}

// ToString returns the string representation of the wrapped value
func (r *ReturnValue) ToString() string {
	return r.Value.ToString()
}

// ToObject returns a detailed representation of the wrapped value
func (r *ReturnValue) ToObject() string {
	return fmt.Sprintf("<return(%s)>", r.Value.ToObject())
}

// BreakSignal is the control signal produced by a break statement.
// It unwinds through statement evaluation until the innermost enclosing
// while loop catches it.
type BreakSignal struct{}

// GetType returns the break signal type
func (b *BreakSignal) GetType() ObjectType {
	return BreakType
}

// ToString returns "break"
func (b *BreakSignal) ToString() string {
	return "break"
}

// ToObject returns "<break()>"
func (b *BreakSignal) ToObject() string {
	return "<break()>"
}

// RuntimeError represents an evaluation error. It is threaded through
// the evaluator as a value so it unwinds to the top of the interpreter
// loop, where it is reported once with its anchoring token.
type RuntimeError struct {
	Tok     token.Token // Token the error is anchored at
	Message string      // Human-readable description
}

// GetType returns the error type
func (e *RuntimeError) GetType() ObjectType {
	return ErrorType
}

// ToString returns the error message
func (e *RuntimeError) ToString() string {
	return e.Message
}

// ToObject returns a detailed representation including the source line
func (e *RuntimeError) ToObject() string {
	return fmt.Sprintf("<error[line %d](%s)>", e.Tok.Line, e.Message)
}
