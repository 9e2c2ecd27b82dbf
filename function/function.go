/*
File    : go-lyra/function/function.go
Author  : Lyra Maintainers
*/
package function

import (
	"fmt"

	"github.com/lyra-lang/go-lyra/ast"
	"github.com/lyra-lang/go-lyra/objects"
	"github.com/lyra-lang/go-lyra/scope"
)

// Function represents a user-defined function object in Lyra.
// It captures the function's name, its AST declaration, and the scope in
// which it was created (for closure support).
//
// Fields:
//   - Name: The declared name, empty for anonymous function literals.
//   - Decl: The function literal node holding parameters and body.
//   - Scp: The scope in which the function was created. This enables
//     closure behavior, allowing the function to access variables from
//     its enclosing scope even after that scope has finished executing.
//   - IsInitializer: True for methods named init; initializer calls
//     always produce the bound instance regardless of explicit returns.
type Function struct {
	Name          string                   // Name of the function ("" for anonymous)
	Decl          *ast.FunctionLiteralNode // Parameters and body
	Scp           *scope.Scope             // Captured scope for closures
	IsInitializer bool                     // Method named 'init'
}

// ArityCount returns the declared parameter count, checked at call time.
func (f *Function) ArityCount() int {
	return len(f.Decl.Params)
}

// GetName returns the declared name of the function.
func (f *Function) GetName() string {
	return f.Name
}

// BindTo clones the function with one extra scope pushed between its
// capture scope and its body, defining 'this' as the given instance.
// Method access on an instance goes through here, which is what makes
//
//	var m = obj.method; m();
//
// keep 'this' pointing at obj.
func (f *Function) BindTo(instance objects.Object) *Function {
	bound := scope.NewScope(f.Scp)
	bound.Bind("this", instance)
	return &Function{
		Name:          f.Name,
		Decl:          f.Decl,
		Scp:           bound,
		IsInitializer: f.IsInitializer,
	}
}

// GetType returns the function type
func (f *Function) GetType() objects.ObjectType {
	return objects.FunctionType
}

// ToString renders the function as "<fun name>", or "<anonymous>" for
// unnamed function literals.
func (f *Function) ToString() string {
	if f.Name == "" {
		return "<anonymous>"
	}
	return fmt.Sprintf("<fun %s>", f.Name)
}

// ToObject returns a detailed representation including parameter names
func (f *Function) ToObject() string {
	args := ""
	for i, param := range f.Decl.Params {
		if i > 0 {
			args += ", "
		}
		args += param.Lexeme
	}
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("<fun[%s(%s)]>", name, args)
}
