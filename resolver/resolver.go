/*
File    : go-lyra/resolver/resolver.go
Author  : Lyra Maintainers
*/

// Package resolver implements the static variable-resolution pass that
// runs between parsing and evaluation. It walks the AST once,
// maintaining a stack of lexical scopes, and computes for every
// name-bearing expression (variable read, assignment, 'this') the number
// of enclosing scopes to skip at runtime to reach the declaring scope.
//
// Names that resolve to no scope are global: they stay out of the map
// and the evaluator looks them up in the global scope by name.
//
// The pass also diagnoses static errors: reading a local variable in its
// own initializer, duplicate declarations in the same non-global scope,
// 'return' outside any function and 'this' outside any class.
package resolver

import (
	"github.com/lyra-lang/go-lyra/ast"
	"github.com/lyra-lang/go-lyra/diag"
	"github.com/lyra-lang/go-lyra/token"
)

// FunctionKind tracks what kind of function body encloses the current
// node, so return placement and 'init' semantics resolve correctly.
type FunctionKind int

const (
	// FUNC_NONE marks top-level code outside any function
	FUNC_NONE FunctionKind = iota
	// FUNC_FUNCTION marks an ordinary function or anonymous literal
	FUNC_FUNCTION
	// FUNC_METHOD marks a class method
	FUNC_METHOD
	// FUNC_INITIALIZER marks a method named init
	FUNC_INITIALIZER
)

// ClassKind tracks whether a class body encloses the current node, so
// stray 'this' uses are diagnosed.
type ClassKind int

const (
	// CLASS_NONE marks code outside any class
	CLASS_NONE ClassKind = iota
	// CLASS_CLASS marks code inside a class body
	CLASS_CLASS
)

// Resolver holds the state of one resolution pass.
// Each stack entry maps a name to its initialization state: declared
// (false) until the initializer finishes, defined (true) afterwards.
// The split is what catches 'var a = a;' in a local scope.
type Resolver struct {
	Sink *diag.Sink // Shared diagnostic sink

	scopes          []map[string]bool // Lexical scope stack; globals are not on it
	currentFunction FunctionKind      // Enclosing function kind
	currentClass    ClassKind         // Enclosing class kind
	locals          map[int]int       // Expression id -> scope hop count
}

// NewResolver creates a resolver reporting into the given sink.
func NewResolver(sink *diag.Sink) *Resolver {
	return &Resolver{
		Sink:            sink,
		scopes:          make([]map[string]bool, 0),
		currentFunction: FUNC_NONE,
		currentClass:    CLASS_NONE,
		locals:          make(map[int]int),
	}
}

// Resolve walks the statement list and returns the distance map keyed
// by expression id. Errors land in the sink; the returned map is valid
// for whatever resolved cleanly.
func (r *Resolver) Resolve(statements []ast.StatementNode) map[int]int {
	r.resolveStatements(statements)
	return r.locals
}

// resolveStatements resolves a statement list in order.
func (r *Resolver) resolveStatements(statements []ast.StatementNode) {
	for _, stmt := range statements {
		r.resolveStatement(stmt)
	}
}

// resolveStatement dispatches on the statement variant.
func (r *Resolver) resolveStatement(stmt ast.StatementNode) {
	switch n := stmt.(type) {

	case *ast.BlockStatementNode:
		r.beginScope()
		r.resolveStatements(n.Statements)
		r.endScope()

	case *ast.VarStatementNode:
		// Declare before resolving the initializer so a reference to
		// the name inside its own initializer is caught.
		r.declare(n.Name)
		if n.Initializer != nil {
			r.resolveExpression(n.Initializer)
		}
		r.define(n.Name)

	case *ast.FunctionStatementNode:
		// The name is defined before the body resolves, so functions
		// can recurse.
		r.declare(n.Name)
		r.define(n.Name)
		r.resolveFunction(n.Function, FUNC_FUNCTION)

	case *ast.ExpressionStatementNode:
		r.resolveExpression(n.Expr)

	case *ast.PrintStatementNode:
		r.resolveExpression(n.Expr)

	case *ast.IfStatementNode:
		r.resolveExpression(n.Condition)
		r.resolveStatement(n.ThenBranch)
		if n.ElseBranch != nil {
			r.resolveStatement(n.ElseBranch)
		}

	case *ast.WhileStatementNode:
		r.resolveExpression(n.Condition)
		r.resolveStatement(n.Body)

	case *ast.BreakStatementNode:
		// Placement is checked by the parser; nothing resolves here.

	case *ast.ReturnStatementNode:
		if r.currentFunction == FUNC_NONE {
			r.Sink.ReportToken(diag.StaticKind, n.Keyword, "Cannot return from top-level code.")
		}
		if n.Value != nil {
			r.resolveExpression(n.Value)
		}

	case *ast.ClassStatementNode:
		r.resolveClassStatement(n)
	}
}

// resolveClassStatement resolves a class declaration. A scope with a
// synthetic 'this' binding wraps the methods, mirroring the extra scope
// the evaluator pushes when binding a method to an instance.
func (r *Resolver) resolveClassStatement(n *ast.ClassStatementNode) {
	enclosing := r.currentClass
	r.currentClass = CLASS_CLASS

	r.declare(n.Name)
	r.define(n.Name)

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range n.Methods {
		kind := FUNC_METHOD
		if method.Name.Lexeme == "init" {
			kind = FUNC_INITIALIZER
		}
		r.resolveFunction(method.Function, kind)
	}

	r.endScope()
	r.currentClass = enclosing
}

// resolveFunction resolves a function body in a fresh scope binding the
// parameters, under the given function kind.
func (r *Resolver) resolveFunction(fn *ast.FunctionLiteralNode, kind FunctionKind) {
	enclosing := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.currentFunction = enclosing
}

// resolveExpression dispatches on the expression variant.
func (r *Resolver) resolveExpression(expr ast.ExpressionNode) {
	switch n := expr.(type) {

	case *ast.LiteralExpressionNode:
		// Literals carry no names.

	case *ast.VariableExpressionNode:
		if len(r.scopes) > 0 {
			if defined, found := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; found && !defined {
				r.Sink.ReportToken(diag.StaticKind, n.Name,
					"Cannot read from local variable in its own initializer.")
			}
		}
		r.resolveLocal(n.ID, n.Name)

	case *ast.AssignmentExpressionNode:
		r.resolveExpression(n.Value)
		r.resolveLocal(n.ID, n.Name)

	case *ast.GroupingExpressionNode:
		r.resolveExpression(n.Expr)

	case *ast.UnaryExpressionNode:
		r.resolveExpression(n.Right)

	case *ast.BinaryExpressionNode:
		r.resolveExpression(n.Left)
		r.resolveExpression(n.Right)

	case *ast.LogicalExpressionNode:
		r.resolveExpression(n.Left)
		r.resolveExpression(n.Right)

	case *ast.CallExpressionNode:
		r.resolveExpression(n.Callee)
		for _, arg := range n.Arguments {
			r.resolveExpression(arg)
		}

	case *ast.FunctionLiteralNode:
		r.resolveFunction(n, FUNC_FUNCTION)

	case *ast.GetExpressionNode:
		// Property names resolve dynamically; only the receiver is
		// a static name.
		r.resolveExpression(n.Object)

	case *ast.SetExpressionNode:
		r.resolveExpression(n.Value)
		r.resolveExpression(n.Object)

	case *ast.ThisExpressionNode:
		if r.currentClass == CLASS_NONE {
			r.Sink.ReportToken(diag.StaticKind, n.Keyword, "Cannot use 'this' outside of a class.")
			return
		}
		r.resolveLocal(n.ID, n.Keyword)
	}
}

// resolveLocal walks the scope stack from innermost outward and records
// the hop count of the first scope containing the name. Names found in
// no scope are globals and stay out of the map.
func (r *Resolver) resolveLocal(id int, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, found := r.scopes[i][name.Lexeme]; found {
			r.locals[id] = len(r.scopes) - 1 - i
			return
		}
	}
}

// beginScope pushes a fresh scope onto the stack.
func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

// endScope pops the innermost scope.
func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare records a name in the innermost scope as not-yet-initialized.
// Redeclaring a name in the same non-global scope is a static error;
// the global scope (empty stack) permits redeclaration.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Lexeme]; exists {
		r.Sink.ReportToken(diag.StaticKind, name,
			"Variable '%s' already declared in this scope.", name.Lexeme)
	}
	scope[name.Lexeme] = false
}

// define marks a declared name as fully initialized.
func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}
