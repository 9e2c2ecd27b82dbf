/*
File    : go-lyra/eval/eval_statements.go
Author  : Lyra Maintainers
*/
package eval

import (
	"fmt"

	"github.com/lyra-lang/go-lyra/ast"
	"github.com/lyra-lang/go-lyra/function"
	"github.com/lyra-lang/go-lyra/objects"
	"github.com/lyra-lang/go-lyra/scope"
)

// execStatement executes one statement and returns its result value.
// For ordinary statements that is NULL; control signals (return, break)
// and runtime errors travel upward through this return value until the
// construct that owns them catches them.
func (e *Evaluator) execStatement(stmt ast.StatementNode) objects.Object {
	switch n := stmt.(type) {

	case *ast.ExpressionStatementNode:
		result := e.evalExpression(n.Expr)
		if IsError(result) {
			return result
		}
		return NULL

	case *ast.PrintStatementNode:
		return e.execPrintStatement(n)

	case *ast.VarStatementNode:
		return e.execVarStatement(n)

	case *ast.BlockStatementNode:
		return e.execBlock(n.Statements, scope.NewScope(e.Scp))

	case *ast.IfStatementNode:
		return e.execIfStatement(n)

	case *ast.WhileStatementNode:
		return e.execWhileStatement(n)

	case *ast.BreakStatementNode:
		return &objects.BreakSignal{}

	case *ast.ReturnStatementNode:
		return e.execReturnStatement(n)

	case *ast.FunctionStatementNode:
		return e.execFunctionStatement(n)

	case *ast.ClassStatementNode:
		return e.execClassStatement(n)
	}

	return NULL
}

// evalStatements executes a statement list in order with early
// termination: a runtime error, a return signal or a break signal stops
// the walk immediately and propagates to the caller.
func (e *Evaluator) evalStatements(stmts []ast.StatementNode) objects.Object {
	var result objects.Object = NULL
	for _, stmt := range stmts {
		result = e.execStatement(stmt)

		if IsError(result) {
			return result
		}
		if _, isReturn := result.(*objects.ReturnValue); isReturn {
			return result
		}
		if _, isBreak := result.(*objects.BreakSignal); isBreak {
			return result
		}
	}
	return result
}

// execBlock runs statements in the given child scope, restoring the
// previous scope on every exit path including control-signal unwind.
func (e *Evaluator) execBlock(stmts []ast.StatementNode, blockScope *scope.Scope) objects.Object {
	previous := e.Scp
	e.Scp = blockScope
	defer func() {
		e.Scp = previous
	}()
	return e.evalStatements(stmts)
}

// execPrintStatement evaluates the expression and prints its canonical
// stringification followed by a newline.
func (e *Evaluator) execPrintStatement(n *ast.PrintStatementNode) objects.Object {
	value := e.evalExpression(n.Expr)
	if IsError(value) {
		return value
	}
	fmt.Fprintln(e.Writer, value.ToString())
	return NULL
}

// execVarStatement binds a new variable in the current scope. A missing
// initializer leaves the variable null.
func (e *Evaluator) execVarStatement(n *ast.VarStatementNode) objects.Object {
	var value objects.Object = NULL
	if n.Initializer != nil {
		value = e.evalExpression(n.Initializer)
		if IsError(value) {
			return value
		}
	}
	e.Scp.Bind(n.Name.Lexeme, value)
	return NULL
}

// execIfStatement evaluates the condition and runs exactly one branch.
// Whatever the branch produces (including signals) propagates upward.
func (e *Evaluator) execIfStatement(n *ast.IfStatementNode) objects.Object {
	condition := e.evalExpression(n.Condition)
	if IsError(condition) {
		return condition
	}
	if isTruthy(condition) {
		return e.execStatement(n.ThenBranch)
	}
	if n.ElseBranch != nil {
		return e.execStatement(n.ElseBranch)
	}
	return NULL
}

// execWhileStatement runs the loop until the condition turns falsey.
// A break signal from the body ends this loop and is consumed here, so
// it never escapes to an outer loop. Return signals and errors keep
// propagating.
func (e *Evaluator) execWhileStatement(n *ast.WhileStatementNode) objects.Object {
	for {
		condition := e.evalExpression(n.Condition)
		if IsError(condition) {
			return condition
		}
		if !isTruthy(condition) {
			break
		}

		result := e.execStatement(n.Body)
		if IsError(result) {
			return result
		}
		if _, isReturn := result.(*objects.ReturnValue); isReturn {
			return result
		}
		if _, isBreak := result.(*objects.BreakSignal); isBreak {
			break
		}
	}
	return NULL
}

// execReturnStatement evaluates the optional value and wraps it in a
// return signal; a bare return carries null.
func (e *Evaluator) execReturnStatement(n *ast.ReturnStatementNode) objects.Object {
	var value objects.Object = NULL
	if n.Value != nil {
		value = e.evalExpression(n.Value)
		if IsError(value) {
			return value
		}
	}
	return &objects.ReturnValue{Value: value}
}

// execFunctionStatement creates a function object capturing the current
// scope and binds it under its name. Binding before anything else lets
// the function call itself recursively.
func (e *Evaluator) execFunctionStatement(n *ast.FunctionStatementNode) objects.Object {
	fn := &function.Function{
		Name: n.Name.Lexeme,
		Decl: n.Function,
		Scp:  e.Scp,
	}
	e.Scp.Bind(n.Name.Lexeme, fn)
	return NULL
}
