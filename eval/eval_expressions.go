/*
File    : go-lyra/eval/eval_expressions.go
Author  : Lyra Maintainers
*/
package eval

import (
	"github.com/lyra-lang/go-lyra/ast"
	"github.com/lyra-lang/go-lyra/function"
	"github.com/lyra-lang/go-lyra/objects"
	"github.com/lyra-lang/go-lyra/scope"
	"github.com/lyra-lang/go-lyra/std"
	"github.com/lyra-lang/go-lyra/token"
)

// evalExpression evaluates one expression and returns its value, or a
// runtime error value that the caller must propagate.
func (e *Evaluator) evalExpression(expr ast.ExpressionNode) objects.Object {
	switch n := expr.(type) {

	case *ast.LiteralExpressionNode:
		return literalObject(n.Value)

	case *ast.VariableExpressionNode:
		return e.lookupVariable(n.ID, n.Name)

	case *ast.GroupingExpressionNode:
		return e.evalExpression(n.Expr)

	case *ast.UnaryExpressionNode:
		return e.evalUnaryExpression(n)

	case *ast.BinaryExpressionNode:
		return e.evalBinaryExpression(n)

	case *ast.LogicalExpressionNode:
		return e.evalLogicalExpression(n)

	case *ast.AssignmentExpressionNode:
		return e.evalAssignmentExpression(n)

	case *ast.CallExpressionNode:
		return e.evalCallExpression(n)

	case *ast.FunctionLiteralNode:
		// An anonymous function literal closes over the current scope.
		return &function.Function{
			Decl: n,
			Scp:  e.Scp,
		}

	case *ast.GetExpressionNode:
		return e.evalGetExpression(n)

	case *ast.SetExpressionNode:
		return e.evalSetExpression(n)

	case *ast.ThisExpressionNode:
		return e.lookupVariable(n.ID, n.Keyword)
	}

	return NULL
}

// lookupVariable reads a name. Resolved names fetch from the scope the
// resolver pointed at; unresolved names are globals, looked up by name.
func (e *Evaluator) lookupVariable(id int, name token.Token) objects.Object {
	if distance, resolved := e.Locals[id]; resolved {
		if obj, ok := e.Scp.GetAt(distance, name.Lexeme); ok {
			return obj
		}
	} else if obj, ok := e.Globals.LookUp(name.Lexeme); ok {
		return obj
	}
	return e.runtimeError(name, "%s is undefined.", name.Lexeme)
}

// evalUnaryExpression evaluates '!' (truthiness negation, any operand)
// and '-' (numeric negation, numbers only).
func (e *Evaluator) evalUnaryExpression(n *ast.UnaryExpressionNode) objects.Object {
	right := e.evalExpression(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operator.Type {
	case token.NOT_OP:
		return boolObject(!isTruthy(right))
	case token.MINUS_OP:
		num, ok := right.(*objects.Number)
		if !ok {
			return e.runtimeError(n.Operator, "Operand must be a number.")
		}
		return &objects.Number{Value: -num.Value}
	}

	return NULL
}

// evalBinaryExpression evaluates arithmetic, bitwise, relational and
// equality operators. Both operands evaluate before any type checking,
// left first.
func (e *Evaluator) evalBinaryExpression(n *ast.BinaryExpressionNode) objects.Object {
	left := e.evalExpression(n.Left)
	if IsError(left) {
		return left
	}
	right := e.evalExpression(n.Right)
	if IsError(right) {
		return right
	}

	switch n.Operator.Type {

	case token.EQ_OP:
		return boolObject(isEqual(left, right))
	case token.NE_OP:
		return boolObject(!isEqual(left, right))

	case token.PLUS_OP:
		return e.evalAddition(n.Operator, left, right)

	case token.MINUS_OP, token.MUL_OP, token.DIV_OP,
		token.BIT_AND_OP, token.BIT_OR_OP, token.BIT_XOR_OP:
		return e.evalNumericOperator(n.Operator, left, right)

	case token.LT_OP, token.LE_OP, token.GT_OP, token.GE_OP:
		return e.evalRelationalOperator(n.Operator, left, right)
	}

	return NULL
}

// evalAddition implements '+': numeric addition when both operands are
// numbers, string concatenation when the left operand is a string (the
// right operand is stringified), and a runtime error otherwise.
func (e *Evaluator) evalAddition(op token.Token, left, right objects.Object) objects.Object {
	if l, ok := left.(*objects.Number); ok {
		if r, ok := right.(*objects.Number); ok {
			return &objects.Number{Value: l.Value + r.Value}
		}
	}
	if l, ok := left.(*objects.String); ok {
		return &objects.String{Value: l.Value + right.ToString()}
	}
	return e.runtimeError(op, "Invalid operand(s) for '+'.")
}

// evalNumericOperator implements the operators that demand two numbers:
// '-', '*', '/' arithmetically, and '&', '|', '^' on the operands
// truncated to 32-bit signed integers with the result widened back to a
// number.
func (e *Evaluator) evalNumericOperator(op token.Token, left, right objects.Object) objects.Object {
	l, lok := left.(*objects.Number)
	r, rok := right.(*objects.Number)
	if !lok || !rok {
		return e.runtimeError(op, "Operands must be a numbers.")
	}

	switch op.Type {
	case token.MINUS_OP:
		return &objects.Number{Value: l.Value - r.Value}
	case token.MUL_OP:
		return &objects.Number{Value: l.Value * r.Value}
	case token.DIV_OP:
		return &objects.Number{Value: l.Value / r.Value}
	case token.BIT_AND_OP:
		return &objects.Number{Value: float64(toInt32(l.Value) & toInt32(r.Value))}
	case token.BIT_OR_OP:
		return &objects.Number{Value: float64(toInt32(l.Value) | toInt32(r.Value))}
	case token.BIT_XOR_OP:
		return &objects.Number{Value: float64(toInt32(l.Value) ^ toInt32(r.Value))}
	}

	return NULL
}

// evalRelationalOperator implements '<', '<=', '>', '>='. Operands must
// both be numbers or both be strings; strings compare lexicographically.
func (e *Evaluator) evalRelationalOperator(op token.Token, left, right objects.Object) objects.Object {
	if l, ok := left.(*objects.Number); ok {
		if r, ok := right.(*objects.Number); ok {
			switch op.Type {
			case token.LT_OP:
				return boolObject(l.Value < r.Value)
			case token.LE_OP:
				return boolObject(l.Value <= r.Value)
			case token.GT_OP:
				return boolObject(l.Value > r.Value)
			case token.GE_OP:
				return boolObject(l.Value >= r.Value)
			}
		}
	}
	if l, ok := left.(*objects.String); ok {
		if r, ok := right.(*objects.String); ok {
			switch op.Type {
			case token.LT_OP:
				return boolObject(l.Value < r.Value)
			case token.LE_OP:
				return boolObject(l.Value <= r.Value)
			case token.GT_OP:
				return boolObject(l.Value > r.Value)
			case token.GE_OP:
				return boolObject(l.Value >= r.Value)
			}
		}
	}
	return e.runtimeError(op, "Both operands must be comparable to each other.")
}

// evalLogicalExpression implements short-circuit 'and'/'or'. The result
// is one of the operand values, not a coerced boolean: 'a or b' yields
// a when a is truthy, otherwise b; 'a and b' yields a when a is falsey,
// otherwise b. The right side only evaluates when needed.
func (e *Evaluator) evalLogicalExpression(n *ast.LogicalExpressionNode) objects.Object {
	left := e.evalExpression(n.Left)
	if IsError(left) {
		return left
	}

	isOr := n.Operator.Type == token.OR_OP || n.Operator.Type == token.OR_KEY
	if isOr {
		if isTruthy(left) {
			return left
		}
	} else {
		if !isTruthy(left) {
			return left
		}
	}
	return e.evalExpression(n.Right)
}

// evalAssignmentExpression implements '=', '+=' and '-=' on variables.
// The right side evaluates first; compound forms then read the current
// value (through the resolved distance), require both sides numeric and
// fold. The write lands at the resolved distance, or in the global
// scope for unresolved names; assigning an undefined global is a
// runtime error.
func (e *Evaluator) evalAssignmentExpression(n *ast.AssignmentExpressionNode) objects.Object {
	value := e.evalExpression(n.Value)
	if IsError(value) {
		return value
	}

	if n.Operator.Type != token.ASSIGN_OP {
		current := e.lookupVariable(n.ID, n.Name)
		if IsError(current) {
			return current
		}
		cur, curOK := current.(*objects.Number)
		delta, deltaOK := value.(*objects.Number)
		if !curOK || !deltaOK {
			return e.runtimeError(n.Operator, "Operands must be a numbers.")
		}
		if n.Operator.Type == token.PLUS_ASSIGN {
			value = &objects.Number{Value: cur.Value + delta.Value}
		} else {
			value = &objects.Number{Value: cur.Value - delta.Value}
		}
	}

	if distance, resolved := e.Locals[n.ID]; resolved {
		e.Scp.AssignAt(distance, n.Name.Lexeme, value)
		return value
	}
	if e.Globals.Assign(n.Name.Lexeme, value) {
		return value
	}
	return e.runtimeError(n.Name, "%s is undefined.", n.Name.Lexeme)
}

// evalCallExpression evaluates the callee and the arguments left to
// right, checks arity, and dispatches on what is being called: a user
// function, a native, or a class (construction).
func (e *Evaluator) evalCallExpression(n *ast.CallExpressionNode) objects.Object {
	callee := e.evalExpression(n.Callee)
	if IsError(callee) {
		return callee
	}

	args := make([]objects.Object, 0, len(n.Arguments))
	for _, argExpr := range n.Arguments {
		arg := e.evalExpression(argExpr)
		if IsError(arg) {
			return arg
		}
		args = append(args, arg)
	}

	switch fn := callee.(type) {
	case *function.Function:
		if err := e.checkArity(n.Paren, fn.ArityCount(), len(args)); err != nil {
			return err
		}
		return e.invokeFunction(fn, args)
	case *std.Builtin:
		if err := e.checkArity(n.Paren, fn.ArityCount(), len(args)); err != nil {
			return err
		}
		return fn.Callback(e, e.Writer, args...)
	case *objects.Class:
		if err := e.checkArity(n.Paren, fn.ArityCount(), len(args)); err != nil {
			return err
		}
		return e.constructInstance(fn, args)
	}

	return e.runtimeError(n.Paren, "Can only call functions and classes.")
}

// checkArity verifies the argument count against the callable's
// declared arity, returning a runtime error value on mismatch.
func (e *Evaluator) checkArity(paren token.Token, arity, got int) objects.Object {
	if arity != got {
		return e.runtimeError(paren, "Expected %d arguments but got %d.", arity, got)
	}
	return nil
}

// invokeFunction runs a user function: a fresh scope hanging off the
// function's capture scope binds the parameters, the body executes in
// it, and a return signal is caught and unwrapped here. A body that
// falls off the end yields null. Initializer calls always yield the
// bound instance, whatever the body returned.
func (e *Evaluator) invokeFunction(fn *function.Function, args []objects.Object) objects.Object {
	frame := scope.NewScope(fn.Scp)
	for i, param := range fn.Decl.Params {
		frame.Bind(param.Lexeme, args[i])
	}

	result := e.execBlock(fn.Decl.Body, frame)
	if IsError(result) {
		return result
	}

	if fn.IsInitializer {
		if this, ok := fn.Scp.GetAt(0, "this"); ok {
			return this
		}
	}
	if ret, isReturn := result.(*objects.ReturnValue); isReturn {
		return ret.Value
	}
	return NULL
}
