/*
File    : go-lyra/eval/eval_classes.go
Author  : Lyra Maintainers
*/
package eval

import (
	"github.com/lyra-lang/go-lyra/ast"
	"github.com/lyra-lang/go-lyra/function"
	"github.com/lyra-lang/go-lyra/objects"
	"github.com/lyra-lang/go-lyra/token"
)

// execClassStatement evaluates a class declaration: the optional
// superclass is looked up by name, each method becomes a closure over
// the declaring scope, and the finished class binds under its name in
// the current scope.
func (e *Evaluator) execClassStatement(n *ast.ClassStatementNode) objects.Object {
	var superclass *objects.Class
	if n.Superclass != nil {
		value, found := e.Scp.LookUp(n.Superclass.Lexeme)
		if !found {
			return e.runtimeError(*n.Superclass, "%s is undefined.", n.Superclass.Lexeme)
		}
		sc, ok := value.(*objects.Class)
		if !ok {
			return e.runtimeError(*n.Superclass, "Superclass must be a class.")
		}
		superclass = sc
	}

	class := objects.NewClass(n.Name.Lexeme, superclass)
	for _, method := range n.Methods {
		class.Methods[method.Name.Lexeme] = &function.Function{
			Name:          method.Name.Lexeme,
			Decl:          method.Function,
			Scp:           e.Scp,
			IsInitializer: method.Name.Lexeme == "init",
		}
	}

	e.Scp.Bind(n.Name.Lexeme, class)
	return NULL
}

// constructInstance implements calling a class: a fresh instance is
// created and, when the class (or an ancestor) defines init, the bound
// initializer runs with the constructor arguments. The instance is the
// call's value either way.
func (e *Evaluator) constructInstance(class *objects.Class, args []objects.Object) objects.Object {
	instance := objects.NewInstance(class)

	if ctor, found := class.GetConstructor(); found {
		init, ok := ctor.(*function.Function)
		if ok {
			result := e.invokeFunction(init.BindTo(instance), args)
			if IsError(result) {
				return result
			}
		}
	}

	return instance
}

// evalGetExpression reads a property. The receiver must be an instance;
// set properties win over methods, and a method access produces the
// method bound to the instance so a detached reference keeps its 'this'.
func (e *Evaluator) evalGetExpression(n *ast.GetExpressionNode) objects.Object {
	receiver := e.evalExpression(n.Object)
	if IsError(receiver) {
		return receiver
	}

	instance, ok := receiver.(*objects.Instance)
	if !ok {
		return e.runtimeError(n.Name, "Only instances have properties.")
	}

	if value, found := instance.GetField(n.Name.Lexeme); found {
		return value
	}
	if method, found := instance.Class.TryGetMethod(n.Name.Lexeme); found {
		if fn, isFn := method.(*function.Function); isFn {
			return fn.BindTo(instance)
		}
	}
	return e.runtimeError(n.Name, "Property '%s' is undefined.", n.Name.Lexeme)
}

// evalSetExpression writes a property, creating it when absent, and
// yields the assigned value. Only plain '=' is defined on properties;
// the compound forms the parser let through are rejected here.
func (e *Evaluator) evalSetExpression(n *ast.SetExpressionNode) objects.Object {
	receiver := e.evalExpression(n.Object)
	if IsError(receiver) {
		return receiver
	}

	instance, ok := receiver.(*objects.Instance)
	if !ok {
		return e.runtimeError(n.Name, "Only instances have properties.")
	}

	if n.Operator.Type != token.ASSIGN_OP {
		return e.runtimeError(n.Operator, "Invalid assignment target.")
	}

	value := e.evalExpression(n.Value)
	if IsError(value) {
		return value
	}
	instance.SetField(n.Name.Lexeme, value)
	return value
}
