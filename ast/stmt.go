/*
File    : go-lyra/ast/stmt.go
Author  : Lyra Maintainers
*/
package ast

import (
	"github.com/lyra-lang/go-lyra/token"
)

// ExpressionStatementNode: an expression evaluated for its side effects
// Example: counter(); x = 10;
type ExpressionStatementNode struct {
	Expr ExpressionNode // The wrapped expression
}

// ExpressionStatementNode.Literal(): string representation of the node
func (node *ExpressionStatementNode) Literal() string {
	return node.Expr.Literal() + ";"
}

// ExpressionStatementNode.Accept(): accepts a visitor
func (node *ExpressionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExpressionStatementNode(node)
}

// ExpressionStatementNode.Statement(): marker
func (node *ExpressionStatementNode) Statement() {}

// PrintStatementNode: prints the stringified value of an expression
// Example: print 1 + 2;
type PrintStatementNode struct {
	Keyword token.Token    // The 'print' keyword token
	Expr    ExpressionNode // The expression to print
}

// PrintStatementNode.Literal(): string representation of the node
func (node *PrintStatementNode) Literal() string {
	return "print " + node.Expr.Literal() + ";"
}

// PrintStatementNode.Accept(): accepts a visitor
func (node *PrintStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitPrintStatementNode(node)
}

// PrintStatementNode.Statement(): marker
func (node *PrintStatementNode) Statement() {}

// VarStatementNode: declares a variable with an optional initializer
// Example: var x = 10; var y;
type VarStatementNode struct {
	Name        token.Token    // The variable name token
	Initializer ExpressionNode // Optional initializer, nil when omitted
}

// VarStatementNode.Literal(): string representation of the node
func (node *VarStatementNode) Literal() string {
	if node.Initializer == nil {
		return "var " + node.Name.Lexeme + ";"
	}
	return "var " + node.Name.Lexeme + " = " + node.Initializer.Literal() + ";"
}

// VarStatementNode.Accept(): accepts a visitor
func (node *VarStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitVarStatementNode(node)
}

// VarStatementNode.Statement(): marker
func (node *VarStatementNode) Statement() {}

// BlockStatementNode: a brace-delimited statement list opening a scope
// Example: { var x = 1; print x; }
type BlockStatementNode struct {
	Statements []StatementNode // Statements in source order
}

// BlockStatementNode.Literal(): string representation of the node
func (node *BlockStatementNode) Literal() string {
	str := "{"
	for _, stmt := range node.Statements {
		str += stmt.Literal()
	}
	str += "}"
	return str
}

// BlockStatementNode.Accept(): accepts a visitor
func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(node)
}

// BlockStatementNode.Statement(): marker
func (node *BlockStatementNode) Statement() {}

// IfStatementNode: conditional execution with an optional else branch
// Example: if (x > 0) print x; else print -x;
type IfStatementNode struct {
	Condition  ExpressionNode // The condition expression
	ThenBranch StatementNode  // Executed when the condition is truthy
	ElseBranch StatementNode  // Optional, nil when omitted
}

// IfStatementNode.Literal(): string representation of the node
func (node *IfStatementNode) Literal() string {
	res := "if (" + node.Condition.Literal() + ") " + node.ThenBranch.Literal()
	if node.ElseBranch != nil {
		res += " else " + node.ElseBranch.Literal()
	}
	return res
}

// IfStatementNode.Accept(): accepts a visitor
func (node *IfStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfStatementNode(node)
}

// IfStatementNode.Statement(): marker
func (node *IfStatementNode) Statement() {}

// WhileStatementNode: condition-driven loop.
// For loops desugar into a while inside a block, so the evaluator only
// ever sees this node.
type WhileStatementNode struct {
	Condition ExpressionNode // Loop condition
	Body      StatementNode  // Loop body
}

// WhileStatementNode.Literal(): string representation of the node
func (node *WhileStatementNode) Literal() string {
	return "while (" + node.Condition.Literal() + ") " + node.Body.Literal()
}

// WhileStatementNode.Accept(): accepts a visitor
func (node *WhileStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitWhileStatementNode(node)
}

// WhileStatementNode.Statement(): marker
func (node *WhileStatementNode) Statement() {}

// BreakStatementNode: exits the innermost enclosing loop
type BreakStatementNode struct{}

// BreakStatementNode.Literal(): string representation of the node
func (node *BreakStatementNode) Literal() string {
	return "break;"
}

// BreakStatementNode.Accept(): accepts a visitor
func (node *BreakStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBreakStatementNode(node)
}

// BreakStatementNode.Statement(): marker
func (node *BreakStatementNode) Statement() {}

// FunctionStatementNode: a named function declaration or a class method
// Example: fun add(a, b) { return a + b; }
type FunctionStatementNode struct {
	Name     token.Token          // The function name token
	Function *FunctionLiteralNode // Parameters and body
}

// FunctionStatementNode.Literal(): string representation of the node
func (node *FunctionStatementNode) Literal() string {
	return "fun " + node.Name.Lexeme + node.Function.Literal()[len("fun "):]
}

// FunctionStatementNode.Accept(): accepts a visitor
func (node *FunctionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionStatementNode(node)
}

// FunctionStatementNode.Statement(): marker
func (node *FunctionStatementNode) Statement() {}

// ReturnStatementNode: returns from the enclosing function
// Example: return x + 5; return;
type ReturnStatementNode struct {
	Keyword token.Token    // The 'return' keyword token
	Value   ExpressionNode // Optional value, nil when omitted
}

// ReturnStatementNode.Literal(): string representation of the node
func (node *ReturnStatementNode) Literal() string {
	if node.Value == nil {
		return "return;"
	}
	return "return " + node.Value.Literal() + ";"
}

// ReturnStatementNode.Accept(): accepts a visitor
func (node *ReturnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitReturnStatementNode(node)
}

// ReturnStatementNode.Statement(): marker
func (node *ReturnStatementNode) Statement() {}

// ClassStatementNode: a class declaration with its method list.
// The superclass clause is optional; when present the superclass is
// looked up by name at declaration time.
// Example: class Box : Container { init(x) { this.x = x; } }
type ClassStatementNode struct {
	Name       token.Token              // The class name token
	Superclass *token.Token             // Optional superclass name token
	Methods    []*FunctionStatementNode // Methods in declaration order
}

// ClassStatementNode.Literal(): string representation of the node
func (node *ClassStatementNode) Literal() string {
	res := "class " + node.Name.Lexeme
	if node.Superclass != nil {
		res += " : " + node.Superclass.Lexeme
	}
	res += " {"
	for _, method := range node.Methods {
		res += method.Literal()
	}
	res += "}"
	return res
}

// ClassStatementNode.Accept(): accepts a visitor
func (node *ClassStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitClassStatementNode(node)
}

// ClassStatementNode.Statement(): marker
func (node *ClassStatementNode) Statement() {}
