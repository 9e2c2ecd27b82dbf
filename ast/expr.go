/*
File    : go-lyra/ast/expr.go
Author  : Lyra Maintainers
*/
package ast

import (
	"fmt"
	"strings"

	"github.com/lyra-lang/go-lyra/token"
)

// LiteralExpressionNode: represents a literal value in the source code
// Example: 42, 3.14, "hello", true, false, null
type LiteralExpressionNode struct {
	ID    int         // Stable node id
	Token token.Token // The literal token
	Value interface{} // Parsed value: nil, bool, float64 or string
}

// LiteralExpressionNode.Literal(): string representation of the node
func (node *LiteralExpressionNode) Literal() string {
	if node.Value == nil {
		return "null"
	}
	if s, ok := node.Value.(string); ok {
		return "\"" + s + "\""
	}
	return fmt.Sprintf("%v", node.Value)
}

// LiteralExpressionNode.Accept(): accepts a visitor (eg PrintVisitor)
func (node *LiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitLiteralExpressionNode(node)
}

// LiteralExpressionNode.Expression(): marker
func (node *LiteralExpressionNode) Expression() {}

// LiteralExpressionNode.NodeID(): stable id
func (node *LiteralExpressionNode) NodeID() int { return node.ID }

// VariableExpressionNode: represents a variable reference
// Example: x, counter, makeAdder
type VariableExpressionNode struct {
	ID   int         // Stable node id (keys the resolution map)
	Name token.Token // The identifier token
}

// VariableExpressionNode.Literal(): string representation of the node
func (node *VariableExpressionNode) Literal() string {
	return node.Name.Lexeme
}

// VariableExpressionNode.Accept(): accepts a visitor
func (node *VariableExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitVariableExpressionNode(node)
}

// VariableExpressionNode.Expression(): marker
func (node *VariableExpressionNode) Expression() {}

// VariableExpressionNode.NodeID(): stable id
func (node *VariableExpressionNode) NodeID() int { return node.ID }

// GroupingExpressionNode: represents an expression wrapped in parentheses
// Example: (2 + 3) * 4
type GroupingExpressionNode struct {
	ID   int            // Stable node id
	Expr ExpressionNode // The inner expression
}

// GroupingExpressionNode.Literal(): string representation of the node
func (node *GroupingExpressionNode) Literal() string {
	return "(" + node.Expr.Literal() + ")"
}

// GroupingExpressionNode.Accept(): accepts a visitor
func (node *GroupingExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitGroupingExpressionNode(node)
}

// GroupingExpressionNode.Expression(): marker
func (node *GroupingExpressionNode) Expression() {}

// GroupingExpressionNode.NodeID(): stable id
func (node *GroupingExpressionNode) NodeID() int { return node.ID }

// UnaryExpressionNode: represents a unary operation with one operand
// Example: -x, !flag
type UnaryExpressionNode struct {
	ID       int            // Stable node id
	Operator token.Token    // The unary operator token (- or !)
	Right    ExpressionNode // The operand expression
}

// UnaryExpressionNode.Literal(): string representation of the node
func (node *UnaryExpressionNode) Literal() string {
	return node.Operator.Lexeme + node.Right.Literal()
}

// UnaryExpressionNode.Accept(): accepts a visitor
func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(node)
}

// UnaryExpressionNode.Expression(): marker
func (node *UnaryExpressionNode) Expression() {}

// UnaryExpressionNode.NodeID(): stable id
func (node *UnaryExpressionNode) NodeID() int { return node.ID }

// BinaryExpressionNode: represents a binary operation with two operands
// Example: 2 + 3, a * b, x & mask, p == q
type BinaryExpressionNode struct {
	ID       int            // Stable node id
	Operator token.Token    // The binary operator token
	Left     ExpressionNode // Left operand expression
	Right    ExpressionNode // Right operand expression
}

// BinaryExpressionNode.Literal(): string representation of the node
func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operator.Lexeme + " " + node.Right.Literal()
}

// BinaryExpressionNode.Accept(): accepts a visitor
func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(node)
}

// BinaryExpressionNode.Expression(): marker
func (node *BinaryExpressionNode) Expression() {}

// BinaryExpressionNode.NodeID(): stable id
func (node *BinaryExpressionNode) NodeID() int { return node.ID }

// LogicalExpressionNode: represents a short-circuit boolean operation
// Example: a and b, a || b
type LogicalExpressionNode struct {
	ID       int            // Stable node id
	Operator token.Token    // The logical operator token (and/or/&&/||)
	Left     ExpressionNode // Left operand expression
	Right    ExpressionNode // Right operand, evaluated only when needed
}

// LogicalExpressionNode.Literal(): string representation of the node
func (node *LogicalExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operator.Lexeme + " " + node.Right.Literal()
}

// LogicalExpressionNode.Accept(): accepts a visitor
func (node *LogicalExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitLogicalExpressionNode(node)
}

// LogicalExpressionNode.Expression(): marker
func (node *LogicalExpressionNode) Expression() {}

// LogicalExpressionNode.NodeID(): stable id
func (node *LogicalExpressionNode) NodeID() int { return node.ID }

// AssignmentExpressionNode: represents assignment to a variable
// Example: x = 10, count += 1, total -= n
type AssignmentExpressionNode struct {
	ID       int            // Stable node id (keys the resolution map)
	Name     token.Token    // The target variable name
	Operator token.Token    // The assignment operator token (=, += or -=)
	Value    ExpressionNode // The expression being assigned
}

// AssignmentExpressionNode.Literal(): string representation of the node
func (node *AssignmentExpressionNode) Literal() string {
	return node.Name.Lexeme + " " + node.Operator.Lexeme + " " + node.Value.Literal()
}

// AssignmentExpressionNode.Accept(): accepts a visitor
func (node *AssignmentExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignmentExpressionNode(node)
}

// AssignmentExpressionNode.Expression(): marker
func (node *AssignmentExpressionNode) Expression() {}

// AssignmentExpressionNode.NodeID(): stable id
func (node *AssignmentExpressionNode) NodeID() int { return node.ID }

// CallExpressionNode: represents a call expression
// Example: f(a, b), counter(), Box(42)
type CallExpressionNode struct {
	ID        int              // Stable node id
	Callee    ExpressionNode   // The expression being called
	Arguments []ExpressionNode // Argument expressions, evaluated left to right
	Paren     token.Token      // Closing ')' token, anchors runtime call errors
}

// CallExpressionNode.Literal(): string representation of the node
func (node *CallExpressionNode) Literal() string {
	args := make([]string, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.Literal())
	}
	return node.Callee.Literal() + "(" + strings.Join(args, ", ") + ")"
}

// CallExpressionNode.Accept(): accepts a visitor
func (node *CallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitCallExpressionNode(node)
}

// CallExpressionNode.Expression(): marker
func (node *CallExpressionNode) Expression() {}

// CallExpressionNode.NodeID(): stable id
func (node *CallExpressionNode) NodeID() int { return node.ID }

// FunctionLiteralNode: represents a function body with its parameters.
// Used directly for anonymous function expressions and embedded in
// FunctionStatementNode for named functions and methods.
// SingleLine records whether the body's opening '{' and closing '}' sit
// on the same source line; the tree printer uses it to render compact
// functions inline.
type FunctionLiteralNode struct {
	ID         int             // Stable node id
	Params     []token.Token   // Parameter name tokens
	Body       []StatementNode // Body statements
	SingleLine bool            // Body braces on one source line
}

// FunctionLiteralNode.Literal(): string representation of the node
func (node *FunctionLiteralNode) Literal() string {
	params := make([]string, 0, len(node.Params))
	for _, p := range node.Params {
		params = append(params, p.Lexeme)
	}
	body := ""
	for _, stmt := range node.Body {
		body += stmt.Literal()
	}
	return "fun (" + strings.Join(params, ", ") + ") {" + body + "}"
}

// FunctionLiteralNode.Accept(): accepts a visitor
func (node *FunctionLiteralNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionLiteralNode(node)
}

// FunctionLiteralNode.Expression(): marker
func (node *FunctionLiteralNode) Expression() {}

// FunctionLiteralNode.NodeID(): stable id
func (node *FunctionLiteralNode) NodeID() int { return node.ID }

// GetExpressionNode: represents a property read on an instance
// Example: box.value, point.x
type GetExpressionNode struct {
	ID     int            // Stable node id
	Object ExpressionNode // The receiver expression
	Name   token.Token    // The property name token
}

// GetExpressionNode.Literal(): string representation of the node
func (node *GetExpressionNode) Literal() string {
	return node.Object.Literal() + "." + node.Name.Lexeme
}

// GetExpressionNode.Accept(): accepts a visitor
func (node *GetExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitGetExpressionNode(node)
}

// GetExpressionNode.Expression(): marker
func (node *GetExpressionNode) Expression() {}

// GetExpressionNode.NodeID(): stable id
func (node *GetExpressionNode) NodeID() int { return node.ID }

// SetExpressionNode: represents a property write on an instance.
// The operator token is preserved so the evaluator can reject compound
// forms (+=, -=) on properties, which the language does not define.
// Example: box.value = 10
type SetExpressionNode struct {
	ID       int            // Stable node id
	Object   ExpressionNode // The receiver expression
	Name     token.Token    // The property name token
	Operator token.Token    // The assignment operator token
	Value    ExpressionNode // The expression being stored
}

// SetExpressionNode.Literal(): string representation of the node
func (node *SetExpressionNode) Literal() string {
	return node.Object.Literal() + "." + node.Name.Lexeme + " " + node.Operator.Lexeme + " " + node.Value.Literal()
}

// SetExpressionNode.Accept(): accepts a visitor
func (node *SetExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitSetExpressionNode(node)
}

// SetExpressionNode.Expression(): marker
func (node *SetExpressionNode) Expression() {}

// SetExpressionNode.NodeID(): stable id
func (node *SetExpressionNode) NodeID() int { return node.ID }

// ThisExpressionNode: represents 'this' inside a method body
type ThisExpressionNode struct {
	ID      int         // Stable node id (keys the resolution map)
	Keyword token.Token // The 'this' keyword token
}

// ThisExpressionNode.Literal(): string representation of the node
func (node *ThisExpressionNode) Literal() string {
	return node.Keyword.Lexeme
}

// ThisExpressionNode.Accept(): accepts a visitor
func (node *ThisExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitThisExpressionNode(node)
}

// ThisExpressionNode.Expression(): marker
func (node *ThisExpressionNode) Expression() {}

// ThisExpressionNode.NodeID(): stable id
func (node *ThisExpressionNode) NodeID() int { return node.ID }
