/*
File    : go-lyra/ast/ast.go
Author  : Lyra Maintainers
*/

// Package ast defines the Abstract Syntax Tree node types for the Lyra
// language. Nodes come in two disjoint families, expressions and
// statements, both visitable through the NodeVisitor interface.
// Every expression node carries a stable integer ID stamped at
// construction; the resolver keys its distance side-table by that ID so
// that two syntactically identical nodes stay distinct.
package ast

import "sync/atomic"

// NodeVisitor implements the Visitor design pattern for traversing the AST.
// Each Visit method processes a specific node type, enabling operations
// like printing or transformation without changing the nodes themselves.
type NodeVisitor interface {
	// Expression visitors
	VisitLiteralExpressionNode(node *LiteralExpressionNode)       // Literals: 42, "s", true, null
	VisitVariableExpressionNode(node *VariableExpressionNode)     // Identifiers: x, myVar
	VisitGroupingExpressionNode(node *GroupingExpressionNode)     // Parenthesized expressions: (expr)
	VisitUnaryExpressionNode(node *UnaryExpressionNode)           // Unary operations: -, !
	VisitBinaryExpressionNode(node *BinaryExpressionNode)         // Binary operations: +, -, *, /, &, |, ^, ==, <, ...
	VisitLogicalExpressionNode(node *LogicalExpressionNode)       // Short-circuit operations: and, or
	VisitAssignmentExpressionNode(node *AssignmentExpressionNode) // Assignments: x = 10, x += 1
	VisitCallExpressionNode(node *CallExpressionNode)             // Calls: f(a, b)
	VisitFunctionLiteralNode(node *FunctionLiteralNode)           // Anonymous functions: fun (a) { ... }
	VisitGetExpressionNode(node *GetExpressionNode)               // Property reads: obj.field
	VisitSetExpressionNode(node *SetExpressionNode)               // Property writes: obj.field = v
	VisitThisExpressionNode(node *ThisExpressionNode)             // 'this' inside methods

	// Statement visitors
	VisitExpressionStatementNode(node *ExpressionStatementNode) // Expression statements: f();
	VisitPrintStatementNode(node *PrintStatementNode)           // Print statements: print expr;
	VisitVarStatementNode(node *VarStatementNode)               // Declarations: var x = 10;
	VisitBlockStatementNode(node *BlockStatementNode)           // Blocks: { stmt1; stmt2; }
	VisitIfStatementNode(node *IfStatementNode)                 // Conditionals: if (c) ... else ...
	VisitWhileStatementNode(node *WhileStatementNode)           // While loops: while (c) ...
	VisitBreakStatementNode(node *BreakStatementNode)           // break;
	VisitFunctionStatementNode(node *FunctionStatementNode)     // Named functions: fun f(a) { ... }
	VisitReturnStatementNode(node *ReturnStatementNode)         // return expr;
	VisitClassStatementNode(node *ClassStatementNode)           // Class declarations
}

// Node: base interface for all nodes of the AST
// Literal(): returns a source-ish string representation of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// ExpressionNode: base interface for all expression nodes
// NodeID(): returns the stable id stamped at construction
type ExpressionNode interface {
	Node
	Expression()
	NodeID() int
}

// StatementNode: base interface for all statement nodes
type StatementNode interface {
	Node
	Statement()
}

// nodeCounter backs NextNodeID. A process-wide counter keeps ids unique
// across parser instances, which matters in the REPL where every input
// line gets a fresh parser but shares one resolution map.
var nodeCounter int64

// NextNodeID returns the next unique expression node id.
func NextNodeID() int {
	return int(atomic.AddInt64(&nodeCounter, 1))
}
