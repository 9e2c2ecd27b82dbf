/*
File    : go-lyra/ast/print_visitor.go
Author  : Lyra Maintainers
*/
package ast

import (
	"bytes"
	"fmt"
)

const INDENT_SIZE = 4 // Number of spaces per indentation level

// PrintingVisitor is a visitor that prints AST nodes in a formatted tree
// structure. The driver uses it for the --debug AST dump; output goes to
// the accumulated buffer, never directly to stdout.
type PrintingVisitor struct {
	Indent int          // Current indentation level for formatting
	Buf    bytes.Buffer // Buffer to accumulate the formatted output
}

// PrintProgram renders a whole statement list and returns the result.
func (p *PrintingVisitor) PrintProgram(statements []StatementNode) string {
	for _, stmt := range statements {
		stmt.Accept(p)
	}
	return p.Buf.String()
}

// indent writes the current indentation level to the buffer
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// line writes one labeled node line at the current indentation
func (p *PrintingVisitor) line(label string, node Node) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting %12s Node [%s]\n", label, node.Literal()))
}

// nested runs fn one indentation level deeper
func (p *PrintingVisitor) nested(fn func()) {
	p.Indent += INDENT_SIZE
	fn()
	p.Indent -= INDENT_SIZE
}

// VisitLiteralExpressionNode prints a literal value node
func (p *PrintingVisitor) VisitLiteralExpressionNode(node *LiteralExpressionNode) {
	p.line("Literal", node)
}

// VisitVariableExpressionNode prints a variable reference node
func (p *PrintingVisitor) VisitVariableExpressionNode(node *VariableExpressionNode) {
	p.line("Variable", node)
}

// VisitGroupingExpressionNode prints a grouping node and its inner expression
func (p *PrintingVisitor) VisitGroupingExpressionNode(node *GroupingExpressionNode) {
	p.line("Grouping", node)
	p.nested(func() {
		node.Expr.Accept(p)
	})
}

// VisitUnaryExpressionNode prints a unary node and its operand
func (p *PrintingVisitor) VisitUnaryExpressionNode(node *UnaryExpressionNode) {
	p.line("Unary", node)
	p.nested(func() {
		node.Right.Accept(p)
	})
}

// VisitBinaryExpressionNode prints a binary node and its operands
func (p *PrintingVisitor) VisitBinaryExpressionNode(node *BinaryExpressionNode) {
	p.line("Binary", node)
	p.nested(func() {
		node.Left.Accept(p)
		node.Right.Accept(p)
	})
}

// VisitLogicalExpressionNode prints a short-circuit node and its operands
func (p *PrintingVisitor) VisitLogicalExpressionNode(node *LogicalExpressionNode) {
	p.line("Logical", node)
	p.nested(func() {
		node.Left.Accept(p)
		node.Right.Accept(p)
	})
}

// VisitAssignmentExpressionNode prints an assignment node and its value
func (p *PrintingVisitor) VisitAssignmentExpressionNode(node *AssignmentExpressionNode) {
	p.line("Assignment", node)
	p.nested(func() {
		node.Value.Accept(p)
	})
}

// VisitCallExpressionNode prints a call node, its callee and arguments
func (p *PrintingVisitor) VisitCallExpressionNode(node *CallExpressionNode) {
	p.line("Call", node)
	p.nested(func() {
		node.Callee.Accept(p)
		for _, arg := range node.Arguments {
			arg.Accept(p)
		}
	})
}

// VisitFunctionLiteralNode prints an anonymous function and its body
func (p *PrintingVisitor) VisitFunctionLiteralNode(node *FunctionLiteralNode) {
	p.line("Function", node)
	if node.SingleLine {
		return
	}
	p.nested(func() {
		for _, stmt := range node.Body {
			stmt.Accept(p)
		}
	})
}

// VisitGetExpressionNode prints a property read and its receiver
func (p *PrintingVisitor) VisitGetExpressionNode(node *GetExpressionNode) {
	p.line("Get", node)
	p.nested(func() {
		node.Object.Accept(p)
	})
}

// VisitSetExpressionNode prints a property write, its receiver and value
func (p *PrintingVisitor) VisitSetExpressionNode(node *SetExpressionNode) {
	p.line("Set", node)
	p.nested(func() {
		node.Object.Accept(p)
		node.Value.Accept(p)
	})
}

// VisitThisExpressionNode prints a 'this' node
func (p *PrintingVisitor) VisitThisExpressionNode(node *ThisExpressionNode) {
	p.line("This", node)
}

// VisitExpressionStatementNode prints an expression statement
func (p *PrintingVisitor) VisitExpressionStatementNode(node *ExpressionStatementNode) {
	p.line("ExprStmt", node)
	p.nested(func() {
		node.Expr.Accept(p)
	})
}

// VisitPrintStatementNode prints a print statement
func (p *PrintingVisitor) VisitPrintStatementNode(node *PrintStatementNode) {
	p.line("Print", node)
	p.nested(func() {
		node.Expr.Accept(p)
	})
}

// VisitVarStatementNode prints a variable declaration
func (p *PrintingVisitor) VisitVarStatementNode(node *VarStatementNode) {
	p.line("Var", node)
	if node.Initializer != nil {
		p.nested(func() {
			node.Initializer.Accept(p)
		})
	}
}

// VisitBlockStatementNode prints a block and its statements
func (p *PrintingVisitor) VisitBlockStatementNode(node *BlockStatementNode) {
	p.line("Block", node)
	p.nested(func() {
		for _, stmt := range node.Statements {
			stmt.Accept(p)
		}
	})
}

// VisitIfStatementNode prints a conditional and its branches
func (p *PrintingVisitor) VisitIfStatementNode(node *IfStatementNode) {
	p.line("If", node)
	p.nested(func() {
		node.Condition.Accept(p)
		node.ThenBranch.Accept(p)
		if node.ElseBranch != nil {
			node.ElseBranch.Accept(p)
		}
	})
}

// VisitWhileStatementNode prints a loop, its condition and body
func (p *PrintingVisitor) VisitWhileStatementNode(node *WhileStatementNode) {
	p.line("While", node)
	p.nested(func() {
		node.Condition.Accept(p)
		node.Body.Accept(p)
	})
}

// VisitBreakStatementNode prints a break statement
func (p *PrintingVisitor) VisitBreakStatementNode(node *BreakStatementNode) {
	p.line("Break", node)
}

// VisitFunctionStatementNode prints a named function and its body
func (p *PrintingVisitor) VisitFunctionStatementNode(node *FunctionStatementNode) {
	p.line("FunDecl", node)
	p.nested(func() {
		node.Function.Accept(p)
	})
}

// VisitReturnStatementNode prints a return statement
func (p *PrintingVisitor) VisitReturnStatementNode(node *ReturnStatementNode) {
	p.line("Return", node)
	if node.Value != nil {
		p.nested(func() {
			node.Value.Accept(p)
		})
	}
}

// VisitClassStatementNode prints a class declaration and its methods
func (p *PrintingVisitor) VisitClassStatementNode(node *ClassStatementNode) {
	p.line("Class", node)
	p.nested(func() {
		for _, method := range node.Methods {
			method.Accept(p)
		}
	})
}
