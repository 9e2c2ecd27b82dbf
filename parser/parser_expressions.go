/*
File    : go-lyra/parser/parser_expressions.go
Author  : Lyra Maintainers
*/
package parser

import (
	"github.com/lyra-lang/go-lyra/ast"
	"github.com/lyra-lang/go-lyra/token"
)

// curPrecedence returns the binding power of the current token.
func (par *Parser) curPrecedence() int {
	if prec, ok := precedences[par.CurrToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// nextPrecedence returns the binding power of the lookahead token.
func (par *Parser) nextPrecedence() int {
	if prec, ok := precedences[par.NextToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// parseExpression is the Pratt core. It parses the prefix form at the
// current token and then folds in infix operators as long as their
// binding power exceeds the given one. On return the current token is
// the last token of the parsed expression.
func (par *Parser) parseExpression(precedence int) ast.ExpressionNode {
	unary := par.UnaryFuncs[par.CurrToken.Type]
	if unary == nil {
		par.errorAt(par.CurrToken, "Expected expression.")
	}
	left := unary()

	for par.NextToken.Type != token.SEMICOLON_DELIM && precedence < par.nextPrecedence() {
		binary := par.BinaryFuncs[par.NextToken.Type]
		if binary == nil {
			return left
		}
		par.advance()
		left = binary(left)
	}

	return left
}

// parseLiteralExpression parses true, false, null, number and string
// literals into a literal node carrying the parsed value.
func (par *Parser) parseLiteralExpression() ast.ExpressionNode {
	node := &ast.LiteralExpressionNode{
		ID:    ast.NextNodeID(),
		Token: par.CurrToken,
	}
	switch par.CurrToken.Type {
	case token.TRUE_KEY:
		node.Value = true
	case token.FALSE_KEY:
		node.Value = false
	case token.NULL_KEY:
		node.Value = nil
	default:
		// Number and string tokens carry their parsed literal value
		node.Value = par.CurrToken.Literal
	}
	return node
}

// parseIdentifierExpression parses a variable reference.
func (par *Parser) parseIdentifierExpression() ast.ExpressionNode {
	return &ast.VariableExpressionNode{
		ID:   ast.NextNodeID(),
		Name: par.CurrToken,
	}
}

// parseThisExpression parses the 'this' keyword.
func (par *Parser) parseThisExpression() ast.ExpressionNode {
	return &ast.ThisExpressionNode{
		ID:      ast.NextNodeID(),
		Keyword: par.CurrToken,
	}
}

// parseGroupedExpression parses a parenthesized expression.
// The '(' is the current token; it is consumed exactly once before the
// inner expression is parsed.
func (par *Parser) parseGroupedExpression() ast.ExpressionNode {
	par.advance() // move past '('
	expr := par.parseExpression(LOWEST)
	par.expectAdvance(token.RIGHT_PAREN, "Expected ')' after expression.")
	return &ast.GroupingExpressionNode{
		ID:   ast.NextNodeID(),
		Expr: expr,
	}
}

// parseUnaryExpression parses '!' and '-' prefix operators.
// Unary operators nest, so the operand is parsed at UNARY precedence.
func (par *Parser) parseUnaryExpression() ast.ExpressionNode {
	operator := par.CurrToken
	par.advance()
	right := par.parseExpression(UNARY)
	return &ast.UnaryExpressionNode{
		ID:       ast.NextNodeID(),
		Operator: operator,
		Right:    right,
	}
}

// parseBinaryExpression parses a left-associative infix operator.
// The operator is the current token; the right operand is parsed at the
// operator's own precedence, which is what makes the fold left-assoc.
func (par *Parser) parseBinaryExpression(left ast.ExpressionNode) ast.ExpressionNode {
	operator := par.CurrToken
	precedence := par.curPrecedence()
	par.advance()
	right := par.parseExpression(precedence)
	return &ast.BinaryExpressionNode{
		ID:       ast.NextNodeID(),
		Operator: operator,
		Left:     left,
		Right:    right,
	}
}

// parseLogicalExpression parses the short-circuit operators. The symbol
// forms (&&, ||) and keyword forms (and, or) produce the same node.
func (par *Parser) parseLogicalExpression(left ast.ExpressionNode) ast.ExpressionNode {
	operator := par.CurrToken
	precedence := par.curPrecedence()
	par.advance()
	right := par.parseExpression(precedence)
	return &ast.LogicalExpressionNode{
		ID:       ast.NextNodeID(),
		Operator: operator,
		Left:     left,
		Right:    right,
	}
}

// parseAssignmentExpression parses '=', '+=' and '-='. Assignment is
// right-associative, so the value is parsed from the lowest precedence.
// The already-parsed left side must be a plain variable (assignment) or
// a property access (set); anything else reports "Invalid assignment
// target." and parsing continues with the target expression, dropping
// the right side.
func (par *Parser) parseAssignmentExpression(left ast.ExpressionNode) ast.ExpressionNode {
	operator := par.CurrToken
	par.advance()
	value := par.parseExpression(LOWEST)

	switch target := left.(type) {
	case *ast.VariableExpressionNode:
		return &ast.AssignmentExpressionNode{
			ID:       ast.NextNodeID(),
			Name:     target.Name,
			Operator: operator,
			Value:    value,
		}
	case *ast.GetExpressionNode:
		// Compound operators on a property are parsed but rejected at
		// runtime; the operator token rides along for that check.
		return &ast.SetExpressionNode{
			ID:       ast.NextNodeID(),
			Object:   target.Object,
			Name:     target.Name,
			Operator: operator,
			Value:    value,
		}
	default:
		par.Sink.ReportToken(diagSyntax, operator, "Invalid assignment target.")
		return left
	}
}

// parseCallExpression parses an argument list for a call. The '(' is
// the current token; on return the current token is the closing ')',
// which the node records to anchor runtime call errors.
func (par *Parser) parseCallExpression(callee ast.ExpressionNode) ast.ExpressionNode {
	arguments := make([]ast.ExpressionNode, 0)

	if par.NextToken.Type == token.RIGHT_PAREN {
		par.advance()
	} else {
		for {
			par.advance()
			if len(arguments) == MAX_CALL_ARITY {
				// Static error, not a parse failure: keep consuming
				par.Sink.ReportToken(diagStatic, par.CurrToken,
					"Cannot have more than %d arguments.", MAX_CALL_ARITY)
			}
			arguments = append(arguments, par.parseExpression(LOWEST))
			if par.NextToken.Type != token.COMMA_DELIM {
				break
			}
			par.advance() // move onto ','
		}
		par.expectAdvance(token.RIGHT_PAREN, "Expected ')' after arguments.")
	}

	return &ast.CallExpressionNode{
		ID:        ast.NextNodeID(),
		Callee:    callee,
		Arguments: arguments,
		Paren:     par.CurrToken,
	}
}

// parseGetExpression parses property access. The '.' is the current
// token; the property name follows.
func (par *Parser) parseGetExpression(object ast.ExpressionNode) ast.ExpressionNode {
	par.expectAdvance(token.IDENTIFIER_ID, "Expected property name after '.'.")
	return &ast.GetExpressionNode{
		ID:     ast.NextNodeID(),
		Object: object,
		Name:   par.CurrToken,
	}
}

// parseFunctionLiteral parses an anonymous function expression:
// 'fun' '(' params ')' '{' body '}'. Named functions at statement level
// never reach here; parseDeclaration routes them first.
func (par *Parser) parseFunctionLiteral() ast.ExpressionNode {
	par.expectAdvance(token.LEFT_PAREN, "Expected '(' after 'fun'.")
	return par.parseFunctionRest()
}

// parseFunctionRest parses the common tail of every function form:
// parameters and body, starting with the current token on '('.
// On return the current token is the closing '}' of the body.
func (par *Parser) parseFunctionRest() *ast.FunctionLiteralNode {
	params := make([]token.Token, 0)

	if par.NextToken.Type != token.RIGHT_PAREN {
		for {
			par.advance()
			if par.CurrToken.Type != token.IDENTIFIER_ID {
				par.errorAt(par.CurrToken, "Expected parameter name.")
			}
			if len(params) == MAX_CALL_ARITY {
				par.Sink.ReportToken(diagStatic, par.CurrToken,
					"Cannot have more than %d parameters.", MAX_CALL_ARITY)
			}
			params = append(params, par.CurrToken)
			if par.NextToken.Type != token.COMMA_DELIM {
				break
			}
			par.advance() // move onto ','
		}
	}
	par.expectAdvance(token.RIGHT_PAREN, "Expected ')' after parameters.")
	par.expectAdvance(token.LEFT_BRACE, "Expected '{' before function body.")

	openLine := par.CurrToken.Line
	body := par.parseBlockStatements()

	return &ast.FunctionLiteralNode{
		ID:         ast.NextNodeID(),
		Params:     params,
		Body:       body,
		SingleLine: par.CurrToken.Line == openLine,
	}
}
