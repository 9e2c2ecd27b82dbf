/*
File    : go-lyra/parser/parser_statements.go
Author  : Lyra Maintainers
*/
package parser

import (
	"github.com/lyra-lang/go-lyra/ast"
	"github.com/lyra-lang/go-lyra/diag"
	"github.com/lyra-lang/go-lyra/token"
)

// Diagnostic kind shorthands used throughout the parser.
const (
	diagSyntax = diag.SyntaxKind
	diagStatic = diag.StaticKind
)

// parseDeclaration parses one declaration or statement, leaving the
// current token on the statement's final token. This is the error
// recovery boundary: a syntax error anywhere below abandons the
// statement, synchronizes, and yields nil so the partial statement is
// discarded.
func (par *Parser) parseDeclaration() (stmt ast.StatementNode) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseErrorSentinel); !ok {
				panic(r)
			}
			par.synchronize()
			stmt = nil
		}
	}()

	switch par.CurrToken.Type {
	case token.VAR_KEY:
		return par.parseVarStatement()
	case token.CLASS_KEY:
		return par.parseClassStatement()
	case token.FUN_KEY:
		// 'fun' followed by a name declares a function; 'fun' followed
		// by '(' is an anonymous function expression.
		if par.NextToken.Type == token.IDENTIFIER_ID {
			return par.parseFunctionStatement()
		}
		return par.parseExpressionStatement()
	default:
		return par.parseStatement()
	}
}

// parseStatement parses a non-declaring statement.
func (par *Parser) parseStatement() ast.StatementNode {
	switch par.CurrToken.Type {
	case token.IF_KEY:
		return par.parseIfStatement()
	case token.WHILE_KEY:
		return par.parseWhileStatement()
	case token.FOR_KEY:
		return par.parseForStatement()
	case token.RETURN_KEY:
		return par.parseReturnStatement()
	case token.BREAK_KEY:
		return par.parseBreakStatement()
	case token.PRINT_KEY:
		return par.parsePrintStatement()
	case token.LEFT_BRACE:
		return &ast.BlockStatementNode{Statements: par.parseBlockStatements()}
	default:
		return par.parseExpressionStatement()
	}
}

// parseVarStatement parses 'var' IDENT ('=' expression)? ';'.
func (par *Parser) parseVarStatement() ast.StatementNode {
	par.expectAdvance(token.IDENTIFIER_ID, "Expected variable name.")
	name := par.CurrToken

	var initializer ast.ExpressionNode
	if par.NextToken.Type == token.ASSIGN_OP {
		par.advance() // onto '='
		par.advance() // onto initializer start
		initializer = par.parseExpression(LOWEST)
	}

	par.expectAdvance(token.SEMICOLON_DELIM, "Expected ';' after variable declaration.")
	return &ast.VarStatementNode{
		Name:        name,
		Initializer: initializer,
	}
}

// parseExpressionStatement parses an expression followed by ';'.
func (par *Parser) parseExpressionStatement() ast.StatementNode {
	expr := par.parseExpression(LOWEST)
	par.expectAdvance(token.SEMICOLON_DELIM, "Expected ';' after expression.")
	return &ast.ExpressionStatementNode{Expr: expr}
}

// parsePrintStatement parses 'print' expression ';'.
func (par *Parser) parsePrintStatement() ast.StatementNode {
	keyword := par.CurrToken
	par.advance()
	expr := par.parseExpression(LOWEST)
	par.expectAdvance(token.SEMICOLON_DELIM, "Expected ';' after value.")
	return &ast.PrintStatementNode{
		Keyword: keyword,
		Expr:    expr,
	}
}

// parseBlockStatements parses '{' declaration* '}' and returns the
// inner statement list. The current token must be the '{'; on return it
// is the matching '}'.
func (par *Parser) parseBlockStatements() []ast.StatementNode {
	statements := make([]ast.StatementNode, 0)

	par.advance() // move past '{'
	for par.CurrToken.Type != token.RIGHT_BRACE && par.CurrToken.Type != token.EOF_TYPE {
		if stmt := par.parseDeclaration(); stmt != nil {
			statements = append(statements, stmt)
		}
		par.advance()
	}

	if par.CurrToken.Type != token.RIGHT_BRACE {
		par.errorAt(par.CurrToken, "Expected '}' after block.")
	}
	return statements
}

// parseIfStatement parses 'if' '(' condition ')' statement
// ('else' statement)?.
func (par *Parser) parseIfStatement() ast.StatementNode {
	par.expectAdvance(token.LEFT_PAREN, "Expected '(' after 'if'.")
	par.advance() // onto condition start
	condition := par.parseExpression(LOWEST)
	par.expectAdvance(token.RIGHT_PAREN, "Expected ')' after condition.")

	par.advance() // onto then-branch start
	thenBranch := par.parseStatement()

	var elseBranch ast.StatementNode
	if par.NextToken.Type == token.ELSE_KEY {
		par.advance() // onto 'else'
		par.advance() // onto else-branch start
		elseBranch = par.parseStatement()
	}

	return &ast.IfStatementNode{
		Condition:  condition,
		ThenBranch: thenBranch,
		ElseBranch: elseBranch,
	}
}

// parseWhileStatement parses 'while' '(' condition ')' statement.
// The body parses with loop depth raised so nested 'break' is legal.
func (par *Parser) parseWhileStatement() ast.StatementNode {
	par.expectAdvance(token.LEFT_PAREN, "Expected '(' after 'while'.")
	par.advance() // onto condition start
	condition := par.parseExpression(LOWEST)
	par.expectAdvance(token.RIGHT_PAREN, "Expected ')' after condition.")

	par.advance() // onto body start
	par.loopDepth++
	body := par.parseStatement()
	par.loopDepth--

	return &ast.WhileStatementNode{
		Condition: condition,
		Body:      body,
	}
}

// parseForStatement parses 'for' '(' init? ';' cond? ';' incr? ')'
// statement and lowers it into a while loop:
//
//	{ init; while (cond-or-true) { body; incr; } }
//
// so the resolver and the evaluator never see a for node.
func (par *Parser) parseForStatement() ast.StatementNode {
	par.expectAdvance(token.LEFT_PAREN, "Expected '(' after 'for'.")

	// Initializer clause: empty, a var declaration, or an expression.
	var initializer ast.StatementNode
	par.advance() // onto initializer start (or ';')
	switch par.CurrToken.Type {
	case token.SEMICOLON_DELIM:
		initializer = nil
	case token.VAR_KEY:
		initializer = par.parseVarStatement()
	default:
		initializer = par.parseExpressionStatement()
	}

	// Condition clause: empty means loop forever.
	var condition ast.ExpressionNode
	if par.NextToken.Type != token.SEMICOLON_DELIM {
		par.advance() // onto condition start
		condition = par.parseExpression(LOWEST)
	}
	par.expectAdvance(token.SEMICOLON_DELIM, "Expected ';' after loop condition.")

	// Increment clause: runs after every iteration of the body.
	var increment ast.ExpressionNode
	if par.NextToken.Type != token.RIGHT_PAREN {
		par.advance() // onto increment start
		increment = par.parseExpression(LOWEST)
	}
	par.expectAdvance(token.RIGHT_PAREN, "Expected ')' after for clauses.")

	par.advance() // onto body start
	par.loopDepth++
	body := par.parseStatement()
	par.loopDepth--

	// Lower into the equivalent while form.
	if increment != nil {
		body = &ast.BlockStatementNode{
			Statements: []ast.StatementNode{
				body,
				&ast.ExpressionStatementNode{Expr: increment},
			},
		}
	}
	if condition == nil {
		condition = &ast.LiteralExpressionNode{
			ID:    ast.NextNodeID(),
			Token: token.NewToken(token.TRUE_KEY, "true", par.CurrToken.Line),
			Value: true,
		}
	}
	var loop ast.StatementNode = &ast.WhileStatementNode{
		Condition: condition,
		Body:      body,
	}
	if initializer != nil {
		loop = &ast.BlockStatementNode{
			Statements: []ast.StatementNode{initializer, loop},
		}
	}
	return loop
}

// parseReturnStatement parses 'return' expression? ';'.
func (par *Parser) parseReturnStatement() ast.StatementNode {
	keyword := par.CurrToken

	var value ast.ExpressionNode
	if par.NextToken.Type != token.SEMICOLON_DELIM {
		par.advance() // onto value start
		value = par.parseExpression(LOWEST)
	}

	par.expectAdvance(token.SEMICOLON_DELIM, "Expected ';' after return value.")
	return &ast.ReturnStatementNode{
		Keyword: keyword,
		Value:   value,
	}
}

// parseBreakStatement parses 'break' ';'. A break outside any loop body
// is a static error but still produces a node.
func (par *Parser) parseBreakStatement() ast.StatementNode {
	if par.loopDepth == 0 {
		par.Sink.ReportToken(diagStatic, par.CurrToken, "'break' must be inside of a loop body.")
	}
	par.expectAdvance(token.SEMICOLON_DELIM, "Expected ';' after 'break'.")
	return &ast.BreakStatementNode{}
}

// parseFunctionStatement parses 'fun' IDENT '(' params ')' body.
// The caller guarantees the name token is present.
func (par *Parser) parseFunctionStatement() ast.StatementNode {
	par.advance() // onto the name
	name := par.CurrToken
	par.expectAdvance(token.LEFT_PAREN, "Expected '(' after function name.")
	fn := par.parseFunctionRest()
	return &ast.FunctionStatementNode{
		Name:     name,
		Function: fn,
	}
}

// parseClassStatement parses a class declaration:
// 'class' IDENT (':' IDENT)? '{' method* '}'. Methods parse like named
// functions without the 'fun' keyword.
func (par *Parser) parseClassStatement() ast.StatementNode {
	par.expectAdvance(token.IDENTIFIER_ID, "Expected class name.")
	name := par.CurrToken

	var superclass *token.Token
	if par.NextToken.Type == token.COLON_DELIM {
		par.advance() // onto ':'
		par.expectAdvance(token.IDENTIFIER_ID, "Expected superclass name.")
		super := par.CurrToken
		superclass = &super
	}

	par.expectAdvance(token.LEFT_BRACE, "Expected '{' before class body.")

	methods := make([]*ast.FunctionStatementNode, 0)
	par.advance() // into the class body
	for par.CurrToken.Type != token.RIGHT_BRACE && par.CurrToken.Type != token.EOF_TYPE {
		if par.CurrToken.Type != token.IDENTIFIER_ID {
			par.errorAt(par.CurrToken, "Expected method name.")
		}
		methodName := par.CurrToken
		par.expectAdvance(token.LEFT_PAREN, "Expected '(' after method name.")
		fn := par.parseFunctionRest()
		methods = append(methods, &ast.FunctionStatementNode{
			Name:     methodName,
			Function: fn,
		})
		par.advance() // past the method's closing '}'
	}

	if par.CurrToken.Type != token.RIGHT_BRACE {
		par.errorAt(par.CurrToken, "Expected '}' after class body.")
	}

	return &ast.ClassStatementNode{
		Name:       name,
		Superclass: superclass,
		Methods:    methods,
	}
}
