/*
File    : go-lyra/parser/parser.go
Author  : Lyra Maintainers
*/

/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for the Lyra programming language.

The parser converts the lexer's token stream into an Abstract Syntax
Tree. It handles:
- Expressions (binary, unary, logical, literals, identifiers, calls,
  property access, assignment)
- Statements (declarations, control flow, blocks, classes)
- Operator precedence and associativity per the language grammar

Key features:
- Pratt parsing with registered prefix/infix functions per token type
- Error recovery: a syntax error reports into the shared diagnostic
  sink, abandons the current statement and synchronizes at the next
  statement boundary, so one run surfaces several errors
- For loops are desugared into while loops at parse time
- Calls and function declarations are capped at 255 arguments/parameters
- Loop depth is tracked so a stray 'break' is diagnosed while parsing
*/
package parser

import (
	"github.com/lyra-lang/go-lyra/ast"
	"github.com/lyra-lang/go-lyra/diag"
	"github.com/lyra-lang/go-lyra/token"
)

// unaryParseFunction parses a token that can begin an expression.
type unaryParseFunction func() ast.ExpressionNode

// binaryParseFunction parses a token that appears between expressions,
// receiving the already-parsed left operand.
type binaryParseFunction func(left ast.ExpressionNode) ast.ExpressionNode

// Operator precedence levels, lowest to highest. The table mirrors the
// language grammar: assignment binds loosest and associates right,
// everything below associates left.
const (
	LOWEST         = iota
	ASSIGNMENT     // = += -=
	LOGIC_OR       // || or
	LOGIC_AND      // && and
	BITWISE        // & | ^
	EQUALITY       // == !=
	COMPARISON     // < <= > >=
	ADDITION       // + -
	MULTIPLICATION // * /
	UNARY          // ! -
	CALL           // () .
)

// precedences maps infix token types to their binding power.
var precedences = map[token.TokenType]int{
	token.ASSIGN_OP:    ASSIGNMENT,
	token.PLUS_ASSIGN:  ASSIGNMENT,
	token.MINUS_ASSIGN: ASSIGNMENT,
	token.OR_OP:        LOGIC_OR,
	token.OR_KEY:       LOGIC_OR,
	token.AND_OP:       LOGIC_AND,
	token.AND_KEY:      LOGIC_AND,
	token.BIT_AND_OP:   BITWISE,
	token.BIT_OR_OP:    BITWISE,
	token.BIT_XOR_OP:   BITWISE,
	token.EQ_OP:        EQUALITY,
	token.NE_OP:        EQUALITY,
	token.LT_OP:        COMPARISON,
	token.LE_OP:        COMPARISON,
	token.GT_OP:        COMPARISON,
	token.GE_OP:        COMPARISON,
	token.PLUS_OP:      ADDITION,
	token.MINUS_OP:     ADDITION,
	token.MUL_OP:       MULTIPLICATION,
	token.DIV_OP:       MULTIPLICATION,
	token.LEFT_PAREN:   CALL,
	token.DOT_OP:       CALL,
}

// MAX_CALL_ARITY caps parameter and argument lists. Exceeding it is a
// static error but parsing continues.
const MAX_CALL_ARITY = 255

// parseErrorSentinel is the panic payload used to abandon a statement
// after a syntax error. parseDeclaration recovers it and synchronizes;
// anything else panicking through the parser is a genuine bug and is
// re-raised.
type parseErrorSentinel struct{}

// Parser represents the parser state and configuration.
type Parser struct {
	Tokens    []token.Token // Full token stream, terminated by EOF
	Pos       int           // Index of CurrToken in Tokens
	CurrToken token.Token   // Current token being processed
	NextToken token.Token   // Next token (for lookahead)

	// Function maps for Pratt parsing.
	// These maps associate token types with their parsing functions.
	UnaryFuncs  map[token.TokenType]unaryParseFunction  // Prefix tokens and literals
	BinaryFuncs map[token.TokenType]binaryParseFunction // Infix operators

	Sink *diag.Sink // Shared diagnostic sink

	// loopDepth counts enclosing loop bodies so a 'break' outside any
	// loop can be diagnosed while parsing.
	loopDepth int
}

// NewParser creates and initializes a new Parser over a token stream.
// The stream must be terminated by an EOF token, which the lexer
// guarantees.
func NewParser(tokens []token.Token, sink *diag.Sink) *Parser {
	par := &Parser{
		Tokens: tokens,
		Sink:   sink,
	}
	par.init()
	return par
}

// init initializes the parser's internal state: the Pratt function maps
// and the two-token lookahead window.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[token.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[token.TokenType]binaryParseFunction)

	// Register unary/prefix parsing functions.
	// These handle tokens that can start an expression.

	// Literals: numbers, strings, true, false, null
	par.registerUnaryFuncs(par.parseLiteralExpression,
		token.NUMBER_LIT, token.STRING_LIT, token.TRUE_KEY, token.FALSE_KEY, token.NULL_KEY)

	// Identifiers: variable references
	par.registerUnaryFuncs(par.parseIdentifierExpression, token.IDENTIFIER_ID)

	// 'this' inside methods
	par.registerUnaryFuncs(par.parseThisExpression, token.THIS_KEY)

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseGroupedExpression, token.LEFT_PAREN)

	// Unary operators: !, -
	par.registerUnaryFuncs(par.parseUnaryExpression, token.NOT_OP, token.MINUS_OP)

	// Anonymous function literals: fun (params) { body }
	par.registerUnaryFuncs(par.parseFunctionLiteral, token.FUN_KEY)

	// Register binary/infix parsing functions.
	// These handle operators that appear between two expressions.

	// Arithmetic and bitwise operators: +, -, *, /, &, |, ^
	par.registerBinaryFuncs(par.parseBinaryExpression,
		token.PLUS_OP, token.MINUS_OP, token.MUL_OP, token.DIV_OP,
		token.BIT_AND_OP, token.BIT_OR_OP, token.BIT_XOR_OP)

	// Comparison and equality operators: <, <=, >, >=, ==, !=
	par.registerBinaryFuncs(par.parseBinaryExpression,
		token.LT_OP, token.LE_OP, token.GT_OP, token.GE_OP, token.EQ_OP, token.NE_OP)

	// Short-circuit operators: &&, ||, and their keyword aliases
	par.registerBinaryFuncs(par.parseLogicalExpression,
		token.AND_OP, token.OR_OP, token.AND_KEY, token.OR_KEY)

	// Assignment operators: =, +=, -=
	par.registerBinaryFuncs(par.parseAssignmentExpression,
		token.ASSIGN_OP, token.PLUS_ASSIGN, token.MINUS_ASSIGN)

	// Call expressions: callee(args)
	par.registerBinaryFuncs(par.parseCallExpression, token.LEFT_PAREN)

	// Property access: obj.field
	par.registerBinaryFuncs(par.parseGetExpression, token.DOT_OP)

	// Prime the token lookahead window.
	par.Pos = 0
	par.CurrToken = par.tokenAt(0)
	par.NextToken = par.tokenAt(1)
}

// registerUnaryFuncs registers one prefix function for several token types.
func (par *Parser) registerUnaryFuncs(fn unaryParseFunction, types ...token.TokenType) {
	for _, t := range types {
		par.UnaryFuncs[t] = fn
	}
}

// registerBinaryFuncs registers one infix function for several token types.
func (par *Parser) registerBinaryFuncs(fn binaryParseFunction, types ...token.TokenType) {
	for _, t := range types {
		par.BinaryFuncs[t] = fn
	}
}

// tokenAt returns the token at index i, clamped to the trailing EOF so
// lookahead past the end stays safe.
func (par *Parser) tokenAt(i int) token.Token {
	if len(par.Tokens) == 0 {
		return token.NewToken(token.EOF_TYPE, "", 1)
	}
	if i >= len(par.Tokens) {
		return par.Tokens[len(par.Tokens)-1]
	}
	return par.Tokens[i]
}

// advance moves the parser forward by one token:
// CurrToken becomes NextToken and NextToken is read from the stream.
// Advancing at EOF is a no-op.
func (par *Parser) advance() {
	if par.CurrToken.Type == token.EOF_TYPE {
		return
	}
	par.Pos++
	par.CurrToken = par.tokenAt(par.Pos)
	par.NextToken = par.tokenAt(par.Pos + 1)
}

// errorAt reports a syntax error anchored at the given token and
// abandons the current statement via the parse-error sentinel.
func (par *Parser) errorAt(tok token.Token, format string, args ...interface{}) {
	par.Sink.ReportToken(diag.SyntaxKind, tok, format, args...)
	panic(parseErrorSentinel{})
}

// expectAdvance checks that the next token has the expected type and
// advances onto it. On mismatch it reports the given message at the
// offending token and abandons the statement.
func (par *Parser) expectAdvance(expected token.TokenType, format string, args ...interface{}) {
	if par.NextToken.Type != expected {
		par.errorAt(par.NextToken, format, args...)
	}
	par.advance()
}

// synchronize discards tokens until a likely statement boundary: just
// past a ';', or just before a token that typically starts a statement.
// Called after a parse error so the parser can continue and report
// further problems in the same run.
func (par *Parser) synchronize() {
	for par.CurrToken.Type != token.EOF_TYPE {
		if par.CurrToken.Type == token.SEMICOLON_DELIM {
			return
		}
		switch par.NextToken.Type {
		case token.CLASS_KEY, token.FUN_KEY, token.VAR_KEY, token.IF_KEY,
			token.FOR_KEY, token.WHILE_KEY, token.PRINT_KEY, token.RETURN_KEY:
			return
		}
		par.advance()
	}
}

// Parse is the main parsing function converting the token stream into a
// statement list. It repeatedly parses declarations until EOF, building
// the AST forest. Statements abandoned by error recovery are discarded;
// parsing always consumes all tokens.
func (par *Parser) Parse() []ast.StatementNode {
	statements := make([]ast.StatementNode, 0)

	for par.CurrToken.Type != token.EOF_TYPE {
		if stmt := par.parseDeclaration(); stmt != nil {
			statements = append(statements, stmt)
		}
		par.advance()
	}

	return statements
}
