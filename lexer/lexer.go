/*
File    : go-lyra/lexer/lexer.go
Author  : Lyra Maintainers
*/
package lexer

// Lexer performs lexical analysis (tokenization) of Lyra source code.
// It scans through the source text character by character, identifying
// and creating tokens that represent the syntactic elements of the
// language.
//
// The lexer maintains state about its current position in the source,
// including the line number for error reporting. It handles:
//   - Operators (arithmetic, logical, bitwise, comparison, compound assignment)
//   - Keywords (class, if, fun, var, while, print, etc.)
//   - Literals (numbers, strings)
//   - Identifiers (ASCII letters, digits and underscore)
//   - Structural symbols (parentheses, braces, delimiters)
//   - Line comments (// ...)
//   - Whitespace (which is skipped)
//
// Lexical errors are reported to the shared diagnostic sink; the lexer
// never stops early, so a single pass surfaces every scanning problem.
import (
	"strconv"

	"github.com/lyra-lang/go-lyra/diag"
	"github.com/lyra-lang/go-lyra/token"
)

// Lexer holds the scanning state for one source string.
//
// Fields:
//   - Src: The complete source code as a string
//   - Current: The byte at the current position being examined
//   - Position: The current index in the source string (0-indexed)
//   - SrcLength: The total length of the source string
//   - Line: The current line number in the source (1-indexed)
//   - Sink: The shared diagnostic sink for lexical errors
type Lexer struct {
	Src       string     // Entire source code in plain text format
	Current   byte       // Current character being examined
	Position  int        // Current position of pointer in the source code
	SrcLength int        // Length of source string
	Line      int        // Line number in source (1-indexed)
	Sink      *diag.Sink // Shared diagnostic sink
}

// NewLexer creates and initializes a new Lexer for the given source code.
// It sets up the initial state with the first character of the source
// and initializes line tracking to line 1.
func NewLexer(src string, sink *diag.Sink) *Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Sink:      sink,
	}
}

// NextToken retrieves the next token from the source code stream.
// It skips whitespace and comments, then identifies and returns the next
// meaningful token. At end of input it returns an EOF token; callers that
// want the whole stream use ConsumeTokens instead.
//
// Unknown characters report an "Unexpected token" diagnostic and scanning
// continues with the following character.
func (lex *Lexer) NextToken() token.Token {

	var tok token.Token

	// Skip any whitespace and comments before the next token
	lex.IgnoreWhitespacesAndComments()

	// Remember where the token starts; multi-line strings advance the
	// line counter while being read, but the token carries the line of
	// its opening character.
	startLine := lex.Line

	// Match the current character to determine token type
	switch lex.Current {
	case '(':
		tok = token.NewToken(token.LEFT_PAREN, "(", startLine)
	case ')':
		tok = token.NewToken(token.RIGHT_PAREN, ")", startLine)
	case '{':
		tok = token.NewToken(token.LEFT_BRACE, "{", startLine)
	case '}':
		tok = token.NewToken(token.RIGHT_BRACE, "}", startLine)
	case ',':
		tok = token.NewToken(token.COMMA_DELIM, ",", startLine)
	case '.':
		tok = token.NewToken(token.DOT_OP, ".", startLine)
	case ';':
		tok = token.NewToken(token.SEMICOLON_DELIM, ";", startLine)
	case ':':
		tok = token.NewToken(token.COLON_DELIM, ":", startLine)
	case '*':
		tok = token.NewToken(token.MUL_OP, "*", startLine)
	case '/':
		// '//' comments are consumed by IgnoreWhitespacesAndComments,
		// so a '/' seen here is always the division operator.
		tok = token.NewToken(token.DIV_OP, "/", startLine)
	case '^':
		tok = token.NewToken(token.BIT_XOR_OP, "^", startLine)
	case '+':
		// Could be '+' or '+='
		if lex.Peek() == '=' {
			lex.Advance()
			tok = token.NewToken(token.PLUS_ASSIGN, "+=", startLine)
		} else {
			tok = token.NewToken(token.PLUS_OP, "+", startLine)
		}
	case '-':
		// Could be '-' or '-='
		if lex.Peek() == '=' {
			lex.Advance()
			tok = token.NewToken(token.MINUS_ASSIGN, "-=", startLine)
		} else {
			tok = token.NewToken(token.MINUS_OP, "-", startLine)
		}
	case '=':
		// Could be '=' (assignment) or '==' (equality)
		if lex.Peek() == '=' {
			lex.Advance()
			tok = token.NewToken(token.EQ_OP, "==", startLine)
		} else {
			tok = token.NewToken(token.ASSIGN_OP, "=", startLine)
		}
	case '!':
		// Could be '!' (logical NOT) or '!=' (not equal)
		if lex.Peek() == '=' {
			lex.Advance()
			tok = token.NewToken(token.NE_OP, "!=", startLine)
		} else {
			tok = token.NewToken(token.NOT_OP, "!", startLine)
		}
	case '<':
		// Could be '<' or '<='
		if lex.Peek() == '=' {
			lex.Advance()
			tok = token.NewToken(token.LE_OP, "<=", startLine)
		} else {
			tok = token.NewToken(token.LT_OP, "<", startLine)
		}
	case '>':
		// Could be '>' or '>='
		if lex.Peek() == '=' {
			lex.Advance()
			tok = token.NewToken(token.GE_OP, ">=", startLine)
		} else {
			tok = token.NewToken(token.GT_OP, ">", startLine)
		}
	case '&':
		// Could be '&' (bitwise AND) or '&&' (logical AND)
		if lex.Peek() == '&' {
			lex.Advance()
			tok = token.NewToken(token.AND_OP, "&&", startLine)
		} else {
			tok = token.NewToken(token.BIT_AND_OP, "&", startLine)
		}
	case '|':
		// Could be '|' (bitwise OR) or '||' (logical OR)
		if lex.Peek() == '|' {
			lex.Advance()
			tok = token.NewToken(token.OR_OP, "||", startLine)
		} else {
			tok = token.NewToken(token.BIT_OR_OP, "|", startLine)
		}
	case '"':
		// String literal - delegate to specialized handler
		return readStringLiteral(lex)
	case 0:
		// Null byte indicates end of file
		return token.NewToken(token.EOF_TYPE, "", lex.Line)
	default:
		// Check for numeric literals, identifiers, or invalid characters
		if isNumeric(lex.Current) {
			return readNumber(lex)
		} else if isAlpha(lex.Current) || lex.Current == '_' {
			return readIdentifier(lex)
		}

		// Unrecognized character: report and keep scanning
		lex.Sink.ReportLexical(lex.Line, "Unexpected token: '%c'", lex.Current)
		lex.Advance()
		return lex.NextToken()
	}

	// Move to the next character for the next token
	lex.Advance()

	return tok
}

// Peek looks ahead to the next character in the source without
// consuming it. Two-character operators and the decimal point in number
// literals are the only users.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0 // End of source
	}
	return lex.Src[lex.Position+1]
}

// Advance moves the lexer to the next character in the source.
// It updates Current and Position; line counting happens where newlines
// are actually consumed (whitespace skipping and string literals).
func (lex *Lexer) Advance() {
	lex.Position++

	if lex.Position >= lex.SrcLength {
		lex.Current = 0              // Null byte indicates end
		lex.Position = lex.SrcLength // Keep position at end
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// IgnoreWhitespacesAndComments skips over whitespace and line comments.
// This method is called before tokenizing each meaningful token.
//
// Whitespace is ' ', '\t', '\r' and '\n'; a newline increments the line
// counter. Line comments start with '//' and run to end of line without
// producing a token.
func (lex *Lexer) IgnoreWhitespacesAndComments() {
	for {
		if isWhitespace(lex.Current) {
			if lex.Current == '\n' {
				lex.Line++
			}
			lex.Advance()
		} else if lex.Current == '/' && lex.Peek() == '/' {
			lex.SkipLineComment()
		} else {
			break
		}
	}
}

// SkipLineComment skips over a single-line comment (// ...).
// It advances the lexer until a newline or end of file is reached.
// The newline itself is not consumed, so line tracking stays correct.
func (lex *Lexer) SkipLineComment() {
	// Skip the '//' characters
	lex.Advance()
	lex.Advance()

	// Skip until end of line or end of file
	for lex.Current != '\n' && lex.Current != 0 {
		lex.Advance()
	}
}

// ConsumeTokens tokenizes the entire source and returns all tokens,
// terminated by exactly one EOF token. Lexical errors land in the sink;
// the returned stream contains every token that could be produced.
func (lex *Lexer) ConsumeTokens() []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lex.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF_TYPE {
			break
		}
	}
	return tokens
}

// readStringLiteral reads a double-quoted string literal. Newlines are
// allowed inside and count toward the line counter; the stored literal
// value is the text between the quotes and the token carries the line of
// the opening quote. An unterminated string reports a lexical error and
// produces no token.
func readStringLiteral(lex *Lexer) token.Token {
	startLine := lex.Line
	lex.Advance() // Consume opening quote

	start := lex.Position
	for lex.Current != '"' {
		if lex.Current == 0 {
			// Unterminated string: report and hand back EOF
			lex.Sink.ReportLexical(startLine, "Unterminated string.")
			return token.NewToken(token.EOF_TYPE, "", lex.Line)
		}
		if lex.Current == '\n' {
			lex.Line++
		}
		lex.Advance()
	}

	value := lex.Src[start:lex.Position]
	lex.Advance() // Consume closing quote
	return token.NewLiteralToken(token.STRING_LIT, "\""+value+"\"", value, startLine)
}

// readNumber reads a number literal: one or more decimal digits,
// optionally followed by '.' and one or more digits. There is no leading
// sign, no exponent and no leading dot. The literal parses to a 64-bit
// float.
func readNumber(lex *Lexer) token.Token {
	start := lex.Position

	for isNumeric(lex.Current) {
		lex.Advance()
	}

	// A decimal point only belongs to the number when a digit follows;
	// this is the lexer's only use of two-character lookahead.
	if lex.Current == '.' && isNumeric(lex.Peek()) {
		lex.Advance() // consume '.'
		for isNumeric(lex.Current) {
			lex.Advance()
		}
	}

	lexeme := lex.Src[start:lex.Position]
	value, _ := strconv.ParseFloat(lexeme, 64)
	return token.NewLiteralToken(token.NUMBER_LIT, lexeme, value, lex.Line)
}

// readIdentifier reads an identifier or keyword: a letter or underscore
// followed by letters, digits or underscores. Keywords are recognized
// through the token package's lookup table.
func readIdentifier(lex *Lexer) token.Token {
	start := lex.Position

	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	lexeme := lex.Src[start:lex.Position]
	return token.NewToken(token.LookupIdent(lexeme), lexeme, lex.Line)
}
