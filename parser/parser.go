/*
File    : mlang/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/mlang/lexer"
)

// ErrorKind classifies a ParseError for callers that want to branch on the
// failure without string-matching the message.
type ErrorKind string

const (
	ErrUnexpectedToken ErrorKind = "unexpected_token"
	ErrLetStatement    ErrorKind = "let_statement"
	ErrIfExpression    ErrorKind = "if_expression"
	ErrFunctionLiteral ErrorKind = "function_literal"
	ErrBlock           ErrorKind = "block"
	ErrArgs            ErrorKind = "args"
	ErrUnsupported     ErrorKind = "unsupported"
)

// ParseError is the single error type the parser produces. It carries a
// Kind for programmatic handling and a human-readable Message with the
// offending token's position.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%d:%d] %s: %s", e.Line, e.Column, e.Kind, e.Message)
}

// prefixParseFn parses an expression that starts with the current token
// (literals, identifiers, unary operators, grouping).
type prefixParseFn func() Expression

// infixParseFn parses an expression that continues from an already-parsed
// left operand (binary operators, calls, indexing, access, assignment).
type infixParseFn func(Expression) Expression

// Parser turns a token stream into a Program. It never panics on malformed
// input: every failure is recorded as a ParseError and parsing resumes at
// the next statement boundary.
type Parser struct {
	lex *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn

	errors []*ParseError
}

// New creates a Parser over src and primes its two-token lookahead.
func New(src string) *Parser {
	p := &Parser{
		lex:            lexer.New(src),
		prefixParseFns: make(map[lexer.TokenType]prefixParseFn),
		infixParseFns:  make(map[lexer.TokenType]infixParseFn),
		errors:         make([]*ParseError, 0),
	}

	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpression)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.IF, p.parseIfExpression)
	p.registerPrefix(lexer.FN, p.parseFunctionLiteral)
	p.registerPrefix(lexer.LBRACE, p.parseBraceExpression)
	p.registerPrefix(lexer.LBRACKET, p.parseVectorLiteral)

	p.registerInfix(lexer.PLUS, p.parseInfixExpression)
	p.registerInfix(lexer.MINUS, p.parseInfixExpression)
	p.registerInfix(lexer.ASTERISK, p.parseInfixExpression)
	p.registerInfix(lexer.SLASH, p.parseInfixExpression)
	p.registerInfix(lexer.EQUAL, p.parseInfixExpression)
	p.registerInfix(lexer.NOT_EQUAL, p.parseInfixExpression)
	p.registerInfix(lexer.LT, p.parseInfixExpression)
	p.registerInfix(lexer.GT, p.parseInfixExpression)
	p.registerInfix(lexer.LT_EQUAL, p.parseInfixExpression)
	p.registerInfix(lexer.GT_EQUAL, p.parseInfixExpression)
	p.registerInfix(lexer.AMPERSAND, p.parseInfixExpression)
	p.registerInfix(lexer.PIPE, p.parseInfixExpression)
	p.registerInfix(lexer.DOT, p.parseAccessExpression)
	p.registerInfix(lexer.LPAREN, p.parseCallExpression)
	p.registerInfix(lexer.LBRACKET, p.parseIndexExpression)
	p.registerInfix(lexer.ASSIGN, p.parseAssignExpression)
	p.registerInfix(lexer.PLUS_EQUAL, p.parseAssignExpression)
	p.registerInfix(lexer.MINUS_EQUAL, p.parseAssignExpression)

	p.advance()
	p.advance()

	return p
}

func (p *Parser) registerPrefix(t lexer.TokenType, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t lexer.TokenType, fn infixParseFn)   { p.infixParseFns[t] = fn }

// advance shifts the lookahead window forward by one token.
func (p *Parser) advance() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances past the peek token if it matches t, else records an
// unexpected-token error and leaves the parser positioned at the bad token.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekIs(t) {
		p.advance()
		return true
	}
	p.errorf(ErrUnexpectedToken, p.peekToken, "expected next token to be %s, got %s instead", t, p.peekToken.Type)
	return false
}

func (p *Parser) errorf(kind ErrorKind, tok lexer.Token, format string, args ...interface{}) {
	p.errors = append(p.errors, &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	})
}

// Errors returns every syntax error collected during Parse.
func (p *Parser) Errors() []*ParseError { return p.errors }

// Parse consumes the entire token stream and returns the resulting
// Program. Parsing never stops at the first error: a statement that fails
// to parse is skipped and the parser resynchronizes at the next `;` or
// block boundary, so one call surfaces every syntax error in the input.
func (p *Parser) Parse() *Program {
	program := &Program{Statements: make([]Statement, 0)}

	for !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}

	program.Errors = p.errors
	return program
}

// synchronize skips tokens until a plausible statement boundary, so a
// single bad statement doesn't cascade into spurious follow-on errors.
func (p *Parser) synchronize() {
	for !p.curIs(lexer.SEMICOLON) && !p.curIs(lexer.EOF) && !p.curIs(lexer.RBRACE) {
		p.advance()
	}
}
