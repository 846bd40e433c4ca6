/*
File    : mlang/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/mlang/lexer"

// Operator precedence, lowest to highest. Assignment is deliberately the
// loosest-binding operator so `x = a + b` parses as `x = (a + b)`, and
// access/invoke bind tightest so `a.b(c)[0]` parses as `((a.b)(c))[0]`.
const (
	LOWEST int = iota
	ASSIGN
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SETOPS      // & |  (ins_lhs / uni_lhs)
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	ACCESS      // .
	INVOKE      // call(...), index[...]
)

// && and || lex (lexer.AND, lexer.OR) but have no entry here and no
// registered infix handler: the language defines no logical-operator
// semantics, so encountering either mid-expression ends the expression
// there and then fails to parse as the next statement's leading token
// ("no prefix parse function for && found").
var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:      ASSIGN,
	lexer.PLUS_EQUAL:  ASSIGN,
	lexer.MINUS_EQUAL: ASSIGN,
	lexer.EQUAL:       EQUALS,
	lexer.NOT_EQUAL:   EQUALS,
	lexer.LT:          LESSGREATER,
	lexer.GT:          LESSGREATER,
	lexer.LT_EQUAL:    LESSGREATER,
	lexer.GT_EQUAL:    LESSGREATER,
	lexer.AMPERSAND:   SETOPS,
	lexer.PIPE:        SETOPS,
	lexer.PLUS:        SUM,
	lexer.MINUS:       SUM,
	lexer.ASTERISK:    PRODUCT,
	lexer.SLASH:       PRODUCT,
	lexer.DOT:         ACCESS,
	lexer.LPAREN:      INVOKE,
	lexer.LBRACKET:    INVOKE,
}

// peekPrecedence returns the binding power of the peek token, or LOWEST if
// it isn't an infix operator at all.
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// curPrecedence returns the binding power of the current token.
func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}
