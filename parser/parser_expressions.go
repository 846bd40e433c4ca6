/*
File    : mlang/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/mlang/lexer"
)

// parseExpression is the heart of the Pratt parser: parse a prefix
// operand, then keep folding in infix operators whose precedence exceeds
// precedence, left to right, until one doesn't.
func (p *Parser) parseExpression(precedence int) Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorf(ErrUnsupported, p.curToken, "no prefix parse function for %s found", p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.advance()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Token: p.curToken, Name: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 32)
	if err != nil {
		p.errorf(ErrUnsupported, p.curToken, "could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	return &IntegerLiteral{Token: p.curToken, Value: int32(value)}
}

func (p *Parser) parseStringLiteral() Expression {
	return &StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() Expression {
	return &BooleanLiteral{Token: p.curToken, Value: p.curIs(lexer.TRUE)}
}

func (p *Parser) parsePrefixExpression() Expression {
	expr := &PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.advance()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseInfixExpression(left Expression) Expression {
	expr := &InfixExpression{Token: p.curToken, Operator: p.curToken.Literal, Left: left}
	precedence := p.curPrecedence()
	p.advance()
	expr.Right = p.parseExpression(precedence)
	return expr
}

func (p *Parser) parseGroupedExpression() Expression {
	p.advance()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return expr
}

// parseAccessExpression handles `.` as an infix operator. The accessor
// name is taken directly from the next token's literal; it is never
// parsed as a general expression, matching the language's rule that
// `.name` can only ever name a collection member.
func (p *Parser) parseAccessExpression(left Expression) Expression {
	tok := p.curToken
	if !p.expectPeek(lexer.IDENT) {
		p.errorf(ErrUnsupported, p.curToken, "expected identifier as accessor after '.'")
		return nil
	}
	return &AccessExpression{Token: tok, Object: left, Name: p.curToken.Literal}
}

// parseAssignExpression handles `=`, `+=`, `-=` as low-precedence,
// right-associative infix operators. The target must already have parsed
// down to an Identifier or an AccessExpression.
func (p *Parser) parseAssignExpression(left Expression) Expression {
	switch left.(type) {
	case *Identifier, *AccessExpression:
	default:
		p.errorf(ErrUnsupported, p.curToken, "invalid assignment target")
		return nil
	}

	expr := &AssignExpression{Token: p.curToken, Operator: p.curToken.Literal, Target: left}
	p.advance()
	// Right-associative: parse at one precedence below ASSIGN so a chained
	// `a = b = 5` recurses into the right-hand assignment.
	expr.Value = p.parseExpression(ASSIGN - 1)
	return expr
}

func (p *Parser) parseCallExpression(fn Expression) Expression {
	expr := &CallExpression{Token: p.curToken, Function: fn}
	expr.Arguments = p.parseExpressionList(lexer.RPAREN)
	return expr
}

func (p *Parser) parseIndexExpression(left Expression) Expression {
	expr := &IndexExpression{Token: p.curToken, Left: left}
	p.advance()
	expr.Index = p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return expr
}

// parseExpressionList parses a comma-separated list of expressions ending
// in end, with curToken left on end. Used for call arguments and vector
// elements.
func (p *Parser) parseExpressionList(end lexer.TokenType) []Expression {
	list := make([]Expression, 0)

	if p.peekIs(end) {
		p.advance()
		return list
	}

	p.advance()
	first := p.parseExpression(LOWEST)
	if first != nil {
		list = append(list, first)
	}

	for p.peekIs(lexer.COMMA) {
		p.advance()
		p.advance()
		elem := p.parseExpression(LOWEST)
		if elem != nil {
			list = append(list, elem)
		}
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}
