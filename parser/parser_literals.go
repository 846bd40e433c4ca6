/*
File    : mlang/parser/parser_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/mlang/lexer"

// parseIfExpression parses `if cond { ... } else { ... }`. The condition
// is an ordinary expression — no parentheses required, though `if (cond)
// { ... }` still parses fine since LParen is itself a grouped-expression
// nud. The `else` branch is optional.
func (p *Parser) parseIfExpression() Expression {
	expr := &IfExpression{Token: p.curToken}

	p.advance()
	expr.Condition = p.parseExpression(LOWEST)
	if expr.Condition == nil {
		return nil
	}

	if !p.expectPeek(lexer.LBRACE) {
		p.errorf(ErrIfExpression, p.curToken, "if branch must be a block")
		return nil
	}
	expr.Consequence = &BlockExpression{Token: p.curToken, Statements: p.parseBlockStatements()}
	if !p.curIs(lexer.RBRACE) {
		p.errorf(ErrBlock, p.curToken, "unterminated block")
		return nil
	}

	if p.peekIs(lexer.ELSE) {
		p.advance()
		if !p.expectPeek(lexer.LBRACE) {
			p.errorf(ErrIfExpression, p.curToken, "else branch must be a block")
			return nil
		}
		expr.Alternative = &BlockExpression{Token: p.curToken, Statements: p.parseBlockStatements()}
		if !p.curIs(lexer.RBRACE) {
			p.errorf(ErrBlock, p.curToken, "unterminated block")
			return nil
		}
	}

	return expr
}

// parseBraceExpression disambiguates `{` as either a CollectionLiteral or
// a plain BlockExpression by looking one token past the brace: a leading
// `.` can only start a collection entry, since a block's first statement
// can never begin with a bare dot.
func (p *Parser) parseBraceExpression() Expression {
	tok := p.curToken
	if p.peekIs(lexer.DOT) {
		return p.parseCollectionLiteral(tok)
	}

	block := &BlockExpression{Token: tok, Statements: p.parseBlockStatements()}
	if !p.curIs(lexer.RBRACE) {
		p.errorf(ErrBlock, p.curToken, "unterminated block")
		return nil
	}
	return block
}

// parseCollectionLiteral parses `{ .name = expr, .name = expr, ... }`.
func (p *Parser) parseCollectionLiteral(tok lexer.Token) Expression {
	lit := &CollectionLiteral{Token: tok, Members: make([]CollectionEntry, 0)}

	for {
		if !p.expectPeek(lexer.DOT) {
			return nil
		}
		if !p.expectPeek(lexer.IDENT) {
			return nil
		}
		name := p.curToken.Literal

		if !p.expectPeek(lexer.ASSIGN) {
			return nil
		}
		p.advance()

		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		lit.Members = append(lit.Members, CollectionEntry{Name: name, Value: value})

		if p.peekIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}

	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}
	return lit
}

// parseVectorLiteral parses `[e1, e2, ...]`.
func (p *Parser) parseVectorLiteral() Expression {
	tok := p.curToken
	elements := p.parseExpressionList(lexer.RBRACKET)
	return &VectorLiteral{Token: tok, Elements: elements}
}

// parseFunctionLiteral parses `fn(p1, p2) { body }` and computes the
// literal's capture list from the body's free identifiers.
func (p *Parser) parseFunctionLiteral() Expression {
	lit := &FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		p.errorf(ErrFunctionLiteral, p.curToken, "function literal requires a parameter list")
		return nil
	}
	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(lexer.LBRACE) {
		p.errorf(ErrFunctionLiteral, p.curToken, "function literal requires a body")
		return nil
	}
	lit.Body = &BlockExpression{Token: p.curToken, Statements: p.parseBlockStatements()}
	if !p.curIs(lexer.RBRACE) {
		p.errorf(ErrBlock, p.curToken, "unterminated function body")
		return nil
	}

	lit.Capture = freeIdentifiers(lit.Parameters, lit.Body)
	return lit
}

func (p *Parser) parseFunctionParameters() []*Identifier {
	params := make([]*Identifier, 0)

	if p.peekIs(lexer.RPAREN) {
		p.advance()
		return params
	}

	p.advance()
	params = append(params, &Identifier{Token: p.curToken, Name: p.curToken.Literal})

	for p.peekIs(lexer.COMMA) {
		p.advance()
		p.advance()
		params = append(params, &Identifier{Token: p.curToken, Name: p.curToken.Literal})
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return params
}
