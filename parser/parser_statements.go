/*
File    : mlang/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/mlang/lexer"

// parseStatement dispatches on the current token to the right statement
// parser, or falls through to treating the statement as a bare expression.
func (p *Parser) parseStatement() Statement {
	switch p.curToken.Type {
	case lexer.SEMICOLON:
		return nil
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `let name = expr;`.
func (p *Parser) parseLetStatement() Statement {
	stmt := &LetStatement{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		p.errorf(ErrLetStatement, p.curToken, "let statement requires an identifier")
		p.synchronize()
		return nil
	}
	stmt.Name = &Identifier{Token: p.curToken, Name: p.curToken.Literal}

	if !p.expectPeek(lexer.ASSIGN) {
		p.errorf(ErrLetStatement, p.curToken, "let statement requires '=' after the identifier")
		p.synchronize()
		return nil
	}
	p.advance()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		p.synchronize()
		return nil
	}

	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseReturnStatement parses `return expr;`.
func (p *Parser) parseReturnStatement() Statement {
	stmt := &ReturnStatement{Token: p.curToken}
	p.advance()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		p.synchronize()
		return nil
	}

	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseExpressionStatement parses a bare expression followed by an
// optional semicolon, the form every other statement kind falls back to.
func (p *Parser) parseExpressionStatement() Statement {
	stmt := &ExpressionStatement{Token: p.curToken}

	stmt.Expr = p.parseExpression(LOWEST)
	if stmt.Expr == nil {
		p.synchronize()
		return nil
	}

	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseBlockStatements consumes statements until RBRACE or EOF, used by
// both parseBraceExpression (plain blocks) and parseIfExpression/
// parseFunctionLiteral bodies.
func (p *Parser) parseBlockStatements() []Statement {
	statements := make([]Statement, 0)
	p.advance() // past '{'

	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			statements = append(statements, stmt)
		}
		p.advance()
	}
	return statements
}
