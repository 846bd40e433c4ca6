/*
File    : mlang/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, input string) *Program {
	t.Helper()
	p := New(input)
	program := p.Parse()
	return program
}

func TestLetStatement(t *testing.T) {
	program := parseProgram(t, `let x = 5; let y = true; let z = "hi";`)
	require.False(t, program.HasErrors(), program.Errors)
	require.Len(t, program.Statements, 3)

	names := []string{"x", "y", "z"}
	for i, name := range names {
		stmt, ok := program.Statements[i].(*LetStatement)
		require.True(t, ok)
		assert.Equal(t, name, stmt.Name.Name)
	}
}

func TestReturnStatement(t *testing.T) {
	program := parseProgram(t, `return 5; return x;`)
	require.False(t, program.HasErrors(), program.Errors)
	require.Len(t, program.Statements, 2)
	for _, stmt := range program.Statements {
		_, ok := stmt.(*ReturnStatement)
		assert.True(t, ok)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a + b * c", "(a + (b * c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"a = b = 5", "(a = (b = 5))"},
		{"a.b.c", "((a . b) . c)"},
		{"a.b = 5", "((a . b) = 5)"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.False(t, program.HasErrors(), "input %q: %v", tt.input, program.Errors)
		require.Len(t, program.Statements, 1)
		stmt, ok := program.Statements[0].(*ExpressionStatement)
		require.True(t, ok)
		assert.Equal(t, tt.want, exprString(stmt.Expr), "input: %q", tt.input)
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, `if (x < y) { x } else { y }`)
	require.False(t, program.HasErrors(), program.Errors)
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ExpressionStatement)
	ifExpr, ok := stmt.Expr.(*IfExpression)
	require.True(t, ok)
	require.NotNil(t, ifExpr.Consequence)
	require.NotNil(t, ifExpr.Alternative)
}

func TestFunctionLiteralCapturesFreeIdentifiers(t *testing.T) {
	program := parseProgram(t, `let y = 1; fn(x) { x + y }`)
	require.False(t, program.HasErrors(), program.Errors)
	require.Len(t, program.Statements, 2)

	stmt := program.Statements[1].(*ExpressionStatement)
	fn, ok := stmt.Expr.(*FunctionLiteral)
	require.True(t, ok)
	assert.Equal(t, []string{"y"}, fn.Capture)
}

func TestCollectionLiteralVsBlockDisambiguation(t *testing.T) {
	program := parseProgram(t, `{ .x = 1, .y = 2 }`)
	require.False(t, program.HasErrors(), program.Errors)
	stmt := program.Statements[0].(*ExpressionStatement)
	coll, ok := stmt.Expr.(*CollectionLiteral)
	require.True(t, ok)
	assert.Len(t, coll.Members, 2)

	program2 := parseProgram(t, `{ x = 5; x }`)
	require.False(t, program2.HasErrors(), program2.Errors)
	stmt2 := program2.Statements[0].(*ExpressionStatement)
	_, isBlock := stmt2.Expr.(*BlockExpression)
	assert.True(t, isBlock)
}

func TestParseErrorsCollectPastFirstFailure(t *testing.T) {
	program := parseProgram(t, `let = 5; let y = ;`)
	assert.True(t, program.HasErrors())
	assert.GreaterOrEqual(t, len(program.Errors), 3)
}

// exprString renders an expression in a fully-parenthesized form,
// exposing exactly how the parser resolved precedence and associativity.
func exprString(expr Expression) string {
	switch e := expr.(type) {
	case *Identifier:
		return e.Name
	case *IntegerLiteral:
		return e.Token.Literal
	case *BooleanLiteral:
		return e.Token.Literal
	case *StringLiteral:
		return e.Value
	case *PrefixExpression:
		return "(" + e.Operator + exprString(e.Right) + ")"
	case *InfixExpression:
		return "(" + exprString(e.Left) + " " + e.Operator + " " + exprString(e.Right) + ")"
	case *AssignExpression:
		return "(" + exprString(e.Target) + " " + e.Operator + " " + exprString(e.Value) + ")"
	case *AccessExpression:
		return "(" + exprString(e.Object) + " . " + e.Name + ")"
	case *CallExpression:
		s := exprString(e.Function) + "("
		for i, arg := range e.Arguments {
			if i > 0 {
				s += ", "
			}
			s += exprString(arg)
		}
		return s + ")"
	case *IndexExpression:
		return "(" + exprString(e.Left) + "[" + exprString(e.Index) + "])"
	default:
		return "?"
	}
}
