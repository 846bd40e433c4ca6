/*
File    : mlang/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a Pratt parser (top-down operator precedence
// parser) that turns a token stream from lexer into an Abstract Syntax
// Tree. The parser performs no evaluation of its own: it only builds the
// tree and collects syntax errors. A separate eval package walks the tree.
package parser

import "github.com/akashmaji946/mlang/lexer"

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
}

// Statement is a node that can appear directly in a block or program body.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of the AST: the full list of top-level statements,
// plus every syntax error encountered while parsing them. Parsing never
// aborts on an error; it recovers at the next statement boundary and keeps
// going so a single Parse call surfaces every mistake at once.
type Program struct {
	Statements []Statement
	Errors     []*ParseError
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// HasErrors reports whether parsing produced any syntax errors.
func (p *Program) HasErrors() bool { return len(p.Errors) > 0 }

// Identifier names a variable, parameter, or collection member.
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }

// LetStatement binds the value of Value to Name in the current scope.
type LetStatement struct {
	Token lexer.Token
	Name  *Identifier
	Value Expression
}

func (l *LetStatement) statementNode()      {}
func (l *LetStatement) TokenLiteral() string { return l.Token.Literal }

// ReturnStatement unwinds evaluation back to the nearest function-call
// boundary, carrying Value as the call's result.
type ReturnStatement struct {
	Token lexer.Token
	Value Expression
}

func (r *ReturnStatement) statementNode()      {}
func (r *ReturnStatement) TokenLiteral() string { return r.Token.Literal }

// ExpressionStatement is a bare expression used as a statement, e.g. a
// call made for its side effect, or the trailing expression whose value
// becomes the value of the enclosing block.
type ExpressionStatement struct {
	Token lexer.Token
	Expr  Expression
}

func (e *ExpressionStatement) statementNode()      {}
func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Literal }

// IntegerLiteral is a signed 32-bit integer constant.
type IntegerLiteral struct {
	Token lexer.Token
	Value int32
}

func (i *IntegerLiteral) expressionNode()      {}
func (i *IntegerLiteral) TokenLiteral() string { return i.Token.Literal }

// StringLiteral is a double-quoted string constant.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }

// BooleanLiteral is the `true` or `false` keyword.
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Literal }

// PrefixExpression is a unary operator applied to Right: `!x` or `-x`.
type PrefixExpression struct {
	Token    lexer.Token
	Operator string
	Right    Expression
}

func (p *PrefixExpression) expressionNode()      {}
func (p *PrefixExpression) TokenLiteral() string { return p.Token.Literal }

// InfixExpression is a binary operator applied to Left and Right.
type InfixExpression struct {
	Token    lexer.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (i *InfixExpression) expressionNode()      {}
func (i *InfixExpression) TokenLiteral() string { return i.Token.Literal }

// AssignExpression assigns (or compound-assigns) Value to Target. Target
// is always either an *Identifier or an *AccessExpression.
type AssignExpression struct {
	Token    lexer.Token
	Operator string // "=", "+=", "-="
	Target   Expression
	Value    Expression
}

func (a *AssignExpression) expressionNode()      {}
func (a *AssignExpression) TokenLiteral() string { return a.Token.Literal }

// AccessExpression is dotted member access: `collection.name`. Name is
// taken verbatim from the token following the dot; it is never itself
// evaluated as an expression.
type AccessExpression struct {
	Token  lexer.Token
	Object Expression
	Name   string
}

func (a *AccessExpression) expressionNode()      {}
func (a *AccessExpression) TokenLiteral() string { return a.Token.Literal }

// BlockExpression is a brace-delimited sequence of statements. A block's
// value is the value of its last statement (Unit if the block is empty; a
// trailing `let` yields the value it bound). Entering a block pushes a new
// lexical scope in the current frame, including a function body's block,
// which sits one scope above the parameters and captures; Program
// statement lists at the top level are evaluated without that extra push.
type BlockExpression struct {
	Token      lexer.Token
	Statements []Statement
}

func (b *BlockExpression) expressionNode()      {}
func (b *BlockExpression) TokenLiteral() string { return b.Token.Literal }

// IfExpression evaluates Condition's `truthy` slot to choose a branch.
// Alternative is nil when there is no `else`.
type IfExpression struct {
	Token       lexer.Token
	Condition   Expression
	Consequence *BlockExpression
	Alternative *BlockExpression
}

func (i *IfExpression) expressionNode()      {}
func (i *IfExpression) TokenLiteral() string { return i.Token.Literal }

// FunctionLiteral is an `fn(params) { body }` expression. Capture lists,
// in order of first appearance, every identifier the body references that
// is neither a parameter nor introduced by a `let` earlier in the body;
// the evaluator snapshots each one's current value when the literal is
// evaluated, giving the resulting Function closure capture-by-value
// semantics.
type FunctionLiteral struct {
	Token      lexer.Token
	Parameters []*Identifier
	Body       *BlockExpression
	Capture    []string
}

func (f *FunctionLiteral) expressionNode()      {}
func (f *FunctionLiteral) TokenLiteral() string { return f.Token.Literal }

// CallExpression invokes Function (a Function value or a builtin) with
// Arguments, evaluated left to right.
type CallExpression struct {
	Token     lexer.Token
	Function  Expression
	Arguments []Expression
}

func (c *CallExpression) expressionNode()      {}
func (c *CallExpression) TokenLiteral() string { return c.Token.Literal }

// IndexExpression is `Left[Index]`, dispatching the `idx` slot on Left.
type IndexExpression struct {
	Token lexer.Token
	Left  Expression
	Index Expression
}

func (i *IndexExpression) expressionNode()      {}
func (i *IndexExpression) TokenLiteral() string { return i.Token.Literal }

// VectorLiteral is `[e1, e2, ...]`, an ordered, homogeneous-in-type-free
// list of values.
type VectorLiteral struct {
	Token    lexer.Token
	Elements []Expression
}

func (v *VectorLiteral) expressionNode()      {}
func (v *VectorLiteral) TokenLiteral() string { return v.Token.Literal }

// CollectionEntry is one `.name = expr` member of a CollectionLiteral.
type CollectionEntry struct {
	Name  string
	Value Expression
}

// CollectionLiteral is `{ .name = expr, .name = expr, ... }`, a
// string-keyed record. The leading dot on every entry disambiguates this
// literal from a BlockExpression at the first token after `{`.
type CollectionLiteral struct {
	Token   lexer.Token
	Members []CollectionEntry
}

func (c *CollectionLiteral) expressionNode()      {}
func (c *CollectionLiteral) TokenLiteral() string { return c.Token.Literal }
