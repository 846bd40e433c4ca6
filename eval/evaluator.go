/*
File    : mlang/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks the AST the parser produces and threads a Flow
// signal through it to implement `return`. Every operator, index, and
// coercion to string is resolved by dispatching into a value's method
// table (see the objects package); eval itself never type-switches on
// runtime value kind to decide whether `+` is legal, only on AST node
// kind to decide what to evaluate next.
package eval

import (
	"io"

	"github.com/akashmaji946/mlang/objects"
	"github.com/akashmaji946/mlang/parser"
	"github.com/akashmaji946/mlang/scope"
)

// Evaluator is a single-threaded, synchronous tree-walking interpreter.
// It owns the environment stack (scope.Environment) and the writer the
// `print` builtin writes to.
type Evaluator struct {
	Env *scope.Environment
	Out io.Writer
}

// New creates an Evaluator with a fresh top-level frame, its builtins
// preloaded, printing to out.
func New(out io.Writer) *Evaluator {
	e := &Evaluator{Out: out}
	e.Env = scope.New(e.builtins())
	return e
}

// Eval runs a whole program: its statements share the top-level frame's
// initial scope (no extra push, unlike a block), so `let` at the top
// level stays visible to every later top-level statement.
func (e *Evaluator) Eval(program *parser.Program) (objects.Value, error) {
	flow, err := e.evalStatements(program.Statements)
	if err != nil {
		return nil, err
	}
	return flow.Unwrap(), nil
}

// evalStatements evaluates a sequence of statements in the current
// scope, returning the last one's Flow (or Continue(Unit) if the
// sequence is empty). A Break from any statement stops the sequence
// immediately and propagates unchanged.
func (e *Evaluator) evalStatements(statements []parser.Statement) (Flow, error) {
	result := Continue(&objects.Unit{})
	for _, stmt := range statements {
		flow, err := e.evalStatement(stmt)
		if err != nil {
			return Flow{}, err
		}
		result = flow
		if flow.IsBreak() {
			return result, nil
		}
	}
	return result, nil
}

func (e *Evaluator) evalStatement(stmt parser.Statement) (Flow, error) {
	switch s := stmt.(type) {
	case *parser.LetStatement:
		return e.evalLetStatement(s)
	case *parser.ReturnStatement:
		return e.evalReturnStatement(s)
	case *parser.ExpressionStatement:
		return e.evalExpression(s.Expr)
	default:
		return Flow{}, evalErrorf("unknown statement type %T", stmt)
	}
}

func (e *Evaluator) evalLetStatement(s *parser.LetStatement) (Flow, error) {
	flow, err := e.evalExpression(s.Value)
	if err != nil {
		return Flow{}, err
	}
	if flow.IsBreak() {
		return flow, nil
	}
	e.Env.Add(s.Name.Name, flow.Unwrap())
	return Continue(flow.Unwrap()), nil
}

func (e *Evaluator) evalReturnStatement(s *parser.ReturnStatement) (Flow, error) {
	flow, err := e.evalExpression(s.Value)
	if err != nil {
		return Flow{}, err
	}
	if flow.IsBreak() {
		return flow, nil
	}
	return Break(flow.Unwrap()), nil
}
