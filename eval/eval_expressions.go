/*
File    : mlang/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/mlang/objects"
	"github.com/akashmaji946/mlang/parser"
)

// infixSlots maps an infix operator's literal text to the method-table
// slot it dispatches, exactly the fixed table spec'd for the language.
// `&&` and `||` never reach here: the parser has no infix handler for
// either, so an attempt to use one fails during parsing, not evaluation.
var infixSlots = map[string]string{
	"+":  "add_lhs",
	"-":  "sub_lhs",
	"*":  "mul_lhs",
	"/":  "div_lhs",
	"==": "eq_lhs",
	"!=": "neq_lhs",
	"<":  "le_lhs",
	"<=": "leq_lhs",
	">":  "ge_lhs",
	">=": "geq_lhs",
	"&":  "ins_lhs",
	"|":  "uni_lhs",
}

func (e *Evaluator) evalExpression(expr parser.Expression) (Flow, error) {
	switch x := expr.(type) {
	case *parser.IntegerLiteral:
		return Continue(&objects.Integer{Value: x.Value}), nil
	case *parser.StringLiteral:
		return Continue(&objects.Str{Value: x.Value}), nil
	case *parser.BooleanLiteral:
		return Continue(&objects.Bool{Value: x.Value}), nil
	case *parser.Identifier:
		return e.evalIdentifier(x)
	case *parser.PrefixExpression:
		return e.evalPrefixExpression(x)
	case *parser.InfixExpression:
		return e.evalInfixExpression(x)
	case *parser.AssignExpression:
		return e.evalAssignExpression(x)
	case *parser.AccessExpression:
		return e.evalAccessExpression(x)
	case *parser.BlockExpression:
		return e.evalBlockExpression(x)
	case *parser.IfExpression:
		return e.evalIfExpression(x)
	case *parser.FunctionLiteral:
		return e.evalFunctionLiteral(x)
	case *parser.CallExpression:
		return e.evalCallExpression(x)
	case *parser.IndexExpression:
		return e.evalIndexExpression(x)
	case *parser.VectorLiteral:
		return e.evalVectorLiteral(x)
	case *parser.CollectionLiteral:
		return e.evalCollectionLiteral(x)
	default:
		return Flow{}, evalErrorf("unknown expression type %T", expr)
	}
}

func (e *Evaluator) evalIdentifier(id *parser.Identifier) (Flow, error) {
	val, ok := e.Env.Get(id.Name)
	if !ok {
		return Flow{}, evalErrorf("variable not found: %s", id.Name)
	}
	return Continue(val), nil
}

func (e *Evaluator) evalPrefixExpression(p *parser.PrefixExpression) (Flow, error) {
	flow, err := e.evalExpression(p.Right)
	if err != nil {
		return Flow{}, err
	}
	if flow.IsBreak() {
		return flow, nil
	}

	var slot string
	switch p.Operator {
	case "!":
		slot = "inv"
	case "-":
		slot = "neg"
	default:
		return Flow{}, evalErrorf("unknown prefix operator: %s", p.Operator)
	}

	result, err := objects.Dispatch(flow.Unwrap(), slot, nil)
	if err != nil {
		return Flow{}, evalErrorf("%s", err)
	}
	if result == nil {
		result = &objects.Unit{}
	}
	return Continue(result), nil
}

func (e *Evaluator) evalInfixExpression(inf *parser.InfixExpression) (Flow, error) {
	leftFlow, err := e.evalExpression(inf.Left)
	if err != nil {
		return Flow{}, err
	}
	if leftFlow.IsBreak() {
		return leftFlow, nil
	}

	rightFlow, err := e.evalExpression(inf.Right)
	if err != nil {
		return Flow{}, err
	}
	if rightFlow.IsBreak() {
		return rightFlow, nil
	}

	slot, ok := infixSlots[inf.Operator]
	if !ok {
		return Flow{}, evalErrorf("unsupported operator for types: %s", inf.Operator)
	}

	left := leftFlow.Unwrap()
	result, err := objects.Dispatch(left, slot, rightFlow.Unwrap())
	if err != nil || result == nil {
		return Flow{}, evalErrorf("unsupported operator for types: %s %s %s", left.Kind(), inf.Operator, rightFlow.Unwrap().Kind())
	}
	return Continue(result), nil
}

func (e *Evaluator) evalBlockExpression(b *parser.BlockExpression) (Flow, error) {
	e.Env.Push()
	defer e.Env.Pop()
	return e.evalStatements(b.Statements)
}

func (e *Evaluator) evalIfExpression(ifExpr *parser.IfExpression) (Flow, error) {
	condFlow, err := e.evalExpression(ifExpr.Condition)
	if err != nil {
		return Flow{}, err
	}
	if condFlow.IsBreak() {
		return condFlow, nil
	}

	truthy, err := objects.Truthy(condFlow.Unwrap())
	if err != nil {
		return Flow{}, evalErrorf("%s", err)
	}

	if truthy {
		return e.evalBlockExpression(ifExpr.Consequence)
	}
	if ifExpr.Alternative != nil {
		return e.evalBlockExpression(ifExpr.Alternative)
	}
	return Continue(&objects.Unit{}), nil
}

func (e *Evaluator) evalVectorLiteral(v *parser.VectorLiteral) (Flow, error) {
	elements := make([]objects.Value, 0, len(v.Elements))
	for _, elemExpr := range v.Elements {
		flow, err := e.evalExpression(elemExpr)
		if err != nil {
			return Flow{}, err
		}
		if flow.IsBreak() {
			return flow, nil
		}
		elements = append(elements, flow.Unwrap())
	}
	return Continue(&objects.Vector{Elements: elements}), nil
}

func (e *Evaluator) evalCollectionLiteral(c *parser.CollectionLiteral) (Flow, error) {
	members := make(map[string]objects.Value, len(c.Members))
	for _, entry := range c.Members {
		flow, err := e.evalExpression(entry.Value)
		if err != nil {
			return Flow{}, err
		}
		if flow.IsBreak() {
			return flow, nil
		}
		members[entry.Name] = flow.Unwrap()
	}
	return Continue(&objects.Collection{Members: members}), nil
}

func (e *Evaluator) evalIndexExpression(idx *parser.IndexExpression) (Flow, error) {
	leftFlow, err := e.evalExpression(idx.Left)
	if err != nil {
		return Flow{}, err
	}
	if leftFlow.IsBreak() {
		return leftFlow, nil
	}

	indexFlow, err := e.evalExpression(idx.Index)
	if err != nil {
		return Flow{}, err
	}
	if indexFlow.IsBreak() {
		return indexFlow, nil
	}

	result, err := objects.Dispatch(leftFlow.Unwrap(), "idx", indexFlow.Unwrap())
	if err != nil {
		return Flow{}, evalErrorf("indexing not supported: %s", err)
	}
	if result == nil {
		result = &objects.Unit{}
	}
	return Continue(result), nil
}
