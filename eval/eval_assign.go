/*
File    : mlang/eval/eval_assign.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/mlang/objects"
	"github.com/akashmaji946/mlang/parser"
)

// compoundSlots maps a compound-assignment operator to the method-table
// slot it reads the current value through before storing the result.
var compoundSlots = map[string]string{
	"+=": "add_lhs",
	"-=": "sub_lhs",
}

// evalAssignExpression handles `=`, `+=`, and `-=`. The target is always
// an Identifier or an AccessExpression (the parser rejects anything
// else). A compound operator first evaluates the target's current value
// through the same expression evaluator used everywhere else, so `+=` on
// an access target reads via evalAccessExpression and writes back via
// the same copy-on-write path plain `=` uses.
func (e *Evaluator) evalAssignExpression(a *parser.AssignExpression) (Flow, error) {
	rhsFlow, err := e.evalExpression(a.Value)
	if err != nil {
		return Flow{}, err
	}
	if rhsFlow.IsBreak() {
		return rhsFlow, nil
	}
	newValue := rhsFlow.Unwrap()

	if slot, ok := compoundSlots[a.Operator]; ok {
		curFlow, err := e.evalExpression(a.Target)
		if err != nil {
			return Flow{}, err
		}
		if curFlow.IsBreak() {
			return curFlow, nil
		}
		result, err := objects.Dispatch(curFlow.Unwrap(), slot, newValue)
		if err != nil || result == nil {
			return Flow{}, evalErrorf("unsupported operator for types: %s %s %s", curFlow.Unwrap().Kind(), a.Operator, newValue.Kind())
		}
		newValue = result
	}

	switch target := a.Target.(type) {
	case *parser.Identifier:
		e.Env.Assign(target.Name, newValue)
	case *parser.AccessExpression:
		if err := e.assignAccess(target, newValue); err != nil {
			return Flow{}, err
		}
	default:
		return Flow{}, evalErrorf("invalid assignment target")
	}

	return Continue(newValue), nil
}
