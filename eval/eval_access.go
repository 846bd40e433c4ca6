/*
File    : mlang/eval/eval_access.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/mlang/objects"
	"github.com/akashmaji946/mlang/parser"
)

// evalAccessExpression reads `object.name`. The accessor name is taken
// verbatim from the AST — it is never itself evaluated as an expression.
func (e *Evaluator) evalAccessExpression(a *parser.AccessExpression) (Flow, error) {
	objFlow, err := e.evalExpression(a.Object)
	if err != nil {
		return Flow{}, err
	}
	if objFlow.IsBreak() {
		return objFlow, nil
	}

	coll, ok := objFlow.Unwrap().(*objects.Collection)
	if !ok {
		return Flow{}, evalErrorf("cannot access member %q of %s", a.Name, objFlow.Unwrap().Kind())
	}
	val, ok := coll.Members[a.Name]
	if !ok {
		return Flow{}, evalErrorf("no such member: %s", a.Name)
	}
	return Continue(val), nil
}

// assignAccess implements `object.name = value` via copy-on-write: a
// fresh Collection is built with name rebound, then that new Collection
// is stored back wherever `object` resolved from — an identifier's
// binding, or (recursively) another access expression's own
// copy-on-write rebuild. Aliases of the original Collection never
// observe the update; only the binding chain leading to this assignment
// does.
func (e *Evaluator) assignAccess(target *parser.AccessExpression, value objects.Value) error {
	objFlow, err := e.evalExpression(target.Object)
	if err != nil {
		return err
	}
	if objFlow.IsBreak() {
		return evalErrorf("return cannot appear in an assignment target")
	}

	coll, ok := objFlow.Unwrap().(*objects.Collection)
	if !ok {
		return evalErrorf("cannot assign member %q of %s", target.Name, objFlow.Unwrap().Kind())
	}
	updated := coll.With(target.Name, value)

	switch obj := target.Object.(type) {
	case *parser.Identifier:
		e.Env.Assign(obj.Name, updated)
		return nil
	case *parser.AccessExpression:
		return e.assignAccess(obj, updated)
	default:
		return evalErrorf("invalid assignment target")
	}
}
