/*
File    : mlang/eval/eval_function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/mlang/objects"
	"github.com/akashmaji946/mlang/parser"
)

// evalFunctionLiteral builds the Function value for an `fn(...) {...}`
// expression, snapshotting every name on its parser-computed Capture list
// at this exact moment. A capture name that happens not to resolve here
// (a typo, or a name only ever used down a branch this call never takes)
// is simply omitted — if the function body really needs it, evaluating
// that identifier at call time fails with the ordinary "variable not
// found" error, same as any other unbound name.
func (e *Evaluator) evalFunctionLiteral(lit *parser.FunctionLiteral) (Flow, error) {
	params := make([]string, len(lit.Parameters))
	for i, p := range lit.Parameters {
		params[i] = p.Name
	}

	capture := make(map[string]objects.Value, len(lit.Capture))
	for _, name := range lit.Capture {
		if val, ok := e.Env.Get(name); ok {
			capture[name] = val
		}
	}

	return Continue(&objects.Function{Params: params, Body: lit.Body, Capture: capture}), nil
}

// evalCallExpression evaluates the callee and its arguments left to
// right, then dispatches to a Builtin's Go function or pushes a fresh
// activation frame for a Function. A `return` inside a Function body
// unwinds only that far: the Break it produces is absorbed here and
// handed back to the caller as an ordinary Continue.
func (e *Evaluator) evalCallExpression(call *parser.CallExpression) (Flow, error) {
	calleeFlow, err := e.evalExpression(call.Function)
	if err != nil {
		return Flow{}, err
	}
	if calleeFlow.IsBreak() {
		return calleeFlow, nil
	}

	args := make([]objects.Value, 0, len(call.Arguments))
	for _, argExpr := range call.Arguments {
		argFlow, err := e.evalExpression(argExpr)
		if err != nil {
			return Flow{}, err
		}
		if argFlow.IsBreak() {
			return argFlow, nil
		}
		args = append(args, argFlow.Unwrap())
	}

	switch callee := calleeFlow.Unwrap().(type) {
	case *objects.Builtin:
		result, err := callee.Fn(args)
		if err != nil {
			return Flow{}, evalErrorf("%s", err)
		}
		if result == nil {
			result = &objects.Unit{}
		}
		return Continue(result), nil

	case *objects.Function:
		if len(callee.Params) != len(args) {
			return Flow{}, evalErrorf("wrong number of arguments: want %d, got %d", len(callee.Params), len(args))
		}

		e.Env.PushFrame()
		defer e.Env.PopFrame()

		for name, val := range callee.Capture {
			e.Env.Add(name, val)
		}
		for i, name := range callee.Params {
			e.Env.Add(name, args[i])
		}

		bodyFlow, err := e.evalBlockExpression(callee.Body)
		if err != nil {
			return Flow{}, err
		}
		return Continue(bodyFlow.Unwrap()), nil

	default:
		return Flow{}, evalErrorf("non-function invocation: %s", calleeFlow.Unwrap().Kind())
	}
}
