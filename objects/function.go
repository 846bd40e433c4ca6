/*
File    : mlang/objects/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"

	"github.com/akashmaji946/mlang/parser"
)

// Function is a user-declared closure. Capture is a value-snapshot of the
// free identifiers the parser found in Body at function-literal parse
// time, taken by the evaluator when the `fn` literal is evaluated — not a
// pointer to the enclosing scope. Calling the function can never observe
// a later mutation of those outer names.
type Function struct {
	Params  []string
	Body    *parser.BlockExpression
	Capture map[string]Value
}

func (f *Function) Kind() Kind { return FunctionKind }

func (f *Function) Table() VTable {
	return VTable{
		// A function is always truthy; there is no meaningful falsy
		// function value.
		"truthy": func(arg Value) (Value, error) {
			return f, nil
		},
		"str": func(arg Value) (Value, error) {
			return &Str{Value: fmt.Sprintf("<function(%d params)>", len(f.Params))}, nil
		},
	}
}
