/*
File    : mlang/eval/flow.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/mlang/objects"

// Flow is the carrier every evaluation step returns: either an ordinary
// result (Continue) or a return-initiated unwind (Break). Evaluating a
// `return` expression produces a Break; Block, If, and Program propagate
// a Break from any of their statements unchanged; a function call is the
// only place a Break is caught and turned back into a Continue, which is
// how `return` exits exactly the enclosing call and nothing further out.
type Flow struct {
	Value    objects.Value
	isReturn bool
}

// Continue wraps an ordinary evaluation result.
func Continue(v objects.Value) Flow { return Flow{Value: v} }

// Break wraps a `return`-initiated unwind.
func Break(v objects.Value) Flow { return Flow{Value: v, isReturn: true} }

// IsBreak reports whether f is unwinding toward a call boundary.
func (f Flow) IsBreak() bool { return f.isReturn }

// Unwrap strips the Break/Continue distinction, returning the carried
// value either way. Used at a call boundary, where a Break is absorbed.
func (f Flow) Unwrap() objects.Value { return f.Value }
