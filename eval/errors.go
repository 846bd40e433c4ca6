/*
File    : mlang/eval/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "fmt"

// EvalError is the evaluator's single error kind: a human-readable
// message, nothing more. Unlike parser.ParseError there is no taxonomy of
// sub-kinds — every runtime failure short-circuits evaluation the same
// way, so there is nothing for callers to branch on beyond the message.
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string { return e.Message }

func evalErrorf(format string, args ...interface{}) *EvalError {
	return &EvalError{Message: fmt.Sprintf(format, args...)}
}
