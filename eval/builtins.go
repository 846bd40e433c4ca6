/*
File    : mlang/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/mlang/objects"
)

// builtins returns the preloaded names every frame starts with: len,
// print, and the two spellings of the process-exit built-in. print
// writes through e.Out so the REPL and file-execution modes can each
// point it at the right writer.
func (e *Evaluator) builtins() map[string]objects.Value {
	names := map[string]objects.BuiltinFunc{
		"len":   builtinLen,
		"print": e.builtinPrint,
		"exit":  builtinExit,
		"yeet":  builtinExit,
	}

	out := make(map[string]objects.Value, len(names))
	for name, fn := range names {
		out[name] = &objects.Builtin{Name: name, Fn: fn}
	}
	return out
}

func builtinLen(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("len: wrong number of arguments: want 1, got %d", len(args))
	}
	result, err := objects.Dispatch(args[0], "len", nil)
	if err != nil {
		return nil, fmt.Errorf("len: %s", err)
	}
	if _, ok := result.(*objects.Integer); !ok {
		return nil, fmt.Errorf("len: %s has no length", args[0].Kind())
	}
	return result, nil
}

func (e *Evaluator) builtinPrint(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("print: wrong number of arguments: want 1, got %d", len(args))
	}
	text, err := objects.Str(args[0])
	if err != nil {
		return nil, fmt.Errorf("print: %s", err)
	}
	fmt.Fprintln(e.Out, text)
	return &objects.Unit{}, nil
}

func builtinExit(args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("exit: wrong number of arguments: want 0, got %d", len(args))
	}
	osExit(0)
	return &objects.Unit{}, nil
}
