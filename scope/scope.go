/*
File    : mlang/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements the evaluator's environment: a stack of
// activation frames, each itself a stack of lexical scopes. Function
// calls push and pop frames; blocks push and pop scopes within the
// current frame. A frame's scopes are invisible to every other frame —
// a function body can only ever see its parameters, its closure's
// captured names, and the scopes it pushes itself. Outer frames reach a
// function body only through the Capture map baked into its Function
// value at declaration time.
package scope

import "github.com/akashmaji946/mlang/objects"

// binding is one entry on a name's value stack: the value bound to it,
// and the scope depth (0-indexed from the base of the current frame) at
// which that binding was introduced. Popping a scope at depth d discards
// every binding's entry whose depth equals d — and only those.
type binding struct {
	value objects.Value
	depth int
}

// lexicalScope is one frame-local lexical level: the set of names
// introduced at this depth, used by Pop to know which bindings to unwind.
type lexicalScope struct {
	names map[string]bool
}

func newLexicalScope() *lexicalScope {
	return &lexicalScope{names: make(map[string]bool)}
}

// frame is the environment slice pushed when entering a function call.
// bindings maps a name to its stack of (value, depth) pairs, most recent
// binding on top; scopes is the stack of lexical levels currently open
// in this frame.
type frame struct {
	scopes   []*lexicalScope
	bindings map[string][]binding
}

func newFrame() *frame {
	return &frame{
		scopes:   []*lexicalScope{newLexicalScope()},
		bindings: make(map[string][]binding),
	}
}

func (f *frame) depth() int { return len(f.scopes) - 1 }

func (f *frame) currentScope() *lexicalScope { return f.scopes[len(f.scopes)-1] }

// Environment is the full frame stack. A fresh Environment starts with
// one frame (the program's top-level frame) already pushed.
type Environment struct {
	frames    []*frame
	builtins  map[string]objects.Value
	builtinOf []string // builtin names, in map iteration order, for re-seeding new frames
}

// New creates an Environment whose every frame is pre-populated with
// builtins at scope depth 0, as PushFrame describes.
func New(builtins map[string]objects.Value) *Environment {
	order := make([]string, 0, len(builtins))
	for name := range builtins {
		order = append(order, name)
	}
	env := &Environment{builtins: builtins, builtinOf: order}
	env.PushFrame()
	return env
}

// PushFrame enters a new activation frame, pre-populated with the
// preloaded built-ins at scope depth 0. Used at every function call
// boundary (and once, for the top-level program).
func (e *Environment) PushFrame() {
	f := newFrame()
	e.frames = append(e.frames, f)
	for _, name := range e.builtinOf {
		e.Add(name, e.builtins[name])
	}
}

// PopFrame discards the current activation frame. Used when a function
// call returns.
func (e *Environment) PopFrame() {
	e.frames = e.frames[:len(e.frames)-1]
}

func (e *Environment) current() *frame {
	return e.frames[len(e.frames)-1]
}

// Push enters a new lexical scope within the current frame. Used when
// evaluating a block expression.
func (e *Environment) Push() {
	f := e.current()
	f.scopes = append(f.scopes, newLexicalScope())
}

// Pop leaves the innermost lexical scope of the current frame. Every
// name introduced at that depth has all of its binding entries at that
// depth discarded — and only those, so a name shadowed at a shallower
// depth is correctly restored.
func (e *Environment) Pop() {
	f := e.current()
	depth := f.depth()
	scope := f.currentScope()

	for name := range scope.names {
		stack := f.bindings[name]
		for len(stack) > 0 && stack[len(stack)-1].depth == depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			delete(f.bindings, name)
		} else {
			f.bindings[name] = stack
		}
	}

	f.scopes = f.scopes[:len(f.scopes)-1]
}

// Add introduces a brand new binding for name in the current frame's
// innermost scope, shadowing any existing binding of the same name at an
// outer depth. Used for `let` and for binding function parameters and
// captures on call entry.
func (e *Environment) Add(name string, value objects.Value) {
	f := e.current()
	depth := f.depth()
	f.bindings[name] = append(f.bindings[name], binding{value: value, depth: depth})
	f.currentScope().names[name] = true
}

// Assign rebinds name in the current scope: if a binding already exists
// at the current depth it is replaced in place, otherwise a new one is
// added (matching Add). Assign never reaches into an outer depth — a
// plain `x = 5` on an unbound name declares it in the current scope, the
// same way `let` does.
func (e *Environment) Assign(name string, value objects.Value) {
	f := e.current()
	depth := f.depth()
	stack := f.bindings[name]
	if len(stack) > 0 && stack[len(stack)-1].depth == depth {
		stack[len(stack)-1].value = value
		return
	}
	e.Add(name, value)
}

// Get returns the innermost binding of name visible in the current
// frame, or false if it is unbound there. Names bound in an outer frame
// are never visible — that is the whole point of PushFrame/PopFrame.
func (e *Environment) Get(name string) (objects.Value, bool) {
	stack := e.current().bindings[name]
	if len(stack) == 0 {
		return nil, false
	}
	return stack[len(stack)-1].value, true
}
