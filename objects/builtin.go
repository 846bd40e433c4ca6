/*
File    : mlang/objects/builtin.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

// BuiltinFunc is the signature every preloaded built-in implements: a
// list of already-evaluated argument values in, a result value or an
// error out.
type BuiltinFunc func(args []Value) (Value, error)

// Builtin is an opaque callable preloaded into every frame's outermost
// scope (len, print, exit, yeet). It carries no AST and no capture list;
// Fn is invoked directly by the evaluator on a call expression.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (b *Builtin) Kind() Kind { return BuiltinKind }

func (b *Builtin) Table() VTable {
	return VTable{
		"truthy": func(arg Value) (Value, error) {
			return b, nil
		},
		"str": func(arg Value) (Value, error) {
			return &Str{Value: "<builtin " + b.Name + ">"}, nil
		},
	}
}
