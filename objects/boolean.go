/*
File    : mlang/objects/boolean.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

// Bool is a boolean value. Its "neg" and "inv" slots are wired
// identically — both simply negate — mirroring the reference value
// model's treatment of Bool, where "negate" and "invert" coincide.
type Bool struct {
	Value bool
}

func (b *Bool) Kind() Kind { return BoolKind }

func (b *Bool) Table() VTable {
	flip := func(arg Value) (Value, error) {
		return &Bool{Value: !b.Value}, nil
	}

	return VTable{
		"eq_lhs": func(arg Value) (Value, error) {
			rhs, ok := arg.(*Bool)
			if !ok {
				return nil, typeMismatch("==", b, arg)
			}
			return &Bool{Value: b.Value == rhs.Value}, nil
		},
		"neq_lhs": func(arg Value) (Value, error) {
			rhs, ok := arg.(*Bool)
			if !ok {
				return nil, typeMismatch("!=", b, arg)
			}
			return &Bool{Value: b.Value != rhs.Value}, nil
		},
		"neg": flip,
		"inv": flip,
		// Absent (falsy) for false, present for true — the one case where
		// "truthy" tracks the value's own meaning exactly.
		"truthy": func(arg Value) (Value, error) {
			if !b.Value {
				return nil, nil
			}
			return b, nil
		},
		"str": func(arg Value) (Value, error) {
			if b.Value {
				return &Str{Value: "true"}, nil
			}
			return &Str{Value: "false"}, nil
		},
	}
}
