/*
File    : mlang/objects/vector.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"
	"strings"
)

// Vector is an ordered sequence of values. Elements is shared-immutable:
// the language has no index assignment, and every slot that produces a
// new vector (add_lhs) copies the backing slice rather than writing
// through it, matching Str's and Collection's copy-on-write rule.
type Vector struct {
	Elements []Value
}

func (v *Vector) Kind() Kind { return VectorKind }

func (v *Vector) Table() VTable {
	return VTable{
		"add_lhs": func(arg Value) (Value, error) {
			rhs, ok := arg.(*Vector)
			if !ok {
				return nil, typeMismatch("+", v, arg)
			}
			combined := make([]Value, 0, len(v.Elements)+len(rhs.Elements))
			combined = append(combined, v.Elements...)
			combined = append(combined, rhs.Elements...)
			return &Vector{Elements: combined}, nil
		},
		"len": func(arg Value) (Value, error) {
			return &Integer{Value: int32(len(v.Elements))}, nil
		},
		"idx": func(arg Value) (Value, error) {
			idx, ok := arg.(*Integer)
			if !ok {
				return nil, typeMismatch("idx", v, arg)
			}
			if idx.Value < 0 || idx.Value >= int32(len(v.Elements)) {
				return &Unit{}, nil
			}
			return v.Elements[idx.Value], nil
		},
		// Always absent: a Vector is never itself a truthy condition,
		// regardless of how many elements it holds.
		"truthy": func(arg Value) (Value, error) {
			return nil, nil
		},
		"str": func(arg Value) (Value, error) {
			parts := make([]string, len(v.Elements))
			for i, elem := range v.Elements {
				s, err := Str(elem)
				if err != nil {
					return nil, err
				}
				parts[i] = s
			}
			return &Str{Value: fmt.Sprintf("[%s]", strings.Join(parts, ", "))}, nil
		},
	}
}
