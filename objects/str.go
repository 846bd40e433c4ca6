/*
File    : mlang/objects/str.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import "fmt"

// Str is a string value.
type Str struct {
	Value string
}

func (s *Str) Kind() Kind { return StringKind }

func (s *Str) Table() VTable {
	return VTable{
		"add_lhs": func(arg Value) (Value, error) {
			rhs, ok := arg.(*Str)
			if !ok {
				return nil, typeMismatch("+", s, arg)
			}
			return &Str{Value: s.Value + rhs.Value}, nil
		},
		"eq_lhs": func(arg Value) (Value, error) {
			rhs, ok := arg.(*Str)
			if !ok {
				return nil, typeMismatch("==", s, arg)
			}
			return &Bool{Value: s.Value == rhs.Value}, nil
		},
		"neq_lhs": func(arg Value) (Value, error) {
			rhs, ok := arg.(*Str)
			if !ok {
				return nil, typeMismatch("!=", s, arg)
			}
			return &Bool{Value: s.Value != rhs.Value}, nil
		},
		"idx": func(arg Value) (Value, error) {
			idx, ok := arg.(*Integer)
			if !ok {
				return nil, typeMismatch("idx", s, arg)
			}
			runes := []rune(s.Value)
			if idx.Value < 0 || idx.Value >= int32(len(runes)) {
				return nil, fmt.Errorf("index %d out of bounds for string of length %d", idx.Value, len(runes))
			}
			return &Str{Value: string(runes[idx.Value])}, nil
		},
		"len": func(arg Value) (Value, error) {
			return &Integer{Value: int32(len([]rune(s.Value)))}, nil
		},
		"truthy": func(arg Value) (Value, error) {
			if s.Value == "" {
				return nil, nil
			}
			return s, nil
		},
		"str": func(arg Value) (Value, error) {
			return &Str{Value: s.Value}, nil
		},
	}
}
