/*
File    : mlang/objects/integer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"
	"strconv"
)

// Integer is a signed 32-bit integer value.
type Integer struct {
	Value int32
}

func (i *Integer) Kind() Kind { return IntegerKind }

func (i *Integer) Table() VTable {
	arith := func(op string, f func(a, b int32) (int32, error)) Slot {
		return func(arg Value) (Value, error) {
			rhs, ok := arg.(*Integer)
			if !ok {
				return nil, typeMismatch(op, i, arg)
			}
			v, err := f(i.Value, rhs.Value)
			if err != nil {
				return nil, err
			}
			return &Integer{Value: v}, nil
		}
	}
	cmp := func(op string, f func(a, b int32) bool) Slot {
		return func(arg Value) (Value, error) {
			rhs, ok := arg.(*Integer)
			if !ok {
				return nil, typeMismatch(op, i, arg)
			}
			return &Bool{Value: f(i.Value, rhs.Value)}, nil
		}
	}

	return VTable{
		"add_lhs": arith("+", func(a, b int32) (int32, error) { return a + b, nil }),
		"sub_lhs": arith("-", func(a, b int32) (int32, error) { return a - b, nil }),
		"mul_lhs": arith("*", func(a, b int32) (int32, error) { return a * b, nil }),
		"div_lhs": arith("/", func(a, b int32) (int32, error) {
			if b == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return a / b, nil
		}),
		"eq_lhs":  cmp("==", func(a, b int32) bool { return a == b }),
		"neq_lhs": cmp("!=", func(a, b int32) bool { return a != b }),
		"le_lhs":  cmp("<", func(a, b int32) bool { return a < b }),
		"leq_lhs": cmp("<=", func(a, b int32) bool { return a <= b }),
		"ge_lhs":  cmp(">", func(a, b int32) bool { return a > b }),
		"geq_lhs": cmp(">=", func(a, b int32) bool { return a >= b }),
		"neg": func(arg Value) (Value, error) {
			return &Integer{Value: -i.Value}, nil
		},
		// Absent (falsy) only for zero; every other integer, positive or
		// negative, is truthy.
		"truthy": func(arg Value) (Value, error) {
			if i.Value == 0 {
				return nil, nil
			}
			return i, nil
		},
		"str": func(arg Value) (Value, error) {
			return &Str{Value: strconv.FormatInt(int64(i.Value), 10)}, nil
		},
	}
}
