/*
File    : mlang/objects/unit.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

// Unit is the value of an if-expression with no matching branch, an empty
// block, and the built-ins that act only for effect. It has no payload and
// is always falsy: its "truthy" slot exists but always returns an absent
// result.
type Unit struct{}

func (u *Unit) Kind() Kind { return UnitKind }

func (u *Unit) Table() VTable {
	return VTable{
		"truthy": func(arg Value) (Value, error) {
			return nil, nil
		},
		"str": func(arg Value) (Value, error) {
			return &Str{Value: "null"}, nil
		},
	}
}
