/*
File    : mlang/objects/objects_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchMissingSlotIsUnsupportedOperation(t *testing.T) {
	_, err := Dispatch(&Integer{Value: 1}, "uni_lhs", &Integer{Value: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported operation")
	assert.Contains(t, err.Error(), "Integer")
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"zero integer", &Integer{Value: 0}, false},
		{"nonzero integer", &Integer{Value: -3}, true},
		{"false bool", &Bool{Value: false}, false},
		{"true bool", &Bool{Value: true}, true},
		{"empty string", &Str{Value: ""}, false},
		{"nonempty string", &Str{Value: "x"}, true},
		{"unit", &Unit{}, false},
		{"vector", &Vector{Elements: []Value{&Integer{Value: 1}}}, false},
		{"collection", &Collection{Members: map[string]Value{}}, false},
		{"function", &Function{}, true},
		{"builtin", &Builtin{Name: "len"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Truthy(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrHelper(t *testing.T) {
	s, err := Str(&Integer{Value: 42})
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	s, err = Str(&Unit{})
	require.NoError(t, err)
	assert.Equal(t, "null", s)
}

func TestIntegerArithmeticAndComparison(t *testing.T) {
	sum, err := Dispatch(&Integer{Value: 3}, "add_lhs", &Integer{Value: 4})
	require.NoError(t, err)
	assert.Equal(t, int32(7), sum.(*Integer).Value)

	_, err = Dispatch(&Integer{Value: 1}, "div_lhs", &Integer{Value: 0})
	assert.ErrorContains(t, err, "division by zero")

	lt, err := Dispatch(&Integer{Value: 2}, "le_lhs", &Integer{Value: 5})
	require.NoError(t, err)
	assert.True(t, lt.(*Bool).Value)

	_, err = Dispatch(&Integer{Value: 2}, "add_lhs", &Str{Value: "x"})
	assert.ErrorContains(t, err, "type mismatch")
}

func TestBoolNegAndInv(t *testing.T) {
	flipped, err := Dispatch(&Bool{Value: true}, "neg", nil)
	require.NoError(t, err)
	assert.False(t, flipped.(*Bool).Value)

	flipped, err = Dispatch(&Bool{Value: false}, "inv", nil)
	require.NoError(t, err)
	assert.True(t, flipped.(*Bool).Value)
}

func TestStrIndexAndLen(t *testing.T) {
	s := &Str{Value: "hello"}

	n, err := Dispatch(s, "len", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(5), n.(*Integer).Value)

	ch, err := Dispatch(s, "idx", &Integer{Value: 1})
	require.NoError(t, err)
	assert.Equal(t, "e", ch.(*Str).Value)

	_, err = Dispatch(s, "idx", &Integer{Value: 99})
	assert.ErrorContains(t, err, "out of bounds")
}

func TestVectorConcatLenAndOutOfRangeIndex(t *testing.T) {
	a := &Vector{Elements: []Value{&Integer{Value: 1}, &Integer{Value: 2}}}
	b := &Vector{Elements: []Value{&Integer{Value: 3}}}

	combined, err := Dispatch(a, "add_lhs", b)
	require.NoError(t, err)
	assert.Len(t, combined.(*Vector).Elements, 3)

	n, err := Dispatch(a, "len", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), n.(*Integer).Value)

	out, err := Dispatch(a, "idx", &Integer{Value: 50})
	require.NoError(t, err)
	assert.IsType(t, &Unit{}, out)

	s, err := Str(a)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]", s)
}

func TestCollectionWithIsCopyOnWrite(t *testing.T) {
	original := &Collection{Members: map[string]Value{"x": &Integer{Value: 1}}}
	updated := original.With("x", &Integer{Value: 2})

	assert.Equal(t, int32(1), original.Members["x"].(*Integer).Value)
	assert.Equal(t, int32(2), updated.Members["x"].(*Integer).Value)
}

func TestCollectionUnionAndIntersection(t *testing.T) {
	a := &Collection{Members: map[string]Value{"x": &Integer{Value: 1}, "y": &Integer{Value: 2}}}
	b := &Collection{Members: map[string]Value{"y": &Integer{Value: 9}, "z": &Integer{Value: 3}}}

	union, err := Dispatch(a, "uni_lhs", b)
	require.NoError(t, err)
	u := union.(*Collection)
	assert.Equal(t, int32(1), u.Members["x"].(*Integer).Value)
	assert.Equal(t, int32(9), u.Members["y"].(*Integer).Value)
	assert.Equal(t, int32(3), u.Members["z"].(*Integer).Value)

	inter, err := Dispatch(a, "ins_lhs", b)
	require.NoError(t, err)
	n := inter.(*Collection)
	assert.Len(t, n.Members, 1)
	assert.Equal(t, int32(2), n.Members["y"].(*Integer).Value)
}

func TestCollectionStrIsSortedByName(t *testing.T) {
	c := &Collection{Members: map[string]Value{"b": &Integer{Value: 2}, "a": &Integer{Value: 1}}}
	s, err := Str(c)
	require.NoError(t, err)
	assert.Equal(t, "{ .a = 1, .b = 2 }", s)
}

func TestFunctionStrReportsParamCount(t *testing.T) {
	f := &Function{Params: []string{"a", "b"}}
	s, err := Str(f)
	require.NoError(t, err)
	assert.Equal(t, "<function(2 params)>", s)
}

func TestBuiltinStrReportsName(t *testing.T) {
	b := &Builtin{Name: "len"}
	s, err := Str(b)
	require.NoError(t, err)
	assert.Equal(t, "<builtin len>", s)
}
