/*
File    : mlang/scope/scope_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/akashmaji946/mlang/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intVal(n int32) objects.Value { return &objects.Integer{Value: n} }

func asInt(t *testing.T, v objects.Value) int32 {
	t.Helper()
	i, ok := v.(*objects.Integer)
	require.True(t, ok, "expected *objects.Integer, got %T", v)
	return i.Value
}

func TestNewEnvironmentSeedsBuiltinsIntoTopFrame(t *testing.T) {
	builtins := map[string]objects.Value{"len": &objects.Builtin{Name: "len"}}
	env := New(builtins)

	v, ok := env.Get("len")
	require.True(t, ok)
	assert.IsType(t, &objects.Builtin{}, v)
}

func TestAddAndGet(t *testing.T) {
	env := New(nil)
	env.Add("x", intVal(1))

	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, int32(1), asInt(t, v))
}

func TestGetUnboundNameFails(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("nope")
	assert.False(t, ok)
}

func TestPushPopRestoresShadowedOuterBinding(t *testing.T) {
	env := New(nil)
	env.Add("x", intVal(1))

	env.Push()
	env.Add("x", intVal(2))
	v, _ := env.Get("x")
	assert.Equal(t, int32(2), asInt(t, v))
	env.Pop()

	v, _ = env.Get("x")
	assert.Equal(t, int32(1), asInt(t, v))
}

func TestPopDiscardsInnerOnlyBinding(t *testing.T) {
	env := New(nil)
	env.Push()
	env.Add("y", intVal(5))
	env.Pop()

	_, ok := env.Get("y")
	assert.False(t, ok)
}

func TestAssignReplacesExistingBindingAtCurrentDepth(t *testing.T) {
	env := New(nil)
	env.Add("x", intVal(1))
	env.Assign("x", intVal(9))

	v, _ := env.Get("x")
	assert.Equal(t, int32(9), asInt(t, v))
}

func TestAssignOnUnboundNameDeclaresItLikeAdd(t *testing.T) {
	env := New(nil)
	env.Assign("z", intVal(3))

	v, ok := env.Get("z")
	require.True(t, ok)
	assert.Equal(t, int32(3), asInt(t, v))
}

func TestAssignInNestedScopeDoesNotReachOuterDepth(t *testing.T) {
	env := New(nil)
	env.Add("x", intVal(1))

	env.Push()
	env.Assign("x", intVal(2))
	v, _ := env.Get("x")
	assert.Equal(t, int32(2), asInt(t, v))
	env.Pop()

	// Assign at the inner depth created a new, inner-only binding rather
	// than reaching into the outer one, so popping restores the original.
	v, _ = env.Get("x")
	assert.Equal(t, int32(1), asInt(t, v))
}

func TestFrameIsolationHidesOuterFrameBindings(t *testing.T) {
	env := New(nil)
	env.Add("secret", intVal(42))

	env.PushFrame()
	_, ok := env.Get("secret")
	assert.False(t, ok, "inner frame must not see outer frame's bindings")
	env.PopFrame()

	v, ok := env.Get("secret")
	require.True(t, ok)
	assert.Equal(t, int32(42), asInt(t, v))
}

func TestEveryFrameIsReseededWithBuiltins(t *testing.T) {
	builtins := map[string]objects.Value{"print": &objects.Builtin{Name: "print"}}
	env := New(builtins)

	env.PushFrame()
	_, ok := env.Get("print")
	assert.True(t, ok, "builtins must be visible in every new frame")
	env.PopFrame()
}
