package typesys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSatisfies(t *testing.T) {
	targetable := New("Targetable")
	unit := New("Unit", targetable)
	hero := New("Hero", unit)
	number := New("number")

	testCases := []struct {
		name     string
		required *Type
		provided *Type
		expected bool
	}{
		{name: "identical type", required: unit, provided: unit, expected: true},
		{name: "direct child", required: targetable, provided: unit, expected: true},
		{name: "grandchild", required: targetable, provided: hero, expected: true},
		{name: "parent for child", required: hero, provided: unit, expected: false},
		{name: "unrelated", required: number, provided: unit, expected: false},
		{name: "nil required", required: nil, provided: unit, expected: false},
		{name: "nil provided", required: unit, provided: nil, expected: false},
		{name: "same name different identity", required: New("Unit"), provided: unit, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Satisfies(tc.required, tc.provided))
		})
	}
}

func TestSatisfies_MultipleParents(t *testing.T) {
	damageable := New("Damageable")
	movable := New("Movable")
	unit := New("Unit", damageable, movable)

	assert.True(t, Satisfies(damageable, unit))
	assert.True(t, Satisfies(movable, unit))
	assert.False(t, Satisfies(unit, movable))
}

func TestSatisfies_ChainProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		depth := rapid.IntRange(2, 12).Draw(rt, "depth")
		chain := make([]*Type, depth)
		chain[0] = New("T0")
		for i := 1; i < depth; i++ {
			chain[i] = New("T", chain[i-1])
		}

		i := rapid.IntRange(0, depth-1).Draw(rt, "i")
		j := rapid.IntRange(0, depth-1).Draw(rt, "j")

		if !Satisfies(chain[i], chain[i]) {
			rt.Fatalf("type %d does not satisfy itself", i)
		}
		// chain[j] derives from chain[i] exactly when j >= i.
		if got, want := Satisfies(chain[i], chain[j]), j >= i; got != want {
			rt.Fatalf("Satisfies(T%d, T%d) = %v, want %v", i, j, got, want)
		}
	})
}

func TestType_String(t *testing.T) {
	base := New("Base")
	assert.Equal(t, "Base", base.String())
	assert.Equal(t, "Derived:Base", New("Derived", base, nil).String())
	var nilType *Type
	assert.Equal(t, "<nil>", nilType.String())
	assert.Equal(t, "<nil>", nilType.Name())
}
