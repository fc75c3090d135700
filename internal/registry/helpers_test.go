package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/ctxlog"
	"github.com/specialistvlad/abilitygraph/internal/diag"
	"github.com/specialistvlad/abilitygraph/internal/typesys"
	"github.com/stretchr/testify/require"
)

// types used across the registry tests:
//
//	Targetable
//	└── Unit
//	    └── Hero
//	number
type types struct {
	targetable, unit, hero, number *typesys.Type
}

func newTypes() types {
	targetable := typesys.New("Targetable")
	unit := typesys.New("Unit", targetable)
	return types{
		targetable: targetable,
		unit:       unit,
		hero:       typesys.New("Hero", unit),
		number:     typesys.New("number"),
	}
}

func testCtx() context.Context {
	return ctxlog.Discard(context.Background())
}

func mustAdd(t *testing.T, r *Registry, nodes ...component.Node) {
	t.Helper()
	for _, n := range nodes {
		require.NoError(t, r.AddComponent(n), component.Describe(n))
	}
}

func mustEdge(t *testing.T, r *Registry, edges ...*Edge) {
	t.Helper()
	for _, e := range edges {
		require.NoError(t, r.AddEdge(e), e.String())
	}
}

func codes(diags []Diagnostic) []diag.Code {
	out := make([]diag.Code, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}
	return out
}

// minimal returns a registry holding a trigger providing the given types
// and an activity.
func minimal(t *testing.T, provides ...*typesys.Type) (*Registry, *component.TriggerBase, *component.ActivityBase) {
	t.Helper()
	r := New()
	trig := component.NewTrigger("on_cast", provides...)
	act := component.NewActivity("main")
	mustAdd(t, r, trig, act)
	return r, trig, act
}
