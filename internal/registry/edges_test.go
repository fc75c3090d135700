package registry

import (
	"testing"

	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/diag"
	"github.com/specialistvlad/abilitygraph/internal/typesys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEdge(t *testing.T) {
	ty := newTypes()
	r, trig, act := minimal(t, ty.unit, ty.number)
	fp := component.NewFreeParam("bonus", ty.number)
	ts := component.NewTargetSearch("enemies", ty.unit)
	single := component.NewCondition("single", ty.unit)
	pair := component.NewCondition("pair", ty.unit, ty.number)
	eff := component.NewEffect("damage", []*typesys.Type{ty.number}, []*typesys.Type{ty.unit, ty.unit})
	mustAdd(t, r, fp, ts, single, pair, eff)

	outsider := component.NewFreeParam("outsider", ty.number)
	owned := component.NewFreeParam("owned", ty.number)
	require.NoError(t, component.Claim(owned, "elsewhere"))

	both := ParamEdge(single, fp, 0)
	both.IsTarget = true

	testCases := []struct {
		name string
		edge *Edge
		want diag.Code
	}{
		{"nil edge", nil, diag.InvalidEdge},
		{"nil source", ParamEdge(nil, fp, 0), diag.EdgeSourceInvalid},
		{"nil reference", ParamEdge(single, nil, 0), diag.EdgeReferenceInvalid},
		{"owned reference", ParamEdge(single, owned, 0), diag.EdgeReferenceInvalid},
		{"source kind", ParamEdge(act, fp, 0), diag.EdgeSourceKind},
		{"source not member", ParamEdge(component.NewCondition("x", ty.unit), fp, 0), diag.EdgeSourceNotMember},
		{"reference not member", ParamEdge(single, outsider, 0), diag.EdgeReferenceNotMember},
		{"param and target", both, diag.EdgeParamAndTarget},
		{"meaningless", NewEdge(single, fp), diag.MeaninglessEdge},
		{"affect free param", AffectEdge(single, fp, 0), diag.EdgeAffectKind},
		{"trigger index too large", TriggerParamEdge(single, trig, 2, 0), diag.EdgeTriggerIndexRange},
		{"trigger index omitted with several values", TriggerParamEdge(single, trig, Omitted, 0), diag.EdgeTriggerIndexRange},
		{"negative slot", ParamEdge(single, fp, -7), diag.EdgeNegativeIndex},
		{"negative target slot", TargetEdge(eff, ts, -2), diag.EdgeNegativeIndex},
		{"negative trigger index", TriggerParamEdge(single, trig, -42, 0), diag.EdgeNegativeIndex},
		{"slot omitted with several slots", ParamEdge(pair, fp, Omitted), diag.EdgeMissingRequireIndex},
		{"target slot omitted with several targets", TargetEdge(eff, ts, Omitted), diag.EdgeMissingRequireIndex},

		{"slot omitted with one slot", ParamEdge(single, fp, Omitted), diag.OK},
		{"param slot omitted with one effect param", ParamEdge(eff, fp, Omitted), diag.OK},
		{"trigger affect needs no slot", AffectEdge(pair, trig, Omitted), diag.OK},
		{"trigger value", TriggerParamEdge(pair, trig, 1, 1), diag.OK},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := r.CheckEdge(tc.edge)
			if tc.want == diag.OK {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAddEdge(t *testing.T) {
	ty := newTypes()
	r, trig, _ := minimal(t, ty.number)
	fp := component.NewFreeParam("bonus", ty.number)
	cond := component.NewCondition("alive", ty.number)
	mustAdd(t, r, fp, cond)

	first := ParamEdge(cond, fp, Omitted)
	require.NoError(t, r.AddEdge(first))
	assert.Equal(t, 0, first.MultipleRequireIndex, "omitted slot defaults to the only slot")
	assert.Equal(t, 0, first.TriggerParamIndex)

	assert.ErrorIs(t, r.AddEdge(first), diag.DuplicateEdge, "same edge twice")
	assert.ErrorIs(t, r.AddEdge(TriggerParamEdge(cond, trig, 0, 0)), diag.DuplicateEdge,
		"same slot from another provider")

	affect := AffectEdge(cond, trig, Omitted)
	require.NoError(t, r.AddEdge(affect))
	assert.ErrorIs(t, r.AddEdge(AffectEdge(cond, trig, Omitted)), diag.DuplicateEdge)

	assert.Equal(t, []*Edge{first, affect}, r.Edges(cond))
	assert.Equal(t, 2, r.EdgeCount())

	negative := ParamEdge(cond, fp, -7)
	negative.TriggerParamIndex = -42
	assert.ErrorIs(t, r.AddEdge(negative), diag.EdgeNegativeIndex)
	assert.Equal(t, -7, negative.MultipleRequireIndex, "rejected edge keeps its indexes")
	assert.Equal(t, -42, negative.TriggerParamIndex)

	rejected := ParamEdge(cond, fp, Omitted)
	assert.ErrorIs(t, r.AddEdge(rejected), diag.DuplicateEdge)
	assert.Equal(t, Omitted, rejected.MultipleRequireIndex, "rejected edge is not normalised")
	assert.Equal(t, Omitted, rejected.TriggerParamIndex)
	assert.Equal(t, 2, r.EdgeCount())

	flagged := ParamEdge(cond, fp, 0)
	flagged.ErrorCode = diag.ConditionFreeParamTypeMismatch
	assert.ErrorIs(t, r.AddEdge(flagged), diag.InvalidEdge)
	assert.ErrorIs(t, r.AddEdge(nil), diag.InvalidEdge)
}

func TestAddEdgeResetsState(t *testing.T) {
	ty := newTypes()
	r, trig, _ := minimal(t, ty.number)
	cond := component.NewCondition("alive", ty.number)
	mustAdd(t, r, cond)
	mustEdge(t, r, TriggerParamEdge(cond, trig, 0, 0), AffectEdge(cond, trig, Omitted))
	require.NoError(t, r.CheckResult(testCtx()))
	require.Equal(t, Valid, r.State())

	fp := component.NewFreeParam("bonus", ty.number)
	mustAdd(t, r, fp)
	assert.Equal(t, Uncommitted, r.State())
}

func TestRemoveEdge(t *testing.T) {
	ty := newTypes()
	r, trig, _ := minimal(t, ty.unit)
	ts1 := component.NewTargetSearch("enemies", ty.unit)
	ts2 := component.NewTargetSearch("allies", ty.unit)
	eff := component.NewEffect("push", nil, []*typesys.Type{ty.unit, ty.unit})
	mustAdd(t, r, ts1, ts2, eff)

	slot0 := TargetEdge(eff, ts1, 0)
	slot1 := TargetEdge(eff, ts2, 1)
	mustEdge(t, r, slot0, slot1)

	t.Run("by shape", func(t *testing.T) {
		require.NoError(t, r.RemoveEdge(TargetEdge(eff, ts2, 0)))
		assert.Nil(t, slot0.Source, "removed edges are disposed")
		assert.Nil(t, slot0.Reference)
		assert.Equal(t, []*Edge{slot1}, r.Edges(eff))
	})

	t.Run("by pointer", func(t *testing.T) {
		require.NoError(t, r.RemoveEdge(slot1))
		assert.Empty(t, r.Edges(eff))
		assert.Zero(t, r.EdgeCount())
	})

	t.Run("nothing matches", func(t *testing.T) {
		assert.ErrorIs(t, r.RemoveEdge(TargetEdge(eff, ts1, 0)), diag.EdgeNotFound)
		assert.ErrorIs(t, r.RemoveEdge(AffectEdge(nil, trig, 0)), diag.EdgeNotFound)
		assert.ErrorIs(t, r.RemoveEdge(nil), diag.InvalidEdge)
	})
}

func TestSameTarget(t *testing.T) {
	ty := newTypes()
	trig := component.NewTrigger("t", ty.number, ty.number)
	fp := component.NewFreeParam("f", ty.number)
	ts1 := component.NewTargetSearch("a", ty.unit)
	ts2 := component.NewTargetSearch("b", ty.unit)
	c := component.NewCondition("c", ty.number, ty.number)
	e := component.NewEffect("e", nil, []*typesys.Type{ty.unit})

	testCases := []struct {
		name string
		a, b *Edge
		want bool
	}{
		{"affect edges", AffectEdge(c, trig, 0), AffectEdge(c, ts1, 1), true},
		{"param same slot", TriggerParamEdge(c, trig, 1, 0), TriggerParamEdge(c, trig, 1, 0), true},
		{"param different trigger value", TriggerParamEdge(c, trig, 0, 0), TriggerParamEdge(c, trig, 1, 0), false},
		{"param different slot", ParamEdge(c, fp, 0), ParamEdge(c, fp, 1), false},
		{"targets to different searches", TargetEdge(e, ts1, 0), TargetEdge(e, ts2, 0), true},
		{"different sources", ParamEdge(c, fp, 0), ParamEdge(component.NewCondition("d", ty.number), fp, 0), false},
		{"param and affect", ParamEdge(c, fp, 0), AffectEdge(c, ts1, 0), false},
		{"nil", nil, ParamEdge(c, fp, 0), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SameTarget(tc.a, tc.b))
			assert.Equal(t, tc.want, SameTarget(tc.b, tc.a))
		})
	}
}

func TestPruneDanglingEdges(t *testing.T) {
	ty := newTypes()
	r, trig, _ := minimal(t, ty.number)
	c1 := component.NewCondition("c1", ty.number)
	c2 := component.NewCondition("c2", ty.number)
	mustAdd(t, r, c1, c2)

	e1 := TriggerParamEdge(c1, trig, 0, 0)
	e2 := TriggerParamEdge(c2, trig, 0, 0)
	moved := AffectEdge(c2, trig, Omitted)
	mustEdge(t, r, e1, e2, moved)

	require.NoError(t, r.RemoveComponent(c1))
	moved.Source = c1

	assert.Equal(t, 2, r.PruneDanglingEdges())
	assert.Nil(t, e1.Source)
	assert.Nil(t, moved.Source)
	assert.Equal(t, []*Edge{e2}, r.Edges(c2))
	assert.Zero(t, r.PruneDanglingEdges())
}
