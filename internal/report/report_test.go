package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/ctxlog"
	"github.com/specialistvlad/abilitygraph/internal/diag"
	"github.com/specialistvlad/abilitygraph/internal/registry"
	"github.com/specialistvlad/abilitygraph/internal/typesys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

// invalidRegistry has a condition fed a value of the wrong type.
func invalidRegistry(t *testing.T) (*registry.Registry, *registry.Edge) {
	t.Helper()
	number := typesys.New("number")
	r := registry.New()
	trig := component.NewTrigger("start", number)
	cond := component.NewCondition("check", number)
	free := component.NewFreeParam("label", typesys.New("string"))
	for _, n := range []component.Node{trig, cond, free, component.NewActivity("main")} {
		require.NoError(t, r.AddComponent(n))
	}
	e := registry.AffectEdge(cond, trig, registry.Omitted)
	require.NoError(t, r.AddEdge(e))
	bad := registry.ParamEdge(cond, free, 0)
	require.NoError(t, r.AddEdge(bad))
	return r, bad
}

func TestFromDiagnostics(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	r, bad := invalidRegistry(t)
	require.ErrorIs(t, r.CheckResult(ctx), diag.ErrorsExist)

	rep := FromDiagnostics(r.State(), r.Diagnostics(), func(e *registry.Edge) string {
		if e == bad {
			return "ability.hcl: ref \"condition.check\""
		}
		return ""
	})

	assert.False(t, rep.Valid)
	assert.Equal(t, "invalid", rep.State)
	require.NotEmpty(t, rep.Diagnostics)

	first := rep.Diagnostics[0]
	assert.Equal(t, int(diag.ConditionFreeParamTypeMismatch), first.Code)
	assert.Equal(t, "condition", first.Category)
	assert.Equal(t, "condition.check", first.Source)
	assert.Equal(t, "free_param.label", first.Reference)
	require.NotNil(t, first.Slot)
	assert.Equal(t, 0, *first.Slot)
	assert.Contains(t, first.Origin, "ability.hcl")

	var buf bytes.Buffer
	require.NoError(t, rep.Write(&buf, FormatText))
	out := buf.String()
	assert.Contains(t, out, "ability is invalid")
	assert.Contains(t, out, "[condition.check -> free_param.label slot 0]")
}

func TestFromAbility(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	number := typesys.New("number")
	r := registry.New()
	trig := component.NewTrigger("start", number)
	cond := component.NewCondition("check", number)
	for _, n := range []component.Node{trig, cond, component.NewActivity("main")} {
		require.NoError(t, r.AddComponent(n))
	}
	require.NoError(t, r.AddEdge(registry.AffectEdge(cond, trig, registry.Omitted)))
	require.NoError(t, r.AddEdge(registry.TriggerParamEdge(cond, trig, 0, 0)))

	ab, err := r.Commit(ctx)
	require.NoError(t, err)

	rep := FromAbility(ab)
	assert.True(t, rep.Valid)
	assert.Equal(t, 3, rep.Size)
	assert.Equal(t, []Component{
		{Index: 0, Kind: "trigger", Name: "start"},
		{Index: 1, Kind: "condition", Name: "check"},
		{Index: 2, Kind: "activity", Name: "main"},
	}, rep.Components)

	var buf bytes.Buffer
	require.NoError(t, rep.Write(&buf, FormatYAML))

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *rep, decoded)

	buf.Reset()
	require.NoError(t, rep.Write(&buf, FormatText))
	assert.Contains(t, buf.String(), "ability is valid: 3 component(s), 3 index slot(s)")
	assert.Contains(t, buf.String(), "[1] condition.check")
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	assert.Error(t, (&Report{}).Write(&bytes.Buffer{}, Format("xml")))
}
