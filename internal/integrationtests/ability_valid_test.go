package integrationtests

import (
	"context"
	"testing"

	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/ctxlog"
	"github.com/specialistvlad/abilitygraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullAbility = `
type "Targetable" {}
type "Unit" { parents = ["Targetable"] }
type "number" {}

trigger "on_attack" { provides = ["Unit", "number"] }
free_param "bonus" { provides = "number" }
param_processor "double" {
  requires = "number"
  provides = "number"
}
target_search "enemies" { provides = "Unit" }
condition "alive" { requires = ["Targetable"] }
effect "damage" {
  params  = ["number"]
  targets = ["Unit"]
}
activity "main" {}

ref "param_processor.double" {
  to    = "free_param.bonus"
  param = true
}
ref "condition.alive" {
  to     = "target_search.enemies"
  affect = true
  slot   = 0
}
ref "effect.damage" {
  to    = "trigger.on_attack[1]"
  param = true
  slot  = 0
}
ref "effect.damage" {
  to     = "target_search.enemies"
  target = true
}
`

func TestFullAbility_CommitsWithResolvedIndexes(t *testing.T) {
	result := testutil.RunHCLAbilityTest(t, fullAbility)
	testutil.RequireValid(t, result)

	ab := result.App.Ability()
	assert.Equal(t, 8, ab.Size())

	names := make(map[string]int)
	for _, n := range ab.Components() {
		names[n.Name()] = n.SelfIndex()
	}
	assert.Equal(t, map[string]int{
		"on_attack": 0, "bonus": 2, "double": 3, "enemies": 4,
		"alive": 5, "damage": 6, "main": 7,
	}, names)

	require.Len(t, ab.ParamProcessors(), 1)
	assert.Equal(t, 2, ab.ParamProcessors()[0].RequireParamIndex())

	require.Len(t, ab.Conditions(), 1)
	alive := ab.Conditions()[0]
	assert.Equal(t, 4, alive.AffectComponentIndex())
	assert.Equal(t, []int{4}, alive.RequireParamIndexes())

	require.Len(t, ab.Effects(), 1)
	damage := ab.Effects()[0]
	assert.Equal(t, []int{1}, damage.RequireParamIndexes())
	assert.Equal(t, []int{4}, damage.RequireTargetIndexes())

	assert.Contains(t, result.Output, "ability is valid: 7 component(s), 8 index slot(s)")
	assert.Contains(t, result.Output, "[6] effect.damage")
}

func TestFullAbility_BindsInputs(t *testing.T) {
	result := testutil.RunHCLAbilityTest(t, fullAbility)
	testutil.RequireValid(t, result)
	ab := result.App.Ability()
	ctx := ctxlog.Discard(context.Background())

	bindings := ab.ConditionInputs(ctx, 4)
	require.Len(t, bindings, 1)
	assert.Equal(t, "alive", bindings[0].Condition.Name())
	require.Len(t, bindings[0].Params, 1)
	assert.Equal(t, component.KindTargetSearch, bindings[0].Params[0].Kind())
	assert.Empty(t, ab.ConditionInputs(ctx, 0))

	binding, ok := ab.EffectInputs(ctx, ab.Effects()[0])
	require.True(t, ok)
	require.Len(t, binding.Params, 1)
	assert.Equal(t, component.KindTrigger, binding.Params[0].Kind())
	require.Len(t, binding.Targets, 1)
	assert.Equal(t, "enemies", binding.Targets[0].Name())

	provider, ty, ok := ab.ParamProvider(1)
	require.True(t, ok)
	assert.Equal(t, "on_attack", provider.Name())
	assert.Equal(t, "number", ty.Name())
}

func TestAbilitySplitAcrossFiles(t *testing.T) {
	files := map[string]string{
		"types.hcl": `
type "number" {}
`,
		"components/trigger.hcl": `
trigger "start" { provides = ["number"] }
activity "main" {}
`,
		"components/condition.hcl": `
condition "positive" { requires = ["number"] }

ref "condition.positive" {
  to     = "trigger.start"
  affect = true
}
ref "condition.positive" {
  to            = "trigger.start"
  param         = true
  trigger_param = 0
}
`,
	}

	result := testutil.RunIntegrationTest(t, files, "yaml")
	testutil.RequireValid(t, result)
	assert.Contains(t, result.Output, "valid: true")
	assert.Contains(t, result.Output, "name: positive")
}

func TestSubtypeSatisfiesRequirement(t *testing.T) {
	result := testutil.RunHCLAbilityTest(t, `
type "Targetable" {}
type "Unit" { parents = ["Targetable"] }
type "Hero" { parents = ["Unit"] }

trigger "on_cast" { provides = ["Hero"] }
condition "in_range" { requires = ["Targetable"] }
activity "main" {}

ref "condition.in_range" {
  to     = "trigger.on_cast"
  affect = true
  param  = true
}
`)
	testutil.RequireValid(t, result)
	cond := result.App.Ability().Conditions()[0]
	assert.Equal(t, 0, cond.AffectComponentIndex())
	assert.Equal(t, []int{0}, cond.RequireParamIndexes())
}
