package integrationtests

import (
	"errors"
	"testing"

	"github.com/specialistvlad/abilitygraph/internal/app"
	"github.com/specialistvlad/abilitygraph/internal/diag"
	"github.com/specialistvlad/abilitygraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationDiagnostics(t *testing.T) {
	testCases := []struct {
		name string
		hcl  string
		want []diag.Code
	}{
		{
			name: "processor cycle",
			hcl: `
type "number" {}
trigger "start" { provides = ["number"] }
param_processor "a" {
  requires = "number"
  provides = "number"
}
param_processor "b" {
  requires = "number"
  provides = "number"
}
activity "main" {}

ref "param_processor.a" {
  to    = "param_processor.b"
  param = true
}
ref "param_processor.b" {
  to    = "param_processor.a"
  param = true
}
`,
			want: []diag.Code{diag.ProcessorCycle, diag.ProcessorCycle},
		},
		{
			name: "condition fed a trigger value of the wrong type",
			hcl: `
type "int" {}
type "string" {}
trigger "start" { provides = ["int"] }
condition "named" { requires = ["string"] }
activity "main" {}

ref "condition.named" {
  to     = "trigger.start"
  affect = true
}
ref "condition.named" {
  to    = "trigger.start[0]"
  param = true
}
`,
			want: []diag.Code{diag.ConditionTriggerTypeMismatch},
		},
		{
			name: "effect slot left unfilled",
			hcl: `
type "number" {}
trigger "start" { provides = ["number"] }
effect "heal" { params = ["number", "number"] }
activity "main" {}

ref "effect.heal" {
  to    = "trigger.start"
  param = true
  slot  = 0
}
`,
			want: []diag.Code{diag.EffectSlotUnresolved},
		},
		{
			name: "effect target of the wrong type",
			hcl: `
type "Unit" {}
type "number" {}
trigger "start" { provides = ["number"] }
target_search "counter" { provides = "number" }
effect "strike" { targets = ["Unit"] }
activity "main" {}

ref "effect.strike" {
  to     = "target_search.counter"
  target = true
}
`,
			want: []diag.Code{diag.EffectTargetTypeMismatch},
		},
		{
			name: "problems in several passes are all reported",
			hcl: `
type "int" {}
type "string" {}
trigger "start" { provides = ["int"] }
param_processor "loop" {
  requires = "int"
  provides = "int"
}
condition "named" { requires = ["string"] }
activity "main" {}

ref "param_processor.loop" {
  to    = "param_processor.loop"
  param = true
}
ref "condition.named" {
  to     = "trigger.start"
  affect = true
  param  = true
}
`,
			want: []diag.Code{diag.ProcessorSelfReference, diag.ConditionAffectTypeMismatch},
		},
		{
			name: "missing activity",
			hcl: `
type "number" {}
trigger "start" { provides = ["number"] }
`,
			want: []diag.Code{diag.ActivityInvalid},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := testutil.RunHCLAbilityTest(t, tc.hcl)
			testutil.RequireCodes(t, result, tc.want...)
			assert.Nil(t, result.App.Ability())
			assert.Contains(t, result.Output, "ability is invalid")
		})
	}
}

func TestInvalidAbilityReportsOrigin(t *testing.T) {
	result := testutil.RunIntegrationTest(t, map[string]string{"ability.hcl": `
type "int" {}
type "string" {}
trigger "start" { provides = ["int"] }
condition "named" { requires = ["string"] }
activity "main" {}

ref "condition.named" {
  to     = "trigger.start"
  affect = true
  param  = true
}
`}, "yaml")

	testutil.RequireCodes(t, result, diag.ConditionAffectTypeMismatch)
	assert.Contains(t, result.Output, "code: 1109")
	assert.Contains(t, result.Output, "source: condition.named")

	d := result.App.Report().Diagnostics[0]
	assert.Equal(t, "trigger.start", d.Reference)
	assert.Contains(t, d.Origin, "ability.hcl")
	assert.Contains(t, d.Origin, `ref "condition.named"`)
}

func TestStructuralErrors(t *testing.T) {
	testCases := []struct {
		name     string
		hcl      string
		errPart  string
		wantCode diag.Code
	}{
		{
			name:    "syntax error",
			hcl:     `trigger "start" {`,
			errPart: "failed to parse HCL file",
		},
		{
			name:    "unknown block",
			hcl:     `widget "w" {}`,
			errPart: "failed to decode HCL file",
		},
		{
			name: "unknown type",
			hcl: `
trigger "start" { provides = ["ghost"] }
activity "main" {}
`,
			errPart: `unknown type "ghost"`,
		},
		{
			name: "inheritance cycle",
			hcl: `
type "a" { parents = ["b"] }
type "b" { parents = ["a"] }
`,
			errPart: "error declaring types",
		},
		{
			name: "two references to one slot",
			hcl: `
type "number" {}
trigger "start" { provides = ["number"] }
free_param "one" { provides = "number" }
free_param "two" { provides = "number" }
effect "heal" { params = ["number"] }
activity "main" {}

ref "effect.heal" {
  to    = "free_param.one"
  param = true
}
ref "effect.heal" {
  to    = "free_param.two"
  param = true
}
`,
			errPart:  "failed to build ability",
			wantCode: diag.DuplicateEdge,
		},
		{
			name: "affect target that is not a trigger or search",
			hcl: `
type "number" {}
trigger "start" { provides = ["number"] }
free_param "one" { provides = "number" }
condition "check" { requires = ["number"] }
activity "main" {}

ref "condition.check" {
  to     = "free_param.one"
  affect = true
}
`,
			errPart:  "failed to build ability",
			wantCode: diag.EdgeAffectKind,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := testutil.RunHCLAbilityTest(t, tc.hcl)
			require.Error(t, result.Err)
			assert.False(t, errors.Is(result.Err, app.ErrInvalidAbility))
			assert.Contains(t, result.Err.Error(), tc.errPart)
			if tc.wantCode != diag.OK {
				assert.ErrorIs(t, result.Err, tc.wantCode)
			}
			assert.Empty(t, result.Output)
		})
	}
}
