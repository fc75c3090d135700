package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	m := &Model{Types: []*TypeDefinition{{Name: "Unit"}}}
	m.Merge(&Model{
		Types:      []*TypeDefinition{{Name: "Hero", Parents: []string{"Unit"}}},
		Components: []*ComponentDefinition{{Kind: "activity", Name: "main"}},
		References: []*Reference{{From: "condition.c", To: "trigger.t", Affect: true}},
	})
	m.Merge(nil)

	assert.Len(t, m.Types, 2)
	assert.Equal(t, "Hero", m.Types[1].Name)
	assert.Len(t, m.Components, 1)
	assert.Len(t, m.References, 1)
}
