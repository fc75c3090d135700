package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block an ability file may contain.
type fileRoot struct {
	Types           []*TypeBlock           `hcl:"type,block"`
	Triggers        []*TriggerBlock        `hcl:"trigger,block"`
	FreeParams      []*SingleProvideBlock  `hcl:"free_param,block"`
	ParamProcessors []*ParamProcessorBlock `hcl:"param_processor,block"`
	TargetSearches  []*SingleProvideBlock  `hcl:"target_search,block"`
	Conditions      []*ConditionBlock      `hcl:"condition,block"`
	Effects         []*EffectBlock         `hcl:"effect,block"`
	Activities      []*ActivityBlock       `hcl:"activity,block"`
	Refs            []*RefBlock            `hcl:"ref,block"`
}

// TypeBlock maps to `type "<name>" { parents = [...] }`.
type TypeBlock struct {
	Name    string   `hcl:"name,label"`
	Parents []string `hcl:"parents,optional"`
}

// TriggerBlock maps to `trigger "<name>" { provides = [...] }`.
type TriggerBlock struct {
	Name     string   `hcl:"name,label"`
	Provides []string `hcl:"provides,optional"`
}

// SingleProvideBlock is shared by free_param and target_search blocks.
type SingleProvideBlock struct {
	Name     string `hcl:"name,label"`
	Provides string `hcl:"provides"`
}

// ParamProcessorBlock maps to a `param_processor "<name>"` block.
type ParamProcessorBlock struct {
	Name     string `hcl:"name,label"`
	Requires string `hcl:"requires"`
	Provides string `hcl:"provides"`
}

// ConditionBlock maps to `condition "<name>" { requires = [...] }`.
type ConditionBlock struct {
	Name     string   `hcl:"name,label"`
	Requires []string `hcl:"requires,optional"`
}

// EffectBlock maps to an `effect "<name>"` block.
type EffectBlock struct {
	Name    string   `hcl:"name,label"`
	Params  []string `hcl:"params,optional"`
	Targets []string `hcl:"targets,optional"`
}

// ActivityBlock maps to `activity "<name>" {}`.
type ActivityBlock struct {
	Name string `hcl:"name,label"`
}

// RefBlock maps to `ref "<kind.name>" { ... }`. Slot and TriggerParam are
// kept as expressions so an omitted attribute can be told apart from 0.
type RefBlock struct {
	From         string         `hcl:"from,label"`
	To           string         `hcl:"to"`
	Param        bool           `hcl:"param,optional"`
	Target       bool           `hcl:"target,optional"`
	Affect       bool           `hcl:"affect,optional"`
	Slot         hcl.Expression `hcl:"slot,optional"`
	TriggerParam hcl.Expression `hcl:"trigger_param,optional"`
}
