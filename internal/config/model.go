package config

// Model is everything declared across the loaded files.
type Model struct {
	Types      []*TypeDefinition
	Components []*ComponentDefinition
	References []*Reference
}

// TypeDefinition declares a named value type and its direct parents.
type TypeDefinition struct {
	Name    string
	Parents []string
	Origin  string
}

// ComponentDefinition declares one component. Which type lists are used
// depends on the kind:
//
//	trigger          Provides (ordered values)
//	free_param       Provides (one)
//	param_processor  Requires (one), Provides (one)
//	target_search    Provides (one)
//	condition        Requires (ordered params)
//	effect           Requires (ordered params), Targets (ordered targets)
//	activity         none
type ComponentDefinition struct {
	Kind     string
	Name     string
	Provides []string
	Requires []string
	Targets  []string
	Origin   string
}

// Reference declares one edge. From and To are component addresses; To may
// select a trigger value with `trigger.name[i]`. Nil indexes were omitted.
type Reference struct {
	From         string
	To           string
	Param        bool
	Target       bool
	Affect       bool
	Slot         *int
	TriggerParam *int
	Origin       string
}

// Merge appends the declarations of other to m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Types = append(m.Types, other.Types...)
	m.Components = append(m.Components, other.Components...)
	m.References = append(m.References, other.References...)
}
