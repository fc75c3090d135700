package ability

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/typesys"
)

// Parts are the validated components an Ability is built from.
type Parts struct {
	Trigger         component.Trigger
	FreeParams      []component.FreeParam
	ParamProcessors []component.ParamProcessor
	TargetSearches  []component.TargetSearch
	Conditions      []component.Condition
	Effects         []component.Effect
	Activity        component.Activity
}

// Ability is an immutable, executable component graph.
type Ability struct {
	trigger         component.Trigger
	freeParams      []component.FreeParam
	paramProcessors []component.ParamProcessor
	targetSearches  []component.TargetSearch
	conditions      []component.Condition
	effects         []component.Effect
	activity        component.Activity

	slots []component.Node
}

// New seals the parts into an Ability. Every component must carry a
// resolved self index and must not be owned yet. On error nothing is
// claimed.
func New(p Parts) (*Ability, error) {
	if component.IsNil(p.Trigger) {
		return nil, errors.New("ability requires a trigger")
	}
	if component.IsNil(p.Activity) {
		return nil, errors.New("ability requires an activity")
	}

	a := &Ability{
		trigger:         p.Trigger,
		freeParams:      sortedByIndex(p.FreeParams),
		paramProcessors: sortedByIndex(p.ParamProcessors),
		targetSearches:  sortedByIndex(p.TargetSearches),
		conditions:      sortedByIndex(p.Conditions),
		effects:         sortedByIndex(p.Effects),
		activity:        p.Activity,
	}

	nodes := a.nodes()
	for _, n := range nodes {
		if component.IsNil(n) {
			return nil, errors.New("ability parts contain a nil component")
		}
		if n.Owned() {
			return nil, fmt.Errorf("%s is already owned", component.Describe(n))
		}
	}

	slots, err := layout(a.trigger, nodes)
	if err != nil {
		return nil, err
	}
	a.slots = slots

	for _, n := range nodes {
		if err := component.Claim(n, a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// layout maps every global index to its component. The trigger covers one
// index per provided type, and at least one.
func layout(trigger component.Trigger, nodes []component.Node) ([]component.Node, error) {
	width := max(1, len(trigger.ProvideParamTypes()))
	size := trigger.SelfIndex() + width
	for _, n := range nodes {
		size = max(size, n.SelfIndex()+1)
	}

	slots := make([]component.Node, size)
	place := func(i int, n component.Node) error {
		if i < 0 || i >= size {
			return fmt.Errorf("%s has an unresolved self index", component.Describe(n))
		}
		if slots[i] != nil {
			return fmt.Errorf("%s and %s share index %d", component.Describe(slots[i]), component.Describe(n), i)
		}
		slots[i] = n
		return nil
	}

	for i := 0; i < width; i++ {
		if err := place(trigger.SelfIndex()+i, trigger); err != nil {
			return nil, err
		}
	}
	for _, n := range nodes[1:] {
		if err := place(n.SelfIndex(), n); err != nil {
			return nil, err
		}
	}
	for i, n := range slots {
		if n == nil {
			return nil, fmt.Errorf("index %d is not assigned to any component", i)
		}
	}
	return slots, nil
}

func sortedByIndex[T component.Node](in []T) []T {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b T) int { return a.SelfIndex() - b.SelfIndex() })
	return out
}

// nodes lists every component in index order, trigger first.
func (a *Ability) nodes() []component.Node {
	out := []component.Node{a.trigger}
	for _, n := range a.freeParams {
		out = append(out, n)
	}
	for _, n := range a.paramProcessors {
		out = append(out, n)
	}
	for _, n := range a.targetSearches {
		out = append(out, n)
	}
	for _, n := range a.conditions {
		out = append(out, n)
	}
	for _, n := range a.effects {
		out = append(out, n)
	}
	return append(out, a.activity)
}

func (a *Ability) Trigger() component.Trigger   { return a.trigger }
func (a *Ability) Activity() component.Activity { return a.activity }

func (a *Ability) FreeParams() []component.FreeParam { return slices.Clone(a.freeParams) }

func (a *Ability) ParamProcessors() []component.ParamProcessor {
	return slices.Clone(a.paramProcessors)
}

func (a *Ability) TargetSearches() []component.TargetSearch { return slices.Clone(a.targetSearches) }
func (a *Ability) Conditions() []component.Condition         { return slices.Clone(a.conditions) }
func (a *Ability) Effects() []component.Effect               { return slices.Clone(a.effects) }

// Components returns every component in index order.
func (a *Ability) Components() []component.Node { return a.nodes() }

// Size is the length of the global index space.
func (a *Ability) Size() int { return len(a.slots) }

// NodeAt returns the component at a global index, or nil.
func (a *Ability) NodeAt(index int) component.Node {
	if index < 0 || index >= len(a.slots) {
		return nil
	}
	return a.slots[index]
}

// ParamProvider returns the component that provides the value at index
// together with the value's type.
func (a *Ability) ParamProvider(index int) (component.Node, *typesys.Type, bool) {
	n := a.NodeAt(index)
	if n == nil || !n.Kind().IsParamProvider() {
		return nil, nil, false
	}
	t, ok := component.ProvidedParamType(n, index)
	if !ok {
		return nil, nil, false
	}
	return n, t, true
}
