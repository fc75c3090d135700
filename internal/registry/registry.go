package registry

import (
	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/diag"
)

// Registry holds the members of one ability under construction.
type Registry struct {
	trigger         component.Trigger
	freeParams      []component.FreeParam
	paramProcessors []component.ParamProcessor
	targetSearches  []component.TargetSearch
	conditions      []component.Condition
	effects         []component.Effect
	activity        component.Activity

	// edges indexes every edge by its source, in insertion order.
	edges   map[*component.Core][]*Edge
	sources map[*component.Core]component.Node

	slots       []component.Node
	state       State
	diagnostics []Diagnostic
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		edges:   make(map[*component.Core][]*Edge),
		sources: make(map[*component.Core]component.Node),
	}
}

// AddComponent admits n. The Trigger and Activity are singletons and are
// replaced; every other kind is appended to its collection.
func (r *Registry) AddComponent(n component.Node) error {
	if component.IsNil(n) || n.Owned() || !n.Kind().Valid() {
		return diag.InvalidComponent
	}
	if !component.HeldBy(n, r) && component.Enroll(n, r) != nil {
		return diag.InvalidComponent
	}

	var err error
	switch n.Kind() {
	case component.KindTrigger:
		t, _ := component.AsTrigger(n)
		if !component.Same(r.trigger, t) {
			component.Release(r.trigger, r)
		}
		r.trigger = t
	case component.KindFreeParam:
		f, _ := component.AsFreeParam(n)
		r.freeParams, err = appendUnique(r.freeParams, f, diag.DuplicateFreeParam)
	case component.KindParamProcessor:
		p, _ := component.AsParamProcessor(n)
		r.paramProcessors, err = appendUnique(r.paramProcessors, p, diag.DuplicateParamProcessor)
	case component.KindTargetSearch:
		s, _ := component.AsTargetSearch(n)
		r.targetSearches, err = appendUnique(r.targetSearches, s, diag.DuplicateTargetSearch)
	case component.KindCondition:
		c, _ := component.AsCondition(n)
		r.conditions, err = appendUnique(r.conditions, c, diag.DuplicateCondition)
	case component.KindEffect:
		e, _ := component.AsEffect(n)
		r.effects, err = appendUnique(r.effects, e, diag.DuplicateEffect)
	case component.KindActivity:
		a, _ := component.AsActivity(n)
		if !component.Same(r.activity, a) {
			component.Release(r.activity, r)
		}
		r.activity = a
	}
	if err != nil {
		return err
	}
	r.touch()
	return nil
}

// RemoveComponent removes n. Edges whose source was n are dropped on the
// next CheckResult.
func (r *Registry) RemoveComponent(n component.Node) error {
	if component.IsNil(n) || !n.Kind().Valid() {
		return diag.InvalidComponent
	}

	var err error
	switch n.Kind() {
	case component.KindTrigger:
		if !component.Same(r.trigger, n) {
			return diag.TriggerMismatch
		}
		r.trigger = nil
	case component.KindFreeParam:
		r.freeParams, err = removeMember(r.freeParams, n, diag.FreeParamNotMember)
	case component.KindParamProcessor:
		r.paramProcessors, err = removeMember(r.paramProcessors, n, diag.ParamProcessorNotMember)
	case component.KindTargetSearch:
		r.targetSearches, err = removeMember(r.targetSearches, n, diag.TargetSearchNotMember)
	case component.KindCondition:
		r.conditions, err = removeMember(r.conditions, n, diag.ConditionNotMember)
	case component.KindEffect:
		r.effects, err = removeMember(r.effects, n, diag.EffectNotMember)
	case component.KindActivity:
		if !component.Same(r.activity, n) {
			return diag.ActivityMismatch
		}
		r.activity = nil
	}
	if err != nil {
		return err
	}
	component.Release(n, r)
	r.touch()
	return nil
}

// Contains reports whether n itself is a member. Membership is identity
// based: a different instance with equal contents is not a member.
func (r *Registry) Contains(n component.Node) bool {
	if component.IsNil(n) {
		return false
	}
	switch n.Kind() {
	case component.KindTrigger:
		return component.Same(r.trigger, n)
	case component.KindFreeParam:
		return indexOf(r.freeParams, n) >= 0
	case component.KindParamProcessor:
		return indexOf(r.paramProcessors, n) >= 0
	case component.KindTargetSearch:
		return indexOf(r.targetSearches, n) >= 0
	case component.KindCondition:
		return indexOf(r.conditions, n) >= 0
	case component.KindEffect:
		return indexOf(r.effects, n) >= 0
	case component.KindActivity:
		return component.Same(r.activity, n)
	default:
		return false
	}
}

// Trigger returns the current trigger, or nil.
func (r *Registry) Trigger() component.Trigger { return r.trigger }

// Activity returns the current activity, or nil.
func (r *Registry) Activity() component.Activity { return r.activity }

// Components returns every member in index order.
func (r *Registry) Components() []component.Node {
	var out []component.Node
	if !component.IsNil(r.trigger) {
		out = append(out, r.trigger)
	}
	out = appendNodes(out, r.freeParams)
	out = appendNodes(out, r.paramProcessors)
	out = appendNodes(out, r.targetSearches)
	out = appendNodes(out, r.conditions)
	out = appendNodes(out, r.effects)
	if !component.IsNil(r.activity) {
		out = append(out, r.activity)
	}
	return out
}

// Len is the number of members.
func (r *Registry) Len() int { return len(r.Components()) }

// Reset releases every member and edge.
func (r *Registry) Reset() {
	for _, n := range r.Components() {
		component.Release(n, r)
	}
	*r = *New()
}

func (r *Registry) touch() {
	r.state = Uncommitted
	r.diagnostics = nil
}

func appendUnique[T component.Node](list []T, n T, dup diag.Code) ([]T, error) {
	if indexOf(list, n) >= 0 {
		return list, dup
	}
	return append(list, n), nil
}

func removeMember[T component.Node](list []T, n component.Node, missing diag.Code) ([]T, error) {
	i := indexOf(list, n)
	if i < 0 {
		return list, missing
	}
	return append(list[:i:i], list[i+1:]...), nil
}

func indexOf[T component.Node](list []T, n component.Node) int {
	for i, m := range list {
		if component.Same(m, n) {
			return i
		}
	}
	return -1
}

func appendNodes[T component.Node](out []component.Node, list []T) []component.Node {
	for _, n := range list {
		if !component.IsNil(n) {
			out = append(out, n)
		}
	}
	return out
}
