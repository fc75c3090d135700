package registry

import (
	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/diag"
	"github.com/specialistvlad/abilitygraph/internal/typesys"
)

// validateCondition resolves the affect target and the parameter slots of
// c, then re-checks the result against the index space.
func (r *Registry) validateCondition(c component.Condition) []Diagnostic {
	p := &pass{r: r}
	slots := newSlotSet(c.RequireParamTypes())
	affect := component.Unresolved
	affectFailed := false

	defer func() {
		c.SetRequireParamIndexes(slots.index)
		c.SetAffectComponentIndex(affect)
	}()

	edges := r.edges[component.Key(c)]
	if len(edges) == 0 {
		p.fail(placeholder(c, nil, component.Unresolved), diag.ConditionNoEdges)
		return p.diags
	}
	if p.duplicates(edges) {
		return p.diags
	}

	for _, e := range edges {
		ref, ok := p.reference(e, diag.ConditionNilReference, diag.ConditionReferenceNotMember)
		if !ok {
			affectFailed = affectFailed || e.IsAffectTarget
			if e.IsParam {
				slots.aim(e.MultipleRequireIndex)
			}
			continue
		}
		switch {
		case e.IsTarget:
			p.fail(e, diag.ConditionTargetEdge)
		case e.IsAffectTarget:
			var resolved bool
			affect, resolved = p.resolveAffect(e, ref, slots)
			affectFailed = !resolved
		case e.IsParam:
			p.resolveParam(e, ref, slots, conditionParamCodes)
		}
	}

	p.sweepCondition(c, slots, affect, affectFailed)
	return p.diags
}

// resolveAffect records the affect target of a condition edge. A trigger
// affect edge that is also a param edge fills a slot with a trigger value;
// a target search affect edge fills a slot with the search itself.
func (p *pass) resolveAffect(e *Edge, ref component.Node, slots *slotSet) (int, bool) {
	switch ref.Kind() {
	case component.KindTrigger:
		if !e.IsParam {
			return ref.SelfIndex(), true
		}
		t, _ := component.AsTrigger(ref)
		types := t.ProvideParamTypes()
		inRange := slots.aim(e.MultipleRequireIndex)
		if e.TriggerParamIndex < 0 || e.TriggerParamIndex >= len(types) {
			p.fail(e, diag.ConditionAffectTriggerIndexRange)
			return ref.SelfIndex(), true
		}
		if !inRange {
			p.fail(e, diag.ConditionAffectSlotRange)
			return ref.SelfIndex(), true
		}
		if !typesys.Satisfies(slots.types[e.MultipleRequireIndex], types[e.TriggerParamIndex]) {
			p.fail(e, diag.ConditionAffectTypeMismatch)
			return ref.SelfIndex(), true
		}
		slots.fill(p, e, e.MultipleRequireIndex, t.SelfIndex()+e.TriggerParamIndex)
		return ref.SelfIndex(), true

	case component.KindTargetSearch:
		if len(slots.types) == 0 {
			return ref.SelfIndex(), true
		}
		s, _ := component.AsTargetSearch(ref)
		if !slots.aim(e.MultipleRequireIndex) {
			p.fail(e, diag.ConditionAffectSlotRange)
			return ref.SelfIndex(), false
		}
		if !typesys.Satisfies(slots.types[e.MultipleRequireIndex], s.ProvideTargetType()) {
			p.fail(e, diag.ConditionAffectTypeMismatch)
			return ref.SelfIndex(), false
		}
		before := len(p.diags)
		slots.fill(p, e, e.MultipleRequireIndex, s.SelfIndex())
		return ref.SelfIndex(), len(p.diags) == before

	default:
		p.fail(e, diag.ConditionAffectKind)
		return component.Unresolved, false
	}
}

// sweepCondition checks the affect target and every parameter slot against
// the current index space.
func (p *pass) sweepCondition(c component.Condition, slots *slotSet, affect int, affectFailed bool) {
	var search component.TargetSearch
	switch {
	case affect == component.Unresolved:
		if !affectFailed {
			p.fail(placeholder(c, nil, component.Unresolved), diag.ConditionAffectMissing)
		}
	default:
		n := p.r.NodeAt(affect)
		if n == nil || (n.Kind() != component.KindTrigger && n.Kind() != component.KindTargetSearch) {
			p.fail(placeholder(c, n, component.Unresolved), diag.ConditionAffectNotMember)
			break
		}
		search, _ = component.AsTargetSearch(n)
	}

	searchSlotFound := false
	for i := range slots.index {
		if search != nil && slots.index[i] == search.SelfIndex() {
			searchSlotFound = true
			if !typesys.Satisfies(slots.types[i], search.ProvideTargetType()) {
				p.fail(placeholder(c, search, i), diag.ConditionAffectSlotTypeMismatch)
			}
			continue
		}
		p.sweepParam(c, slots, i, conditionSweepCodes)
	}

	if search != nil && len(slots.types) > 0 && !searchSlotFound && !affectFailed {
		p.fail(placeholder(c, search, component.Unresolved), diag.ConditionAffectSlotMissing)
	}
}
