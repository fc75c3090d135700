package registry

import (
	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/diag"
	"github.com/specialistvlad/abilitygraph/internal/typesys"
)

// validateEffect resolves the parameter and target slots of f, then
// re-checks both lists against the index space.
func (r *Registry) validateEffect(f component.Effect) []Diagnostic {
	p := &pass{r: r}
	params := newSlotSet(f.RequireParamTypes())
	targets := newSlotSet(f.RequireTargetTypes())

	defer func() {
		f.SetRequireParamIndexes(params.index)
		f.SetRequireTargetIndexes(targets.index)
	}()

	edges := r.edges[component.Key(f)]
	if len(edges) == 0 {
		p.fail(placeholder(f, nil, component.Unresolved), diag.EffectNoEdges)
		return p.diags
	}
	if p.duplicates(edges) {
		return p.diags
	}

	for _, e := range edges {
		ref, ok := p.reference(e, diag.EffectNilReference, diag.EffectReferenceNotMember)
		if !ok {
			switch {
			case e.IsTarget:
				targets.aim(e.MultipleRequireIndex)
			case e.IsParam:
				params.aim(e.MultipleRequireIndex)
			}
			continue
		}
		switch {
		case e.IsAffectTarget:
			p.fail(e, diag.EffectAffectEdge)
		case e.IsTarget:
			p.resolveTarget(e, ref, targets)
		case e.IsParam:
			p.resolveParam(e, ref, params, effectParamCodes)
		}
	}

	for i := range params.index {
		p.sweepParam(f, params, i, effectSweepCodes)
	}
	for i := range targets.index {
		p.sweepTarget(f, targets, i)
	}
	return p.diags
}

func (p *pass) resolveTarget(e *Edge, ref component.Node, targets *slotSet) {
	if !targets.aim(e.MultipleRequireIndex) {
		p.fail(e, diag.EffectTargetSlotRange)
		return
	}
	s, ok := component.AsTargetSearch(ref)
	if !ok {
		p.fail(e, diag.EffectTargetKind)
		return
	}
	if !typesys.Satisfies(targets.types[e.MultipleRequireIndex], s.ProvideTargetType()) {
		p.fail(e, diag.EffectTargetTypeMismatch)
		return
	}
	targets.fill(p, e, e.MultipleRequireIndex, s.SelfIndex())
}

func (p *pass) sweepTarget(f component.Effect, targets *slotSet, i int) {
	idx := targets.index[i]
	if idx == component.Unresolved {
		if !targets.targeted[i] {
			p.fail(placeholder(f, nil, i), diag.EffectTargetUnresolved)
		}
		return
	}
	s, ok := component.AsTargetSearch(p.r.NodeAt(idx))
	if !ok {
		p.fail(placeholder(f, p.r.NodeAt(idx), i), diag.EffectTargetNotSearch)
		return
	}
	if !typesys.Satisfies(targets.types[i], s.ProvideTargetType()) {
		p.fail(placeholder(f, s, i), diag.EffectSweepTargetType)
	}
}
