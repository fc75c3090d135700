package registry

import (
	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/diag"
	"github.com/specialistvlad/abilitygraph/internal/typesys"
)

// validateProcessor resolves the single required parameter of pp.
func (r *Registry) validateProcessor(pp component.ParamProcessor) []Diagnostic {
	p := &pass{r: r}
	pp.SetRequireParamIndex(component.Unresolved)

	edges := r.edges[component.Key(pp)]
	if len(edges) == 0 {
		p.fail(placeholder(pp, nil, component.Unresolved), diag.ProcessorNoEdges)
		return p.diags
	}
	if p.duplicates(edges) {
		return p.diags
	}
	if len(edges) > 1 {
		for _, e := range edges[1:] {
			p.fail(e, diag.ProcessorMultipleEdges)
		}
		return p.diags
	}

	e := edges[0]
	if !e.IsParam {
		p.fail(e, diag.ProcessorNotParamEdge)
		return p.diags
	}
	ref, ok := p.reference(e, diag.ProcessorNilReference, diag.ProcessorReferenceNotMember)
	if !ok {
		return p.diags
	}

	required := pp.RequireParamType()
	switch ref.Kind() {
	case component.KindTrigger:
		t, _ := component.AsTrigger(ref)
		types := t.ProvideParamTypes()
		if e.TriggerParamIndex < 0 || e.TriggerParamIndex >= len(types) {
			p.fail(e, diag.ProcessorTriggerIndexRange)
			return p.diags
		}
		if !typesys.Satisfies(required, types[e.TriggerParamIndex]) {
			p.fail(e, diag.ProcessorTriggerTypeMismatch)
			return p.diags
		}
		pp.SetRequireParamIndex(t.SelfIndex() + e.TriggerParamIndex)

	case component.KindFreeParam:
		f, _ := component.AsFreeParam(ref)
		if !typesys.Satisfies(required, f.ProvideParamType()) {
			p.fail(e, diag.ProcessorFreeParamTypeMismatch)
			return p.diags
		}
		pp.SetRequireParamIndex(f.SelfIndex())

	case component.KindParamProcessor:
		candidate, _ := component.AsParamProcessor(ref)
		switch {
		case component.Same(candidate, pp):
			p.fail(e, diag.ProcessorSelfReference)
		case r.processorChainReaches(candidate, pp):
			p.fail(e, diag.ProcessorCycle)
		case candidate.SelfIndex() >= pp.SelfIndex():
			p.fail(e, diag.ProcessorOrder)
		case !typesys.Satisfies(required, candidate.ProvideParamType()):
			p.fail(e, diag.ProcessorTypeMismatch)
		default:
			pp.SetRequireParamIndex(candidate.SelfIndex())
		}

	default:
		p.fail(e, diag.ProcessorNotParamProvider)
	}
	return p.diags
}

// processorChainReaches follows the first edge of each processor starting
// at from and reports whether the walk arrives at target. A cycle that does
// not pass through target ends the walk.
func (r *Registry) processorChainReaches(from, target component.ParamProcessor) bool {
	visited := make(map[*component.Core]bool)
	var cur component.Node = from
	for {
		if component.Same(cur, target) {
			return true
		}
		key := component.Key(cur)
		if visited[key] {
			return false
		}
		visited[key] = true

		edges := r.edges[key]
		if len(edges) == 0 || component.IsNil(edges[0].Reference) {
			return false
		}
		next := edges[0].Reference
		if next.Kind() != component.KindParamProcessor {
			return false
		}
		cur = next
	}
}
