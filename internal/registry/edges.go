package registry

import (
	"slices"

	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/diag"
)

// CheckEdge validates the structure of e against the current members. It
// does not modify e and does not look at other edges.
func (r *Registry) CheckEdge(e *Edge) error {
	if e == nil {
		return diag.InvalidEdge
	}
	if component.IsNil(e.Source) || e.Source.Owned() {
		return diag.EdgeSourceInvalid
	}
	if component.IsNil(e.Reference) || e.Reference.Owned() {
		return diag.EdgeReferenceInvalid
	}
	if !e.Source.Kind().IsConsumer() {
		return diag.EdgeSourceKind
	}
	if !r.Contains(e.Source) {
		return diag.EdgeSourceNotMember
	}
	if !r.Contains(e.Reference) {
		return diag.EdgeReferenceNotMember
	}
	if e.IsParam && e.IsTarget {
		return diag.EdgeParamAndTarget
	}
	if !e.IsParam && !e.IsTarget && !e.IsAffectTarget {
		return diag.MeaninglessEdge
	}
	if e.IsAffectTarget {
		if k := e.Reference.Kind(); k != component.KindTrigger && k != component.KindTargetSearch {
			return diag.EdgeAffectKind
		}
	}
	// Omitted is the only negative value an index may hold.
	if e.TriggerParamIndex < Omitted || e.MultipleRequireIndex < Omitted {
		return diag.EdgeNegativeIndex
	}
	if n := triggerSlots(e); n >= 0 {
		if e.TriggerParamIndex == Omitted && n != 1 || e.TriggerParamIndex >= n {
			return diag.EdgeTriggerIndexRange
		}
	}
	if e.MultipleRequireIndex == Omitted && requireSlots(e) > 1 {
		return diag.EdgeMissingRequireIndex
	}
	return nil
}

// AddEdge checks e, fills omitted indexes and appends it to its source's
// edge set. An edge filling the same slot as an existing one is rejected.
func (r *Registry) AddEdge(e *Edge) error {
	if e == nil || e.ErrorCode != diag.OK {
		return diag.InvalidEdge
	}
	if err := r.CheckEdge(e); err != nil {
		return err
	}

	key := component.Key(e.Source)
	siblings := r.edges[key]
	if slices.Contains(siblings, e) {
		return diag.DuplicateEdge
	}

	candidate := *e
	normalize(&candidate)
	for _, s := range siblings {
		if SameTarget(s, &candidate) {
			return diag.DuplicateEdge
		}
	}

	normalize(e)
	r.edges[key] = append(siblings, e)
	r.sources[key] = e.Source
	r.touch()
	return nil
}

// RemoveEdge disposes every edge of shape's source that fills the same slot
// as shape, including shape itself when it is registered.
func (r *Registry) RemoveEdge(shape *Edge) error {
	if shape == nil {
		return diag.InvalidEdge
	}
	key := component.Key(shape.Source)
	siblings := r.edges[key]
	if key == nil || len(siblings) == 0 {
		return diag.EdgeNotFound
	}

	probe := *shape
	probe.ErrorCode = diag.OK
	normalize(&probe)

	var kept, removed []*Edge
	for _, s := range siblings {
		if s == shape || SameTarget(s, &probe) {
			removed = append(removed, s)
		} else {
			kept = append(kept, s)
		}
	}
	if len(removed) == 0 {
		return diag.EdgeNotFound
	}

	r.setEdges(key, kept)
	for _, s := range removed {
		s.dispose()
	}
	r.touch()
	return nil
}

// Edges returns the edges of source in insertion order.
func (r *Registry) Edges(source component.Node) []*Edge {
	return slices.Clone(r.edges[component.Key(source)])
}

// EdgeCount is the total number of registered edges.
func (r *Registry) EdgeCount() int {
	n := 0
	for _, list := range r.edges {
		n += len(list)
	}
	return n
}

func (r *Registry) setEdges(key *component.Core, list []*Edge) {
	if len(list) == 0 {
		delete(r.edges, key)
		delete(r.sources, key)
		return
	}
	r.edges[key] = list
}

// normalize replaces omitted indexes with 0. CheckEdge has already
// rejected the cases where 0 would be a guess.
func normalize(e *Edge) {
	if e.TriggerParamIndex == Omitted {
		e.TriggerParamIndex = 0
	}
	if e.MultipleRequireIndex == Omitted {
		e.MultipleRequireIndex = 0
	}
}

// triggerSlots is the number of values the referenced trigger provides, or
// -1 when the edge does not take a trigger value.
func triggerSlots(e *Edge) int {
	if !e.IsParam {
		return -1
	}
	t, ok := component.AsTrigger(e.Reference)
	if !ok {
		return -1
	}
	return len(t.ProvideParamTypes())
}

// requireSlots is the number of source slots the edge can fill, or -1 when
// the edge fills none.
func requireSlots(e *Edge) int {
	switch e.Source.Kind() {
	case component.KindParamProcessor:
		return 1
	case component.KindCondition:
		c, _ := component.AsCondition(e.Source)
		if e.IsAffectTarget && !e.IsParam && e.Reference.Kind() == component.KindTrigger {
			return -1
		}
		return len(c.RequireParamTypes())
	case component.KindEffect:
		f, _ := component.AsEffect(e.Source)
		if e.IsTarget {
			return len(f.RequireTargetTypes())
		}
		return len(f.RequireParamTypes())
	default:
		return -1
	}
}
