package registry

import (
	"slices"

	"github.com/specialistvlad/abilitygraph/internal/component"
)

// ReassignIndices lays out the global index space in kind order. The
// trigger takes one index per provided value (at least one), every other
// member takes one. Calling it again without membership changes yields the
// same indices.
func (r *Registry) ReassignIndices() {
	r.freeParams = dropNil(r.freeParams)
	r.paramProcessors = dropNil(r.paramProcessors)
	r.targetSearches = dropNil(r.targetSearches)
	r.conditions = dropNil(r.conditions)
	r.effects = dropNil(r.effects)

	r.slots = r.slots[:0]
	if !component.IsNil(r.trigger) {
		r.trigger.SetSelfIndex(0)
		for range max(1, len(r.trigger.ProvideParamTypes())) {
			r.slots = append(r.slots, r.trigger)
		}
	}
	place := func(n component.Node) {
		n.SetSelfIndex(len(r.slots))
		r.slots = append(r.slots, n)
	}
	for _, n := range r.Components() {
		if n.Kind() != component.KindTrigger {
			place(n)
		}
	}
}

// NodeAt returns the member at a global index as of the last
// ReassignIndices, or nil.
func (r *Registry) NodeAt(index int) component.Node {
	if index < 0 || index >= len(r.slots) {
		return nil
	}
	n := r.slots[index]
	if !r.Contains(n) {
		return nil
	}
	return n
}

// PruneDanglingEdges disposes edges whose source is invalid, no longer a
// member, or no longer the node the edge was indexed under. It returns the
// number of edges removed.
func (r *Registry) PruneDanglingEdges() int {
	pruned := 0
	for key, list := range r.edges {
		source := r.sources[key]
		if component.IsNil(source) || source.Owned() || !r.Contains(source) {
			for _, e := range list {
				e.dispose()
			}
			pruned += len(list)
			delete(r.edges, key)
			delete(r.sources, key)
			continue
		}

		kept := slices.DeleteFunc(slices.Clone(list), func(e *Edge) bool {
			return !component.Same(e.Source, source)
		})
		if len(kept) == len(list) {
			continue
		}
		for _, e := range list {
			if !slices.Contains(kept, e) {
				e.dispose()
				pruned++
			}
		}
		r.setEdges(key, kept)
	}
	return pruned
}

func dropNil[T component.Node](list []T) []T {
	return slices.DeleteFunc(list, func(n T) bool { return component.IsNil(n) })
}
