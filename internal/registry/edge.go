package registry

import (
	"fmt"

	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/diag"
)

// Omitted marks an index field the caller did not set. AddEdge replaces it
// with 0 where the choice is unambiguous.
const Omitted = -1

// Edge links a consumer (Source) to a provider (Reference). Edges are owned
// by the caller; the registry only indexes them by source.
type Edge struct {
	Source    component.Node
	Reference component.Node

	// IsParam fills a parameter slot of the source.
	IsParam bool
	// IsTarget fills a target slot of an effect.
	IsTarget bool
	// IsAffectTarget designates what a condition is evaluated against.
	IsAffectTarget bool

	// TriggerParamIndex selects one of the trigger's provided values.
	TriggerParamIndex int
	// MultipleRequireIndex selects the slot of the source being filled.
	MultipleRequireIndex int

	ErrorCode diag.Code
}

// NewEdge returns an untagged edge with both indexes omitted.
func NewEdge(source, reference component.Node) *Edge {
	return &Edge{
		Source:               source,
		Reference:            reference,
		TriggerParamIndex:    Omitted,
		MultipleRequireIndex: Omitted,
	}
}

// ParamEdge fills parameter slot of source from a free param or processor.
func ParamEdge(source, reference component.Node, slot int) *Edge {
	e := NewEdge(source, reference)
	e.IsParam = true
	e.MultipleRequireIndex = slot
	return e
}

// TriggerParamEdge fills parameter slot of source with the trigger value at
// triggerParam.
func TriggerParamEdge(source, trigger component.Node, triggerParam, slot int) *Edge {
	e := ParamEdge(source, trigger, slot)
	e.TriggerParamIndex = triggerParam
	return e
}

// TargetEdge fills target slot of an effect from a target search.
func TargetEdge(source, search component.Node, slot int) *Edge {
	e := NewEdge(source, search)
	e.IsTarget = true
	e.MultipleRequireIndex = slot
	return e
}

// AffectEdge makes reference the affect target of a condition. When the
// reference is a target search, slot is the parameter slot it also fills.
func AffectEdge(source, reference component.Node, slot int) *Edge {
	e := NewEdge(source, reference)
	e.IsAffectTarget = true
	e.MultipleRequireIndex = slot
	return e
}

// SameTarget reports whether a and b share a source and fill the same
// logical slot. The provider they point at is not compared.
func SameTarget(a, b *Edge) bool {
	if a == nil || b == nil || !component.Same(a.Source, b.Source) {
		return false
	}
	switch {
	case a.IsAffectTarget && b.IsAffectTarget:
		return true
	case a.IsParam && b.IsParam:
		return a.TriggerParamIndex == b.TriggerParamIndex &&
			a.MultipleRequireIndex == b.MultipleRequireIndex
	case a.IsTarget && b.IsTarget:
		return a.MultipleRequireIndex == b.MultipleRequireIndex
	default:
		return false
	}
}

func (e *Edge) String() string {
	if e == nil {
		return "<nil edge>"
	}
	var tags []byte
	if e.IsParam {
		tags = append(tags, 'p')
	}
	if e.IsTarget {
		tags = append(tags, 't')
	}
	if e.IsAffectTarget {
		tags = append(tags, 'a')
	}
	return fmt.Sprintf("%s -> %s [%s tp=%d slot=%d]",
		component.Describe(e.Source), component.Describe(e.Reference),
		tags, e.TriggerParamIndex, e.MultipleRequireIndex)
}

// dispose detaches e from everything it referenced.
func (e *Edge) dispose() {
	e.Source = nil
	e.Reference = nil
	e.ErrorCode = diag.OK
}

// Diagnostic pairs an error code with the edge that caused it. Errors about
// a node as a whole carry a placeholder edge with only Source set, plus the
// slot when one is concerned.
type Diagnostic struct {
	Edge *Edge
	Code diag.Code
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Edge, d.Code.Error())
}

// placeholder builds the edge carried by node level diagnostics.
func placeholder(source, reference component.Node, slot int) *Edge {
	e := NewEdge(source, reference)
	e.MultipleRequireIndex = slot
	return e
}
