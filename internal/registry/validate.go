package registry

import (
	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/diag"
	"github.com/specialistvlad/abilitygraph/internal/typesys"
)

// pass collects the diagnostics of one validation run over one node.
type pass struct {
	r     *Registry
	diags []Diagnostic
}

func (p *pass) fail(e *Edge, code diag.Code) {
	if e.ErrorCode == diag.OK {
		e.ErrorCode = code
	}
	p.diags = append(p.diags, Diagnostic{Edge: e, Code: code})
}

// duplicates reports one DuplicateTarget per edge that fills the same slot
// as an earlier edge. It returns whether any was found.
func (p *pass) duplicates(edges []*Edge) bool {
	found := false
	for i, e := range edges {
		for _, prev := range edges[:i] {
			if SameTarget(prev, e) {
				p.fail(e, diag.DuplicateTarget)
				found = true
				break
			}
		}
	}
	return found
}

// reference returns the edge's provider if it is a member, reporting
// nilCode or missingCode otherwise.
func (p *pass) reference(e *Edge, nilCode, missingCode diag.Code) (component.Node, bool) {
	if component.IsNil(e.Reference) {
		p.fail(e, nilCode)
		return nil, false
	}
	if !p.r.Contains(e.Reference) {
		p.fail(e, missingCode)
		return nil, false
	}
	return e.Reference, true
}

// slotSet tracks the resolution of an ordered list of typed slots.
type slotSet struct {
	types []*typesys.Type
	index []int
	// targeted marks slots some edge aimed at, whether or not it resolved.
	targeted []bool
}

func newSlotSet(types []*typesys.Type) *slotSet {
	return &slotSet{
		types:    types,
		index:    component.UnresolvedIndexes(len(types)),
		targeted: make([]bool, len(types)),
	}
}

// aim marks slot i as targeted. It returns false when i is out of range.
func (s *slotSet) aim(i int) bool {
	if i < 0 || i >= len(s.types) {
		return false
	}
	s.targeted[i] = true
	return true
}

// fill stores value in slot i, reporting a second fill as a duplicate.
func (s *slotSet) fill(p *pass, e *Edge, i, value int) {
	if s.index[i] != component.Unresolved {
		p.fail(e, diag.DuplicateTarget)
		return
	}
	s.index[i] = value
}

// paramCodes are the per-kind codes used when resolving a parameter edge.
type paramCodes struct {
	notProvider   diag.Code
	triggerIndex  diag.Code
	triggerSlot   diag.Code
	triggerType   diag.Code
	freeSlot      diag.Code
	freeType      diag.Code
	processorSlot diag.Code
	processorType diag.Code
}

var conditionParamCodes = paramCodes{
	notProvider:   diag.ConditionNotParamProvider,
	triggerIndex:  diag.ConditionTriggerIndexRange,
	triggerSlot:   diag.ConditionTriggerSlotRange,
	triggerType:   diag.ConditionTriggerTypeMismatch,
	freeSlot:      diag.ConditionFreeParamSlotRange,
	freeType:      diag.ConditionFreeParamTypeMismatch,
	processorSlot: diag.ConditionProcessorSlotRange,
	processorType: diag.ConditionProcessorTypeMismatch,
}

var effectParamCodes = paramCodes{
	notProvider:   diag.EffectNotParamProvider,
	triggerIndex:  diag.EffectTriggerIndexRange,
	triggerSlot:   diag.EffectTriggerSlotRange,
	triggerType:   diag.EffectTriggerTypeMismatch,
	freeSlot:      diag.EffectFreeParamSlotRange,
	freeType:      diag.EffectFreeParamTypeMismatch,
	processorSlot: diag.EffectProcessorSlotRange,
	processorType: diag.EffectProcessorTypeMismatch,
}

// resolveParam fills the parameter slot named by e from its provider. The
// slot counts as targeted even when the edge turns out to be wrong, so the
// sweep does not report it a second time.
func (p *pass) resolveParam(e *Edge, ref component.Node, slots *slotSet, codes paramCodes) {
	slot := e.MultipleRequireIndex
	inRange := slots.aim(slot)

	var (
		provided         *typesys.Type
		index            int
		slotCode, tyCode diag.Code
	)
	switch ref.Kind() {
	case component.KindTrigger:
		t, _ := component.AsTrigger(ref)
		types := t.ProvideParamTypes()
		if e.TriggerParamIndex < 0 || e.TriggerParamIndex >= len(types) {
			p.fail(e, codes.triggerIndex)
			return
		}
		provided = types[e.TriggerParamIndex]
		index = t.SelfIndex() + e.TriggerParamIndex
		slotCode, tyCode = codes.triggerSlot, codes.triggerType
	case component.KindFreeParam:
		f, _ := component.AsFreeParam(ref)
		provided, index = f.ProvideParamType(), f.SelfIndex()
		slotCode, tyCode = codes.freeSlot, codes.freeType
	case component.KindParamProcessor:
		pp, _ := component.AsParamProcessor(ref)
		provided, index = pp.ProvideParamType(), pp.SelfIndex()
		slotCode, tyCode = codes.processorSlot, codes.processorType
	default:
		p.fail(e, codes.notProvider)
		return
	}

	if !inRange {
		p.fail(e, slotCode)
		return
	}
	if !typesys.Satisfies(slots.types[slot], provided) {
		p.fail(e, tyCode)
		return
	}
	slots.fill(p, e, slot, index)
}

// sweepCodes are the per-kind codes used by the consistency sweep over a
// resolved parameter list.
type sweepCodes struct {
	unresolved   diag.Code
	outOfRange   diag.Code
	notProvider  diag.Code
	triggerType  diag.Code
	triggerRange diag.Code
	freeType     diag.Code
	procType     diag.Code
}

var conditionSweepCodes = sweepCodes{
	unresolved:   diag.ConditionSlotUnresolved,
	outOfRange:   diag.ConditionSlotIndexRange,
	notProvider:  diag.ConditionSlotNotProvider,
	triggerType:  diag.ConditionSweepTriggerType,
	triggerRange: diag.ConditionSweepTriggerRange,
	freeType:     diag.ConditionSweepFreeParamType,
	procType:     diag.ConditionSweepProcessorType,
}

var effectSweepCodes = sweepCodes{
	unresolved:   diag.EffectSlotUnresolved,
	outOfRange:   diag.EffectSlotIndexRange,
	notProvider:  diag.EffectSlotNotProvider,
	triggerType:  diag.EffectSweepTriggerType,
	triggerRange: diag.EffectSweepTriggerRange,
	freeType:     diag.EffectSweepFreeParamType,
	procType:     diag.EffectSweepProcessorType,
}

// sweepParam re-validates one resolved parameter slot against the index
// space. Slots no edge aimed at are reported as unresolved; slots whose
// edge failed were already reported.
func (p *pass) sweepParam(source component.Node, slots *slotSet, i int, codes sweepCodes) {
	idx := slots.index[i]
	if idx == component.Unresolved {
		if !slots.targeted[i] {
			p.fail(placeholder(source, nil, i), codes.unresolved)
		}
		return
	}

	n := p.r.NodeAt(idx)
	if n == nil {
		p.fail(placeholder(source, nil, i), codes.outOfRange)
		return
	}
	required := slots.types[i]
	switch n.Kind() {
	case component.KindTrigger:
		provided, ok := component.ProvidedParamType(n, idx)
		if !ok {
			p.fail(placeholder(source, n, i), codes.triggerRange)
			return
		}
		if !typesys.Satisfies(required, provided) {
			p.fail(placeholder(source, n, i), codes.triggerType)
		}
	case component.KindFreeParam:
		f, _ := component.AsFreeParam(n)
		if !typesys.Satisfies(required, f.ProvideParamType()) {
			p.fail(placeholder(source, n, i), codes.freeType)
		}
	case component.KindParamProcessor:
		pp, _ := component.AsParamProcessor(n)
		if !typesys.Satisfies(required, pp.ProvideParamType()) {
			p.fail(placeholder(source, n, i), codes.procType)
		}
	default:
		p.fail(placeholder(source, n, i), codes.notProvider)
	}
}
