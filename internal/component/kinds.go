package component

import "github.com/specialistvlad/abilitygraph/internal/typesys"

// Trigger starts an ability and provides an ordered list of values. Its
// value slots occupy the first positions of the global index space.
type Trigger interface {
	Node
	ProvideParamTypes() []*typesys.Type
}

// FreeParam provides a single value independent of the trigger.
type FreeParam interface {
	Node
	ProvideParamType() *typesys.Type
}

// ParamProcessor turns one value into another.
type ParamProcessor interface {
	Node
	RequireParamType() *typesys.Type
	ProvideParamType() *typesys.Type
	RequireParamIndex() int
	SetRequireParamIndex(int)
}

// TargetSearch enumerates candidate targets of one type.
type TargetSearch interface {
	Node
	ProvideTargetType() *typesys.Type
}

// Condition is evaluated against its affect target with ordered parameters.
type Condition interface {
	Node
	RequireParamTypes() []*typesys.Type
	RequireParamIndexes() []int
	SetRequireParamIndexes([]int)
	AffectComponentIndex() int
	SetAffectComponentIndex(int)
}

// Effect consumes ordered parameters and ordered target lists.
type Effect interface {
	Node
	RequireParamTypes() []*typesys.Type
	RequireParamIndexes() []int
	SetRequireParamIndexes([]int)
	RequireTargetTypes() []*typesys.Type
	RequireTargetIndexes() []int
	SetRequireTargetIndexes([]int)
}

// Activity is the terminal component that drives the effects.
type Activity interface {
	Node
	isActivity()
}

// TriggerBase implements Trigger.
type TriggerBase struct {
	Core
	provides []*typesys.Type
}

// NewTrigger returns a trigger providing values of the given types.
func NewTrigger(name string, provides ...*typesys.Type) *TriggerBase {
	return &TriggerBase{Core: newCore(name), provides: cloneTypes(provides)}
}

func (t *TriggerBase) Kind() Kind { return KindTrigger }

func (t *TriggerBase) ProvideParamTypes() []*typesys.Type { return cloneTypes(t.provides) }

func (t *TriggerBase) base() *Core {
	if t == nil {
		return nil
	}
	return &t.Core
}

// FreeParamBase implements FreeParam.
type FreeParamBase struct {
	Core
	provides *typesys.Type
}

// NewFreeParam returns a free parameter of the given type.
func NewFreeParam(name string, provides *typesys.Type) *FreeParamBase {
	return &FreeParamBase{Core: newCore(name), provides: provides}
}

func (f *FreeParamBase) Kind() Kind { return KindFreeParam }

func (f *FreeParamBase) ProvideParamType() *typesys.Type { return f.provides }

func (f *FreeParamBase) base() *Core {
	if f == nil {
		return nil
	}
	return &f.Core
}

// ParamProcessorBase implements ParamProcessor.
type ParamProcessorBase struct {
	Core
	requires          *typesys.Type
	provides          *typesys.Type
	requireParamIndex int
}

// NewParamProcessor returns a processor converting requires into provides.
func NewParamProcessor(name string, requires, provides *typesys.Type) *ParamProcessorBase {
	return &ParamProcessorBase{
		Core:              newCore(name),
		requires:          requires,
		provides:          provides,
		requireParamIndex: Unresolved,
	}
}

func (p *ParamProcessorBase) Kind() Kind { return KindParamProcessor }

func (p *ParamProcessorBase) RequireParamType() *typesys.Type { return p.requires }

func (p *ParamProcessorBase) ProvideParamType() *typesys.Type { return p.provides }

func (p *ParamProcessorBase) RequireParamIndex() int { return p.requireParamIndex }

func (p *ParamProcessorBase) SetRequireParamIndex(i int) { p.requireParamIndex = i }

func (p *ParamProcessorBase) base() *Core {
	if p == nil {
		return nil
	}
	return &p.Core
}

// TargetSearchBase implements TargetSearch.
type TargetSearchBase struct {
	Core
	provides *typesys.Type
}

// NewTargetSearch returns a search yielding targets of the given type.
func NewTargetSearch(name string, provides *typesys.Type) *TargetSearchBase {
	return &TargetSearchBase{Core: newCore(name), provides: provides}
}

func (s *TargetSearchBase) Kind() Kind { return KindTargetSearch }

func (s *TargetSearchBase) ProvideTargetType() *typesys.Type { return s.provides }

func (s *TargetSearchBase) base() *Core {
	if s == nil {
		return nil
	}
	return &s.Core
}

// ConditionBase implements Condition.
type ConditionBase struct {
	Core
	requires             []*typesys.Type
	requireParamIndexes  []int
	affectComponentIndex int
}

// NewCondition returns a condition requiring parameters of the given types.
func NewCondition(name string, requires ...*typesys.Type) *ConditionBase {
	return &ConditionBase{
		Core:                 newCore(name),
		requires:             cloneTypes(requires),
		requireParamIndexes:  UnresolvedIndexes(len(requires)),
		affectComponentIndex: Unresolved,
	}
}

func (c *ConditionBase) Kind() Kind { return KindCondition }

func (c *ConditionBase) RequireParamTypes() []*typesys.Type { return cloneTypes(c.requires) }

func (c *ConditionBase) RequireParamIndexes() []int { return cloneInts(c.requireParamIndexes) }

func (c *ConditionBase) SetRequireParamIndexes(idx []int) { c.requireParamIndexes = cloneInts(idx) }

func (c *ConditionBase) AffectComponentIndex() int { return c.affectComponentIndex }

func (c *ConditionBase) SetAffectComponentIndex(i int) { c.affectComponentIndex = i }

func (c *ConditionBase) base() *Core {
	if c == nil {
		return nil
	}
	return &c.Core
}

// EffectBase implements Effect.
type EffectBase struct {
	Core
	requireParams        []*typesys.Type
	requireTargets       []*typesys.Type
	requireParamIndexes  []int
	requireTargetIndexes []int
}

// NewEffect returns an effect with the given parameter and target slots.
func NewEffect(name string, params, targets []*typesys.Type) *EffectBase {
	return &EffectBase{
		Core:                 newCore(name),
		requireParams:        cloneTypes(params),
		requireTargets:       cloneTypes(targets),
		requireParamIndexes:  UnresolvedIndexes(len(params)),
		requireTargetIndexes: UnresolvedIndexes(len(targets)),
	}
}

func (e *EffectBase) Kind() Kind { return KindEffect }

func (e *EffectBase) RequireParamTypes() []*typesys.Type { return cloneTypes(e.requireParams) }

func (e *EffectBase) RequireTargetTypes() []*typesys.Type { return cloneTypes(e.requireTargets) }

func (e *EffectBase) RequireParamIndexes() []int { return cloneInts(e.requireParamIndexes) }

func (e *EffectBase) SetRequireParamIndexes(idx []int) { e.requireParamIndexes = cloneInts(idx) }

func (e *EffectBase) RequireTargetIndexes() []int { return cloneInts(e.requireTargetIndexes) }

func (e *EffectBase) SetRequireTargetIndexes(idx []int) { e.requireTargetIndexes = cloneInts(idx) }

func (e *EffectBase) base() *Core {
	if e == nil {
		return nil
	}
	return &e.Core
}

// ActivityBase implements Activity.
type ActivityBase struct {
	Core
}

// NewActivity returns an activity.
func NewActivity(name string) *ActivityBase {
	return &ActivityBase{Core: newCore(name)}
}

func (a *ActivityBase) Kind() Kind { return KindActivity }

func (a *ActivityBase) isActivity() {}

func (a *ActivityBase) base() *Core {
	if a == nil {
		return nil
	}
	return &a.Core
}

// UnresolvedIndexes returns n copies of Unresolved.
func UnresolvedIndexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = Unresolved
	}
	return out
}

func cloneTypes(in []*typesys.Type) []*typesys.Type {
	out := make([]*typesys.Type, len(in))
	copy(out, in)
	return out
}

func cloneInts(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	return out
}
