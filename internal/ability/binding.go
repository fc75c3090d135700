package ability

import (
	"context"

	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/ctxlog"
)

// ConditionBinding is a condition together with the providers of its
// parameter slots, in slot order.
type ConditionBinding struct {
	Condition component.Condition
	Params    []component.Node
}

// ConditionInputs returns the conditions evaluated against the component at
// affectIndex. Conditions whose slots cannot be bound are logged and left
// out.
func (a *Ability) ConditionInputs(ctx context.Context, affectIndex int) []ConditionBinding {
	logger := ctxlog.FromContext(ctx)

	var out []ConditionBinding
	for _, c := range a.conditions {
		if c.AffectComponentIndex() != affectIndex {
			continue
		}
		indexes := c.RequireParamIndexes()
		if len(indexes) != len(c.RequireParamTypes()) {
			logger.Warn("Condition parameter count mismatch, skipping.",
				"condition", component.Describe(c),
				"expected", len(c.RequireParamTypes()),
				"resolved", len(indexes))
			continue
		}
		params, ok := a.bindParams(indexes, true)
		if !ok {
			logger.Warn("Condition has a parameter slot that does not resolve, skipping.",
				"condition", component.Describe(c), "indexes", indexes)
			continue
		}
		out = append(out, ConditionBinding{Condition: c, Params: params})
	}
	return out
}

// EffectBinding is an effect together with the providers of its parameter
// slots and the searches feeding its target slots.
type EffectBinding struct {
	Effect  component.Effect
	Params  []component.Node
	Targets []component.TargetSearch
}

// EffectInputs binds the slots of an effect owned by this ability. It
// returns false, after logging the reason, when any slot does not resolve.
func (a *Ability) EffectInputs(ctx context.Context, effect component.Effect) (EffectBinding, bool) {
	logger := ctxlog.FromContext(ctx)
	if component.IsNil(effect) || effect.Owner() != a {
		logger.Warn("Effect is not part of this ability.", "effect", component.Describe(effect))
		return EffectBinding{}, false
	}

	paramIdx := effect.RequireParamIndexes()
	targetIdx := effect.RequireTargetIndexes()
	if len(paramIdx) != len(effect.RequireParamTypes()) || len(targetIdx) != len(effect.RequireTargetTypes()) {
		logger.Warn("Effect slot count mismatch.",
			"effect", component.Describe(effect),
			"params", len(paramIdx), "targets", len(targetIdx))
		return EffectBinding{}, false
	}

	params, ok := a.bindParams(paramIdx, false)
	if !ok {
		logger.Warn("Effect has a parameter slot that does not resolve.",
			"effect", component.Describe(effect), "indexes", paramIdx)
		return EffectBinding{}, false
	}

	targets := make([]component.TargetSearch, 0, len(targetIdx))
	for _, i := range targetIdx {
		ts, ok := component.AsTargetSearch(a.NodeAt(i))
		if !ok {
			logger.Warn("Effect target slot does not point at a target search.",
				"effect", component.Describe(effect), "index", i)
			return EffectBinding{}, false
		}
		targets = append(targets, ts)
	}
	return EffectBinding{Effect: effect, Params: params, Targets: targets}, true
}

// bindParams resolves slot indexes to providers. Conditions may also bind a
// slot to their affect target search.
func (a *Ability) bindParams(indexes []int, allowSearch bool) ([]component.Node, bool) {
	params := make([]component.Node, 0, len(indexes))
	for _, i := range indexes {
		n := a.NodeAt(i)
		switch {
		case n == nil:
			return nil, false
		case n.Kind().IsParamProvider():
		case allowSearch && n.Kind() == component.KindTargetSearch:
		default:
			return nil, false
		}
		params = append(params, n)
	}
	return params, true
}
