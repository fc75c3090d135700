package component

import "github.com/specialistvlad/abilitygraph/internal/typesys"

// The As* helpers narrow a Node to its kind interface. They fail for nil
// nodes and for nodes of a different kind.

func AsTrigger(n Node) (Trigger, bool) {
	if IsNil(n) || n.Kind() != KindTrigger {
		return nil, false
	}
	t, ok := n.(Trigger)
	return t, ok
}

func AsFreeParam(n Node) (FreeParam, bool) {
	if IsNil(n) || n.Kind() != KindFreeParam {
		return nil, false
	}
	f, ok := n.(FreeParam)
	return f, ok
}

func AsParamProcessor(n Node) (ParamProcessor, bool) {
	if IsNil(n) || n.Kind() != KindParamProcessor {
		return nil, false
	}
	p, ok := n.(ParamProcessor)
	return p, ok
}

func AsTargetSearch(n Node) (TargetSearch, bool) {
	if IsNil(n) || n.Kind() != KindTargetSearch {
		return nil, false
	}
	s, ok := n.(TargetSearch)
	return s, ok
}

func AsCondition(n Node) (Condition, bool) {
	if IsNil(n) || n.Kind() != KindCondition {
		return nil, false
	}
	c, ok := n.(Condition)
	return c, ok
}

func AsEffect(n Node) (Effect, bool) {
	if IsNil(n) || n.Kind() != KindEffect {
		return nil, false
	}
	e, ok := n.(Effect)
	return e, ok
}

func AsActivity(n Node) (Activity, bool) {
	if IsNil(n) || n.Kind() != KindActivity {
		return nil, false
	}
	a, ok := n.(Activity)
	return a, ok
}

// ProvidedParamType returns the type a parameter provider yields at the
// given global index. For triggers the index selects one of its value slots.
func ProvidedParamType(n Node, index int) (*typesys.Type, bool) {
	switch n.Kind() {
	case KindTrigger:
		t, _ := AsTrigger(n)
		slot := index - t.SelfIndex()
		types := t.ProvideParamTypes()
		if slot < 0 || slot >= len(types) {
			return nil, false
		}
		return types[slot], true
	case KindFreeParam:
		f, _ := AsFreeParam(n)
		return f.ProvideParamType(), true
	case KindParamProcessor:
		p, _ := AsParamProcessor(n)
		return p.ProvideParamType(), true
	default:
		return nil, false
	}
}
