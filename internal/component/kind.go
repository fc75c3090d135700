package component

import "fmt"

// Kind tags a component. The declaration order is also the order in which
// the registry lays components out in the global index space.
type Kind int

const (
	KindTrigger Kind = iota
	KindFreeParam
	KindParamProcessor
	KindTargetSearch
	KindCondition
	KindEffect
	KindActivity
)

var kindNames = [...]string{
	KindTrigger:        "trigger",
	KindFreeParam:      "free_param",
	KindParamProcessor: "param_processor",
	KindTargetSearch:   "target_search",
	KindCondition:      "condition",
	KindEffect:         "effect",
	KindActivity:       "activity",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the seven declared kinds.
func (k Kind) Valid() bool {
	return k >= KindTrigger && k <= KindActivity
}

// IsParamProvider reports whether components of this kind can fill a
// parameter slot.
func (k Kind) IsParamProvider() bool {
	return k == KindTrigger || k == KindFreeParam || k == KindParamProcessor
}

// IsConsumer reports whether components of this kind own edges.
func (k Kind) IsConsumer() bool {
	return k == KindParamProcessor || k == KindCondition || k == KindEffect
}

// Kinds returns all kinds in index order.
func Kinds() []Kind {
	return []Kind{
		KindTrigger, KindFreeParam, KindParamProcessor, KindTargetSearch,
		KindCondition, KindEffect, KindActivity,
	}
}

// ParseKind maps the snake_case name of a kind back to its tag.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown component kind %q", s)
}
