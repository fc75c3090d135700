package diag

// Category groups codes by the subsystem that raises them.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryAdmission
	CategoryEdge
	CategoryParamProcessor
	CategoryCondition
	CategoryConditionSweep
	CategoryEffect
	CategoryEffectSweep
	CategoryCommit
)

var categoryNames = [...]string{
	CategoryUnknown:        "unknown",
	CategoryAdmission:      "admission",
	CategoryEdge:           "edge",
	CategoryParamProcessor: "param_processor",
	CategoryCondition:      "condition",
	CategoryConditionSweep: "condition_sweep",
	CategoryEffect:         "effect",
	CategoryEffectSweep:    "effect_sweep",
	CategoryCommit:         "commit",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return categoryNames[CategoryUnknown]
	}
	return categoryNames[c]
}

// Category returns the subsystem range c belongs to.
func (c Code) Category() Category {
	switch {
	case c >= InvalidComponent && c <= ActivityMismatch:
		return CategoryAdmission
	case c >= EdgeSourceInvalid && c <= EdgeNotFound:
		return CategoryEdge
	case c >= ProcessorNoEdges && c <= ProcessorNotParamEdge:
		return CategoryParamProcessor
	case c >= ConditionNoEdges && c <= ConditionTargetEdge:
		return CategoryCondition
	case c >= ConditionAffectMissing && c <= ConditionSweepProcessorType:
		return CategoryConditionSweep
	case c >= EffectNoEdges && c <= EffectProcessorTypeMismatch:
		return CategoryEffect
	case c >= EffectSlotUnresolved && c <= EffectSweepTargetType:
		return CategoryEffectSweep
	case c == ErrorsExist, c >= TriggerInvalid && c <= DuplicateTarget:
		return CategoryCommit
	default:
		return CategoryUnknown
	}
}
