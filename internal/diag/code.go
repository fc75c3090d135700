package diag

import (
	"errors"
	"fmt"
)

// Code is a numeric diagnostic. The zero value means no error.
type Code int

const OK Code = 0

// Component admission.
const (
	InvalidComponent Code = iota + 1
	DuplicateFreeParam
	DuplicateParamProcessor
	DuplicateCondition
	DuplicateTargetSearch
	DuplicateEffect
	TriggerMismatch
	FreeParamNotMember
	ParamProcessorNotMember
	ConditionNotMember
	TargetSearchNotMember
	EffectNotMember
	ActivityMismatch
)

// Edge admission.
const (
	EdgeSourceInvalid       Code = 5001
	EdgeReferenceInvalid    Code = 5002
	EdgeSourceNotMember     Code = 5003
	EdgeReferenceNotMember  Code = 5004
	EdgeSourceKind          Code = 5005
	EdgeParamAndTarget      Code = 5006
	EdgeTriggerIndexRange   Code = 5007
	EdgeAffectKind          Code = 5008
	EdgeMissingRequireIndex Code = 5009
	DuplicateEdge           Code = 5010
	MeaninglessEdge         Code = 5011
	EdgeNegativeIndex       Code = 5012
	InvalidEdge             Code = 5100
	EdgeNotFound            Code = 5101
)

// Param processor pass.
const (
	ProcessorNoEdges               Code = 1003
	ProcessorNilReference          Code = 1004
	ProcessorReferenceNotMember    Code = 1005
	ProcessorNotParamProvider      Code = 1006
	ProcessorTriggerIndexRange     Code = 1007
	ProcessorTriggerTypeMismatch   Code = 1008
	ProcessorFreeParamTypeMismatch Code = 1009
	ProcessorTypeMismatch          Code = 1010
	ProcessorSelfReference         Code = 1011
	ProcessorOrder                 Code = 1012
	ProcessorCycle                 Code = 1013
	ProcessorMultipleEdges         Code = 1014
	ProcessorNotParamEdge          Code = 1015
)

// Condition pass.
const (
	ConditionNoEdges                 Code = 1103
	ConditionNilReference            Code = 1104
	ConditionReferenceNotMember      Code = 1105
	ConditionAffectKind              Code = 1106
	ConditionAffectTriggerIndexRange Code = 1107
	ConditionAffectSlotRange         Code = 1108
	ConditionAffectTypeMismatch      Code = 1109
	ConditionNotParamProvider        Code = 1110
	ConditionTriggerIndexRange       Code = 1111
	ConditionTriggerSlotRange        Code = 1112
	ConditionTriggerTypeMismatch     Code = 1113
	ConditionFreeParamSlotRange      Code = 1121
	ConditionFreeParamTypeMismatch   Code = 1122
	ConditionProcessorSlotRange      Code = 1131
	ConditionProcessorTypeMismatch   Code = 1132
	ConditionTargetEdge              Code = 1140
)

// Condition consistency sweep.
const (
	ConditionAffectMissing          Code = 1300
	ConditionSlotUnresolved         Code = 1312
	ConditionSlotIndexRange         Code = 1313
	ConditionSlotNotProvider        Code = 1314
	ConditionAffectNotMember        Code = 1323
	ConditionAffectSlotTypeMismatch Code = 1324
	ConditionAffectSlotMissing      Code = 1325
	ConditionSweepTriggerType       Code = 1332
	ConditionSweepTriggerRange      Code = 1333
	ConditionSweepFreeParamType     Code = 1342
	ConditionSweepProcessorType     Code = 1352
)

// Effect pass.
const (
	EffectNoEdges               Code = 2005
	EffectNilReference          Code = 2006
	EffectReferenceNotMember    Code = 2007
	EffectTargetKind            Code = 2012
	EffectAffectEdge            Code = 2013
	EffectTargetSlotRange       Code = 2022
	EffectTargetTypeMismatch    Code = 2023
	EffectNotParamProvider      Code = 2110
	EffectTriggerIndexRange     Code = 2111
	EffectTriggerSlotRange      Code = 2112
	EffectTriggerTypeMismatch   Code = 2113
	EffectFreeParamSlotRange    Code = 2121
	EffectFreeParamTypeMismatch Code = 2122
	EffectProcessorSlotRange    Code = 2131
	EffectProcessorTypeMismatch Code = 2132
)

// Effect consistency sweep.
const (
	EffectSlotUnresolved     Code = 2312
	EffectSlotIndexRange     Code = 2313
	EffectSlotNotProvider    Code = 2314
	EffectSweepTriggerType   Code = 2332
	EffectSweepTriggerRange  Code = 2333
	EffectSweepFreeParamType Code = 2342
	EffectSweepProcessorType Code = 2352
	EffectTargetUnresolved   Code = 2422
	EffectTargetNotSearch    Code = 2423
	EffectSweepTargetType    Code = 2442
)

// Commit.
const (
	ErrorsExist     Code = -1000
	TriggerInvalid  Code = 9001
	ActivityInvalid Code = 9002
	DuplicateTarget Code = 9003
)

var messages = map[Code]string{
	InvalidComponent:        "component is nil or already owned by an ability",
	DuplicateFreeParam:      "free param is already a member",
	DuplicateParamProcessor: "param processor is already a member",
	DuplicateCondition:      "condition is already a member",
	DuplicateTargetSearch:   "target search is already a member",
	DuplicateEffect:         "effect is already a member",
	TriggerMismatch:         "trigger is not the current trigger",
	FreeParamNotMember:      "free param is not a member",
	ParamProcessorNotMember: "param processor is not a member",
	ConditionNotMember:      "condition is not a member",
	TargetSearchNotMember:   "target search is not a member",
	EffectNotMember:         "effect is not a member",
	ActivityMismatch:        "activity is not the current activity",

	EdgeSourceInvalid:       "edge source is nil or already owned",
	EdgeReferenceInvalid:    "edge reference is nil or already owned",
	EdgeSourceNotMember:     "edge source is not a member",
	EdgeReferenceNotMember:  "edge reference is not a member",
	EdgeSourceKind:          "edge source must be a param processor, condition or effect",
	EdgeParamAndTarget:      "edge cannot be both a param and a target",
	EdgeTriggerIndexRange:   "trigger param index is out of range",
	EdgeAffectKind:          "affect target must be a trigger or target search",
	EdgeMissingRequireIndex: "source has several slots but no slot index was given",
	DuplicateEdge:           "source already has an edge to the same slot",
	MeaninglessEdge:         "edge is neither a param, a target nor an affect target",
	EdgeNegativeIndex:       "edge index is negative",
	InvalidEdge:             "edge is nil or already carries an error",
	EdgeNotFound:            "no matching edge",

	ProcessorNoEdges:               "param processor defines no edges",
	ProcessorNilReference:          "param processor edge has no reference",
	ProcessorReferenceNotMember:    "param processor references a non-member",
	ProcessorNotParamProvider:      "param processor references a component that provides no param",
	ProcessorTriggerIndexRange:     "param processor trigger index is out of range",
	ProcessorTriggerTypeMismatch:   "trigger param type does not satisfy param processor",
	ProcessorFreeParamTypeMismatch: "free param type does not satisfy param processor",
	ProcessorTypeMismatch:          "param processor type does not satisfy param processor",
	ProcessorSelfReference:         "param processor references itself",
	ProcessorOrder:                 "param processor references a later param processor",
	ProcessorCycle:                 "param processor reference cycle",
	ProcessorMultipleEdges:         "param processor defines more than one edge",
	ProcessorNotParamEdge:          "param processor edge is not a param edge",

	ConditionNoEdges:                 "condition defines no edges",
	ConditionNilReference:            "condition edge has no reference",
	ConditionReferenceNotMember:      "condition references a non-member",
	ConditionAffectKind:              "condition affect target must be a trigger or target search",
	ConditionAffectTriggerIndexRange: "condition affect trigger index is out of range",
	ConditionAffectSlotRange:         "condition affect slot is out of range",
	ConditionAffectTypeMismatch:      "condition affect type does not satisfy slot",
	ConditionNotParamProvider:        "condition param references a component that provides no param",
	ConditionTriggerIndexRange:       "condition trigger index is out of range",
	ConditionTriggerSlotRange:        "condition trigger slot is out of range",
	ConditionTriggerTypeMismatch:     "trigger param type does not satisfy condition slot",
	ConditionFreeParamSlotRange:      "condition free param slot is out of range",
	ConditionFreeParamTypeMismatch:   "free param type does not satisfy condition slot",
	ConditionProcessorSlotRange:      "condition param processor slot is out of range",
	ConditionProcessorTypeMismatch:   "param processor type does not satisfy condition slot",
	ConditionTargetEdge:              "condition edge cannot be a target edge",

	ConditionAffectMissing:          "condition has no affect target",
	ConditionSlotUnresolved:         "condition slot is unresolved",
	ConditionSlotIndexRange:         "condition slot index is outside the index space",
	ConditionSlotNotProvider:        "condition slot does not point at a param provider",
	ConditionAffectNotMember:        "condition affect target is not a member trigger or target search",
	ConditionAffectSlotTypeMismatch: "affect target search type does not satisfy condition slot",
	ConditionAffectSlotMissing:      "no condition slot resolves to the affect target search",
	ConditionSweepTriggerType:       "condition slot trigger type mismatch",
	ConditionSweepTriggerRange:      "condition slot beyond trigger provided types",
	ConditionSweepFreeParamType:     "condition slot free param type mismatch",
	ConditionSweepProcessorType:     "condition slot param processor type mismatch",

	EffectNoEdges:               "effect defines no edges",
	EffectNilReference:          "effect edge has no reference",
	EffectReferenceNotMember:    "effect references a non-member",
	EffectTargetKind:            "effect target must be a target search",
	EffectAffectEdge:            "effect edge cannot be an affect edge",
	EffectTargetSlotRange:       "effect target slot is out of range",
	EffectTargetTypeMismatch:    "target search type does not satisfy effect target slot",
	EffectNotParamProvider:      "effect param references a component that provides no param",
	EffectTriggerIndexRange:     "effect trigger index is out of range",
	EffectTriggerSlotRange:      "effect trigger slot is out of range",
	EffectTriggerTypeMismatch:   "trigger param type does not satisfy effect slot",
	EffectFreeParamSlotRange:    "effect free param slot is out of range",
	EffectFreeParamTypeMismatch: "free param type does not satisfy effect slot",
	EffectProcessorSlotRange:    "effect param processor slot is out of range",
	EffectProcessorTypeMismatch: "param processor type does not satisfy effect slot",

	EffectSlotUnresolved:     "effect param slot is unresolved",
	EffectSlotIndexRange:     "effect param slot index is outside the index space",
	EffectSlotNotProvider:    "effect param slot does not point at a param provider",
	EffectSweepTriggerType:   "effect slot trigger type mismatch",
	EffectSweepTriggerRange:  "effect slot beyond trigger provided types",
	EffectSweepFreeParamType: "effect slot free param type mismatch",
	EffectSweepProcessorType: "effect slot param processor type mismatch",
	EffectTargetUnresolved:   "effect target slot is unresolved",
	EffectTargetNotSearch:    "effect target slot does not point at a member target search",
	EffectSweepTargetType:    "effect target slot type mismatch",

	ErrorsExist:     "validation errors exist",
	TriggerInvalid:  "trigger is missing or invalid",
	ActivityInvalid: "activity is missing or invalid",
	DuplicateTarget: "more than one edge fills the same slot",
}

// String returns the human readable message of the code.
func (c Code) String() string {
	if c == OK {
		return "ok"
	}
	if msg, ok := messages[c]; ok {
		return msg
	}
	return fmt.Sprintf("unknown diagnostic %d", int(c))
}

func (c Code) Error() string {
	return fmt.Sprintf("%s (code %d)", c.String(), int(c))
}

// CodeOf extracts the Code carried by err. It returns OK for a nil error
// and false when err does not wrap a Code.
func CodeOf(err error) (Code, bool) {
	if err == nil {
		return OK, true
	}
	var c Code
	if errors.As(err, &c) {
		return c, true
	}
	return OK, false
}
