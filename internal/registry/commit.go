package registry

import (
	"context"
	"fmt"
	"slices"

	"github.com/specialistvlad/abilitygraph/internal/ability"
	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/ctxlog"
	"github.com/specialistvlad/abilitygraph/internal/diag"
)

// State is the validation state of a Registry.
type State int

const (
	Uncommitted State = iota
	Validating
	Valid
	Invalid
)

func (s State) String() string {
	switch s {
	case Uncommitted:
		return "uncommitted"
	case Validating:
		return "validating"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// State returns the outcome of the last CheckResult. Any membership or
// edge change resets it to Uncommitted.
func (r *Registry) State() State { return r.state }

// Diagnostics returns what the last CheckResult found.
func (r *Registry) Diagnostics() []Diagnostic { return slices.Clone(r.diagnostics) }

// CheckResult validates the whole graph. It returns nil when the graph can
// be committed, diag.TriggerInvalid or diag.ActivityInvalid when a
// singleton is missing, and diag.ErrorsExist when any pass reported a
// problem; Diagnostics lists them.
func (r *Registry) CheckResult(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	r.state = Validating
	r.diagnostics = nil

	if !r.singletonValid(r.trigger) {
		return r.abort(ctx, placeholder(r.trigger, nil, component.Unresolved), diag.TriggerInvalid)
	}
	if !r.singletonValid(r.activity) {
		return r.abort(ctx, placeholder(r.activity, nil, component.Unresolved), diag.ActivityInvalid)
	}

	r.ReassignIndices()
	if pruned := r.PruneDanglingEdges(); pruned > 0 {
		logger.Debug("Pruned dangling edges.", "count", pruned)
	}
	for _, list := range r.edges {
		for _, e := range list {
			e.ErrorCode = diag.OK
		}
	}

	logger.Debug("Validating ability graph.",
		"components", len(r.Components()),
		"indices", len(r.slots),
		"edges", r.EdgeCount())

	var diags []Diagnostic
	for _, pp := range r.paramProcessors {
		diags = append(diags, r.validateProcessor(pp)...)
	}
	for _, c := range r.conditions {
		diags = append(diags, r.validateCondition(c)...)
	}
	for _, f := range r.effects {
		diags = append(diags, r.validateEffect(f)...)
	}
	r.diagnostics = diags

	if len(diags) > 0 {
		for _, d := range diags {
			logger.Warn("Ability graph diagnostic.",
				"edge", d.Edge.String(),
				"code", int(d.Code),
				"category", d.Code.Category().String(),
				"message", d.Code.String())
		}
		r.state = Invalid
		return diag.ErrorsExist
	}

	r.state = Valid
	logger.Debug("Ability graph is valid.")
	return nil
}

// Commit validates the graph and, when it is valid, seals every member into
// a new Ability. The registry is then empty and can build another graph.
// When validation fails nothing is transferred and the registry is left as
// it was for repair.
func (r *Registry) Commit(ctx context.Context) (*ability.Ability, error) {
	if err := r.CheckResult(ctx); err != nil {
		return nil, err
	}

	parts := ability.Parts{
		Trigger:         r.trigger,
		FreeParams:      sortByIndex(r.freeParams),
		ParamProcessors: sortByIndex(r.paramProcessors),
		TargetSearches:  sortByIndex(r.targetSearches),
		Conditions:      sortByIndex(r.conditions),
		Effects:         sortByIndex(r.effects),
		Activity:        r.activity,
	}
	a, err := ability.New(parts)
	if err != nil {
		r.state = Invalid
		return nil, fmt.Errorf("sealing ability: %w", err)
	}

	ctxlog.FromContext(ctx).Info("Ability committed.",
		"trigger", component.Describe(a.Trigger()),
		"components", len(a.Components()))
	r.Reset()
	return a, nil
}

func (r *Registry) singletonValid(n component.Node) bool {
	return !component.IsNil(n) && !n.Owned() && component.HeldBy(n, r)
}

func (r *Registry) abort(ctx context.Context, e *Edge, code diag.Code) error {
	r.diagnostics = []Diagnostic{{Edge: e, Code: code}}
	r.state = Invalid
	ctxlog.FromContext(ctx).Warn("Ability graph cannot be validated.", "code", int(code), "message", code.String())
	return code
}

func sortByIndex[T component.Node](list []T) []T {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b T) int { return a.SelfIndex() - b.SelfIndex() })
	return out
}
