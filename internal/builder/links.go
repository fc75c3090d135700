package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/config"
	"github.com/specialistvlad/abilitygraph/internal/ctxlog"
	"github.com/specialistvlad/abilitygraph/internal/nodeid"
	"github.com/specialistvlad/abilitygraph/internal/registry"
)

// linkReferences resolves every reference into an edge and adds it to the
// registry. Rejected edges are reported with the registry's diag code, so
// callers can match them with errors.Is.
func linkReferences(ctx context.Context, res *Result, refs []*config.Reference) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting reference linking pass.")

	var errs []error
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		refLogger := logger.With("from", ref.From, "to", ref.To)

		e, err := resolveReference(res, ref)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ref.Origin, err))
			continue
		}
		if err := res.Registry.AddEdge(e); err != nil {
			refLogger.Debug("Registry rejected reference.", "error", err)
			errs = append(errs, fmt.Errorf("%s: reference %s -> %s: %w", ref.Origin, ref.From, ref.To, err))
			continue
		}

		res.Edges = append(res.Edges, e)
		res.Origins[e] = ref.Origin
		refLogger.Debug("Linked reference.", "edge", e.String())
	}

	logger.Debug("Finished reference linking pass.", "errors", len(errs))
	return errors.Join(errs...)
}

// resolveReference looks up both ends of ref and builds its edge. Index
// fields left out of the declaration stay registry.Omitted.
func resolveReference(res *Result, ref *config.Reference) (*registry.Edge, error) {
	from, err := nodeid.ParseComponent(ref.From)
	if err != nil {
		return nil, err
	}
	if from.HasIndex() {
		return nil, fmt.Errorf("reference source %q cannot select a trigger value", ref.From)
	}
	to, err := nodeid.ParseComponent(ref.To)
	if err != nil {
		return nil, err
	}

	source, ok := res.Components[from.Key()]
	if !ok {
		return nil, fmt.Errorf("reference source %q is not declared", ref.From)
	}
	reference, ok := res.Components[to.Key()]
	if !ok {
		return nil, fmt.Errorf("reference target %q is not declared", ref.To)
	}

	triggerParam := registry.Omitted
	if to.HasIndex() {
		triggerParam = to.Index
	}
	if ref.TriggerParam != nil {
		if to.Kind != component.KindTrigger {
			return nil, fmt.Errorf("trigger_param is only valid for trigger references, got %q", ref.To)
		}
		if to.HasIndex() && to.Index != *ref.TriggerParam {
			return nil, fmt.Errorf("reference target %q conflicts with trigger_param = %d", ref.To, *ref.TriggerParam)
		}
		triggerParam = *ref.TriggerParam
	}

	e := registry.NewEdge(source, reference)
	e.IsParam = ref.Param
	e.IsTarget = ref.Target
	e.IsAffectTarget = ref.Affect
	e.TriggerParamIndex = triggerParam
	if ref.Slot != nil {
		e.MultipleRequireIndex = *ref.Slot
	}
	return e, nil
}
