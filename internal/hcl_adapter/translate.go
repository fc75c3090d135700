// This file translates the decoded HCL blocks into the format-agnostic
// model of the config package.

package hcl_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/config"
	"github.com/specialistvlad/abilitygraph/internal/ctxlog"
)

func origin(file, block, name string) string {
	return fmt.Sprintf("%s: %s %q", file, block, name)
}

// translateFile converts one decoded file. Reference errors are collected
// so every bad ref in the file is reported at once.
func (l *Loader) translateFile(ctx context.Context, file string, root *fileRoot) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx).With("file", file)
	ctx = ctxlog.WithLogger(ctx, logger)

	m := &config.Model{}

	for _, t := range root.Types {
		m.Types = append(m.Types, &config.TypeDefinition{
			Name:    t.Name,
			Parents: t.Parents,
			Origin:  origin(file, "type", t.Name),
		})
	}

	for _, b := range root.Triggers {
		m.Components = append(m.Components, &config.ComponentDefinition{
			Kind:     component.KindTrigger.String(),
			Name:     b.Name,
			Provides: b.Provides,
			Origin:   origin(file, component.KindTrigger.String(), b.Name),
		})
	}
	for _, b := range root.FreeParams {
		m.Components = append(m.Components, singleProvide(file, component.KindFreeParam, b))
	}
	for _, b := range root.ParamProcessors {
		m.Components = append(m.Components, &config.ComponentDefinition{
			Kind:     component.KindParamProcessor.String(),
			Name:     b.Name,
			Requires: []string{b.Requires},
			Provides: []string{b.Provides},
			Origin:   origin(file, component.KindParamProcessor.String(), b.Name),
		})
	}
	for _, b := range root.TargetSearches {
		m.Components = append(m.Components, singleProvide(file, component.KindTargetSearch, b))
	}
	for _, b := range root.Conditions {
		m.Components = append(m.Components, &config.ComponentDefinition{
			Kind:     component.KindCondition.String(),
			Name:     b.Name,
			Requires: b.Requires,
			Origin:   origin(file, component.KindCondition.String(), b.Name),
		})
	}
	for _, b := range root.Effects {
		m.Components = append(m.Components, &config.ComponentDefinition{
			Kind:     component.KindEffect.String(),
			Name:     b.Name,
			Requires: b.Params,
			Targets:  b.Targets,
			Origin:   origin(file, component.KindEffect.String(), b.Name),
		})
	}
	for _, b := range root.Activities {
		m.Components = append(m.Components, &config.ComponentDefinition{
			Kind:   component.KindActivity.String(),
			Name:   b.Name,
			Origin: origin(file, component.KindActivity.String(), b.Name),
		})
	}

	var errs []error
	for _, r := range root.Refs {
		ref, err := translateRef(ctx, file, r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		m.References = append(m.References, ref)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	logger.Debug("Translated HCL file.", "types", len(m.Types), "components", len(m.Components), "references", len(m.References))
	return m, nil
}

func singleProvide(file string, kind component.Kind, b *SingleProvideBlock) *config.ComponentDefinition {
	return &config.ComponentDefinition{
		Kind:     kind.String(),
		Name:     b.Name,
		Provides: []string{b.Provides},
		Origin:   origin(file, kind.String(), b.Name),
	}
}

func translateRef(ctx context.Context, file string, r *RefBlock) (*config.Reference, error) {
	where := origin(file, "ref", r.From)
	logger := ctxlog.FromContext(ctx).With("ref", r.From, "to", r.To)
	logger.Debug("Translating HCL ref.")

	slot, err := optionalIndex(ctx, r.Slot, "slot")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where, err)
	}
	triggerParam, err := optionalIndex(ctx, r.TriggerParam, "trigger_param")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where, err)
	}

	return &config.Reference{
		From:         r.From,
		To:           r.To,
		Param:        r.Param,
		Target:       r.Target,
		Affect:       r.Affect,
		Slot:         slot,
		TriggerParam: triggerParam,
		Origin:       where,
	}, nil
}
