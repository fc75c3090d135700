package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/config"
	"github.com/specialistvlad/abilitygraph/internal/ctxlog"
	"github.com/specialistvlad/abilitygraph/internal/nodeid"
	"github.com/specialistvlad/abilitygraph/internal/typesys"
)

// createComponents instantiates every declaration and adds it to the
// registry. A second trigger or activity is an error here, since the
// registry itself would silently replace the first.
func createComponents(ctx context.Context, res *Result, defs []*config.ComponentDefinition) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting component creation pass.")

	var errs []error
	singletons := make(map[component.Kind]string)

	for _, def := range defs {
		if def == nil {
			continue
		}
		n, err := newComponent(res.Universe, def)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", def.Origin, err))
			continue
		}

		key := nodeid.Key(n.Kind(), n.Name())
		if _, exists := res.Components[key]; exists {
			errs = append(errs, fmt.Errorf("%s: component %s is declared more than once", def.Origin, key))
			continue
		}
		if n.Kind() == component.KindTrigger || n.Kind() == component.KindActivity {
			if first, ok := singletons[n.Kind()]; ok {
				errs = append(errs, fmt.Errorf("%s: only one %s is allowed, %s is already declared", def.Origin, n.Kind(), first))
				continue
			}
			singletons[n.Kind()] = key
		}

		if err := res.Registry.AddComponent(n); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", def.Origin, err))
			continue
		}
		res.Components[key] = n
		logger.Debug("Created component.", "component", key)
	}

	logger.Debug("Finished component creation pass.", "errors", len(errs))
	return errors.Join(errs...)
}

// newComponent builds the node for one declaration.
func newComponent(u *typesys.Universe, def *config.ComponentDefinition) (component.Node, error) {
	if def.Name == "" {
		return nil, errors.New("component has an empty name")
	}
	kind, err := component.ParseKind(def.Kind)
	if err != nil {
		return nil, err
	}

	provides, err := u.Resolve(def.Provides...)
	if err != nil {
		return nil, fmt.Errorf("%s %q provides: %w", kind, def.Name, err)
	}
	requires, err := u.Resolve(def.Requires...)
	if err != nil {
		return nil, fmt.Errorf("%s %q requires: %w", kind, def.Name, err)
	}
	targets, err := u.Resolve(def.Targets...)
	if err != nil {
		return nil, fmt.Errorf("%s %q targets: %w", kind, def.Name, err)
	}

	shape := func(provideCount, requireCount, targetCount int) error {
		if provideCount >= 0 && len(provides) != provideCount {
			return fmt.Errorf("%s %q must provide exactly %d type(s), got %d", kind, def.Name, provideCount, len(provides))
		}
		if requireCount >= 0 && len(requires) != requireCount {
			return fmt.Errorf("%s %q must require exactly %d type(s), got %d", kind, def.Name, requireCount, len(requires))
		}
		if targetCount >= 0 && len(targets) != targetCount {
			return fmt.Errorf("%s %q cannot declare targets", kind, def.Name)
		}
		return nil
	}

	const anyCount = -1
	switch kind {
	case component.KindTrigger:
		if err := shape(anyCount, 0, 0); err != nil {
			return nil, err
		}
		return component.NewTrigger(def.Name, provides...), nil
	case component.KindFreeParam:
		if err := shape(1, 0, 0); err != nil {
			return nil, err
		}
		return component.NewFreeParam(def.Name, provides[0]), nil
	case component.KindParamProcessor:
		if err := shape(1, 1, 0); err != nil {
			return nil, err
		}
		return component.NewParamProcessor(def.Name, requires[0], provides[0]), nil
	case component.KindTargetSearch:
		if err := shape(1, 0, 0); err != nil {
			return nil, err
		}
		return component.NewTargetSearch(def.Name, provides[0]), nil
	case component.KindCondition:
		if err := shape(0, anyCount, 0); err != nil {
			return nil, err
		}
		return component.NewCondition(def.Name, requires...), nil
	case component.KindEffect:
		if err := shape(0, anyCount, anyCount); err != nil {
			return nil, err
		}
		return component.NewEffect(def.Name, requires, targets), nil
	case component.KindActivity:
		if err := shape(0, 0, 0); err != nil {
			return nil, err
		}
		return component.NewActivity(def.Name), nil
	}
	return nil, fmt.Errorf("unsupported component kind %s", kind)
}
