package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/abilitygraph/internal/component"
	"github.com/specialistvlad/abilitygraph/internal/config"
	"github.com/specialistvlad/abilitygraph/internal/ctxlog"
	"github.com/specialistvlad/abilitygraph/internal/registry"
	"github.com/specialistvlad/abilitygraph/internal/typesys"
)

// Result is a populated registry together with the lookup tables used to
// build it.
type Result struct {
	Registry *registry.Registry
	Universe *typesys.Universe
	// Components maps `kind.name` keys to the instantiated nodes.
	Components map[string]component.Node
	// Edges holds the added edges in declaration order.
	Edges []*registry.Edge
	// Origins maps each added edge to where it was declared.
	Origins map[*registry.Edge]string
}

// Origin returns where e was declared, or "" for unknown edges.
func (r *Result) Origin(e *registry.Edge) string {
	if r == nil || e == nil {
		return ""
	}
	return r.Origins[e]
}

// Build constructs a registry from model.
func Build(ctx context.Context, model *config.Model) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	if model == nil {
		return nil, errors.New("builder: model is nil")
	}
	logger.Debug("Build: Starting registry construction.",
		"types", len(model.Types),
		"components", len(model.Components),
		"references", len(model.References),
	)

	res := &Result{
		Registry:   registry.New(),
		Universe:   typesys.NewUniverse(),
		Components: make(map[string]component.Node),
		Origins:    make(map[*registry.Edge]string),
	}

	if err := defineTypes(res.Universe, model.Types); err != nil {
		return nil, fmt.Errorf("error declaring types: %w", err)
	}
	logger.Debug("Build: Types declared.", "count", len(res.Universe.Names()))

	if err := createComponents(ctx, res, model.Components); err != nil {
		return nil, fmt.Errorf("error creating components: %w", err)
	}
	logger.Debug("Build: Components created.", "count", res.Registry.Len())

	if err := linkReferences(ctx, res, model.References); err != nil {
		return nil, fmt.Errorf("error linking references: %w", err)
	}
	logger.Debug("Build: References linked.", "count", len(res.Edges))

	logger.Info("Build: Registry construction successful.",
		"components", res.Registry.Len(),
		"edges", len(res.Edges),
	)
	return res, nil
}

func defineTypes(u *typesys.Universe, defs []*config.TypeDefinition) error {
	decls := make([]typesys.Declaration, 0, len(defs))
	for _, d := range defs {
		if d == nil {
			continue
		}
		decls = append(decls, typesys.Declaration{Name: d.Name, Parents: d.Parents})
	}
	return u.Define(decls...)
}
