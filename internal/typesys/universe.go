package typesys

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/abilitygraph/internal/dag"
)

// Declaration names a type and the names of its parents.
type Declaration struct {
	Name    string
	Parents []string
}

// Universe is a table of named types built from declarations.
type Universe struct {
	types map[string]*Type
	order []string
}

// NewUniverse returns an empty universe.
func NewUniverse() *Universe {
	return &Universe{types: make(map[string]*Type)}
}

// Define declares every type in decls. Declarations may appear in any order
// and may refer to types already present in the universe. Unknown parents,
// duplicate names and inheritance cycles are reported together.
func (u *Universe) Define(decls ...Declaration) error {
	g := dag.New()
	byName := make(map[string]Declaration, len(decls))
	var errs []error

	for _, d := range decls {
		if d.Name == "" {
			errs = append(errs, errors.New("type declaration has an empty name"))
			continue
		}
		if _, exists := u.types[d.Name]; exists {
			errs = append(errs, fmt.Errorf("type %q is already declared", d.Name))
			continue
		}
		if _, exists := byName[d.Name]; exists {
			errs = append(errs, fmt.Errorf("type %q is declared more than once", d.Name))
			continue
		}
		byName[d.Name] = d
		g.AddNode(d.Name)
	}

	for _, d := range decls {
		if _, ok := byName[d.Name]; !ok {
			continue
		}
		for _, parent := range d.Parents {
			if _, known := u.types[parent]; known {
				continue
			}
			if !g.Has(parent) {
				errs = append(errs, fmt.Errorf("type %q: unknown parent type %q", d.Name, parent))
				continue
			}
			if err := g.AddEdge(parent, d.Name); err != nil {
				errs = append(errs, fmt.Errorf("type %q: %w", d.Name, err))
			}
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	order, err := g.TopologicalOrder()
	if err != nil {
		return fmt.Errorf("invalid type hierarchy: %w", err)
	}

	for _, name := range order {
		d := byName[name]
		parents := make([]*Type, 0, len(d.Parents))
		for _, p := range d.Parents {
			parents = append(parents, u.types[p])
		}
		u.types[name] = New(name, parents...)
		u.order = append(u.order, name)
	}
	return nil
}

// Lookup returns the named type.
func (u *Universe) Lookup(name string) (*Type, bool) {
	t, ok := u.types[name]
	return t, ok
}

// Resolve looks up every name, failing on the first unknown one.
func (u *Universe) Resolve(names ...string) ([]*Type, error) {
	out := make([]*Type, 0, len(names))
	for _, name := range names {
		t, ok := u.types[name]
		if !ok {
			return nil, fmt.Errorf("unknown type %q", name)
		}
		out = append(out, t)
	}
	return out, nil
}

// Names returns the declared type names in declaration order.
func (u *Universe) Names() []string {
	out := make([]string, len(u.order))
	copy(out, u.order)
	return out
}
