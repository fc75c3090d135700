package typesys

import "strings"

// Type is a declared value type. Types compare by identity: two distinct
// *Type values with the same name are different types.
type Type struct {
	name    string
	parents []*Type
}

// New declares a type with the given parents. Nil parents are ignored.
func New(name string, parents ...*Type) *Type {
	t := &Type{name: name}
	for _, p := range parents {
		if p != nil {
			t.parents = append(t.parents, p)
		}
	}
	return t
}

// Name returns the declared name.
func (t *Type) Name() string {
	if t == nil {
		return "<nil>"
	}
	return t.name
}

// Parents returns the direct parent types.
func (t *Type) Parents() []*Type {
	if t == nil {
		return nil
	}
	out := make([]*Type, len(t.parents))
	copy(out, t.parents)
	return out
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	if len(t.parents) == 0 {
		return t.name
	}
	names := make([]string, len(t.parents))
	for i, p := range t.parents {
		names[i] = p.Name()
	}
	return t.name + ":" + strings.Join(names, ",")
}

// Satisfies reports whether a value declared as provided can be used where
// required is expected, i.e. provided is required or one of its (transitive)
// descendants. A nil type satisfies nothing and is satisfied by nothing.
func Satisfies(required, provided *Type) bool {
	if required == nil || provided == nil {
		return false
	}

	seen := map[*Type]bool{provided: true}
	queue := []*Type{provided}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == required {
			return true
		}
		for _, p := range current.parents {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	return false
}
