package nodeid

import (
	"fmt"

	"github.com/specialistvlad/abilitygraph/internal/component"
)

// ComponentAddress names one component, and for a trigger optionally one of
// its provided values.
type ComponentAddress struct {
	Kind  component.Kind
	Name  string
	Index int
}

// Key is the `kind.name` form, without the index.
func (c ComponentAddress) Key() string {
	return Key(c.Kind, c.Name)
}

// HasIndex reports whether a trigger value was selected.
func (c ComponentAddress) HasIndex() bool {
	return c.Index != NoIndex
}

func (c ComponentAddress) String() string {
	a := &Address{Path: []PathSegment{
		NewPathSegment(c.Kind.String()),
		{Name: c.Name, Index: c.Index},
	}}
	return a.String()
}

// Key builds the `kind.name` form of a component address.
func Key(kind component.Kind, name string) string {
	return kind.String() + "." + name
}

// ParseComponent reads `kind.name` or `trigger.name[i]`.
func ParseComponent(raw string) (ComponentAddress, error) {
	addr, err := Parse(raw)
	if err != nil {
		return ComponentAddress{}, err
	}
	if len(addr.Path) != 2 {
		return ComponentAddress{}, fmt.Errorf("component address %q must have the form kind.name", raw)
	}

	kindSeg, nameSeg := addr.Path[0], addr.Path[1]
	if kindSeg.HasIndex() {
		return ComponentAddress{}, fmt.Errorf("component address %q: the kind cannot be indexed", raw)
	}
	kind, err := component.ParseKind(kindSeg.Name)
	if err != nil {
		return ComponentAddress{}, fmt.Errorf("component address %q: %w", raw, err)
	}
	if nameSeg.HasIndex() && kind != component.KindTrigger {
		return ComponentAddress{}, fmt.Errorf("component address %q: only trigger values can be indexed", raw)
	}
	return ComponentAddress{Kind: kind, Name: nameSeg.Name, Index: nameSeg.Index}, nil
}
