package component

import "fmt"

// Unresolved marks an index that has not been assigned or resolved.
const Unresolved = -1

// Node is implemented by every component. The unexported method seals the
// interface to the Base types of this package.
type Node interface {
	Kind() Kind
	Name() string
	SelfIndex() int
	SetSelfIndex(int)
	Owner() any
	Owned() bool
	base() *Core
}

// Core is the bookkeeping shared by all kinds.
type Core struct {
	name      string
	selfIndex int
	owner     any
	holder    any
}

func newCore(name string) Core {
	return Core{name: name, selfIndex: Unresolved}
}

// Name returns the human readable label given at construction.
func (c *Core) Name() string { return c.name }

// SelfIndex returns the position in the registry's global index space.
func (c *Core) SelfIndex() int { return c.selfIndex }

// SetSelfIndex is called by the registry when it lays out the index space.
func (c *Core) SetSelfIndex(i int) { c.selfIndex = i }

// Owner returns the committed ability holding this component, or nil.
func (c *Core) Owner() any { return c.owner }

// Owned reports whether the component has been committed into an ability.
func (c *Core) Owned() bool { return c.owner != nil }

// IsNil reports whether n is a nil interface or wraps a nil Base.
func IsNil(n Node) bool {
	return n == nil || n.base() == nil
}

// Claim transfers ownership of n to owner. It fails if n is already owned.
func Claim(n Node, owner any) error {
	if IsNil(n) {
		return fmt.Errorf("cannot claim a nil component")
	}
	if owner == nil {
		return fmt.Errorf("cannot claim %s with a nil owner", Describe(n))
	}
	c := n.base()
	if c.owner != nil {
		return fmt.Errorf("%s is already owned", Describe(n))
	}
	c.owner = owner
	return nil
}

// Key returns the identity of n, usable as a map key. Nil nodes yield nil.
func Key(n Node) *Core {
	if IsNil(n) {
		return nil
	}
	return n.base()
}

// Same reports whether a and b are the same component instance.
func Same(a, b Node) bool {
	ka, kb := Key(a), Key(b)
	return ka != nil && ka == kb
}

// Enroll records holder as the registry currently managing n. Enrolling
// again with the same holder is a no-op.
func Enroll(n Node, holder any) error {
	if IsNil(n) {
		return fmt.Errorf("cannot enroll a nil component")
	}
	c := n.base()
	if c.holder != nil && c.holder != holder {
		return fmt.Errorf("%s already belongs to another registry", Describe(n))
	}
	c.holder = holder
	return nil
}

// Release clears the holder of n if it is holder.
func Release(n Node, holder any) {
	if IsNil(n) {
		return
	}
	if c := n.base(); c.holder == holder {
		c.holder = nil
	}
}

// HeldBy reports whether n is currently enrolled with holder.
func HeldBy(n Node, holder any) bool {
	return !IsNil(n) && holder != nil && n.base().holder == holder
}

// Describe renders "kind.name#index" for logs and diagnostics.
func Describe(n Node) string {
	if IsNil(n) {
		return "<nil>"
	}
	return fmt.Sprintf("%s.%s#%d", n.Kind(), n.Name(), n.SelfIndex())
}
