// Package typesys holds the declared type metadata that ability components
// expose. A Type is a named node with zero or more parent types; the
// Satisfies relation answers whether a value declared as one type may be
// used where another is required. No runtime reflection is involved: the
// hierarchy is exactly what was declared.
package typesys
