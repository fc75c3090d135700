// Package dag provides a minimal directed graph keyed by string IDs. It is
// the ordering primitive behind declaration loading: named declarations that
// reference each other (for example a type and its parent types) are added
// as nodes and edges, checked for cycles, and then visited in dependency
// order.
package dag
