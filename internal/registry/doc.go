// Package registry assembles ability components into a reference graph and
// validates it before commit.
//
// A Registry holds one Trigger, one Activity and ordered collections of the
// other kinds. Consumers (param processors, conditions and effects) are
// wired to their providers with Edges. Structural mistakes are rejected as
// soon as they are made and are returned as diag.Code errors. Semantic
// mistakes, such as a type that does not satisfy a slot or a processor
// cycle, are only found by CheckResult, which walks the whole graph and
// collects every Diagnostic it finds instead of stopping at the first.
//
// Commit seals a valid graph into an ability.Ability and empties the
// registry so it can be used to build the next one.
//
// A Registry is not safe for concurrent use.
package registry
