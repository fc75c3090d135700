/*
Package builder turns a loaded config.Model into a populated
registry.Registry, ready for validation and commit.

Construction runs in three passes:

 1. Types: every type declaration is defined in a typesys.Universe. Unknown
    parents, duplicate names and inheritance cycles fail the build.

 2. Components: every component declaration is instantiated with the
    matching component constructor and added to the registry. Declared
    type names are resolved against the universe, and the number of
    declared types is checked against the kind.

 3. References: every reference is resolved to its two components by
    address and added to the registry as an edge. Edges the registry
    rejects are reported with their diag code and origin.

Errors are collected within a pass and joined, so one build reports every
structural problem of that pass. Semantic problems, such as type
mismatches between connected components, are left to the registry's
validation.
*/
package builder
