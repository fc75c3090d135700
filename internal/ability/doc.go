// Package ability holds the sealed result of a successful commit.
//
// An Ability owns every component it was built from: the components are
// claimed at construction and can no longer be added to any registry. Its
// collections are sorted by self index and are only handed out as copies.
// The binding helpers resolve, for an execution engine, which providers
// feed a condition or an effect.
package ability
