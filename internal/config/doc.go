// Package config defines the format-agnostic model of an ability file and
// the Loader interface that produces it.
//
// The model only records what was written: type declarations, component
// declarations and references between components, each tagged with where
// it came from. Resolving names into types and components is the job of
// the builder package. Concrete loaders, such as the HCL one, live in
// separate packages.
package config
