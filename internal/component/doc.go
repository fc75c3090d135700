// Package component defines the closed set of ability building blocks:
// Trigger, FreeParam, ParamProcessor, TargetSearch, Condition, Effect and
// Activity.
//
// Every component implements Node, which is sealed: the only way to build
// one is to embed (or use directly) one of the *Base types of this package.
// A Base carries the bookkeeping the registry needs (the global self index,
// the owning ability once committed) plus the declared type metadata of its
// kind and the resolved index fields the validator writes back.
//
// Concrete behaviour (detecting an event, searching targets, mutating state)
// lives in the types that embed a Base and is never inspected here.
package component
