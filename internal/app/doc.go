// Package app contains the core application logic: load ability files,
// build the component registry, validate and commit it, and report the
// outcome. It is decoupled from any specific entrypoint like a CLI.
package app
