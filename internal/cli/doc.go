// Package cli turns command-line flags and ABILITYGRAPH_* environment
// variables into an app.Config. Usage errors are reported as ExitError with
// exit code 2.
package cli
