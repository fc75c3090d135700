// Package report renders the outcome of validating an ability file, either
// as human readable text or as YAML for tooling.
package report
