// Package integrationtests runs the whole application, from HCL files on
// disk to the validation report, over small ability graphs.
package integrationtests
