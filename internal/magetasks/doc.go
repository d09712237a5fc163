// Package magetasks holds the build, lint and test tasks behind hostcolor's
// Magefile. Tasks print progress to Out and shell out through Run.
package magetasks
