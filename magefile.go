//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"

	"github.com/dkoosis/hostcolor/internal/magetasks"
)

// Default builds the binary.
var Default = Build

func init() {
	if err := magetasks.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "mage: %v\n", err)
		os.Exit(1)
	}
}

// Build builds the hostcolor binary
func Build() error {
	return magetasks.BuildAll()
}

// Clean removes build artifacts
func Clean() error {
	return magetasks.Clean()
}

// QA runs the race tests, then lint, tests and the build. Only test and
// build failures fail it.
func QA() error {
	magetasks.PrintH1Header("hostcolor Quality Assurance")
	mg.SerialDeps(Test.Race)
	return magetasks.QualityCheck()
}

// Lint groups the static checks.
type Lint mg.Namespace

// All runs every check
func (Lint) All() error {
	return magetasks.LintAll()
}

// Format fails on unformatted files
func (Lint) Format() error {
	return magetasks.LintFormat()
}

// Vet vets linux, darwin and windows builds
func (Lint) Vet() error {
	return magetasks.LintVet()
}

// Test groups the go test variants.
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return magetasks.TestAll()
}

// Coverage writes coverage.out and prints per-function totals
func (Test) Coverage() error {
	return magetasks.TestCoverage()
}

// Race runs tests under the race detector
func (Test) Race() error {
	return magetasks.TestRace()
}
