package magetasks

// TestAll runs all tests.
func TestAll() error {
	PrintH2Header("Tests")
	return Run("Go test", "go", "test", "./...")
}

// TestCoverage runs tests with coverage and prints the per-function summary.
func TestCoverage() error {
	PrintH2Header("Test Coverage")
	if err := Run("Go test (coverage)", "go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	_ = Run("Coverage report", "go", "tool", "cover", "-func=coverage.out")
	return nil
}

// TestRace runs tests with the race detector. The color cache and the
// theme-change bridge are the concurrent parts this guards.
func TestRace() error {
	PrintH2Header("Race Detector")
	return Run("Go test (race)", "go", "test", "-race", "./...")
}

// QualityCheck runs linters, tests and the build. Lint findings are reported
// but do not fail the check.
func QualityCheck() error {
	PrintH2Header("Quality Checks")

	if err := LintAll(); err != nil {
		PrintWarning("Linting issues found")
	}
	if err := TestAll(); err != nil {
		return err
	}
	if err := BuildAll(); err != nil {
		return err
	}
	PrintSuccess("Quality checks complete")
	return nil
}
