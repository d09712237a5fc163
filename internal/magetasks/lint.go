package magetasks

import (
	"errors"
	"fmt"
	"strings"
)

// vetPlatforms are the GOOS values vetted. The timed read and the SIGUSR1
// notifier are split by build tag, so a single host never compiles both.
var vetPlatforms = []string{"linux", "darwin", "windows"}

// LintAll checks formatting, vets every platform and runs golangci-lint when
// it is installed.
func LintAll() error {
	errs := []error{LintFormat(), LintVet()}
	if err := LintGolangci(); err != nil && !IsCommandNotFound(err) {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	PrintSuccess("All linters passed")
	return nil
}

// LintFormat fails when gofmt would rewrite any file.
func LintFormat() error {
	files, err := output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if files != "" {
		PrintError("Unformatted files:\n" + files)
		return fmt.Errorf("gofmt: %d file(s) need formatting", len(strings.Split(files, "\n")))
	}
	PrintSuccess("Go Format")
	return nil
}

// LintVet runs go vet once per platform in vetPlatforms.
func LintVet() error {
	var errs []error
	for _, goos := range vetPlatforms {
		if err := RunEnv([]string{"GOOS=" + goos}, "Go Vet ("+goos+")", "go", "vet", "./..."); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LintGolangci runs golangci-lint with the repository's config.
func LintGolangci() error {
	err := Run("Golangci-lint", "golangci-lint", "run", "--timeout=5m", "./...")
	if IsCommandNotFound(err) {
		PrintWarning("golangci-lint not found, skipping")
	}
	return err
}
