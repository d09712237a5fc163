package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// command builds the exec.Cmd for Run. Tests replace it.
var command = exec.Command

// Run prints title, runs name with args streaming to Out and reports the
// outcome. A missing executable is returned unwrapped so callers can test it
// with IsCommandNotFound.
func Run(title, name string, args ...string) error {
	return RunEnv(nil, title, name, args...)
}

// RunEnv is Run with extra KEY=value pairs added to the environment.
func RunEnv(env []string, title, name string, args ...string) error {
	PrintInfo(fmt.Sprintf("%s: %s %s", title, name, strings.Join(args, " ")))
	cmd := command(name, args...)
	if len(env) > 0 {
		cmd.Env = append(cmd.Environ(), env...)
	}
	cmd.Stdout = Out
	cmd.Stderr = Out
	if err := cmd.Run(); err != nil {
		if IsCommandNotFound(err) {
			return err
		}
		PrintError(title + " failed")
		return fmt.Errorf("%s: %w", title, err)
	}
	PrintSuccess(title)
	return nil
}

// output runs name and returns its trimmed stdout.
func output(name string, args ...string) (string, error) {
	out, err := command(name, args...).Output()
	return strings.TrimSpace(string(out)), err
}

// IsCommandNotFound checks if the error indicates the command was not found.
// This handles exec.ErrNotFound and platform-specific string fallbacks.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "executable file not found") ||
		strings.Contains(errStr, "no such file or directory")
}
