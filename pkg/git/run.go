package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// run executes git with args in workDir and returns its standard output.
// An empty workDir runs git in the current process directory.
func (g *realGit) run(workDir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = workDir

	output, err := cmd.Output()
	if err != nil {
		stderr := ""
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		return string(output), fmt.Errorf("%w: %w (command: git %s, output: %s)",
			ErrCommandFailed, err, strings.Join(args, " "), stderr)
	}

	return string(output), nil
}

// exitCode returns the exit status carried by err, or -1 when git did not run to completion.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
