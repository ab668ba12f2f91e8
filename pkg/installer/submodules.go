package installer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// modulesDir returns the directory where git stores the repositories of submodules.
func modulesDir(repoPath string) string {
	return filepath.Join(repoPath, ".git", "modules")
}

// addPostCommitFilesToSubmodules installs the hook chain in every submodule listed by git.
func (i *realInstaller) addPostCommitFilesToSubmodules(repoPath string, payload []byte) error {
	submodulesDir := modulesDir(repoPath)

	exists, err := i.fs.Exists(submodulesDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmoduleStatus, err)
	}
	if !exists {
		return nil
	}

	output, err := i.git.SubmoduleStatus(repoPath)
	if err != nil {
		return fmt.Errorf("%w for %s: %w", ErrSubmoduleStatus, repoPath, err)
	}

	for _, modulePath := range parseSubmodulePaths(output) {
		segments := append([]string{submodulesDir}, strings.Split(modulePath, "/")...)
		hooksPath := filepath.Join(append(segments, "hooks")...)

		i.logger.Logf("Writing post-commit hook to submodule: %s", modulePath)
		if err := i.addPostCommitFiles(hooksPath, payload); err != nil {
			return err
		}
	}

	return nil
}

// removePostCommitFilesFromSubmodules removes the hook chain from every submodule directory
// present under the modules directory of repoPath.
func (i *realInstaller) removePostCommitFilesFromSubmodules(repoPath string) error {
	submodulesDir := modulesDir(repoPath)

	exists, err := i.fs.Exists(submodulesDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmoduleList, err)
	}
	if !exists {
		return nil
	}

	entries, err := i.fs.ReadDir(submodulesDir)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrSubmoduleList, submodulesDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		i.logger.Logf("Removing post-commit hook from submodule: %s", entry.Name())
		if err := i.removePostCommitFiles(filepath.Join(submodulesDir, entry.Name(), "hooks")); err != nil {
			return err
		}
	}

	return nil
}

// parseSubmodulePaths extracts submodule paths from `git submodule status` output,
// whose lines are shaped as `<flag><hash> <path> (<descriptor>)`.
func parseSubmodulePaths(output string) []string {
	var paths []string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) < 2 {
			continue
		}
		paths = append(paths, fields[1])
	}
	return paths
}
