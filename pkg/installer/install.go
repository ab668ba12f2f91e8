package installer

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/git-collab/pkg/hookpath"
	"github.com/lerenn/git-collab/pkg/trampoline"
)

const (
	hookFileMode = 0755
	dirMode      = 0755
	ignoreMode   = 0644
)

// Install wires the post-commit hook chain into the repository at repoPath and its submodules.
func (i *realInstaller) Install(repoPath string) (Result, error) {
	if valid, err := i.isGitRepository(repoPath); err != nil || !valid {
		return Result{}, err
	}

	i.logger.Infof("Writing post-commit hook to repository: %s", repoPath)

	hooksPath := i.resolver.Resolve(repoPath)

	payload, err := i.fs.ReadFile(i.payloadFile)
	if err != nil {
		return Result{}, fmt.Errorf("%w %s: %w", ErrPayloadRead, i.payloadFile, err)
	}

	if err := i.addPostCommitFiles(hooksPath, payload); err != nil {
		return Result{}, err
	}

	if err := i.addPostCommitFilesToSubmodules(repoPath, payload); err != nil {
		return Result{}, err
	}

	return Result{
		HooksPath: hooksPath,
		IsValid:   true,
	}, nil
}

// isGitRepository checks that repoPath exists and holds a .git entry, logging why it does not.
func (i *realInstaller) isGitRepository(repoPath string) (bool, error) {
	exists, err := i.fs.Exists(repoPath)
	if err != nil {
		return false, fmt.Errorf("failed to check repository path %s: %w", repoPath, err)
	}
	if !exists {
		i.logger.Errorf("Path not found: %s", repoPath)
		return false, nil
	}

	exists, err = i.fs.Exists(filepath.Join(repoPath, ".git"))
	if err != nil {
		return false, fmt.Errorf("failed to check git directory of %s: %w", repoPath, err)
	}
	if !exists {
		i.logger.Errorf("Path not a git repository: %s", repoPath)
		return false, nil
	}

	return true, nil
}

// addPostCommitFiles installs the payload and the trampoline in hooksPath.
func (i *realInstaller) addPostCommitFiles(hooksPath string, payload []byte) error {
	if err := i.copyPayload(hooksPath, payload); err != nil {
		return err
	}
	return i.writeTrampoline(hooksPath)
}

// copyPayload writes the payload script into the managed subdirectory of hooksPath.
func (i *realInstaller) copyPayload(hooksPath string, payload []byte) error {
	payloadDir := filepath.Join(hooksPath, trampoline.PayloadDirName)
	if err := i.fs.MkdirAll(payloadDir, dirMode); err != nil {
		return fmt.Errorf("%w: failed to create %s: %w", ErrPayloadWrite, payloadDir, err)
	}

	destination := filepath.Join(payloadDir, trampoline.HookFileName)
	if err := i.fs.WriteFile(destination, payload, hookFileMode); err != nil {
		return fmt.Errorf("%w to %s: %w", ErrPayloadWrite, destination, err)
	}

	// Keep the payload out of repositories versioning their hooks directory
	if !hookpath.IsNative(hooksPath) {
		ignoreFile := filepath.Join(payloadDir, ".gitignore")
		if err := i.fs.WriteFile(ignoreFile, []byte("*"), ignoreMode); err != nil {
			return fmt.Errorf("%w: failed to write %s: %w", ErrPayloadWrite, ignoreFile, err)
		}
	}

	return nil
}

// writeTrampoline writes the trampoline to hooksPath, merging it into an existing post-commit hook.
func (i *realInstaller) writeTrampoline(hooksPath string) error {
	hookFile := filepath.Join(hooksPath, trampoline.HookFileName)

	exists, err := i.fs.Exists(hookFile)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrTrampolineWrite, hookFile, err)
	}

	script := trampoline.PostCommitBase
	if exists {
		content, err := i.fs.ReadFile(hookFile)
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrTrampolineWrite, hookFile, err)
		}

		merged := trampoline.Merge(string(content))
		i.logger.Logf("Merging %s post-commit hook %s", merged.Variant, hookFile)

		for _, orphan := range merged.Orphans {
			if err := i.removeIfExists(filepath.Join(hooksPath, orphan)); err != nil {
				return fmt.Errorf("%w %s: %w", ErrTrampolineWrite, hookFile, err)
			}
		}

		script = merged.Script
	}

	if err := i.fs.WriteFile(hookFile, []byte(script), hookFileMode); err != nil {
		return fmt.Errorf("%w %s: %w", ErrTrampolineWrite, hookFile, err)
	}

	return nil
}

// removeIfExists removes the file at path when there is one.
func (i *realInstaller) removeIfExists(path string) error {
	exists, err := i.fs.Exists(path)
	if err != nil || !exists {
		return err
	}

	i.logger.Logf("Removing %s", path)
	return i.fs.Remove(path)
}
