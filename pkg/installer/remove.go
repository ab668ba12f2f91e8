package installer

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/git-collab/pkg/trampoline"
)

// Remove strips the post-commit hook chain from hooksPath and from the submodules of repoPath.
func (i *realInstaller) Remove(repoPath, hooksPath string) error {
	i.logger.Infof("Removing post-commit hook from repository: %s", repoPath)

	if err := i.removePostCommitFiles(hooksPath); err != nil {
		return err
	}

	return i.removePostCommitFilesFromSubmodules(repoPath)
}

// removePostCommitFiles strips the trampoline and deletes the payload from hooksPath.
func (i *realInstaller) removePostCommitFiles(hooksPath string) error {
	if err := i.stripTrampoline(hooksPath); err != nil {
		return err
	}
	return i.removePayload(hooksPath)
}

// stripTrampoline removes the trampoline from the post-commit hook of hooksPath,
// deleting the hook when nothing else remains.
func (i *realInstaller) stripTrampoline(hooksPath string) error {
	hookFile := filepath.Join(hooksPath, trampoline.HookFileName)

	exists, err := i.fs.Exists(hookFile)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrTrampolineRemove, hookFile, err)
	}
	if !exists {
		return nil
	}

	content, err := i.fs.ReadFile(hookFile)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrTrampolineRemove, hookFile, err)
	}

	stripped := trampoline.Strip(string(content))
	if stripped.Delete {
		err = i.fs.Remove(hookFile)
	} else {
		err = i.fs.WriteFile(hookFile, []byte(stripped.Script), hookFileMode)
	}
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrTrampolineRemove, hookFile, err)
	}

	return nil
}

// removePayload deletes the managed subdirectory and the legacy payload file of hooksPath.
func (i *realInstaller) removePayload(hooksPath string) error {
	payloadDir := filepath.Join(hooksPath, trampoline.PayloadDirName)

	exists, err := i.fs.Exists(payloadDir)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", payloadDir, err)
	}
	if exists {
		if err := i.fs.RemoveAll(payloadDir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", payloadDir, err)
		}
	}

	if err := i.removeIfExists(filepath.Join(hooksPath, trampoline.LegacyPayloadFileName)); err != nil {
		return fmt.Errorf("failed to remove legacy payload from %s: %w", hooksPath, err)
	}

	return nil
}
