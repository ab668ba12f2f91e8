package gitcollab

import (
	"bytes"
	"fmt"

	"github.com/lerenn/git-collab/pkg/gitcollab/consts"
	"github.com/lerenn/git-collab/pkg/scripts"
)

const (
	rootDirPerm = 0755
	scriptPerm  = 0755
)

// Init installs the scripts, reconciles the registered repositories and applies the authors.
// Reconciliation failures do not stop the setup: they are returned once everything else is done.
func (c *realGitCollab) Init() error {
	return c.executeWithHooks(consts.Init, map[string]interface{}{
		"rootDir": c.config.RootDir,
	}, c.init)
}

func (c *realGitCollab) init() error {
	c.VerbosePrint("Creating root directory: %s", c.config.RootDir)
	if err := c.deps.FS.MkdirAll(c.config.RootDir, rootDirPerm); err != nil {
		return fmt.Errorf("%w %s: %w", ErrRootDirCreate, c.config.RootDir, err)
	}

	if err := c.deps.StatusManager.CreateInitialStatus(); err != nil {
		return fmt.Errorf("%w: %w", ErrStatusInitialize, err)
	}

	autoRotate := scripts.AutoRotateCommand(c.goos, c.executable)
	written, err := c.writeScript(c.config.PayloadFile(), scripts.PostCommit(autoRotate))
	if err != nil {
		return err
	}
	if written {
		c.deps.Logger.Infof("Installing post-commit hook")
	}

	reconcileErr := c.reconcileRepositories()

	logScript := c.config.GitLogScriptFile()
	if _, err := c.writeScript(logScript, scripts.GitLogCoAuthor()); err != nil {
		return err
	}
	if err := c.deps.Author.SetGitLogAlias(logScript); err != nil {
		return err
	}

	users, err := c.deps.StatusManager.ListUsers()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsersLoad, err)
	}
	if err := c.deps.Author.Apply(users); err != nil {
		return fmt.Errorf("%w: %w", ErrUsersApply, err)
	}

	return reconcileErr
}

// writeScript writes content to path unless the file already holds it.
func (c *realGitCollab) writeScript(path, content string) (bool, error) {
	exists, err := c.deps.FS.Exists(path)
	if err != nil {
		return false, fmt.Errorf("%w %s: %w", ErrScriptWrite, path, err)
	}

	if exists {
		current, err := c.deps.FS.ReadFile(path)
		if err != nil {
			return false, fmt.Errorf("%w %s: %w", ErrScriptWrite, path, err)
		}
		if bytes.Equal(current, []byte(content)) {
			c.VerbosePrint("Script %s is up to date", path)
			return false, nil
		}
	}

	c.VerbosePrint("Writing script: %s", path)
	if err := c.deps.FS.WriteFile(path, []byte(content), scriptPerm); err != nil {
		return false, fmt.Errorf("%w %s: %w", ErrScriptWrite, path, err)
	}
	return true, nil
}
