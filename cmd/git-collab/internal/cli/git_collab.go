package cli

import (
	"github.com/lerenn/git-collab/pkg/author"
	"github.com/lerenn/git-collab/pkg/dependencies"
	"github.com/lerenn/git-collab/pkg/fs"
	"github.com/lerenn/git-collab/pkg/git"
	"github.com/lerenn/git-collab/pkg/gitcollab"
	"github.com/lerenn/git-collab/pkg/hookpath"
	"github.com/lerenn/git-collab/pkg/installer"
	"github.com/lerenn/git-collab/pkg/status"
)

// GitCollabFactory builds the GitCollab instance used by the commands.
var GitCollabFactory = NewGitCollab

// NewGitCollab creates a new GitCollab instance wired from the configuration file.
func NewGitCollab() (gitcollab.GitCollab, error) {
	cfg, err := NewConfigManager().GetConfigWithFallback()
	if err != nil {
		return nil, err
	}

	l := NewLogger()
	fsInstance := fs.NewFS()
	gitInstance := git.NewGit()
	resolver := hookpath.NewResolver(gitInstance, l)

	return gitcollab.NewGitCollab(gitcollab.NewGitCollabParams{
		Config: cfg,
		Dependencies: dependencies.New().
			WithFS(fsInstance).
			WithGit(gitInstance).
			WithLogger(l).
			WithStatusManager(status.NewManager(fsInstance, cfg)).
			WithInstaller(installer.NewInstaller(installer.NewInstallerParams{
				FS:          fsInstance,
				Git:         gitInstance,
				Resolver:    resolver,
				Logger:      l,
				PayloadFile: cfg.PayloadFile(),
			})).
			WithAuthor(author.NewAuthor(gitInstance, l)),
	})
}
