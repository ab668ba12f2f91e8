package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides the git command executions needed to wire hooks and authors.
type Git interface {
	// ConfigGetLocal executes `git config --local <key>` in specified directory.
	// It returns ErrConfigNotSet when the key has no value.
	ConfigGetLocal(workDir, key string) (string, error)

	// SubmoduleStatus executes `git submodule status` in specified directory.
	SubmoduleStatus(workDir string) (string, error)

	// ConfigSetGlobal executes `git config --global <key> <value>`.
	ConfigSetGlobal(key, value string) error
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
