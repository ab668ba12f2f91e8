package status

import (
	"github.com/lerenn/git-collab/pkg/config"
	"github.com/lerenn/git-collab/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=status.go -destination=mocks/status.gen.go -package=mocks

// Status represents the status.yaml file structure.
type Status struct {
	Users        []User       `yaml:"users"`
	Repositories []Repository `yaml:"repositories"`
}

// User represents a committer taking part in the author rotation.
type User struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Active bool   `yaml:"active"`
}

// Repository represents a repository entry in the status file.
type Repository struct {
	Name      string `yaml:"name"`
	Path      string `yaml:"path"`
	HooksPath string `yaml:"hooks_path"`
	IsValid   bool   `yaml:"is_valid"`
}

// Manager interface provides status file management functionality.
type Manager interface {
	// ListRepositories lists the registered repositories.
	ListRepositories() ([]Repository, error)
	// SetRepositories replaces the registered repositories, sorted by name.
	SetRepositories(repositories []Repository) error
	// ListUsers lists the users in rotation order.
	ListUsers() ([]User, error)
	// SetUsers replaces the users, keeping the given order.
	SetUsers(users []User) error
	// CreateInitialStatus creates the status file when it does not exist yet.
	CreateInitialStatus() error
}

type realManager struct {
	fs     fs.FS
	config config.Config
}

// NewManager creates a new Status Manager instance.
func NewManager(fs fs.FS, config config.Config) Manager {
	return &realManager{
		fs:     fs,
		config: config,
	}
}
