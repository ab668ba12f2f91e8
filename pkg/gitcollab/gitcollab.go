package gitcollab

import (
	"fmt"
	"os"
	"runtime"

	"github.com/lerenn/git-collab/pkg/config"
	"github.com/lerenn/git-collab/pkg/dependencies"
	"github.com/lerenn/git-collab/pkg/gitcollab/consts"
	"github.com/lerenn/git-collab/pkg/logger"
	"github.com/lerenn/git-collab/pkg/middleware"
	"github.com/lerenn/git-collab/pkg/status"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=gitcollab.go -destination=mocks/gitcollab.gen.go -package=mocks

// GitCollab interface provides the git-collab operations.
type GitCollab interface {
	// Init installs the scripts, reconciles the registered repositories and applies the authors.
	Init() error
	// AddRepository installs the post-commit hook in a repository and registers it.
	AddRepository(path string) ([]status.Repository, error)
	// RemoveRepository removes the post-commit hook from a repository and unregisters it.
	RemoveRepository(path string) ([]status.Repository, error)
	// ListRepositories lists the registered repositories.
	ListRepositories() ([]status.Repository, error)
	// ReconcileRepositories re-installs the hook in every registered repository.
	ReconcileRepositories() error
	// RotateUsers moves the current author behind the other active users.
	RotateUsers() error
	// SetLogger sets the logger for this instance.
	SetLogger(logger logger.Logger)
}

// NewGitCollabParams contains parameters for creating a new GitCollab instance.
type NewGitCollabParams struct {
	Config       config.Config
	Dependencies *dependencies.Dependencies
	// Executable is the binary invoked by the payload to rotate users after each commit.
	// Defaults to the running executable.
	Executable string
	// GOOS selects the shell syntax of the auto-rotate command. Defaults to runtime.GOOS.
	GOOS string
}

type realGitCollab struct {
	config     config.Config
	deps       *dependencies.Dependencies
	executable string
	goos       string
}

// NewGitCollab creates a new GitCollab instance.
func NewGitCollab(params NewGitCollabParams) (GitCollab, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	executable := params.Executable
	if executable == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable path: %w", err)
		}
		executable = exe
	}

	goos := params.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	if err := middleware.RegisterLoggingHook(deps.Middleware, deps.Logger, consts.All()...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMiddlewareRegister, err)
	}

	return &realGitCollab{
		config:     params.Config,
		deps:       deps,
		executable: executable,
		goos:       goos,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (c *realGitCollab) VerbosePrint(msg string, args ...interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Logf(msg, args...)
	}
}

// SetLogger sets the logger for this GitCollab instance.
func (c *realGitCollab) SetLogger(logger logger.Logger) {
	c.deps.Logger = logger
}

// executeWithHooks executes an operation with pre and post hooks.
func (c *realGitCollab) executeWithHooks(
	operationName string, params map[string]interface{}, operation func() error) error {
	ctx := newOperationContext(operationName, params)

	if err := c.executePreHooks(operationName, ctx); err != nil {
		return err
	}

	resultErr := runRecovered(operationName, operation)

	ctx.Error = resultErr
	if resultErr == nil {
		ctx.Results["success"] = true
	}

	if hookErr := c.executeHooks(operationName, ctx, resultErr); hookErr != nil {
		return hookErr
	}
	return resultErr
}

// executeWithHooksAndReturnRepositories executes an operation that returns repositories with hooks.
func (c *realGitCollab) executeWithHooksAndReturnRepositories(
	operationName string,
	params map[string]interface{},
	operation func() ([]status.Repository, error),
) ([]status.Repository, error) {
	ctx := newOperationContext(operationName, params)

	if err := c.executePreHooks(operationName, ctx); err != nil {
		return nil, err
	}

	var repositories []status.Repository
	resultErr := runRecovered(operationName, func() error {
		var err error
		repositories, err = operation()
		return err
	})

	ctx.Error = resultErr
	if resultErr == nil {
		ctx.Results["repositories"] = repositories
		ctx.Results["success"] = true
	}

	if hookErr := c.executeHooks(operationName, ctx, resultErr); hookErr != nil {
		return nil, hookErr
	}
	return repositories, resultErr
}

// executeHooks executes post-hooks or error-hooks based on the operation result.
func (c *realGitCollab) executeHooks(operationName string, ctx *middleware.OperationContext, resultErr error) error {
	if c.deps.Middleware == nil {
		return nil
	}

	if resultErr != nil {
		return c.deps.Middleware.ExecuteErrorHooks(operationName, ctx)
	}
	return c.deps.Middleware.ExecutePostHooks(operationName, ctx)
}

// executePreHooks executes pre-hooks if the middleware manager is available.
func (c *realGitCollab) executePreHooks(operationName string, ctx *middleware.OperationContext) error {
	if c.deps.Middleware == nil {
		return nil
	}
	return c.deps.Middleware.ExecutePreHooks(operationName, ctx)
}

func newOperationContext(operationName string, params map[string]interface{}) *middleware.OperationContext {
	return &middleware.OperationContext{
		OperationName: operationName,
		Parameters:    params,
		Results:       make(map[string]interface{}),
		Metadata:      make(map[string]interface{}),
	}
}

// runRecovered runs operation, turning a panic into an error.
func runRecovered(operationName string, operation func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
		}
	}()
	return operation()
}
