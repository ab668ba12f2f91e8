package author

import (
	"fmt"
	"strings"
)

// SetGitLogAlias points the `git lg` alias at the pretty-log script.
func (a *realAuthor) SetGitLogAlias(scriptPath string) error {
	// Git aliases run through sh, which expects forward slashes on every platform
	value := "!" + strings.ReplaceAll(scriptPath, `\`, "/")

	if err := a.git.ConfigSetGlobal(LogAliasKey, value); err != nil {
		return fmt.Errorf("failed to set git log alias: %w", err)
	}
	return nil
}
