// Package scripts renders the shell scripts installed by git-collab.
package scripts

import (
	"strings"

	"github.com/lerenn/git-collab/configs"
)

const autoRotatePlaceholder = "{{AUTO_ROTATE}}"

// PostCommit returns the payload hook script ending with the given auto-rotate command.
func PostCommit(autoRotate string) string {
	return strings.ReplaceAll(configs.PostCommitScript, autoRotatePlaceholder, autoRotate)
}

// GitLogCoAuthor returns the pretty-log script.
func GitLogCoAuthor() string {
	return configs.GitLogCoAuthorScript
}

// AutoRotateCommand returns the shell line that rotates users in the background
// after a commit, for the given operating system and git-collab executable.
func AutoRotateCommand(goos, executable string) string {
	executable = strings.ReplaceAll(executable, `\`, `\\`)
	if goos == "windows" {
		return "start " + executable + " users rotate"
	}
	return executable + " users rotate > /dev/null 2>&1 &"
}
