package trampoline

import "strings"

// StripResult is the outcome of stripping the trampoline from a post-commit script.
type StripResult struct {
	// Script is the post-commit content to write back when Delete is false.
	Script string
	// Delete is true when the script only contained a trampoline.
	Delete bool
}

// Strip removes the current and old trampolines from content, leaving a bare shebang
// in their place so that the remaining user content stays executable.
func Strip(content string) StripResult {
	if content == PostCommitBase || content == PostCommitBaseOld {
		return StripResult{Delete: true}
	}

	script := strings.ReplaceAll(content, PostCommitBase, Shebang)
	script = strings.ReplaceAll(script, PostCommitBaseOld, Shebang)

	return StripResult{Script: script}
}
