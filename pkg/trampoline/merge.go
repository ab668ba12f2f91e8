package trampoline

import "strings"

// MergeResult is the outcome of merging the trampoline into a post-commit script.
type MergeResult struct {
	// Script is the post-commit content to write.
	Script string
	// Variant is the classification of the script before merging.
	Variant Variant
	// Orphans are legacy payload files, relative to the hooks directory, that the
	// merged script no longer calls.
	Orphans []string
}

// Merge ensures the current trampoline is present in content, migrating legacy
// trampolines on the way. Every other line of content is preserved.
// Merge is idempotent: merging its own output returns it unchanged.
func Merge(content string) MergeResult {
	result := MergeResult{
		Script:  content,
		Variant: Classify(content),
	}

	for {
		if strings.Contains(result.Script, LegacyPayloadFileName) {
			result.addOrphan(LegacyPayloadFileName)
		}

		switch Classify(result.Script) {
		case LegacyGitSwitch:
			result.Script = strings.Replace(result.Script, GitSwitchPostCommitBase, PostCommitBaseOld, 1)
			result.addOrphan(GitSwitchPayloadFileName)
		case LegacyOld:
			result.Script = strings.Replace(result.Script, PostCommitBaseOld, PostCommitBase, 1)
		case Foreign:
			result.Script = PostCommitBase + withoutShebang(result.Script)
			return result
		default:
			return result
		}
	}
}

func (r *MergeResult) addOrphan(name string) {
	for _, o := range r.Orphans {
		if o == name {
			return
		}
	}
	r.Orphans = append(r.Orphans, name)
}

// withoutShebang returns script from its first newline onward.
// A single line script is dropped when it is a shebang and kept on its own line otherwise.
func withoutShebang(script string) string {
	if i := strings.Index(script, "\n"); i >= 0 {
		return script[i:]
	}
	if script == "" || strings.HasPrefix(script, "#!") {
		return ""
	}
	return "\n" + script
}
