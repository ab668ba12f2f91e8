package trampoline

import "strings"

// Variant identifies which trampoline, if any, a post-commit script carries.
type Variant int

const (
	// Foreign scripts carry no known trampoline.
	Foreign Variant = iota
	// Current scripts carry PostCommitBase.
	Current
	// LegacyOld scripts carry PostCommitBaseOld.
	LegacyOld
	// LegacyGitSwitch scripts carry GitSwitchPostCommitBase.
	LegacyGitSwitch
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Current:
		return "current"
	case LegacyOld:
		return "legacy-old"
	case LegacyGitSwitch:
		return "legacy-git-switch"
	default:
		return "foreign"
	}
}

// Classify returns the variant of a post-commit script.
// Legacy trampolines take precedence so that they are migrated even next to a current one.
func Classify(content string) Variant {
	switch {
	case strings.Contains(content, GitSwitchPostCommitBase):
		return LegacyGitSwitch
	case strings.Contains(content, PostCommitBaseOld):
		return LegacyOld
	case strings.Contains(content, PostCommitBase):
		return Current
	default:
		return Foreign
	}
}
