// Package trampoline models the post-commit script that forwards to the managed payload,
// and merges it into or strips it from user-owned post-commit scripts.
package trampoline

const (
	// Shebang is the first line of every script written by git-collab.
	Shebang = "#!/usr/bin/env sh"

	// PostCommitBase sources the managed payload script when it is present.
	PostCommitBase = Shebang + "\n\n" +
		`[ -f "$(dirname $0)/git-collab/post-commit" ] && . $(dirname $0)/git-collab/post-commit`

	// PostCommitBaseOld calls the payload stored as a sibling file of the hook.
	PostCommitBaseOld = "#!/bin/bash\n\n" + `/bin/bash "$(dirname $0)"/post-commit.git-collab`

	// GitSwitchPostCommitBase is the trampoline installed by git-switch, the former name of git-collab.
	GitSwitchPostCommitBase = "#!/bin/bash\n\n" + `/bin/bash "$(dirname $0)"/post-commit.git-switch`
)

const (
	// HookFileName is the name of the hook git runs after each commit.
	HookFileName = "post-commit"
	// PayloadDirName is the managed subdirectory of a hooks directory.
	PayloadDirName = "git-collab"
	// LegacyPayloadFileName is the sibling payload file used with PostCommitBaseOld.
	LegacyPayloadFileName = "post-commit.git-collab"
	// GitSwitchPayloadFileName is the sibling payload file used with GitSwitchPostCommitBase.
	GitSwitchPayloadFileName = "post-commit.git-switch"
)
