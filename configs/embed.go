// Package configs provides embedded configuration files and scripts for the git-collab application.
package configs

import _ "embed"

// DefaultConfigYAML contains the default configuration file content.
//
//go:embed default.yaml
var DefaultConfigYAML []byte

// PostCommitScript contains the payload hook script, with an auto-rotate placeholder.
//
//go:embed post-commit.sh
var PostCommitScript string

// GitLogCoAuthorScript contains the pretty-log script used by the `lg` alias.
//
//go:embed git-log-co-author.sh
var GitLogCoAuthorScript string
