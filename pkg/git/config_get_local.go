package git

// ConfigGetLocal executes `git config --local <key>` in specified directory.
func (g *realGit) ConfigGetLocal(workDir, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyConfigKey
	}

	output, err := g.run(workDir, "config", "--local", key)
	if err != nil {
		// Exit code 1 means the key is not set
		if exitCode(err) == 1 {
			return "", ErrConfigNotSet
		}
		return "", err
	}

	return output, nil
}
