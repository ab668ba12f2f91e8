package git

// ConfigSetGlobal executes `git config --global <key> <value>`.
func (g *realGit) ConfigSetGlobal(key, value string) error {
	if key == "" {
		return ErrEmptyConfigKey
	}

	_, err := g.run("", "config", "--global", key, value)
	return err
}
