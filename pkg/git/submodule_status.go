package git

// SubmoduleStatus executes `git submodule status` in specified directory.
func (g *realGit) SubmoduleStatus(workDir string) (string, error) {
	return g.run(workDir, "submodule", "status")
}
