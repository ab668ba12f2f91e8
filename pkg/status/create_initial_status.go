package status

// CreateInitialStatus creates the status file when it does not exist yet.
func (s *realManager) CreateInitialStatus() error {
	statusPath, err := s.getStatusFilePath()
	if err != nil {
		return err
	}

	return s.ensureStatus(statusPath)
}
