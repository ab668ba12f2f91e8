package status

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// getStatusFilePath returns the status file path from configuration.
func (s *realManager) getStatusFilePath() (string, error) {
	if s.config.StatusFile == "" {
		return "", ErrConfigurationNotInitialized
	}

	return s.config.StatusFile, nil
}

// loadStatus loads the status from the status file, creating it when missing.
func (s *realManager) loadStatus() (*Status, error) {
	statusPath, err := s.getStatusFilePath()
	if err != nil {
		return nil, err
	}

	status, exists, err := s.readStatus(statusPath)
	if err != nil {
		return nil, err
	}

	if !exists {
		if err := s.ensureStatus(statusPath); err != nil {
			return nil, fmt.Errorf("failed to create initial status file: %w", err)
		}
	}

	return status, nil
}

// update applies mutate to the status and saves it, holding the status file lock
// from the read to the write so that concurrent updates are not lost.
func (s *realManager) update(mutate func(status *Status)) error {
	statusPath, err := s.getStatusFilePath()
	if err != nil {
		return err
	}

	unlock, err := s.fs.FileLock(statusPath)
	if err != nil {
		return fmt.Errorf("failed to acquire file lock: %w", err)
	}
	defer unlock()

	status, _, err := s.readStatus(statusPath)
	if err != nil {
		return err
	}

	mutate(status)

	return s.writeStatus(statusPath, status)
}

// ensureStatus writes the initial status unless the status file already exists.
func (s *realManager) ensureStatus(statusPath string) error {
	unlock, err := s.fs.FileLock(statusPath)
	if err != nil {
		return fmt.Errorf("failed to acquire file lock: %w", err)
	}
	defer unlock()

	exists, err := s.fs.Exists(statusPath)
	if err != nil {
		return fmt.Errorf("failed to check status file existence: %w", err)
	}
	if exists {
		return nil
	}

	return s.writeStatus(statusPath, newInitialStatus())
}

// readStatus reads the status file. A missing file reads as the initial status
// and is reported as not existing.
func (s *realManager) readStatus(statusPath string) (*Status, bool, error) {
	exists, err := s.fs.Exists(statusPath)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check status file existence: %w", err)
	}
	if !exists {
		return newInitialStatus(), false, nil
	}

	data, err := s.fs.ReadFile(statusPath)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read status file: %w", err)
	}

	var status Status
	if err := yaml.Unmarshal(data, &status); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrStatusFileParse, err)
	}

	return &status, true, nil
}

// writeStatus saves the status to the status file atomically. Callers hold the lock.
func (s *realManager) writeStatus(statusPath string, status *Status) error {
	data, err := yaml.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}

	if err := s.fs.WriteFileAtomic(statusPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write status file: %w", err)
	}

	return nil
}

func newInitialStatus() *Status {
	return &Status{
		Users:        []User{},
		Repositories: []Repository{},
	}
}
