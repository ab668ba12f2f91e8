package status

import (
	"fmt"
	"sort"
)

// ListRepositories lists the registered repositories.
func (s *realManager) ListRepositories() ([]Repository, error) {
	status, err := s.loadStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to load status: %w", err)
	}

	return status.Repositories, nil
}

// SetRepositories replaces the registered repositories, sorted by name.
func (s *realManager) SetRepositories(repositories []Repository) error {
	sorted := make([]Repository, len(repositories))
	copy(sorted, repositories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	if err := s.update(func(status *Status) {
		status.Repositories = sorted
	}); err != nil {
		return fmt.Errorf("failed to save repositories: %w", err)
	}

	return nil
}
