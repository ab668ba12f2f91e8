package status

import "fmt"

// ListUsers lists the users in rotation order.
func (s *realManager) ListUsers() ([]User, error) {
	status, err := s.loadStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to load status: %w", err)
	}

	return status.Users, nil
}

// SetUsers replaces the users, keeping the given order.
func (s *realManager) SetUsers(users []User) error {
	if users == nil {
		users = []User{}
	}

	if err := s.update(func(status *Status) {
		status.Users = users
	}); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}

	return nil
}
