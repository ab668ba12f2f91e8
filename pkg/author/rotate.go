package author

import "github.com/lerenn/git-collab/pkg/status"

// Rotate returns users with the active ones shifted by one position: the current
// author moves behind the other active users. Inactive users keep their positions.
func Rotate(users []status.User) []status.User {
	rotated := make([]status.User, len(users))
	copy(rotated, users)

	var slots []int
	for i, u := range users {
		if u.Active {
			slots = append(slots, i)
		}
	}
	if len(slots) < 2 {
		return rotated
	}

	for i, slot := range slots {
		rotated[slot] = users[slots[(i+1)%len(slots)]]
	}

	return rotated
}
