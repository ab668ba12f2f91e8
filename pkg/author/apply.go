package author

import (
	"fmt"
	"strings"

	"github.com/lerenn/git-collab/pkg/status"
)

// Apply sets the first active user as git author and the other active users as co-authors.
func (a *realAuthor) Apply(users []status.User) error {
	active := activeUsers(users)
	if len(active) == 0 {
		a.logger.Logf("No active user, leaving git author unchanged")
		return nil
	}

	author := active[0]
	a.logger.Logf("Setting git author to %s <%s>", author.Name, author.Email)

	if err := a.git.ConfigSetGlobal(UserNameKey, author.Name); err != nil {
		return fmt.Errorf("failed to set author name: %w", err)
	}
	if err := a.git.ConfigSetGlobal(UserEmailKey, author.Email); err != nil {
		return fmt.Errorf("failed to set author email: %w", err)
	}

	if err := a.git.ConfigSetGlobal(CoAuthorsKey, CoAuthorsTrailers(active[1:])); err != nil {
		return fmt.Errorf("failed to set co-authors: %w", err)
	}

	return nil
}

// CoAuthorsTrailers formats users as `Co-Authored-By` trailers separated by `;`.
func CoAuthorsTrailers(users []status.User) string {
	trailers := make([]string, 0, len(users))
	for _, u := range users {
		trailers = append(trailers, fmt.Sprintf("Co-Authored-By: %s <%s>", u.Name, u.Email))
	}
	return strings.Join(trailers, ";")
}

func activeUsers(users []status.User) []status.User {
	var active []status.User
	for _, u := range users {
		if u.Active {
			active = append(active, u)
		}
	}
	return active
}
