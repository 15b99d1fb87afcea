package data

import (
	"context"

	"github.com/yourusername/invoice-dashboard/models"
)

// GetUser returns the first user whose email equals email exactly.
// ok is false when there is no such user; that is not an error.
func (s *Service) GetUser(ctx context.Context, email string) (user models.User, ok bool, err error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return models.User{}, false, s.fail(ctx, "GetUser", "Failed to fetch user.", err)
	}

	for _, u := range users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}
