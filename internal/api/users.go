package api

import (
	"context"
	"net/http"
	"net/url"

	"timeoff/internal/domain"
)

// Login authenticates the session. The backend decides who the user is;
// without a backend the first directory entry logs in.
func (c *Client) Login(ctx context.Context) (domain.User, error) {
	user, _, err := mutateJSON(ctx, c, http.MethodPost, "/users/login", nil,
		func(s *mockStore) (domain.User, error) { return s.DefaultUser() })
	return user, err
}

// Users returns the full directory.
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	users, _, err := getJSON(ctx, c, "/users",
		func(s *mockStore) ([]domain.User, error) { return s.Users() })
	if err != nil {
		return []domain.User{}, err
	}
	return users, nil
}

// UserByID returns a single user, or nil when not found on either path.
func (c *Client) UserByID(ctx context.Context, id string) (*domain.User, error) {
	user, _, err := getJSON(ctx, c, "/users/"+url.PathEscape(id),
		func(s *mockStore) (*domain.User, error) { return s.UserByID(id) })
	return user, err
}
