package api

import (
	"context"
	"net/url"
	"strconv"

	"timeoff/internal/domain"
)

// searchLimit caps search results on both paths.
const searchLimit = 20

// SearchUsers matches users whose display name, email, or employee id
// contains the query, case-insensitively. An empty query returns the
// unfiltered (capped) directory.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	users, _, err := getJSON(ctx, c, "/users?"+searchQuery(query),
		func(s *mockStore) ([]domain.User, error) { return s.SearchUsers(query, searchLimit) })
	if err != nil {
		return []domain.User{}, err
	}
	return users, nil
}

// SearchTeams matches teams by name, case-insensitively. An empty query
// returns the unfiltered (capped) set.
func (c *Client) SearchTeams(ctx context.Context, query string) ([]domain.Team, error) {
	teams, _, err := getJSON(ctx, c, "/teams?"+searchQuery(query),
		func(s *mockStore) ([]domain.Team, error) { return s.SearchTeams(query, searchLimit) })
	if err != nil {
		return []domain.Team{}, err
	}
	return teams, nil
}

func searchQuery(query string) string {
	q := url.Values{}
	q.Set("query", query)
	q.Set("limit", strconv.Itoa(searchLimit))
	return q.Encode()
}
