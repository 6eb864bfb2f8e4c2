package api

import (
	"context"
	"net/http"
	"net/url"

	"timeoff/internal/domain"
)

// VirtualTeams returns every user-created team.
func (c *Client) VirtualTeams(ctx context.Context) ([]domain.Team, error) {
	teams, _, err := getJSON(ctx, c, "/teams?type=VIRTUAL",
		func(s *mockStore) ([]domain.Team, error) { return s.VirtualTeams() })
	if err != nil {
		return []domain.Team{}, err
	}
	return teams, nil
}

// TeamsCreatedBy returns the virtual teams a user owns.
func (c *Client) TeamsCreatedBy(ctx context.Context, userID string) ([]domain.Team, error) {
	q := url.Values{}
	q.Set("createdBy", userID)
	q.Set("type", "VIRTUAL")
	teams, _, err := getJSON(ctx, c, "/teams?"+q.Encode(),
		func(s *mockStore) ([]domain.Team, error) { return s.TeamsCreatedBy(userID) })
	if err != nil {
		return []domain.Team{}, err
	}
	return teams, nil
}

// TeamByID returns a single team, or nil when not found.
func (c *Client) TeamByID(ctx context.Context, id string) (*domain.Team, error) {
	team, _, err := getJSON(ctx, c, "/teams/"+url.PathEscape(id),
		func(s *mockStore) (*domain.Team, error) { return s.TeamByID(id) })
	return team, err
}

// SaveTeam creates or replaces a virtual team by id.
func (c *Client) SaveTeam(ctx context.Context, team domain.Team) (domain.Team, Origin, error) {
	return mutateJSON(ctx, c, http.MethodPost, "/teams", team,
		func(s *mockStore) (domain.Team, error) { return s.UpsertTeam(team) })
}

// CreateVirtualTeam creates a new virtual team owned by createdBy. The id
// is assigned by the backend, or locally when it is unreachable.
func (c *Client) CreateVirtualTeam(ctx context.Context, name string, memberIDs []string, createdBy string) (domain.Team, Origin, error) {
	team := domain.Team{
		Name:      name,
		Type:      domain.TeamTypeVirtual,
		MemberIDs: memberIDs,
		CreatedBy: createdBy,
	}
	return mutateJSON(ctx, c, http.MethodPost, "/teams", team,
		func(s *mockStore) (domain.Team, error) { return s.CreateTeam(name, memberIDs, createdBy) })
}

// DeleteTeam removes a virtual team. Unknown ids complete without error.
func (c *Client) DeleteTeam(ctx context.Context, id string) (Origin, error) {
	_, origin, err := mutateJSON(ctx, c, http.MethodDelete, "/teams/"+url.PathEscape(id), nil,
		func(s *mockStore) (struct{}, error) { return s.DeleteTeam(id) })
	return origin, err
}
