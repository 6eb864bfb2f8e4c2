package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"timeoff/internal/domain"
)

type historyRequest struct {
	UserID string          `json:"userId"`
	ItemID string          `json:"itemId"`
	Type   domain.ViewType `json:"type"`
	Name   string          `json:"name"`
}

type favoriteRequest struct {
	UserID string `json:"userId"`
	TeamID string `json:"teamId"`
}

// History returns the user's recent views, most recent first. An empty
// userID resolves to the session's current user; without one the result is
// empty and no call is made.
func (c *Client) History(ctx context.Context, userID string) ([]domain.ViewHistoryItem, error) {
	return c.HistoryPage(ctx, userID, 0, 0)
}

// HistoryPage is History with explicit paging. A non-positive limit leaves
// paging to the backend default.
func (c *Client) HistoryPage(ctx context.Context, userID string, limit, offset int) ([]domain.ViewHistoryItem, error) {
	uid := c.resolveUser(ctx, userID)
	if uid == "" {
		return []domain.ViewHistoryItem{}, nil
	}

	items, _, err := getJSON(ctx, c, "/history?"+pageQuery(uid, limit, offset),
		func(s *mockStore) ([]domain.ViewHistoryItem, error) { return s.History(uid, limit, offset) })
	if err != nil {
		return []domain.ViewHistoryItem{}, err
	}
	return items, nil
}

// AddHistory records that the user viewed an entity. Writes for the same
// (user, type, item) key inside the suppression window are dropped, and
// concurrent identical writes share one outcome. Returns whether a write
// was actually attempted.
func (c *Client) AddHistory(ctx context.Context, userID string, item domain.ViewHistoryItem) (bool, error) {
	uid := c.resolveUser(ctx, userID)
	if uid == "" {
		return false, nil
	}

	key := uid + "|" + string(item.Type) + "|" + item.ID
	return c.views.record(key, func() error {
		payload := historyRequest{UserID: uid, ItemID: item.ID, Type: item.Type, Name: item.Name}
		_, _, err := mutateJSON(ctx, c, http.MethodPost, "/history", payload,
			func(s *mockStore) (domain.ViewHistoryItem, error) { return s.AddHistory(uid, item) })
		return err
	})
}

// Favorites returns the user's favorite team ids.
func (c *Client) Favorites(ctx context.Context, userID string) ([]string, error) {
	return c.FavoritesPage(ctx, userID, 0, 0)
}

// FavoritesPage is Favorites with explicit paging.
func (c *Client) FavoritesPage(ctx context.Context, userID string, limit, offset int) ([]string, error) {
	uid := c.resolveUser(ctx, userID)
	if uid == "" {
		return []string{}, nil
	}

	ids, _, err := getJSON(ctx, c, "/favorites?"+pageQuery(uid, limit, offset),
		func(s *mockStore) ([]string, error) { return s.Favorites(uid, limit, offset) })
	if err != nil {
		return []string{}, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// ToggleFavorite flips a team in the user's favorite set and returns the
// resulting full id list, so the caller can update derived state without a
// follow-up read.
func (c *Client) ToggleFavorite(ctx context.Context, userID, teamID string) ([]string, Origin, error) {
	uid := c.resolveUser(ctx, userID)
	if uid == "" {
		return []string{}, OriginRemote, nil
	}

	payload := favoriteRequest{UserID: uid, TeamID: teamID}
	ids, origin, err := mutateJSON(ctx, c, http.MethodPost, "/favorites", payload,
		func(s *mockStore) ([]string, error) { return s.ToggleFavorite(uid, teamID) })
	if err != nil {
		return []string{}, origin, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, origin, nil
}

func pageQuery(userID string, limit, offset int) string {
	q := url.Values{}
	q.Set("userId", userID)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
		q.Set("offset", strconv.Itoa(offset))
	}
	return q.Encode()
}
