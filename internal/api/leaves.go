package api

import (
	"context"
	"net/http"
	"net/url"

	"timeoff/internal/domain"
)

// Leaves returns every leave record.
func (c *Client) Leaves(ctx context.Context) ([]domain.LeaveRecord, error) {
	leaves, _, err := getJSON(ctx, c, "/leaves",
		func(s *mockStore) ([]domain.LeaveRecord, error) { return s.Leaves() })
	if err != nil {
		return []domain.LeaveRecord{}, err
	}
	return leaves, nil
}

// LeavesByUser returns one user's leave records.
func (c *Client) LeavesByUser(ctx context.Context, userID string) ([]domain.LeaveRecord, error) {
	leaves, _, err := getJSON(ctx, c, "/leaves/user/"+url.PathEscape(userID),
		func(s *mockStore) ([]domain.LeaveRecord, error) { return s.LeavesByUser(userID) })
	if err != nil {
		return []domain.LeaveRecord{}, err
	}
	return leaves, nil
}

// TeamLeaves returns the team roster joined with leave records. A non-zero
// range keeps only leaves overlapping it, on both the remote and the mock
// path.
func (c *Client) TeamLeaves(ctx context.Context, teamID string, rng domain.DateRange) ([]domain.UserLeaves, error) {
	path := "/teams/" + url.PathEscape(teamID) + "/leaves" + rangeQuery(rng)
	rows, _, err := getJSON(ctx, c, path,
		func(s *mockStore) ([]domain.UserLeaves, error) { return s.TeamLeaves(teamID, rng) })
	if err != nil {
		return []domain.UserLeaves{}, err
	}
	return rows, nil
}

// PodLeaves is TeamLeaves for a pod. Callers that already hold the pod pass
// it as hint so the fallback path skips a roster lookup.
func (c *Client) PodLeaves(ctx context.Context, podID string, hint *domain.Pod, rng domain.DateRange) ([]domain.UserLeaves, error) {
	path := "/pods/" + url.PathEscape(podID) + "/leaves" + rangeQuery(rng)
	rows, _, err := getJSON(ctx, c, path,
		func(s *mockStore) ([]domain.UserLeaves, error) { return s.PodLeaves(podID, hint, rng) })
	if err != nil {
		return []domain.UserLeaves{}, err
	}
	return rows, nil
}

// SaveLeave replaces a leave record by id. Status policy (reset to PENDING
// on edit) is owned by the caller.
func (c *Client) SaveLeave(ctx context.Context, leave domain.LeaveRecord) (domain.LeaveRecord, Origin, error) {
	return mutateJSON(ctx, c, http.MethodPut, "/leaves/"+url.PathEscape(leave.ID), leave,
		func(s *mockStore) (domain.LeaveRecord, error) { return s.SaveLeave(leave) })
}

// CreateLeave creates a leave record; the id is assigned by the backend, or
// locally when it is unreachable.
func (c *Client) CreateLeave(ctx context.Context, leave domain.LeaveRecord) (domain.LeaveRecord, Origin, error) {
	leave.ID = ""
	return mutateJSON(ctx, c, http.MethodPost, "/leaves", leave,
		func(s *mockStore) (domain.LeaveRecord, error) { return s.CreateLeave(leave) })
}

// DeleteLeave removes a leave record. Unknown ids complete without error.
func (c *Client) DeleteLeave(ctx context.Context, id string) (Origin, error) {
	_, origin, err := mutateJSON(ctx, c, http.MethodDelete, "/leaves/"+url.PathEscape(id), nil,
		func(s *mockStore) (struct{}, error) { return s.DeleteLeave(id) })
	return origin, err
}

func rangeQuery(rng domain.DateRange) string {
	if rng.IsZero() {
		return ""
	}
	q := url.Values{}
	if rng.From != "" {
		q.Set("from", rng.From)
	}
	if rng.To != "" {
		q.Set("to", rng.To)
	}
	return "?" + q.Encode()
}
