package api

import (
	"context"
	"net/url"

	"timeoff/internal/domain"
)

// Pods returns every organizational pod.
func (c *Client) Pods(ctx context.Context) ([]domain.Pod, error) {
	pods, _, err := getJSON(ctx, c, "/pods",
		func(s *mockStore) ([]domain.Pod, error) { return s.Pods() })
	if err != nil {
		return []domain.Pod{}, err
	}
	return pods, nil
}

// PodByID returns a single pod, or nil when not found.
func (c *Client) PodByID(ctx context.Context, id string) (*domain.Pod, error) {
	pod, _, err := getJSON(ctx, c, "/pods/"+url.PathEscape(id),
		func(s *mockStore) (*domain.Pod, error) { return s.PodByID(id) })
	return pod, err
}
