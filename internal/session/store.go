package session

import (
	"context"
	"encoding/json"
	"fmt"

	"timeoff/internal/domain"
	"timeoff/pkg/redis"
)

// Store persists the client-side state that survives DAL calls: the
// session-scoped current user record and the durable list of virtual-team
// ids created by this browser profile. The browser original kept these in
// sessionStorage and localStorage; here they live in Redis keyed by the
// profile id.
type Store struct {
	redis     *redis.Client
	profileID string
}

// NewStore creates a store scoped to one browser profile.
func NewStore(rc *redis.Client, profileID string) *Store {
	return &Store{redis: rc, profileID: profileID}
}

// CurrentUser returns the logged-in user for this session, or nil when
// nobody is logged in.
func (s *Store) CurrentUser(ctx context.Context) (*domain.User, error) {
	raw, err := s.redis.Get(ctx, s.redis.KeyBuilder.KeySessionUser(s.profileID))
	if err != nil {
		if redis.IsNil(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to parse session user: %w", err)
	}
	return &user, nil
}

// SetCurrentUser stores the logged-in user for the session's lifetime.
func (s *Store) SetCurrentUser(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}
	return s.redis.Set(ctx, s.redis.KeyBuilder.KeySessionUser(s.profileID), string(raw), redis.TTLSession)
}

// ClearCurrentUser logs the session out.
func (s *Store) ClearCurrentUser(ctx context.Context) error {
	return s.redis.Delete(ctx, s.redis.KeyBuilder.KeySessionUser(s.profileID))
}

// OwnedTeamIDs lists the virtual teams this profile created.
func (s *Store) OwnedTeamIDs(ctx context.Context) ([]string, error) {
	return s.redis.SMembers(ctx, s.redis.KeyBuilder.KeyOwnedTeams(s.profileID))
}

// AddOwnedTeamID records a virtual team created by this profile.
func (s *Store) AddOwnedTeamID(ctx context.Context, teamID string) error {
	return s.redis.SAdd(ctx, s.redis.KeyBuilder.KeyOwnedTeams(s.profileID), teamID)
}

// RemoveOwnedTeamID forgets a deleted virtual team.
func (s *Store) RemoveOwnedTeamID(ctx context.Context, teamID string) error {
	return s.redis.SRem(ctx, s.redis.KeyBuilder.KeyOwnedTeams(s.profileID), teamID)
}
