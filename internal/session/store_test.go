package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"timeoff/internal/domain"
	"timeoff/pkg/redis"
)

func setupTestStore(t *testing.T) (*miniredis.Miniredis, *Store) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := redis.NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return mr, NewStore(client, "profile-1")
}

func TestCurrentUserRoundTrip(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	user, err := store.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user, "fresh session has no user")

	alice := domain.User{ID: "u1", EmployeeID: "E001", Name: "Alice Chen", Email: "alice@company.com", Country: "CN", TeamID: "pod1"}
	require.NoError(t, store.SetCurrentUser(ctx, alice))

	user, err = store.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, alice, *user)

	require.NoError(t, store.ClearCurrentUser(ctx))

	user, err = store.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCurrentUserExpiresWithSession(t *testing.T) {
	mr, store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetCurrentUser(ctx, domain.User{ID: "u1"}))

	mr.FastForward(redis.TTLSession + 1)

	user, err := store.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user, "session user must expire with the session TTL")
}

func TestOwnedTeamIDs(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	ids, err := store.OwnedTeamIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, store.AddOwnedTeamID(ctx, "vt1"))
	require.NoError(t, store.AddOwnedTeamID(ctx, "vt2"))
	require.NoError(t, store.AddOwnedTeamID(ctx, "vt1")) // set semantics

	ids, err = store.OwnedTeamIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"vt1", "vt2"}, ids)

	require.NoError(t, store.RemoveOwnedTeamID(ctx, "vt1"))

	ids, err = store.OwnedTeamIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"vt2"}, ids)
}

func TestStoresAreProfileScoped(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := redis.NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	a := NewStore(client, "profile-a")
	b := NewStore(client, "profile-b")
	ctx := context.Background()

	require.NoError(t, a.AddOwnedTeamID(ctx, "vt1"))

	ids, err := b.OwnedTeamIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids, "profiles must not see each other's teams")
}
