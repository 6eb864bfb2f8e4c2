package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchUsersFallback(t *testing.T) {
	c := newTestClient(t, testConfig(unreachableBase))
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		ids   []string
	}{
		{"empty query returns all", "", []string{"u1", "u2", "u3", "u4", "u5"}},
		{"match on display name", "alice", []string{"u1"}},
		{"match is case-insensitive", "ALICE", []string{"u1"}},
		{"match on email", "bob@", []string{"u2"}},
		{"match on employee id", "e003", []string{"u3"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := c.SearchUsers(ctx, tt.query)
			require.NoError(t, err)
			ids := make([]string, 0, len(users))
			for _, u := range users {
				ids = append(ids, u.ID)
			}
			assert.ElementsMatch(t, tt.ids, ids)
		})
	}
}

func TestSearchTeamsFallback(t *testing.T) {
	c := newTestClient(t, testConfig(unreachableBase))
	ctx := context.Background()

	teams, err := c.SearchTeams(ctx, "guild")
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "vt1", teams[0].ID)

	none, err := c.SearchTeams(ctx, "nothing-matches")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchSendsCapAndQuery(t *testing.T) {
	var gotQuery, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotLimit = r.URL.Query().Get("limit")
		json.NewEncoder(w).Encode([]struct{}{})
	}))
	defer srv.Close()

	c := newTestClient(t, testConfig(srv.URL))

	_, err := c.SearchUsers(context.Background(), "ali ce")
	require.NoError(t, err)
	assert.Equal(t, "ali ce", gotQuery)
	assert.Equal(t, "20", gotLimit)
}

func TestSearchCapsMockResults(t *testing.T) {
	s := newTestStore()

	// Seed enough extra users to exceed the cap.
	s.mu.Lock()
	for i := 0; i < 30; i++ {
		s.users = append(s.users, s.users[0])
	}
	s.mu.Unlock()

	users, err := s.SearchUsers("", searchLimit)
	require.NoError(t, err)
	assert.Len(t, users, searchLimit)
}
