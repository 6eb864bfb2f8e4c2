package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeoff/internal/domain"
)

func TestLeaveRangeBoundaries(t *testing.T) {
	// l1 spans 2026-02-10..2026-02-12 for u1 in pod1.
	tests := []struct {
		name     string
		rng      domain.DateRange
		included bool
	}{
		{"overlap at range start", domain.DateRange{From: "2026-02-11", To: "2026-02-20"}, true},
		{"leave starts on range end", domain.DateRange{From: "2026-02-01", To: "2026-02-10"}, true},
		{"leave ends on range start", domain.DateRange{From: "2026-02-12", To: "2026-02-28"}, true},
		{"entirely before range", domain.DateRange{From: "2026-02-13", To: "2026-02-28"}, false},
		{"entirely after range", domain.DateRange{From: "2026-02-01", To: "2026-02-09"}, false},
		{"unbounded range", domain.DateRange{}, true},
		{"open start", domain.DateRange{To: "2026-02-10"}, true},
		{"open end", domain.DateRange{From: "2026-02-12"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, testConfig(unreachableBase))

			rows, err := c.PodLeaves(context.Background(), "pod1", nil, tt.rng)
			require.NoError(t, err)

			found := false
			for _, row := range rows {
				for _, l := range row.Leaves {
					if l.ID == "l1" {
						found = true
					}
				}
			}
			assert.Equal(t, tt.included, found)
		})
	}
}

func TestPodLeavesUsesCallerSuppliedPod(t *testing.T) {
	c := newTestClient(t, testConfig(unreachableBase))

	// The hinted roster wins over the stored pod1 roster.
	hint := &domain.Pod{ID: "pod1", Name: "Checkout Pod", MemberIDs: []string{"u2"}}
	rows, err := c.PodLeaves(context.Background(), "pod1", hint, domain.DateRange{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "u2", rows[0].User.ID)
}

func TestTeamLeavesUnknownTeamIsEmpty(t *testing.T) {
	c := newTestClient(t, testConfig(unreachableBase))

	rows, err := c.TeamLeaves(context.Background(), "nope", domain.DateRange{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTeamLeavesRemotePassesRangeParams(t *testing.T) {
	var gotFrom, gotTo string
	r := chi.NewRouter()
	r.Get("/api/teams/{id}/leaves", func(w http.ResponseWriter, req *http.Request) {
		gotFrom = req.URL.Query().Get("from")
		gotTo = req.URL.Query().Get("to")
		json.NewEncoder(w).Encode([]domain.UserLeaves{})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := newTestClient(t, testConfig(srv.URL+"/api"))

	_, err := c.TeamLeaves(context.Background(), "vt1", domain.DateRange{From: "2026-02-01", To: "2026-02-28"})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", gotFrom)
	assert.Equal(t, "2026-02-28", gotTo)
}

func TestLeaveCRUDFallback(t *testing.T) {
	c := newTestClient(t, testConfig(unreachableBase))
	ctx := context.Background()

	created, origin, err := c.CreateLeave(ctx, domain.LeaveRecord{
		UserID:    "u1",
		StartDate: "2026-04-01",
		EndDate:   "2026-04-03",
		Source:    domain.LeaveSourceManual,
		Status:    domain.LeaveStatusPending,
		Note:      "Spring break",
	})
	require.NoError(t, err)
	assert.Equal(t, OriginFallback, origin)
	require.NotEmpty(t, created.ID)

	created.Note = "Spring break, extended"
	saved, origin, err := c.SaveLeave(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, OriginFallback, origin)
	assert.Equal(t, "Spring break, extended", saved.Note)

	leaves, err := c.LeavesByUser(ctx, "u1")
	require.NoError(t, err)
	ids := make([]string, 0, len(leaves))
	for _, l := range leaves {
		ids = append(ids, l.ID)
	}
	assert.Contains(t, ids, created.ID)

	origin, err = c.DeleteLeave(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, OriginFallback, origin)
}
