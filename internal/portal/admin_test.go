package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciberehd/proposaldb/internal/models"
)

func TestAdminListSortsNewestFirst(t *testing.T) {
	base := time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)
	stored := []models.Proposal{
		{ID: 1, Title: "Oldest", CreatedAt: base},
		{ID: 3, Title: "Newest", CreatedAt: base.Add(48 * time.Hour)},
		{ID: 2, Title: "Middle", CreatedAt: base.Add(24 * time.Hour)},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/proposals", r.URL.Path)
		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(stored)
	}))
	defer srv.Close()

	view := NewAdminView(NewClient(srv.URL))
	proposals, err := view.List(context.Background())
	require.NoError(t, err)
	require.Len(t, proposals, 3)

	assert.Equal(t, "Newest", proposals[0].Title)
	assert.Equal(t, "Middle", proposals[1].Title)
	assert.Equal(t, "Oldest", proposals[2].Title)
}

func TestAdminSetStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/proposals/7/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "approved", body["status"])

		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(map[string]interface{}{
			"message":  "Proposal status updated successfully",
			"proposal": map[string]interface{}{"id": 7, "status": "approved"},
		})
	}))
	defer srv.Close()

	view := NewAdminView(NewClient(srv.URL))
	proposal, err := view.SetStatus(context.Background(), 7, "approved")
	require.NoError(t, err)
	assert.Equal(t, uint(7), proposal.ID)
	assert.Equal(t, "approved", proposal.Status)
}
