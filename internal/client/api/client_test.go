package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shiftsync/pkg/api"
)

func TestClient_Initialize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sync/initialize", r.URL.Path)
		assert.Equal(t, "tablet-1", r.Header.Get(NodeIDHeader))

		var req api.InitializeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tablet-1", req.NodeID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.InitializeResponse{
			NodeID: req.NodeID,
			Clock:  api.VectorClock{NodeID: req.NodeID, Counter: 1, Timestamp: 100},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "tablet-1")
	resp, err := client.Initialize(context.Background(), api.InitializeRequest{
		NodeID:     "tablet-1",
		DeviceType: "tablet",
		UserID:     "nurse-17",
	})
	require.NoError(t, err)
	assert.Equal(t, "tablet-1", resp.NodeID)
	assert.Equal(t, uint64(1), resp.Clock.Counter)
}

func TestClient_Synchronize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sync/synchronize", r.URL.Path)

		var req api.SynchronizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.SynchronizeResponse{
			MergedState: &api.SyncState{NodeID: req.NodeID},
			Clock:       api.VectorClock{NodeID: req.NodeID, Counter: 2, Timestamp: 200},
			Processed:   len(req.Operations),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "tablet-1")
	resp, err := client.Synchronize(context.Background(), api.SynchronizeRequest{
		NodeID:     "tablet-1",
		Operations: []api.Operation{{Type: "create", ResourceID: "task-1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Processed)
	require.NotNil(t, resp.MergedState)
}

func TestClient_GetState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/sync/state/tablet-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.SyncState{NodeID: "tablet-1"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "tablet-1")
	state, err := client.GetState(context.Background(), "tablet-1")
	require.NoError(t, err)
	assert.Equal(t, "tablet-1", state.NodeID)
}

func TestClient_ServerErrorCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
		check  func(error) bool
	}{
		{name: "resync required", status: http.StatusConflict, code: api.ErrCodeResyncRequired, check: IsResyncRequired},
		{name: "batch too large", status: http.StatusBadRequest, code: api.ErrCodeBatchTooLarge, check: IsBatchTooLarge},
		{name: "unknown node", status: http.StatusNotFound, code: api.ErrCodeUnknownNode, check: IsUnknownNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "rejected", Code: tt.code})
			}))
			defer server.Close()

			client := NewClient(server.URL, "tablet-1")
			_, err := client.Synchronize(context.Background(), api.SynchronizeRequest{NodeID: "tablet-1"})
			require.Error(t, err)
			assert.True(t, tt.check(err))

			var se *ServerError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.Status)
		})
	}
}

func TestClient_PlainTextError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "tablet-1")
	_, err := client.GetState(context.Background(), "tablet-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.False(t, IsResyncRequired(err))
}
