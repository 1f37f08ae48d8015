package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shiftsync/internal/models"
	"github.com/iudanet/shiftsync/internal/server/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func testOperation(resourceID, nodeID string, counter, ts uint64) *models.Operation {
	return &models.Operation{
		Type:         models.OpUpdate,
		ResourceType: models.ResourceTask,
		ResourceID:   resourceID,
		Fields: map[string]models.FieldValue{
			"status": {Value: models.TaskStatusPending, Timestamp: ts, NodeID: nodeID},
		},
		Clock: models.VectorClock{
			NodeID:    nodeID,
			Counter:   counter,
			Timestamp: ts,
			Deps:      map[string]uint64{},
			Merge:     models.MergeLastWriteWins,
		},
		Timestamp: ts,
	}
}

func TestStorage_AppendAndGetOperations(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.AppendOperation(ctx, testOperation("task-1", "node-a", 1, 1000)))
	require.NoError(t, s.AppendOperation(ctx, testOperation("task-1", "node-a", 2, 2000)))
	require.NoError(t, s.AppendOperation(ctx, testOperation("task-2", "node-a", 3, 3000)))

	ops, err := s.GetOperations(ctx, "task-1")
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, "task-1", ops[0].ResourceID)
	assert.Equal(t, models.TaskStatusPending, ops[0].Fields["status"].Value)
	assert.Equal(t, uint64(1), ops[0].Clock.Counter)
}

func TestStorage_AppendOperation_Idempotent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	op := testOperation("task-1", "node-a", 1, 1000)
	require.NoError(t, s.AppendOperation(ctx, op))
	require.NoError(t, s.AppendOperation(ctx, op), "Re-appending the same key must not fail")

	ops, err := s.GetOperations(ctx, "task-1")
	require.NoError(t, err)
	assert.Len(t, ops, 1, "Duplicate append must be a no-op")
}

func TestStorage_LastCounter(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	counter, err := s.LastCounter(ctx, "node-a")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), counter, "Unknown node has no operations")

	require.NoError(t, s.AppendOperation(ctx, testOperation("task-1", "node-a", 1, 1000)))
	require.NoError(t, s.AppendOperation(ctx, testOperation("task-1", "node-a", 5, 2000)))

	counter, err = s.LastCounter(ctx, "node-a")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), counter)
}

func TestStorage_SaveAndGetRecord(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	rec := &models.Record{
		ResourceType: models.ResourceTask,
		ResourceID:   "task-1",
		Fields: map[string]models.FieldValue{
			"status": {Value: models.TaskStatusInProgress, Timestamp: 1000, NodeID: "node-a"},
		},
		Clock:     models.VectorClock{NodeID: "node-a", Counter: 2, Timestamp: 1000, Deps: map[string]uint64{"node-b": 1}},
		CreatedAt: 500,
		UpdatedAt: 1000,
	}

	require.NoError(t, s.SaveRecord(ctx, rec))

	got, err := s.GetRecord(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusInProgress, got.Fields["status"].Value)
	assert.Equal(t, uint64(1), got.Clock.Deps["node-b"])
	assert.False(t, got.Deleted)
}

func TestStorage_SaveRecord_Replaces(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	rec := &models.Record{
		ResourceID: "task-1",
		Fields:     map[string]models.FieldValue{},
		Clock:      models.VectorClock{NodeID: "node-a", Counter: 1, Timestamp: 1000},
		CreatedAt:  1000,
		UpdatedAt:  1000,
	}
	require.NoError(t, s.SaveRecord(ctx, rec))

	rec.Deleted = true
	rec.DeletedAt = 2000
	require.NoError(t, s.SaveRecord(ctx, rec))

	got, err := s.GetRecord(ctx, "task-1")
	require.NoError(t, err)
	assert.True(t, got.Deleted, "Save must replace the whole row atomically")
	assert.Equal(t, uint64(2000), got.DeletedAt)
}

func TestStorage_GetRecord_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetRecord(context.Background(), "task-404")

	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestStorage_ListRecords(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for _, id := range []string{"task-b", "task-a"} {
		require.NoError(t, s.SaveRecord(ctx, &models.Record{
			ResourceID: id,
			Fields:     map[string]models.FieldValue{},
			Clock:      models.VectorClock{NodeID: "node-a", Counter: 1, Timestamp: 1000},
		}))
	}

	records, err := s.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "task-a", records[0].ResourceID, "Records are ordered by resource id")
}

func TestStorage_NodeSessions(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.GetNode(ctx, "node-404")
	assert.ErrorIs(t, err, storage.ErrNodeNotFound)

	session := &storage.NodeSession{
		NodeID:     "node-a",
		DeviceType: "mobile",
		UserID:     "nurse-17",
		Clock:      models.NewVectorClock("node-a"),
	}
	require.NoError(t, s.SaveNode(ctx, session))

	got, err := s.GetNode(ctx, "node-a")
	require.NoError(t, err)
	assert.Equal(t, "mobile", got.DeviceType)
	assert.Zero(t, got.Clock.Counter, "fresh session has no acknowledged operations")

	// Обновление сессии после синхронизации
	session.LastSyncAt = 9000
	require.NoError(t, s.SaveNode(ctx, session))

	got, err = s.GetNode(ctx, "node-a")
	require.NoError(t, err)
	assert.Equal(t, uint64(9000), got.LastSyncAt)
}

func TestStorage_Conflicts(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	local := testOperation("task-1", "node-a", 1, 1000)
	remote := testOperation("task-1", "node-b", 1, 2000)

	rec := models.ConflictRecord{
		ResourceID: "task-1",
		Local:      local,
		Remote:     remote,
		Resolution: "remote_wins",
		DetectedAt: 3000,
	}
	require.NoError(t, s.SaveConflict(ctx, "node-a", rec))

	conflicts, err := s.GetConflicts(ctx, "node-a")
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "remote_wins", conflicts[0].Resolution)
	assert.Equal(t, "node-b", conflicts[0].Remote.Clock.NodeID)

	conflicts, err = s.GetConflicts(ctx, "node-z")
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}
