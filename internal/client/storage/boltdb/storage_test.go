package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shiftsync/internal/client/storage"
	"github.com/iudanet/shiftsync/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "shiftsync-client.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func testRecord(resourceID string, deleted bool) *models.Record {
	rec := &models.Record{
		ResourceType: models.ResourceTask,
		ResourceID:   resourceID,
		Fields: map[string]models.FieldValue{
			"status": {Value: models.TaskStatusPending, Timestamp: 100, NodeID: "node-a"},
			"title":  {Value: "Administer medication", Timestamp: 100, NodeID: "node-a"},
		},
		Clock: models.VectorClock{
			NodeID:    "node-a",
			Counter:   1,
			Timestamp: 100,
			Merge:     models.MergeLastWriteWins,
			Deps:      map[string]uint64{},
		},
		CreatedAt: 100,
		UpdatedAt: 100,
	}
	if deleted {
		rec.Deleted = true
		rec.DeletedAt = 200
	}
	return rec
}

func testPendingOp(counter uint64) *models.Operation {
	return &models.Operation{
		Type:         models.OpUpdate,
		ResourceType: models.ResourceTask,
		ResourceID:   "task-1",
		Fields: map[string]models.FieldValue{
			"status": {Value: models.TaskStatusInProgress, Timestamp: 100 + counter, NodeID: "node-a"},
		},
		Clock: models.VectorClock{
			NodeID:    "node-a",
			Counter:   counter,
			Timestamp: 100 + counter,
			Deps:      map[string]uint64{},
		},
		Timestamp: 100 + counter,
	}
}

func TestStorage_SaveAndGetRecord(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	rec := testRecord("task-1", false)
	require.NoError(t, s.SaveRecord(ctx, rec))

	got, err := s.GetRecord(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, rec.ResourceID, got.ResourceID)
	assert.Equal(t, "Administer medication", got.Fields["title"].Value)
	assert.Equal(t, uint64(1), got.Clock.Counter)

	// Полная замена записи
	rec.Fields["status"] = models.FieldValue{Value: models.TaskStatusCompleted, Timestamp: 300, NodeID: "node-a"}
	require.NoError(t, s.SaveRecord(ctx, rec))

	got, err = s.GetRecord(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, got.Fields["status"].Value)
}

func TestStorage_GetRecord_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetRecord(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestStorage_ListRecords(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveRecord(ctx, testRecord("task-1", false)))
	require.NoError(t, s.SaveRecord(ctx, testRecord("task-2", true)))

	all, err := s.ListRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Tombstone не попадает в активные записи
	active, err := s.ListActiveRecords(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "task-1", active[0].ResourceID)
}

func TestStorage_ClearRecords(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveRecord(ctx, testRecord("task-1", false)))
	require.NoError(t, s.ClearRecords(ctx))

	all, err := s.ListRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStorage_PendingOperations(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Добавляем в обратном порядке: журнал обязан вернуть по счетчикам
	require.NoError(t, s.AppendPending(ctx, testPendingOp(3)))
	require.NoError(t, s.AppendPending(ctx, testPendingOp(1)))
	require.NoError(t, s.AppendPending(ctx, testPendingOp(2)))

	ops, err := s.PendingOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, uint64(1), ops[0].Clock.Counter)
	assert.Equal(t, uint64(2), ops[1].Clock.Counter)
	assert.Equal(t, uint64(3), ops[2].Clock.Counter)

	count, err := s.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestStorage_MarkDelivered(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for counter := uint64(1); counter <= 4; counter++ {
		require.NoError(t, s.AppendPending(ctx, testPendingOp(counter)))
	}

	require.NoError(t, s.MarkDelivered(ctx, 2))

	ops, err := s.PendingOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, uint64(3), ops[0].Clock.Counter)
	assert.Equal(t, uint64(4), ops[1].Clock.Counter)
}

func TestStorage_ClearPending(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.AppendPending(ctx, testPendingOp(1)))
	require.NoError(t, s.ClearPending(ctx))

	count, err := s.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStorage_Clock(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// До инициализации часов нет
	_, err := s.GetClock(ctx)
	assert.ErrorIs(t, err, storage.ErrNotInitialized)

	clock := models.NewVectorClock("node-a")
	clock = clock.Observe("node-b", 7)
	require.NoError(t, s.SaveClock(ctx, clock))

	got, err := s.GetClock(ctx)
	require.NoError(t, err)
	assert.Equal(t, "node-a", got.NodeID)
	assert.Equal(t, clock.Counter, got.Counter)
	assert.Equal(t, uint64(7), got.Deps["node-b"])
}

func TestStorage_LastSyncAt(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	micros, err := s.GetLastSyncAt(ctx)
	require.NoError(t, err)
	assert.Zero(t, micros)

	require.NoError(t, s.SaveLastSyncAt(ctx, 1700000000000000))

	micros, err = s.GetLastSyncAt(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1700000000000000), micros)
}
