package crdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shiftsync/internal/models"
)

func record(nodeID string, counter, ts uint64, fields map[string]models.FieldValue) *models.Record {
	return &models.Record{
		ResourceType: models.ResourceTask,
		ResourceID:   "task-1",
		Fields:       fields,
		Clock: models.VectorClock{
			NodeID:    nodeID,
			Counter:   counter,
			Timestamp: ts,
			Deps:      map[string]uint64{},
		},
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func field(value any, ts uint64, nodeID string) models.FieldValue {
	return models.FieldValue{Value: value, Timestamp: ts, NodeID: nodeID}
}

func TestMerge_LastWriteWins_CausalOrder(t *testing.T) {
	local := record("node-a", 1, 1000, map[string]models.FieldValue{
		"status": field(models.TaskStatusPending, 1000, "node-a"),
	})

	// Удаленная версия причинно знает о локальной
	remote := record("node-b", 1, 2000, map[string]models.FieldValue{
		"status": field(models.TaskStatusCompleted, 2000, "node-b"),
	})
	remote.Clock.Deps["node-a"] = 1

	merged := Merge(local, remote, LastWriteWins{})

	assert.Equal(t, models.TaskStatusCompleted, merged.Fields["status"].Value,
		"Causally later record wins")
}

func TestMerge_LastWriteWins_ConcurrentByTimestamp(t *testing.T) {
	local := record("node-a", 2, 1000, map[string]models.FieldValue{
		"status": field("IN_PROGRESS", 1000, "node-a"),
	})
	remote := record("node-b", 2, 2000, map[string]models.FieldValue{
		"status": field("COMPLETED", 2000, "node-b"),
	})

	merged := Merge(local, remote, LastWriteWins{})
	mergedReverse := Merge(remote, local, LastWriteWins{})

	assert.Equal(t, "COMPLETED", merged.Fields["status"].Value)
	assert.Equal(t, merged.Fields, mergedReverse.Fields,
		"Concurrent merge converges regardless of argument order")
}

func TestMerge_LastWriteWins_TimestampTieBreak(t *testing.T) {
	local := record("node-a", 1, 1000, map[string]models.FieldValue{
		"title": field("A", 1000, "node-a"),
	})
	remote := record("node-b", 1, 1000, map[string]models.FieldValue{
		"title": field("B", 1000, "node-b"),
	})

	merged := Merge(local, remote, LastWriteWins{})
	mergedReverse := Merge(remote, local, LastWriteWins{})

	// При равных метках выигрывает лексикографически больший NodeID
	assert.Equal(t, "B", merged.Fields["title"].Value)
	assert.Equal(t, merged.Fields, mergedReverse.Fields)
}

func TestMerge_Pure(t *testing.T) {
	local := record("node-a", 1, 1000, map[string]models.FieldValue{
		"status": field("PENDING", 1000, "node-a"),
	})
	remote := record("node-b", 1, 2000, map[string]models.FieldValue{
		"status": field("COMPLETED", 2000, "node-b"),
	})

	_ = Merge(local, remote, LastWriteWins{})

	require.Equal(t, "PENDING", local.Fields["status"].Value, "Inputs must stay untouched")
	require.Empty(t, local.Clock.Deps)
}

func TestMerge_NilSides(t *testing.T) {
	rec := record("node-a", 1, 1000, nil)

	assert.Nil(t, Merge(nil, nil, LastWriteWins{}))
	assert.Equal(t, rec.ResourceID, Merge(nil, rec, LastWriteWins{}).ResourceID)
	assert.Equal(t, rec.ResourceID, Merge(rec, nil, LastWriteWins{}).ResourceID)
}

func TestMergeFields_Defaults(t *testing.T) {
	local := record("node-a", 2, 3000, map[string]models.FieldValue{
		"status":   field("IN_PROGRESS", 3000, "node-a"),
		"assignee": field("alice", 1000, "node-a"),
	})
	remote := record("node-b", 2, 2500, map[string]models.FieldValue{
		"status": field("COMPLETED", 2500, "node-b"),
		"notes":  field("handover at 14:00", 2500, "node-b"),
	})

	merged := MergeFields(local, remote, nil)

	assert.Equal(t, "IN_PROGRESS", merged.Fields["status"].Value,
		"Per-field newer timestamp wins")
	assert.Equal(t, "alice", merged.Fields["assignee"].Value,
		"One-sided field is kept")
	assert.Equal(t, "handover at 14:00", merged.Fields["notes"].Value,
		"Remote-only field is kept")
}

func TestMergeFields_CustomResolver(t *testing.T) {
	local := record("node-a", 2, 1000, map[string]models.FieldValue{
		"priority": field(float64(3), 1000, "node-a"),
	})
	remote := record("node-b", 2, 2000, map[string]models.FieldValue{
		"priority": field(float64(5), 2000, "node-b"),
	})

	// Резолвер: для приоритета выигрывает большее значение, не метка времени
	maxPriority := func(l, r models.FieldValue, name string) models.FieldValue {
		lv, _ := l.Value.(float64)
		rv, _ := r.Value.(float64)
		if lv >= rv {
			return l
		}
		return r
	}

	merged := Merge(local, remote, Custom{Resolver: maxPriority})

	assert.Equal(t, float64(5), merged.Fields["priority"].Value)
}

func TestMergeFields_MergedClock(t *testing.T) {
	local := record("node-a", 3, 1000, map[string]models.FieldValue{})
	remote := record("node-b", 5, 2000, map[string]models.FieldValue{})

	merged := MergeFields(local, remote, nil)

	assert.Equal(t, uint64(5), merged.Clock.Deps["node-b"],
		"Merged clock records the remote counter")
	assert.Equal(t, uint64(3), merged.Clock.Counter)
}

func TestMerge_Idempotent(t *testing.T) {
	rec := record("node-a", 1, 1000, map[string]models.FieldValue{
		"status": field("PENDING", 1000, "node-a"),
	})

	merged := Merge(rec, rec, LastWriteWins{})

	assert.Equal(t, rec.Fields, merged.Fields)
	assert.False(t, merged.Deleted)
}

func TestMerge_Associative(t *testing.T) {
	a := record("node-a", 1, 1000, map[string]models.FieldValue{
		"status": field("A", 1000, "node-a"),
	})
	b := record("node-b", 1, 2000, map[string]models.FieldValue{
		"status": field("B", 2000, "node-b"),
	})
	c := record("node-c", 1, 1500, map[string]models.FieldValue{
		"status": field("C", 1500, "node-c"),
	})

	left := Merge(Merge(a, b, LastWriteWins{}), c, LastWriteWins{})
	right := Merge(a, Merge(b, c, LastWriteWins{}), LastWriteWins{})

	assert.Equal(t, left.Fields, right.Fields)
}

func TestApply_CreateUpdateDelete(t *testing.T) {
	create := &models.Operation{
		Type:         models.OpCreate,
		ResourceType: models.ResourceTask,
		ResourceID:   "task-2",
		Fields: map[string]models.FieldValue{
			"title":  field("Check vitals", 1000, "node-a"),
			"status": field(models.TaskStatusPending, 1000, "node-a"),
		},
		Clock:     models.VectorClock{NodeID: "node-a", Counter: 1, Timestamp: 1000, Deps: map[string]uint64{}},
		Timestamp: 1000,
	}
	update := &models.Operation{
		Type:       models.OpUpdate,
		ResourceID: "task-2",
		Fields: map[string]models.FieldValue{
			"status": field(models.TaskStatusInProgress, 2000, "node-a"),
		},
		Clock:     models.VectorClock{NodeID: "node-a", Counter: 2, Timestamp: 2000, Deps: map[string]uint64{}},
		Timestamp: 2000,
	}
	del := &models.Operation{
		Type:       models.OpDelete,
		ResourceID: "task-2",
		Clock:      models.VectorClock{NodeID: "node-a", Counter: 3, Timestamp: 3000, Deps: map[string]uint64{}},
		Timestamp:  3000,
	}

	rec := Apply(nil, create)
	require.NotNil(t, rec)
	assert.Equal(t, "Check vitals", rec.Fields["title"].Value)

	rec = Apply(rec, update)
	assert.Equal(t, models.TaskStatusInProgress, rec.Fields["status"].Value)
	assert.Equal(t, "Check vitals", rec.Fields["title"].Value, "Untouched fields survive updates")

	rec = Apply(rec, del)
	assert.True(t, rec.Deleted)
	assert.NotZero(t, rec.DeletedAt)
}
