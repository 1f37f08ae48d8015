package crdt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shiftsync/internal/models"
)

func taskOps() (create, update, del *models.Operation) {
	create = &models.Operation{
		Type:         models.OpCreate,
		ResourceType: models.ResourceTask,
		ResourceID:   "task-2",
		Fields: map[string]models.FieldValue{
			"title":  {Value: "Prepare discharge", Timestamp: 1000, NodeID: "node-a"},
			"status": {Value: models.TaskStatusPending, Timestamp: 1000, NodeID: "node-a"},
		},
		Clock:     models.VectorClock{NodeID: "node-a", Counter: 1, Timestamp: 1000, Deps: map[string]uint64{}},
		Timestamp: 1000,
	}
	update = &models.Operation{
		Type:       models.OpUpdate,
		ResourceID: "task-2",
		Fields: map[string]models.FieldValue{
			"status": {Value: models.TaskStatusInProgress, Timestamp: 2000, NodeID: "node-a"},
		},
		Clock:     models.VectorClock{NodeID: "node-a", Counter: 2, Timestamp: 2000, Deps: map[string]uint64{}},
		Timestamp: 2000,
	}
	del = &models.Operation{
		Type:       models.OpDelete,
		ResourceID: "task-2",
		Clock:      models.VectorClock{NodeID: "node-a", Counter: 3, Timestamp: 3000, Deps: map[string]uint64{}},
		Timestamp:  3000,
	}
	return create, update, del
}

func storeWithOps(ops []*models.Operation) *LogStoreMock {
	return &LogStoreMock{
		GetOperationsFunc: func(ctx context.Context, resourceID string) ([]*models.Operation, error) {
			return ops, nil
		},
	}
}

func TestOperationLog_Append(t *testing.T) {
	var appended []*models.Operation
	store := &LogStoreMock{
		AppendOperationFunc: func(ctx context.Context, op *models.Operation) error {
			appended = append(appended, op)
			return nil
		},
	}
	log := NewOperationLog(store)

	create, _, _ := taskOps()
	require.NoError(t, log.Append(context.Background(), create))
	require.Len(t, appended, 1)

	// Журнал хранит копию: последующая мутация оригинала не видна
	create.Fields["title"] = models.FieldValue{Value: "mutated"}
	assert.Equal(t, "Prepare discharge", appended[0].Fields["title"].Value)
}

func TestOperationLog_Append_Invalid(t *testing.T) {
	log := NewOperationLog(&LogStoreMock{})

	tests := []struct {
		name string
		op   *models.Operation
	}{
		{
			name: "empty resource id",
			op:   &models.Operation{Type: models.OpCreate, Clock: models.VectorClock{NodeID: "node-a", Counter: 1}},
		},
		{
			name: "missing vector clock",
			op:   &models.Operation{Type: models.OpCreate, ResourceID: "task-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, log.Append(context.Background(), tt.op))
		})
	}
}

func TestOperationLog_Replay_InOrder(t *testing.T) {
	create, update, del := taskOps()
	log := NewOperationLog(storeWithOps([]*models.Operation{create, update, del}))

	rec, err := log.Replay(context.Background(), "task-2")

	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.True(t, rec.Deleted)
	assert.NotZero(t, rec.DeletedAt)
}

func TestOperationLog_Replay_Deterministic(t *testing.T) {
	create, update, del := taskOps()

	// Журнал прибыл переупорядоченным: [2,1,3]. Операция 2 причинно
	// зависит от 1, воспроизведение обязано восстановить порядок.
	inOrder := NewOperationLog(storeWithOps([]*models.Operation{create, update, del}))
	reordered := NewOperationLog(storeWithOps([]*models.Operation{update, create, del}))

	recA, err := inOrder.Replay(context.Background(), "task-2")
	require.NoError(t, err)
	recB, err := reordered.Replay(context.Background(), "task-2")
	require.NoError(t, err)

	assert.Equal(t, recA.Deleted, recB.Deleted)
	assert.Equal(t, recA.Fields, recB.Fields, "Replay must be deterministic under reordering")
}

func TestOperationLog_Replay_Empty(t *testing.T) {
	log := NewOperationLog(storeWithOps(nil))

	rec, err := log.Replay(context.Background(), "task-404")

	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSortCausally(t *testing.T) {
	create, update, del := taskOps()

	// Конкурентная операция другого узла с ранней меткой времени
	concurrent := &models.Operation{
		Type:       models.OpUpdate,
		ResourceID: "task-2",
		Fields: map[string]models.FieldValue{
			"notes": {Value: "seen by night shift", Timestamp: 1500, NodeID: "node-b"},
		},
		Clock:     models.VectorClock{NodeID: "node-b", Counter: 1, Timestamp: 1500, Deps: map[string]uint64{}},
		Timestamp: 1500,
	}

	sorted := SortCausally([]*models.Operation{del, concurrent, update, create})

	require.Len(t, sorted, 4)
	index := func(target *models.Operation) int {
		for i, op := range sorted {
			if op == target {
				return i
			}
		}
		return -1
	}

	assert.Less(t, index(create), index(update), "Causal predecessor comes first")
	assert.Less(t, index(update), index(del))

	// Детерминированность: повторная сортировка другого порядка прибытия
	sorted2 := SortCausally([]*models.Operation{concurrent, del, create, update})
	for i := range sorted {
		assert.Equal(t, sorted[i].Clock, sorted2[i].Clock, "Order must not depend on arrival order")
	}
}
