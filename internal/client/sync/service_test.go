package sync

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/shiftsync/internal/client/api"
	"github.com/iudanet/shiftsync/internal/client/storage"
	"github.com/iudanet/shiftsync/internal/crdt"
	"github.com/iudanet/shiftsync/internal/models"
	"github.com/iudanet/shiftsync/pkg/api"
)

type testEnv struct {
	client  *APIClientMock
	records *storage.RecordStorageMock
	oplog   *storage.OplogStorageMock
	meta    *storage.MetadataStorageMock
	svc     *Service

	savedRecords map[string]*models.Record
	savedClock   *models.VectorClock
	pending      []*models.Operation
	deliveredUp  uint64
	lastSyncAt   uint64
	cleared      bool
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		client:       &APIClientMock{},
		savedRecords: make(map[string]*models.Record),
	}

	env.records = &storage.RecordStorageMock{
		SaveRecordFunc: func(ctx context.Context, rec *models.Record) error {
			env.savedRecords[rec.ResourceID] = rec
			return nil
		},
		ClearRecordsFunc: func(ctx context.Context) error {
			env.savedRecords = make(map[string]*models.Record)
			env.cleared = true
			return nil
		},
	}

	env.oplog = &storage.OplogStorageMock{
		PendingOperationsFunc: func(ctx context.Context) ([]*models.Operation, error) {
			return env.pending, nil
		},
		PendingCountFunc: func(ctx context.Context) (int, error) {
			return len(env.pending), nil
		},
		MarkDeliveredFunc: func(ctx context.Context, upTo uint64) error {
			env.deliveredUp = upTo
			return nil
		},
		ClearPendingFunc: func(ctx context.Context) error {
			env.pending = nil
			return nil
		},
	}

	env.meta = &storage.MetadataStorageMock{
		GetClockFunc: func(ctx context.Context) (models.VectorClock, error) {
			if env.savedClock == nil {
				return models.VectorClock{}, storage.ErrNotInitialized
			}
			return *env.savedClock, nil
		},
		SaveClockFunc: func(ctx context.Context, clock models.VectorClock) error {
			env.savedClock = &clock
			return nil
		},
		SaveLastSyncAtFunc: func(ctx context.Context, micros uint64) error {
			env.lastSyncAt = micros
			return nil
		},
		GetLastSyncAtFunc: func(ctx context.Context) (uint64, error) {
			return env.lastSyncAt, nil
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env.svc = NewService(env.client, crdt.NewClockWithNodeID("node-a"), env.records, env.oplog, env.meta, logger)

	return env
}

// initialized приводит узел в состояние после init: часы сохранены
// в метаданных и восстановлены в памяти, как это делает main.
func (env *testEnv) initialized(clock models.VectorClock) {
	env.savedClock = &clock
	env.svc.clock = crdt.RestoreClock(clock)
}

func testClock(nodeID string, counter uint64) models.VectorClock {
	return models.VectorClock{
		NodeID:    nodeID,
		Counter:   counter,
		Timestamp: 1700000000000000 + counter,
		Deps:      map[string]uint64{},
		Merge:     models.MergeLastWriteWins,
	}
}

func pendingOp(nodeID string, counter uint64) *models.Operation {
	return &models.Operation{
		Type:         models.OpUpdate,
		ResourceType: "task",
		ResourceID:   "task-1",
		Fields: map[string]models.FieldValue{
			"title": {Value: "restock gauze", NodeID: nodeID, Timestamp: 1700000000000000 + counter},
		},
		Clock:     testClock(nodeID, counter),
		Timestamp: 1700000000000000 + counter,
	}
}

func okResponse(clock models.VectorClock, processed int) *api.SynchronizeResponse {
	return &api.SynchronizeResponse{
		Clock:     models.ClockToAPI(clock),
		Processed: processed,
	}
}

func TestService_Initialize_NewNode(t *testing.T) {
	env := newTestEnv(t)
	// Идентичность узла создается при первом запуске клиента
	env.svc.clock = crdt.NewClockWithNodeID("phone-er-1")

	env.client.InitializeFunc = func(ctx context.Context, req api.InitializeRequest) (*api.InitializeResponse, error) {
		return &api.InitializeResponse{
			NodeID: req.NodeID,
			Clock:  models.ClockToAPI(testClock(req.NodeID, 1)),
		}, nil
	}

	err := env.svc.Initialize(context.Background(), "phone-er-1", "mobile", "nurse-7")
	require.NoError(t, err)

	require.Len(t, env.client.InitializeCalls(), 1)
	assert.Equal(t, "phone-er-1", env.client.InitializeCalls()[0].Req.NodeID)
	assert.Equal(t, "mobile", env.client.InitializeCalls()[0].Req.DeviceType)

	require.NotNil(t, env.savedClock)
	assert.Equal(t, "phone-er-1", env.savedClock.NodeID)
	assert.Equal(t, uint64(1), env.savedClock.Counter)
}

func TestService_Initialize_ExistingNodeKeepsIdentity(t *testing.T) {
	env := newTestEnv(t)
	env.initialized(testClock("phone-er-1", 5))

	env.client.InitializeFunc = func(ctx context.Context, req api.InitializeRequest) (*api.InitializeResponse, error) {
		return &api.InitializeResponse{
			NodeID: req.NodeID,
			Clock:  models.ClockToAPI(testClock(req.NodeID, 1)),
		}, nil
	}

	// Переданный nodeID игнорируется: узел уже знает себя
	err := env.svc.Initialize(context.Background(), "some-other-id", "mobile", "nurse-7")
	require.NoError(t, err)

	require.Len(t, env.client.InitializeCalls(), 1)
	assert.Equal(t, "phone-er-1", env.client.InitializeCalls()[0].Req.NodeID)

	// Локальные часы ушли дальше серверных и не откатываются
	assert.Equal(t, "phone-er-1", env.savedClock.NodeID)
	assert.Equal(t, uint64(5), env.savedClock.Counter)
}

func TestService_Sync_NotInitialized(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Sync(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotInitialized)
}

func TestService_Sync_PushAndPull(t *testing.T) {
	env := newTestEnv(t)
	env.initialized(testClock("node-a", 2))
	env.pending = []*models.Operation{pendingOp("node-a", 1), pendingOp("node-a", 2)}

	serverClock := testClock("node-a", 2)
	serverClock.Deps = map[string]uint64{"node-b": 4}

	env.client.SynchronizeFunc = func(ctx context.Context, req api.SynchronizeRequest) (*api.SynchronizeResponse, error) {
		resp := okResponse(serverClock, len(req.Operations))
		resp.MergedState = &api.SyncState{
			NodeID: req.NodeID,
			Records: map[string]*api.Record{
				"task-1": {
					ResourceType: "task",
					ResourceID:   "task-1",
					Fields: map[string]api.FieldValue{
						"title": {Value: "restock gauze", NodeID: "node-a", Timestamp: 1700000000000002},
					},
					Clock: models.ClockToAPI(serverClock),
				},
			},
			Clock:   models.ClockToAPI(serverClock),
			Metrics: api.SyncMetrics{Level: "OPTIMAL", MaxBatchSize: 1000},
		}
		return resp, nil
	}

	res, err := env.svc.Sync(context.Background())
	require.NoError(t, err)

	require.Len(t, env.client.SynchronizeCalls(), 1)
	req := env.client.SynchronizeCalls()[0].Req
	assert.Equal(t, "node-a", req.NodeID)
	assert.Len(t, req.Operations, 2)

	assert.Equal(t, 2, res.Pushed)
	assert.Equal(t, "OPTIMAL", res.Level)
	assert.False(t, res.Resynced)

	// Слитое состояние сервера замещает локальный кэш
	require.Contains(t, env.savedRecords, "task-1")

	// Счетчик сессии сервера подтверждает доставленные операции
	assert.Equal(t, uint64(2), env.deliveredUp)

	// Часы вобрали знание сервера о других узлах
	require.NotNil(t, env.savedClock)
	assert.Equal(t, uint64(4), env.savedClock.Deps["node-b"])

	assert.NotZero(t, env.lastSyncAt)
}

func TestService_Sync_ObservesPulledRecordClocks(t *testing.T) {
	env := newTestEnv(t)
	env.initialized(testClock("node-a", 0))

	// Запись другого узла, вытянутая при pull
	remote := testClock("node-b", 7)

	env.client.SynchronizeFunc = func(ctx context.Context, req api.SynchronizeRequest) (*api.SynchronizeResponse, error) {
		resp := okResponse(testClock("node-a", 0), 0)
		resp.MergedState = &api.SyncState{
			NodeID: req.NodeID,
			Records: map[string]*api.Record{
				"task-3": {
					ResourceType: "task",
					ResourceID:   "task-3",
					Fields: map[string]api.FieldValue{
						"status": {Value: "IN_PROGRESS", NodeID: "node-b", Timestamp: remote.Timestamp},
					},
					Clock: models.ClockToAPI(remote),
				},
			},
			Clock:   models.ClockToAPI(testClock("node-a", 0)),
			Metrics: api.SyncMetrics{Level: "OPTIMAL", MaxBatchSize: 1000},
		}
		return resp, nil
	}

	_, err := env.svc.Sync(context.Background())
	require.NoError(t, err)

	// Счетчик node-b зафиксирован в зависимостях сохраненных часов
	require.NotNil(t, env.savedClock)
	assert.Equal(t, uint64(7), env.savedClock.Deps["node-b"])

	// Следующая локальная операция причинно позже вытянутой записи,
	// а не конкурентна ей: увиденное не перезатирается по LWW
	next := env.svc.clock.Tick()
	assert.Equal(t, models.OrderAfter, next.Compare(remote))
	assert.Equal(t, models.OrderBefore, remote.Compare(next))
}

func TestService_Sync_EmptyBatchStillPulls(t *testing.T) {
	env := newTestEnv(t)
	env.initialized(testClock("node-a", 3))

	env.client.SynchronizeFunc = func(ctx context.Context, req api.SynchronizeRequest) (*api.SynchronizeResponse, error) {
		assert.Empty(t, req.Operations)
		return okResponse(testClock("node-a", 3), 0), nil
	}

	res, err := env.svc.Sync(context.Background())
	require.NoError(t, err)

	assert.Len(t, env.client.SynchronizeCalls(), 1)
	assert.Equal(t, 0, res.Pushed)
	assert.NotZero(t, env.lastSyncAt)
}

func TestService_Sync_ShrinksBatchWhenRejected(t *testing.T) {
	env := newTestEnv(t)
	env.initialized(testClock("node-a", 4))
	for i := uint64(1); i <= 4; i++ {
		env.pending = append(env.pending, pendingOp("node-a", i))
	}

	env.client.SynchronizeFunc = func(ctx context.Context, req api.SynchronizeRequest) (*api.SynchronizeResponse, error) {
		if len(req.Operations) > 2 {
			return nil, &clientapi.ServerError{Code: api.ErrCodeBatchTooLarge, Status: 400}
		}
		last := req.Operations[len(req.Operations)-1]
		return okResponse(testClock("node-a", last.Clock.Counter), len(req.Operations)), nil
	}

	res, err := env.svc.Sync(context.Background())
	require.NoError(t, err)

	// Батч из 4 отклонен, далее операции уходят половинками
	calls := env.client.SynchronizeCalls()
	require.Len(t, calls, 3)
	assert.Len(t, calls[0].Req.Operations, 4)
	assert.Len(t, calls[1].Req.Operations, 2)
	assert.Len(t, calls[2].Req.Operations, 2)

	assert.Equal(t, 4, res.Pushed)
	assert.Equal(t, 2, env.svc.maxBatch)
	assert.Equal(t, uint64(4), env.deliveredUp)
}

func TestService_Sync_RetriesTransientErrors(t *testing.T) {
	env := newTestEnv(t)
	env.initialized(testClock("node-a", 1))
	env.pending = []*models.Operation{pendingOp("node-a", 1)}

	attempts := 0
	env.client.SynchronizeFunc = func(ctx context.Context, req api.SynchronizeRequest) (*api.SynchronizeResponse, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return okResponse(testClock("node-a", 1), len(req.Operations)), nil
	}

	res, err := env.svc.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, attempts)
	assert.Equal(t, 1, res.Pushed)
}

func TestService_Sync_DoesNotRetryServerErrors(t *testing.T) {
	env := newTestEnv(t)
	env.initialized(testClock("node-a", 1))
	env.pending = []*models.Operation{pendingOp("node-a", 1)}

	env.client.SynchronizeFunc = func(ctx context.Context, req api.SynchronizeRequest) (*api.SynchronizeResponse, error) {
		return nil, &clientapi.ServerError{Code: api.ErrCodeValidation, Status: 400}
	}

	_, err := env.svc.Sync(context.Background())
	require.Error(t, err)
	assert.Len(t, env.client.SynchronizeCalls(), 1)
}

func TestService_Sync_AdoptsServerBatchSize(t *testing.T) {
	env := newTestEnv(t)
	env.initialized(testClock("node-a", 1))
	env.pending = []*models.Operation{pendingOp("node-a", 1)}

	env.client.SynchronizeFunc = func(ctx context.Context, req api.SynchronizeRequest) (*api.SynchronizeResponse, error) {
		resp := okResponse(testClock("node-a", 1), len(req.Operations))
		resp.MergedState = &api.SyncState{
			NodeID:  req.NodeID,
			Records: map[string]*api.Record{},
			Clock:   resp.Clock,
			Metrics: api.SyncMetrics{Level: "CRITICAL", MaxBatchSize: 100},
		}
		return resp, nil
	}

	res, err := env.svc.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "CRITICAL", res.Level)
	assert.Equal(t, 100, env.svc.maxBatch)
}

func TestService_Sync_ResyncRequired(t *testing.T) {
	env := newTestEnv(t)
	env.initialized(testClock("node-a", 7))
	env.pending = []*models.Operation{pendingOp("node-a", 20)}
	env.savedRecords["stale-1"] = &models.Record{ResourceID: "stale-1"}

	serverClock := testClock("node-a", 7)
	serverClock.Deps = map[string]uint64{"node-b": 9}

	env.client.SynchronizeFunc = func(ctx context.Context, req api.SynchronizeRequest) (*api.SynchronizeResponse, error) {
		return nil, &clientapi.ServerError{Code: api.ErrCodeResyncRequired, Status: 409}
	}
	env.client.GetStateFunc = func(ctx context.Context, nodeID string) (*api.SyncState, error) {
		return &api.SyncState{
			NodeID: nodeID,
			Records: map[string]*api.Record{
				"task-9": {
					ResourceType: "task",
					ResourceID:   "task-9",
					Fields:       map[string]api.FieldValue{},
					Clock:        models.ClockToAPI(serverClock),
				},
			},
			Clock: models.ClockToAPI(serverClock),
		}, nil
	}

	res, err := env.svc.Sync(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Resynced)
	assert.Equal(t, 0, res.Pushed)

	require.Len(t, env.client.GetStateCalls(), 1)
	assert.Equal(t, "node-a", env.client.GetStateCalls()[0].NodeID)

	// Локальный кэш и журнал замещены состоянием сервера
	assert.True(t, env.cleared)
	assert.Empty(t, env.pending)
	assert.NotContains(t, env.savedRecords, "stale-1")
	assert.Contains(t, env.savedRecords, "task-9")

	assert.Equal(t, uint64(9), env.savedClock.Deps["node-b"])
	assert.NotZero(t, env.lastSyncAt)
}

func TestService_Status(t *testing.T) {
	env := newTestEnv(t)

	status, err := env.svc.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Initialized)
	assert.Empty(t, status.NodeID)

	env.initialized(testClock("node-a", 3))
	env.pending = []*models.Operation{pendingOp("node-a", 1)}
	env.lastSyncAt = 1700000000000000

	status, err = env.svc.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Initialized)
	assert.Equal(t, "node-a", status.NodeID)
	assert.Equal(t, 1, status.PendingCount)
	assert.Equal(t, uint64(1700000000000000), status.LastSyncAt)
}
