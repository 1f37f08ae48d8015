package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	clientapi "github.com/iudanet/shiftsync/internal/client/api"
	"github.com/iudanet/shiftsync/internal/client/storage"
	"github.com/iudanet/shiftsync/internal/crdt"
	"github.com/iudanet/shiftsync/internal/models"
	"github.com/iudanet/shiftsync/pkg/api"
)

//go:generate moq -out api_mock.go . APIClient

// APIClient определяет интерфейс серверного API, нужный синхронизации.
type APIClient interface {
	Initialize(ctx context.Context, req api.InitializeRequest) (*api.InitializeResponse, error)
	Synchronize(ctx context.Context, req api.SynchronizeRequest) (*api.SynchronizeResponse, error)
	GetState(ctx context.Context, nodeID string) (*api.SyncState, error)
}

const (
	// pushRetries число повторов отправки батча при сетевых сбоях
	pushRetries = 2

	// pushRetryBase базовая задержка экспоненциального backoff
	pushRetryBase = 200 * time.Millisecond
)

// Result результат одного цикла синхронизации.
type Result struct {
	Level     string
	Pushed    int
	Conflicts int
	Resynced  bool
}

// Status состояние синхронизации для отображения пользователю.
type Status struct {
	NodeID       string
	PendingCount int
	LastSyncAt   uint64
	Initialized  bool
}

// Service выполняет циклы синхронизации: отправляет накопленный журнал
// операций на сервер батчами и замещает локальный кэш слитым
// состоянием сервера. Размер батча подстраивается под уровень
// производительности, объявленный сервером.
type Service struct {
	client   APIClient
	clock    *crdt.Clock
	records  storage.RecordStorage
	oplog    storage.OplogStorage
	meta     storage.MetadataStorage
	logger   *slog.Logger
	maxBatch int
}

// NewService создает сервис синхронизации. Часы clock общие с сервисом
// задач: увиденные при pull чужие счетчики должны попадать в
// зависимости следующих локальных операций.
func NewService(client APIClient, clock *crdt.Clock, records storage.RecordStorage, oplog storage.OplogStorage, meta storage.MetadataStorage, logger *slog.Logger) *Service {
	return &Service{
		client:   client,
		clock:    clock,
		records:  records,
		oplog:    oplog,
		meta:     meta,
		logger:   logger,
		maxBatch: 1000,
	}
}

// Initialize регистрирует узел на сервере и сохраняет выданные часы.
// Повторный вызов для уже инициализированного узла обновляет сессию
// на сервере, не трогая локальные часы.
func (s *Service) Initialize(ctx context.Context, nodeID, deviceType, userID string) error {
	existing, err := s.meta.GetClock(ctx)
	switch {
	case err == nil:
		// Узел уже знает себя: сервер мог забыть сессию, напоминаем
		nodeID = existing.NodeID
	case errors.Is(err, storage.ErrNotInitialized):
	default:
		return fmt.Errorf("failed to load clock: %w", err)
	}

	resp, err := s.client.Initialize(ctx, api.InitializeRequest{
		NodeID:     nodeID,
		DeviceType: deviceType,
		UserID:     userID,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize node: %w", err)
	}

	// Observe не теряет офлайн-наработки: собственный счетчик часов
	// только растет при слиянии с серверной сессией
	s.clock.Observe(models.ClockFromAPI(resp.Clock))
	clock := s.clock.Current()

	if err := s.meta.SaveClock(ctx, clock); err != nil {
		return fmt.Errorf("failed to save clock: %w", err)
	}

	s.logger.Info("Node initialized", "node_id", clock.NodeID, "device_type", deviceType)
	return nil
}

// Sync выполняет полный цикл: push журнала операций, pull слитого
// состояния. При требовании resync от сервера локальный кэш
// замещается состоянием сервера целиком.
func (s *Service) Sync(ctx context.Context) (*Result, error) {
	if _, err := s.meta.GetClock(ctx); err != nil {
		if errors.Is(err, storage.ErrNotInitialized) {
			return nil, storage.ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to load clock: %w", err)
	}
	clock := s.clock.Current()

	pending, err := s.oplog.PendingOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending operations: %w", err)
	}

	result := &Result{}

	// Пустой батч тоже отправляется: он подтягивает чужие изменения
	for first := true; first || len(pending) > 0; first = false {
		batch := pending
		if len(batch) > s.maxBatch {
			batch = batch[:s.maxBatch]
		}

		resp, sent, err := s.pushBatch(ctx, clock, batch)
		if err != nil {
			if clientapi.IsResyncRequired(err) {
				s.logger.Warn("Server requested full resync", "node_id", clock.NodeID)
				if err := s.fullResync(ctx); err != nil {
					return nil, err
				}
				result.Resynced = true
				return result, nil
			}
			return nil, err
		}

		pending = pending[sent:]
		result.Pushed += resp.Processed
		result.Conflicts += len(resp.Conflicts)
		if resp.MergedState != nil {
			result.Level = resp.MergedState.Metrics.Level
		}

		if err := s.acceptResponse(ctx, resp); err != nil {
			return nil, err
		}
		clock = s.clock.Current()
	}

	if err := s.meta.SaveLastSyncAt(ctx, models.NowMicros()); err != nil {
		return nil, fmt.Errorf("failed to save sync time: %w", err)
	}

	s.logger.Info("Sync completed",
		"node_id", clock.NodeID,
		"pushed", result.Pushed,
		"conflicts", result.Conflicts,
		"level", result.Level)

	return result, nil
}

// Status возвращает состояние синхронизации узла.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	status := &Status{}

	clock, err := s.meta.GetClock(ctx)
	switch {
	case err == nil:
		status.Initialized = true
		status.NodeID = clock.NodeID
	case errors.Is(err, storage.ErrNotInitialized):
	default:
		return nil, fmt.Errorf("failed to load clock: %w", err)
	}

	status.PendingCount, err = s.oplog.PendingCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending operations: %w", err)
	}

	status.LastSyncAt, err = s.meta.GetLastSyncAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load last sync time: %w", err)
	}

	return status, nil
}

// pushBatch отправляет батч, уменьшая его размер вдвое, если сервер
// отклоняет батч по размеру. Возвращает число отправленных операций.
func (s *Service) pushBatch(ctx context.Context, clock models.VectorClock, batch []*models.Operation) (*api.SynchronizeResponse, int, error) {
	for {
		ops := make([]api.Operation, 0, len(batch))
		for _, op := range batch {
			ops = append(ops, models.OperationToAPI(op))
		}
		req := api.SynchronizeRequest{
			NodeID:     clock.NodeID,
			Operations: ops,
			Clock:      models.ClockToAPI(clock),
		}

		// Сетевые сбои повторяются с backoff, протокольные ошибки
		// сервера возвращаются сразу
		var resp *api.SynchronizeResponse
		err := retry.Do(ctx, retry.WithMaxRetries(pushRetries, retry.NewExponential(pushRetryBase)), func(ctx context.Context) error {
			var callErr error
			resp, callErr = s.client.Synchronize(ctx, req)
			if callErr != nil {
				var serverErr *clientapi.ServerError
				if errors.As(callErr, &serverErr) {
					return callErr
				}
				return retry.RetryableError(callErr)
			}
			return nil
		})
		if err == nil {
			return resp, len(batch), nil
		}
		if !clientapi.IsBatchTooLarge(err) || len(batch) <= 1 {
			return nil, 0, err
		}

		s.maxBatch = len(batch) / 2
		if s.maxBatch < 1 {
			s.maxBatch = 1
		}
		s.logger.Warn("Batch rejected by size, shrinking", "new_size", s.maxBatch)
		batch = batch[:s.maxBatch]
	}
}

// acceptResponse вбирает ответ сервера: замещает локальный кэш слитым
// состоянием, подтверждает доставленные операции, обновляет часы и
// подстраивает размер батча под уровень производительности сервера.
func (s *Service) acceptResponse(ctx context.Context, resp *api.SynchronizeResponse) error {
	if resp.MergedState != nil {
		state := models.StateFromAPI(resp.MergedState)
		for _, rec := range state.Records {
			if err := s.records.SaveRecord(ctx, rec); err != nil {
				return fmt.Errorf("failed to save merged record: %w", err)
			}
			// Часы чужой записи входят в зависимости узла: следующая
			// локальная операция будет причинно позже увиденного
			s.clock.Observe(rec.Clock)
		}
		// Метрики не переживают StateFromAPI, читаем их с wire-типа
		if resp.MergedState.Metrics.MaxBatchSize > 0 {
			s.maxBatch = resp.MergedState.Metrics.MaxBatchSize
		}
	}

	serverClock := models.ClockFromAPI(resp.Clock)

	// Счетчик сессии на сервере равен последней принятой операции узла
	if err := s.oplog.MarkDelivered(ctx, serverClock.Counter); err != nil {
		return fmt.Errorf("failed to mark operations delivered: %w", err)
	}

	s.clock.Observe(serverClock)
	if err := s.meta.SaveClock(ctx, s.clock.Current()); err != nil {
		return fmt.Errorf("failed to save clock: %w", err)
	}

	return nil
}

// fullResync замещает локальное состояние снимком сервера. Локальный
// журнал очищается: сервер уже хранит все принятые операции, а
// непринятые будут потеряны, о чем сигнализирует вызывающему коду
// флаг Resynced.
func (s *Service) fullResync(ctx context.Context) error {
	apiState, err := s.client.GetState(ctx, s.clock.NodeID())
	if err != nil {
		return fmt.Errorf("failed to fetch server state: %w", err)
	}

	if err := s.records.ClearRecords(ctx); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	if err := s.oplog.ClearPending(ctx); err != nil {
		return fmt.Errorf("failed to clear pending operations: %w", err)
	}

	state := models.StateFromAPI(apiState)
	for _, rec := range state.Records {
		if err := s.records.SaveRecord(ctx, rec); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		s.clock.Observe(rec.Clock)
	}

	s.clock.Observe(state.Clock)
	if err := s.meta.SaveClock(ctx, s.clock.Current()); err != nil {
		return fmt.Errorf("failed to save clock: %w", err)
	}

	if err := s.meta.SaveLastSyncAt(ctx, models.NowMicros()); err != nil {
		return fmt.Errorf("failed to save sync time: %w", err)
	}

	s.logger.Info("Full resync completed", "node_id", s.clock.NodeID(), "records", len(state.Records))
	return nil
}
