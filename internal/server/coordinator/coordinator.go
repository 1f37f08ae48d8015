package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/iudanet/shiftsync/internal/crdt"
	"github.com/iudanet/shiftsync/internal/models"
	"github.com/iudanet/shiftsync/internal/server/storage"
	"github.com/iudanet/shiftsync/internal/validation"
)

// Config параметры координатора синхронизации.
type Config struct {
	// Strategy стратегия слияния состояний. По умолчанию Last-Write-Wins.
	Strategy crdt.Strategy

	// MaxBatchSize максимальный размер батча операций (MAX_SYNC_BATCH_SIZE).
	MaxBatchSize int

	// MaxGapBuffer максимум операций узла, буферизуемых в ожидании
	// пропущенных предшественников, прежде чем потребуется полный resync.
	MaxGapBuffer int

	// StoreRetries число повторов при временных сбоях хранилища.
	StoreRetries uint64

	// RetryBase базовая задержка экспоненциального backoff.
	RetryBase time.Duration

	// DegradedThreshold p95 задержка, при которой уровень становится DEGRADED.
	DegradedThreshold time.Duration

	// CriticalThreshold p95 задержка, при которой уровень становится CRITICAL.
	CriticalThreshold time.Duration
}

// DefaultConfig возвращает конфигурацию по умолчанию.
func DefaultConfig() Config {
	return Config{
		Strategy:          crdt.LastWriteWins{},
		MaxBatchSize:      1000,
		MaxGapBuffer:      100,
		StoreRetries:      3,
		RetryBase:         50 * time.Millisecond,
		DegradedThreshold: 200 * time.Millisecond,
		CriticalThreshold: time.Second,
	}
}

// Result результат синхронизации батча.
type Result struct {
	State     *models.SyncState
	Conflicts []models.ConflictRecord
	Clock     models.VectorClock
	Processed int
}

// Coordinator принимает батчи операций от клиентов, сливает их с
// состоянием сервера через CRDT-движок и возвращает слитое состояние
// с обновленными векторными часами. Вызовы для одного ресурса
// сериализуются, разные ресурсы обрабатываются параллельно.
type Coordinator struct {
	store   storage.SyncStorage
	logger  *slog.Logger
	oplog   *crdt.OperationLog
	locks   *keyedMutex
	metrics *metricsTracker
	pending map[string][]*models.Operation
	cfg     Config
	mu      sync.Mutex
}

// New создает координатор поверх долговременного хранилища.
func New(store storage.SyncStorage, logger *slog.Logger, cfg Config) *Coordinator {
	if cfg.Strategy == nil {
		cfg.Strategy = crdt.LastWriteWins{}
	}
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = DefaultConfig().MaxBatchSize
	}
	if cfg.MaxGapBuffer <= 0 {
		cfg.MaxGapBuffer = DefaultConfig().MaxGapBuffer
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = DefaultConfig().RetryBase
	}
	if cfg.DegradedThreshold <= 0 {
		cfg.DegradedThreshold = DefaultConfig().DegradedThreshold
	}
	if cfg.CriticalThreshold <= 0 {
		cfg.CriticalThreshold = DefaultConfig().CriticalThreshold
	}

	return &Coordinator{
		store:   store,
		logger:  logger,
		oplog:   crdt.NewOperationLog(store),
		locks:   newKeyedMutex(),
		metrics: newMetricsTracker(cfg.DegradedThreshold, cfg.CriticalThreshold),
		pending: make(map[string][]*models.Operation),
		cfg:     cfg,
	}
}

// Initialize регистрирует клиентскую сессию и возвращает ее векторные
// часы. Повторная инициализация того же узла идемпотентна: возвращаются
// сохраненные часы. Начальное состояние клиента, если передано,
// сливается с состоянием сервера.
func (c *Coordinator) Initialize(ctx context.Context, nodeID, deviceType, userID string, initial *models.SyncState) (models.VectorClock, error) {
	if err := validation.ValidateNodeID(nodeID); err != nil {
		return models.VectorClock{}, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	existing, err := c.store.GetNode(ctx, nodeID)
	if err != nil && !errors.Is(err, storage.ErrNodeNotFound) {
		return models.VectorClock{}, fmt.Errorf("failed to load node session: %w", err)
	}
	if existing != nil {
		c.logger.Info("Node re-initialized", "node_id", nodeID)
		return existing.Clock, nil
	}

	clock := models.NewVectorClock(nodeID)

	if initial != nil {
		for _, id := range sortedResourceIDs(initial.Records) {
			rec := initial.Records[id]
			if err := c.mergeAndSaveRecord(ctx, rec); err != nil {
				return models.VectorClock{}, err
			}
			clock = clock.MergeWith(rec.Clock)
		}
	}

	session := &storage.NodeSession{
		NodeID:     nodeID,
		DeviceType: deviceType,
		UserID:     userID,
		Clock:      clock,
	}
	if err := c.saveNodeWithRetry(ctx, session); err != nil {
		return models.VectorClock{}, err
	}

	c.logger.Info("Node initialized", "node_id", nodeID, "device_type", deviceType)
	return clock, nil
}

// Synchronize обрабатывает батч операций узла: валидация, проверка
// причинных пропусков, обнаружение конфликтов, слияние и персистентность.
// Батч сверх лимита отклоняется целиком до любого изменения состояния.
func (c *Coordinator) Synchronize(ctx context.Context, nodeID string, ops []*models.Operation) (*Result, error) {
	start := time.Now()

	if len(ops) > c.cfg.MaxBatchSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(ops), c.cfg.MaxBatchSize)
	}

	// Валидация всего батча до какого-либо слияния
	for i, op := range ops {
		if err := validation.ValidateOperation(op); err != nil {
			return nil, fmt.Errorf("%w: operation %d: %s", ErrValidation, i, err)
		}
		if op.Clock.NodeID != nodeID {
			return nil, fmt.Errorf("%w: operation %d: clock node %q does not match batch node %q",
				ErrValidation, i, op.Clock.NodeID, nodeID)
		}
	}

	session, err := c.store.GetNode(ctx, nodeID)
	if err != nil {
		if errors.Is(err, storage.ErrNodeNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownNode, nodeID)
		}
		return nil, fmt.Errorf("failed to load node session: %w", err)
	}

	applyable, err := c.resolveCausalGaps(ctx, nodeID, ops)
	if err != nil {
		return nil, err
	}

	conflicts, err := c.applyOperations(ctx, nodeID, applyable)
	if err != nil {
		return nil, err
	}

	// Часы сессии вбирают часы всех примененных операций
	clock := session.Clock
	for _, op := range applyable {
		clock = clock.MergeWith(op.Clock)
	}
	session.Clock = clock
	session.LastSyncAt = models.NowMicros()
	if err := c.saveNodeWithRetry(ctx, session); err != nil {
		return nil, err
	}

	latency := time.Since(start)
	c.metrics.Record(latency, len(applyable), len(conflicts))

	state, err := c.snapshotState(ctx, session)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Synchronization completed",
		"node_id", nodeID,
		"received", len(ops),
		"processed", len(applyable),
		"conflicts", len(conflicts),
		"latency_ms", latency.Milliseconds(),
		"level", state.Metrics.Level)

	return &Result{
		State:     state,
		Clock:     clock,
		Conflicts: conflicts,
		Processed: len(applyable),
	}, nil
}

// GetState возвращает снимок состояния узла без изменения состояния.
func (c *Coordinator) GetState(ctx context.Context, nodeID string) (*models.SyncState, error) {
	session, err := c.store.GetNode(ctx, nodeID)
	if err != nil {
		if errors.Is(err, storage.ErrNodeNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownNode, nodeID)
		}
		return nil, fmt.Errorf("failed to load node session: %w", err)
	}

	return c.snapshotState(ctx, session)
}

// ReplayRecord детерминированно восстанавливает запись из журнала
// операций. Используется для аудита и восстановления после сбоев.
func (c *Coordinator) ReplayRecord(ctx context.Context, resourceID string) (*models.Record, error) {
	return c.oplog.Replay(ctx, resourceID)
}

// resolveCausalGaps отделяет операции, готовые к применению, от
// операций с пропущенными причинными предшественниками. Последние
// буферизуются до прихода пропущенных операций; если буфер превышает
// лимит, клиенту возвращается сигнал resync.
func (c *Coordinator) resolveCausalGaps(ctx context.Context, nodeID string, ops []*models.Operation) ([]*models.Operation, error) {
	last, err := c.store.LastCounter(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to read last counter: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Объединяем буфер и входящий батч, устраняя дубликаты по счетчику
	byCounter := make(map[uint64]*models.Operation, len(ops))
	for _, op := range c.pending[nodeID] {
		byCounter[op.Clock.Counter] = op
	}
	for _, op := range ops {
		byCounter[op.Clock.Counter] = op
	}

	counters := make([]uint64, 0, len(byCounter))
	for counter := range byCounter {
		counters = append(counters, counter)
	}
	sort.Slice(counters, func(i, j int) bool { return counters[i] < counters[j] })

	var applyable, deferred []*models.Operation
	for _, counter := range counters {
		op := byCounter[counter]
		switch {
		case counter <= last:
			// Дубликат уже применявшейся операции: журнал идемпотентен
			applyable = append(applyable, op)
		case counter == last+1:
			applyable = append(applyable, op)
			last = counter
		default:
			deferred = append(deferred, op)
		}
	}

	if len(deferred) > c.cfg.MaxGapBuffer {
		delete(c.pending, nodeID)
		c.logger.Warn("Causality gap exceeded buffer bound",
			"node_id", nodeID, "buffered", len(deferred))
		return nil, fmt.Errorf("%w: node %s", ErrResyncRequired, nodeID)
	}

	if len(deferred) > 0 {
		c.pending[nodeID] = deferred
		c.logger.Warn("Operations buffered pending missing predecessors",
			"node_id", nodeID, "buffered", len(deferred), "last_counter", last)
	} else {
		delete(c.pending, nodeID)
	}

	return applyable, nil
}

// applyOperations применяет операции к состоянию сервера поресурсно.
// Обработка одного ресурса идет под его замком: чтение текущей записи,
// слияние и запись выполняются атомарно относительно других вызовов.
func (c *Coordinator) applyOperations(ctx context.Context, nodeID string, ops []*models.Operation) ([]models.ConflictRecord, error) {
	byResource := make(map[string][]*models.Operation)
	for _, op := range ops {
		byResource[op.ResourceID] = append(byResource[op.ResourceID], op)
	}

	resourceIDs := make([]string, 0, len(byResource))
	for id := range byResource {
		resourceIDs = append(resourceIDs, id)
	}
	sort.Strings(resourceIDs)

	var conflicts []models.ConflictRecord
	for _, resourceID := range resourceIDs {
		resourceConflicts, err := c.applyResourceOps(ctx, nodeID, resourceID, byResource[resourceID])
		if err != nil {
			return nil, err
		}
		conflicts = append(conflicts, resourceConflicts...)
	}

	return conflicts, nil
}

func (c *Coordinator) applyResourceOps(ctx context.Context, nodeID, resourceID string, ops []*models.Operation) ([]models.ConflictRecord, error) {
	c.locks.Lock(resourceID)
	defer c.locks.Unlock(resourceID)

	rec, err := c.store.GetRecord(ctx, resourceID)
	if err != nil && !errors.Is(err, storage.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load record %s: %w", resourceID, err)
	}

	var conflicts []models.ConflictRecord
	for _, op := range crdt.SortCausally(ops) {
		if rec != nil {
			if conflict, ok := c.detectStateConflict(rec, op); ok {
				conflicts = append(conflicts, conflict)
				if err := c.store.SaveConflict(ctx, nodeID, conflict); err != nil {
					return nil, fmt.Errorf("failed to save conflict: %w", err)
				}
			}
		}

		if err := c.oplog.Append(ctx, op); err != nil {
			return nil, err
		}
		rec = crdt.Apply(rec, op)
	}

	if rec != nil {
		if err := c.saveRecordWithRetry(ctx, rec); err != nil {
			return nil, err
		}
	}

	return conflicts, nil
}

// detectStateConflict сверяет входящую операцию с последней записью
// сервера: конкурентные часы с пересечением полей означают конфликт.
func (c *Coordinator) detectStateConflict(rec *models.Record, op *models.Operation) (models.ConflictRecord, bool) {
	current := &models.Operation{
		Type:         models.OpUpdate,
		ResourceType: rec.ResourceType,
		ResourceID:   rec.ResourceID,
		Fields:       rec.Fields,
		Clock:        rec.Clock,
		Timestamp:    rec.UpdatedAt,
	}
	if rec.Deleted {
		current.Type = models.OpDelete
	}

	if !crdt.Detect(current, op) {
		return models.ConflictRecord{}, false
	}

	resolution := "local_wins"
	if op.Type == models.OpDelete || rec.Deleted {
		resolution = "tombstone_wins"
	} else if op.Clock.NewerThan(rec.Clock) {
		resolution = "remote_wins"
	}

	return crdt.NewConflictRecord(current, op, resolution), true
}

// mergeAndSaveRecord сливает запись клиента с записью сервера под
// замком ресурса. Используется при импорте начального состояния.
func (c *Coordinator) mergeAndSaveRecord(ctx context.Context, rec *models.Record) error {
	c.locks.Lock(rec.ResourceID)
	defer c.locks.Unlock(rec.ResourceID)

	current, err := c.store.GetRecord(ctx, rec.ResourceID)
	if err != nil && !errors.Is(err, storage.ErrRecordNotFound) {
		return fmt.Errorf("failed to load record %s: %w", rec.ResourceID, err)
	}

	merged := crdt.Merge(current, rec, c.cfg.Strategy)
	return c.saveRecordWithRetry(ctx, merged)
}

// snapshotState собирает снимок состояния узла: все слитые записи,
// журнал конфликтов и метрики.
func (c *Coordinator) snapshotState(ctx context.Context, session *storage.NodeSession) (*models.SyncState, error) {
	records, err := c.store.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	conflictLog, err := c.store.GetConflicts(ctx, session.NodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conflict log: %w", err)
	}

	recordMap := make(map[string]*models.Record, len(records))
	for _, rec := range records {
		recordMap[rec.ResourceID] = rec
	}

	return &models.SyncState{
		NodeID:      session.NodeID,
		Records:     recordMap,
		Clock:       session.Clock,
		ConflictLog: conflictLog,
		Metrics:     c.metrics.Snapshot(c.cfg.MaxBatchSize),
		LastSyncAt:  session.LastSyncAt,
	}, nil
}

// saveRecordWithRetry персистит запись с ограниченным числом повторов:
// временный сбой хранилища не должен ронять весь батч, а слияние
// идемпотентно, поэтому повтор безопасен.
func (c *Coordinator) saveRecordWithRetry(ctx context.Context, rec *models.Record) error {
	backoff := retry.WithMaxRetries(c.cfg.StoreRetries, retry.NewExponential(c.cfg.RetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := c.store.SaveRecord(ctx, rec); err != nil {
			c.logger.Warn("Transient store error, retrying", "resource_id", rec.ResourceID, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save record %s: %w", rec.ResourceID, err)
	}
	return nil
}

func (c *Coordinator) saveNodeWithRetry(ctx context.Context, session *storage.NodeSession) error {
	backoff := retry.WithMaxRetries(c.cfg.StoreRetries, retry.NewExponential(c.cfg.RetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := c.store.SaveNode(ctx, session); err != nil {
			c.logger.Warn("Transient store error, retrying", "node_id", session.NodeID, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save node session %s: %w", session.NodeID, err)
	}
	return nil
}

func sortedResourceIDs(records map[string]*models.Record) []string {
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
