package coordinator

import (
	"sort"
	"sync"
	"time"

	"github.com/iudanet/shiftsync/internal/models"
)

// latencyWindowSize размер скользящего окна задержек синхронизации
const latencyWindowSize = 100

// metricsTracker накапливает метрики синхронизации: счетчики и
// скользящее окно задержек для вычисления перцентилей. Уровень
// производительности выводится из p95 и используется для
// дросселирования размера клиентских батчей.
type metricsTracker struct {
	window    []time.Duration
	degraded  time.Duration
	critical  time.Duration
	syncs     uint64
	ops       uint64
	conflicts uint64
	last      time.Duration
	pos       int
	filled    bool
	mu        sync.Mutex
}

func newMetricsTracker(degraded, critical time.Duration) *metricsTracker {
	return &metricsTracker{
		window:   make([]time.Duration, latencyWindowSize),
		degraded: degraded,
		critical: critical,
	}
}

// Record фиксирует завершенную синхронизацию.
func (m *metricsTracker) Record(latency time.Duration, ops, conflicts int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.syncs++
	m.ops += uint64(ops)
	m.conflicts += uint64(conflicts)
	m.last = latency

	m.window[m.pos] = latency
	m.pos = (m.pos + 1) % len(m.window)
	if m.pos == 0 {
		m.filled = true
	}
}

// p95Locked вычисляет 95-й перцентиль окна. Вызывается под mu.
func (m *metricsTracker) p95Locked() time.Duration {
	size := m.pos
	if m.filled {
		size = len(m.window)
	}
	if size == 0 {
		return 0
	}

	sorted := make([]time.Duration, size)
	copy(sorted, m.window[:size])
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := size * 95 / 100
	if idx >= size {
		idx = size - 1
	}
	return sorted[idx]
}

// Level возвращает текущий уровень производительности.
func (m *metricsTracker) Level() models.PerformanceLevel {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.levelLocked()
}

func (m *metricsTracker) levelLocked() models.PerformanceLevel {
	p95 := m.p95Locked()
	switch {
	case p95 >= m.critical:
		return models.PerformanceCritical
	case p95 >= m.degraded:
		return models.PerformanceDegraded
	default:
		return models.PerformanceOptimal
	}
}

// Snapshot возвращает снимок метрик с рекомендованным размером батча:
// полный в OPTIMAL, половина в DEGRADED, десятая часть в CRITICAL.
func (m *metricsTracker) Snapshot(maxBatch int) models.SyncMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	level := m.levelLocked()
	advertised := maxBatch
	switch level {
	case models.PerformanceDegraded:
		advertised = maxBatch / 2
	case models.PerformanceCritical:
		advertised = maxBatch / 10
	}
	if advertised < 1 {
		advertised = 1
	}

	return models.SyncMetrics{
		Level:            level,
		SyncCount:        m.syncs,
		OperationCount:   m.ops,
		ConflictCount:    m.conflicts,
		LastLatencyMicro: uint64(m.last.Microseconds()),
		P95LatencyMicro:  uint64(m.p95Locked().Microseconds()),
		MaxBatchSize:     advertised,
	}
}
