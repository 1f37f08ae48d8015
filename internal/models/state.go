package models

// PerformanceLevel уровень производительности синхронизации, выводится
// из скользящих перцентилей задержки. Используется для дросселирования
// размера клиентских батчей под нагрузкой.
type PerformanceLevel string

const (
	PerformanceOptimal  PerformanceLevel = "OPTIMAL"
	PerformanceDegraded PerformanceLevel = "DEGRADED"
	PerformanceCritical PerformanceLevel = "CRITICAL"
)

// ConflictRecord фиксирует один обнаруженный конфликт: обе операции,
// момент обнаружения и принятое разрешение. Конфликты - не ошибки,
// они всегда журналируются и возвращаются вызывающей стороне.
type ConflictRecord struct {
	Local      *Operation `json:"local"`
	Remote     *Operation `json:"remote"`
	ResourceID string     `json:"resource_id"`
	Resolution string     `json:"resolution"`
	DetectedAt uint64     `json:"detected_at"`
}

// SyncMetrics снимок метрик синхронизации узла.
type SyncMetrics struct {
	Level            PerformanceLevel `json:"performance_level"`
	SyncCount        uint64           `json:"sync_count"`
	OperationCount   uint64           `json:"operation_count"`
	ConflictCount    uint64           `json:"conflict_count"`
	LastLatencyMicro uint64           `json:"last_latency_micros"`
	P95LatencyMicro  uint64           `json:"p95_latency_micros"`
	MaxBatchSize     int              `json:"max_batch_size"`
}

// SyncState состояние синхронизации одного узла на сервере:
// слитые записи, векторные часы узла, журнал конфликтов и метрики.
// Принадлежит исключительно породившему его узлу; слияние никогда
// не изменяет входное состояние - порождает новое.
type SyncState struct {
	Records     map[string]*Record `json:"records"`
	NodeID      string             `json:"node_id"`
	Clock       VectorClock        `json:"vector_clock"`
	ConflictLog []ConflictRecord   `json:"conflict_log,omitempty"`
	Metrics     SyncMetrics        `json:"metrics"`
	LastSyncAt  uint64             `json:"last_sync_at"`
}

// NewSyncState создает начальное состояние узла.
func NewSyncState(nodeID string) *SyncState {
	return &SyncState{
		NodeID:  nodeID,
		Records: make(map[string]*Record),
		Clock:   NewVectorClock(nodeID),
	}
}

// Clone создает глубокую копию состояния.
func (s *SyncState) Clone() *SyncState {
	records := make(map[string]*Record, len(s.Records))
	for id, rec := range s.Records {
		records[id] = rec.Clone()
	}

	conflicts := make([]ConflictRecord, len(s.ConflictLog))
	copy(conflicts, s.ConflictLog)

	return &SyncState{
		NodeID:      s.NodeID,
		Records:     records,
		Clock:       s.Clock.Clone(),
		ConflictLog: conflicts,
		Metrics:     s.Metrics,
		LastSyncAt:  s.LastSyncAt,
	}
}
