// Package api содержит wire-типы протокола синхронизации.
// Пакет не зависит от internal и может импортироваться клиентами.
package api

// VectorClock векторные часы одного события на wire-уровне.
type VectorClock struct {
	Deps      map[string]uint64 `json:"causal_dependencies"`
	NodeID    string            `json:"node_id"`
	Merge     string            `json:"merge_operation"`
	Counter   uint64            `json:"counter"`
	Timestamp uint64            `json:"timestamp"`
}

// FieldValue значение одного поля вместе с меткой времени и узлом записи.
type FieldValue struct {
	Value     any    `json:"value"`
	NodeID    string `json:"node_id"`
	Timestamp uint64 `json:"timestamp"`
}

// Operation одна операция клиента над ресурсом.
type Operation struct {
	Fields       map[string]FieldValue `json:"fields,omitempty"`
	Type         string                `json:"type"`
	ResourceType string                `json:"resource_type"`
	ResourceID   string                `json:"resource_id"`
	Clock        VectorClock           `json:"vector_clock"`
	Timestamp    uint64                `json:"timestamp"`
}

// Record текущее слитое состояние одного ресурса.
type Record struct {
	Fields       map[string]FieldValue `json:"fields"`
	ResourceType string                `json:"resource_type"`
	ResourceID   string                `json:"resource_id"`
	Clock        VectorClock           `json:"vector_clock"`
	CreatedAt    uint64                `json:"created_at"`
	UpdatedAt    uint64                `json:"updated_at"`
	DeletedAt    uint64                `json:"deleted_at,omitempty"`
	Deleted      bool                  `json:"deleted"`
}

// ConflictRecord один обнаруженный и разрешенный конфликт.
type ConflictRecord struct {
	Local      *Operation `json:"local"`
	Remote     *Operation `json:"remote"`
	ResourceID string     `json:"resource_id"`
	Resolution string     `json:"resolution"`
	DetectedAt uint64     `json:"detected_at"`
}

// SyncMetrics снимок метрик синхронизации узла.
type SyncMetrics struct {
	Level            string `json:"performance_level"`
	SyncCount        uint64 `json:"sync_count"`
	OperationCount   uint64 `json:"operation_count"`
	ConflictCount    uint64 `json:"conflict_count"`
	LastLatencyMicro uint64 `json:"last_latency_micros"`
	P95LatencyMicro  uint64 `json:"p95_latency_micros"`
	MaxBatchSize     int    `json:"max_batch_size"`
}

// SyncState состояние синхронизации узла: слитые записи, часы,
// журнал конфликтов и метрики.
type SyncState struct {
	Records     map[string]*Record `json:"records"`
	NodeID      string             `json:"node_id"`
	Clock       VectorClock        `json:"vector_clock"`
	ConflictLog []ConflictRecord   `json:"conflict_log,omitempty"`
	Metrics     SyncMetrics        `json:"metrics"`
	LastSyncAt  uint64             `json:"last_sync_at"`
}

// InitializeRequest запрос регистрации клиентской сессии.
// POST /api/v1/sync/initialize
type InitializeRequest struct {
	InitialState *SyncState `json:"initial_state,omitempty"`
	NodeID       string     `json:"node_id"`
	DeviceType   string     `json:"device_type"`
	UserID       string     `json:"user_id"`
}

// InitializeResponse ответ на регистрацию сессии: подтвержденный
// идентификатор узла и его первые векторные часы.
type InitializeResponse struct {
	NodeID string      `json:"node_id"`
	Clock  VectorClock `json:"vector_clock"`
}

// SynchronizeRequest батч операций клиента.
// POST /api/v1/sync/synchronize
//
// Операции передаются последовательностью, а не картой по ресурсу:
// один батч может содержать несколько причинно упорядоченных операций
// над одним ресурсом.
type SynchronizeRequest struct {
	NodeID     string      `json:"node_id"`
	Operations []Operation `json:"operations"`
	Clock      VectorClock `json:"vector_clock"`
}

// SynchronizeResponse результат слияния батча.
type SynchronizeResponse struct {
	MergedState *SyncState       `json:"merged_state"`
	Conflicts   []ConflictRecord `json:"conflicts"`
	Clock       VectorClock      `json:"vector_clock"`
	Processed   int              `json:"processed"`
}

// ErrorResponse тело ответа при ошибке.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Коды ошибок, возвращаемые сервером синхронизации.
const (
	ErrCodeBatchTooLarge  = "batch_too_large"
	ErrCodeValidation     = "validation_failed"
	ErrCodeResyncRequired = "resync_required"
	ErrCodeUnknownNode    = "unknown_node"
)
