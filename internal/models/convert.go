package models

import "github.com/iudanet/shiftsync/pkg/api"

// Конвертация между внутренними моделями и wire-типами pkg/api.
// pkg/api не может импортировать internal, поэтому преобразование
// живет на стороне моделей.

// ClockToAPI конвертирует векторные часы в wire-формат.
func ClockToAPI(vc VectorClock) api.VectorClock {
	deps := make(map[string]uint64, len(vc.Deps))
	for node, counter := range vc.Deps {
		deps[node] = counter
	}
	return api.VectorClock{
		NodeID:    vc.NodeID,
		Counter:   vc.Counter,
		Timestamp: vc.Timestamp,
		Deps:      deps,
		Merge:     string(vc.Merge),
	}
}

// ClockFromAPI конвертирует wire-часы во внутренние.
func ClockFromAPI(vc api.VectorClock) VectorClock {
	deps := make(map[string]uint64, len(vc.Deps))
	for node, counter := range vc.Deps {
		deps[node] = counter
	}
	merge := MergeStrategy(vc.Merge)
	if merge == "" {
		merge = MergeLastWriteWins
	}
	return VectorClock{
		NodeID:    vc.NodeID,
		Counter:   vc.Counter,
		Timestamp: vc.Timestamp,
		Deps:      deps,
		Merge:     merge,
	}
}

func fieldsToAPI(fields map[string]FieldValue) map[string]api.FieldValue {
	out := make(map[string]api.FieldValue, len(fields))
	for name, fv := range fields {
		out[name] = api.FieldValue{Value: fv.Value, Timestamp: fv.Timestamp, NodeID: fv.NodeID}
	}
	return out
}

func fieldsFromAPI(fields map[string]api.FieldValue) map[string]FieldValue {
	out := make(map[string]FieldValue, len(fields))
	for name, fv := range fields {
		out[name] = FieldValue{Value: fv.Value, Timestamp: fv.Timestamp, NodeID: fv.NodeID}
	}
	return out
}

// OperationToAPI конвертирует операцию в wire-формат.
func OperationToAPI(op *Operation) api.Operation {
	return api.Operation{
		Type:         string(op.Type),
		ResourceType: op.ResourceType,
		ResourceID:   op.ResourceID,
		Fields:       fieldsToAPI(op.Fields),
		Clock:        ClockToAPI(op.Clock),
		Timestamp:    op.Timestamp,
	}
}

// OperationFromAPI конвертирует wire-операцию во внутреннюю.
func OperationFromAPI(op api.Operation) *Operation {
	return &Operation{
		Type:         OpType(op.Type),
		ResourceType: op.ResourceType,
		ResourceID:   op.ResourceID,
		Fields:       fieldsFromAPI(op.Fields),
		Clock:        ClockFromAPI(op.Clock),
		Timestamp:    op.Timestamp,
	}
}

// RecordToAPI конвертирует запись в wire-формат.
func RecordToAPI(rec *Record) *api.Record {
	if rec == nil {
		return nil
	}
	return &api.Record{
		ResourceType: rec.ResourceType,
		ResourceID:   rec.ResourceID,
		Fields:       fieldsToAPI(rec.Fields),
		Clock:        ClockToAPI(rec.Clock),
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
		DeletedAt:    rec.DeletedAt,
		Deleted:      rec.Deleted,
	}
}

// RecordFromAPI конвертирует wire-запись во внутреннюю.
func RecordFromAPI(rec *api.Record) *Record {
	if rec == nil {
		return nil
	}
	return &Record{
		ResourceType: rec.ResourceType,
		ResourceID:   rec.ResourceID,
		Fields:       fieldsFromAPI(rec.Fields),
		Clock:        ClockFromAPI(rec.Clock),
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
		DeletedAt:    rec.DeletedAt,
		Deleted:      rec.Deleted,
	}
}

// ConflictToAPI конвертирует запись журнала конфликтов в wire-формат.
func ConflictToAPI(c ConflictRecord) api.ConflictRecord {
	out := api.ConflictRecord{
		ResourceID: c.ResourceID,
		Resolution: c.Resolution,
		DetectedAt: c.DetectedAt,
	}
	if c.Local != nil {
		local := OperationToAPI(c.Local)
		out.Local = &local
	}
	if c.Remote != nil {
		remote := OperationToAPI(c.Remote)
		out.Remote = &remote
	}
	return out
}

// StateToAPI конвертирует состояние синхронизации в wire-формат.
func StateToAPI(s *SyncState) *api.SyncState {
	if s == nil {
		return nil
	}

	records := make(map[string]*api.Record, len(s.Records))
	for id, rec := range s.Records {
		records[id] = RecordToAPI(rec)
	}

	conflicts := make([]api.ConflictRecord, 0, len(s.ConflictLog))
	for _, c := range s.ConflictLog {
		conflicts = append(conflicts, ConflictToAPI(c))
	}

	return &api.SyncState{
		NodeID:      s.NodeID,
		Records:     records,
		Clock:       ClockToAPI(s.Clock),
		ConflictLog: conflicts,
		LastSyncAt:  s.LastSyncAt,
		Metrics: api.SyncMetrics{
			Level:            string(s.Metrics.Level),
			SyncCount:        s.Metrics.SyncCount,
			OperationCount:   s.Metrics.OperationCount,
			ConflictCount:    s.Metrics.ConflictCount,
			LastLatencyMicro: s.Metrics.LastLatencyMicro,
			P95LatencyMicro:  s.Metrics.P95LatencyMicro,
			MaxBatchSize:     s.Metrics.MaxBatchSize,
		},
	}
}

// StateFromAPI конвертирует wire-состояние во внутреннее.
// Журнал конфликтов и метрики принадлежат серверу и не принимаются
// от клиента.
func StateFromAPI(s *api.SyncState) *SyncState {
	if s == nil {
		return nil
	}

	records := make(map[string]*Record, len(s.Records))
	for id, rec := range s.Records {
		records[id] = RecordFromAPI(rec)
	}

	return &SyncState{
		NodeID:     s.NodeID,
		Records:    records,
		Clock:      ClockFromAPI(s.Clock),
		LastSyncAt: s.LastSyncAt,
	}
}
