package models

import "sort"

// OpType тип операции над ресурсом.
type OpType string

const (
	OpCreate OpType = "create"
	OpUpdate OpType = "update"
	OpDelete OpType = "delete"
)

// ResourceType константы для типов ресурсов
const (
	ResourceTask     = "task"
	ResourceHandover = "handover"
)

// FieldValue значение одного поля записи вместе с меткой времени и узлом,
// установившими его. Используется для пополевого LWW-слияния.
type FieldValue struct {
	Value     any    `json:"value"`
	NodeID    string `json:"node_id"`
	Timestamp uint64 `json:"timestamp"`
}

// NewerThan возвращает true, если fv установлено позже other:
// больший Timestamp, при равенстве - лексикографически больший NodeID.
func (fv FieldValue) NewerThan(other FieldValue) bool {
	if fv.Timestamp != other.Timestamp {
		return fv.Timestamp > other.Timestamp
	}
	return fv.NodeID > other.NodeID
}

// Operation представляет одну операцию клиента над ресурсом.
// Неизменяема после добавления в журнал операций.
type Operation struct {
	Fields       map[string]FieldValue `json:"fields,omitempty"`
	Type         OpType                `json:"type"`
	ResourceType string                `json:"resource_type"`
	ResourceID   string                `json:"resource_id"`
	Clock        VectorClock           `json:"vector_clock"`
	Timestamp    uint64                `json:"timestamp"`
}

// FieldNames возвращает отсортированный список полей, затронутых операцией.
// Операции create и delete затрагивают запись целиком и возвращают nil;
// для проверки пересечения используйте TouchesWholeRecord.
func (op *Operation) FieldNames() []string {
	if op.TouchesWholeRecord() {
		return nil
	}

	names := make([]string, 0, len(op.Fields))
	for name := range op.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TouchesWholeRecord возвращает true для операций, затрагивающих запись
// целиком (create, delete): такие операции пересекаются с любой другой.
func (op *Operation) TouchesWholeRecord() bool {
	return op.Type == OpCreate || op.Type == OpDelete
}

// FieldsIntersect проверяет, пересекаются ли множества полей двух операций.
func (op *Operation) FieldsIntersect(other *Operation) bool {
	if op.TouchesWholeRecord() || other.TouchesWholeRecord() {
		return true
	}
	for name := range op.Fields {
		if _, ok := other.Fields[name]; ok {
			return true
		}
	}
	return false
}

// Clone создает глубокую копию операции.
func (op *Operation) Clone() *Operation {
	fields := make(map[string]FieldValue, len(op.Fields))
	for name, fv := range op.Fields {
		fields[name] = fv
	}

	return &Operation{
		Type:         op.Type,
		ResourceType: op.ResourceType,
		ResourceID:   op.ResourceID,
		Fields:       fields,
		Clock:        op.Clock.Clone(),
		Timestamp:    op.Timestamp,
	}
}
