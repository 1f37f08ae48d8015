package models

// Статусы задач, используемые клиентом. Движок слияния к ним не привязан:
// поля записи - произвольные.
const (
	TaskStatusPending    = "PENDING"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusCompleted  = "COMPLETED"
)

// Record представляет текущее слитое состояние одного ресурса
// (задачи, записи передачи смены). Каждое поле сливается независимо.
// Установленный флаг Deleted терминален: никакое последующее
// обновление полей не воскрешает запись.
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

// Clone создает глубокую копию записи. Функции слияния никогда не
// изменяют входные записи - всегда возвращают новую.
func (r *Record) Clone() *Record {
	fields := make(map[string]FieldValue, len(r.Fields))
	for name, fv := range r.Fields {
		fields[name] = fv
	}

	out := *r
	out.Fields = fields
	out.Clock = r.Clock.Clone()
	return &out
}

// Field возвращает значение поля и признак его наличия.
func (r *Record) Field(name string) (FieldValue, bool) {
	fv, ok := r.Fields[name]
	return fv, ok
}
