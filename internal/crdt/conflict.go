package crdt

import (
	"github.com/iudanet/shiftsync/internal/models"
)

// Detect определяет, конфликтуют ли две операции: один ресурс,
// конкурентные векторные часы и пересекающиеся множества полей
// (операции над записью целиком пересекаются с любой другой).
// Конфликт - не ошибка: он журналируется и разрешается стратегией
// слияния детерминированно.
func Detect(a, b *models.Operation) bool {
	if a.ResourceID != b.ResourceID {
		return false
	}
	if a.Clock.Compare(b.Clock) != models.OrderConcurrent {
		return false
	}
	return a.FieldsIntersect(b)
}

// NewConflictRecord формирует запись журнала конфликтов для пары
// операций и принятого разрешения.
func NewConflictRecord(local, remote *models.Operation, resolution string) models.ConflictRecord {
	return models.ConflictRecord{
		ResourceID: local.ResourceID,
		Local:      local.Clone(),
		Remote:     remote.Clone(),
		Resolution: resolution,
		DetectedAt: models.NowMicros(),
	}
}
