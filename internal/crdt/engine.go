package crdt

import (
	"reflect"

	"github.com/iudanet/shiftsync/internal/models"
)

// FieldResolver разрешает конкурентные значения одного поля.
// Получает обе версии и имя поля, возвращает победившее значение.
type FieldResolver func(local, remote models.FieldValue, field string) models.FieldValue

// Strategy стратегия слияния записей. Закрытое размеченное объединение:
// новые стратегии добавляются только в этом пакете, switch по типу
// покрывает все варианты.
type Strategy interface {
	isStrategy()
}

// LastWriteWins слияние записями целиком: выигрывает причинно более
// поздняя запись, конкурентные разрешаются меткой времени.
type LastWriteWins struct{}

// Custom пополевое слияние с опциональным резолвером.
// Nil Resolver означает пополевой LWW.
type Custom struct {
	Resolver FieldResolver
}

func (LastWriteWins) isStrategy() {}
func (Custom) isStrategy()        {}

// Merge сливает две версии записи согласно стратегии. Чистая функция:
// входные записи не изменяются, результат - всегда новая запись,
// поэтому повторные и переупорядоченные слияния безопасны.
//
// Надгробие доминирует при любой стратегии: если хотя бы одна сторона
// удалена, результат удален.
func Merge(local, remote *models.Record, strategy Strategy) *models.Record {
	if local == nil && remote == nil {
		return nil
	}
	if local == nil {
		return remote.Clone()
	}
	if remote == nil {
		return local.Clone()
	}

	if local.Deleted {
		return MergeWithTombstone(local, remote)
	}
	if remote.Deleted {
		return MergeWithTombstone(remote, local)
	}

	switch s := strategy.(type) {
	case Custom:
		return MergeFields(local, remote, s.Resolver)
	case LastWriteWins:
		return mergeWholeRecord(local, remote)
	default:
		return mergeWholeRecord(local, remote)
	}
}

// mergeWholeRecord выбирает победителя на уровне записи: причинно
// более поздняя версия, для конкурентных - большая метка времени
// (при равенстве - лексикографически больший NodeID).
func mergeWholeRecord(local, remote *models.Record) *models.Record {
	winner := local

	switch local.Clock.Compare(remote.Clock) {
	case models.OrderBefore:
		winner = remote
	case models.OrderAfter:
		winner = local
	case models.OrderEqual:
		winner = local
	case models.OrderConcurrent:
		if remote.Clock.NewerThan(local.Clock) {
			winner = remote
		}
	}

	out := winner.Clone()
	out.Clock = local.Clock.MergeWith(remote.Clock)
	out.CreatedAt = minUint64(local.CreatedAt, remote.CreatedAt)
	out.UpdatedAt = maxUint64(local.UpdatedAt, remote.UpdatedAt)
	return out
}

// MergeFields сливает записи пополевно. Поле, присутствующее с одной
// стороны, сохраняется; равные значения сохраняются; конкурентные
// значения разрешаются резолвером, а без него - более поздней меткой
// времени. Часы результата - слияние часов обеих сторон.
func MergeFields(local, remote *models.Record, resolver FieldResolver) *models.Record {
	out := local.Clone()
	out.Clock = local.Clock.MergeWith(remote.Clock)
	out.CreatedAt = minUint64(local.CreatedAt, remote.CreatedAt)
	out.UpdatedAt = maxUint64(local.UpdatedAt, remote.UpdatedAt)

	for name, remoteVal := range remote.Fields {
		localVal, ok := out.Fields[name]
		if !ok {
			out.Fields[name] = remoteVal
			continue
		}
		if reflect.DeepEqual(localVal.Value, remoteVal.Value) {
			// Значения совпадают - оставляем более позднюю метку,
			// чтобы слияние оставалось идемпотентным.
			if remoteVal.NewerThan(localVal) {
				out.Fields[name] = remoteVal
			}
			continue
		}

		if resolver != nil {
			out.Fields[name] = resolver(localVal, remoteVal, name)
			continue
		}
		if remoteVal.NewerThan(localVal) {
			out.Fields[name] = remoteVal
		}
	}

	return out
}

// Apply применяет одну операцию к аккумулятору записи и возвращает
// новую запись. Используется воспроизведением журнала и координатором.
func Apply(rec *models.Record, op *models.Operation) *models.Record {
	switch op.Type {
	case models.OpCreate:
		created := recordFromOperation(op)
		if rec == nil {
			return created
		}
		// Конкурентное создание одного ресурса: сливаем пополевно.
		return Merge(rec, created, Custom{})
	case models.OpUpdate:
		if rec == nil {
			// Обновление до создания: заводим запись из полей операции,
			// недостающие поля придут с операцией create.
			return recordFromOperation(op)
		}
		if rec.Deleted {
			return MergeWithTombstone(rec, recordFromOperation(op))
		}
		return MergeFields(rec, recordFromOperation(op), nil)
	case models.OpDelete:
		if rec == nil {
			rec = recordFromOperation(op)
		}
		return Tombstone(rec, op.Clock)
	default:
		if rec == nil {
			return nil
		}
		return rec.Clone()
	}
}

func recordFromOperation(op *models.Operation) *models.Record {
	fields := make(map[string]models.FieldValue, len(op.Fields))
	for name, fv := range op.Fields {
		fields[name] = fv
	}

	return &models.Record{
		ResourceType: op.ResourceType,
		ResourceID:   op.ResourceID,
		Fields:       fields,
		Clock:        op.Clock.Clone(),
		CreatedAt:    op.Timestamp,
		UpdatedAt:    op.Timestamp,
	}
}

func minUint64(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	if a < b {
		return a
	}
	return b
}

func maxUint64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
