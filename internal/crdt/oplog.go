package crdt

import (
	"context"
	"fmt"
	"sort"

	"github.com/iudanet/shiftsync/internal/models"
)

//go:generate moq -out logstore_mock.go . LogStore

// LogStore определяет узкий интерфейс долговременного хранилища журнала
// операций. Записи ключуются (resourceID, nodeID, counter); повторное
// добавление той же операции - no-op, что делает доливку журнала
// идемпотентной при повторах батча.
type LogStore interface {
	// AppendOperation добавляет операцию в журнал ресурса.
	AppendOperation(ctx context.Context, op *models.Operation) error

	// GetOperations возвращает все операции ресурса в порядке хранения
	// (физический порядок прибытия, не причинный).
	GetOperations(ctx context.Context, resourceID string) ([]*models.Operation, error)
}

// OperationLog представляет append-only журнал операций с
// детерминированным воспроизведением. Порядок воспроизведения -
// причинный, физический порядок прибытия значения не имеет.
type OperationLog struct {
	store LogStore
}

// NewOperationLog создает журнал поверх хранилища.
func NewOperationLog(store LogStore) *OperationLog {
	return &OperationLog{store: store}
}

// Append добавляет операцию в журнал. Операция неизменяема после
// добавления: журнал хранит копию.
func (l *OperationLog) Append(ctx context.Context, op *models.Operation) error {
	if op.ResourceID == "" {
		return fmt.Errorf("append operation: empty resource id")
	}
	if op.Clock.NodeID == "" || op.Clock.Counter == 0 {
		return fmt.Errorf("append operation: invalid vector clock")
	}

	if err := l.store.AppendOperation(ctx, op.Clone()); err != nil {
		return fmt.Errorf("append operation: %w", err)
	}
	return nil
}

// Replay детерминированно воспроизводит журнал ресурса: операции
// упорядочиваются причинно и сворачиваются слева направо. create
// устанавливает начальную запись, update сливается пополевно,
// delete ставит надгробие. Два воспроизведения одного журнала
// (даже переупорядоченного при доставке) дают идентичный результат.
func (l *OperationLog) Replay(ctx context.Context, resourceID string) (*models.Record, error) {
	ops, err := l.store.GetOperations(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %w", resourceID, err)
	}
	if len(ops) == 0 {
		return nil, nil
	}

	var rec *models.Record
	for _, op := range SortCausally(ops) {
		rec = Apply(rec, op)
	}
	return rec, nil
}

// SortCausally возвращает операции в детерминированном причинном
// порядке: операция никогда не предшествует своим причинным
// зависимостям, конкурентные операции упорядочиваются по
// (timestamp, nodeID, counter). Вход не изменяется.
func SortCausally(ops []*models.Operation) []*models.Operation {
	remaining := make([]*models.Operation, len(ops))
	copy(remaining, ops)

	// Стабильная начальная сортировка сокращает поиск кандидатов
	// и закрепляет порядок конкурентных операций.
	sort.SliceStable(remaining, func(i, j int) bool {
		return arrivalLess(remaining[i], remaining[j])
	})

	out := make([]*models.Operation, 0, len(remaining))
	for len(remaining) > 0 {
		picked := -1
		for i, op := range remaining {
			ready := true
			for j, other := range remaining {
				if i == j {
					continue
				}
				if other.Clock.Compare(op.Clock) == models.OrderBefore {
					ready = false
					break
				}
			}
			if ready {
				picked = i
				break
			}
		}
		if picked == -1 {
			// Причинный цикл невозможен для корректных часов;
			// страховка от испорченного журнала.
			picked = 0
		}

		out = append(out, remaining[picked])
		remaining = append(remaining[:picked], remaining[picked+1:]...)
	}

	return out
}

func arrivalLess(a, b *models.Operation) bool {
	if a.Timestamp != b.Timestamp {
		return a.Timestamp < b.Timestamp
	}
	if a.Clock.NodeID != b.Clock.NodeID {
		return a.Clock.NodeID < b.Clock.NodeID
	}
	return a.Clock.Counter < b.Clock.Counter
}
