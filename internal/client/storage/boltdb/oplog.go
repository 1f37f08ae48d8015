package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/shiftsync/internal/models"
)

// counterKey кодирует счетчик операции в big-endian ключ: порядок
// ключей в bucket совпадает с порядком счетчиков.
func counterKey(counter uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, counter)
	return key
}

// AppendPending добавляет операцию в журнал ожидающих доставки.
// Повторное добавление операции с тем же счетчиком перезаписывает ее.
func (s *Storage) AppendPending(ctx context.Context, op *models.Operation) error {
	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to marshal operation: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOplog).Put(counterKey(op.Clock.Counter), data)
	})
}

// PendingOperations возвращает ожидающие операции в порядке счетчиков.
func (s *Storage) PendingOperations(ctx context.Context) ([]*models.Operation, error) {
	var ops []*models.Operation

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOplog).ForEach(func(_, data []byte) error {
			op := &models.Operation{}
			if err := json.Unmarshal(data, op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, op)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return ops, nil
}

// PendingCount возвращает число операций, ожидающих доставки.
func (s *Storage) PendingCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket(bucketOplog).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkDelivered удаляет подтвержденные сервером операции со счетчиком
// не больше upTo.
func (s *Storage) MarkDelivered(ctx context.Context, upTo uint64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketOplog).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if binary.BigEndian.Uint64(k) > upTo {
				break
			}
			if err := c.Delete(); err != nil {
				return fmt.Errorf("failed to delete delivered operation: %w", err)
			}
		}
		return nil
	})
}

// ClearPending удаляет все ожидающие операции. Используется при
// полном resync: сервер восстановит состояние из своего журнала.
func (s *Storage) ClearPending(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketOplog); err != nil {
			return fmt.Errorf("failed to delete oplog bucket: %w", err)
		}
		if _, err := tx.CreateBucket(bucketOplog); err != nil {
			return fmt.Errorf("failed to recreate oplog bucket: %w", err)
		}
		return nil
	})
}
