package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/shiftsync/internal/client/storage"
	"github.com/iudanet/shiftsync/internal/models"
)

var (
	// Metadata bucket keys
	keyClock      = []byte("clock")
	keyLastSyncAt = []byte("last_sync_at")
)

// SaveClock сохраняет векторные часы узла.
func (s *Storage) SaveClock(ctx context.Context, clock models.VectorClock) error {
	data, err := json.Marshal(clock)
	if err != nil {
		return fmt.Errorf("failed to marshal clock: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMetadata).Put(keyClock, data)
	})
}

// GetClock возвращает векторные часы узла.
// Возвращает ErrNotInitialized, если клиент еще не инициализирован.
func (s *Storage) GetClock(ctx context.Context) (models.VectorClock, error) {
	var clock models.VectorClock

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMetadata).Get(keyClock)
		if data == nil {
			return storage.ErrNotInitialized
		}
		return json.Unmarshal(data, &clock)
	})
	if err != nil {
		return models.VectorClock{}, err
	}

	return clock, nil
}

// SaveLastSyncAt сохраняет время последней успешной синхронизации.
func (s *Storage) SaveLastSyncAt(ctx context.Context, micros uint64) error {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, micros)

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMetadata).Put(keyLastSyncAt, data)
	})
}

// GetLastSyncAt возвращает время последней успешной синхронизации,
// 0 если синхронизация еще не выполнялась.
func (s *Storage) GetLastSyncAt(ctx context.Context) (uint64, error) {
	var micros uint64

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMetadata).Get(keyLastSyncAt)
		if data == nil {
			return nil
		}
		micros = binary.BigEndian.Uint64(data)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return micros, nil
}
