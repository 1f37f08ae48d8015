package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/shiftsync/internal/client/storage"
	"github.com/iudanet/shiftsync/internal/models"
)

// SaveRecord сохраняет или заменяет слитую запись целиком.
func (s *Storage) SaveRecord(ctx context.Context, rec *models.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRecords).Put([]byte(rec.ResourceID), data)
	})
}

// GetRecord возвращает запись по идентификатору ресурса.
func (s *Storage) GetRecord(ctx context.Context, resourceID string) (*models.Record, error) {
	var rec *models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketRecords).Get([]byte(resourceID))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		rec = &models.Record{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("failed to unmarshal record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// ListRecords возвращает все записи, включая tombstone.
func (s *Storage) ListRecords(ctx context.Context) ([]*models.Record, error) {
	return s.listRecords(false)
}

// ListActiveRecords возвращает только не удаленные записи.
func (s *Storage) ListActiveRecords(ctx context.Context) ([]*models.Record, error) {
	return s.listRecords(true)
}

func (s *Storage) listRecords(activeOnly bool) ([]*models.Record, error) {
	var records []*models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRecords).ForEach(func(_, data []byte) error {
			rec := &models.Record{}
			if err := json.Unmarshal(data, rec); err != nil {
				return fmt.Errorf("failed to unmarshal record: %w", err)
			}
			if activeOnly && rec.Deleted {
				return nil
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// ClearRecords полностью очищает кэш записей. Используется при
// полном resync по требованию сервера.
func (s *Storage) ClearRecords(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketRecords); err != nil {
			return fmt.Errorf("failed to delete records bucket: %w", err)
		}
		if _, err := tx.CreateBucket(bucketRecords); err != nil {
			return fmt.Errorf("failed to recreate records bucket: %w", err)
		}
		return nil
	})
}
