package storage

import (
	"context"

	"github.com/iudanet/shiftsync/internal/models"
)

//go:generate moq -out records_mock.go . RecordStorage

// RecordStorage defines interface for the local merged record cache
type RecordStorage interface {
	// SaveRecord stores or replaces a merged record
	SaveRecord(ctx context.Context, rec *models.Record) error

	// GetRecord retrieves a record by resource ID
	// Returns ErrRecordNotFound if record doesn't exist
	GetRecord(ctx context.Context, resourceID string) (*models.Record, error)

	// ListRecords returns all records (including tombstones)
	// Used for sync operations
	ListRecords(ctx context.Context) ([]*models.Record, error)

	// ListActiveRecords returns all non-deleted records
	ListActiveRecords(ctx context.Context) ([]*models.Record, error)

	// ClearRecords removes all records from storage
	// Used for full re-sync
	ClearRecords(ctx context.Context) error
}
