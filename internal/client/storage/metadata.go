package storage

import (
	"context"

	"github.com/iudanet/shiftsync/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client sync metadata
type MetadataStorage interface {
	// SaveClock persists the node's vector clock
	SaveClock(ctx context.Context, clock models.VectorClock) error

	// GetClock retrieves the node's vector clock
	// Returns ErrNotInitialized if the client has never been initialized
	GetClock(ctx context.Context) (models.VectorClock, error)

	// SaveLastSyncAt saves the timestamp of the last successful sync
	SaveLastSyncAt(ctx context.Context, micros uint64) error

	// GetLastSyncAt retrieves the timestamp of the last successful sync
	// Returns 0 if no sync has been performed yet
	GetLastSyncAt(ctx context.Context) (uint64, error)
}
