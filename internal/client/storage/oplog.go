package storage

import (
	"context"

	"github.com/iudanet/shiftsync/internal/models"
)

//go:generate moq -out oplog_mock.go . OplogStorage

// OplogStorage defines interface for the append-only log of local
// operations awaiting delivery to the server
type OplogStorage interface {
	// AppendPending appends an operation to the pending log
	AppendPending(ctx context.Context, op *models.Operation) error

	// PendingOperations returns pending operations ordered by counter
	PendingOperations(ctx context.Context) ([]*models.Operation, error)

	// PendingCount returns the number of operations awaiting delivery
	PendingCount(ctx context.Context) (int, error)

	// MarkDelivered removes operations with counter <= upTo from the
	// pending log once the server has acknowledged them
	MarkDelivered(ctx context.Context, upTo uint64) error

	// ClearPending removes all pending operations
	// Used for full re-sync
	ClearPending(ctx context.Context) error
}
