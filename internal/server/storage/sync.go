package storage

import (
	"context"

	"github.com/iudanet/shiftsync/internal/models"
)

//go:generate moq -out sync_mock.go . SyncStorage

// NodeSession описывает зарегистрированную клиентскую сессию.
type NodeSession struct {
	NodeID     string
	DeviceType string
	UserID     string
	Clock      models.VectorClock
	LastSyncAt uint64
}

// SyncStorage defines the durable store interface for the sync engine.
// Layout: operation log entries keyed by (resourceID, nodeID, counter),
// merged records keyed by resourceID, node clocks keyed by nodeID.
type SyncStorage interface {
	// AppendOperation appends an operation to the per-resource log.
	// Re-appending the same (resourceID, nodeID, counter) key is a no-op,
	// which makes batch retries idempotent.
	AppendOperation(ctx context.Context, op *models.Operation) error

	// GetOperations returns all logged operations for a resource
	// in physical storage order (not causal order).
	GetOperations(ctx context.Context, resourceID string) ([]*models.Operation, error)

	// LastCounter returns the highest logged counter for a node,
	// 0 if the node has no operations yet. Used for causality gap detection.
	LastCounter(ctx context.Context, nodeID string) (uint64, error)

	// SaveRecord atomically replaces the merged record for a resource.
	SaveRecord(ctx context.Context, rec *models.Record) error

	// GetRecord retrieves the merged record for a resource.
	// Returns ErrRecordNotFound if no record exists.
	GetRecord(ctx context.Context, resourceID string) (*models.Record, error)

	// ListRecords returns all merged records, including tombstones.
	ListRecords(ctx context.Context) ([]*models.Record, error)

	// SaveNode creates or updates a node session.
	SaveNode(ctx context.Context, session *NodeSession) error

	// GetNode retrieves a node session.
	// Returns ErrNodeNotFound if the node was never initialized.
	GetNode(ctx context.Context, nodeID string) (*NodeSession, error)

	// SaveConflict appends a resolved conflict to the audit log.
	SaveConflict(ctx context.Context, nodeID string, rec models.ConflictRecord) error

	// GetConflicts returns the conflict audit log for a node,
	// newest last.
	GetConflicts(ctx context.Context, nodeID string) ([]models.ConflictRecord, error)
}
