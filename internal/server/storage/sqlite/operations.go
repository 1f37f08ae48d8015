package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/iudanet/shiftsync/internal/models"
)

// AppendOperation appends an operation to the per-resource log.
// The (resource_id, node_id, counter) key makes re-appending the same
// operation a no-op, so batch retries are safe.
func (s *Storage) AppendOperation(ctx context.Context, op *models.Operation) error {
	fields, err := json.Marshal(op.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}
	clock, err := json.Marshal(op.Clock)
	if err != nil {
		return fmt.Errorf("failed to marshal clock: %w", err)
	}

	query := `
		INSERT INTO operations (
			resource_id, node_id, counter, type, resource_type,
			fields, clock, timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (resource_id, node_id, counter) DO NOTHING
	`

	_, err = s.db.ExecContext(ctx, query,
		op.ResourceID,
		op.Clock.NodeID,
		op.Clock.Counter,
		string(op.Type),
		op.ResourceType,
		string(fields),
		string(clock),
		op.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert operation: %w", err)
	}

	return nil
}

// GetOperations returns all logged operations for a resource in storage order.
func (s *Storage) GetOperations(ctx context.Context, resourceID string) ([]*models.Operation, error) {
	query := `
		SELECT resource_id, type, resource_type, fields, clock, timestamp
		FROM operations
		WHERE resource_id = ?
		ORDER BY node_id, counter
	`

	rows, err := s.db.QueryContext(ctx, query, resourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations: %w", err)
	}
	defer rows.Close()

	var ops []*models.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate operations: %w", err)
	}

	return ops, nil
}

// LastCounter returns the highest logged counter for a node, 0 if none.
func (s *Storage) LastCounter(ctx context.Context, nodeID string) (uint64, error) {
	query := `SELECT COALESCE(MAX(counter), 0) FROM operations WHERE node_id = ?`

	var counter uint64
	if err := s.db.QueryRowContext(ctx, query, nodeID).Scan(&counter); err != nil {
		return 0, fmt.Errorf("failed to query last counter: %w", err)
	}

	return counter, nil
}

func scanOperation(rows *sql.Rows) (*models.Operation, error) {
	var (
		op         models.Operation
		typ        string
		fieldsJSON string
		clockJSON  string
	)

	if err := rows.Scan(&op.ResourceID, &typ, &op.ResourceType, &fieldsJSON, &clockJSON, &op.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to scan operation: %w", err)
	}

	op.Type = models.OpType(typ)
	if err := json.Unmarshal([]byte(fieldsJSON), &op.Fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fields: %w", err)
	}
	if err := json.Unmarshal([]byte(clockJSON), &op.Clock); err != nil {
		return nil, fmt.Errorf("failed to unmarshal clock: %w", err)
	}

	return &op, nil
}
