package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/shiftsync/internal/models"
	"github.com/iudanet/shiftsync/internal/server/storage"
)

// SaveNode creates or updates a node session.
func (s *Storage) SaveNode(ctx context.Context, session *storage.NodeSession) error {
	clock, err := json.Marshal(session.Clock)
	if err != nil {
		return fmt.Errorf("failed to marshal clock: %w", err)
	}

	query := `
		INSERT INTO node_sessions (node_id, device_type, user_id, clock, last_sync_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (node_id) DO UPDATE SET
			device_type = excluded.device_type,
			user_id = excluded.user_id,
			clock = excluded.clock,
			last_sync_at = excluded.last_sync_at
	`

	_, err = s.db.ExecContext(ctx, query,
		session.NodeID,
		session.DeviceType,
		session.UserID,
		string(clock),
		session.LastSyncAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save node session: %w", err)
	}

	return nil
}

// GetNode retrieves a node session.
// Returns storage.ErrNodeNotFound if the node was never initialized.
func (s *Storage) GetNode(ctx context.Context, nodeID string) (*storage.NodeSession, error) {
	query := `
		SELECT node_id, device_type, user_id, clock, last_sync_at
		FROM node_sessions
		WHERE node_id = ?
	`

	var (
		session   storage.NodeSession
		clockJSON string
	)

	err := s.db.QueryRowContext(ctx, query, nodeID).Scan(
		&session.NodeID,
		&session.DeviceType,
		&session.UserID,
		&clockJSON,
		&session.LastSyncAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNodeNotFound
		}
		return nil, fmt.Errorf("failed to get node session: %w", err)
	}

	if err := json.Unmarshal([]byte(clockJSON), &session.Clock); err != nil {
		return nil, fmt.Errorf("failed to unmarshal clock: %w", err)
	}

	return &session, nil
}

// SaveConflict appends a resolved conflict to the audit log.
func (s *Storage) SaveConflict(ctx context.Context, nodeID string, rec models.ConflictRecord) error {
	localOp, err := json.Marshal(rec.Local)
	if err != nil {
		return fmt.Errorf("failed to marshal local operation: %w", err)
	}
	remoteOp, err := json.Marshal(rec.Remote)
	if err != nil {
		return fmt.Errorf("failed to marshal remote operation: %w", err)
	}

	query := `
		INSERT INTO conflicts (node_id, resource_id, local_op, remote_op, resolution, detected_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		nodeID,
		rec.ResourceID,
		string(localOp),
		string(remoteOp),
		rec.Resolution,
		rec.DetectedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save conflict: %w", err)
	}

	return nil
}

// GetConflicts returns the conflict audit log for a node, newest last.
func (s *Storage) GetConflicts(ctx context.Context, nodeID string) ([]models.ConflictRecord, error) {
	query := `
		SELECT resource_id, local_op, remote_op, resolution, detected_at
		FROM conflicts
		WHERE node_id = ?
		ORDER BY detected_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicts: %w", err)
	}
	defer rows.Close()

	var conflicts []models.ConflictRecord
	for rows.Next() {
		var (
			rec      models.ConflictRecord
			localOp  string
			remoteOp string
		)
		if err := rows.Scan(&rec.ResourceID, &localOp, &remoteOp, &rec.Resolution, &rec.DetectedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conflict: %w", err)
		}
		if err := json.Unmarshal([]byte(localOp), &rec.Local); err != nil {
			return nil, fmt.Errorf("failed to unmarshal local operation: %w", err)
		}
		if err := json.Unmarshal([]byte(remoteOp), &rec.Remote); err != nil {
			return nil, fmt.Errorf("failed to unmarshal remote operation: %w", err)
		}
		conflicts = append(conflicts, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conflicts: %w", err)
	}

	return conflicts, nil
}
