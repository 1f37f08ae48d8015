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

// SaveRecord atomically replaces the merged record for a resource.
// The record row is always written whole (read-merge-write), never
// field by field, so concurrent readers never observe a partial merge.
func (s *Storage) SaveRecord(ctx context.Context, rec *models.Record) error {
	fields, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}
	clock, err := json.Marshal(rec.Clock)
	if err != nil {
		return fmt.Errorf("failed to marshal clock: %w", err)
	}

	query := `
		INSERT INTO records (
			resource_id, resource_type, fields, clock,
			created_at, updated_at, deleted_at, deleted
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (resource_id) DO UPDATE SET
			resource_type = excluded.resource_type,
			fields = excluded.fields,
			clock = excluded.clock,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			deleted_at = excluded.deleted_at,
			deleted = excluded.deleted
	`

	_, err = s.db.ExecContext(ctx, query,
		rec.ResourceID,
		rec.ResourceType,
		string(fields),
		string(clock),
		rec.CreatedAt,
		rec.UpdatedAt,
		rec.DeletedAt,
		boolToInt(rec.Deleted),
	)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// GetRecord retrieves the merged record for a resource.
// Returns storage.ErrRecordNotFound if no record exists.
func (s *Storage) GetRecord(ctx context.Context, resourceID string) (*models.Record, error) {
	query := `
		SELECT resource_id, resource_type, fields, clock,
		       created_at, updated_at, deleted_at, deleted
		FROM records
		WHERE resource_id = ?
	`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, resourceID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return rec, nil
}

// ListRecords returns all merged records, including tombstones.
func (s *Storage) ListRecords(ctx context.Context) ([]*models.Record, error) {
	query := `
		SELECT resource_id, resource_type, fields, clock,
		       created_at, updated_at, deleted_at, deleted
		FROM records
		ORDER BY resource_id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.Record, error) {
	var (
		rec        models.Record
		fieldsJSON string
		clockJSON  string
		deleted    int
	)

	err := row.Scan(
		&rec.ResourceID,
		&rec.ResourceType,
		&fieldsJSON,
		&clockJSON,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.DeletedAt,
		&deleted,
	)
	if err != nil {
		return nil, err
	}

	rec.Deleted = deleted != 0
	if err := json.Unmarshal([]byte(fieldsJSON), &rec.Fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fields: %w", err)
	}
	if err := json.Unmarshal([]byte(clockJSON), &rec.Clock); err != nil {
		return nil, fmt.Errorf("failed to unmarshal clock: %w", err)
	}

	return &rec, nil
}
