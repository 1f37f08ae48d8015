package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/shiftsync/internal/models"
)

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		nodeID  string
		wantErr bool
	}{
		{"valid uuid", "a81bc81b-dead-4e5d-abff-90865d1e13b1", false},
		{"valid device name", "ward-3-tablet-7", false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 65), true},
		{"invalid characters", "node_a!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeID(tt.nodeID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOperation(t *testing.T) {
	validClock := models.VectorClock{NodeID: "node-aaa", Counter: 1, Timestamp: 1000}

	tests := []struct {
		name    string
		op      *models.Operation
		wantErr bool
	}{
		{
			name: "valid create",
			op: &models.Operation{
				Type:         models.OpCreate,
				ResourceType: models.ResourceTask,
				ResourceID:   "task-1",
				Clock:        validClock,
			},
			wantErr: false,
		},
		{
			name: "valid update",
			op: &models.Operation{
				Type:       models.OpUpdate,
				ResourceID: "task-1",
				Fields:     map[string]models.FieldValue{"status": {}},
				Clock:      validClock,
			},
			wantErr: false,
		},
		{
			name:    "nil operation",
			op:      nil,
			wantErr: true,
		},
		{
			name: "unknown type",
			op: &models.Operation{
				Type:       "upsert",
				ResourceID: "task-1",
				Clock:      validClock,
			},
			wantErr: true,
		},
		{
			name: "missing resource id",
			op: &models.Operation{
				Type:  models.OpDelete,
				Clock: validClock,
			},
			wantErr: true,
		},
		{
			name: "update without fields",
			op: &models.Operation{
				Type:       models.OpUpdate,
				ResourceID: "task-1",
				Clock:      validClock,
			},
			wantErr: true,
		},
		{
			name: "zero counter",
			op: &models.Operation{
				Type:       models.OpDelete,
				ResourceID: "task-1",
				Clock:      models.VectorClock{NodeID: "node-aaa", Counter: 0, Timestamp: 1000},
			},
			wantErr: true,
		},
		{
			name: "missing clock timestamp",
			op: &models.Operation{
				Type:       models.OpDelete,
				ResourceID: "task-1",
				Clock:      models.VectorClock{NodeID: "node-aaa", Counter: 1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOperation(tt.op)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
