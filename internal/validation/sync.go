package validation

import (
	"fmt"
	"regexp"

	"github.com/iudanet/shiftsync/internal/models"
)

// NodeIDPattern определяет допустимый формат идентификатора узла
// Буквы, цифры, дефис (UUID и читаемые идентификаторы устройств)
// Длина: 3-64 символа
var NodeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9-]{3,64}$`)

const (
	// MinNodeIDLen минимальная длина идентификатора узла
	MinNodeIDLen = 3
	// MaxNodeIDLen максимальная длина идентификатора узла
	MaxNodeIDLen = 64
)

// ValidateNodeID проверяет формат идентификатора узла.
func ValidateNodeID(nodeID string) error {
	if nodeID == "" {
		return fmt.Errorf("node id cannot be empty")
	}

	if len(nodeID) < MinNodeIDLen {
		return fmt.Errorf("node id must be at least %d characters long", MinNodeIDLen)
	}

	if len(nodeID) > MaxNodeIDLen {
		return fmt.Errorf("node id must not exceed %d characters", MaxNodeIDLen)
	}

	if !NodeIDPattern.MatchString(nodeID) {
		return fmt.Errorf("node id can only contain letters, numbers and hyphens")
	}

	return nil
}

// ValidateClock проверяет корректность векторных часов операции:
// непустой узел, ненулевой счетчик, присутствие метки времени.
func ValidateClock(vc models.VectorClock) error {
	if err := ValidateNodeID(vc.NodeID); err != nil {
		return fmt.Errorf("vector clock: %w", err)
	}

	if vc.Counter == 0 {
		return fmt.Errorf("vector clock: counter must be positive")
	}

	if vc.Timestamp == 0 {
		return fmt.Errorf("vector clock: timestamp is required")
	}

	return nil
}

// ValidateOperation проверяет обязательные поля операции до любого
// слияния. Невалидная операция отклоняется без изменения состояния.
func ValidateOperation(op *models.Operation) error {
	if op == nil {
		return fmt.Errorf("operation is required")
	}

	switch op.Type {
	case models.OpCreate, models.OpUpdate, models.OpDelete:
	default:
		return fmt.Errorf("unknown operation type %q", op.Type)
	}

	if op.ResourceID == "" {
		return fmt.Errorf("resource id is required")
	}

	if op.Type == models.OpCreate && op.ResourceType == "" {
		return fmt.Errorf("resource type is required for create")
	}

	if op.Type == models.OpUpdate && len(op.Fields) == 0 {
		return fmt.Errorf("update must change at least one field")
	}

	if err := ValidateClock(op.Clock); err != nil {
		return err
	}

	return nil
}
