package coordinator

import "errors"

// Ошибки координатора синхронизации, возвращаемые вызывающей стороне
// до какого-либо изменения состояния.
var (
	// ErrBatchTooLarge batch exceeds the configured maximum size
	ErrBatchTooLarge = errors.New("sync batch exceeds maximum size")

	// ErrUnknownNode node session was never initialized
	ErrUnknownNode = errors.New("unknown node")

	// ErrValidation batch contains a malformed operation
	ErrValidation = errors.New("operation validation failed")

	// ErrResyncRequired causality gap persisted beyond the buffer bound,
	// the client must perform a full resync
	ErrResyncRequired = errors.New("causality gap too large, resync required")
)
