package storage

import "errors"

// Common client storage errors
var (
	// ErrRecordNotFound indicates that the record was not found
	ErrRecordNotFound = errors.New("record not found")

	// ErrNotInitialized indicates that the client has no node identity yet
	ErrNotInitialized = errors.New("client is not initialized")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
