package storage

import "errors"

// Common storage errors
var (
	// ErrRecordNotFound indicates that merged record was not found in storage
	ErrRecordNotFound = errors.New("record not found")

	// ErrNodeNotFound indicates that node session was not registered
	ErrNodeNotFound = errors.New("node not found")

	// ErrNodeAlreadyExists indicates that node session is already registered
	ErrNodeAlreadyExists = errors.New("node already exists")
)
