// Package kv provides the durable key-value medium backing the roster
// store. Each key holds one serialized text blob; keys are read and
// written independently.
package kv

import "errors"

// ErrWriteFailed indicates the medium rejected a write.
var ErrWriteFailed = errors.New("write to storage medium failed")

// Store reads and writes named blobs.
type Store interface {
	// Get returns the blob stored under key. ok is false when the key
	// has never been written.
	Get(key string) (data []byte, ok bool, err error)

	// Set durably writes the blob under key, replacing any prior content.
	Set(key string, data []byte) error
}
