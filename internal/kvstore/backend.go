// Package kvstore persists JSON documents under string keys. Every key carries a
// version stamp so concurrent read-modify-write cycles can detect each other.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Backend when the key has never been written or
// has been deleted.
var ErrNotFound = errors.New("kvstore: key not found")

// ErrVersionConflict is returned when a conditional write observes a version
// different from the one the caller read.
var ErrVersionConflict = errors.New("kvstore: version conflict")

// AnyVersion makes Write unconditional.
const AnyVersion int64 = -1

// Backend is the raw storage contract. Version 0 means the key is absent, the
// first successful write produces version 1.
type Backend interface {
	Read(ctx context.Context, key string) (data []byte, version int64, err error)
	// Write stores data when the current version equals expect (or expect is
	// AnyVersion) and returns the new version.
	Write(ctx context.Context, key string, data []byte, expect int64) (int64, error)
	Delete(ctx context.Context, key string) error
}
