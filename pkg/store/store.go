// Package store defines the key-value persistence contract used for the
// identity mapping and the view counters: whole-document JSON blobs keyed by
// (bucket, key), always read and written as a unit, never patched in place.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no document.
var ErrNotFound = errors.New("store: key not found")

// Bucket names used by the portfolio layer.
const (
	BucketIdentity = "identity" // owner email -> identity mapping document
	BucketViews    = "views"    // portfolio id -> view counter document
)

// KV is a whole-document store with atomic read-modify-write. Update must
// run fn against the current value (nil when absent) and persist its result
// so that two concurrent Updates on the same key cannot interleave; this is
// what keeps concurrent publishes for one identity from minting two live
// artifacts.
type KV interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, value []byte) error
	// Update applies fn atomically. Returning a nil slice from fn deletes
	// the key.
	Update(ctx context.Context, bucket, key string, fn func(current []byte) ([]byte, error)) error
	Delete(ctx context.Context, bucket, key string) error
	Ping(ctx context.Context) error
	Close()
}
