// Package blob defines the object store uploaded files are kept in.
package blob

import (
	"context"
	"time"
)

// Object is a stored file and a time-limited URL to download it.
type Object struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

// Store is the abstraction for object stores. Implementations keep files under
// a key and hand out URLs the workers can download them from.
//
//go:generate mockgen -package mockblob -source=interface.go -destination=mock/mockblob.go *
type Store interface {
	// Put uploads body under key and returns the object with a presigned GET URL.
	Put(ctx context.Context, key, contentType string, body []byte) (*Object, error)
	// Delete removes the object under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
