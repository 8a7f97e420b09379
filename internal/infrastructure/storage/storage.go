package storage

import (
	"context"
	"errors"
)

// ErrInvalidKey is returned for keys that are empty or escape the store root.
var ErrInvalidKey = errors.New("invalid storage key")

// BlobStorage persists opaque blobs under slash-separated keys and reports
// the public URL each blob is reachable at.
type BlobStorage interface {
	// Put writes data under key, replacing any existing blob, and returns
	// its public URL. A failed Put leaves no partial blob at key.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// KeyFromURL maps a URL produced by Put back to its key.
	KeyFromURL(url string) (string, bool)

	Ping(ctx context.Context) error
}
