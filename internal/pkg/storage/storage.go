package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage holds uploaded documents and profile images. Paths are
// storage keys relative to the backend's root, not filesystem paths.
type FileStorage interface {
	// Upload writes the file under the given key and returns the key
	// it was stored at.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	Delete(ctx context.Context, path string) error

	// GetURL returns a URL the client can fetch the file from. Backends
	// that sign URLs honor the expiry, the local backend ignores it.
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}
