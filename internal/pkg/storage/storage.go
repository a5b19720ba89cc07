package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage abstracts where certificate files live.
type FileStorage interface {
	// Upload stores a file and returns the storage key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file.
	Delete(ctx context.Context, path string) error

	// GetURL returns a public or signed URL for the file.
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// Exists checks whether the file is present.
	Exists(ctx context.Context, path string) (bool, error)
}
