// Package storage writes exported site files to a filesystem.
package storage

import (
	"context"
	"io"
)

// Store is where exported files end up.
type Store interface {
	// Save writes reader to path, creating parent directories.
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	// Open returns a reader for path.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete removes path.
	Delete(ctx context.Context, path string) error
}
