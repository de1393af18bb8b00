package repositories

import (
	"context"
	"io"

	"github.com/BHa01559102-bit/hexecutioners/internal/config"
)

// FileStore holds uploaded document bytes under slash-separated keys
// such as "7/marksheet_20240101_101500.pdf".
type FileStore interface {
	Save(ctx context.Context, key string, r io.Reader) error
	// Open returns ErrNotFound when the key does not exist.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
	// Remove is a no-op for missing keys.
	Remove(ctx context.Context, key string) error
}

// NewFileStore returns the store selected by STORAGE_BACKEND.
func NewFileStore(cfg config.Config) (FileStore, error) {
	if cfg.StorageBackend == config.StorageR2 {
		return NewR2Store(cfg.R2), nil
	}
	return NewLocalStore(cfg.UploadDir)
}
