package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// FSStore writes objects under a base directory, mirroring object keys as
// relative file paths. It backs local runs that have no object store.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed object store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// Put writes data to {basePath}/{key}, creating parent directories as needed.
func (s *FSStore) Put(ctx context.Context, key string, data []byte) error {
	_ = ctx
	if s == nil || s.basePath == "" {
		return errors.New("fs store not configured")
	}
	if key == "" {
		return errors.New("object key required")
	}

	path := filepath.Join(s.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
