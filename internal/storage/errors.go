package storage

import (
	"errors"
	"fmt"
)

// StorageError captures a failed object-store write.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage write to %s failed: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AsStorageError attempts to unwrap an error into a StorageError.
func AsStorageError(err error) (*StorageError, bool) {
	var sErr *StorageError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}
