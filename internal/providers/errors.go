package providers

import (
	"errors"
	"fmt"
)

// ProviderError captures a failed call against the upstream stats API:
// transport failures, non-2xx statuses, and undecodable payloads.
type ProviderError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %s failed (status=%d): %s", e.Op, e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("provider %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("provider %s failed", e.Op)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AsProviderError attempts to unwrap an error into a ProviderError.
func AsProviderError(err error) (*ProviderError, bool) {
	var pErr *ProviderError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}
