package crawler

import "errors"

// ValidationError rejects malformed crawl input before any I/O happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid crawl input: " + e.Reason
}

// AsValidationError attempts to unwrap an error into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
