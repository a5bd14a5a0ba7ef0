package catalog

import (
	"errors"
	"fmt"
)

// ErrFetch marks every failed fetch cycle
var ErrFetch = errors.New("catalog fetch failed")

// FetchError describes a failed fetch. StatusText is set for non-2xx
// responses, Err for transport and decoding failures.
type FetchError struct {
	Status     int
	StatusText string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusText != "" {
		return fmt.Sprintf("%v: %s", ErrFetch, e.StatusText)
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", ErrFetch, e.Err)
	}
	return ErrFetch.Error()
}

func (e *FetchError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrFetch, e.Err}
	}
	return []error{ErrFetch}
}

// Reason derives the user-facing message for a failed fetch: the HTTP status
// text, else the underlying error message, else fallback.
func Reason(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		if fetchErr.StatusText != "" {
			return fetchErr.StatusText
		}
		if fetchErr.Err != nil && fetchErr.Err.Error() != "" {
			return fetchErr.Err.Error()
		}
		return fallback
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
