package requests

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned for any non 2xx response, carrying the status code
// and the raw response body.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("riot api returned status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether the error is a 404 from the API.
// Absence of a resource (unknown player, no live game) is a valid state for
// several endpoints, so callers branch on this instead of the raw status.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

// IsRateLimited reports whether the error is a 429 that survived the
// rate limit wait ceiling.
func IsRateLimited(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusTooManyRequests
}
