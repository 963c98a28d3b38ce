package otodom

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingElement is returned when a page lacks an element every listing
// is expected to carry.
var ErrMissingElement = errors.New("missing element")

func missingElement(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingElement, name)
}

// StatusError is returned by the transport for any non 2xx response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

// IsNotFound reports whether err is a StatusError carrying a 404.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusNotFound
	}
	return false
}
