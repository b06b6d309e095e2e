package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound indicates the collection has no record for an identifier
	ErrNotFound = errors.New("artwork not found")

	// ErrUnavailable indicates no image-bearing artwork could be found
	// within the retry budget, even after falling back
	ErrUnavailable = errors.New("no artwork with images available")

	// ErrMalformedStorage indicates a persisted slot could not be decoded.
	// Stores log it and report the slot as absent.
	ErrMalformedStorage = errors.New("malformed stored value")
)

// UpstreamError wraps a network, status or decode failure talking to the
// collection API.
type UpstreamError struct {
	Op  string // e.g. "list objects", "get object 436535"
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("collection api: %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IsUpstream reports whether err carries an UpstreamError
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
