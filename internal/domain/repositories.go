package domain

import "context"

// CollectionClient: Network operations against the museum collection API
// (implemented by adapter/source clients).
type CollectionClient interface {
	// ObjectIDs lists identifiers matching the filter.
	// A zero filter lists the whole collection.
	ObjectIDs(ctx context.Context, filter Filter) ([]string, error)

	// Object returns full detail for a single identifier.
	// Returns ErrNotFound when the collection has no such record.
	Object(ctx context.Context, id string) (*Artwork, error)
}
