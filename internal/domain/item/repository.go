package item

import (
	"context"
)

// Repository is the storage contract for items. The repository owns
// identifier assignment and both timestamps; callers never pick ids.
type Repository interface {
	// Create stores the draft and returns the new record.
	Create(ctx context.Context, draft Draft) (*Item, error)
	// Get returns the record with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (*Item, error)
	// List returns every record in insertion order. Sorting and paging
	// are the caller's concern.
	List(ctx context.Context) ([]Item, error)
	// Update merges the patch into the stored record, refreshes
	// UpdatedAt and returns the result, or ErrNotFound.
	Update(ctx context.Context, id string, patch Patch) (*Item, error)
	// Delete removes the record permanently, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
