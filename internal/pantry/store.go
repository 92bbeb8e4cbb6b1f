package pantry

import "context"

// Store persists pantry entries keyed by their unique name.
// Get returns (nil, nil) when no entry with the name exists.
// Delete reports whether an entry was actually removed.
type Store interface {
	Save(ctx context.Context, entry Entry) error
	Get(ctx context.Context, name string) (*Entry, error)
	List(ctx context.Context) ([]Entry, error)
	Delete(ctx context.Context, name string) (bool, error)
}
