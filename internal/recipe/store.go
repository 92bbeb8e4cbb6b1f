package recipe

import "context"

// Store persists recipes keyed by their unique name.
// Load returns (nil, nil) when no recipe with the name exists.
// Delete reports whether a recipe was actually removed.
type Store interface {
	Save(ctx context.Context, rec *Recipe) error
	Load(ctx context.Context, name string) (*Recipe, error)
	Delete(ctx context.Context, name string) (bool, error)
	Names(ctx context.Context) ([]string, error)
}
