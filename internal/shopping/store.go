package shopping

import "context"

// Store persists shopping lists keyed by their unique name.
// Load returns (nil, nil) when no list with the name exists.
// Delete reports whether a list was actually removed.
type Store interface {
	Save(ctx context.Context, list *ShoppingList) error
	Load(ctx context.Context, name string) (*ShoppingList, error)
	Delete(ctx context.Context, name string) (bool, error)
	Names(ctx context.Context) ([]string, error)
}
