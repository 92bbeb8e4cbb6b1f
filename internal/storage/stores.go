package storage

import (
	"context"
	"sort"

	"kitchen-companion/internal/pantry"
	"kitchen-companion/internal/recipe"
	"kitchen-companion/internal/shopping"
)

// ListStore is a JSON-file shopping.Store.
type ListStore struct {
	dir string
}

// NewListStore creates the store and its directory under basePath.
func NewListStore(basePath string) (*ListStore, error) {
	dir, err := ensureDir(basePath, "shopping")
	if err != nil {
		return nil, err
	}
	return &ListStore{dir: dir}, nil
}

func (s *ListStore) Save(ctx context.Context, list *shopping.ShoppingList) error {
	return writeDoc(s.dir, list.Name, list)
}

func (s *ListStore) Load(ctx context.Context, name string) (*shopping.ShoppingList, error) {
	var list shopping.ShoppingList
	found, err := readDoc(s.dir, name, &list)
	if err != nil || !found {
		return nil, err
	}
	return &list, nil
}

func (s *ListStore) Delete(ctx context.Context, name string) (bool, error) {
	return deleteDoc(s.dir, name)
}

func (s *ListStore) Names(ctx context.Context) ([]string, error) {
	return docNames(s.dir)
}

// RecipeStore is a JSON-file recipe.Store.
type RecipeStore struct {
	dir string
}

// NewRecipeStore creates the store and its directory under basePath.
func NewRecipeStore(basePath string) (*RecipeStore, error) {
	dir, err := ensureDir(basePath, "recipes")
	if err != nil {
		return nil, err
	}
	return &RecipeStore{dir: dir}, nil
}

func (s *RecipeStore) Save(ctx context.Context, rec *recipe.Recipe) error {
	return writeDoc(s.dir, rec.Name, rec)
}

func (s *RecipeStore) Load(ctx context.Context, name string) (*recipe.Recipe, error) {
	var rec recipe.Recipe
	found, err := readDoc(s.dir, name, &rec)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (s *RecipeStore) Delete(ctx context.Context, name string) (bool, error) {
	return deleteDoc(s.dir, name)
}

func (s *RecipeStore) Names(ctx context.Context) ([]string, error) {
	return docNames(s.dir)
}

// PantryStore is a JSON-file pantry.Store, one document per entry.
type PantryStore struct {
	dir string
}

// NewPantryStore creates the store and its directory under basePath.
func NewPantryStore(basePath string) (*PantryStore, error) {
	dir, err := ensureDir(basePath, "pantry")
	if err != nil {
		return nil, err
	}
	return &PantryStore{dir: dir}, nil
}

func (s *PantryStore) Save(ctx context.Context, entry pantry.Entry) error {
	return writeDoc(s.dir, entry.Name, entry)
}

func (s *PantryStore) Get(ctx context.Context, name string) (*pantry.Entry, error) {
	var entry pantry.Entry
	found, err := readDoc(s.dir, name, &entry)
	if err != nil || !found {
		return nil, err
	}
	return &entry, nil
}

func (s *PantryStore) List(ctx context.Context) ([]pantry.Entry, error) {
	names, err := docNames(s.dir)
	if err != nil {
		return nil, err
	}

	entries := make([]pantry.Entry, 0, len(names))
	for _, name := range names {
		entry, err := s.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	// Match the sqlite ordering: category, then name.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

func (s *PantryStore) Delete(ctx context.Context, name string) (bool, error) {
	return deleteDoc(s.dir, name)
}
