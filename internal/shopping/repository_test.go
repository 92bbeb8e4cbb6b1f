package shopping

import (
	"context"
	"path/filepath"
	"testing"

	"kitchen-companion/internal/database"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "kitchen.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.SQL)
}

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	list := NewList("Weekly Groceries")
	milk := NewItem("Milk", 2)
	milk.Category = "Dairy"
	milk.Unit = "liter"
	milk.Notes = "whole"
	list.AddItem(milk)
	list.AddItem(NewItem("Bread", 1))

	if err := repo.Save(ctx, list); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := repo.Load(ctx, "Weekly Groceries")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected a list, got nil")
	}
	if loaded.Name != list.Name {
		t.Errorf("Expected name %q, got %q", list.Name, loaded.Name)
	}
	if len(loaded.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(loaded.Items))
	}
	if loaded.Items[0].Name != "Milk" || loaded.Items[0].Quantity != 2 || loaded.Items[0].Unit != "liter" {
		t.Errorf("Unexpected first item: %+v", loaded.Items[0])
	}
	if !loaded.Items[0].CreatedAt.Equal(milk.CreatedAt) {
		t.Errorf("Expected CreatedAt %v, got %v", milk.CreatedAt, loaded.Items[0].CreatedAt)
	}
}

func TestRepositoryUpsert(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	list := NewList("Groceries")
	list.AddItem(NewItem("Milk", 1))
	if err := repo.Save(ctx, list); err != nil {
		t.Fatalf("First save failed: %v", err)
	}

	list.Items[0].Quantity = 3
	list.AddItem(NewItem("Eggs", 12))
	if err := repo.Save(ctx, list); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	names, err := repo.Names(ctx)
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if len(names) != 1 {
		t.Fatalf("Expected a single list after re-save, got %v", names)
	}

	loaded, err := repo.Load(ctx, "Groceries")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Items) != 2 {
		t.Errorf("Expected 2 items after upsert, got %d", len(loaded.Items))
	}
	if loaded.Items[0].Quantity != 3 {
		t.Errorf("Expected updated quantity 3, got %v", loaded.Items[0].Quantity)
	}
}

func TestRepositoryLoadMissing(t *testing.T) {
	repo := newTestRepository(t)

	loaded, err := repo.Load(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != nil {
		t.Errorf("Expected nil for a missing list, got %+v", loaded)
	}
}

func TestRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	list := NewList("Groceries")
	list.AddItem(NewItem("Milk", 1))
	if err := repo.Save(ctx, list); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	deleted, err := repo.Delete(ctx, "Groceries")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Error("Expected delete of an existing list to report true")
	}

	deleted, err = repo.Delete(ctx, "Groceries")
	if err != nil {
		t.Fatalf("Second delete failed: %v", err)
	}
	if deleted {
		t.Error("Expected delete of a missing list to report false")
	}
}
