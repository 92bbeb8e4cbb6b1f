package shopping

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository is a sqlite-backed Store.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new shopping list repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts or replaces a shopping list and all of its items.
func (r *Repository) Save(ctx context.Context, list *ShoppingList) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO shopping_lists (name, created_at, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET updated_at = excluded.updated_at
	`, list.Name, list.CreatedAt.Format(time.RFC3339Nano), list.UpdatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to upsert shopping list: %w", err)
	}

	var listID int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM shopping_lists WHERE name = ?`, list.Name).Scan(&listID); err != nil {
		return fmt.Errorf("failed to resolve shopping list id: %w", err)
	}

	// Replace items wholesale; the list is the unit of persistence.
	if _, err := tx.ExecContext(ctx, `DELETE FROM shopping_items WHERE list_id = ?`, listID); err != nil {
		return fmt.Errorf("failed to clear shopping items: %w", err)
	}

	for _, item := range list.Items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO shopping_items (list_id, name, quantity, unit, category, purchased, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			listID,
			item.Name,
			item.Quantity,
			item.Unit,
			item.Category,
			item.Purchased,
			item.Notes,
			item.CreatedAt.Format(time.RFC3339Nano),
			item.UpdatedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("failed to insert shopping item %q: %w", item.Name, err)
		}
	}

	return tx.Commit()
}

// Load retrieves a shopping list with its items, or (nil, nil) when absent.
func (r *Repository) Load(ctx context.Context, name string) (*ShoppingList, error) {
	var (
		listID               int64
		createdAt, updatedAt string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, created_at, updated_at FROM shopping_lists WHERE name = ?
	`, name).Scan(&listID, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load shopping list: %w", err)
	}

	list := &ShoppingList{Name: name}
	if list.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if list.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT name, quantity, unit, category, purchased, notes, created_at, updated_at
		FROM shopping_items
		WHERE list_id = ?
		ORDER BY id
	`, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shopping items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item        ShoppingItem
			itemCreated string
			itemUpdated string
		)
		if err := rows.Scan(&item.Name, &item.Quantity, &item.Unit, &item.Category, &item.Purchased, &item.Notes, &itemCreated, &itemUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan shopping item: %w", err)
		}
		if item.CreatedAt, err = parseTime(itemCreated); err != nil {
			return nil, err
		}
		if item.UpdatedAt, err = parseTime(itemUpdated); err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}

	return list, rows.Err()
}

// Delete removes a shopping list by name, reporting whether it existed.
func (r *Repository) Delete(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shopping_lists WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete shopping list: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Names returns all shopping list names, sorted.
func (r *Repository) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM shopping_lists ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping lists: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t, nil
}
