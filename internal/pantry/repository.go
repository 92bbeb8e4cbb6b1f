package pantry

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

// NewRepository creates a new pantry repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts or updates a pantry entry by name.
func (r *Repository) Save(ctx context.Context, entry Entry) error {
	var expiry interface{}
	if entry.ExpiryDate != nil {
		expiry = entry.ExpiryDate.Format(time.RFC3339Nano)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pantry (name, quantity, unit, category, expiry_date, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			quantity = excluded.quantity,
			unit = excluded.unit,
			category = excluded.category,
			expiry_date = excluded.expiry_date,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`,
		entry.Name,
		entry.Quantity,
		entry.Unit,
		entry.Category,
		expiry,
		entry.Notes,
		entry.CreatedAt.Format(time.RFC3339Nano),
		entry.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert pantry entry %q: %w", entry.Name, err)
	}
	return nil
}

// Get retrieves a pantry entry by name, or (nil, nil) when absent.
func (r *Repository) Get(ctx context.Context, name string) (*Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT name, quantity, unit, category, expiry_date, notes, created_at, updated_at
		FROM pantry WHERE name = ?
	`, name)

	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pantry entry: %w", err)
	}
	return entry, nil
}

// List returns all pantry entries ordered by category then name.
func (r *Repository) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, quantity, unit, category, expiry_date, notes, created_at, updated_at
		FROM pantry
		ORDER BY category, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pantry: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pantry entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// Delete removes a pantry entry by name, reporting whether it existed.
func (r *Repository) Delete(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pantry WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete pantry entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanEntry(scan func(dest ...interface{}) error) (*Entry, error) {
	var (
		e                    Entry
		expiry               sql.NullString
		createdAt, updatedAt string
	)
	if err := scan(&e.Name, &e.Quantity, &e.Unit, &e.Category, &expiry, &e.Notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	if expiry.Valid {
		t, err := parseTime(expiry.String)
		if err != nil {
			return nil, err
		}
		e.ExpiryDate = &t
	}
	return &e, nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t, nil
}
