package recipe

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

// NewRepository creates a new recipe repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts or replaces a recipe with its ingredients and instructions.
func (r *Repository) Save(ctx context.Context, rec *Recipe) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO recipes (name, description, prep_time, cook_time, servings, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			description = excluded.description,
			prep_time = excluded.prep_time,
			cook_time = excluded.cook_time,
			servings = excluded.servings,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`,
		rec.Name,
		rec.Description,
		rec.PrepTime,
		rec.CookTime,
		rec.Servings,
		rec.Notes,
		rec.CreatedAt.Format(time.RFC3339Nano),
		rec.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert recipe: %w", err)
	}

	var recipeID int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM recipes WHERE name = ?`, rec.Name).Scan(&recipeID); err != nil {
		return fmt.Errorf("failed to resolve recipe id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = ?`, recipeID); err != nil {
		return fmt.Errorf("failed to clear recipe ingredients: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM recipe_instructions WHERE recipe_id = ?`, recipeID); err != nil {
		return fmt.Errorf("failed to clear recipe instructions: %w", err)
	}

	for _, ing := range rec.Ingredients {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, name, quantity, category, notes)
			VALUES (?, ?, ?, ?, ?)
		`, recipeID, ing.Name, ing.Quantity, ing.Category, ing.Notes)
		if err != nil {
			return fmt.Errorf("failed to insert ingredient %q: %w", ing.Name, err)
		}
	}

	for i, instruction := range rec.Instructions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_instructions (recipe_id, step_number, instruction)
			VALUES (?, ?, ?)
		`, recipeID, i+1, instruction)
		if err != nil {
			return fmt.Errorf("failed to insert instruction %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

// Load retrieves a recipe with its ingredients and ordered instructions,
// or (nil, nil) when absent.
func (r *Repository) Load(ctx context.Context, name string) (*Recipe, error) {
	var (
		recipeID             int64
		createdAt, updatedAt string
	)
	rec := &Recipe{Name: name}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, description, prep_time, cook_time, servings, notes, created_at, updated_at
		FROM recipes WHERE name = ?
	`, name).Scan(&recipeID, &rec.Description, &rec.PrepTime, &rec.CookTime, &rec.Servings, &rec.Notes, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}

	if rec.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if rec.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}

	ingRows, err := r.db.QueryContext(ctx, `
		SELECT name, quantity, category, notes
		FROM recipe_ingredients
		WHERE recipe_id = ?
		ORDER BY id
	`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}
	defer ingRows.Close()

	for ingRows.Next() {
		var ing RecipeIngredient
		if err := ingRows.Scan(&ing.Name, &ing.Quantity, &ing.Category, &ing.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		rec.Ingredients = append(rec.Ingredients, ing)
	}
	if err := ingRows.Err(); err != nil {
		return nil, err
	}

	stepRows, err := r.db.QueryContext(ctx, `
		SELECT instruction
		FROM recipe_instructions
		WHERE recipe_id = ?
		ORDER BY step_number
	`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load instructions: %w", err)
	}
	defer stepRows.Close()

	for stepRows.Next() {
		var instruction string
		if err := stepRows.Scan(&instruction); err != nil {
			return nil, fmt.Errorf("failed to scan instruction: %w", err)
		}
		rec.Instructions = append(rec.Instructions, instruction)
	}

	return rec, stepRows.Err()
}

// Delete removes a recipe by name, reporting whether it existed.
func (r *Repository) Delete(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete recipe: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Names returns all recipe names, sorted.
func (r *Repository) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM recipes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
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
