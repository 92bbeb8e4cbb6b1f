package recipe

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// RecipeIngredient is a single ingredient with a free-text quantity
// such as "2 cups".
type RecipeIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

// Recipe represents a named dish with ingredients, ordered instructions,
// and timing metadata. PrepTime and CookTime are minutes; zero means unknown.
type Recipe struct {
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	PrepTime     int                `json:"prep_time"`
	CookTime     int                `json:"cook_time"`
	Servings     int                `json:"servings"`
	Notes        string             `json:"notes"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// New creates an empty recipe with default servings.
func New(name string) *Recipe {
	now := time.Now().UTC()
	return &Recipe{
		Name:      name,
		Servings:  4,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate reports whether the recipe satisfies the model invariants.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("recipe name must not be blank")
	}
	if r.PrepTime < 0 || r.CookTime < 0 {
		return fmt.Errorf("recipe times must not be negative")
	}
	if r.Servings < 0 {
		return fmt.Errorf("recipe servings must not be negative")
	}
	return nil
}

// AddIngredient appends an ingredient to the recipe.
func (r *Recipe) AddIngredient(ing RecipeIngredient) {
	r.Ingredients = append(r.Ingredients, ing)
	r.UpdatedAt = time.Now().UTC()
}

// AddInstruction appends an instruction step to the recipe.
func (r *Recipe) AddInstruction(step string) {
	r.Instructions = append(r.Instructions, step)
	r.UpdatedAt = time.Now().UTC()
}

// TotalTime returns prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// IngredientsByCategory groups ingredients by category.
func (r *Recipe) IngredientsByCategory() map[string][]RecipeIngredient {
	categories := make(map[string][]RecipeIngredient)
	for _, ing := range r.Ingredients {
		categories[ing.Category] = append(categories[ing.Category], ing)
	}
	return categories
}

// Categories returns the sorted category names present in the recipe.
func (r *Recipe) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, ing := range r.Ingredients {
		if !seen[ing.Category] {
			seen[ing.Category] = true
			categories = append(categories, ing.Category)
		}
	}
	sort.Strings(categories)
	return categories
}
