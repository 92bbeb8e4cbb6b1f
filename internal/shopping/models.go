package shopping

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ShoppingItem represents a single item in a shopping list.
type ShoppingItem struct {
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Category  string    `json:"category"`
	Purchased bool      `json:"purchased"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewItem creates a ShoppingItem with defaults matching the menu prompts.
func NewItem(name string, quantity float64) ShoppingItem {
	now := time.Now().UTC()
	return ShoppingItem{
		Name:      name,
		Quantity:  quantity,
		Category:  "Uncategorized",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate reports whether the item satisfies the model invariants.
func (i ShoppingItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("item name must not be blank")
	}
	if i.Quantity < 0 {
		return fmt.Errorf("item quantity must not be negative, got %v", i.Quantity)
	}
	return nil
}

// ShoppingList represents a named, ordered collection of shopping items.
type ShoppingList struct {
	Name      string         `json:"name"`
	Items     []ShoppingItem `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewList creates an empty shopping list.
func NewList(name string) *ShoppingList {
	now := time.Now().UTC()
	return &ShoppingList{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem appends an item to the list.
func (l *ShoppingList) AddItem(item ShoppingItem) {
	l.Items = append(l.Items, item)
	l.UpdatedAt = time.Now().UTC()
}

// RemoveItem removes the first item matching the name (case-insensitive).
// It returns false when no item matched.
func (l *ShoppingList) RemoveItem(name string) bool {
	for i, item := range l.Items {
		if strings.EqualFold(item.Name, name) {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			l.UpdatedAt = time.Now().UTC()
			return true
		}
	}
	return false
}

// MarkPurchased sets the purchased flag on the first item matching the
// name (case-insensitive). It returns false when no item matched.
func (l *ShoppingList) MarkPurchased(name string, purchased bool) bool {
	for i := range l.Items {
		if strings.EqualFold(l.Items[i].Name, name) {
			l.Items[i].Purchased = purchased
			l.Items[i].UpdatedAt = time.Now().UTC()
			l.UpdatedAt = time.Now().UTC()
			return true
		}
	}
	return false
}

// ItemsByCategory groups items by their category, preserving list order
// within each group.
func (l *ShoppingList) ItemsByCategory() map[string][]ShoppingItem {
	categories := make(map[string][]ShoppingItem)
	for _, item := range l.Items {
		categories[item.Category] = append(categories[item.Category], item)
	}
	return categories
}

// Categories returns the sorted category names present in the list.
func (l *ShoppingList) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, item := range l.Items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	sort.Strings(categories)
	return categories
}
