package pantry

import (
	"fmt"
	"strings"
	"time"
)

// Entry is a single pantry item: something on hand, with quantity and an
// optional expiry date.
type Entry struct {
	Name       string     `json:"name"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	Category   string     `json:"category"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewEntry creates a pantry entry with defaults.
func NewEntry(name string, quantity float64, unit string) Entry {
	now := time.Now().UTC()
	return Entry{
		Name:      name,
		Quantity:  quantity,
		Unit:      unit,
		Category:  "Other",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate reports whether the entry satisfies the model invariants.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("pantry entry name must not be blank")
	}
	if e.Quantity < 0 {
		return fmt.Errorf("pantry quantity must not be negative, got %v", e.Quantity)
	}
	return nil
}

// Expired reports whether the entry has an expiry date in the past.
func (e Entry) Expired(now time.Time) bool {
	return e.ExpiryDate != nil && e.ExpiryDate.Before(now)
}
