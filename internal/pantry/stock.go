package pantry

import (
	"context"
	"strconv"
	"strings"

	"kitchen-companion/internal/recipe"
)

// StockStatus describes pantry availability for one recipe ingredient.
type StockStatus struct {
	Required   float64
	Available  float64
	Unit       string
	Sufficient bool
}

// CheckStock compares a recipe's ingredients against the pantry. The required
// amount is the leading number of the free-text quantity ("2 cups" -> 2);
// unparseable quantities count as 1. Units are reported, not converted.
func CheckStock(ctx context.Context, store Store, rec *recipe.Recipe) (map[string]StockStatus, error) {
	status := make(map[string]StockStatus, len(rec.Ingredients))

	for _, ing := range rec.Ingredients {
		required := leadingNumber(ing.Quantity)

		entry, err := store.Get(ctx, ing.Name)
		if err != nil {
			return nil, err
		}

		if entry == nil {
			status[ing.Name] = StockStatus{Required: required, Unit: "unknown"}
			continue
		}
		status[ing.Name] = StockStatus{
			Required:   required,
			Available:  entry.Quantity,
			Unit:       entry.Unit,
			Sufficient: entry.Quantity >= required,
		}
	}

	return status, nil
}

// leadingNumber extracts the digits and decimal point from a quantity string.
// "1/2 cup" yields 12; that matches the original scraping behavior and is
// good enough for a sufficiency hint.
func leadingNumber(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 1
	}
	return n
}
