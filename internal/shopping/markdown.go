package shopping

import (
	"fmt"
	"sort"
	"strings"
)

// Markdown renders the shopping list as a markdown document, one section per
// category, items alphabetical within each section.
func (l *ShoppingList) Markdown() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", l.Name)
	fmt.Fprintf(&sb, "*Created: %s*\n", l.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&sb, "*Last Updated: %s*\n\n", l.UpdatedAt.Format("2006-01-02 15:04"))

	byCategory := l.ItemsByCategory()
	for _, category := range l.Categories() {
		fmt.Fprintf(&sb, "## %s\n", category)

		items := append([]ShoppingItem(nil), byCategory[category]...)
		sort.Slice(items, func(i, j int) bool {
			return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		})

		for _, item := range items {
			status := " "
			if item.Purchased {
				status = "x"
			}
			fmt.Fprintf(&sb, "- [%s] %s", status, item.Name)
			if item.Quantity > 0 {
				if item.Unit != "" {
					fmt.Fprintf(&sb, " (%s %s)", formatQuantity(item.Quantity), item.Unit)
				} else if item.Quantity != 1 {
					fmt.Fprintf(&sb, " (%s)", formatQuantity(item.Quantity))
				}
			}
			if item.Notes != "" {
				fmt.Fprintf(&sb, " - %s", item.Notes)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatQuantity prints whole quantities without a decimal point.
func formatQuantity(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%g", q)
}
