package pantry

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Markdown renders the pantry inventory grouped by category, entries
// alphabetical within each group.
func Markdown(entries []Entry) string {
	var sb strings.Builder
	sb.WriteString("# Pantry\n\n")

	byCategory := make(map[string][]Entry)
	var categories []string
	for _, e := range entries {
		if _, ok := byCategory[e.Category]; !ok {
			categories = append(categories, e.Category)
		}
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}
	sort.Strings(categories)

	now := time.Now()
	for _, category := range categories {
		fmt.Fprintf(&sb, "## %s\n", category)

		group := append([]Entry(nil), byCategory[category]...)
		sort.Slice(group, func(i, j int) bool {
			return strings.ToLower(group[i].Name) < strings.ToLower(group[j].Name)
		})

		for _, e := range group {
			fmt.Fprintf(&sb, "- %s: %g %s", e.Name, e.Quantity, e.Unit)
			if e.ExpiryDate != nil {
				fmt.Fprintf(&sb, " (expires %s", e.ExpiryDate.Format("2006-01-02"))
				if e.Expired(now) {
					sb.WriteString(", EXPIRED")
				}
				sb.WriteString(")")
			}
			if e.Notes != "" {
				fmt.Fprintf(&sb, " - %s", e.Notes)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
