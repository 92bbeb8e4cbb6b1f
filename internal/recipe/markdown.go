package recipe

import (
	"fmt"
	"sort"
	"strings"
)

// Markdown renders the recipe as a markdown document: description, timing
// details, ingredients grouped by category, numbered instructions, notes.
func (r *Recipe) Markdown() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", r.Name)
	if r.Description != "" {
		fmt.Fprintf(&sb, "*%s*\n\n", r.Description)
	}

	sb.WriteString("## Details\n\n")
	if r.PrepTime > 0 {
		fmt.Fprintf(&sb, "- **Prep Time:** %d minutes\n", r.PrepTime)
	}
	if r.CookTime > 0 {
		fmt.Fprintf(&sb, "- **Cook Time:** %d minutes\n", r.CookTime)
	}
	if r.TotalTime() > 0 {
		fmt.Fprintf(&sb, "- **Total Time:** %d minutes\n", r.TotalTime())
	}
	fmt.Fprintf(&sb, "- **Servings:** %d\n\n", r.Servings)

	sb.WriteString("## Ingredients\n\n")
	byCategory := r.IngredientsByCategory()
	for _, category := range r.Categories() {
		fmt.Fprintf(&sb, "### %s\n\n", category)

		ingredients := append([]RecipeIngredient(nil), byCategory[category]...)
		sort.Slice(ingredients, func(i, j int) bool {
			return strings.ToLower(ingredients[i].Name) < strings.ToLower(ingredients[j].Name)
		})

		for _, ing := range ingredients {
			fmt.Fprintf(&sb, "- %s (%s)", ing.Name, ing.Quantity)
			if ing.Notes != "" {
				fmt.Fprintf(&sb, " - *%s*", ing.Notes)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Instructions\n\n")
	for i, instruction := range r.Instructions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, instruction)
	}
	sb.WriteString("\n")

	if r.Notes != "" {
		sb.WriteString("## Notes\n\n")
		fmt.Fprintf(&sb, "%s\n\n", r.Notes)
	}

	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "*Created: %s*\n", r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&sb, "*Last Updated: %s*\n", r.UpdatedAt.Format("2006-01-02 15:04"))

	return sb.String()
}
