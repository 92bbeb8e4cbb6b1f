package menu

import (
	"context"
	"fmt"
	"sort"

	"kitchen-companion/internal/export"
	"kitchen-companion/internal/pantry"
	"kitchen-companion/internal/recipe"
)

func (m *Menu) recipeMenu(ctx context.Context) {
	for {
		m.title("Recipes")
		fmt.Fprintln(m.out, "1. Generate a recipe for a meal")
		fmt.Fprintln(m.out, "2. Generate from what is in the pantry")
		fmt.Fprintln(m.out, "3. Generate by meal type")
		fmt.Fprintln(m.out, "4. Import from a URL")
		fmt.Fprintln(m.out, "5. Show recipes")
		fmt.Fprintln(m.out, "6. View a recipe")
		fmt.Fprintln(m.out, "7. Check pantry stock for a recipe")
		fmt.Fprintln(m.out, "8. Export to markdown")
		fmt.Fprintln(m.out, "9. Delete a recipe")
		fmt.Fprintln(m.out, "0. Back")

		choice, ok := m.promptChoice(9)
		if !ok {
			return
		}
		switch choice {
		case 0:
			return
		case 1:
			m.generateRecipe(ctx)
		case 2:
			m.generateFromPantry(ctx)
		case 3:
			m.generateByMealType(ctx)
		case 4:
			m.importRecipe(ctx)
		case 5:
			m.showRecipeNames(ctx)
		case 6:
			m.viewRecipe(ctx)
		case 7:
			m.checkStock(ctx)
		case 8:
			m.exportRecipe(ctx)
		case 9:
			m.deleteRecipe(ctx)
		}
	}
}

func (m *Menu) pickRecipe(ctx context.Context) (*recipe.Recipe, bool) {
	name, ok := m.promptRequired("Recipe name:")
	if !ok {
		return nil, false
	}
	rec, err := m.recipes.Load(ctx, name)
	if err != nil {
		m.fail(err)
		return nil, false
	}
	if rec == nil {
		m.warn(fmt.Sprintf("No recipe named %q.", name))
		return nil, false
	}
	return rec, true
}

// offerSave previews a generated recipe and saves it on confirmation.
func (m *Menu) offerSave(ctx context.Context, rec *recipe.Recipe) {
	fmt.Fprintln(m.out, export.Preview(rec.Markdown()))

	answer, ok := m.prompt("Save this recipe? (y/n)")
	if !ok || answer != "y" {
		m.muted("Not saved.")
		return
	}
	if err := rec.Validate(); err != nil {
		m.fail(err)
		return
	}
	if err := m.recipes.Save(ctx, rec); err != nil {
		m.fail(err)
		return
	}
	m.ok(fmt.Sprintf("Saved %q.", rec.Name))
}

func (m *Menu) generateRecipe(ctx context.Context) {
	meal, ok := m.promptRequired("What do you want to cook?")
	if !ok {
		return
	}

	rec, meta, err := m.chef.GenerateRecipe(ctx, meal)
	m.record(ctx, meta)
	if err != nil {
		m.fail(err)
		return
	}
	m.offerSave(ctx, rec)
}

func (m *Menu) generateFromPantry(ctx context.Context) {
	entries, err := m.pantry.List(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	if len(entries) == 0 {
		m.muted("The pantry is empty.")
		return
	}

	rec, meta, err := m.chef.GenerateRecipeFromPantry(ctx, entries)
	m.record(ctx, meta)
	if err != nil {
		m.fail(err)
		return
	}
	m.offerSave(ctx, rec)
}

func (m *Menu) generateByMealType(ctx context.Context) {
	mealType, ok := m.promptRequired("Meal type (breakfast, lunch, dinner, snack):")
	if !ok {
		return
	}

	rec, meta, err := m.chef.GenerateRecipeByMealType(ctx, mealType)
	m.record(ctx, meta)
	if err != nil {
		m.fail(err)
		return
	}
	m.offerSave(ctx, rec)
}

func (m *Menu) importRecipe(ctx context.Context) {
	url, ok := m.promptRequired("Recipe URL:")
	if !ok {
		return
	}

	rec, meta, err := m.importer.ImportURL(ctx, url)
	m.record(ctx, meta)
	if err != nil {
		m.fail(err)
		return
	}
	m.offerSave(ctx, rec)
}

func (m *Menu) showRecipeNames(ctx context.Context) {
	names, err := m.recipes.Names(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	if len(names) == 0 {
		m.muted("No recipes yet.")
		return
	}
	m.panel(names)
}

func (m *Menu) viewRecipe(ctx context.Context) {
	rec, ok := m.pickRecipe(ctx)
	if !ok {
		return
	}
	fmt.Fprintln(m.out, export.Preview(rec.Markdown()))
}

func (m *Menu) checkStock(ctx context.Context) {
	rec, ok := m.pickRecipe(ctx)
	if !ok {
		return
	}

	statuses, err := pantry.CheckStock(ctx, m.pantry, rec)
	if err != nil {
		m.fail(err)
		return
	}

	names := make([]string, 0, len(statuses))
	for name := range statuses {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	missing := 0
	for _, name := range names {
		s := statuses[name]
		mark := "✔"
		if !s.Sufficient {
			mark = "✖"
			missing++
		}
		lines = append(lines, fmt.Sprintf("%s %s: need %.4g, have %.4g %s", mark, name, s.Required, s.Available, s.Unit))
	}
	m.panel(lines)

	if missing == 0 {
		m.ok("You have everything for " + rec.Name + ".")
	} else {
		m.warn(fmt.Sprintf("%d ingredients are short for %s.", missing, rec.Name))
	}
}

func (m *Menu) exportRecipe(ctx context.Context) {
	rec, ok := m.pickRecipe(ctx)
	if !ok {
		return
	}
	path, err := m.exporter.Recipe(rec)
	if err != nil {
		m.fail(err)
		return
	}
	m.ok("Exported to " + path)
}

func (m *Menu) deleteRecipe(ctx context.Context) {
	name, ok := m.promptRequired("Recipe to delete:")
	if !ok {
		return
	}
	deleted, err := m.recipes.Delete(ctx, name)
	if err != nil {
		m.fail(err)
		return
	}
	if !deleted {
		m.warn(fmt.Sprintf("No recipe named %q.", name))
		return
	}
	m.ok(fmt.Sprintf("Deleted %q.", name))
}
