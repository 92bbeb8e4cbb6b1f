package menu

import (
	"context"
	"fmt"

	"kitchen-companion/internal/export"
	"kitchen-companion/internal/shopping"
)

func (m *Menu) shoppingMenu(ctx context.Context) {
	for {
		m.title("Shopping Lists")
		fmt.Fprintln(m.out, "1. Create a list")
		fmt.Fprintln(m.out, "2. Show lists")
		fmt.Fprintln(m.out, "3. View a list")
		fmt.Fprintln(m.out, "4. Add an item")
		fmt.Fprintln(m.out, "5. Remove an item")
		fmt.Fprintln(m.out, "6. Mark an item purchased")
		fmt.Fprintln(m.out, "7. Add ingredients for a meal")
		fmt.Fprintln(m.out, "8. Organize into categories")
		fmt.Fprintln(m.out, "9. Export to markdown")
		fmt.Fprintln(m.out, "10. Delete a list")
		fmt.Fprintln(m.out, "0. Back")

		choice, ok := m.promptChoice(10)
		if !ok {
			return
		}
		switch choice {
		case 0:
			return
		case 1:
			m.createList(ctx)
		case 2:
			m.showListNames(ctx)
		case 3:
			m.viewList(ctx)
		case 4:
			m.addListItem(ctx)
		case 5:
			m.removeListItem(ctx)
		case 6:
			m.markPurchased(ctx)
		case 7:
			m.addMealIngredients(ctx)
		case 8:
			m.organizeList(ctx)
		case 9:
			m.exportList(ctx)
		case 10:
			m.deleteList(ctx)
		}
	}
}

// pickList loads a list by name, reporting when it does not exist.
func (m *Menu) pickList(ctx context.Context) (*shopping.ShoppingList, bool) {
	name, ok := m.promptRequired("List name:")
	if !ok {
		return nil, false
	}
	list, err := m.lists.Load(ctx, name)
	if err != nil {
		m.fail(err)
		return nil, false
	}
	if list == nil {
		m.warn(fmt.Sprintf("No list named %q.", name))
		return nil, false
	}
	return list, true
}

func (m *Menu) createList(ctx context.Context) {
	name, ok := m.promptRequired("Name for the new list:")
	if !ok {
		return
	}
	existing, err := m.lists.Load(ctx, name)
	if err != nil {
		m.fail(err)
		return
	}
	if existing != nil {
		m.warn(fmt.Sprintf("A list named %q already exists.", name))
		return
	}

	list := shopping.NewList(name)
	m.muted("Add items. Enter a blank name or 'done' to finish.")
	for {
		itemName, ok := m.prompt("Item name:")
		if !ok || itemName == "" || itemName == "done" {
			break
		}
		quantity, ok := m.promptFloat("Quantity (default 1):", 1)
		if !ok {
			break
		}
		item := shopping.NewItem(itemName, quantity)
		if err := item.Validate(); err != nil {
			m.warn(err.Error())
			continue
		}
		list.AddItem(item)
	}

	if err := m.lists.Save(ctx, list); err != nil {
		m.fail(err)
		return
	}
	m.ok(fmt.Sprintf("Created %q with %d items.", list.Name, len(list.Items)))
}

func (m *Menu) showListNames(ctx context.Context) {
	names, err := m.lists.Names(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	if len(names) == 0 {
		m.muted("No shopping lists yet.")
		return
	}
	m.panel(names)
}

func (m *Menu) viewList(ctx context.Context) {
	list, ok := m.pickList(ctx)
	if !ok {
		return
	}
	fmt.Fprintln(m.out, export.Preview(list.Markdown()))
}

func (m *Menu) addListItem(ctx context.Context) {
	list, ok := m.pickList(ctx)
	if !ok {
		return
	}
	name, ok := m.promptRequired("Item name:")
	if !ok {
		return
	}
	quantity, ok := m.promptFloat("Quantity (default 1):", 1)
	if !ok {
		return
	}
	unit, ok := m.prompt("Unit (optional):")
	if !ok {
		return
	}

	item := shopping.NewItem(name, quantity)
	item.Unit = unit
	if err := item.Validate(); err != nil {
		m.warn(err.Error())
		return
	}
	list.AddItem(item)
	if err := m.lists.Save(ctx, list); err != nil {
		m.fail(err)
		return
	}
	m.ok(fmt.Sprintf("Added %s to %q.", item.Name, list.Name))
}

func (m *Menu) removeListItem(ctx context.Context) {
	list, ok := m.pickList(ctx)
	if !ok {
		return
	}
	name, ok := m.promptRequired("Item to remove:")
	if !ok {
		return
	}
	if !list.RemoveItem(name) {
		m.warn(fmt.Sprintf("No item named %q on %q.", name, list.Name))
		return
	}
	if err := m.lists.Save(ctx, list); err != nil {
		m.fail(err)
		return
	}
	m.ok(fmt.Sprintf("Removed %s from %q.", name, list.Name))
}

func (m *Menu) markPurchased(ctx context.Context) {
	list, ok := m.pickList(ctx)
	if !ok {
		return
	}
	name, ok := m.promptRequired("Item purchased:")
	if !ok {
		return
	}
	if !list.MarkPurchased(name, true) {
		m.warn(fmt.Sprintf("No item named %q on %q.", name, list.Name))
		return
	}
	if err := m.lists.Save(ctx, list); err != nil {
		m.fail(err)
		return
	}
	m.ok(fmt.Sprintf("Marked %s as purchased.", name))
}

// addMealIngredients asks the model for a meal's ingredients, converts
// them to shopping quantities and appends them to a list.
func (m *Menu) addMealIngredients(ctx context.Context) {
	list, ok := m.pickList(ctx)
	if !ok {
		return
	}
	meal, ok := m.promptRequired("Meal to shop for:")
	if !ok {
		return
	}

	ingredients, meta, err := m.chef.GenerateIngredientList(ctx, meal)
	m.record(ctx, meta)
	if err != nil {
		m.fail(err)
		return
	}

	items, meta, err := m.chef.ConvertToShoppingQuantities(ctx, ingredients)
	m.record(ctx, meta)
	if err != nil {
		m.warn("Could not convert quantities, using one of each: " + err.Error())
	}

	for _, item := range items {
		list.AddItem(item)
	}
	if err := m.lists.Save(ctx, list); err != nil {
		m.fail(err)
		return
	}
	m.ok(fmt.Sprintf("Added %d items for %s to %q.", len(items), meal, list.Name))
}

func (m *Menu) organizeList(ctx context.Context) {
	list, ok := m.pickList(ctx)
	if !ok {
		return
	}
	if len(list.Items) == 0 {
		m.muted("The list is empty.")
		return
	}

	meta, err := m.chef.OrganizeList(ctx, list)
	m.record(ctx, meta)
	if err != nil {
		m.fail(err)
		return
	}
	if err := m.lists.Save(ctx, list); err != nil {
		m.fail(err)
		return
	}
	m.ok(fmt.Sprintf("Organized %q into %d categories.", list.Name, len(list.Categories())))
}

func (m *Menu) exportList(ctx context.Context) {
	list, ok := m.pickList(ctx)
	if !ok {
		return
	}
	path, err := m.exporter.ShoppingList(list)
	if err != nil {
		m.fail(err)
		return
	}
	m.ok("Exported to " + path)
}

func (m *Menu) deleteList(ctx context.Context) {
	name, ok := m.promptRequired("List to delete:")
	if !ok {
		return
	}
	deleted, err := m.lists.Delete(ctx, name)
	if err != nil {
		m.fail(err)
		return
	}
	if !deleted {
		m.warn(fmt.Sprintf("No list named %q.", name))
		return
	}
	m.ok(fmt.Sprintf("Deleted %q.", name))
}
