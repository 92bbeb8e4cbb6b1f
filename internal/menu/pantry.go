package menu

import (
	"context"
	"fmt"

	"kitchen-companion/internal/export"
	"kitchen-companion/internal/pantry"
)

func (m *Menu) pantryMenu(ctx context.Context) {
	for {
		m.title("Pantry")
		fmt.Fprintln(m.out, "1. Show the pantry")
		fmt.Fprintln(m.out, "2. Add or update an item")
		fmt.Fprintln(m.out, "3. Remove an item")
		fmt.Fprintln(m.out, "4. Export to markdown")
		fmt.Fprintln(m.out, "0. Back")

		choice, ok := m.promptChoice(4)
		if !ok {
			return
		}
		switch choice {
		case 0:
			return
		case 1:
			m.showPantry(ctx)
		case 2:
			m.upsertPantryEntry(ctx)
		case 3:
			m.removePantryEntry(ctx)
		case 4:
			m.exportPantry(ctx)
		}
	}
}

func (m *Menu) showPantry(ctx context.Context) {
	entries, err := m.pantry.List(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	if len(entries) == 0 {
		m.muted("The pantry is empty.")
		return
	}
	fmt.Fprintln(m.out, export.Preview(pantry.Markdown(entries)))
}

func (m *Menu) upsertPantryEntry(ctx context.Context) {
	name, ok := m.promptRequired("Item name:")
	if !ok {
		return
	}
	quantity, ok := m.promptFloat("Quantity (default 1):", 1)
	if !ok {
		return
	}
	unit, ok := m.promptRequired("Unit (e.g. kg, pieces):")
	if !ok {
		return
	}
	expiry, ok := m.promptDate("Expiry date (YYYY-MM-DD, optional):")
	if !ok {
		return
	}

	entry := pantry.NewEntry(name, quantity, unit)
	entry.ExpiryDate = expiry
	if err := entry.Validate(); err != nil {
		m.warn(err.Error())
		return
	}
	if err := m.pantry.Save(ctx, entry); err != nil {
		m.fail(err)
		return
	}
	m.ok(fmt.Sprintf("Stored %s: %.4g %s.", entry.Name, entry.Quantity, entry.Unit))
}

func (m *Menu) removePantryEntry(ctx context.Context) {
	name, ok := m.promptRequired("Item to remove:")
	if !ok {
		return
	}
	deleted, err := m.pantry.Delete(ctx, name)
	if err != nil {
		m.fail(err)
		return
	}
	if !deleted {
		m.warn(fmt.Sprintf("No pantry item named %q.", name))
		return
	}
	m.ok(fmt.Sprintf("Removed %s.", name))
}

func (m *Menu) exportPantry(ctx context.Context) {
	entries, err := m.pantry.List(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	path, err := m.exporter.Pantry(entries)
	if err != nil {
		m.fail(err)
		return
	}
	m.ok("Exported to " + path)
}
