package shopping

import (
	"strings"
	"testing"
)

func TestAddAndRemoveItem(t *testing.T) {
	list := NewList("Weekly Groceries")
	list.AddItem(NewItem("Milk", 1))
	list.AddItem(NewItem("Bread", 2))

	if len(list.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(list.Items))
	}

	if !list.RemoveItem("milk") {
		t.Error("Expected case-insensitive removal of 'Milk' to succeed")
	}
	if len(list.Items) != 1 {
		t.Errorf("Expected 1 item after removal, got %d", len(list.Items))
	}
	if list.RemoveItem("milk") {
		t.Error("Expected removing a missing item to return false")
	}
}

func TestMarkPurchased(t *testing.T) {
	list := NewList("Groceries")
	list.AddItem(NewItem("Milk", 1))

	if !list.MarkPurchased("milk", true) {
		t.Error("Expected case-insensitive mark of 'Milk' to succeed")
	}
	if !list.Items[0].Purchased {
		t.Error("Expected the item to be marked purchased")
	}
	if list.MarkPurchased("bread", true) {
		t.Error("Expected marking a missing item to return false")
	}
}

func TestItemValidate(t *testing.T) {
	if err := NewItem("Milk", 1).Validate(); err != nil {
		t.Errorf("Expected valid item, got %v", err)
	}
	if err := NewItem("  ", 1).Validate(); err == nil {
		t.Error("Expected blank name to fail validation")
	}
	if err := NewItem("Milk", -1).Validate(); err == nil {
		t.Error("Expected negative quantity to fail validation")
	}
}

func TestItemsByCategory(t *testing.T) {
	list := NewList("Groceries")
	milk := NewItem("Milk", 1)
	milk.Category = "Dairy"
	cheese := NewItem("Cheese", 1)
	cheese.Category = "Dairy"
	apple := NewItem("Apple", 3)
	apple.Category = "Produce"
	list.AddItem(milk)
	list.AddItem(cheese)
	list.AddItem(apple)

	byCategory := list.ItemsByCategory()
	if len(byCategory["Dairy"]) != 2 {
		t.Errorf("Expected 2 dairy items, got %d", len(byCategory["Dairy"]))
	}
	if len(byCategory["Produce"]) != 1 {
		t.Errorf("Expected 1 produce item, got %d", len(byCategory["Produce"]))
	}

	categories := list.Categories()
	if len(categories) != 2 || categories[0] != "Dairy" || categories[1] != "Produce" {
		t.Errorf("Expected sorted categories [Dairy Produce], got %v", categories)
	}
}

func TestMarkdown(t *testing.T) {
	list := NewList("Groceries")
	milk := NewItem("Milk", 0.5)
	milk.Category = "Dairy"
	milk.Unit = "gallon"
	milk.Purchased = true
	banana := NewItem("Banana", 6)
	banana.Category = "Produce"
	banana.Notes = "ripe"
	apple := NewItem("Apple", 3)
	apple.Category = "Produce"
	list.AddItem(milk)
	list.AddItem(banana)
	list.AddItem(apple)

	md := list.Markdown()

	if !strings.Contains(md, "# Groceries") {
		t.Error("Expected markdown to contain the list name heading")
	}
	for _, want := range []string{"## Dairy", "## Produce", "- [x] Milk (0.5 gallon)", "- [ ] Banana (6) - ripe", "- [ ] Apple (3)"} {
		if !strings.Contains(md, want) {
			t.Errorf("Expected markdown to contain %q\n%s", want, md)
		}
	}

	// Each item appears exactly once.
	for _, name := range []string{"Milk", "Banana", "Apple"} {
		if got := strings.Count(md, name); got != 1 {
			t.Errorf("Expected %q to appear once, got %d", name, got)
		}
	}

	// Alphabetical within the Produce group.
	if strings.Index(md, "Apple") > strings.Index(md, "Banana") {
		t.Error("Expected Apple before Banana within the Produce group")
	}
}
