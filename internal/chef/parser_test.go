package chef

import (
	"strings"
	"testing"
)

const pancakeResponse = `Description: Fluffy weekend pancakes.

Ingredients:
{"name": "flour", "quantity": "2 cups", "category": "Pantry"}
{"name": "milk", "quantity": "1 cup", "category": "Dairy", "notes": "whole milk"}

Instructions:
1. Whisk the dry ingredients.
2. Fold in the milk.
3. Cook on a hot griddle.

Prep Time: 10 minutes

Cook Time: 15 minutes

Servings: 4 people

Notes: Rest the batter.`

func TestParseRecipe(t *testing.T) {
	rec, err := parseRecipe("Pancakes", pancakeResponse)
	if err != nil {
		t.Fatalf("parseRecipe failed: %v", err)
	}

	if rec.Name != "Pancakes" {
		t.Errorf("Expected name Pancakes, got %q", rec.Name)
	}
	if rec.Description != "Fluffy weekend pancakes." {
		t.Errorf("Unexpected description: %q", rec.Description)
	}
	if len(rec.Ingredients) != 2 {
		t.Fatalf("Expected 2 ingredients, got %d", len(rec.Ingredients))
	}
	if rec.Ingredients[1].Notes != "whole milk" {
		t.Errorf("Expected notes on the milk, got %q", rec.Ingredients[1].Notes)
	}
	if len(rec.Instructions) != 3 {
		t.Fatalf("Expected 3 instructions, got %d", len(rec.Instructions))
	}
	if rec.Instructions[0] != "Whisk the dry ingredients." {
		t.Errorf("Expected numbering stripped, got %q", rec.Instructions[0])
	}
	if rec.PrepTime != 10 || rec.CookTime != 15 || rec.Servings != 4 {
		t.Errorf("Unexpected times/servings: %d/%d/%d", rec.PrepTime, rec.CookTime, rec.Servings)
	}
	if rec.Notes != "Rest the batter." {
		t.Errorf("Unexpected notes: %q", rec.Notes)
	}
}

func TestParseRecipeSectionRoutingNeedsColon(t *testing.T) {
	// Body text mentioning ingredients or instructions without a colon
	// must not pull a section into the wrong parser.
	response := `Description: A dish whose instructions mention ingredients.

Ingredients:
{"name": "flour", "quantity": "2 cups"}
{"name": "milk", "quantity": "1 cup"}

Instructions:
1. Whisk the dry ingredients.
2. Fold in the milk.
3. Follow the instructions on the bag.`

	rec, err := parseRecipe("Test", response)
	if err != nil {
		t.Fatalf("parseRecipe failed: %v", err)
	}
	if len(rec.Ingredients) != 2 {
		t.Errorf("Expected 2 ingredients, got %d", len(rec.Ingredients))
	}
	if len(rec.Instructions) != 3 {
		t.Errorf("Expected 3 instructions, got %d", len(rec.Instructions))
	}
}

func TestParseRecipeMissingInstructions(t *testing.T) {
	response := `Description: A dish.

Ingredients:
{"name": "flour", "quantity": "2 cups"}`

	_, err := parseRecipe("Test", response)
	if err == nil {
		t.Fatal("Expected an error for a response without instructions")
	}
	if !strings.Contains(err.Error(), "instructions") {
		t.Errorf("Expected the error to name the missing section, got %v", err)
	}
}

func TestParseRecipeCodeFenced(t *testing.T) {
	fenced := "```\n" + pancakeResponse + "\n```"
	rec, err := parseRecipe("Pancakes", fenced)
	if err != nil {
		t.Fatalf("parseRecipe failed on fenced response: %v", err)
	}
	if len(rec.Ingredients) != 2 {
		t.Errorf("Expected 2 ingredients, got %d", len(rec.Ingredients))
	}
}

func TestParseRecipeUnparsableTimes(t *testing.T) {
	response := `Description: A dish.

Ingredients:
{"name": "flour", "quantity": "2 cups"}

Instructions:
1. Cook.

Prep Time: quick

Servings: a few`

	rec, err := parseRecipe("Test", response)
	if err != nil {
		t.Fatalf("parseRecipe failed: %v", err)
	}
	if rec.PrepTime != 0 {
		t.Errorf("Expected unparsable prep time to fall back to 0, got %d", rec.PrepTime)
	}
	if rec.Servings != 4 {
		t.Errorf("Expected unparsable servings to fall back to 4, got %d", rec.Servings)
	}
}

func TestParseNamedRecipe(t *testing.T) {
	response := "Recipe Name: Veggie Stir Fry\n\n" + pancakeResponse
	rec, err := parseNamedRecipe(response)
	if err != nil {
		t.Fatalf("parseNamedRecipe failed: %v", err)
	}
	if rec.Name != "Veggie Stir Fry" {
		t.Errorf("Expected the response name, got %q", rec.Name)
	}

	if _, err := parseNamedRecipe(pancakeResponse); err == nil {
		t.Error("Expected an error when the Recipe Name section is missing")
	}
}

func TestParseIngredientsSkipsBadLines(t *testing.T) {
	body := `{"name": "flour", "quantity": "2 cups"}
not json at all
{"name": "", "quantity": "1 cup"}
{"name": "sugar", "quantity": "3 tbsp", "category": "baking"}`

	ingredients := parseIngredients(body)
	if len(ingredients) != 2 {
		t.Fatalf("Expected 2 valid ingredients, got %d", len(ingredients))
	}
	if ingredients[0].Category != "Other" {
		t.Errorf("Expected default category Other, got %q", ingredients[0].Category)
	}
	if ingredients[1].Category != "Other" {
		t.Errorf("Expected unknown category coerced to Other, got %q", ingredients[1].Category)
	}
}

func TestParseShoppingItems(t *testing.T) {
	body := `{"name": "flour", "quantity": 1, "unit": "bag", "category": "Pantry"}
{"name": "milk"}
{"quantity": 2}`

	items := parseShoppingItems(body)
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].Unit != "bag" || items[0].Category != "Pantry" {
		t.Errorf("Unexpected first item: %+v", items[0])
	}
	if items[1].Quantity != 1 || items[1].Unit != "pieces" {
		t.Errorf("Expected quantity and unit defaults, got %+v", items[1])
	}
}

func TestParseCategoryBlocks(t *testing.T) {
	content := `Produce:
- Tomatoes
- Onions

Dairy:
- Milk

Snacks:
- Chips`

	blocks := parseCategoryBlocks(content)
	if len(blocks) != 3 {
		t.Fatalf("Expected 3 blocks, got %d", len(blocks))
	}
	if blocks[0].category != "Produce" || len(blocks[0].items) != 2 {
		t.Errorf("Unexpected first block: %+v", blocks[0])
	}
	// Unknown category names coerce to Other.
	if blocks[2].category != "Other" {
		t.Errorf("Expected Snacks coerced to Other, got %q", blocks[2].category)
	}
}

func TestCategoryFor(t *testing.T) {
	blocks := []categoryBlock{
		{category: "Produce", items: []string{"cherry tomatoes"}},
		{category: "Dairy", items: []string{"milk"}},
	}

	tests := []struct {
		name string
		want string
	}{
		{"tomatoes", "Produce"},
		{"Cherry Tomatoes And Basil", "Produce"},
		{"Milk", "Dairy"},
		{"bread", "Other"},
	}
	for _, tt := range tests {
		if got := categoryFor(tt.name, blocks); got != tt.want {
			t.Errorf("categoryFor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestParseDigits(t *testing.T) {
	if n, err := parseDigits("30 minutes"); err != nil || n != 30 {
		t.Errorf("Expected 30, got %d (%v)", n, err)
	}
	if _, err := parseDigits("about an hour"); err == nil {
		t.Error("Expected an error for a string without digits")
	}
}
