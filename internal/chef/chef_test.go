package chef

import (
	"context"
	"errors"
	"testing"

	"kitchen-companion/internal/llm"
	"kitchen-companion/internal/pantry"
	"kitchen-companion/internal/recipe"
	"kitchen-companion/internal/shared"
	"kitchen-companion/internal/shopping"
)

// mockTextGenerator records the last request and returns a canned
// response or error.
type mockTextGenerator struct {
	lastRequest llm.Request
	response    string
	err         error
}

func (m *mockTextGenerator) GenerateContent(ctx context.Context, req llm.Request) (llm.ContentResponse, error) {
	m.lastRequest = req
	if m.err != nil {
		return llm.ContentResponse{}, m.err
	}
	return llm.ContentResponse{
		Content: m.response,
		Usage:   shared.TokenUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
	}, nil
}

func TestGenerateRecipe(t *testing.T) {
	gen := &mockTextGenerator{response: pancakeResponse}
	chef := New(gen)

	rec, meta, err := chef.GenerateRecipe(context.Background(), "pancakes")
	if err != nil {
		t.Fatalf("GenerateRecipe failed: %v", err)
	}
	if rec.Name != "Pancakes" {
		t.Errorf("Expected the meal name title-cased, got %q", rec.Name)
	}
	if meta.Operation != "generate_recipe" {
		t.Errorf("Unexpected operation in meta: %q", meta.Operation)
	}
	if meta.Usage.TotalTokens != 30 {
		t.Errorf("Expected token usage propagated, got %+v", meta.Usage)
	}
	if gen.lastRequest.Temperature != recipeTemperature || gen.lastRequest.MaxTokens != recipeMaxTokens {
		t.Errorf("Unexpected sampling settings: %+v", gen.lastRequest)
	}
}

func TestGenerateRecipeFromPantry(t *testing.T) {
	response := "Recipe Name: Flour Soup\n\n" + pancakeResponse
	gen := &mockTextGenerator{response: response}
	chef := New(gen)

	entries := []pantry.Entry{pantry.NewEntry("flour", 1, "kg")}
	rec, _, err := chef.GenerateRecipeFromPantry(context.Background(), entries)
	if err != nil {
		t.Fatalf("GenerateRecipeFromPantry failed: %v", err)
	}
	if rec.Name != "Flour Soup" {
		t.Errorf("Expected the model-chosen name, got %q", rec.Name)
	}
}

func TestGenerateRecipeFromPantryMissingName(t *testing.T) {
	gen := &mockTextGenerator{response: pancakeResponse}
	chef := New(gen)

	_, _, err := chef.GenerateRecipeFromPantry(context.Background(), nil)
	if !errors.Is(err, errMissingName) {
		t.Errorf("Expected errMissingName, got %v", err)
	}
}

func TestGenerateIngredientList(t *testing.T) {
	gen := &mockTextGenerator{response: `{"name": "flour", "quantity": "2 cups", "category": "Pantry"}
{"name": "milk", "quantity": "1 cup", "category": "Dairy"}`}
	chef := New(gen)

	ingredients, _, err := chef.GenerateIngredientList(context.Background(), "pancakes")
	if err != nil {
		t.Fatalf("GenerateIngredientList failed: %v", err)
	}
	if len(ingredients) != 2 {
		t.Errorf("Expected 2 ingredients, got %d", len(ingredients))
	}
}

func TestOrganizeList(t *testing.T) {
	gen := &mockTextGenerator{response: `Produce:
- tomatoes

Dairy:
- milk`}
	chef := New(gen)

	list := shopping.NewList("Groceries")
	list.AddItem(shopping.NewItem("Cherry Tomatoes", 1))
	list.AddItem(shopping.NewItem("Milk", 1))
	list.AddItem(shopping.NewItem("Batteries", 1))

	meta, err := chef.OrganizeList(context.Background(), list)
	if err != nil {
		t.Fatalf("OrganizeList failed: %v", err)
	}
	if meta.Operation != "organize_list" {
		t.Errorf("Unexpected operation: %q", meta.Operation)
	}
	if list.Items[0].Category != "Produce" {
		t.Errorf("Expected Cherry Tomatoes in Produce, got %q", list.Items[0].Category)
	}
	if list.Items[1].Category != "Dairy" {
		t.Errorf("Expected Milk in Dairy, got %q", list.Items[1].Category)
	}
	if list.Items[2].Category != "Other" {
		t.Errorf("Expected unmatched item in Other, got %q", list.Items[2].Category)
	}
}

func TestOrganizeListLeavesListOnError(t *testing.T) {
	gen := &mockTextGenerator{err: errors.New("boom")}
	chef := New(gen)

	list := shopping.NewList("Groceries")
	item := shopping.NewItem("Milk", 1)
	item.Category = "Dairy"
	list.AddItem(item)

	if _, err := chef.OrganizeList(context.Background(), list); err == nil {
		t.Fatal("Expected the generator error to propagate")
	}
	if list.Items[0].Category != "Dairy" {
		t.Errorf("Expected categories untouched on error, got %q", list.Items[0].Category)
	}
}

func TestConvertToShoppingQuantities(t *testing.T) {
	gen := &mockTextGenerator{response: `{"name": "flour", "quantity": 1, "unit": "bag", "category": "Pantry"}`}
	chef := New(gen)

	ingredients := []recipe.RecipeIngredient{{Name: "flour", Quantity: "2 cups"}}
	items, _, err := chef.ConvertToShoppingQuantities(context.Background(), ingredients)
	if err != nil {
		t.Fatalf("ConvertToShoppingQuantities failed: %v", err)
	}
	if len(items) != 1 || items[0].Unit != "bag" {
		t.Errorf("Unexpected items: %+v", items)
	}
	if gen.lastRequest.Temperature != utilityTemperature {
		t.Errorf("Expected utility temperature, got %v", gen.lastRequest.Temperature)
	}
}

func TestConvertToShoppingQuantitiesFallback(t *testing.T) {
	gen := &mockTextGenerator{err: errors.New("boom")}
	chef := New(gen)

	ingredients := []recipe.RecipeIngredient{
		{Name: "flour", Quantity: "2 cups", Category: "Pantry"},
		{Name: "milk", Quantity: "1 cup", Category: "Dairy"},
	}
	items, _, err := chef.ConvertToShoppingQuantities(context.Background(), ingredients)
	if err == nil {
		t.Fatal("Expected the generator error to propagate")
	}
	if len(items) != 2 {
		t.Fatalf("Expected a fallback item per ingredient, got %d", len(items))
	}
	if items[0].Quantity != 1 || items[0].Unit != "pieces" {
		t.Errorf("Unexpected fallback item: %+v", items[0])
	}
	if items[0].Notes != "2 cups" {
		t.Errorf("Expected the original quantity kept in notes, got %q", items[0].Notes)
	}
}
