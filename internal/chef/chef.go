// Package chef wraps the language model with kitchen operations: recipe
// generation, ingredient listing, shopping list categorization and
// quantity conversion. Every operation returns call metadata so the
// caller can record token usage.
package chef

import (
	"context"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"kitchen-companion/internal/llm"
	"kitchen-companion/internal/pantry"
	"kitchen-companion/internal/recipe"
	"kitchen-companion/internal/shared"
	"kitchen-companion/internal/shopping"
)

// Sampling settings per operation kind. Creative generation runs warmer
// than the mechanical categorize and convert calls.
const (
	recipeTemperature  = 0.7
	utilityTemperature = 0.3

	recipeMaxTokens   = 1500
	organizeMaxTokens = 500
	convertMaxTokens  = 1000
)

var titleCaser = cases.Title(language.English)

// Chef performs model-backed kitchen operations.
type Chef struct {
	textGen llm.TextGenerator
}

// New creates a Chef on top of any text generator.
func New(textGen llm.TextGenerator) *Chef {
	return &Chef{textGen: textGen}
}

func (c *Chef) call(ctx context.Context, operation, prompt string, temperature float32, maxTokens int) (string, shared.CallMeta, error) {
	start := time.Now()
	resp, err := c.textGen.GenerateContent(ctx, llm.Request{
		Prompt:      prompt,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	meta := shared.CallMeta{
		Operation: operation,
		Usage:     resp.Usage,
		Latency:   time.Since(start),
	}
	if err != nil {
		return "", meta, err
	}
	return resp.Content, meta, nil
}

// GenerateRecipe creates a full recipe for a named meal.
func (c *Chef) GenerateRecipe(ctx context.Context, meal string) (*recipe.Recipe, shared.CallMeta, error) {
	prompt, err := buildGenerateRecipePrompt(meal)
	if err != nil {
		return nil, shared.CallMeta{}, err
	}

	content, meta, err := c.call(ctx, "generate_recipe", prompt, recipeTemperature, recipeMaxTokens)
	if err != nil {
		return nil, meta, err
	}

	rec, err := parseRecipe(titleCaser.String(meal), content)
	if err != nil {
		return nil, meta, err
	}
	return rec, meta, nil
}

// GenerateRecipeFromPantry creates a recipe limited to what is on hand.
// The model names the dish, so the response must carry a Recipe Name
// section.
func (c *Chef) GenerateRecipeFromPantry(ctx context.Context, entries []pantry.Entry) (*recipe.Recipe, shared.CallMeta, error) {
	prompt, err := buildPantryRecipePrompt(entries)
	if err != nil {
		return nil, shared.CallMeta{}, err
	}

	content, meta, err := c.call(ctx, "pantry_recipe", prompt, recipeTemperature, recipeMaxTokens)
	if err != nil {
		return nil, meta, err
	}

	rec, err := parseNamedRecipe(content)
	if err != nil {
		return nil, meta, err
	}
	return rec, meta, nil
}

// GenerateRecipeByMealType creates a recipe for a meal type such as
// "breakfast", letting the model pick the dish.
func (c *Chef) GenerateRecipeByMealType(ctx context.Context, mealType string) (*recipe.Recipe, shared.CallMeta, error) {
	prompt, err := buildMealTypePrompt(mealType)
	if err != nil {
		return nil, shared.CallMeta{}, err
	}

	content, meta, err := c.call(ctx, "meal_type_recipe", prompt, recipeTemperature, recipeMaxTokens)
	if err != nil {
		return nil, meta, err
	}

	rec, err := parseNamedRecipe(content)
	if err != nil {
		return nil, meta, err
	}
	return rec, meta, nil
}

// GenerateIngredientList returns just the ingredients needed for a meal,
// for adding to a shopping list without the full recipe.
func (c *Chef) GenerateIngredientList(ctx context.Context, meal string) ([]recipe.RecipeIngredient, shared.CallMeta, error) {
	prompt, err := buildIngredientListPrompt(meal)
	if err != nil {
		return nil, shared.CallMeta{}, err
	}

	content, meta, err := c.call(ctx, "ingredient_list", prompt, recipeTemperature, convertMaxTokens)
	if err != nil {
		return nil, meta, err
	}

	ingredients := parseIngredients(StripCodeFences(content))
	if len(ingredients) == 0 {
		return nil, meta, errEmptyIngredients
	}
	return ingredients, meta, nil
}

// OrganizeList asks the model to sort the list's items into categories
// and applies the result in place. On error the list is left untouched.
func (c *Chef) OrganizeList(ctx context.Context, list *shopping.ShoppingList) (shared.CallMeta, error) {
	names := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		names = append(names, item.Name)
	}

	prompt, err := buildOrganizePrompt(names)
	if err != nil {
		return shared.CallMeta{}, err
	}

	content, meta, err := c.call(ctx, "organize_list", prompt, utilityTemperature, organizeMaxTokens)
	if err != nil {
		return meta, err
	}

	blocks := parseCategoryBlocks(content)
	for i := range list.Items {
		list.Items[i].Category = categoryFor(list.Items[i].Name, blocks)
		list.Items[i].UpdatedAt = time.Now()
	}
	list.UpdatedAt = time.Now()
	return meta, nil
}

// ConvertToShoppingQuantities turns recipe ingredients with free-text
// quantities into shopping items with numeric amounts. When the model
// call fails the ingredients are converted one-to-one with a quantity of
// one so the caller still gets a usable list, alongside the error.
func (c *Chef) ConvertToShoppingQuantities(ctx context.Context, ingredients []recipe.RecipeIngredient) ([]shopping.ShoppingItem, shared.CallMeta, error) {
	prompt, err := buildConvertPrompt(ingredients)
	if err != nil {
		return nil, shared.CallMeta{}, err
	}

	content, meta, err := c.call(ctx, "convert_quantities", prompt, utilityTemperature, convertMaxTokens)
	if err != nil {
		return fallbackItems(ingredients), meta, err
	}

	items := parseShoppingItems(StripCodeFences(content))
	if len(items) == 0 {
		return fallbackItems(ingredients), meta, errEmptyConversion
	}
	return items, meta, nil
}

// fallbackItems is the degraded conversion used when the model is
// unavailable: one piece of everything, keeping the original quantity in
// the notes.
func fallbackItems(ingredients []recipe.RecipeIngredient) []shopping.ShoppingItem {
	items := make([]shopping.ShoppingItem, 0, len(ingredients))
	for _, ing := range ingredients {
		item := shopping.NewItem(ing.Name, 1)
		item.Unit = "pieces"
		item.Category = normalizeCategory(ing.Category)
		item.Notes = ing.Quantity
		items = append(items, item)
	}
	return items
}
