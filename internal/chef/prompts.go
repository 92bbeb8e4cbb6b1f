package chef

import (
	"bytes"
	_ "embed"
	"text/template"

	"kitchen-companion/internal/pantry"
	"kitchen-companion/internal/recipe"
)

//go:embed generate_recipe_prompt.md
var generateRecipePrompt string

//go:embed pantry_recipe_prompt.md
var pantryRecipePrompt string

//go:embed meal_type_prompt.md
var mealTypePrompt string

//go:embed ingredient_list_prompt.md
var ingredientListPrompt string

//go:embed organize_prompt.md
var organizePrompt string

//go:embed convert_prompt.md
var convertPrompt string

func buildPrompt(name, text string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildGenerateRecipePrompt(meal string) (string, error) {
	return buildPrompt("GenerateRecipe", generateRecipePrompt, struct{ Meal string }{meal})
}

func buildPantryRecipePrompt(entries []pantry.Entry) (string, error) {
	return buildPrompt("PantryRecipe", pantryRecipePrompt, struct{ Entries []pantry.Entry }{entries})
}

func buildMealTypePrompt(mealType string) (string, error) {
	return buildPrompt("MealType", mealTypePrompt, struct{ MealType string }{mealType})
}

func buildIngredientListPrompt(meal string) (string, error) {
	return buildPrompt("IngredientList", ingredientListPrompt, struct{ Meal string }{meal})
}

func buildOrganizePrompt(items []string) (string, error) {
	return buildPrompt("Organize", organizePrompt, struct{ Items []string }{items})
}

func buildConvertPrompt(ingredients []recipe.RecipeIngredient) (string, error) {
	return buildPrompt("Convert", convertPrompt, struct{ Ingredients []recipe.RecipeIngredient }{ingredients})
}
