// Package importer fetches a recipe page, strips it down to text and has
// the language model extract a structured recipe from it.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"kitchen-companion/internal/chef"
	"kitchen-companion/internal/llm"
	"kitchen-companion/internal/recipe"
	"kitchen-companion/internal/shared"
)

const extractMaxTokens = 2000

// Importer turns recipe URLs into stored recipes.
type Importer struct {
	textGen    llm.TextGenerator
	httpClient *http.Client
}

// New creates an Importer with a 15 second fetch timeout.
func New(textGen llm.TextGenerator) *Importer {
	return &Importer{
		textGen:    textGen,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// extractedRecipe is the JSON shape the model is asked to return.
type extractedRecipe struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Ingredients []struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Category string `json:"category"`
		Notes    string `json:"notes"`
	} `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     int      `json:"prep_time_minutes"`
	CookTime     int      `json:"cook_time_minutes"`
	Servings     int      `json:"servings"`
	Notes        string   `json:"notes"`
}

// ImportURL fetches the URL and extracts a recipe from its content.
func (imp *Importer) ImportURL(ctx context.Context, url string) (*recipe.Recipe, shared.CallMeta, error) {
	content, err := imp.fetchAndCleanHTML(ctx, url)
	if err != nil {
		return nil, shared.CallMeta{}, fmt.Errorf("failed to fetch content: %w", err)
	}

	prompt := fmt.Sprintf(`
You are a recipe extraction expert. Extract the recipe from the following
page text. Return the result strictly as a JSON object with this structure:
{
  "name": "Recipe Name",
  "description": "One or two sentences",
  "ingredients": [{"name": "item", "quantity": "2 cups", "category": "Produce|Dairy|Meat|Pantry|Spices|Other", "notes": ""}, ...],
  "instructions": ["Step 1 description", "Step 2 description", ...],
  "prep_time_minutes": 30,
  "cook_time_minutes": 20,
  "servings": 4,
  "notes": "Optional tips"
}

Page text:
%s
`, content)

	start := time.Now()
	resp, err := imp.textGen.GenerateContent(ctx, llm.Request{
		Prompt:    prompt,
		MaxTokens: extractMaxTokens,
	})
	meta := shared.CallMeta{
		Operation: "import_recipe",
		Usage:     resp.Usage,
		Latency:   time.Since(start),
	}
	if err != nil {
		return nil, meta, fmt.Errorf("extraction failed: %w", err)
	}

	var extracted extractedRecipe
	body := chef.StripCodeFences(resp.Content)
	if err := json.Unmarshal([]byte(body), &extracted); err != nil {
		return nil, meta, fmt.Errorf("failed to parse extraction response: %w. Response: %s", err, resp.Content)
	}
	if extracted.Name == "" || len(extracted.Ingredients) == 0 || len(extracted.Instructions) == 0 {
		return nil, meta, fmt.Errorf("extraction response is missing name, ingredients or instructions")
	}

	rec := recipe.New(extracted.Name)
	rec.Description = extracted.Description
	rec.Instructions = extracted.Instructions
	rec.PrepTime = extracted.PrepTime
	rec.CookTime = extracted.CookTime
	if extracted.Servings > 0 {
		rec.Servings = extracted.Servings
	}
	if extracted.Notes != "" {
		rec.Notes = extracted.Notes
	} else {
		rec.Notes = "Imported from " + url
	}
	for _, ing := range extracted.Ingredients {
		if ing.Name == "" {
			continue
		}
		rec.AddIngredient(recipe.RecipeIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Category: ing.Category,
			Notes:    ing.Notes,
		})
	}

	return rec, meta, nil
}

func (imp *Importer) fetchAndCleanHTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := imp.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	// Remove noise to save model tokens.
	doc.Find("script, style, nav, footer, iframe, ads, .ads, #ads").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	return doc.Find("body").Text(), nil
}
