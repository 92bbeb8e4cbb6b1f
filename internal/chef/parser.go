package chef

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"kitchen-companion/internal/recipe"
	"kitchen-companion/internal/shopping"
)

// knownCategories is the canonical set used across shopping lists, the
// pantry and recipe ingredients.
var knownCategories = []string{"Produce", "Dairy", "Meat", "Pantry", "Spices", "Other"}

// normalizeCategory maps a model-supplied category onto the canonical set,
// falling back to Other.
func normalizeCategory(s string) string {
	for _, c := range knownCategories {
		if strings.EqualFold(strings.TrimSpace(s), c) {
			return c
		}
	}
	return "Other"
}

// StripCodeFences removes a surrounding markdown code fence, which models
// add despite being told not to.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "```") {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// splitSections breaks a response into blank-line separated sections.
func splitSections(s string) []string {
	var sections []string
	for _, part := range strings.Split(s, "\n\n") {
		part = strings.TrimSpace(part)
		if part != "" {
			sections = append(sections, part)
		}
	}
	return sections
}

// afterHeader returns the section body following the first occurrence of
// header plus its colon.
func afterHeader(section, header string) string {
	lower := strings.ToLower(section)
	idx := strings.Index(lower, strings.ToLower(header))
	if idx < 0 {
		return section
	}
	rest := section[idx+len(header):]
	rest = strings.TrimPrefix(rest, ":")
	return strings.TrimSpace(rest)
}

// parseDigits extracts the digits from a string like "30 minutes" and
// parses them as an integer.
func parseDigits(s string) (int, error) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, fmt.Errorf("no digits in %q", s)
	}
	return strconv.Atoi(b.String())
}

type ingredientLine struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

// parseIngredients reads one JSON object per line. Lines that are not
// valid objects, or that lack a name or quantity, are skipped with a
// warning rather than failing the whole response.
func parseIngredients(body string) []recipe.RecipeIngredient {
	var ingredients []recipe.RecipeIngredient
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}

		var raw ingredientLine
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			log.Printf("Warning: skipping malformed ingredient line %q: %v", line, err)
			continue
		}
		if strings.TrimSpace(raw.Name) == "" || strings.TrimSpace(raw.Quantity) == "" {
			log.Printf("Warning: skipping ingredient line without name or quantity: %q", line)
			continue
		}

		ingredients = append(ingredients, recipe.RecipeIngredient{
			Name:     strings.TrimSpace(raw.Name),
			Quantity: strings.TrimSpace(raw.Quantity),
			Category: normalizeCategory(raw.Category),
			Notes:    strings.TrimSpace(raw.Notes),
		})
	}
	return ingredients
}

var stepNumberPrefix = regexp.MustCompile(`^\d+[.)]\s*`)

// parseInstructions reads one step per line, stripping any leading
// numbering the model added.
func parseInstructions(body string) []string {
	var steps []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = stepNumberPrefix.ReplaceAllString(line, "")
		line = strings.TrimPrefix(line, "- ")
		if line != "" {
			steps = append(steps, line)
		}
	}
	return steps
}

// parseRecipe turns a sectioned model response into a Recipe named name.
// A Recipe Name section, when present, overrides name. Description,
// Ingredients and Instructions are required; the numeric sections degrade
// gracefully.
func parseRecipe(name, content string) (*recipe.Recipe, error) {
	rec := recipe.New(name)

	for _, section := range splitSections(StripCodeFences(content)) {
		lower := strings.ToLower(section)
		switch {
		case strings.HasPrefix(lower, "recipe name:"):
			if n := afterHeader(section, "recipe name"); n != "" {
				rec.Name = n
			}
		case strings.HasPrefix(lower, "description:"):
			rec.Description = afterHeader(section, "description")
		case strings.HasPrefix(lower, "prep time:"):
			minutes, err := parseDigits(afterHeader(section, "prep time"))
			if err != nil {
				log.Printf("Warning: could not parse prep time: %v", err)
			}
			rec.PrepTime = minutes
		case strings.HasPrefix(lower, "cook time:"):
			minutes, err := parseDigits(afterHeader(section, "cook time"))
			if err != nil {
				log.Printf("Warning: could not parse cook time: %v", err)
			}
			rec.CookTime = minutes
		case strings.HasPrefix(lower, "servings:"):
			if servings, err := parseDigits(afterHeader(section, "servings")); err == nil {
				rec.Servings = servings
			}
		case strings.HasPrefix(lower, "notes:"):
			rec.Notes = afterHeader(section, "notes")
		// The colon is load-bearing: body text like "fold in the wet
		// ingredients" must not route a section here.
		case strings.Contains(lower, "ingredients:"):
			rec.Ingredients = parseIngredients(afterHeader(section, "ingredients:"))
		case strings.Contains(lower, "instructions:"):
			rec.Instructions = parseInstructions(afterHeader(section, "instructions:"))
		}
	}

	var missing []string
	if rec.Description == "" {
		missing = append(missing, "description")
	}
	if len(rec.Ingredients) == 0 {
		missing = append(missing, "ingredients")
	}
	if len(rec.Instructions) == 0 {
		missing = append(missing, "instructions")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("incomplete recipe response, missing %s", strings.Join(missing, ", "))
	}
	return rec, nil
}

// categoryBlock is one "Category:" block of an organizer response.
type categoryBlock struct {
	category string
	items    []string
}

// parseCategoryBlocks reads "Category:" headers followed by "- Item" lines.
func parseCategoryBlocks(content string) []categoryBlock {
	var blocks []categoryBlock
	for _, line := range strings.Split(StripCodeFences(content), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "- "):
			if len(blocks) > 0 {
				item := strings.TrimSpace(strings.TrimPrefix(line, "- "))
				if item != "" {
					last := &blocks[len(blocks)-1]
					last.items = append(last.items, item)
				}
			}
		case strings.HasSuffix(line, ":"):
			blocks = append(blocks, categoryBlock{
				category: normalizeCategory(strings.TrimSuffix(line, ":")),
			})
		}
	}
	return blocks
}

// categoryFor finds the category the organizer assigned to name. Matching
// is a case-insensitive substring test in both directions, so "tomatoes"
// still matches "cherry tomatoes". Unmatched items go to Other.
func categoryFor(name string, blocks []categoryBlock) string {
	target := strings.ToLower(strings.TrimSpace(name))
	for _, block := range blocks {
		for _, item := range block.items {
			candidate := strings.ToLower(item)
			if strings.Contains(candidate, target) || strings.Contains(target, candidate) {
				return block.category
			}
		}
	}
	return "Other"
}

var (
	errEmptyIngredients = errors.New("model returned no usable ingredients")
	errEmptyConversion  = errors.New("model returned no usable shopping items")
	errMissingName      = errors.New("model response has no Recipe Name section")
)

// parseNamedRecipe parses a recipe whose name must come from the response
// itself.
func parseNamedRecipe(content string) (*recipe.Recipe, error) {
	rec, err := parseRecipe("", content)
	if err != nil {
		return nil, err
	}
	if rec.Name == "" {
		return nil, errMissingName
	}
	return rec, nil
}

type shoppingLine struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	Notes    string  `json:"notes"`
}

// parseShoppingItems reads one JSON object per line with a numeric
// quantity. Missing or non-positive quantities default to one, missing
// units to pieces.
func parseShoppingItems(body string) []shopping.ShoppingItem {
	var items []shopping.ShoppingItem
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}

		var raw shoppingLine
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			log.Printf("Warning: skipping malformed shopping line %q: %v", line, err)
			continue
		}
		if strings.TrimSpace(raw.Name) == "" {
			log.Printf("Warning: skipping shopping line without a name: %q", line)
			continue
		}

		if raw.Quantity <= 0 {
			raw.Quantity = 1
		}
		if strings.TrimSpace(raw.Unit) == "" {
			raw.Unit = "pieces"
		}

		item := shopping.NewItem(strings.TrimSpace(raw.Name), raw.Quantity)
		item.Unit = strings.TrimSpace(raw.Unit)
		item.Category = normalizeCategory(raw.Category)
		item.Notes = strings.TrimSpace(raw.Notes)
		items = append(items, item)
	}
	return items
}
