package importer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kitchen-companion/internal/llm"
	"kitchen-companion/internal/shared"
)

type mockTextGenerator struct {
	lastRequest llm.Request
	response    string
}

func (m *mockTextGenerator) GenerateContent(ctx context.Context, req llm.Request) (llm.ContentResponse, error) {
	m.lastRequest = req
	return llm.ContentResponse{Content: m.response, Usage: shared.TokenUsage{TotalTokens: 5}}, nil
}

const extractionJSON = `{
  "name": "Tomato Soup",
  "description": "A simple soup.",
  "ingredients": [{"name": "tomatoes", "quantity": "1 kg", "category": "Produce", "notes": ""}],
  "instructions": ["Chop the tomatoes.", "Simmer for 20 minutes."],
  "prep_time_minutes": 10,
  "cook_time_minutes": 20,
  "servings": 2,
  "notes": ""
}`

func TestImportURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
<script>tracking()</script>
<nav>Menu</nav>
<h1>Tomato Soup</h1>
<p>1 kg tomatoes</p>
</body></html>`))
	}))
	defer server.Close()

	gen := &mockTextGenerator{response: extractionJSON}
	imp := New(gen)

	rec, meta, err := imp.ImportURL(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("ImportURL failed: %v", err)
	}

	if rec.Name != "Tomato Soup" || rec.Servings != 2 {
		t.Errorf("Unexpected recipe: %+v", rec)
	}
	if len(rec.Ingredients) != 1 || len(rec.Instructions) != 2 {
		t.Errorf("Expected 1 ingredient and 2 instructions, got %d/%d", len(rec.Ingredients), len(rec.Instructions))
	}
	if !strings.Contains(rec.Notes, server.URL) {
		t.Errorf("Expected the source URL in notes, got %q", rec.Notes)
	}
	if meta.Operation != "import_recipe" || meta.Usage.TotalTokens != 5 {
		t.Errorf("Unexpected meta: %+v", meta)
	}

	// The cleaned page text should have the heading but not the noise.
	if !strings.Contains(gen.lastRequest.Prompt, "Tomato Soup") {
		t.Error("Expected the page text in the prompt")
	}
	if strings.Contains(gen.lastRequest.Prompt, "tracking()") || strings.Contains(gen.lastRequest.Prompt, "Menu") {
		t.Error("Expected scripts and navigation stripped from the prompt")
	}
}

func TestImportURLFenced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>recipe</p></body></html>`))
	}))
	defer server.Close()

	gen := &mockTextGenerator{response: "```json\n" + extractionJSON + "\n```"}
	imp := New(gen)

	rec, _, err := imp.ImportURL(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("ImportURL failed on fenced response: %v", err)
	}
	if rec.Name != "Tomato Soup" {
		t.Errorf("Unexpected recipe name: %q", rec.Name)
	}
}

func TestImportURLFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	imp := New(&mockTextGenerator{})
	if _, _, err := imp.ImportURL(context.Background(), server.URL); err == nil {
		t.Fatal("Expected an error for a 404 page")
	}
}

func TestImportURLBadExtraction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>recipe</p></body></html>`))
	}))
	defer server.Close()

	gen := &mockTextGenerator{response: "sorry, I could not find a recipe"}
	imp := New(gen)

	if _, _, err := imp.ImportURL(context.Background(), server.URL); err == nil {
		t.Fatal("Expected an error for a non-JSON extraction response")
	}
}
