// Package export writes markdown renderings of lists, recipes and the
// pantry under the data directory, and renders them for the terminal.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"

	"kitchen-companion/internal/pantry"
	"kitchen-companion/internal/recipe"
	"kitchen-companion/internal/shopping"
)

// Exporter writes markdown files below a base data directory.
type Exporter struct {
	baseDir string
}

// New creates an Exporter rooted at dataDir.
func New(dataDir string) *Exporter {
	return &Exporter{baseDir: dataDir}
}

// markdownName normalizes a target filename, appending .md when missing.
func markdownName(name string) string {
	name = strings.TrimSpace(name)
	if !strings.HasSuffix(strings.ToLower(name), ".md") {
		name += ".md"
	}
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", " ", "_")
	return replacer.Replace(name)
}

func (e *Exporter) write(subdir, name, content string) (string, error) {
	dir := filepath.Join(e.baseDir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, markdownName(name))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// ShoppingList writes the list's markdown and returns the file path.
func (e *Exporter) ShoppingList(list *shopping.ShoppingList) (string, error) {
	return e.write(filepath.Join("lists", "shopping", "MD"), list.Name, list.Markdown())
}

// Recipe writes the recipe's markdown and returns the file path.
func (e *Exporter) Recipe(rec *recipe.Recipe) (string, error) {
	return e.write(filepath.Join("lists", "recipes", "MD"), rec.Name, rec.Markdown())
}

// Pantry writes the pantry inventory markdown and returns the file path.
func (e *Exporter) Pantry(entries []pantry.Entry) (string, error) {
	return e.write(filepath.Join("lists", "pantry", "MD"), "pantry", pantry.Markdown(entries))
}

// Preview renders markdown for the terminal. It falls back to the raw
// markdown when the renderer cannot be built, so previewing never fails
// the caller.
func Preview(markdown string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return markdown
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
