// Package menu implements the interactive numbered-menu console. Every
// operation reports failures and returns to the menu; the session never
// dies on a bad input or an API error.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"kitchen-companion/internal/chef"
	"kitchen-companion/internal/export"
	"kitchen-companion/internal/importer"
	"kitchen-companion/internal/metrics"
	"kitchen-companion/internal/pantry"
	"kitchen-companion/internal/recipe"
	"kitchen-companion/internal/shared"
	"kitchen-companion/internal/shopping"
)

// Deps are the collaborators the menu drives.
type Deps struct {
	Lists    shopping.Store
	Recipes  recipe.Store
	Pantry   pantry.Store
	Chef     *chef.Chef
	Importer *importer.Importer
	Exporter *export.Exporter
	Metrics  *metrics.Store // nil when running on file storage
	DataDir  string
}

// Menu is the interactive console session.
type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	lists    shopping.Store
	recipes  recipe.Store
	pantry   pantry.Store
	chef     *chef.Chef
	importer *importer.Importer
	exporter *export.Exporter
	metrics  *metrics.Store
	dataDir  string
}

// New creates a Menu reading selections from in and printing to out.
func New(in io.Reader, out io.Writer, deps Deps) *Menu {
	return &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		lists:    deps.Lists,
		recipes:  deps.Recipes,
		pantry:   deps.Pantry,
		chef:     deps.Chef,
		importer: deps.Importer,
		exporter: deps.Exporter,
		metrics:  deps.Metrics,
		dataDir:  deps.DataDir,
	}
}

// Run drives the main menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.title("Kitchen Companion")
		fmt.Fprintln(m.out, "1. Shopping lists")
		fmt.Fprintln(m.out, "2. Recipes")
		fmt.Fprintln(m.out, "3. Pantry")
		fmt.Fprintln(m.out, "4. Usage and health")
		fmt.Fprintln(m.out, "0. Exit")

		choice, ok := m.promptChoice(4)
		if !ok {
			return nil
		}
		switch choice {
		case 0:
			m.muted("Bye.")
			return nil
		case 1:
			m.shoppingMenu(ctx)
		case 2:
			m.recipeMenu(ctx)
		case 3:
			m.pantryMenu(ctx)
		case 4:
			m.statsScreen(ctx)
		}
	}
}

// record stores call metadata when metrics are available. Metric failures
// are reported but never interrupt the operation that produced them.
func (m *Menu) record(ctx context.Context, meta shared.CallMeta) {
	if m.metrics == nil {
		return
	}
	if err := m.metrics.RecordMeta(ctx, meta); err != nil {
		m.warn("Could not record usage: " + err.Error())
	}
}
