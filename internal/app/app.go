// Package app wires the configured provider, storage backend and
// services together for the binaries.
package app

import (
	"context"
	"fmt"

	"kitchen-companion/internal/chef"
	"kitchen-companion/internal/config"
	"kitchen-companion/internal/database"
	"kitchen-companion/internal/export"
	"kitchen-companion/internal/importer"
	"kitchen-companion/internal/llm"
	"kitchen-companion/internal/metrics"
	"kitchen-companion/internal/pantry"
	"kitchen-companion/internal/recipe"
	"kitchen-companion/internal/shopping"
	"kitchen-companion/internal/storage"
)

// App holds the assembled services.
type App struct {
	Cfg      *config.Config
	Lists    shopping.Store
	Recipes  recipe.Store
	Pantry   pantry.Store
	Chef     *chef.Chef
	Importer *importer.Importer
	Exporter *export.Exporter
	Metrics  *metrics.Store // nil on the file backend

	db        *database.DB
	llmCloser llm.Closer
}

// New assembles the application from configuration.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{
		Cfg:      cfg,
		Exporter: export.New(cfg.DataDir),
	}

	textGen, err := a.buildTextGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.Chef = chef.New(textGen)
	a.Importer = importer.New(textGen)

	if err := a.buildStores(cfg); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) buildTextGenerator(ctx context.Context, cfg *config.Config) (llm.TextGenerator, error) {
	if cfg.Provider == config.ProviderGemini {
		textGen, closer, err := llm.NewGeminiClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini client: %w", err)
		}
		a.llmCloser = closer
		return textGen, nil
	}
	return llm.NewOpenAIClient(cfg), nil
}

func (a *App) buildStores(cfg *config.Config) error {
	if cfg.Storage == config.StorageSQLite {
		db, err := database.NewDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		a.db = db
		a.Lists = shopping.NewRepository(db.SQL)
		a.Recipes = recipe.NewRepository(db.SQL)
		a.Pantry = pantry.NewRepository(db.SQL)
		a.Metrics = metrics.NewStore(db.SQL)
		return nil
	}

	lists, err := storage.NewListStore(cfg.DataDir)
	if err != nil {
		return err
	}
	recipes, err := storage.NewRecipeStore(cfg.DataDir)
	if err != nil {
		return err
	}
	pantryStore, err := storage.NewPantryStore(cfg.DataDir)
	if err != nil {
		return err
	}

	a.Lists = lists
	a.Recipes = recipes
	a.Pantry = pantryStore
	return nil
}

// Close releases the database and provider resources.
func (a *App) Close() error {
	var firstErr error
	if a.llmCloser != nil {
		if err := a.llmCloser.Close(); err != nil {
			firstErr = err
		}
	}
	if a.db != nil {
		if err := a.db.SQL.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
