package app

import (
	"context"
	"path/filepath"
	"testing"

	"kitchen-companion/internal/config"
)

func testConfig(t *testing.T, storage string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		OpenAIAPIKey: "test-key",
		OpenAIModel:  "gpt-3.5-turbo",
		Provider:     config.ProviderOpenAI,
		DataDir:      dir,
		DBPath:       filepath.Join(dir, "kitchen.db"),
		Storage:      storage,
	}
}

func TestNewWithSQLiteBackend(t *testing.T) {
	a, err := New(context.Background(), testConfig(t, config.StorageSQLite))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Close()

	if a.Metrics == nil {
		t.Error("Expected metrics on the sqlite backend")
	}
	if a.Lists == nil || a.Recipes == nil || a.Pantry == nil {
		t.Error("Expected all stores wired")
	}
	if a.Chef == nil || a.Importer == nil || a.Exporter == nil {
		t.Error("Expected all services wired")
	}
}

func TestNewWithFileBackend(t *testing.T) {
	a, err := New(context.Background(), testConfig(t, config.StorageJSON))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Close()

	if a.Metrics != nil {
		t.Error("Expected no metrics store on the file backend")
	}
	if a.Lists == nil {
		t.Error("Expected the file-backed list store wired")
	}
}
