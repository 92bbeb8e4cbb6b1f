package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		os.Unsetenv("KITCHEN_LLM_PROVIDER")
		os.Unsetenv("OPENAI_MODEL")
		os.Unsetenv("KITCHEN_DATA_DIR")
		os.Unsetenv("KITCHEN_STORAGE")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.OpenAIAPIKey != "sk-test" {
			t.Errorf("Expected OpenAIAPIKey to be 'sk-test', got '%s'", cfg.OpenAIAPIKey)
		}
		if cfg.OpenAIModel != "gpt-3.5-turbo" {
			t.Errorf("Expected default model 'gpt-3.5-turbo', got '%s'", cfg.OpenAIModel)
		}
		if cfg.Provider != ProviderOpenAI {
			t.Errorf("Expected default provider 'openai', got '%s'", cfg.Provider)
		}
		if cfg.Storage != StorageSQLite {
			t.Errorf("Expected default storage 'sqlite', got '%s'", cfg.Storage)
		}
		if cfg.DBPath != filepath.Join("data", "kitchen.db") {
			t.Errorf("Unexpected DBPath '%s'", cfg.DBPath)
		}
	})

	t.Run("MissingOpenAIKey", func(t *testing.T) {
		os.Unsetenv("OPENAI_API_KEY")
		os.Unsetenv("KITCHEN_LLM_PROVIDER")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing OPENAI_API_KEY, got nil")
		}
		expectedError := "OPENAI_API_KEY environment variable not set"
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})

	t.Run("GeminiProvider", func(t *testing.T) {
		os.Unsetenv("OPENAI_API_KEY")
		t.Setenv("KITCHEN_LLM_PROVIDER", "gemini")
		t.Setenv("GEMINI_API_KEY", "gemini_key")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.GeminiAPIKey != "gemini_key" {
			t.Errorf("Expected GeminiAPIKey to be 'gemini_key', got '%s'", cfg.GeminiAPIKey)
		}
	})

	t.Run("MissingGeminiKey", func(t *testing.T) {
		t.Setenv("KITCHEN_LLM_PROVIDER", "gemini")
		os.Unsetenv("GEMINI_API_KEY")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing GEMINI_API_KEY, got nil")
		}
	})

	t.Run("UnknownStorage", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("KITCHEN_STORAGE", "postgres")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for unknown KITCHEN_STORAGE, got nil")
		}
	})

	t.Run("TelegramAllowUserID", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("KITCHEN_STORAGE", "sqlite")
		t.Setenv("TELEGRAM_ALLOW_USER_ID", "12345")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.TelegramAllowUserID != 12345 {
			t.Errorf("Expected TelegramAllowUserID 12345, got %d", cfg.TelegramAllowUserID)
		}
	})
}
