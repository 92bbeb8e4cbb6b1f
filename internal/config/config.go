package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Storage backend identifiers.
const (
	StorageSQLite = "sqlite"
	StorageJSON   = "json"
)

// LLM provider identifiers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds the configuration for the application.
type Config struct {
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	Provider     string

	DataDir string
	DBPath  string
	Storage string

	// Telegram Config
	TelegramBotToken    string
	TelegramAllowUserID int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	provider := os.Getenv("KITCHEN_LLM_PROVIDER")
	if provider == "" {
		provider = ProviderOpenAI
	}
	if provider != ProviderOpenAI && provider != ProviderGemini {
		return nil, fmt.Errorf("unknown KITCHEN_LLM_PROVIDER %q", provider)
	}

	openAIKey := os.Getenv("OPENAI_API_KEY")
	geminiKey := os.Getenv("GEMINI_API_KEY")
	switch provider {
	case ProviderOpenAI:
		if openAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case ProviderGemini:
		if geminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-3.5-turbo"
	}

	dataDir := os.Getenv("KITCHEN_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	storage := os.Getenv("KITCHEN_STORAGE")
	if storage == "" {
		storage = StorageSQLite
	}
	if storage != StorageSQLite && storage != StorageJSON {
		return nil, fmt.Errorf("unknown KITCHEN_STORAGE %q", storage)
	}

	var allowUserID int64
	if s := os.Getenv("TELEGRAM_ALLOW_USER_ID"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_ALLOW_USER_ID %q: %w", s, err)
		}
		allowUserID = id
	}

	return &Config{
		OpenAIAPIKey:        openAIKey,
		OpenAIModel:         model,
		GeminiAPIKey:        geminiKey,
		Provider:            provider,
		DataDir:             dataDir,
		DBPath:              filepath.Join(dataDir, "kitchen.db"),
		Storage:             storage,
		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramAllowUserID: allowUserID,
	}, nil
}
