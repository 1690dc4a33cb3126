package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/neon-ai/neon/internal/config"
	"github.com/neon-ai/neon/internal/embeddings"
	"github.com/neon-ai/neon/internal/llm"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `neon init` to create a config file", err)
	}
	return cfg, nil
}

// createEmbedderFromConfig creates an embeddings.Embedder based on config.
// Returns nil when embeddings are disabled.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	if !cfg.Embedding.Enabled {
		return nil, nil
	}

	model := cfg.Embedding.Model
	if model == "" {
		model = config.GetPreset(cfg.Embedding.Provider).EmbeddingModel
	}

	switch cfg.Embedding.Provider {
	case config.ProviderOllama:
		return embeddings.NewOllamaEmbedder(model, 768, ""), nil
	default:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for OpenAI embeddings")
		}
		return embeddings.NewOpenAIEmbedder(apiKey, embeddings.OpenAIModel(model)), nil
	}
}

// createLLMProviderFromConfig creates an LLM provider based on config.
// Returns nil when LLM explanations are disabled.
func createLLMProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	if !cfg.LLM.Enabled {
		return nil, nil
	}

	model := cfg.LLM.Model
	if model == "" {
		model = config.GetPreset(cfg.LLM.Provider).Model
	}
	provider, err := llm.NewProvider(string(cfg.LLM.Provider), model, cfg.LLM.BaseURL)
	if err != nil {
		return nil, err
	}
	// Explanation calls are best-effort; keep them well under free-tier
	// provider quotas.
	return llm.NewRateLimitedProvider(provider, 30), nil
}

// vectorDir is where the product embedding index persists, next to the
// SQLite database.
func vectorDir(cfg *config.Config) string {
	return filepath.Join(filepath.Dir(cfg.Database.Path), "neon-vectordb")
}
