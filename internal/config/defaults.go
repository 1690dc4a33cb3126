package config

// ProviderPreset describes the default model choices for a provider.
type ProviderPreset struct {
	Model          string
	EmbeddingModel string
	BaseURL        string
}

// providerPresets maps each provider to its default models and endpoint.
// Groq and OpenRouter speak the OpenAI wire protocol on their own hosts.
var providerPresets = map[ProviderType]ProviderPreset{
	ProviderOpenAI: {
		Model:          "gpt-4o-mini",
		EmbeddingModel: "text-embedding-3-small",
	},
	ProviderGroq: {
		Model:   "llama-3.1-8b-instant",
		BaseURL: "https://api.groq.com/openai/v1",
	},
	ProviderOpenRouter: {
		Model:   "meta-llama/llama-3.1-8b-instruct",
		BaseURL: "https://openrouter.ai/api/v1",
	},
	ProviderOllama: {
		Model:          "llama3",
		EmbeddingModel: "nomic-embed-text",
		BaseURL:        "http://localhost:11434",
	},
}

// DefaultConfig returns a Config with sensible defaults: a local SQLite
// file, the dev server port, and all AI extras disabled.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8787,
			CORSOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Path: "neon.db",
		},
		LLM: LLMConfig{
			Enabled:  false,
			Provider: ProviderOpenAI,
			Model:    providerPresets[ProviderOpenAI].Model,
		},
		Embedding: EmbeddingConfig{
			Enabled:  false,
			Provider: ProviderOpenAI,
			Model:    providerPresets[ProviderOpenAI].EmbeddingModel,
		},
		Affiliate: AffiliateConfig{
			Tag: "neonai-21",
		},
	}
}

// GetPreset returns the preset for the given provider, falling back to the
// OpenAI preset for unknown values.
func GetPreset(provider ProviderType) ProviderPreset {
	if preset, ok := providerPresets[provider]; ok {
		return preset
	}
	return providerPresets[ProviderOpenAI]
}
