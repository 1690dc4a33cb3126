package config

// ProviderType identifies an LLM provider used for optional AI explanations.
type ProviderType string

const (
	ProviderOpenAI     ProviderType = "openai"
	ProviderGroq       ProviderType = "groq"
	ProviderOpenRouter ProviderType = "openrouter"
	ProviderOllama     ProviderType = "ollama"
)

// Config is the top-level Neon configuration, corresponding to .neon.yml.
type Config struct {
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	Database  DatabaseConfig  `yaml:"database" koanf:"database"`
	LLM       LLMConfig       `yaml:"llm" koanf:"llm"`
	Embedding EmbeddingConfig `yaml:"embedding" koanf:"embedding"`
	Affiliate AffiliateConfig `yaml:"affiliate" koanf:"affiliate"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host        string   `yaml:"host" koanf:"host"`
	Port        int      `yaml:"port" koanf:"port"`
	CORSOrigins []string `yaml:"cors_origins" koanf:"cors_origins"`
}

// DatabaseConfig holds the SQLite settings.
type DatabaseConfig struct {
	Path string `yaml:"path" koanf:"path"`
}

// LLMConfig configures the optional explanation provider. The core reply
// engine never calls an LLM; this provider only phrases recommendation
// explanations, and Enabled=false keeps the whole app offline.
type LLMConfig struct {
	Enabled  bool         `yaml:"enabled" koanf:"enabled"`
	Provider ProviderType `yaml:"provider" koanf:"provider"`
	Model    string       `yaml:"model" koanf:"model"`
	BaseURL  string       `yaml:"base_url" koanf:"base_url"`
}

// EmbeddingConfig configures the product-embedding provider used for
// semantic recommendation search.
type EmbeddingConfig struct {
	Enabled  bool         `yaml:"enabled" koanf:"enabled"`
	Provider ProviderType `yaml:"provider" koanf:"provider"`
	Model    string       `yaml:"model" koanf:"model"`
}

// AffiliateConfig holds the tag appended to outbound marketplace links.
type AffiliateConfig struct {
	Tag string `yaml:"tag" koanf:"tag"`
}
