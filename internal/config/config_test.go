package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8787 {
		t.Errorf("expected default port 8787, got %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "neon.db" {
		t.Errorf("expected default database path %q, got %q", "neon.db", cfg.Database.Path)
	}
	if cfg.LLM.Enabled {
		t.Error("LLM explanations should be disabled by default")
	}
	if cfg.Embedding.Enabled {
		t.Error("embeddings should be disabled by default")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.neon.yml")

	original := DefaultConfig()
	original.Server.Port = 9090
	original.Server.CORSOrigins = []string{"https://neon.example", "http://localhost:3000"}
	original.Database.Path = "data/shop.db"
	original.LLM = LLMConfig{Enabled: true, Provider: ProviderGroq, Model: "llama-3.1-8b-instant", BaseURL: "https://api.groq.com/openai/v1"}
	original.Affiliate.Tag = "mystore-21"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != original.Server.Port {
		t.Errorf("port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if loaded.Database.Path != original.Database.Path {
		t.Errorf("database path: got %q, want %q", loaded.Database.Path, original.Database.Path)
	}
	if loaded.LLM.Provider != original.LLM.Provider {
		t.Errorf("llm provider: got %q, want %q", loaded.LLM.Provider, original.LLM.Provider)
	}
	if loaded.Affiliate.Tag != original.Affiliate.Tag {
		t.Errorf("affiliate tag: got %q, want %q", loaded.Affiliate.Tag, original.Affiliate.Tag)
	}
	if len(loaded.Server.CORSOrigins) != len(original.Server.CORSOrigins) {
		t.Fatalf("cors origins length: got %d, want %d", len(loaded.Server.CORSOrigins), len(original.Server.CORSOrigins))
	}
	for i, v := range loaded.Server.CORSOrigins {
		if v != original.Server.CORSOrigins[i] {
			t.Errorf("cors_origins[%d]: got %q, want %q", i, v, original.Server.CORSOrigins[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8787 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("NEON_DATABASE_PATH", "/tmp/override.db")
	defer os.Unsetenv("NEON_DATABASE_PATH")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Database.Path != "/tmp/override.db" {
		t.Errorf("env override failed: got %q, want %q", loaded.Database.Path, "/tmp/override.db")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateBadPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for port 0")
	}
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestValidateEmptyDatabasePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty database path")
	}
}

func TestValidateInvalidLLMProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.Enabled = true
	cfg.LLM.Provider = "invalid"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid llm provider")
	}
}

func TestValidateDisabledLLMSkipsProviderCheck(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.Enabled = false
	cfg.LLM.Provider = "invalid"
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled llm should skip provider validation, got: %v", err)
	}
}

func TestValidateEmptyModelWhenEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.Enabled = true
	cfg.LLM.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty model with llm enabled")
	}
}

func TestValidateEmbeddingProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Embedding.Enabled = true
	cfg.Embedding.Provider = ProviderGroq
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error: groq has no embedding endpoint")
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset(ProviderGroq)
	if p.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("expected groq base url, got %q", p.BaseURL)
	}

	p = GetPreset(ProviderOllama)
	if p.EmbeddingModel != "nomic-embed-text" {
		t.Errorf("expected nomic embedding model, got %q", p.EmbeddingModel)
	}

	// Unknown provider falls back to OpenAI.
	p = GetPreset("unknown")
	if p.Model != "gpt-4o-mini" {
		t.Errorf("expected fallback to gpt-4o-mini, got %q", p.Model)
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider ProviderType
		want     string
	}{
		{ProviderOpenAI, "OPENAI_API_KEY"},
		{ProviderGroq, "GROQ_API_KEY"},
		{ProviderOpenRouter, "OPENROUTER_API_KEY"},
		{ProviderOllama, ""},
	}
	for _, tt := range tests {
		got := APIKeyEnvVar(tt.provider)
		if got != tt.want {
			t.Errorf("APIKeyEnvVar(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"http://localhost:3000", []string{"http://localhost:3000"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
