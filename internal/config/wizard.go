package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .neon.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to Neon! Let's configure your shopping assistant.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Server port.
	portPrompt := promptui.Prompt{
		Label:   "API server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port selection: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 2. Database path.
	dbPrompt := promptui.Prompt{
		Label:   "SQLite database path",
		Default: cfg.Database.Path,
	}
	dbPath, err := dbPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("database path: %w", err)
	}
	cfg.Database.Path = dbPath

	// 3. Allowed browser origins.
	corsPrompt := promptui.Prompt{
		Label:   "Allowed CORS origins (comma separated)",
		Default: strings.Join(cfg.Server.CORSOrigins, ","),
	}
	origins, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors origins: %w", err)
	}
	cfg.Server.CORSOrigins = splitAndTrim(origins)

	// 4. Affiliate tag.
	tagPrompt := promptui.Prompt{
		Label:   "Affiliate tag for outbound links",
		Default: cfg.Affiliate.Tag,
	}
	tag, err := tagPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("affiliate tag: %w", err)
	}
	cfg.Affiliate.Tag = tag

	// 5. Optional AI explanations. The chat engine is rule-based either way;
	// this only affects recommendation explanation phrasing.
	aiPrompt := promptui.Select{
		Label: "Enable AI-phrased recommendation explanations",
		Items: []string{"no (fully offline, deterministic)", "yes"},
	}
	aiIdx, _, err := aiPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("ai selection: %w", err)
	}

	if aiIdx == 1 {
		providerPrompt := promptui.Select{
			Label: "Select LLM provider",
			Items: []string{"openai", "groq", "openrouter", "ollama"},
		}
		_, providerStr, err := providerPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("provider selection: %w", err)
		}
		provider := ProviderType(providerStr)
		preset := GetPreset(provider)

		modelPrompt := promptui.Prompt{
			Label:   "Model",
			Default: preset.Model,
		}
		model, err := modelPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("model selection: %w", err)
		}

		cfg.LLM = LLMConfig{
			Enabled:  true,
			Provider: provider,
			Model:    model,
			BaseURL:  preset.BaseURL,
		}

		if envVar := APIKeyEnvVar(provider); envVar != "" && os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before starting the server.\n", envVar)
		}
	}

	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty tokens.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
