package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type (
	Config struct {
		Language string `json:"language"`
		PathFile string `json:"path_file"`

		AIConfig    AIConfig                  `json:"ai_config"`
		AIProviders map[string]ProviderConfig `json:"ai_providers,omitempty"`

		ScanConfig ScanConfig `json:"scan_config"`
	}

	// ProviderConfig holds per-provider settings. The API key stored here is
	// only a fallback: the environment variable always wins.
	ProviderConfig struct {
		APIKey string `json:"api_key,omitempty"`
	}

	AIConfig struct {
		ActiveAI AI           `json:"active_ai"`
		Models   map[AI]Model `json:"models,omitempty"`
	}

	ScanConfig struct {
		MaxFileBytes   int64 `json:"max_file_bytes"`
		TimeoutSeconds int   `json:"timeout_seconds"`
		Concurrency    int   `json:"concurrency"`
	}
)

const (
	defaultLang           = "en"
	defaultMaxFileBytes   = 256 * 1024
	defaultTimeoutSeconds = 60
	defaultConcurrency    = 1
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".matescan")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error creating config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	config.PathFile = configPath
	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded configuration is not valid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language: defaultLang,
		PathFile: path,
		AIConfig: AIConfig{
			ActiveAI: AIGemini,
			Models: map[AI]Model{
				AIGemini: DefaultModelForAI(AIGemini),
				AIGroq:   DefaultModelForAI(AIGroq),
			},
		},
		AIProviders: map[string]ProviderConfig{},
		ScanConfig: ScanConfig{
			MaxFileBytes:   defaultMaxFileBytes,
			TimeoutSeconds: defaultTimeoutSeconds,
			Concurrency:    defaultConcurrency,
		},
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error saving default config: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration to save is not valid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	return nil
}

func applyDefaults(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.AIConfig.ActiveAI == "" {
		config.AIConfig.ActiveAI = AIGemini
	}
	if config.AIConfig.Models == nil {
		config.AIConfig.Models = map[AI]Model{}
	}
	for _, ai := range SupportedAIs() {
		if _, ok := config.AIConfig.Models[ai]; !ok {
			config.AIConfig.Models[ai] = DefaultModelForAI(ai)
		}
	}
	if config.AIProviders == nil {
		config.AIProviders = map[string]ProviderConfig{}
	}
	if config.ScanConfig.MaxFileBytes <= 0 {
		config.ScanConfig.MaxFileBytes = defaultMaxFileBytes
	}
	if config.ScanConfig.TimeoutSeconds <= 0 {
		config.ScanConfig.TimeoutSeconds = defaultTimeoutSeconds
	}
	if config.ScanConfig.Concurrency <= 0 {
		config.ScanConfig.Concurrency = defaultConcurrency
	}
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language cannot be empty")
	}

	if config.AIConfig.ActiveAI != "" {
		supported := false
		for _, ai := range SupportedAIs() {
			if config.AIConfig.ActiveAI == ai {
				supported = true
				break
			}
		}
		if !supported {
			return fmt.Errorf("unsupported AI provider: %s", config.AIConfig.ActiveAI)
		}
	}

	if config.ScanConfig.Concurrency < 0 {
		return errors.New("concurrency cannot be negative")
	}

	return nil
}

// ResolveAPIKey returns the credential for a provider. The environment
// variable always takes precedence over the config file; keys are never
// embedded in the binary.
func ResolveAPIKey(config *Config, ai AI) string {
	if key := os.Getenv(EnvVarForAI(ai)); key != "" {
		return key
	}
	if p, ok := config.AIProviders[string(ai)]; ok {
		return p.APIKey
	}
	return ""
}
