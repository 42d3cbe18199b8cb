package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	Language         string `json:"language"`
	SimulatedDelayMs int    `json:"simulated_delay_ms"`
	UseCache         bool   `json:"use_cache"`
	CacheTTLHours    int    `json:"cache_ttl_hours"`
	MaxConcurrency   int    `json:"max_concurrency"`

	GitHubToken  string `json:"github_token,omitempty"`
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	GeminiModel  string `json:"gemini_model,omitempty"`

	PathFile string `json:"path_file"`
}

const (
	defaultLang             = "en"
	defaultSimulatedDelayMs = 1000
	defaultUseCache         = true
	defaultCacheTTLHours    = 24
	defaultMaxConcurrency   = 4
	DefaultGeminiModel      = "gemini-2.5-flash"

	EnvGitHubToken  = "DEVQUEST_GITHUB_TOKEN"
	EnvGeminiAPIKey = "DEVQUEST_GEMINI_API_KEY"
)

// LoadConfig reads the config file. path is either a .json file or a
// directory under which .devquest/config.json is used. A missing file is
// created with defaults.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".devquest")
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

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error decoding config JSON: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("loaded configuration is invalid: %w", err)
	}

	return config, nil
}

// Default returns a config holding every default value and no path.
func Default() *Config {
	return &Config{
		Language:         defaultLang,
		SimulatedDelayMs: defaultSimulatedDelayMs,
		UseCache:         defaultUseCache,
		CacheTTLHours:    defaultCacheTTLHours,
		MaxConcurrency:   defaultMaxConcurrency,
		GeminiModel:      DefaultGeminiModel,
	}
}

func createDefaultConfig(path string) (*Config, error) {
	config := Default()
	config.PathFile = path

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("error saving default config: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration to save is invalid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0600); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language cannot be empty")
	}
	if config.SimulatedDelayMs < 0 {
		return errors.New("simulated_delay_ms cannot be negative")
	}
	if config.CacheTTLHours <= 0 {
		return errors.New("cache_ttl_hours must be greater than 0")
	}
	if config.MaxConcurrency < 1 {
		return errors.New("max_concurrency must be at least 1")
	}
	return nil
}

// SimulatedDelay is the scoring latency as a duration.
func (c *Config) SimulatedDelay() time.Duration {
	return time.Duration(c.SimulatedDelayMs) * time.Millisecond
}

// CacheTTL is the score cache lifetime as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// CacheDir is where cached scores live, next to the config file.
func (c *Config) CacheDir() string {
	return filepath.Join(filepath.Dir(c.PathFile), "cache")
}

// EffectiveGitHubToken prefers the environment over the stored token.
func (c *Config) EffectiveGitHubToken() string {
	if v := os.Getenv(EnvGitHubToken); v != "" {
		return v
	}
	return c.GitHubToken
}

// EffectiveGeminiAPIKey prefers the environment over the stored key.
func (c *Config) EffectiveGeminiAPIKey() string {
	if v := os.Getenv(EnvGeminiAPIKey); v != "" {
		return v
	}
	return c.GeminiAPIKey
}
