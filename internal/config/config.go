// Package config handles configuration loading for the protein
// explorer server.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Cache  CacheConfig  `yaml:"cache"`
	Render RenderConfig `yaml:"render"`
	AI     AIConfig     `yaml:"ai"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port        int      `yaml:"port"`
	Title       string   `yaml:"title"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// DataConfig contains data source settings. An empty path means the
// embedded sample dataset.
type DataConfig struct {
	Path string `yaml:"path"`
}

// CacheConfig contains caching settings.
type CacheConfig struct {
	SnapshotSizeMB     int `yaml:"snapshot_size_mb"`
	SnapshotTTLMinutes int `yaml:"snapshot_ttl_minutes"`
	QuerySize          int `yaml:"query_size"`
}

// RenderConfig contains snapshot rendering settings.
type RenderConfig struct {
	ImageSize int `yaml:"image_size"`
}

// AIConfig contains AI proxy settings. The API key itself always comes
// from the environment, never from the file.
type AIConfig struct {
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	APIKeyEnv   string  `yaml:"api_key_env"`
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return default config if file doesn't exist
		return DefaultConfig(), nil
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	applyDefaults(&cfg)

	return &cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			CORSOrigins: []string{"*"},
		},
		Cache: CacheConfig{
			SnapshotSizeMB:     128,
			SnapshotTTLMinutes: 10,
			QuerySize:          256,
		},
		Render: RenderConfig{
			ImageSize: 512,
		},
		AI: AIConfig{
			BaseURL:     "https://api.groq.com/openai/v1",
			Model:       "llama-3.1-8b-instant",
			Temperature: 0.4,
			APIKeyEnv:   "GROQ_API_KEY",
		},
	}
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaults.Server.Port
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = defaults.Server.CORSOrigins
	}
	if cfg.Cache.SnapshotSizeMB == 0 {
		cfg.Cache.SnapshotSizeMB = defaults.Cache.SnapshotSizeMB
	}
	if cfg.Cache.SnapshotTTLMinutes == 0 {
		cfg.Cache.SnapshotTTLMinutes = defaults.Cache.SnapshotTTLMinutes
	}
	if cfg.Cache.QuerySize == 0 {
		cfg.Cache.QuerySize = defaults.Cache.QuerySize
	}
	if cfg.Render.ImageSize == 0 {
		cfg.Render.ImageSize = defaults.Render.ImageSize
	}
	if cfg.AI.BaseURL == "" {
		cfg.AI.BaseURL = defaults.AI.BaseURL
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = defaults.AI.Model
	}
	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = defaults.AI.Temperature
	}
	if cfg.AI.APIKeyEnv == "" {
		cfg.AI.APIKeyEnv = defaults.AI.APIKeyEnv
	}
}
