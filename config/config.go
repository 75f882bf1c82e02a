// Package config provides configuration loading and management for nfrassist.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete nfrassist configuration
type Config struct {
	Model  ModelConfig  `yaml:"model"`
	Models ModelsConfig `yaml:"models"`
	Log    LogConfig    `yaml:"log"`
}

// ModelConfig configures the default LLM sampling settings
type ModelConfig struct {
	// Default is the default model to use (e.g., "llama3.1:8b")
	Default string `yaml:"default"`
	// Endpoint is the Ollama API endpoint (default: http://localhost:11434/v1)
	Endpoint string `yaml:"endpoint"`
	// Temperature controls randomness (0.0-1.0, default: 0.3)
	Temperature float64 `yaml:"temperature"`
	// TopP is the nucleus sampling cutoff (0.0-1.0, default: 0.8)
	TopP float64 `yaml:"top_p"`
	// ContextWindow is the context size requested from the model
	ContextWindow int `yaml:"context_window"`
	// Timeout is the maximum time to wait for model responses
	Timeout time.Duration `yaml:"timeout"`
}

// ModelsConfig points at the capability-based model registry
type ModelsConfig struct {
	// File is a JSON registry file mapping capabilities to model
	// fallback chains (empty = built-in defaults)
	File string `yaml:"file"`
}

// LogConfig configures structured logging
type LogConfig struct {
	// Level is the minimum slog level: debug, info, warn, error
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Default:       "llama3.1:8b",
			Endpoint:      "http://localhost:11434/v1",
			Temperature:   0.3,
			TopP:          0.8,
			ContextWindow: 2048,
			Timeout:       5 * time.Minute,
		},
		Models: ModelsConfig{
			File: "", // Built-in registry
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Model.Default == "" {
		return fmt.Errorf("model.default is required")
	}
	if c.Model.Endpoint == "" {
		return fmt.Errorf("model.endpoint is required")
	}
	if c.Model.Temperature < 0 || c.Model.Temperature > 1 {
		return fmt.Errorf("model.temperature must be between 0 and 1")
	}
	if c.Model.TopP < 0 || c.Model.TopP > 1 {
		return fmt.Errorf("model.top_p must be between 0 and 1")
	}
	if c.Model.ContextWindow < 0 {
		return fmt.Errorf("model.context_window must not be negative")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Model
	if other.Model.Default != "" {
		c.Model.Default = other.Model.Default
	}
	if other.Model.Endpoint != "" {
		c.Model.Endpoint = other.Model.Endpoint
	}
	if other.Model.Temperature != 0 {
		c.Model.Temperature = other.Model.Temperature
	}
	if other.Model.TopP != 0 {
		c.Model.TopP = other.Model.TopP
	}
	if other.Model.ContextWindow != 0 {
		c.Model.ContextWindow = other.Model.ContextWindow
	}
	if other.Model.Timeout != 0 {
		c.Model.Timeout = other.Model.Timeout
	}

	// Models
	if other.Models.File != "" {
		c.Models.File = other.Models.File
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
