package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model.Default != "llama3.1:8b" {
		t.Errorf("expected default model llama3.1:8b, got %s", cfg.Model.Default)
	}
	if cfg.Model.Endpoint != "http://localhost:11434/v1" {
		t.Errorf("expected default endpoint http://localhost:11434/v1, got %s", cfg.Model.Endpoint)
	}
	if cfg.Model.Temperature != 0.3 {
		t.Errorf("expected default temperature 0.3, got %f", cfg.Model.Temperature)
	}
	if cfg.Model.TopP != 0.8 {
		t.Errorf("expected default top_p 0.8, got %f", cfg.Model.TopP)
	}
	if cfg.Model.ContextWindow != 2048 {
		t.Errorf("expected default context window 2048, got %d", cfg.Model.ContextWindow)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Log.Level)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing model default",
			modify:  func(c *Config) { c.Model.Default = "" },
			wantErr: true,
		},
		{
			name:    "missing model endpoint",
			modify:  func(c *Config) { c.Model.Endpoint = "" },
			wantErr: true,
		},
		{
			name:    "temperature too low",
			modify:  func(c *Config) { c.Model.Temperature = -0.1 },
			wantErr: true,
		},
		{
			name:    "temperature too high",
			modify:  func(c *Config) { c.Model.Temperature = 1.1 },
			wantErr: true,
		},
		{
			name:    "top_p too high",
			modify:  func(c *Config) { c.Model.TopP = 1.5 },
			wantErr: true,
		},
		{
			name:    "negative context window",
			modify:  func(c *Config) { c.Model.ContextWindow = -1 },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "empty log level allowed",
			modify:  func(c *Config) { c.Log.Level = "" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temp file with config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
model:
  default: "test-model"
  endpoint: "http://test:1234/v1"
  temperature: 0.5
  top_p: 0.9
  context_window: 4096
  timeout: 10m
models:
  file: "/test/models.json"
log:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Model.Default != "test-model" {
		t.Errorf("expected model test-model, got %s", cfg.Model.Default)
	}
	if cfg.Model.Endpoint != "http://test:1234/v1" {
		t.Errorf("expected endpoint http://test:1234/v1, got %s", cfg.Model.Endpoint)
	}
	if cfg.Model.Temperature != 0.5 {
		t.Errorf("expected temperature 0.5, got %f", cfg.Model.Temperature)
	}
	if cfg.Model.TopP != 0.9 {
		t.Errorf("expected top_p 0.9, got %f", cfg.Model.TopP)
	}
	if cfg.Model.ContextWindow != 4096 {
		t.Errorf("expected context window 4096, got %d", cfg.Model.ContextWindow)
	}
	if cfg.Model.Timeout != 10*time.Minute {
		t.Errorf("expected timeout 10m, got %v", cfg.Model.Timeout)
	}
	if cfg.Models.File != "/test/models.json" {
		t.Errorf("expected models file /test/models.json, got %s", cfg.Models.File)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Model: ModelConfig{
			Default: "override-model",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}

	base.Merge(override)

	if base.Model.Default != "override-model" {
		t.Errorf("expected model override-model, got %s", base.Model.Default)
	}
	// Endpoint should remain from base since override didn't set it
	if base.Model.Endpoint != "http://localhost:11434/v1" {
		t.Errorf("expected endpoint to remain default, got %s", base.Model.Endpoint)
	}
	if base.Model.TopP != 0.8 {
		t.Errorf("expected top_p to remain default, got %f", base.Model.TopP)
	}
	if base.Log.Level != "warn" {
		t.Errorf("expected log level warn, got %s", base.Log.Level)
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Model.Default = "saved-model"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Model.Default != "saved-model" {
		t.Errorf("expected model saved-model, got %s", loaded.Model.Default)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"error", "ERROR"},
		{"", "INFO"},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Log.Level = tt.level
		if got := cfg.SlogLevel().String(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %s, want %s", tt.level, got, tt.want)
		}
	}
}
