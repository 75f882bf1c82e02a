package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	caps := r.ListCapabilities()
	if len(caps) != 3 {
		t.Errorf("expected 3 capabilities, got %d", len(caps))
	}

	endpoints := r.ListEndpoints()
	if len(endpoints) < 2 {
		t.Errorf("expected at least 2 endpoints, got %d", len(endpoints))
	}

	if err := r.Validate(); err != nil {
		t.Errorf("default registry should be valid: %v", err)
	}
}

func TestRegistryResolve(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		capability Capability
		expected   string
	}{
		{CapabilityClassify, "llama3.1"},
		{CapabilityExplain, "llama3.1"},
		{CapabilityFast, "llama3.2"},
		{Capability("unknown"), "llama3.1"}, // falls back to default
	}

	for _, tt := range tests {
		t.Run(string(tt.capability), func(t *testing.T) {
			got := r.Resolve(tt.capability)
			if got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.capability, got, tt.expected)
			}
		})
	}
}

func TestRegistryGetFallbackChain(t *testing.T) {
	r := NewDefaultRegistry()

	chain := r.GetFallbackChain(CapabilityClassify)
	if len(chain) < 2 {
		t.Fatalf("expected at least 2 models in chain, got %d", len(chain))
	}
	if chain[0] != "llama3.1" {
		t.Errorf("first in chain should be llama3.1, got %q", chain[0])
	}

	found := false
	for _, m := range chain {
		if m == "llama3.2" {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected llama3.2 in fallback chain")
	}
}

func TestRegistryForAction(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		action   string
		expected string
	}{
		{"classify_requirement", "llama3.1"},
		{"analyze_contributions", "llama3.1"},
		{"unknown-action", "llama3.2"}, // fast capability
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			got := r.ForAction(tt.action)
			if got != tt.expected {
				t.Errorf("ForAction(%q) = %q, want %q", tt.action, got, tt.expected)
			}
		})
	}
}

func TestRegistryGetEndpoint(t *testing.T) {
	r := NewDefaultRegistry()

	ep := r.GetEndpoint("llama3.1")
	if ep == nil {
		t.Fatal("expected llama3.1 endpoint to exist")
	}
	if ep.Provider != "ollama" {
		t.Errorf("expected ollama provider, got %q", ep.Provider)
	}
	if ep.Model != "llama3.1:8b" {
		t.Errorf("expected llama3.1:8b model, got %q", ep.Model)
	}

	if ep := r.GetEndpoint("nonexistent"); ep != nil {
		t.Errorf("expected nil for unknown endpoint, got %+v", ep)
	}
}

func TestRegistrySetters(t *testing.T) {
	r := NewRegistry(nil, nil)

	r.SetCapability(CapabilityClassify, &CapabilityConfig{
		Preferred: []string{"model-a"},
	})
	r.SetEndpoint("model-a", &EndpointConfig{Provider: "test", Model: "test-model"})
	r.SetDefault("model-a")

	if got := r.Resolve(CapabilityClassify); got != "model-a" {
		t.Errorf("expected model-a, got %q", got)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestRegistryJSONRoundTrip(t *testing.T) {
	original := NewDefaultRegistry()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	restored := &Registry{}
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	origCaps := original.ListCapabilities()
	restCaps := restored.ListCapabilities()
	if len(origCaps) != len(restCaps) {
		t.Errorf("capability count mismatch: %d vs %d", len(origCaps), len(restCaps))
	}

	if got := restored.Resolve(CapabilityClassify); got != "llama3.1" {
		t.Errorf("expected llama3.1 for classify, got %q", got)
	}
}

func TestRegistryValidate(t *testing.T) {
	tests := []struct {
		name      string
		registry  *Registry
		wantError bool
		errorMsg  string
	}{
		{
			name:      "default registry is valid",
			registry:  NewDefaultRegistry(),
			wantError: false,
		},
		{
			name: "missing preferred model",
			registry: NewRegistry(
				map[Capability]*CapabilityConfig{
					CapabilityClassify: {
						Preferred: []string{"missing-model"},
					},
				},
				map[string]*EndpointConfig{
					"existing": {Provider: "test", Model: "test"},
				},
			),
			wantError: true,
			errorMsg:  "preferred model \"missing-model\" not found",
		},
		{
			name: "missing fallback model",
			registry: NewRegistry(
				map[Capability]*CapabilityConfig{
					CapabilityExplain: {
						Preferred: []string{"valid"},
						Fallback:  []string{"missing-fallback"},
					},
				},
				map[string]*EndpointConfig{
					"valid": {Provider: "test", Model: "test"},
				},
			),
			wantError: true,
			errorMsg:  "fallback model \"missing-fallback\" not found",
		},
		{
			name: "missing default model",
			registry: func() *Registry {
				r := NewRegistry(
					map[Capability]*CapabilityConfig{},
					map[string]*EndpointConfig{
						"existing": {Provider: "test", Model: "test"},
					},
				)
				r.SetDefault("nonexistent")
				return r
			}(),
			wantError: true,
			errorMsg:  "default model \"nonexistent\" not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.registry.Validate()
			if tt.wantError {
				if err == nil {
					t.Error("expected validation error, got nil")
				} else if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("error message should contain %q, got %q", tt.errorMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
