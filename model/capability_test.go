package model

import "testing"

func TestCapabilityForAction(t *testing.T) {
	tests := []struct {
		action   string
		expected Capability
	}{
		{"classify_requirement", CapabilityClassify},
		{"define_entity", CapabilityExplain},
		{"decompose", CapabilityExplain},
		{"show_operationalizations", CapabilityExplain},
		{"analyze_contributions", CapabilityExplain},
		// Fallback
		{"unknown-action", CapabilityFast},
		{"", CapabilityFast},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			got := CapabilityForAction(tt.action)
			if got != tt.expected {
				t.Errorf("CapabilityForAction(%q) = %q, want %q", tt.action, got, tt.expected)
			}
		})
	}
}

func TestCapabilityIsValid(t *testing.T) {
	tests := []struct {
		cap      Capability
		expected bool
	}{
		{CapabilityClassify, true},
		{CapabilityExplain, true},
		{CapabilityFast, true},
		{Capability("invalid"), false},
		{Capability(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.cap), func(t *testing.T) {
			got := tt.cap.IsValid()
			if got != tt.expected {
				t.Errorf("Capability(%q).IsValid() = %v, want %v", tt.cap, got, tt.expected)
			}
		})
	}
}

func TestParseCapability(t *testing.T) {
	tests := []struct {
		input    string
		expected Capability
	}{
		{"classify", CapabilityClassify},
		{"explain", CapabilityExplain},
		{"fast", CapabilityFast},
		{"invalid", ""},
		{"", ""},
		{"CLASSIFY", ""}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseCapability(tt.input)
			if got != tt.expected {
				t.Errorf("ParseCapability(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
