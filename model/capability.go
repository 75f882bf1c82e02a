// Package model provides capability-based model selection for assistant
// tasks. Instead of hardcoding model names, callers specify capabilities
// (classify, explain, fast) and the registry resolves them to available
// models with fallback chains.
package model

// Capability represents a semantic capability for model selection.
// Instead of specifying "llama3.1:8b", callers specify "classify" or
// "explain".
type Capability string

const (
	// CapabilityClassify is for requirement classification: short, structured
	// JSON answers at low temperature.
	CapabilityClassify Capability = "classify"

	// CapabilityExplain is for conversational explanation of ontology
	// results: definitions, decomposition walkthroughs, trade-off analysis.
	CapabilityExplain Capability = "explain"

	// CapabilityFast is for quick responses, simple tasks.
	CapabilityFast Capability = "fast"
)

// ActionCapabilities maps assistant menu actions to their default capability.
// Used when no explicit capability or model is specified.
var ActionCapabilities = map[string]Capability{
	"classify_requirement":     CapabilityClassify,
	"define_entity":            CapabilityExplain,
	"define_nfr":               CapabilityExplain,
	"browse_entity":            CapabilityExplain,
	"decompose":                CapabilityExplain,
	"show_operationalizations": CapabilityExplain,
	"analyze_contributions":    CapabilityExplain,
	"show_examples":            CapabilityExplain,
	"verify":                   CapabilityExplain,
}

// CapabilityForAction returns the default capability for an assistant action.
// Returns CapabilityFast for unknown actions.
func CapabilityForAction(action string) Capability {
	if c, ok := ActionCapabilities[action]; ok {
		return c
	}
	return CapabilityFast
}

// IsValid checks if a capability string is a known capability.
func (c Capability) IsValid() bool {
	switch c {
	case CapabilityClassify, CapabilityExplain, CapabilityFast:
		return true
	}
	return false
}

// String returns the string representation of the capability.
func (c Capability) String() string {
	return string(c)
}

// ParseCapability converts a string to a Capability, returning empty for
// invalid values.
func ParseCapability(s string) Capability {
	c := Capability(s)
	if c.IsValid() {
		return c
	}
	return ""
}
