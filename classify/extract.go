package classify

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/nfrframework/nfrassist/llm"
)

// Patterns for digging a type name out of malformed LLM output.
var (
	// typeObjectPattern matches a flat JSON object containing a "type" key.
	typeObjectPattern = regexp.MustCompile(`\{[^{}]*"type"\s*:\s*"[^"]+"\s*[^{}]*\}`)
	// typeValuePattern matches a quoted "type": "Value" pair anywhere.
	typeValuePattern = regexp.MustCompile(`"type"\s*:\s*"([^"]+)"`)
	// typeBarePattern matches an unquoted type: Value pair.
	typeBarePattern = regexp.MustCompile(`(?i)type["\s]*:\s*["']?(\w+)["']?`)
)

// extractTypeValue pulls the "type" value out of an LLM response that may
// contain markdown fences, explanations, or malformed JSON. It returns
// ("", false) only when every extraction tier fails.
//
// Tiers, most to least strict:
//  1. direct JSON parse of the whole response
//  2. cleaned JSON via llm.ExtractJSON (code fences, comments, trailing commas)
//  3. flat {"type": "X"} object embedded in surrounding prose
//  4. quoted "type": "X" pair
//  5. unquoted type: X pair, case-insensitive
func extractTypeValue(text string) (string, bool) {
	text = strings.TrimSpace(text)

	if v, ok := parseTypeJSON(text); ok {
		return v, true
	}

	if cleaned := llm.ExtractJSON(text); cleaned != "" {
		if v, ok := parseTypeJSON(cleaned); ok {
			return v, true
		}
	}

	for _, m := range typeObjectPattern.FindAllString(text, -1) {
		if v, ok := parseTypeJSON(m); ok {
			return v, true
		}
	}

	if m := typeValuePattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}

	if m := typeBarePattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}

	return "", false
}

// parseTypeJSON parses text as JSON and returns a non-empty "type" value.
func parseTypeJSON(text string) (string, bool) {
	var parsed struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return "", false
	}
	if parsed.Type == "" {
		return "", false
	}
	return parsed.Type, true
}

// findKnownType scans free-form text for any of the known type names,
// case-insensitively. Used when JSON extraction fails completely.
func findKnownType(text string, valid []string) string {
	lower := strings.ToLower(text)
	for _, name := range valid {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}
	return ""
}
