// Package classify implements a two-stage LLM requirement classifier:
// stage 1 decides functional vs non-functional, stage 2 picks the specific
// quality attribute or operationalizing technique from the ontology.
//
// The classifier is a total function: both stages recover from malformed
// LLM output and transport failures by returning fallback values and
// warnings, never errors.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nfrframework/nfrassist/llm"
	"github.com/nfrframework/nfrassist/query"
)

// Sampling settings for both stages. Low temperature keeps the JSON
// output stable; the completion budgets only need to cover a tiny object.
const (
	classifyTemperature = 0.3
	categoryMaxTokens   = 50
	typeMaxTokens       = 30
)

// CategoryFR and CategoryNFR are the stage 1 results.
const (
	CategoryFR  = "FR"
	CategoryNFR = "NFR"
)

// ClassificationRequest is the typed contract between the classifier and
// the prompt builder: the requirement text plus the candidate types active
// in the registry for the category being classified.
type ClassificationRequest struct {
	Text           string
	Category       query.Category
	CandidateTypes []query.TypeInfo
}

// Result is the outcome of a full two-stage classification.
type Result struct {
	// Category is "FR" or "NFR".
	Category string
	// Type is the specific type name. Either a canonical registry name,
	// a raw LLM suggestion (with Warning set), or "Unknown".
	Type string
	// Warning is non-empty when the type fell outside the registry or the
	// LLM reply could not be parsed. It is a reportable outcome, not an error.
	Warning string
}

// Classifier runs the two-stage pipeline against an LLM completer.
type Classifier struct {
	llm    llm.Completer
	engine *query.Engine
	logger *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		c.logger = logger
	}
}

// New creates a Classifier backed by the given completer and query engine.
func New(completer llm.Completer, engine *query.Engine, opts ...Option) *Classifier {
	c := &Classifier{
		llm:    completer,
		engine: engine,
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Classify runs both stages and returns the combined result.
func (c *Classifier) Classify(ctx context.Context, text string) Result {
	category := c.Category(ctx, text)
	typeName, warning := c.SpecificType(ctx, text, category)
	return Result{
		Category: category,
		Type:     typeName,
		Warning:  warning,
	}
}

// Category classifies the requirement as "FR" or "NFR" (stage 1).
//
// Parse order: JSON {"classification": ...}, then a substring search for
// "NFR" in the raw reply. Anything still ambiguous, including a failed LLM
// call, defaults to "FR".
func (c *Classifier) Category(ctx context.Context, text string) string {
	temp := classifyTemperature
	resp, err := c.llm.Complete(ctx, llm.Request{
		Capability: "classify",
		Messages: []llm.Message{
			{Role: "system", Content: categorySystemPrompt},
			{Role: "user", Content: buildCategoryPrompt(text)},
		},
		Temperature: &temp,
		MaxTokens:   categoryMaxTokens,
	})
	if err != nil {
		c.logger.Warn("Category classification call failed, defaulting to FR", "error", err)
		return CategoryFR
	}

	reply := strings.TrimSpace(resp.Content)

	var parsed struct {
		Classification string `json:"classification"`
	}
	if err := json.Unmarshal([]byte(reply), &parsed); err == nil {
		switch strings.ToUpper(parsed.Classification) {
		case CategoryFR:
			return CategoryFR
		case CategoryNFR:
			return CategoryNFR
		}
		return CategoryFR
	}

	if strings.Contains(strings.ToUpper(reply), CategoryNFR) {
		return CategoryNFR
	}
	return CategoryFR
}

// SpecificType classifies the requirement into a specific type for the
// given category (stage 2). It returns (typeName, warning); warning is
// empty when the name matched the registry. The name is never empty:
// unmatched suggestions come back raw with a warning, and unparseable
// replies come back as "Unknown".
func (c *Classifier) SpecificType(ctx context.Context, text, category string) (string, string) {
	cat := query.CategoryFR
	if strings.EqualFold(category, CategoryNFR) {
		cat = query.CategoryNFR
	}

	req := ClassificationRequest{
		Text:           text,
		Category:       cat,
		CandidateTypes: c.engine.TypeDescriptions(cat),
	}

	temp := classifyTemperature
	resp, err := c.llm.Complete(ctx, llm.Request{
		Capability: "classify",
		Messages: []llm.Message{
			{Role: "system", Content: classifierSystemPrompt},
			{Role: "user", Content: buildTypePrompt(req)},
		},
		Temperature: &temp,
		MaxTokens:   typeMaxTokens,
	})
	if err != nil {
		c.logger.Warn("Type classification call failed", "category", category, "error", err)
		return "Unknown", fmt.Sprintf("Classification error: %v", err)
	}

	reply := strings.TrimSpace(resp.Content)

	if raw, ok := extractTypeValue(reply); ok {
		candidate := raw
		if cat == query.CategoryFR {
			// The registry stores operationalizations as nouns, but the
			// model often answers with the verb from the requirement.
			candidate = verbToNoun(raw)
		}

		if canonical, ok := matchCandidate(candidate, req.CandidateTypes); ok {
			return canonical, ""
		}
		return candidate, fmt.Sprintf("LLM suggested new type: '%s' (not in metamodel)", candidate)
	}

	// No JSON anywhere; scan the prose for a known type name.
	names := make([]string, len(req.CandidateTypes))
	for i, t := range req.CandidateTypes {
		names[i] = t.Name
	}
	if found := findKnownType(reply, names); found != "" {
		return found, ""
	}

	return "Unknown", fmt.Sprintf("Could not parse LLM response: '%s...'", truncate(reply, 80))
}

// matchCandidate resolves a candidate name against the registry's active
// types, case-insensitively, returning the canonical casing.
func matchCandidate(candidate string, types []query.TypeInfo) (string, bool) {
	for _, t := range types {
		if strings.EqualFold(candidate, t.Name) {
			return t.Name, true
		}
	}
	return "", false
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
