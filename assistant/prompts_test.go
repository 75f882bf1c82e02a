package assistant

import (
	"strings"
	"testing"
)

func TestBuildPromptSubstitutesPlaceholders(t *testing.T) {
	got := buildPrompt(ActionDecompose, "Security", "CONTEXT-BLOCK")

	if !strings.Contains(got, "Decompose Security") {
		t.Errorf("user input not substituted: %q", got)
	}
	if !strings.Contains(got, "CONTEXT-BLOCK") {
		t.Errorf("context not substituted: %q", got)
	}
	if strings.Contains(got, "{user_input}") || strings.Contains(got, "{context}") {
		t.Errorf("placeholder left in prompt: %q", got)
	}
}

func TestBuildPromptUnknownActionFallsBackToDefault(t *testing.T) {
	got := buildPrompt("no_such_action", "hello", "data")

	if !strings.Contains(got, "User query: hello") {
		t.Errorf("default template not used: %q", got)
	}
	if !strings.Contains(got, "Metamodel data:\ndata") {
		t.Errorf("default template missing context: %q", got)
	}
}

func TestEveryActionHasTemplateAndBudget(t *testing.T) {
	actions := []string{
		ActionWhatIs, ActionDefineNFR, ActionBrowse, ActionDecompose,
		ActionOperationalize, ActionSideEffects, ActionShowExamples, ActionVerify,
	}
	for _, a := range actions {
		if _, ok := promptTemplates[a]; !ok {
			t.Errorf("action %s has no prompt template", a)
		}
		if maxTokensFor(a) <= 0 {
			t.Errorf("action %s has no token budget", a)
		}
	}
}

func TestMaxTokensFor(t *testing.T) {
	tests := []struct {
		action string
		want   int
	}{
		{ActionShowExamples, 200},
		{ActionWhatIs, 280},
		{ActionOperationalize, 400},
		{ActionVerify, 500},
		{ActionDecompose, 600},
		{ActionSideEffects, 700},
		{"unknown", 250},
	}
	for _, tt := range tests {
		if got := maxTokensFor(tt.action); got != tt.want {
			t.Errorf("maxTokensFor(%s) = %d, want %d", tt.action, got, tt.want)
		}
	}
}
