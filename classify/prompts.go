package classify

import (
	"fmt"
	"strings"

	"github.com/nfrframework/nfrassist/query"
)

// classifierSystemPrompt keeps the model focused on structured output for
// the type classification stage.
const classifierSystemPrompt = "You are a requirements classification expert. Always respond with ONLY valid JSON, no other text."

// categorySystemPrompt is the stage 1 system message.
const categorySystemPrompt = "You are a requirements classification expert."

// categoryPrompt is the stage 1 few-shot prompt. The {requirement}
// placeholder is substituted at call time. The examples are weighted
// toward appearance-style "display" requirements, which are the most
// common misclassification.
const categoryPrompt = `You are an expert in software requirements classification.

Your task: Classify the requirement as either Functional (FR) or Non-Functional (NFR).

DEFINITIONS:

Functional Requirement (FR):
- Describes WHAT the system does
- Specifies behaviors, actions, functions, features
- Examples: search, display, store, process, authenticate

Non-Functional Requirement (NFR):
- Describes HOW WELL the system performs
- Specifies quality attributes, constraints, performance criteria
- Examples: fast, secure, usable, reliable, available

FEW-SHOT EXAMPLES:

"The system shall allow users to search for products"
→ {"classification": "FR"}

"The system shall respond within 2 seconds"
→ {"classification": "NFR"}

"Only authorized users can access the system"
→ {"classification": "NFR"}

"The system shall display data in a graph"
→ {"classification": "FR"}

"The system must be available 99.9% of the time"
→ {"classification": "NFR"}

"The interface shall have standard navigation buttons"
→ {"classification": "NFR"}

"The system shall display user data in a table"
→ {"classification": "FR"}

"The product shall match the company color schema"
→ {"classification": "NFR"}

"The product shall display grids within a circle as a periscope view"
→ {"classification": "NFR"}

"The product shall display each ship using an image of that ship type"
→ {"classification": "NFR"}

"The product shall use symbols naturally understandable by users"
→ {"classification": "NFR"}

"When player takes shot, product shall simulate sound of ship at sea"
→ {"classification": "NFR"}

"The system shall display search results to the user"
→ {"classification": "FR"}

RULES:
1. Focus on the PRIMARY intent
2. WHAT the system does → FR
3. HOW WELL or HOW IT LOOKS → NFR
4. "display" + appearance/style → NFR
5. "display" + data/content → FR

Return ONLY JSON:
{"classification": "FR"} or {"classification": "NFR"}

Requirement: {requirement}`

// buildCategoryPrompt substitutes the requirement into the stage 1 prompt.
func buildCategoryPrompt(requirement string) string {
	return strings.Replace(categoryPrompt, "{requirement}", requirement, 1)
}

// buildTypePrompt builds the stage 2 prompt from the live type inventory.
// FR prompts invite a new type suggestion; NFR prompts do not, since the
// quality attribute taxonomy is considered closed.
func buildTypePrompt(req ClassificationRequest) string {
	var b strings.Builder

	if req.Category == query.CategoryFR {
		b.WriteString("Classify this functional requirement into one of these operation types:\n\n")
	} else {
		b.WriteString("Classify this non-functional requirement into one of these NFR types:\n\n")
	}

	for _, t := range req.CandidateTypes {
		fmt.Fprintf(&b, "- %s: %s\n", t.Name, t.Description)
	}

	if req.Category == query.CategoryFR {
		b.WriteString("\nOr suggest a new operation type if none fit well.\n")
	}

	b.WriteString("\nIMPORTANT: Return ONLY a JSON object, nothing else. No explanation, no reasoning.\n")
	b.WriteString("Format: {\"type\": \"TypeName\"}\n\n")
	fmt.Fprintf(&b, "Requirement: %s", req.Text)

	return b.String()
}
