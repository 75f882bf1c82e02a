// Package assistant answers menu-driven elicitation requests. Each action
// resolves the user's entity against the ontology, renders the relevant
// metamodel data into a context block, and asks an LLM to explain it with a
// per-action token budget. When the model is unavailable the raw context is
// returned instead, so the assistant degrades to a structural browser rather
// than failing.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nfrframework/nfrassist/llm"
	"github.com/nfrframework/nfrassist/metamodel"
	"github.com/nfrframework/nfrassist/model"
	"github.com/nfrframework/nfrassist/query"
)

// Menu actions. The names double as prompt-template keys and as capability
// lookup keys in the model registry.
const (
	ActionWhatIs         = "define_entity"
	ActionDefineNFR      = "define_nfr"
	ActionBrowse         = "browse_entity"
	ActionDecompose      = "decompose"
	ActionOperationalize = "show_operationalizations"
	ActionSideEffects    = "analyze_contributions"
	ActionShowExamples   = "show_examples"
	ActionClaims         = "show_claims"
	ActionVerify         = "verify"

	actionDefault = "default"
)

// FollowUp suggests a next action a frontend can offer after a response,
// e.g. decomposing the entity that was just defined.
type FollowUp struct {
	// Label is display text, e.g. "Decompose Security".
	Label string
	// Action is the menu action to run.
	Action string
	// Entity is the canonical ontology name to run it on.
	Entity string
}

// Response is the result of one menu action. Text is always populated, even
// when the entity was not found or the LLM call failed.
type Response struct {
	Text      string
	FollowUps []FollowUp
}

// Assistant dispatches menu actions against the ontology and an LLM.
// Safe for concurrent use.
type Assistant struct {
	engine      *query.Engine
	llm         llm.Completer
	logger      *slog.Logger
	temperature float64
	topP        float64
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Assistant) { a.logger = l }
}

// WithSampling overrides the default explanation sampling parameters.
func WithSampling(temperature, topP float64) Option {
	return func(a *Assistant) {
		a.temperature = temperature
		a.topP = topP
	}
}

// New creates an Assistant over the given query engine and completer.
func New(engine *query.Engine, completer llm.Completer, opts ...Option) *Assistant {
	a := &Assistant{
		engine:      engine,
		llm:         completer,
		logger:      slog.Default(),
		temperature: explainTemperature,
		topP:        explainTopP,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handle runs one menu action synchronously. It never returns an error:
// unresolvable entities and LLM failures all surface as Response text.
func (a *Assistant) Handle(ctx context.Context, action, input string) Response {
	switch action {
	case ActionWhatIs, ActionShowExamples:
		return a.whatIs(ctx, action, input)
	case ActionDefineNFR, ActionBrowse:
		return a.define(ctx, action, input)
	case ActionDecompose:
		return a.decompose(ctx, input)
	case ActionOperationalize:
		return a.operationalize(ctx, input)
	case ActionSideEffects:
		return a.sideEffects(ctx, input)
	case ActionClaims:
		return a.claims(input)
	case ActionVerify:
		return a.verify(ctx, input)
	default:
		return Response{Text: a.explain(ctx, actionDefault, input, overviewContext(a.engine))}
	}
}

// Dispatch runs Handle on its own goroutine and delivers the response to
// callback. Frontends call this from their event loop; the callback runs on
// the request goroutine.
func (a *Assistant) Dispatch(action, input string, callback func(Response)) {
	go func() {
		callback(a.Handle(context.Background(), action, input))
	}()
}

// whatIs answers "What is X?" for any ontology entity, type or instance.
func (a *Assistant) whatIs(ctx context.Context, action, input string) Response {
	name, note, n, ok := a.resolve(input)
	if !ok {
		return Response{Text: note}
	}

	text := note + a.explain(ctx, action, input, entityContext(a.engine, n))
	display := query.DisplayName(name)
	return Response{
		Text: text,
		FollowUps: []FollowUp{
			{Label: "Decompose " + display, Action: ActionDecompose, Entity: name},
			{Label: fmt.Sprintf("How to achieve %s?", display), Action: ActionOperationalize, Entity: name},
		},
	}
}

// define explains an NFR type from its hierarchy position, or browses its
// decompositions and correlation rules.
func (a *Assistant) define(ctx context.Context, action, input string) Response {
	name, note, n, ok := a.resolve(input)
	if !ok {
		return Response{Text: note}
	}

	var ctxBlock string
	if action == ActionBrowse {
		ctxBlock = browseContext(a.engine, n)
	} else {
		ctxBlock = nfrTypeContext(a.engine, n)
	}
	display := query.DisplayName(name)
	return Response{
		Text: note + a.explain(ctx, action, display, ctxBlock),
		FollowUps: []FollowUp{
			{Label: "Decompose " + display, Action: ActionDecompose, Entity: name},
		},
	}
}

func (a *Assistant) decompose(ctx context.Context, input string) Response {
	name, note, n, ok := a.resolve(input)
	if !ok {
		return Response{Text: note}
	}
	display := query.DisplayName(name)

	decomps := a.engine.DecompositionsFor(n)
	if len(decomps) == 0 {
		return Response{Text: fmt.Sprintf("%s has no decomposition methods defined.", display)}
	}

	text := note + a.explain(ctx, ActionDecompose, display, decomposeContext(name, decomps))
	return Response{
		Text: text,
		FollowUps: []FollowUp{
			{Label: fmt.Sprintf("How to achieve %s?", display), Action: ActionOperationalize, Entity: name},
		},
	}
}

func (a *Assistant) operationalize(ctx context.Context, input string) Response {
	name, note, _, ok := a.resolve(input)
	if !ok {
		return Response{Text: note}
	}
	display := query.DisplayName(name)

	results := a.engine.Achieve(name)
	if len(results) == 0 {
		return Response{Text: fmt.Sprintf("No operationalizations found for '%s'.\n\nTry: Indexing→Performance, Encryption→Security, etc.", display)}
	}

	text := note + a.explain(ctx, ActionOperationalize, display, achieveContext(name, results))
	followUps := make([]FollowUp, 0, len(results)+1)
	for _, r := range results {
		followUps = append(followUps, FollowUp{
			Label:  "Side effects of " + query.DisplayName(r.Source),
			Action: ActionSideEffects,
			Entity: r.Source,
		})
	}
	followUps = append(followUps, FollowUp{
		Label:  "View Claims/Justifications",
		Action: ActionClaims,
		Entity: name,
	})
	return Response{Text: text, FollowUps: followUps}
}

func (a *Assistant) sideEffects(ctx context.Context, input string) Response {
	name, note, _, ok := a.resolve(input)
	if !ok {
		return Response{Text: note}
	}
	display := query.DisplayName(name)

	contribs := a.engine.ContributionsFrom(name)
	if len(contribs) == 0 {
		return Response{Text: fmt.Sprintf("No contribution information found for '%s'.", display)}
	}

	text := note + a.explain(ctx, ActionSideEffects, display, sideEffectsContext(name, contribs))
	return Response{Text: text}
}

// claims is purely structural: scholarly citations are shown verbatim, never
// paraphrased by a model.
func (a *Assistant) claims(input string) Response {
	name, note, n, ok := a.resolve(input)
	if !ok {
		return Response{Text: note}
	}
	display := query.DisplayName(name)

	decomps := a.engine.DecompositionsFor(n)
	if len(decomps) == 0 {
		return Response{Text: fmt.Sprintf("No decompositions (and therefore no claims) found for '%s'.", display)}
	}
	return Response{Text: note + claimsText(a.engine, name, decomps)}
}

func (a *Assistant) verify(ctx context.Context, input string) Response {
	return Response{Text: a.explain(ctx, ActionVerify, input, verifyContext(a.engine, input))}
}

// resolve fuzzy-matches free text to a canonical entity. The note is empty
// for exact matches and carries the match confirmation otherwise; ok is false
// when nothing matched and note explains that to the user.
func (a *Assistant) resolve(input string) (name, note string, n *metamodel.TypeNode, ok bool) {
	name, note = a.engine.FuzzyMatch(input)
	if name == "" {
		return "", note, nil, false
	}
	node, found := a.engine.Registry().Lookup(name)
	if !found {
		return "", fmt.Sprintf("Could not find entity: %s\n\nTry: Performance, Security, Usability, Indexing, Encryption, etc.", input), nil, false
	}
	return name, note, node, true
}

// explain asks the LLM to present the context block. On any failure it
// returns the raw context so the user still sees the metamodel data.
func (a *Assistant) explain(ctx context.Context, action, userInput, contextBlock string) string {
	temp := a.temperature
	topP := a.topP
	req := llm.Request{
		Capability: model.CapabilityForAction(action).String(),
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(action, userInput, contextBlock)},
		},
		Temperature: &temp,
		TopP:        &topP,
		MaxTokens:   maxTokensFor(action),
	}

	resp, err := a.llm.Complete(ctx, req)
	if err != nil {
		a.logger.Warn("explanation call failed, returning raw context",
			"action", action,
			"error", err)
		return fmt.Sprintf("Error generating LLM response: %v\n\n---\n\nRaw metamodel data:\n%s", err, contextBlock)
	}
	out := strings.TrimSpace(resp.Content)
	if out == "" {
		return contextBlock
	}
	return out
}
