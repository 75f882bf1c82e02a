// Package main provides the nfrassist binary entry point.
// Nfrassist is an NFR elicitation assistant: it classifies requirements
// against the NFR Framework ontology and explains decompositions,
// operationalizations and trade-offs with LLM support.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"strings"

	// Register LLM providers via init()
	_ "github.com/nfrframework/nfrassist/llm/providers"

	"github.com/nfrframework/nfrassist/assistant"
	"github.com/nfrframework/nfrassist/classify"
	"github.com/nfrframework/nfrassist/config"
	"github.com/nfrframework/nfrassist/export"
	"github.com/nfrframework/nfrassist/llm"
	"github.com/nfrframework/nfrassist/metamodel"
	"github.com/nfrframework/nfrassist/model"
	"github.com/nfrframework/nfrassist/query"
	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "nfrassist"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app wires the ontology, classifier and assistant behind the CLI commands.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *query.Engine
	classifier *classify.Classifier
	assistant  *assistant.Assistant
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "NFR elicitation assistant",
		Long: `Nfrassist helps requirements engineers work with the NFR Framework.

It provides:
- Two-stage classification of requirement text (FR/NFR, then specific type)
- Decomposition, operationalization and trade-off queries over the ontology
- LLM-backed explanations grounded in the metamodel

LLM calls go to a local Ollama endpoint by default; see nfrassist.yaml.`,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	newApp := func() (*app, error) { return setup(logLevel) }

	cmd.AddCommand(classifyCmd(newApp))
	cmd.AddCommand(askCmd(newApp))
	cmd.AddCommand(typesCmd(newApp))
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// setup loads config and builds the full stack. The ontology is compiled in;
// only model endpoints come from configuration.
func setup(logLevel string) (*app, error) {
	cfg, err := config.NewLoader(slog.Default()).Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	registry := model.NewDefaultRegistry()
	if cfg.Models.File != "" {
		registry, err = model.LoadFromFile(cfg.Models.File)
		if err != nil {
			return nil, fmt.Errorf("loading model registry: %w", err)
		}
	}
	// Point every local endpoint at the configured Ollama URL.
	if cfg.Model.Endpoint != "" {
		for _, name := range registry.ListEndpoints() {
			if ep := registry.GetEndpoint(name); ep != nil && ep.Provider == "ollama" {
				updated := *ep
				updated.URL = cfg.Model.Endpoint
				registry.SetEndpoint(name, &updated)
			}
		}
	}
	if cfg.Model.Default != "" {
		if registry.GetEndpoint(cfg.Model.Default) == nil {
			registry.SetEndpoint(cfg.Model.Default, &model.EndpointConfig{
				Provider:  "ollama",
				URL:       cfg.Model.Endpoint,
				Model:     cfg.Model.Default,
				MaxTokens: cfg.Model.ContextWindow,
			})
		}
		registry.SetDefault(cfg.Model.Default)
	}

	client := llm.NewClient(registry,
		llm.WithLogger(logger),
		llm.WithHTTPClient(&http.Client{Timeout: cfg.Model.Timeout}))
	engine := query.NewEngine(metamodel.BuildRegistry(), query.WithLogger(logger))

	return &app{
		cfg:        cfg,
		logger:     logger,
		engine:     engine,
		classifier: classify.New(client, engine, classify.WithLogger(logger)),
		assistant: assistant.New(engine, client,
			assistant.WithLogger(logger),
			assistant.WithSampling(cfg.Model.Temperature, cfg.Model.TopP)),
	}, nil
}

func classifyCmd(newApp func() (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <requirement text>",
		Short: "Classify a requirement as FR or NFR with a specific type",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			result := a.classifier.Classify(context.Background(), strings.Join(args, " "))

			fmt.Printf("Category: %s\n", result.Category)
			fmt.Printf("Type:     %s\n", result.Type)
			if result.Warning != "" {
				fmt.Printf("Warning:  %s\n", result.Warning)
			}
			return nil
		},
	}
}

// askActions maps ask subcommand verbs to assistant actions.
var askActions = map[string]string{
	"define":       assistant.ActionWhatIs,
	"browse":       assistant.ActionBrowse,
	"decompose":    assistant.ActionDecompose,
	"achieve":      assistant.ActionOperationalize,
	"side-effects": assistant.ActionSideEffects,
	"claims":       assistant.ActionClaims,
	"verify":       assistant.ActionVerify,
}

func askCmd(newApp func() (*app, error)) *cobra.Command {
	verbs := make([]string, 0, len(askActions))
	for v := range askActions {
		verbs = append(verbs, v)
	}

	return &cobra.Command{
		Use:   "ask <verb> <entity or statement>",
		Short: "Ask the assistant about the ontology",
		Long: `Ask the assistant about the ontology.

Verbs:
  define        What is the entity?
  browse        Decompositions and correlation rules for the entity
  decompose     Explain the entity's decomposition methods
  achieve       Techniques that operationalize the entity, with trade-offs
  side-effects  Contribution edges originating at a technique
  claims        Scholarly justifications for the entity's decompositions
  verify        Check a free-form statement against the metamodel`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, ok := askActions[args[0]]
			if !ok {
				return fmt.Errorf("unknown verb %q (want one of: %s)", args[0], strings.Join(verbs, ", "))
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			resp := a.assistant.Handle(context.Background(), action, strings.Join(args[1:], " "))
			fmt.Println(resp.Text)

			if len(resp.FollowUps) > 0 {
				fmt.Println("\nNext:")
				for _, f := range resp.FollowUps {
					fmt.Printf("  • %s\n", f.Label)
				}
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Serialize the ontology to RDF on stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := export.NewExporter(metamodel.BuildRegistry()).Export(export.Format(format))
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(export.FormatTurtle), "Output format (turtle, ntriples)")
	return cmd
}

func typesCmd(newApp func() (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:       "types [nfr|fr]",
		Short:     "List the ontology's NFR or operationalization types",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"nfr", "fr"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			category := query.CategoryNFR
			if len(args) == 1 && strings.EqualFold(args[0], "fr") {
				category = query.CategoryFR
			}

			for _, info := range a.engine.TypeDescriptions(category) {
				if info.Description != "" {
					fmt.Printf("%-24s %s\n", info.Name, info.Description)
				} else {
					fmt.Println(info.Name)
				}
			}
			return nil
		},
	}
}
