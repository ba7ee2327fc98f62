package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-wizard/internal/llm"
	"github.com/jonathan/resume-wizard/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the builder endpoints: bullet enhancement, chat intake, resume parsing, and shared drafts.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	llmCfg := llm.ConfigFromEnv()
	apiKey, err := apiKeyFor(llmCfg.Provider)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(cmd.Context(), llmCfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create AI client: %w", err)
	}

	cfg := server.Config{
		Port:             servePort,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DraftTokenSecret: os.Getenv("DRAFT_TOKEN_SECRET"),
		DraftTokenTTL:    72 * time.Hour,
	}

	srv, err := server.New(cfg, client)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// apiKeyFor reads the provider's API key from the environment.
func apiKeyFor(provider llm.Provider) (string, error) {
	switch provider {
	case llm.ProviderGemini:
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			return key, nil
		}
		return "", fmt.Errorf("GEMINI_API_KEY environment variable is required")
	default:
		if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
			return key, nil
		}
		return "", fmt.Errorf("OPENROUTER_API_KEY environment variable is required")
	}
}

// newAIClient builds a client for one-off CLI calls.
func newAIClient(ctx context.Context) (llm.Client, error) {
	llmCfg := llm.ConfigFromEnv()
	apiKey, err := apiKeyFor(llmCfg.Provider)
	if err != nil {
		return nil, err
	}
	return llm.NewClient(ctx, llmCfg, apiKey)
}
