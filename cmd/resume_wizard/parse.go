package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-wizard/internal/llm"
	"github.com/jonathan/resume-wizard/internal/normalize"
	"github.com/jonathan/resume-wizard/internal/prompts"
	"github.com/jonathan/resume-wizard/internal/store"
)

var (
	parseSave      bool
	parseStatePath string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a plain-text resume into structured data",
	Long:  `Send resume text through the AI parser and print the normalized document as JSON. Reads from the given file, or stdin when omitted.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseSave, "save", false, "Save the parsed resume into the local wizard state")
	parseCmd.Flags().StringVar(&parseStatePath, "state", "", "Path to the wizard state file (default: user config dir)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var text []byte
	var err error
	if len(args) == 1 {
		text, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
	} else {
		text, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}
	if len(text) == 0 {
		return fmt.Errorf("resume text is empty")
	}

	client, err := newAIClient(cmd.Context())
	if err != nil {
		return err
	}
	defer client.Close()

	raw, err := client.Chat(cmd.Context(), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: prompts.MustGet("parse.json", "system")},
			{Role: llm.RoleUser, Content: "Parse this resume:\n\n" + string(text)},
		},
		Temperature: 0,
		MaxTokens:   4096,
		JSONOnly:    true,
	})
	if err != nil {
		return fmt.Errorf("resume parsing failed: %w", err)
	}

	parsed := llm.ExtractJSON(raw)
	if _, ok := parsed.(map[string]any); !ok {
		return fmt.Errorf("could not parse AI response into structured data")
	}

	doc := normalize.Resume(parsed, normalize.Limits{MaxSkills: 12, MaxAdditional: 10})

	if parseSave {
		fs := stateStore(parseStatePath)
		if err := fs.Save(&store.PersistedState{
			Template:           doc.Template,
			Name:               doc.Name,
			Contact:            doc.Contact,
			Objective:          doc.Objective,
			Education:          doc.Education,
			ExperienceSections: doc.ExperienceSections,
			Skills:             doc.Skills,
			AdditionalInfo:     doc.AdditionalInfo,
		}); err != nil {
			return err
		}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// stateStore resolves the wizard state file, honoring a --state override.
func stateStore(path string) *store.FileStore {
	if path != "" {
		return store.NewFileStore(path)
	}
	return store.DefaultFileStore()
}
