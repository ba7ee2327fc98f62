// Package main provides the entry point for the resume wizard server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_wizard",
	Short: "Resume Wizard HTTP API server and export tools",
	Long:  "Resume Wizard powers a step-by-step resume builder: AI-backed bullet enhancement, chat intake, and resume parsing over REST, plus local export to HTML, PDF, and DOCX.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
