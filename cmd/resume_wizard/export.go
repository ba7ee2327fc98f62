package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-wizard/internal/render"
	"github.com/jonathan/resume-wizard/internal/store"
)

var (
	exportStatePath string
	exportOutDir    string
	exportFormat    string
	exportTimeout   time.Duration
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the saved resume to HTML, PDF, and DOCX",
	Long:  `Render the locally saved wizard state into export files. PDF rendering requires Chrome or Chromium on the system.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportStatePath, "state", "", "Path to the wizard state file (default: user config dir)")
	exportCmd.Flags().StringVar(&exportOutDir, "out", ".", "Output directory")
	exportCmd.Flags().StringVar(&exportFormat, "format", "all", "Format to export: html, pdf, docx, or all")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", 60*time.Second, "PDF rendering timeout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	switch exportFormat {
	case "html", "pdf", "docx", "all":
	default:
		return fmt.Errorf("unknown format %q: must be html, pdf, docx, or all", exportFormat)
	}

	persisted, err := stateStore(exportStatePath).Load()
	if err != nil {
		return err
	}
	if persisted == nil {
		return fmt.Errorf("no saved resume found; run the wizard or `resume_wizard parse --save` first")
	}
	doc := store.Merge(persisted).Resume()

	if err := os.MkdirAll(exportOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	wants := func(format string) bool {
		return exportFormat == "all" || exportFormat == format
	}

	// The formats are independent, so render them in parallel. PDF is the
	// slow one: it launches a browser.
	g, ctx := errgroup.WithContext(cmd.Context())

	if wants("html") {
		g.Go(func() error {
			path := filepath.Join(exportOutDir, "resume.html")
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			defer f.Close()
			if err := render.WriteHTML(f, doc); err != nil {
				return err
			}
			fmt.Println("Wrote", path)
			return nil
		})
	}

	if wants("pdf") {
		g.Go(func() error {
			pdf, err := render.PDF(ctx, doc, exportTimeout)
			if err != nil {
				return err
			}
			path := filepath.Join(exportOutDir, "resume.pdf")
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Println("Wrote", path)
			return nil
		})
	}

	if wants("docx") {
		g.Go(func() error {
			path := filepath.Join(exportOutDir, "resume.docx")
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			defer f.Close()
			if err := render.WriteDOCX(f, doc); err != nil {
				return err
			}
			fmt.Println("Wrote", path)
			return nil
		})
	}

	return g.Wait()
}
