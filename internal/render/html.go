// Package render turns a resume document into its export formats: HTML,
// PDF via headless Chrome, and DOCX.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/jonathan/resume-wizard/internal/resume"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

var resumeTemplates = template.Must(template.ParseFS(templateFiles, "templates/*.tmpl"))

// WriteHTML renders the document as a standalone HTML page laid out
// according to its template kind.
func WriteHTML(w io.Writer, doc resume.Resume) error {
	name := string(doc.Template)
	if resumeTemplates.Lookup(name) == nil {
		name = string(resume.TemplateChronological)
	}
	if err := resumeTemplates.ExecuteTemplate(w, name, doc); err != nil {
		return fmt.Errorf("failed to render resume html: %w", err)
	}
	return nil
}

// HTML renders the document and returns the page as a string.
func HTML(doc resume.Resume) (string, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
