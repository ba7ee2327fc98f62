package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-wizard/internal/resume"
)

func sampleResume(tmpl resume.Template) resume.Resume {
	doc := resume.Empty()
	doc.Template = tmpl
	doc.Name = "Ada Lovelace"
	doc.Contact.Email = "ada@example.com"
	doc.Contact.Phone = "(555) 010-0101"
	doc.Objective = "Analytical engine programmer seeking new challenges"
	doc.Education = []resume.Education{{
		Institution: "University of London",
		Location:    "London, UK",
		Degree:      "BSc Mathematics",
		Dates:       "1833 - 1837",
		GPA:         "4.0",
		Coursework:  []string{"Number Theory", "Mechanics"},
	}}
	doc.ExperienceSections = []resume.Section{{
		Title: "Work Experience",
		Items: []resume.ExperienceItem{{
			Title:        "Programmer",
			Organization: "Analytical Engine Project",
			Location:     "London, UK",
			Dates:        "1842 - 1843",
			Bullets:      []string{"Wrote the first published computer program"},
		}},
	}}
	doc.Skills = []resume.Skill{{Label: "Mathematics", Value: "Calculus, number theory"}}
	doc.AdditionalInfo = []string{"Fluent in French"}
	return doc
}

func TestHTML_Chronological(t *testing.T) {
	out, err := HTML(sampleResume(resume.TemplateChronological))
	require.NoError(t, err)

	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "Wrote the first published computer program")
	assert.Contains(t, out, "Number Theory")
	assert.Contains(t, out, "Fluent in French")

	// Education precedes experience in the chronological layout
	assert.Less(t, strings.Index(out, "University of London"), strings.Index(out, "Work Experience"))
	assert.Contains(t, out, "<h2>Objective</h2>")
}

func TestHTML_Functional(t *testing.T) {
	out, err := HTML(sampleResume(resume.TemplateFunctional))
	require.NoError(t, err)

	// Skills lead in the functional layout
	assert.Less(t, strings.Index(out, "<h2>Skills</h2>"), strings.Index(out, "Work Experience"))
	assert.Contains(t, out, "<h2>Summary</h2>")
}

func TestHTML_Combination(t *testing.T) {
	out, err := HTML(sampleResume(resume.TemplateCombination))
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, "<h2>Skills</h2>"), strings.Index(out, "University of London"))
	assert.Less(t, strings.Index(out, "University of London"), strings.Index(out, "Work Experience"))
	assert.Contains(t, out, "<h2>Profile</h2>")
}

func TestHTML_UnsetTemplateFallsBack(t *testing.T) {
	doc := sampleResume("")
	out, err := HTML(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "<h2>Objective</h2>")
}

func TestHTML_EscapesMarkup(t *testing.T) {
	doc := sampleResume(resume.TemplateChronological)
	doc.Name = `<script>alert("x")</script>`
	out, err := HTML(doc)
	require.NoError(t, err)
	assert.NotContains(t, out, `<script>alert`)
}

func TestHTML_SkipsBlankEntries(t *testing.T) {
	doc := resume.Empty()
	doc.Template = resume.TemplateChronological
	doc.Name = "Ada Lovelace"
	out, err := HTML(doc)
	require.NoError(t, err)

	// The mandatory blank education and section entries do not render
	assert.NotContains(t, out, "entry-head")
	assert.NotContains(t, out, "<h2></h2>")
}

func TestWriteDOCX(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDOCX(&buf, sampleResume(resume.TemplateChronological))
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
