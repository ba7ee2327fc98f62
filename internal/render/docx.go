package render

import (
	"fmt"
	"io"
	"strings"

	"baliance.com/gooxml/document"

	"github.com/jonathan/resume-wizard/internal/resume"
)

// WriteDOCX renders the document as a Word file. Section order follows the
// template kind, matching the HTML layouts.
func WriteDOCX(w io.Writer, doc resume.Resume) error {
	d := document.New()

	writeDocxHeader(d, doc)

	switch doc.Template {
	case resume.TemplateFunctional:
		writeDocxObjective(d, doc, "Summary")
		writeDocxSkills(d, doc)
		writeDocxExperience(d, doc)
		writeDocxEducation(d, doc)
	case resume.TemplateCombination:
		writeDocxObjective(d, doc, "Profile")
		writeDocxSkills(d, doc)
		writeDocxEducation(d, doc)
		writeDocxExperience(d, doc)
	default:
		writeDocxObjective(d, doc, "Objective")
		writeDocxEducation(d, doc)
		writeDocxExperience(d, doc)
		writeDocxSkills(d, doc)
	}
	writeDocxAdditional(d, doc)

	if err := d.Save(w); err != nil {
		return fmt.Errorf("failed to save docx: %w", err)
	}
	return nil
}

func writeDocxHeader(d *document.Document, doc resume.Resume) {
	title := d.AddParagraph()
	title.SetStyle("Title")
	title.AddRun().AddText(doc.Name)

	contactParts := []string{}
	for _, part := range []string{doc.Contact.Email, doc.Contact.Phone, doc.Contact.LinkedIn, doc.Contact.Website} {
		if part != "" {
			contactParts = append(contactParts, part)
		}
	}
	if len(contactParts) > 0 {
		d.AddParagraph().AddRun().AddText(strings.Join(contactParts, " | "))
	}
	for _, addr := range doc.Contact.Addresses {
		d.AddParagraph().AddRun().AddText(addr)
	}
}

func writeDocxObjective(d *document.Document, doc resume.Resume, heading string) {
	if doc.Objective == "" {
		return
	}
	addDocxHeading(d, heading)
	d.AddParagraph().AddRun().AddText(doc.Objective)
}

func writeDocxEducation(d *document.Document, doc resume.Resume) {
	entries := []resume.Education{}
	for _, edu := range doc.Education {
		if edu.Institution != "" || edu.Degree != "" {
			entries = append(entries, edu)
		}
	}
	if len(entries) == 0 {
		return
	}

	addDocxHeading(d, "Education")
	for _, edu := range entries {
		p := d.AddParagraph()
		r := p.AddRun()
		r.Properties().SetBold(true)
		r.AddText(edu.Institution)
		if edu.Dates != "" {
			p.AddRun().AddText("  " + edu.Dates)
		}

		line := edu.Degree
		if edu.GPA != "" {
			line += " (GPA " + edu.GPA + ")"
		}
		if edu.Location != "" {
			line += " - " + edu.Location
		}
		if line != "" {
			d.AddParagraph().AddRun().AddText(line)
		}
		if len(edu.Coursework) > 0 {
			d.AddParagraph().AddRun().AddText("Coursework: " + strings.Join(edu.Coursework, ", "))
		}
		for _, detail := range edu.Details {
			addDocxBullet(d, detail)
		}
		for _, club := range edu.Clubs {
			text := club.Name
			if club.Position != "" {
				text += " - " + club.Position
			}
			if club.Impact != "" {
				text += ": " + club.Impact
			}
			addDocxBullet(d, text)
		}
	}
}

func writeDocxExperience(d *document.Document, doc resume.Resume) {
	for _, section := range doc.ExperienceSections {
		if section.Title == "" {
			continue
		}
		addDocxHeading(d, section.Title)
		for _, item := range section.Items {
			if item.Title == "" && item.Organization == "" {
				continue
			}
			p := d.AddParagraph()
			r := p.AddRun()
			r.Properties().SetBold(true)
			r.AddText(item.Title)
			if item.Dates != "" {
				p.AddRun().AddText("  " + item.Dates)
			}

			line := item.Organization
			if item.Location != "" {
				line += " - " + item.Location
			}
			if line != "" {
				d.AddParagraph().AddRun().AddText(line)
			}
			for _, bullet := range item.Bullets {
				if bullet != "" {
					addDocxBullet(d, bullet)
				}
			}
		}
	}
}

func writeDocxSkills(d *document.Document, doc resume.Resume) {
	if len(doc.Skills) == 0 {
		return
	}
	addDocxHeading(d, "Skills")
	for _, skill := range doc.Skills {
		p := d.AddParagraph()
		if skill.Label != "" {
			r := p.AddRun()
			r.Properties().SetBold(true)
			r.AddText(skill.Label + ": ")
		}
		p.AddRun().AddText(skill.Value)
	}
}

func writeDocxAdditional(d *document.Document, doc resume.Resume) {
	if len(doc.AdditionalInfo) == 0 {
		return
	}
	addDocxHeading(d, "Additional Information")
	for _, info := range doc.AdditionalInfo {
		addDocxBullet(d, info)
	}
}

func addDocxHeading(d *document.Document, text string) {
	p := d.AddParagraph()
	p.SetStyle("Heading1")
	p.AddRun().AddText(text)
}

func addDocxBullet(d *document.Document, text string) {
	d.AddParagraph().AddRun().AddText("• " + text)
}
