package builder

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationResult reports whether a step may be left and which fields block
// it. Errors are keyed by field path (e.g. "education.0.institution") so the
// UI can render them inline.
type ValidationResult struct {
	IsValid bool
	Errors  map[string]string
}

// Deliberately loose: one "@", at least one "." in the domain, no
// whitespace. Real validation happens when mail is actually sent.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateStep checks the required fields for one wizard step. It never
// mutates the state; the caller dispatches SetErrors with the result and
// decides whether to advance.
func ValidateStep(step int, state State) ValidationResult {
	errors := map[string]string{}

	switch step {
	case StepTemplate:
		if state.Template == "" {
			errors["template"] = "Please select a template"
		}

	case StepContact:
		if strings.TrimSpace(state.Name) == "" {
			errors["name"] = "Name is required"
		}
		email := strings.TrimSpace(state.Contact.Email)
		if email == "" {
			errors["email"] = "Email is required"
		} else if !emailPattern.MatchString(email) {
			errors["email"] = "Please enter a valid email"
		}

	case StepObjective:
		// Objective is optional.

	case StepEducation:
		if len(state.Education) == 0 {
			errors["education"] = "At least one education entry is required"
		}
		for i, edu := range state.Education {
			if strings.TrimSpace(edu.Institution) == "" {
				errors[fmt.Sprintf("education.%d.institution", i)] = "Institution is required"
			}
			if strings.TrimSpace(edu.Location) == "" {
				errors[fmt.Sprintf("education.%d.location", i)] = "Location is required"
			}
			if strings.TrimSpace(edu.Degree) == "" {
				errors[fmt.Sprintf("education.%d.degree", i)] = "Degree is required"
			}
			if strings.TrimSpace(edu.Dates) == "" {
				errors[fmt.Sprintf("education.%d.dates", i)] = "Dates are required"
			}
		}

	case StepExperience:
		for i, sec := range state.ExperienceSections {
			if strings.TrimSpace(sec.Title) == "" {
				errors[fmt.Sprintf("experienceSections.%d.title", i)] = "Section title is required"
			}
		}

	case StepSkills, StepAdditionalInfo:
		// Both optional.
	}

	return ValidationResult{IsValid: len(errors) == 0, Errors: errors}
}
