// Package builder implements the wizard state machine behind the resume
// builder: a pure reducer over BuilderState plus the per-step validator that
// gates forward navigation.
package builder

import "github.com/jonathan/resume-wizard/internal/resume"

// Step indices for the wizard pages.
const (
	StepTemplate = iota
	StepContact
	StepObjective
	StepEducation
	StepExperience
	StepSkills
	StepAdditionalInfo
	StepPreview
)

// Suggestion tracks one pending or resolved AI rewrite for a text field.
// It is created loading, resolves with either Suggested or Err populated,
// and is removed from the state entirely on accept or reject.
type Suggestion struct {
	Original  string `json:"original"`
	Suggested string `json:"suggested"`
	Loading   bool   `json:"loading"`
	Err       string `json:"error,omitempty"`
}

// State is the root wizard state: the resume document plus UI bookkeeping.
// Errors, Touched, and AIEnhancements are ephemeral and excluded from
// persistence.
type State struct {
	CurrentStep        int
	Template           resume.Template // empty until the user picks one
	Name               string
	Contact            resume.Contact
	Objective          string
	Education          []resume.Education
	ExperienceSections []resume.Section
	Skills             []resume.Skill
	AdditionalInfo     []string
	Errors             map[string]string
	Touched            map[string]bool
	AIEnhancements     map[string]Suggestion
}

// NewState returns the initial wizard state. Education and
// ExperienceSections start with one empty entry each; the reducer keeps
// those lists non-empty for every action sequence.
func NewState() State {
	return State{
		CurrentStep:        StepTemplate,
		Contact:            resume.Contact{Addresses: []string{}},
		Education:          []resume.Education{resume.EmptyEducation()},
		ExperienceSections: []resume.Section{resume.EmptySection()},
		Skills:             []resume.Skill{},
		AdditionalInfo:     []string{},
		Errors:             map[string]string{},
		Touched:            map[string]bool{},
		AIEnhancements:     map[string]Suggestion{},
	}
}

// Resume extracts the document portion of the state.
func (s State) Resume() resume.Resume {
	tpl := s.Template
	if tpl == "" {
		tpl = resume.TemplateChronological
	}
	return resume.Resume{
		Template:           tpl,
		Name:               s.Name,
		Contact:            s.Contact,
		Objective:          s.Objective,
		Education:          s.Education,
		ExperienceSections: s.ExperienceSections,
		Skills:             s.Skills,
		AdditionalInfo:     s.AdditionalInfo,
	}
}
