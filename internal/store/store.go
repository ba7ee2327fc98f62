// Package store persists wizard state between sessions. The browser keeps a
// single JSON blob under a fixed key; this package mirrors that contract
// behind a narrow interface so the state machine never touches a concrete
// storage mechanism.
package store

import (
	"encoding/json"

	"github.com/jonathan/resume-wizard/internal/builder"
	"github.com/jonathan/resume-wizard/internal/resume"
)

// StorageKey is the fixed key the wizard blob lives under.
const StorageKey = "resume-wizard-state"

// PersistedState is the serialized subset of builder.State. Errors, touched
// flags, and the AI suggestion overlay are deliberately excluded: they are
// ephemeral UI state.
type PersistedState struct {
	CurrentStep        int                     `json:"currentStep"`
	Template           resume.Template         `json:"template,omitempty"`
	Name               string                  `json:"name"`
	Contact            resume.Contact          `json:"contact"`
	Objective          string                  `json:"objective"`
	Education          []resume.Education      `json:"education"`
	ExperienceSections []resume.Section        `json:"experienceSections"`
	Skills             []resume.Skill          `json:"skills"`
	AdditionalInfo     []string                `json:"additionalInfo"`
	CompletedSteps     []int                   `json:"completedSteps"`
}

// Store is the persistence collaborator for one wizard session. Load returns
// (nil, nil) when nothing has been saved yet.
type Store interface {
	Load() (*PersistedState, error)
	Save(*PersistedState) error
	Clear() error
}

// Snapshot extracts the persistable subset of a builder state.
func Snapshot(s builder.State, completedSteps []int) *PersistedState {
	return &PersistedState{
		CurrentStep:        s.CurrentStep,
		Template:           s.Template,
		Name:               s.Name,
		Contact:            s.Contact,
		Objective:          s.Objective,
		Education:          s.Education,
		ExperienceSections: s.ExperienceSections,
		Skills:             s.Skills,
		AdditionalInfo:     s.AdditionalInfo,
		CompletedSteps:     completedSteps,
	}
}

// Decode parses a persisted blob field by field. A field that fails to
// decode is simply dropped, so one corrupt entry cannot take the whole
// snapshot down with it.
func Decode(data []byte) *PersistedState {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	ps := &PersistedState{}
	decodeField(raw, "currentStep", &ps.CurrentStep)
	decodeField(raw, "template", &ps.Template)
	decodeField(raw, "name", &ps.Name)
	decodeField(raw, "contact", &ps.Contact)
	decodeField(raw, "objective", &ps.Objective)
	decodeField(raw, "education", &ps.Education)
	decodeField(raw, "experienceSections", &ps.ExperienceSections)
	decodeField(raw, "skills", &ps.Skills)
	decodeField(raw, "additionalInfo", &ps.AdditionalInfo)
	decodeField(raw, "completedSteps", &ps.CompletedSteps)
	return ps
}

func decodeField[T any](raw map[string]json.RawMessage, key string, dst *T) {
	msg, ok := raw[key]
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(msg, &v); err != nil {
		return
	}
	*dst = v
}

// Merge folds a persisted snapshot onto a fresh default state. Missing or
// out-of-range fields keep their defaults; the education and experience
// invariants are re-established if the blob violated them. A nil snapshot
// returns the default state unchanged.
func Merge(ps *PersistedState) builder.State {
	state := builder.NewState()
	if ps == nil {
		return state
	}

	if ps.CurrentStep >= builder.StepTemplate && ps.CurrentStep <= builder.StepPreview {
		state.CurrentStep = ps.CurrentStep
	}
	switch ps.Template {
	case resume.TemplateChronological, resume.TemplateFunctional, resume.TemplateCombination:
		state.Template = ps.Template
	}
	state.Name = ps.Name
	state.Contact = ps.Contact
	if state.Contact.Addresses == nil {
		state.Contact.Addresses = []string{}
	}
	state.Objective = ps.Objective
	if len(ps.Education) > 0 {
		state.Education = ps.Education
	}
	if len(ps.ExperienceSections) > 0 {
		state.ExperienceSections = ps.ExperienceSections
	}
	if ps.Skills != nil {
		state.Skills = ps.Skills
	}
	if ps.AdditionalInfo != nil {
		state.AdditionalInfo = ps.AdditionalInfo
	}
	return state
}
