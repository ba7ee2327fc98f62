package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-wizard/internal/resume"
)

func strptr(s string) *string { return &s }

func TestReduce_DoesNotMutateInput(t *testing.T) {
	state := NewState()
	state.Education[0].Institution = "Original U"
	state.Skills = []resume.Skill{{Label: "Go", Value: "stdlib"}}

	next := Reduce(state, UpdateEducation(0, resume.Education{Institution: "Next U"}))
	next = Reduce(next, UpdateSkill(0, resume.Skill{Label: "Rust"}))
	next = Reduce(next, TouchField("name"))

	// The original state is untouched by any downstream edit
	assert.Equal(t, "Original U", state.Education[0].Institution)
	assert.Equal(t, "Go", state.Skills[0].Label)
	assert.Empty(t, state.Touched)
	assert.Equal(t, "Next U", next.Education[0].Institution)
	assert.Equal(t, "Rust", next.Skills[0].Label)
}

func TestReduce_SetStepClearsErrors(t *testing.T) {
	state := NewState()
	state = Reduce(state, SetErrors(map[string]string{"name": "Name is required"}))
	require.NotEmpty(t, state.Errors)

	state = Reduce(state, SetStep(StepObjective))

	assert.Equal(t, StepObjective, state.CurrentStep)
	assert.Empty(t, state.Errors)
}

func TestReduce_SetContactMergesPatch(t *testing.T) {
	state := NewState()
	state = Reduce(state, SetContact(ContactPatch{Email: strptr("ada@example.com"), Phone: strptr("555")}))
	state = Reduce(state, SetContact(ContactPatch{Phone: strptr("556")}))

	// Partial patches leave the other fields alone
	assert.Equal(t, "ada@example.com", state.Contact.Email)
	assert.Equal(t, "556", state.Contact.Phone)
}

func TestReduce_EducationLifecycle(t *testing.T) {
	state := NewState()
	require.Len(t, state.Education, 1)

	state = Reduce(state, AddEducation())
	require.Len(t, state.Education, 2)

	state = Reduce(state, UpdateEducation(1, resume.Education{Institution: "MIT"}))
	assert.Equal(t, "MIT", state.Education[1].Institution)

	state = Reduce(state, RemoveEducation(0))
	require.Len(t, state.Education, 1)
	assert.Equal(t, "MIT", state.Education[0].Institution)
}

func TestReduce_RemoveLastEducationBackfills(t *testing.T) {
	state := NewState()
	state = Reduce(state, UpdateEducation(0, resume.Education{Institution: "MIT"}))

	state = Reduce(state, RemoveEducation(0))

	// The list never empties; removing the last entry leaves one blank
	require.Len(t, state.Education, 1)
	assert.Empty(t, state.Education[0].Institution)
	assert.Equal(t, []string{}, state.Education[0].Coursework)
}

func TestReduce_RemoveLastSectionBackfills(t *testing.T) {
	state := NewState()
	state = Reduce(state, RemoveExperienceSection(0))

	require.Len(t, state.ExperienceSections, 1)
	require.Len(t, state.ExperienceSections[0].Items, 1)
}

func TestReduce_ExperienceItems(t *testing.T) {
	state := NewState()
	state = Reduce(state, AddExperienceItem(0))
	require.Len(t, state.ExperienceSections[0].Items, 2)

	item := resume.ExperienceItem{Title: "Engineer", Bullets: []string{"Shipped it"}}
	state = Reduce(state, UpdateExperienceItem(0, 1, item))
	assert.Equal(t, "Engineer", state.ExperienceSections[0].Items[1].Title)

	state = Reduce(state, RemoveExperienceItem(0, 0))
	require.Len(t, state.ExperienceSections[0].Items, 1)
	assert.Equal(t, "Engineer", state.ExperienceSections[0].Items[0].Title)
}

func TestReduce_OutOfRangeIndexesAreNoOps(t *testing.T) {
	state := NewState()
	before := state

	actions := []Action{
		UpdateEducation(5, resume.Education{Institution: "X"}),
		UpdateEducation(-1, resume.Education{Institution: "X"}),
		RemoveEducation(5),
		UpdateExperienceSection(3, resume.Section{Title: "X"}),
		RemoveExperienceSection(-2),
		AddExperienceItem(9),
		UpdateExperienceItem(0, 9, resume.ExperienceItem{Title: "X"}),
		RemoveExperienceItem(9, 0),
		UpdateSkill(0, resume.Skill{Label: "X"}),
		RemoveSkill(0),
		UpdateAdditionalInfo(0, "X"),
		RemoveAdditionalInfo(0),
	}
	for _, action := range actions {
		state = Reduce(state, action)
	}

	assert.Equal(t, before, state)
}

func TestReduce_UnknownActionIsNoOp(t *testing.T) {
	state := NewState()
	next := Reduce(state, Action{Kind: ActionUnknown})
	assert.Equal(t, state, next)
}

func TestReduce_SkillsAndAdditionalInfo(t *testing.T) {
	state := NewState()
	state = Reduce(state, AddSkill())
	state = Reduce(state, UpdateSkill(0, resume.Skill{Label: "Languages", Value: "Go"}))
	state = Reduce(state, AddAdditionalInfo())
	state = Reduce(state, UpdateAdditionalInfo(0, "Dean's list"))

	assert.Equal(t, []resume.Skill{{Label: "Languages", Value: "Go"}}, state.Skills)
	assert.Equal(t, []string{"Dean's list"}, state.AdditionalInfo)

	state = Reduce(state, RemoveSkill(0))
	state = Reduce(state, RemoveAdditionalInfo(0))
	assert.Empty(t, state.Skills)
	assert.Empty(t, state.AdditionalInfo)
}

func TestReduce_AISuggestionLifecycle(t *testing.T) {
	state := NewState()

	state = Reduce(state, AIRequest("bullet.0", "led team"))
	entry, ok := state.AIEnhancements["bullet.0"]
	require.True(t, ok)
	assert.True(t, entry.Loading)
	assert.Equal(t, "led team", entry.Original)

	state = Reduce(state, AISuccess("bullet.0", "Led a team of 5"))
	entry = state.AIEnhancements["bullet.0"]
	assert.False(t, entry.Loading)
	assert.Equal(t, "led team", entry.Original)
	assert.Equal(t, "Led a team of 5", entry.Suggested)

	state = Reduce(state, AIAccept("bullet.0"))
	_, ok = state.AIEnhancements["bullet.0"]
	assert.False(t, ok)
}

func TestReduce_AIErrorAndReject(t *testing.T) {
	state := NewState()
	state = Reduce(state, AIRequest("objective", "want a job"))
	state = Reduce(state, AIError("objective", "AI service returned an error"))

	entry := state.AIEnhancements["objective"]
	assert.False(t, entry.Loading)
	assert.Equal(t, "AI service returned an error", entry.Err)

	state = Reduce(state, AIReject("objective"))
	assert.Empty(t, state.AIEnhancements)
}

func TestReduce_AISuccessWithoutRequest(t *testing.T) {
	state := NewState()
	state = Reduce(state, AISuccess("bullet.3", "text"))

	// Resolving an unknown key creates a partial entry rather than panicking
	entry, ok := state.AIEnhancements["bullet.3"]
	require.True(t, ok)
	assert.Equal(t, "", entry.Original)
	assert.Equal(t, "text", entry.Suggested)
}

func TestReduce_ApplyAIResume(t *testing.T) {
	state := NewState()
	state = Reduce(state, SetErrors(map[string]string{"name": "Name is required"}))
	state = Reduce(state, TouchField("name"))

	doc := resume.Resume{
		Template:  resume.TemplateFunctional,
		Name:      "Ada Lovelace",
		Objective: "Analytical engine work",
		Education: []resume.Education{{Institution: "University of London"}},
		ExperienceSections: []resume.Section{{
			Title: "Work Experience",
			Items: []resume.ExperienceItem{{Title: "Programmer"}},
		}},
		Skills: []resume.Skill{{Label: "Math", Value: "Analysis"}},
	}
	state = Reduce(state, ApplyAIResumeAt(doc, StepPreview))

	assert.Equal(t, "Ada Lovelace", state.Name)
	assert.Equal(t, resume.TemplateFunctional, state.Template)
	assert.Equal(t, StepPreview, state.CurrentStep)
	assert.Empty(t, state.Errors)
	assert.Empty(t, state.Touched)
	require.Len(t, state.Education, 1)
	assert.Equal(t, "University of London", state.Education[0].Institution)
}

func TestReduce_ApplyAIResumeBackfillsEmptyLists(t *testing.T) {
	state := NewState()
	state = Reduce(state, ApplyAIResume(resume.Resume{Name: "Ada"}))

	require.Len(t, state.Education, 1)
	require.Len(t, state.ExperienceSections, 1)
	assert.NotNil(t, state.Skills)
	assert.NotNil(t, state.AdditionalInfo)
	assert.NotNil(t, state.Contact.Addresses)
	// Without a start step the wizard stays where it was
	assert.Equal(t, StepTemplate, state.CurrentStep)
}

// Walks a full wizard session and checks the invariants hold at the end.
func TestReduce_FullSession(t *testing.T) {
	state := NewState()

	state = Reduce(state, SetTemplate(resume.TemplateChronological))
	state = Reduce(state, SetStep(StepContact))
	state = Reduce(state, SetName("Ada Lovelace"))
	state = Reduce(state, SetContact(ContactPatch{Email: strptr("ada@example.com")}))
	state = Reduce(state, SetStep(StepEducation))
	state = Reduce(state, UpdateEducation(0, resume.Education{
		Institution: "University of London",
		Location:    "London, UK",
		Degree:      "BSc Mathematics",
		Dates:       "1833 - 1837",
	}))
	state = Reduce(state, SetStep(StepExperience))
	state = Reduce(state, UpdateExperienceSection(0, resume.Section{
		Title: "Work Experience",
		Items: []resume.ExperienceItem{{Title: "Programmer", Bullets: []string{"Wrote the first program"}}},
	}))
	state = Reduce(state, SetStep(StepPreview))

	for step := StepTemplate; step <= StepPreview; step++ {
		if step == StepExperience || step == StepEducation || step == StepContact || step == StepTemplate {
			result := ValidateStep(step, state)
			assert.True(t, result.IsValid, "step %d should validate", step)
		}
	}
	assert.NotEmpty(t, state.Education)
	assert.NotEmpty(t, state.ExperienceSections)

	doc := state.Resume()
	assert.Equal(t, "Ada Lovelace", doc.Name)
	assert.Equal(t, resume.TemplateChronological, doc.Template)
}
