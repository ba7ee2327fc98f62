package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-wizard/internal/builder"
	"github.com/jonathan/resume-wizard/internal/resume"
)

func TestDecode(t *testing.T) {
	ps := Decode([]byte(`{
		"currentStep": 3,
		"template": "functional",
		"name": "Ada Lovelace",
		"contact": {"email": "ada@example.com"},
		"education": [{"institution": "University of London"}],
		"skills": [{"label": "Math", "value": "Analysis"}]
	}`))

	require.NotNil(t, ps)
	assert.Equal(t, 3, ps.CurrentStep)
	assert.Equal(t, resume.TemplateFunctional, ps.Template)
	assert.Equal(t, "Ada Lovelace", ps.Name)
	assert.Equal(t, "ada@example.com", ps.Contact.Email)
	require.Len(t, ps.Education, 1)
	require.Len(t, ps.Skills, 1)
}

func TestDecode_DropsCorruptFields(t *testing.T) {
	// currentStep is a string and education is an object; both decode
	// failures drop the field without losing the rest of the snapshot
	ps := Decode([]byte(`{
		"currentStep": "three",
		"name": "Ada",
		"education": {"institution": "not a list"}
	}`))

	require.NotNil(t, ps)
	assert.Equal(t, 0, ps.CurrentStep)
	assert.Equal(t, "Ada", ps.Name)
	assert.Nil(t, ps.Education)
}

func TestDecode_NotAnObject(t *testing.T) {
	assert.Nil(t, Decode([]byte(`not json`)))
	assert.Nil(t, Decode([]byte(`[1, 2]`)))
	assert.Nil(t, Decode([]byte(`"string"`)))
}

func TestMerge_Nil(t *testing.T) {
	state := Merge(nil)
	assert.Equal(t, builder.NewState(), state)
}

func TestMerge_ReestablishesInvariants(t *testing.T) {
	state := Merge(&PersistedState{
		Name:      "Ada",
		Education: []resume.Education{},
	})

	// Empty lists from the blob fall back to the single blank entry
	require.Len(t, state.Education, 1)
	require.Len(t, state.ExperienceSections, 1)
	assert.NotNil(t, state.Contact.Addresses)
	assert.Equal(t, "Ada", state.Name)
}

func TestMerge_ClampsStepAndTemplate(t *testing.T) {
	state := Merge(&PersistedState{CurrentStep: 99, Template: "neon"})
	assert.Equal(t, builder.StepTemplate, state.CurrentStep)
	assert.Equal(t, resume.Template(""), state.Template)

	state = Merge(&PersistedState{CurrentStep: -2})
	assert.Equal(t, builder.StepTemplate, state.CurrentStep)

	state = Merge(&PersistedState{CurrentStep: builder.StepPreview, Template: resume.TemplateCombination})
	assert.Equal(t, builder.StepPreview, state.CurrentStep)
	assert.Equal(t, resume.TemplateCombination, state.Template)
}

func TestSnapshotMergeRoundTrip(t *testing.T) {
	state := builder.NewState()
	state = builder.Reduce(state, builder.SetTemplate(resume.TemplateFunctional))
	state = builder.Reduce(state, builder.SetName("Ada Lovelace"))
	state = builder.Reduce(state, builder.SetObjective("Analytical engine work"))
	state = builder.Reduce(state, builder.SetStep(builder.StepEducation))

	restored := Merge(Snapshot(state, []int{0, 1}))

	assert.Equal(t, state.CurrentStep, restored.CurrentStep)
	assert.Equal(t, state.Template, restored.Template)
	assert.Equal(t, state.Name, restored.Name)
	assert.Equal(t, state.Objective, restored.Objective)
	assert.Equal(t, state.Education, restored.Education)
	// Ephemeral maps come back fresh
	assert.Empty(t, restored.Errors)
	assert.Empty(t, restored.AIEnhancements)
}
