package builder

import "github.com/jonathan/resume-wizard/internal/resume"

// ActionKind enumerates every transition the reducer understands. The set is
// closed: Reduce dispatches with an exhaustive switch and treats anything
// else as a no-op.
type ActionKind int

// Action kinds, one per wizard transition.
const (
	ActionUnknown ActionKind = iota
	ActionSetStep
	ActionSetTemplate
	ActionSetName
	ActionSetContact
	ActionSetObjective
	ActionAddEducation
	ActionUpdateEducation
	ActionRemoveEducation
	ActionAddExperienceSection
	ActionUpdateExperienceSection
	ActionRemoveExperienceSection
	ActionAddExperienceItem
	ActionUpdateExperienceItem
	ActionRemoveExperienceItem
	ActionAddSkill
	ActionUpdateSkill
	ActionRemoveSkill
	ActionAddAdditionalInfo
	ActionUpdateAdditionalInfo
	ActionRemoveAdditionalInfo
	ActionTouchField
	ActionSetErrors
	ActionAIRequest
	ActionAISuccess
	ActionAIError
	ActionAIAccept
	ActionAIReject
	ActionApplyAIResume
)

// ContactPatch is a partial contact update. Nil fields are left untouched by
// SetContact, so callers can update a single field without clobbering the
// rest.
type ContactPatch struct {
	Email     *string
	Phone     *string
	Addresses []string
	LinkedIn  *string
	Website   *string
}

// Action is the tagged payload consumed by Reduce. Only the fields relevant
// to the Kind are read; use the constructor functions rather than filling
// the struct by hand.
type Action struct {
	Kind ActionKind

	Step         int
	Template     resume.Template
	Name         string
	Contact      ContactPatch
	Objective    string
	Index        int
	SectionIndex int
	ItemIndex    int
	Education    resume.Education
	Section      resume.Section
	Item         resume.ExperienceItem
	Skill        resume.Skill
	Value        string
	Field        string
	Errors       map[string]string
	Key          string
	Suggested    string
	Err          string
	Resume       resume.Resume
	StartStep    *int
}

// SetStep moves the wizard to the given step and clears validation errors.
// The reducer does not bounds-check the step; that is the caller's job.
func SetStep(step int) Action { return Action{Kind: ActionSetStep, Step: step} }

// SetTemplate selects the resume template.
func SetTemplate(t resume.Template) Action { return Action{Kind: ActionSetTemplate, Template: t} }

// SetName replaces the candidate name.
func SetName(name string) Action { return Action{Kind: ActionSetName, Name: name} }

// SetContact shallow-merges the patch into the contact block.
func SetContact(patch ContactPatch) Action { return Action{Kind: ActionSetContact, Contact: patch} }

// SetObjective replaces the career objective.
func SetObjective(obj string) Action { return Action{Kind: ActionSetObjective, Objective: obj} }

// AddEducation appends a blank education entry.
func AddEducation() Action { return Action{Kind: ActionAddEducation} }

// UpdateEducation replaces the education entry at index. Callers merge field
// edits into the full entry before dispatching.
func UpdateEducation(index int, e resume.Education) Action {
	return Action{Kind: ActionUpdateEducation, Index: index, Education: e}
}

// RemoveEducation deletes the education entry at index. Removing the last
// entry backfills the list with one blank entry so the step invariant holds.
func RemoveEducation(index int) Action { return Action{Kind: ActionRemoveEducation, Index: index} }

// AddExperienceSection appends a blank section holding one empty item.
func AddExperienceSection() Action { return Action{Kind: ActionAddExperienceSection} }

// UpdateExperienceSection replaces the section at index.
func UpdateExperienceSection(index int, s resume.Section) Action {
	return Action{Kind: ActionUpdateExperienceSection, Index: index, Section: s}
}

// RemoveExperienceSection deletes the section at index, backfilling a blank
// section when the list would empty.
func RemoveExperienceSection(index int) Action {
	return Action{Kind: ActionRemoveExperienceSection, Index: index}
}

// AddExperienceItem appends a blank item to the given section.
func AddExperienceItem(sectionIndex int) Action {
	return Action{Kind: ActionAddExperienceItem, SectionIndex: sectionIndex}
}

// UpdateExperienceItem replaces one item inside a section.
func UpdateExperienceItem(sectionIndex, itemIndex int, item resume.ExperienceItem) Action {
	return Action{Kind: ActionUpdateExperienceItem, SectionIndex: sectionIndex, ItemIndex: itemIndex, Item: item}
}

// RemoveExperienceItem deletes one item inside a section.
func RemoveExperienceItem(sectionIndex, itemIndex int) Action {
	return Action{Kind: ActionRemoveExperienceItem, SectionIndex: sectionIndex, ItemIndex: itemIndex}
}

// AddSkill appends an empty skill pair.
func AddSkill() Action { return Action{Kind: ActionAddSkill} }

// UpdateSkill replaces the skill at index.
func UpdateSkill(index int, s resume.Skill) Action {
	return Action{Kind: ActionUpdateSkill, Index: index, Skill: s}
}

// RemoveSkill deletes the skill at index.
func RemoveSkill(index int) Action { return Action{Kind: ActionRemoveSkill, Index: index} }

// AddAdditionalInfo appends an empty additional-info line.
func AddAdditionalInfo() Action { return Action{Kind: ActionAddAdditionalInfo} }

// UpdateAdditionalInfo replaces the line at index.
func UpdateAdditionalInfo(index int, value string) Action {
	return Action{Kind: ActionUpdateAdditionalInfo, Index: index, Value: value}
}

// RemoveAdditionalInfo deletes the line at index.
func RemoveAdditionalInfo(index int) Action {
	return Action{Kind: ActionRemoveAdditionalInfo, Index: index}
}

// TouchField marks a field path as visited. Advisory only.
func TouchField(field string) Action { return Action{Kind: ActionTouchField, Field: field} }

// SetErrors replaces the whole validation error map, as produced by
// ValidateStep.
func SetErrors(errors map[string]string) Action {
	return Action{Kind: ActionSetErrors, Errors: errors}
}

// AIRequest opens a loading suggestion entry for the given key.
func AIRequest(key, original string) Action {
	return Action{Kind: ActionAIRequest, Key: key, Value: original}
}

// AISuccess resolves the suggestion for key. Dispatching without a prior
// AIRequest leaves a partially-shaped entry; callers must always request
// first.
func AISuccess(key, suggested string) Action {
	return Action{Kind: ActionAISuccess, Key: key, Suggested: suggested}
}

// AIError fails the suggestion for key.
func AIError(key, message string) Action {
	return Action{Kind: ActionAIError, Key: key, Err: message}
}

// AIAccept removes the suggestion entry. Applying the accepted text to the
// underlying field is the caller's job via a companion update action.
func AIAccept(key string) Action { return Action{Kind: ActionAIAccept, Key: key} }

// AIReject removes the suggestion entry without applying it.
func AIReject(key string) Action { return Action{Kind: ActionAIReject, Key: key} }

// ApplyAIResume replaces the document portion of the state with an
// externally-normalized resume and resets errors and touched fields.
func ApplyAIResume(r resume.Resume) Action {
	return Action{Kind: ActionApplyAIResume, Resume: r}
}

// ApplyAIResumeAt is ApplyAIResume plus a jump to the given step.
func ApplyAIResumeAt(r resume.Resume, startStep int) Action {
	return Action{Kind: ActionApplyAIResume, Resume: r, StartStep: &startStep}
}
