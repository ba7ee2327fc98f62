package builder

import "github.com/jonathan/resume-wizard/internal/resume"

// Reduce applies one action to the state and returns the next state. It is
// pure: the input state is never mutated, out-of-range indexes are no-ops,
// and unknown action kinds return the state unchanged. Every modified slice
// or map is freshly allocated so the previous state stays usable for replay
// or undo.
func Reduce(state State, action Action) State {
	switch action.Kind {
	case ActionSetStep:
		state.CurrentStep = action.Step
		state.Errors = map[string]string{}
		return state

	case ActionSetTemplate:
		state.Template = action.Template
		return state

	case ActionSetName:
		state.Name = action.Name
		return state

	case ActionSetContact:
		state.Contact = mergeContact(state.Contact, action.Contact)
		return state

	case ActionSetObjective:
		state.Objective = action.Objective
		return state

	case ActionAddEducation:
		state.Education = appendEducation(state.Education, resume.EmptyEducation())
		return state

	case ActionUpdateEducation:
		state.Education = replaceEducation(state.Education, action.Index, action.Education)
		return state

	case ActionRemoveEducation:
		next := removeEducation(state.Education, action.Index)
		if len(next) == 0 {
			next = []resume.Education{resume.EmptyEducation()}
		}
		state.Education = next
		return state

	case ActionAddExperienceSection:
		state.ExperienceSections = appendSection(state.ExperienceSections, resume.EmptySection())
		return state

	case ActionUpdateExperienceSection:
		state.ExperienceSections = replaceSection(state.ExperienceSections, action.Index, action.Section)
		return state

	case ActionRemoveExperienceSection:
		next := removeSection(state.ExperienceSections, action.Index)
		if len(next) == 0 {
			next = []resume.Section{resume.EmptySection()}
		}
		state.ExperienceSections = next
		return state

	case ActionAddExperienceItem:
		state.ExperienceSections = mapSection(state.ExperienceSections, action.SectionIndex, func(sec resume.Section) resume.Section {
			items := make([]resume.ExperienceItem, 0, len(sec.Items)+1)
			items = append(items, sec.Items...)
			sec.Items = append(items, resume.EmptyExperienceItem())
			return sec
		})
		return state

	case ActionUpdateExperienceItem:
		state.ExperienceSections = mapSection(state.ExperienceSections, action.SectionIndex, func(sec resume.Section) resume.Section {
			if action.ItemIndex < 0 || action.ItemIndex >= len(sec.Items) {
				return sec
			}
			items := make([]resume.ExperienceItem, len(sec.Items))
			copy(items, sec.Items)
			items[action.ItemIndex] = action.Item
			sec.Items = items
			return sec
		})
		return state

	case ActionRemoveExperienceItem:
		state.ExperienceSections = mapSection(state.ExperienceSections, action.SectionIndex, func(sec resume.Section) resume.Section {
			if action.ItemIndex < 0 || action.ItemIndex >= len(sec.Items) {
				return sec
			}
			items := make([]resume.ExperienceItem, 0, len(sec.Items)-1)
			items = append(items, sec.Items[:action.ItemIndex]...)
			items = append(items, sec.Items[action.ItemIndex+1:]...)
			sec.Items = items
			return sec
		})
		return state

	case ActionAddSkill:
		skills := make([]resume.Skill, 0, len(state.Skills)+1)
		skills = append(skills, state.Skills...)
		state.Skills = append(skills, resume.Skill{})
		return state

	case ActionUpdateSkill:
		if action.Index < 0 || action.Index >= len(state.Skills) {
			return state
		}
		skills := make([]resume.Skill, len(state.Skills))
		copy(skills, state.Skills)
		skills[action.Index] = action.Skill
		state.Skills = skills
		return state

	case ActionRemoveSkill:
		if action.Index < 0 || action.Index >= len(state.Skills) {
			return state
		}
		skills := make([]resume.Skill, 0, len(state.Skills)-1)
		skills = append(skills, state.Skills[:action.Index]...)
		state.Skills = append(skills, state.Skills[action.Index+1:]...)
		return state

	case ActionAddAdditionalInfo:
		info := make([]string, 0, len(state.AdditionalInfo)+1)
		info = append(info, state.AdditionalInfo...)
		state.AdditionalInfo = append(info, "")
		return state

	case ActionUpdateAdditionalInfo:
		if action.Index < 0 || action.Index >= len(state.AdditionalInfo) {
			return state
		}
		info := make([]string, len(state.AdditionalInfo))
		copy(info, state.AdditionalInfo)
		info[action.Index] = action.Value
		state.AdditionalInfo = info
		return state

	case ActionRemoveAdditionalInfo:
		if action.Index < 0 || action.Index >= len(state.AdditionalInfo) {
			return state
		}
		info := make([]string, 0, len(state.AdditionalInfo)-1)
		info = append(info, state.AdditionalInfo[:action.Index]...)
		state.AdditionalInfo = append(info, state.AdditionalInfo[action.Index+1:]...)
		return state

	case ActionTouchField:
		touched := make(map[string]bool, len(state.Touched)+1)
		for k, v := range state.Touched {
			touched[k] = v
		}
		touched[action.Field] = true
		state.Touched = touched
		return state

	case ActionSetErrors:
		errors := make(map[string]string, len(action.Errors))
		for k, v := range action.Errors {
			errors[k] = v
		}
		state.Errors = errors
		return state

	case ActionAIRequest:
		state.AIEnhancements = setSuggestion(state.AIEnhancements, action.Key, Suggestion{
			Original: action.Value,
			Loading:  true,
		})
		return state

	case ActionAISuccess:
		entry := state.AIEnhancements[action.Key]
		entry.Suggested = action.Suggested
		entry.Loading = false
		state.AIEnhancements = setSuggestion(state.AIEnhancements, action.Key, entry)
		return state

	case ActionAIError:
		entry := state.AIEnhancements[action.Key]
		entry.Loading = false
		entry.Err = action.Err
		state.AIEnhancements = setSuggestion(state.AIEnhancements, action.Key, entry)
		return state

	case ActionAIAccept, ActionAIReject:
		state.AIEnhancements = deleteSuggestion(state.AIEnhancements, action.Key)
		return state

	case ActionApplyAIResume:
		state.Template = action.Resume.Template
		state.Name = action.Resume.Name
		state.Contact = action.Resume.Contact
		if state.Contact.Addresses == nil {
			state.Contact.Addresses = []string{}
		}
		state.Objective = action.Resume.Objective
		if len(action.Resume.Education) > 0 {
			state.Education = action.Resume.Education
		} else {
			state.Education = []resume.Education{resume.EmptyEducation()}
		}
		if len(action.Resume.ExperienceSections) > 0 {
			state.ExperienceSections = action.Resume.ExperienceSections
		} else {
			state.ExperienceSections = []resume.Section{resume.EmptySection()}
		}
		if action.Resume.Skills != nil {
			state.Skills = action.Resume.Skills
		} else {
			state.Skills = []resume.Skill{}
		}
		if action.Resume.AdditionalInfo != nil {
			state.AdditionalInfo = action.Resume.AdditionalInfo
		} else {
			state.AdditionalInfo = []string{}
		}
		state.Errors = map[string]string{}
		state.Touched = map[string]bool{}
		if action.StartStep != nil {
			state.CurrentStep = *action.StartStep
		}
		return state

	default:
		return state
	}
}

func mergeContact(base resume.Contact, patch ContactPatch) resume.Contact {
	if patch.Email != nil {
		base.Email = *patch.Email
	}
	if patch.Phone != nil {
		base.Phone = *patch.Phone
	}
	if patch.Addresses != nil {
		addresses := make([]string, len(patch.Addresses))
		copy(addresses, patch.Addresses)
		base.Addresses = addresses
	}
	if patch.LinkedIn != nil {
		base.LinkedIn = *patch.LinkedIn
	}
	if patch.Website != nil {
		base.Website = *patch.Website
	}
	return base
}

func appendEducation(list []resume.Education, entry resume.Education) []resume.Education {
	next := make([]resume.Education, 0, len(list)+1)
	next = append(next, list...)
	return append(next, entry)
}

func replaceEducation(list []resume.Education, index int, entry resume.Education) []resume.Education {
	if index < 0 || index >= len(list) {
		return list
	}
	next := make([]resume.Education, len(list))
	copy(next, list)
	next[index] = entry
	return next
}

func removeEducation(list []resume.Education, index int) []resume.Education {
	if index < 0 || index >= len(list) {
		return list
	}
	next := make([]resume.Education, 0, len(list)-1)
	next = append(next, list[:index]...)
	return append(next, list[index+1:]...)
}

func appendSection(list []resume.Section, entry resume.Section) []resume.Section {
	next := make([]resume.Section, 0, len(list)+1)
	next = append(next, list...)
	return append(next, entry)
}

func replaceSection(list []resume.Section, index int, entry resume.Section) []resume.Section {
	if index < 0 || index >= len(list) {
		return list
	}
	next := make([]resume.Section, len(list))
	copy(next, list)
	next[index] = entry
	return next
}

func removeSection(list []resume.Section, index int) []resume.Section {
	if index < 0 || index >= len(list) {
		return list
	}
	next := make([]resume.Section, 0, len(list)-1)
	next = append(next, list[:index]...)
	return append(next, list[index+1:]...)
}

func mapSection(list []resume.Section, index int, fn func(resume.Section) resume.Section) []resume.Section {
	if index < 0 || index >= len(list) {
		return list
	}
	next := make([]resume.Section, len(list))
	copy(next, list)
	next[index] = fn(next[index])
	return next
}

func setSuggestion(m map[string]Suggestion, key string, s Suggestion) map[string]Suggestion {
	next := make(map[string]Suggestion, len(m)+1)
	for k, v := range m {
		next[k] = v
	}
	next[key] = s
	return next
}

func deleteSuggestion(m map[string]Suggestion, key string) map[string]Suggestion {
	next := make(map[string]Suggestion, len(m))
	for k, v := range m {
		if k != key {
			next[k] = v
		}
	}
	return next
}
