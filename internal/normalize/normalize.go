// Package normalize coerces untrusted JSON from the language model into the
// strict resume shape. Every function here is total: any input, including
// nil, scalars, or deeply malformed structures, produces a fully-shaped
// bounded result without panicking. Nothing from the network reaches the
// resume document without passing through this package.
package normalize

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-wizard/internal/resume"
)

// Per-list caps. They bound worst-case memory and render cost from an
// adversarial response; the exact numbers carry no domain meaning.
const (
	DefaultMaxStringLen = 400
	DefaultMaxItemLen   = 220

	maxEducationEntries   = 6
	maxSections           = 6
	maxItemsPerSection    = 8
	maxCourseworkItems    = 10
	maxDetailItems        = 8
	maxClubEntries        = 12
	maxBulletItems        = 10
	maxAddresses          = 3
	defaultMaxSkills      = 12
	defaultMaxAdditional  = 10
)

// Limits tunes the list caps NormalizeResume applies to skills and
// additional info. Zero values fall back to the defaults.
type Limits struct {
	MaxSkills     int
	MaxAdditional int
}

// CleanString returns the trimmed input truncated to max runes, or "" when
// the value is not a string. max <= 0 falls back to DefaultMaxStringLen.
func CleanString(value any, max int) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	if max <= 0 {
		max = DefaultMaxStringLen
	}
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > max {
		s = string(runes[:max])
	}
	return s
}

// StringArray coerces the value into a list of clean strings, dropping
// non-string and empty elements and capping both item length and item
// count. maxLen <= 0 falls back to DefaultMaxItemLen.
func StringArray(value any, maxItems, maxLen int) []string {
	if maxLen <= 0 {
		maxLen = DefaultMaxItemLen
	}
	out := []string{}
	for _, item := range asSlice(value) {
		s := CleanString(item, maxLen)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) >= maxItems {
			break
		}
	}
	return out
}

// TemplateOf maps a loose template value onto one of the supported
// templates. Matching is by prefix, not exact value: "functionally-oriented"
// normalizes to functional. Stored payloads rely on this, so keep the
// contract even though it is looser than it looks.
func TemplateOf(value any) resume.Template {
	s, ok := value.(string)
	if !ok {
		return resume.TemplateChronological
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "function"):
		return resume.TemplateFunctional
	case strings.HasPrefix(lower, "combination"):
		return resume.TemplateCombination
	default:
		return resume.TemplateChronological
	}
}

var (
	dateSeparator  = regexp.MustCompile(`(?i)\s*(?:-|–|—|to|through|until)\s*`)
	presentPattern = regexp.MustCompile(`(?i)present`)
)

// DateRange canonicalizes a free-text date range to "start - end",
// rewriting any end matching /present/i to the literal "Present". A single
// token is treated as a start-only open range and returned bare.
func DateRange(value any) string {
	raw := CleanString(value, 120)
	if raw == "" {
		return ""
	}

	parts := []string{}
	for _, p := range dateSeparator.Split(raw, -1) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	start := parts[0]
	end := strings.Join(parts[1:], " ")
	if end == "" {
		return start
	}
	if presentPattern.MatchString(end) {
		end = "Present"
	}
	return start + " - " + end
}

func normalizeClubs(value any, maxItems int) []resume.Club {
	// Cap the window first, then drop empties, so a blank entry inside the
	// window shrinks the result instead of admitting one from beyond it.
	list := asSlice(value)
	if len(list) > maxItems {
		list = list[:maxItems]
	}
	out := []resume.Club{}
	for _, entry := range list {
		m := asMap(entry)
		club := resume.Club{
			Name:        CleanString(m["name"], 140),
			Position:    CleanString(m["position"], 140),
			Impact:      CleanString(m["impact"], 300),
			Progression: CleanString(m["progression"], 220),
		}
		if club.IsZero() {
			continue
		}
		out = append(out, club)
	}
	return out
}

// Education clamps and shapes an education list, substituting a single
// blank entry when the input is not a non-empty array.
func Education(value any, maxItems int) []resume.Education {
	if maxItems <= 0 {
		maxItems = maxEducationEntries
	}
	list := asSlice(value)
	out := []resume.Education{}
	for _, entry := range list {
		if len(out) >= maxItems {
			break
		}
		m := asMap(entry)
		out = append(out, resume.Education{
			Institution: CleanString(m["institution"], 180),
			Location:    CleanString(m["location"], 120),
			Degree:      CleanString(m["degree"], 180),
			Dates:       DateRange(m["dates"]),
			GPA:         CleanString(m["gpa"], 40),
			Coursework:  StringArray(m["coursework"], maxCourseworkItems, 80),
			Details:     StringArray(m["details"], maxDetailItems, 0),
			Clubs:       normalizeClubs(m["clubs"], maxClubEntries),
		})
	}
	if len(out) == 0 {
		return []resume.Education{resume.EmptyEducation()}
	}
	return out
}

// ExperienceItems clamps and shapes the items of one section, substituting
// a single blank item when the input is not a non-empty array.
func ExperienceItems(value any, maxItems int) []resume.ExperienceItem {
	if maxItems <= 0 {
		maxItems = maxItemsPerSection
	}
	out := []resume.ExperienceItem{}
	for _, entry := range asSlice(value) {
		if len(out) >= maxItems {
			break
		}
		m := asMap(entry)
		out = append(out, resume.ExperienceItem{
			Title:        CleanString(m["title"], 140),
			Organization: CleanString(m["organization"], 160),
			Location:     CleanString(m["location"], 140),
			Dates:        DateRange(m["dates"]),
			Bullets:      StringArray(m["bullets"], maxBulletItems, 300),
		})
	}
	if len(out) == 0 {
		return []resume.ExperienceItem{resume.EmptyExperienceItem()}
	}
	return out
}

// ExperienceSections clamps and shapes the two-level section list,
// substituting a single blank section when the input is not a non-empty
// array.
func ExperienceSections(value any, maxSecs, maxItems int) []resume.Section {
	if maxSecs <= 0 {
		maxSecs = maxSections
	}
	out := []resume.Section{}
	for _, entry := range asSlice(value) {
		if len(out) >= maxSecs {
			break
		}
		m := asMap(entry)
		out = append(out, resume.Section{
			Title: CleanString(m["title"], 140),
			Items: ExperienceItems(m["items"], maxItems),
		})
	}
	if len(out) == 0 {
		return []resume.Section{resume.EmptySection()}
	}
	return out
}

// Skills clamps a skills list to label/value pairs, dropping entries that
// end up empty on both sides.
func Skills(value any, maxItems int) []resume.Skill {
	if maxItems <= 0 {
		maxItems = defaultMaxSkills
	}
	// Same window-then-filter order as normalizeClubs
	list := asSlice(value)
	if len(list) > maxItems {
		list = list[:maxItems]
	}
	out := []resume.Skill{}
	for _, entry := range list {
		m := asMap(entry)
		skill := resume.Skill{
			Label: CleanString(m["label"], 80),
			Value: CleanString(m["value"], 200),
		}
		if skill.IsZero() {
			continue
		}
		out = append(out, skill)
	}
	return out
}

// Contact clamps the contact block.
func Contact(value any) resume.Contact {
	m := asMap(value)
	return resume.Contact{
		Email:     CleanString(m["email"], 160),
		Phone:     CleanString(m["phone"], 60),
		Addresses: StringArray(m["addresses"], maxAddresses, 140),
		LinkedIn:  CleanString(m["linkedin"], 200),
		Website:   CleanString(m["website"], 200),
	}
}

// Chat-elicited narratives sometimes describe club involvement as if it
// were a job; experience items whose title or organization mentions one of
// these are reclassified onto the first education entry after the fact.
var clubKeywords = []string{"club", "society", "council", "association", "chapter", "fraternity", "sorority"}

// Resume composes the normalizers into the full document shape. The result
// always satisfies the list invariants (education and experience sections
// hold at least one entry) and every string field respects its cap.
func Resume(raw any, limits Limits) resume.Resume {
	maxSkills := limits.MaxSkills
	if maxSkills <= 0 {
		maxSkills = defaultMaxSkills
	}
	maxAdditional := limits.MaxAdditional
	if maxAdditional <= 0 {
		maxAdditional = defaultMaxAdditional
	}

	m := asMap(raw)
	education := Education(m["education"], maxEducationEntries)
	sections := ExperienceSections(m["experienceSections"], maxSections, maxItemsPerSection)

	detected := []resume.Club{}
	for _, sec := range sections {
		for _, item := range sec.Items {
			text := strings.ToLower(strings.TrimSpace(item.Title + " " + item.Organization))
			if text == "" {
				continue
			}
			for _, kw := range clubKeywords {
				if strings.Contains(text, kw) {
					name := item.Organization
					if name == "" {
						name = item.Title
					}
					if name == "" {
						name = "Club role"
					}
					detected = append(detected, resume.Club{
						Name:     name,
						Position: item.Title,
						Impact:   strings.Join(nonEmpty(item.Bullets), " "),
					})
					break
				}
			}
		}
	}
	if len(detected) > 0 {
		education[0].Clubs = append(append([]resume.Club{}, education[0].Clubs...), detected...)
	}

	return resume.Resume{
		Template:           TemplateOf(m["template"]),
		Name:               CleanString(m["name"], 180),
		Contact:            Contact(m["contact"]),
		Objective:          CleanString(m["objective"], 600),
		Education:          education,
		ExperienceSections: sections,
		Skills:             Skills(m["skills"], maxSkills),
		AdditionalInfo:     StringArray(m["additionalInfo"], maxAdditional, 200),
	}
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}

func nonEmpty(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
