// Package resume defines the canonical structured representation of a resume
// shared by the builder, the normalizer, and the export renderers.
package resume

// Template identifies the layout a resume is rendered with.
type Template string

// Supported resume templates.
const (
	TemplateChronological Template = "chronological"
	TemplateFunctional    Template = "functional"
	TemplateCombination   Template = "combination"
)

// Contact holds the contact block of a resume. Email is the only field the
// step validator requires; everything else is optional free text.
type Contact struct {
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	Addresses []string `json:"addresses,omitempty"`
	LinkedIn  string   `json:"linkedin,omitempty"`
	Website   string   `json:"website,omitempty"`
}

// Club records involvement in a student organization attached to an
// education entry. All fields are free text.
type Club struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	Impact      string `json:"impact"`
	Progression string `json:"progression,omitempty"`
}

// IsZero reports whether every field of the club is empty.
func (c Club) IsZero() bool {
	return c.Name == "" && c.Position == "" && c.Impact == "" && c.Progression == ""
}

// Education is a single education entry. Dates is free text following the
// "MM/YYYY - MM/YYYY" or "MM/YYYY - Present" convention, not a real date.
type Education struct {
	Institution string   `json:"institution"`
	Location    string   `json:"location"`
	Degree      string   `json:"degree"`
	Dates       string   `json:"dates"`
	GPA         string   `json:"gpa,omitempty"`
	Coursework  []string `json:"coursework,omitempty"`
	Details     []string `json:"details,omitempty"`
	Clubs       []Club   `json:"clubs,omitempty"`
}

// ExperienceItem is one role within an experience section.
type ExperienceItem struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Location     string   `json:"location"`
	Dates        string   `json:"dates"`
	Bullets      []string `json:"bullets"`
}

// Section groups experience items under a user-chosen heading
// ("Work Experience", "Leadership", ...). The title is free text even though
// the UI offers presets.
type Section struct {
	Title string           `json:"title"`
	Items []ExperienceItem `json:"items"`
}

// Skill is a category/detail pair, free text on both sides.
type Skill struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// IsZero reports whether both sides of the skill are empty.
func (s Skill) IsZero() bool {
	return s.Label == "" && s.Value == ""
}

// Resume is the full document produced by the wizard or by AI intake.
// Education and ExperienceSections are never empty: constructors and the
// normalizer substitute one empty entry rather than leaving the list bare.
type Resume struct {
	Template           Template    `json:"template"`
	Name               string      `json:"name"`
	Contact            Contact     `json:"contact"`
	Objective          string      `json:"objective,omitempty"`
	Education          []Education `json:"education"`
	ExperienceSections []Section   `json:"experienceSections"`
	Skills             []Skill     `json:"skills"`
	AdditionalInfo     []string    `json:"additionalInfo"`
}

// EmptyEducation returns a blank education entry.
func EmptyEducation() Education {
	return Education{
		Coursework: []string{},
		Details:    []string{},
	}
}

// EmptyExperienceItem returns a blank experience item with a single empty
// bullet placeholder, matching what the experience step renders for a new
// role.
func EmptyExperienceItem() ExperienceItem {
	return ExperienceItem{Bullets: []string{""}}
}

// EmptySection returns a blank section holding exactly one empty item.
func EmptySection() Section {
	return Section{Items: []ExperienceItem{EmptyExperienceItem()}}
}

// Empty returns a fully-shaped blank resume satisfying the list invariants.
func Empty() Resume {
	return Resume{
		Template:           TemplateChronological,
		Contact:            Contact{Addresses: []string{}},
		Education:          []Education{EmptyEducation()},
		ExperienceSections: []Section{EmptySection()},
		Skills:             []Skill{},
		AdditionalInfo:     []string{},
	}
}
