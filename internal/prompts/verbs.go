package prompts

import "strings"

// VerbCategory is one named group of the action verb bank.
type VerbCategory struct {
	Name  string
	Verbs []string
}

// verbCategories is the action verb bank the bullet enhancement prompt
// draws from, in presentation order so the generated prompt is stable.
var verbCategories = []VerbCategory{
	{Name: "Creative", Verbs: []string{
		"Acted", "Abstracted", "Adapted", "Composed", "Conceptualized",
		"Created", "Designed", "Developed", "Directed", "Drew", "Fashioned",
		"Generated", "Illustrated", "Imagined", "Improvised", "Integrated",
		"Innovated", "Painted", "Performed", "Planned", "Problem solved",
		"Shaped", "Synthesized", "Visualized", "Wrote",
	}},
	{Name: "Manual Skills", Verbs: []string{
		"Arranged", "Assembled", "Bound", "Built", "Checked", "Classified",
		"Constructed", "Controlled", "Cut", "Designed", "Developed", "Drove",
		"Handled", "Installed", "Invented", "Maintained", "Monitored",
		"Prepared", "Operated", "Repaired", "Tested",
	}},
	{Name: "Detail Oriented", Verbs: []string{
		"Analyzed", "Approved", "Arranged", "Classified", "Collated",
		"Compared", "Compiled", "Documented", "Enforced", "Followed through",
		"Met deadlines", "Prepared", "Processed", "Recorded", "Retrieved",
		"Set priorities", "Systemized", "Tabulated",
	}},
	{Name: "Financial", Verbs: []string{
		"Administered", "Allocated", "Analyzed", "Appraised", "Audited",
		"Budgeted", "Calculated", "Computed", "Developed", "Evaluated",
		"Figured", "Maintained", "Managed", "Performed", "Planned", "Projected",
	}},
	{Name: "Organizing", Verbs: []string{
		"Achieved", "Assigned", "Consulted", "Contracted", "Controlled",
		"Coordinated", "Decided", "Delegated", "Developed", "Established",
		"Evaluated", "Negotiated", "Organized", "Planned", "Prepared",
		"Prioritized", "Produced", "Recommended", "Reported",
	}},
	{Name: "Providing Service", Verbs: []string{
		"Advised", "Attended", "Cared", "Coached", "Coordinated", "Counseled",
		"Delivered", "Demonstrated", "Explained", "Furnished", "Generated",
		"Inspected", "Installed", "Issued", "Mentored", "Provided", "Purchased",
		"Referred", "Repaired", "Submitted",
	}},
	{Name: "Leadership", Verbs: []string{
		"Administered", "Chaired", "Convinced", "Directed", "Examined",
		"Executed", "Expanded", "Facilitated", "Improved", "Initiated",
		"Launched", "Led", "Managed", "Oversaw", "Pioneered", "Spearheaded",
		"Strengthened", "Supervised", "Transformed",
	}},
	{Name: "Communication", Verbs: []string{
		"Addressed", "Authored", "Collaborated", "Corresponded", "Drafted",
		"Edited", "Interpreted", "Interviewed", "Moderated", "Negotiated",
		"Persuaded", "Presented", "Publicized", "Translated",
	}},
}

// Categories returns the verb bank grouped for presentation.
func Categories() []VerbCategory {
	return verbCategories
}

// ActionVerbs returns the deduplicated verb bank as a comma-separated
// string for embedding in the bullet enhancement prompt.
func ActionVerbs() string {
	seen := map[string]bool{}
	verbs := []string{}
	for _, cat := range verbCategories {
		for _, v := range cat.Verbs {
			if seen[v] {
				continue
			}
			seen[v] = true
			verbs = append(verbs, v)
		}
	}
	return strings.Join(verbs, ", ")
}
