package types

// Category names one of the fixed resume sections that are scored independently.
type Category string

const (
	// CategorySkills covers skills, technologies and competencies sections
	CategorySkills Category = "skills"
	// CategoryExperience covers work and employment history sections
	CategoryExperience Category = "experience"
	// CategoryEducation covers degrees, schooling and academic sections
	CategoryEducation Category = "education"
)

// SectionSummary names the summary/objective section. It is detected and reported
// but never scored, so it is not part of AllCategories.
const SectionSummary Category = "summary"

// AllCategories returns every category in its canonical order.
func AllCategories() []Category {
	return []Category{CategorySkills, CategoryExperience, CategoryEducation}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySkills, CategoryExperience, CategoryEducation:
		return true
	default:
		return false
	}
}

// CategorySpan is the part of a document attributed to one category.
// An undetected section yields a span with empty Text and an empty Document.
// A detected heading with no body yields Detected true and empty Text.
type CategorySpan struct {
	Category Category
	Text     string
	Document Document
	Detected bool
}

// Found reports whether a heading for the category was detected.
func (s CategorySpan) Found() bool {
	return s.Detected
}
