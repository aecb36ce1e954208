package parsing

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// HeadingRules maps each category to the heading aliases that open its section.
// Extend the table to recognize new headings; extraction logic does not change.
var HeadingRules = map[types.Category][]string{
	types.CategorySkills: {
		"skills",
		"technical skills",
		"core competencies",
		"competencies",
		"key skills",
		"skills summary",
		"skills & abilities",
		"skills and abilities",
		"technologies",
		"tools & technologies",
		"tools and technologies",
		"technical proficiencies",
	},
	types.CategoryExperience: {
		"experience",
		"work experience",
		"professional experience",
		"relevant experience",
		"employment history",
		"employment",
		"work history",
		"career history",
	},
	types.CategoryEducation: {
		"education",
		"academic background",
		"education and training",
		"education & training",
		"academic qualifications",
		"qualifications",
		"degrees",
	},
}

// SummaryHeadings open a summary or objective section. They are boundary
// headings; HasSummary reports whether one is present.
var SummaryHeadings = []string{
	"summary",
	"professional summary",
	"objective",
	"career objective",
	"profile",
}

// BoundaryHeadings are headings that belong to no category but still end the
// section above them.
var BoundaryHeadings = append(append([]string{}, SummaryHeadings...),
	"projects",
	"certifications",
	"certificates",
	"awards",
	"publications",
	"languages",
	"interests",
	"volunteer experience",
	"references",
	"contact",
)

// headingAlias is one recognizable heading; category is empty for boundary headings.
type headingAlias struct {
	text     string
	category types.Category
}

// Extractor locates category sections in resume text using a heading rule table.
// It holds no per-call state and is safe for concurrent use.
type Extractor struct {
	aliases []headingAlias
	summary map[string]bool
}

// NewExtractor builds an Extractor from a category rule table and a list of
// boundary headings. Aliases are matched case-insensitively, longest first.
func NewExtractor(rules map[types.Category][]string, boundaries []string) *Extractor {
	aliases := make([]headingAlias, 0)
	for _, cat := range types.AllCategories() {
		for _, alias := range rules[cat] {
			if a := strings.ToLower(strings.TrimSpace(alias)); a != "" {
				aliases = append(aliases, headingAlias{text: a, category: cat})
			}
		}
	}
	for _, alias := range boundaries {
		if a := strings.ToLower(strings.TrimSpace(alias)); a != "" {
			aliases = append(aliases, headingAlias{text: a})
		}
	}

	// Longest first so "volunteer experience" wins over "experience".
	sort.SliceStable(aliases, func(i, j int) bool {
		return len(aliases[i].text) > len(aliases[j].text)
	})

	summary := make(map[string]bool, len(SummaryHeadings))
	for _, alias := range SummaryHeadings {
		summary[alias] = true
	}

	return &Extractor{aliases: aliases, summary: summary}
}

// DefaultExtractor returns an Extractor over HeadingRules and BoundaryHeadings.
func DefaultExtractor() *Extractor {
	return NewExtractor(HeadingRules, BoundaryHeadings)
}

// Extract splits raw text into category spans. Every category is present in the
// result; a category whose heading was not found maps to an empty span.
// The first heading of a category wins; later ones only close the open section.
// The inline form ("Languages: Go, Python") opens a category not yet seen; any
// other inline match is an ordinary line of the open section.
func (e *Extractor) Extract(raw string) map[types.Category]types.CategorySpan {
	collected := make(map[types.Category][]string)
	seen := make(map[types.Category]bool)
	var current types.Category

	for _, line := range splitLines(raw) {
		alias, inline, ok := e.matchHeading(line)
		cat := alias.category
		opensCategory := ok && cat != "" && !seen[cat]
		if ok && (inline == "" || opensCategory) {
			current = ""
			if opensCategory {
				seen[cat] = true
				current = cat
				if inline != "" {
					collected[cat] = append(collected[cat], inline)
				}
			}
			continue
		}

		if current != "" {
			collected[current] = append(collected[current], line)
		}
	}

	spans := make(map[types.Category]types.CategorySpan, len(types.AllCategories()))
	for _, cat := range types.AllCategories() {
		text := strings.TrimSpace(strings.Join(collected[cat], "\n"))
		spans[cat] = types.CategorySpan{
			Category: cat,
			Text:     text,
			Document: Normalize(text),
			Detected: seen[cat],
		}
	}
	return spans
}

// HasSummary reports whether raw contains a summary or objective heading that
// the Extractor recognizes as a boundary.
func (e *Extractor) HasSummary(raw string) bool {
	for _, line := range splitLines(raw) {
		if alias, _, ok := e.matchHeading(line); ok && alias.category == "" && e.summary[alias.text] {
			return true
		}
	}
	return false
}

// matchHeading reports whether line is a heading. A heading line is an alias on its
// own ("Skills", "## Work Experience", "EDUCATION:") or an alias followed by a colon
// and inline content ("Skills: Python, SQL"), which is returned as inline.
func (e *Extractor) matchHeading(line string) (headingAlias, string, bool) {
	stripped := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#*-•>=|"))
	if stripped == "" {
		return headingAlias{}, "", false
	}
	lower := strings.ToLower(stripped)

	for _, alias := range e.aliases {
		if !strings.HasPrefix(lower, alias.text) {
			continue
		}
		rest := strings.TrimSpace(lower[len(alias.text):])
		switch {
		case rest == "" || strings.Trim(rest, ":-–—|") == "":
			return alias, "", true
		case strings.HasPrefix(rest, ":"):
			idx := strings.Index(stripped, ":")
			if idx < 0 {
				return alias, "", true
			}
			return alias, strings.TrimSpace(stripped[idx+1:]), true
		}
	}
	return headingAlias{}, "", false
}

// splitLines normalizes line endings and splits text into lines.
func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	return strings.Split(raw, "\n")
}
