package report

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Priority levels
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Score bands used for the headline suggestion.
const (
	criticalBelow = 30
	moderateBelow = 50
	goodBelow     = 70
	tipsBelow     = 60
)

// mediumPriorityBelow is the score under which a resume gets medium priority.
const mediumPriorityBelow = 60

const suggestedKeywords = 5

var generalTips = []string{
	"Include more specific technical skills",
	"Quantify achievements with numbers",
	"Tailor experience to job requirements",
}

// Suggestions returns improvement suggestions for an overall score and the
// keywords missing from the resume.
func Suggestions(score int, missing []string, semanticDegraded bool) []string {
	var out []string

	switch {
	case score < criticalBelow:
		out = append(out, "Critical: Resume needs significant improvement")
	case score < moderateBelow:
		out = append(out, "Moderate: Resume needs improvement")
	case score < goodBelow:
		out = append(out, "Good: Resume is well-aligned but could improve")
	default:
		out = append(out, "Excellent: Resume is very well-aligned")
	}

	if len(missing) > 0 {
		n := min(len(missing), suggestedKeywords)
		out = append(out, "Add missing keywords: "+strings.Join(missing[:n], ", "))
	}

	if score < tipsBelow {
		out = append(out, generalTips...)
	}

	if semanticDegraded {
		out = append(out, "Note: semantic matching was unavailable, score is based on keyword overlap only")
	}

	return out
}

// Priority maps an overall score to how urgently the resume needs work.
func Priority(score int) string {
	switch {
	case score < criticalBelow:
		return PriorityHigh
	case score < mediumPriorityBelow:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// SectionPresence reports which categories were detected in the resume, plus
// the summary section, with a recommendation for each one that was not.
func SectionPresence(spans map[types.Category]types.CategorySpan, hasSummary bool) map[types.Category]types.SectionStatus {
	out := make(map[types.Category]types.SectionStatus, len(types.AllCategories())+1)
	for _, cat := range types.AllCategories() {
		if spans[cat].Found() {
			out[cat] = types.SectionStatus{Present: true}
			continue
		}
		out[cat] = types.SectionStatus{
			Recommendations: []string{fmt.Sprintf("Add a section covering %s", cat)},
		}
	}

	if hasSummary {
		out[types.SectionSummary] = types.SectionStatus{Present: true}
	} else {
		out[types.SectionSummary] = types.SectionStatus{
			Recommendations: []string{"Add a professional summary section"},
		}
	}
	return out
}
