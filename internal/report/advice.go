package report

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Keyword groups, in the order recommendations are listed.
const (
	GroupTechnical   = "technical"
	GroupActionVerbs = "action_verbs"
	GroupSoftSkills  = "soft_skills"
	GroupQuantifiers = "quantifiers"
	GroupOther       = "other"
)

var keywordGroupOrder = []string{GroupTechnical, GroupActionVerbs, GroupSoftSkills, GroupQuantifiers, GroupOther}

// keywordGroups lists single-word terms per group. Terms of five or more letters
// also match keywords they prefix ("program" matches "programming").
var keywordGroups = map[string][]string{
	GroupTechnical: {
		"programming", "software", "development", "database", "cloud", "computing",
		"machine", "learning", "data", "analysis", "analytics", "web", "mobile",
		"devops", "agile", "scrum", "version", "control", "api", "apis",
		"microservices", "backend", "frontend", "infrastructure",
	},
	GroupActionVerbs: {
		"achieved", "developed", "implemented", "managed", "led", "created",
		"designed", "optimized", "improved", "increased", "reduced", "solved",
		"delivered", "executed", "coordinated", "collaborated", "analyzed",
		"researched", "innovated", "transformed",
	},
	GroupSoftSkills: {
		"leadership", "communication", "problem", "solving", "teamwork",
		"project", "management", "time", "adaptability", "critical", "thinking",
		"creativity", "attention", "detail",
	},
	GroupQuantifiers: {
		"budget", "revenue", "saved", "generated", "completed", "team", "percent",
	},
}

const (
	keywordsPerRecommendation = 3
	minResumeKeywords         = 10
	manyMissingKeywords       = 10
	someMissingKeywords       = 5

	minWordCount = 200
	maxWordCount = 800

	maxPriorityActions = 5
)

// KeywordGroup returns the group a keyword belongs to, GroupOther when none match.
func KeywordGroup(keyword string) string {
	kw := strings.ToLower(keyword)
	for _, group := range keywordGroupOrder[:len(keywordGroupOrder)-1] {
		for _, term := range keywordGroups[group] {
			if kw == term || (len(term) >= 5 && strings.HasPrefix(kw, term)) {
				return group
			}
		}
	}
	return GroupOther
}

// GroupKeywords splits keywords by KeywordGroup, keeping input order within each
// group. Every group is present in the result.
func GroupKeywords(keywords []string) map[string][]string {
	out := make(map[string][]string, len(keywordGroupOrder))
	for _, group := range keywordGroupOrder {
		out[group] = []string{}
	}
	for _, kw := range keywords {
		group := KeywordGroup(kw)
		out[group] = append(out[group], kw)
	}
	return out
}

// KeywordRecommendations names up to three keywords to add for each non-empty group.
func KeywordRecommendations(grouped map[string][]string) []string {
	out := make([]string, 0, len(keywordGroupOrder))
	for _, group := range keywordGroupOrder {
		kws := grouped[group]
		if len(kws) == 0 {
			continue
		}
		n := min(len(kws), keywordsPerRecommendation)
		out = append(out, fmt.Sprintf("Add %s keywords: %s", group, strings.Join(kws[:n], ", ")))
	}
	return out
}

// OptimizationTips returns keyword density tips. missingCount is the uncapped
// number of job keywords absent from the resume.
func OptimizationTips(resumeKeywords []string, missingCount int) []string {
	out := make([]string, 0, 2)
	if len(resumeKeywords) < minResumeKeywords {
		out = append(out, "Increase keyword density by including more relevant technical terms")
	}
	if missingCount > manyMissingKeywords {
		out = append(out, "Focus on adding the most important missing keywords first")
	}
	return out
}

// CountMissing returns how many distinct job keywords are absent from resume.
func CountMissing(resume, job []string) int {
	have := toSet(resume)
	n := 0
	for kw := range toSet(job) {
		if _, ok := have[kw]; !ok {
			n++
		}
	}
	return n
}

// AnalyzeFormat checks resume length and whitespace that ATS parsers handle badly.
func AnalyzeFormat(text string) types.FormatReport {
	report := types.FormatReport{
		WordCount: len(strings.Fields(text)),
		Warnings:  []string{},
		Tips:      []string{},
	}

	switch {
	case report.WordCount < minWordCount:
		report.Warnings = append(report.Warnings, "Resume is too short - consider adding more detail")
	case report.WordCount > maxWordCount:
		report.Warnings = append(report.Warnings, "Resume is too long - consider condensing content")
	}

	if strings.Contains(text, "  ") {
		report.Tips = append(report.Tips, "Remove extra spaces for better ATS parsing")
	}
	if strings.Contains(text, "\t") {
		report.Tips = append(report.Tips, "Replace tabs with spaces for better ATS compatibility")
	}
	return report
}

// CriticalIssues returns problems likely to break ATS parsing outright.
func CriticalIssues(text string) []string {
	out := make([]string, 0, 2)
	if strings.Contains(text, "\t") || strings.Contains(text, "  ") {
		out = append(out, "Remove tabs and extra spaces")
	}
	if strings.IndexFunc(text, func(r rune) bool { return r > unicode.MaxASCII }) >= 0 {
		out = append(out, "Remove special characters and symbols")
	}
	return out
}

// RecommendationScore rates how little work the resume needs, from 0 to 100.
// It starts at 100 and deducts for priority, missing sections and missing keywords.
func RecommendationScore(priority string, sections map[types.Category]types.SectionStatus, missingCount int) int {
	score := 100

	switch priority {
	case PriorityHigh:
		score -= 30
	case PriorityMedium:
		score -= 15
	}

	for _, status := range sections {
		if !status.Present {
			score -= 10
		}
	}

	switch {
	case missingCount > manyMissingKeywords:
		score -= 20
	case missingCount > someMissingKeywords:
		score -= 10
	}

	return max(0, min(100, score))
}

// PriorityActions orders the most important fixes: critical issues, then missing
// sections, then keyword recommendations, at most five in total.
func PriorityActions(critical []string, sections map[types.Category]types.SectionStatus, keywordRecs []string) []string {
	out := make([]string, 0, maxPriorityActions)
	out = append(out, critical...)

	for _, cat := range SectionOrder() {
		if len(out) >= maxPriorityActions {
			break
		}
		if status, ok := sections[cat]; ok && !status.Present {
			out = append(out, fmt.Sprintf("Add %s section", cat))
		}
	}

	for _, rec := range keywordRecs {
		if len(out) >= maxPriorityActions {
			break
		}
		out = append(out, rec)
	}

	if len(out) > maxPriorityActions {
		out = out[:maxPriorityActions]
	}
	return out
}

// SectionOrder lists the sections SectionPresence reports, summary first.
func SectionOrder() []types.Category {
	return append([]types.Category{types.SectionSummary}, types.AllCategories()...)
}
