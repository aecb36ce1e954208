package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/ats-scorer/internal/ranking"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Analyzer wraps a Scorer and builds a full Analysis for each resume.
type Analyzer struct {
	scorer *ranking.Scorer
	topK   int
	now    func() time.Time
}

// NewAnalyzer creates an Analyzer. topK <= 0 uses DefaultTopK.
func NewAnalyzer(scorer *ranking.Scorer, topK int) *Analyzer {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Analyzer{scorer: scorer, topK: topK, now: time.Now}
}

// Scorer returns the underlying scorer.
func (a *Analyzer) Scorer() *ranking.Scorer {
	return a.scorer
}

// Analyze scores resumeText against jobText and adds keyword analysis,
// section detection and recommendations.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText, label string) types.Analysis {
	breakdown := a.scorer.Score(ctx, resumeText, jobText)
	return a.build(breakdown, resumeText, ExtractKeywords(jobText, a.topK), label)
}

// AnalyzeBatch analyzes several resumes against one job description, returning
// results in input order. limit bounds concurrent scoring calls.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, jobText string, resumes []string, limit int) []types.Analysis {
	breakdowns := a.scorer.ScoreBatch(ctx, jobText, resumes, limit)
	jobKeywords := ExtractKeywords(jobText, a.topK)

	out := make([]types.Analysis, len(resumes))
	for i, resume := range resumes {
		out[i] = a.build(breakdowns[i], resume, jobKeywords, "")
	}
	return out
}

func (a *Analyzer) build(breakdown types.ScoreBreakdown, resumeText string, jobKeywords []string, label string) types.Analysis {
	resumeKeywords := ExtractKeywords(resumeText, a.topK)
	missing := MissingKeywords(resumeKeywords, jobKeywords, MaxMissingKeywords)
	missingCount := CountMissing(resumeKeywords, jobKeywords)
	grouped := GroupKeywords(missing)
	keywordRecs := KeywordRecommendations(grouped)

	extractor := a.scorer.Extractor()
	sections := SectionPresence(extractor.Extract(resumeText), extractor.HasSummary(resumeText))
	priority := Priority(breakdown.Overall)
	critical := CriticalIssues(resumeText)

	return types.Analysis{
		ID:        uuid.New(),
		CreatedAt: a.now().UTC(),
		Label:     label,
		Breakdown: breakdown,
		Keywords: types.KeywordReport{
			ResumeKeywords:   resumeKeywords,
			JobKeywords:      jobKeywords,
			MissingKeywords:  missing,
			MissingCount:     missingCount,
			Coverage:         KeywordCoverage(resumeKeywords, jobKeywords),
			MissingByGroup:   grouped,
			Recommendations:  keywordRecs,
			OptimizationTips: OptimizationTips(resumeKeywords, missingCount),
		},
		Sections:            sections,
		Suggestions:         Suggestions(breakdown.Overall, missing, breakdown.SemanticDegraded),
		Priority:            priority,
		Format:              AnalyzeFormat(resumeText),
		CriticalIssues:      critical,
		RecommendationScore: RecommendationScore(priority, sections, missingCount),
		PriorityActions:     PriorityActions(critical, sections, keywordRecs),
	}
}
