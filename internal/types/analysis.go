package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxTextLength is the largest resume or job description accepted from callers.
const MaxTextLength = 100000

// SectionStatus records whether a resume section was detected.
type SectionStatus struct {
	Present         bool     `json:"present"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// KeywordReport summarizes keyword overlap between a resume and a job description.
type KeywordReport struct {
	ResumeKeywords   []string            `json:"resume_keywords"`
	JobKeywords      []string            `json:"job_keywords"`
	MissingKeywords  []string            `json:"missing_keywords"`
	MissingCount     int                 `json:"missing_count"`    // all missing job keywords, uncapped
	Coverage         float64             `json:"keyword_coverage"` // percentage, 0-100
	MissingByGroup   map[string][]string `json:"missing_by_group"` // technical, action_verbs, soft_skills, quantifiers, other
	Recommendations  []string            `json:"recommendations"`
	OptimizationTips []string            `json:"optimization_tips"`
}

// FormatReport flags layout problems that hurt ATS parsing.
type FormatReport struct {
	WordCount int      `json:"word_count"`
	Warnings  []string `json:"warnings"`
	Tips      []string `json:"tips"`
}

// Analysis is a scored resume plus the keyword report and recommendations built around it.
type Analysis struct {
	ID          uuid.UUID                  `json:"id"`
	CreatedAt   time.Time                  `json:"created_at"`
	Label       string                     `json:"label,omitempty"`
	Breakdown   ScoreBreakdown             `json:"breakdown"`
	Keywords    KeywordReport              `json:"keywords"`
	Sections    map[Category]SectionStatus `json:"sections"`
	Suggestions []string                   `json:"suggestions"`
	Priority    string                     `json:"priority"`

	Format              FormatReport `json:"format"`
	CriticalIssues      []string     `json:"critical_issues"`
	RecommendationScore int          `json:"recommendation_score"` // 0-100, 100 means nothing to fix
	PriorityActions     []string     `json:"priority_actions"`
}

// ScoreRequest is the request body for scoring one resume.
type ScoreRequest struct {
	ResumeText     string `json:"resume_text" validate:"max=100000"`
	JobDescription string `json:"job_description" validate:"max=100000"`
	Label          string `json:"label,omitempty" validate:"max=200"`
	Save           bool   `json:"save,omitempty"`
}

// BatchScoreRequest is the request body for scoring many resumes against one job description.
type BatchScoreRequest struct {
	JobDescription string   `json:"job_description" validate:"max=100000"`
	Resumes        []string `json:"resumes" validate:"required,min=1,max=50,dive,max=100000"`
	Save           bool     `json:"save,omitempty"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchScoreRequest using the validator.
func (r *BatchScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
