package types

// Scoring methods recorded in a ScoreBreakdown.
const (
	MethodHybrid      = "hybrid"
	MethodLexicalOnly = "lexical_only"
)

// ScoreWeights is the lexical/semantic split used to produce a breakdown.
type ScoreWeights struct {
	Lexical  float64 `json:"lexical"`
	Semantic float64 `json:"semantic"`
}

// ScoreBreakdown is the result of scoring one resume against one job description.
// It is created once per call and owned by the caller afterwards.
type ScoreBreakdown struct {
	Overall          int              `json:"overall"`           // 0-100
	Lexical          float64          `json:"lexical"`           // raw TF-IDF cosine, 0-1
	Semantic         float64          `json:"semantic"`          // raw embedding cosine, 0-1
	Categories       map[Category]int `json:"categories"`        // 0-100 per category
	SemanticDegraded bool             `json:"semantic_degraded"` // embedding capability was unavailable
	Method           string           `json:"method"`            // hybrid or lexical_only
	Weights          ScoreWeights     `json:"weights"`           // weights actually applied
}

// CategoryScore returns the score for a category, 0 when absent.
func (b ScoreBreakdown) CategoryScore(c Category) int {
	return b.Categories[c]
}
