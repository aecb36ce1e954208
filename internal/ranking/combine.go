package ranking

import (
	"fmt"
	"math"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Default weighting between the lexical and semantic similarity. The semantic
// matcher is more expensive but more discriminative, so it carries more weight.
// The split is a tunable, reviewable setting; override it with WithWeights.
const (
	DefaultLexicalWeight  = 0.4
	DefaultSemanticWeight = 0.6
)

const weightTolerance = 1e-9

// Weights is the lexical/semantic split. Both are in [0,1] and sum to 1.
type Weights struct {
	Lexical  float64
	Semantic float64
}

// DefaultWeights returns the default lexical/semantic split.
func DefaultWeights() Weights {
	return Weights{Lexical: DefaultLexicalWeight, Semantic: DefaultSemanticWeight}
}

// Validate checks that both weights are in [0,1] and sum to 1.
func (w Weights) Validate() error {
	if w.Lexical < 0 || w.Lexical > 1 {
		return fmt.Errorf("lexical weight %v out of range [0,1]", w.Lexical)
	}
	if w.Semantic < 0 || w.Semantic > 1 {
		return fmt.Errorf("semantic weight %v out of range [0,1]", w.Semantic)
	}
	if math.Abs(w.Lexical+w.Semantic-1) > weightTolerance {
		return fmt.Errorf("weights must sum to 1, got %v", w.Lexical+w.Semantic)
	}
	return nil
}

// Effective returns the weights to apply for a call: all weight moves to the
// lexical side when the semantic matcher was unavailable.
func (w Weights) Effective(semanticDegraded bool) Weights {
	if semanticDegraded {
		return Weights{Lexical: 1, Semantic: 0}
	}
	return w
}

// Similarity is a lexical/semantic similarity pair, both in [0,1].
type Similarity struct {
	Lexical  float64
	Semantic float64
}

// WeightedScore maps a similarity pair to an integer score in [0,100]:
// round-half-to-even(100 × (wL·lexical + wS·semantic)).
func WeightedScore(w Weights, s Similarity) int {
	weighted := w.Lexical*clamp01(s.Lexical) + w.Semantic*clamp01(s.Semantic)
	score := math.RoundToEven(100 * weighted)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}

// Combine merges the overall similarity pair and the per-category pairs into a
// ScoreBreakdown. Every category is present in the result; a category missing
// from categories scores 0. When semanticDegraded is set the lexical side carries
// all the weight and the breakdown is flagged.
func Combine(w Weights, overall Similarity, categories map[types.Category]Similarity, semanticDegraded bool) types.ScoreBreakdown {
	applied := w.Effective(semanticDegraded)
	if semanticDegraded {
		overall.Semantic = 0
	}

	scores := make(map[types.Category]int, len(types.AllCategories()))
	for _, cat := range types.AllCategories() {
		sim, ok := categories[cat]
		if !ok {
			scores[cat] = 0
			continue
		}
		scores[cat] = WeightedScore(applied, sim)
	}

	method := types.MethodHybrid
	if semanticDegraded {
		method = types.MethodLexicalOnly
	}

	return types.ScoreBreakdown{
		Overall:          WeightedScore(applied, overall),
		Lexical:          clamp01(overall.Lexical),
		Semantic:         clamp01(overall.Semantic),
		Categories:       scores,
		SemanticDegraded: semanticDegraded,
		Method:           method,
		Weights:          types.ScoreWeights{Lexical: applied.Lexical, Semantic: applied.Semantic},
	}
}
