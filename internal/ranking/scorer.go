// Package ranking scores a resume against a job description by combining lexical
// (TF-IDF) and semantic (embedding) similarity.
package ranking

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scorer/internal/parsing"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Scorer is the hybrid scoring engine. It holds no per-call state, so one Scorer
// can serve concurrent calls as long as its Embedder is safe for concurrent use.
type Scorer struct {
	embedder  Embedder
	weights   Weights
	extractor *parsing.Extractor
	logger    *zap.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithWeights overrides the default lexical/semantic split. Invalid weights are ignored.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		if w.Validate() == nil {
			s.weights = w
		}
	}
}

// WithExtractor replaces the default category extractor.
func WithExtractor(e *parsing.Extractor) Option {
	return func(s *Scorer) {
		if e != nil {
			s.extractor = e
		}
	}
}

// WithLogger sets the logger used to report degraded scoring.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scorer) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewScorer creates a Scorer. A nil embedder is allowed; every call is then
// scored lexically and flagged as semantic-degraded.
func NewScorer(embedder Embedder, opts ...Option) *Scorer {
	s := &Scorer{
		embedder:  embedder,
		weights:   DefaultWeights(),
		extractor: parsing.DefaultExtractor(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights returns the configured lexical/semantic split.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Extractor returns the category extractor used by the Scorer.
func (s *Scorer) Extractor() *parsing.Extractor {
	return s.extractor
}

// Score rates how well resumeText matches jobText. It always returns a breakdown;
// an unavailable embedding capability is reported through SemanticDegraded.
func (s *Scorer) Score(ctx context.Context, resumeText, jobText string) types.ScoreBreakdown {
	resume := parsing.Normalize(resumeText)
	job := parsing.Normalize(jobText)
	spans := s.extractor.Extract(resumeText)

	overall := Similarity{Lexical: LexicalSimilarity(resume, job)}
	categories := make(map[types.Category]Similarity, len(spans))
	for _, cat := range types.AllCategories() {
		categories[cat] = Similarity{Lexical: LexicalSimilarity(spans[cat].Document, job)}
	}

	degraded := false
	if err := s.scoreSemantic(ctx, resume, job, spans, &overall, categories); err != nil {
		degraded = true
		if s.embedder != nil {
			s.logger.Warn("semantic scoring unavailable, using lexical score only", zap.Error(err))
		} else {
			s.logger.Debug("no embedder configured, using lexical score only")
		}
	}

	return Combine(s.weights, overall, categories, degraded)
}

// scoreSemantic fills in the semantic side of every similarity pair. All texts of
// the call are embedded through one cache, so each document is embedded once.
func (s *Scorer) scoreSemantic(
	ctx context.Context,
	resume, job types.Document,
	spans map[types.Category]types.CategorySpan,
	overall *Similarity,
	categories map[types.Category]Similarity,
) error {
	if s.embedder == nil {
		return unavailable(errNoEmbedder)
	}
	// Nothing to compare against: every semantic similarity is 0, not a failure.
	if job.IsEmpty() || resume.IsEmpty() {
		return nil
	}

	texts := []string{embeddingText(resume), embeddingText(job)}
	for _, cat := range types.AllCategories() {
		if doc := spans[cat].Document; !doc.IsEmpty() {
			texts = append(texts, embeddingText(doc))
		}
	}

	cache := newEmbeddingCache(s.embedder)
	if err := cache.load(ctx, texts...); err != nil {
		return err
	}

	jobText := embeddingText(job)
	overall.Semantic = cache.similarity(embeddingText(resume), jobText)
	for _, cat := range types.AllCategories() {
		doc := spans[cat].Document
		if doc.IsEmpty() {
			continue
		}
		sim := categories[cat]
		sim.Semantic = cache.similarity(embeddingText(doc), jobText)
		categories[cat] = sim
	}
	return nil
}

// ScoreBatch scores several resumes against one job description. Calls are
// independent and run concurrently, at most limit at a time (unbounded when
// limit <= 0). Results are returned in input order.
func (s *Scorer) ScoreBatch(ctx context.Context, jobText string, resumes []string, limit int) []types.ScoreBreakdown {
	results := make([]types.ScoreBreakdown, len(resumes))

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, resume := range resumes {
		i, resume := i, resume
		g.Go(func() error {
			results[i] = s.Score(gCtx, resume, jobText)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
