package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-scorer/internal/parsing"
)

func TestLexicalSimilarity_Identical(t *testing.T) {
	doc := parsing.Normalize("Senior Go engineer building distributed systems with Kubernetes")
	assert.InDelta(t, 1.0, LexicalSimilarity(doc, doc), 1e-9)
}

func TestLexicalSimilarity_Symmetric(t *testing.T) {
	a := parsing.Normalize("Python developer with Django and PostgreSQL experience")
	b := parsing.Normalize("We need a Python engineer familiar with PostgreSQL and AWS")

	assert.Equal(t, LexicalSimilarity(a, b), LexicalSimilarity(b, a))
}

func TestLexicalSimilarity_NoOverlap(t *testing.T) {
	a := parsing.Normalize("gardening watercolor pottery")
	b := parsing.Normalize("kubernetes terraform golang")

	assert.Equal(t, 0.0, LexicalSimilarity(a, b))
}

func TestLexicalSimilarity_Empty(t *testing.T) {
	empty := parsing.Normalize("")
	stopwordsOnly := parsing.Normalize("the and of")
	doc := parsing.Normalize("golang microservices")

	assert.Equal(t, 0.0, LexicalSimilarity(empty, doc))
	assert.Equal(t, 0.0, LexicalSimilarity(doc, empty))
	assert.Equal(t, 0.0, LexicalSimilarity(stopwordsOnly, doc))
	assert.Equal(t, 0.0, LexicalSimilarity(empty, empty))
}

func TestLexicalSimilarity_PartialOverlapInRange(t *testing.T) {
	a := parsing.Normalize("golang kubernetes docker")
	b := parsing.Normalize("golang python java")

	sim := LexicalSimilarity(a, b)
	assert.Greater(t, sim, 0.0)
	assert.Less(t, sim, 1.0)
}

func TestLexicalSimilarity_MoreOverlapScoresHigher(t *testing.T) {
	job := parsing.Normalize("golang kubernetes docker terraform")
	close := parsing.Normalize("golang kubernetes docker")
	far := parsing.Normalize("golang cooking painting")

	assert.Greater(t, LexicalSimilarity(close, job), LexicalSimilarity(far, job))
}

func TestLexicalSimilarity_IndependentOfCallHistory(t *testing.T) {
	a := parsing.Normalize("rust systems programming")
	b := parsing.Normalize("rust embedded programming")

	first := LexicalSimilarity(a, b)
	_ = LexicalSimilarity(parsing.Normalize("completely unrelated corpus text"), b)
	assert.Equal(t, first, LexicalSimilarity(a, b))
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"negative", -0.2, 0},
		{"zero", 0, 0},
		{"inside", 0.42, 0.42},
		{"one", 1, 1},
		{"overshoot", 1.0000000002, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clamp01(tt.in))
		})
	}
}
