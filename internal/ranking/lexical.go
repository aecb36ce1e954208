package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/ats-scorer/internal/types"
)

// vocabulary is the shared term space of a single lexical comparison. It is built
// fresh for every call so that scores never depend on previously analyzed documents.
type vocabulary struct {
	terms []string       // sorted, fixes summation order
	df    map[string]int // document frequency within the call's corpus
	n     int            // corpus size
}

func newVocabulary(docs ...types.Document) *vocabulary {
	df := make(map[string]int)
	for _, doc := range docs {
		for term := range doc.TermCounts() {
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	return &vocabulary{terms: terms, df: df, n: len(docs)}
}

func (v *vocabulary) size() int {
	return len(v.terms)
}

// idf is the smoothed inverse document frequency ln((1+n)/(1+df)) + 1.
// The +1 keeps terms shared by every document in the corpus from weighing zero.
func (v *vocabulary) idf(term string) float64 {
	return math.Log(float64(1+v.n)/float64(1+v.df[term])) + 1
}

// vectorize returns the L2-normalized TF-IDF vector of doc over the vocabulary.
func (v *vocabulary) vectorize(doc types.Document) types.TermVector {
	counts := doc.TermCounts()
	vec := make(types.TermVector, len(counts))

	norm := 0.0
	for _, term := range v.terms {
		tf, ok := counts[term]
		if !ok {
			continue
		}
		w := float64(tf) * v.idf(term)
		vec[term] = w
		norm += w * w
	}

	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}

// cosine returns the dot product of two normalized vectors, summed in vocabulary order.
func (v *vocabulary) cosine(a, b types.TermVector) float64 {
	sum := 0.0
	for _, term := range v.terms {
		sum += a[term] * b[term]
	}
	return sum
}

// LexicalSimilarity returns the TF-IDF cosine similarity of two documents in [0,1].
// IDF is computed over the two-document corpus {a, b}. Empty documents score 0.
func LexicalSimilarity(a, b types.Document) float64 {
	if a.IsEmpty() || b.IsEmpty() {
		return 0.0
	}

	vocab := newVocabulary(a, b)
	if vocab.size() == 0 {
		return 0.0
	}

	return clamp01(vocab.cosine(vocab.vectorize(a), vocab.vectorize(b)))
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0.0
	}
	if x > 1 {
		return 1.0
	}
	return x
}
