// Package types provides type definitions for structured data used throughout the ats-scorer system.
package types

// Document is a piece of raw text together with its normalized token sequence.
// A Document is immutable once built; Tokens returns a copy.
type Document struct {
	raw    string
	tokens []string
}

// NewDocument builds a Document from raw text and the tokens produced for it.
// The token slice is copied.
func NewDocument(raw string, tokens []string) Document {
	cp := make([]string, len(tokens))
	copy(cp, tokens)
	return Document{raw: raw, tokens: cp}
}

// Raw returns the original text the document was built from.
func (d Document) Raw() string {
	return d.raw
}

// Tokens returns a copy of the normalized token sequence, in original order.
func (d Document) Tokens() []string {
	cp := make([]string, len(d.tokens))
	copy(cp, d.tokens)
	return cp
}

// Len returns the number of tokens.
func (d Document) Len() int {
	return len(d.tokens)
}

// IsEmpty reports whether the document has no tokens left after normalization.
func (d Document) IsEmpty() bool {
	return len(d.tokens) == 0
}

// TermCounts returns the raw frequency of every token in the document.
func (d Document) TermCounts() map[string]int {
	counts := make(map[string]int, len(d.tokens))
	for _, t := range d.tokens {
		counts[t]++
	}
	return counts
}

// TermVector maps a vocabulary term to a non-negative weight.
type TermVector map[string]float64

// EmbeddingVector is a fixed-length semantic vector produced by an embedding model.
type EmbeddingVector []float32
