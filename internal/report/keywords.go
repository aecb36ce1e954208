// Package report builds keyword analysis and improvement recommendations around a score.
package report

import (
	"math"
	"sort"
	"unicode"

	"github.com/jonathan/ats-scorer/internal/parsing"
)

// DefaultTopK is the number of keywords kept per document.
const DefaultTopK = 20

// MaxMissingKeywords caps the missing keyword list.
const MaxMissingKeywords = 10

const minKeywordLength = 3

// ExtractKeywords returns the topK most frequent keywords of text: normalized,
// alphabetic, non-stopword tokens of at least three letters. Ties keep the order
// of first occurrence. topK <= 0 uses DefaultTopK.
func ExtractKeywords(text string, topK int) []string {
	if topK <= 0 {
		topK = DefaultTopK
	}

	freq := make(map[string]int)
	order := make([]string, 0)
	for _, token := range parsing.Tokenize(text) {
		if !isKeyword(token) {
			continue
		}
		if freq[token] == 0 {
			order = append(order, token)
		}
		freq[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > topK {
		order = order[:topK]
	}
	return order
}

func isKeyword(token string) bool {
	if len([]rune(token)) < minKeywordLength {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// MissingKeywords returns job keywords that do not appear among the resume
// keywords, in job order, at most limit of them. limit <= 0 uses MaxMissingKeywords.
func MissingKeywords(resume, job []string, limit int) []string {
	if limit <= 0 {
		limit = MaxMissingKeywords
	}

	have := toSet(resume)
	missing := make([]string, 0, limit)
	for _, kw := range job {
		if len(missing) == limit {
			break
		}
		if _, ok := have[kw]; !ok {
			missing = append(missing, kw)
		}
	}
	return missing
}

// KeywordCoverage returns the percentage of distinct job keywords present in the
// resume keywords, rounded to two decimals. It is 0 when job has no keywords.
func KeywordCoverage(resume, job []string) float64 {
	jobSet := toSet(job)
	if len(jobSet) == 0 {
		return 0
	}

	have := toSet(resume)
	overlap := 0
	for kw := range jobSet {
		if _, ok := have[kw]; ok {
			overlap++
		}
	}

	pct := float64(overlap) / float64(len(jobSet)) * 100
	return math.Round(pct*100) / 100
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
