// Package parsing turns raw resume and job description text into normalized documents
// and locates category sections inside resumes.
package parsing

import (
	"strings"
	"unicode"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Normalize builds a Document from raw text. Empty or whitespace-only input
// yields a Document with no tokens.
func Normalize(raw string) types.Document {
	return types.NewDocument(raw, Tokenize(raw))
}

// Tokenize returns the normalized token sequence for raw text, in original order:
// lower-cased, stripped of punctuation (internal hyphens kept), split on whitespace,
// with stopwords removed.
func Tokenize(raw string) []string {
	cleaned := CleanText(raw)
	if cleaned == "" {
		return nil
	}

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if IsStopword(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// CleanText lower-cases text, replaces every non-alphanumeric rune with a space
// except hyphens joining two alphanumerics ("full-stack"), and collapses whitespace.
func CleanText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	runes := []rune(strings.ToLower(raw))
	var sb strings.Builder
	sb.Grow(len(runes))

	for i, r := range runes {
		switch {
		case isWordRune(r):
			sb.WriteRune(r)
		case r == '-' && i > 0 && i < len(runes)-1 && isWordRune(runes[i-1]) && isWordRune(runes[i+1]):
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
