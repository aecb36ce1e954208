package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", ""},
		{"Whitespace only", "  \t\n  ", ""},
		{"Lower-cases", "Senior GO Engineer", "senior go engineer"},
		{"Strips punctuation", "Python, SQL; (AWS)!", "python sql aws"},
		{"Keeps internal hyphen", "Full-Stack developer", "full-stack developer"},
		{"Drops leading and trailing hyphens", "-remote- role", "remote role"},
		{"Drops dangling hyphen", "front - end", "front end"},
		{"Collapses whitespace", "a   b\n\nc\t d", "a b c d"},
		{"Keeps digits", "5+ years, Go 1.22", "5 years go 1 22"},
		{"Unicode letters", "Développeur Zürich", "développeur zürich"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestTokenize_RemovesStopwordsAndKeepsOrder(t *testing.T) {
	tokens := Tokenize("The engineer will build a full-stack platform with Go and React")
	assert.Equal(t, []string{"engineer", "build", "full-stack", "platform", "go", "react"}, tokens)
}

func TestTokenize_OnlyStopwords(t *testing.T) {
	assert.Empty(t, Tokenize("and the of to a"))
}

func TestNormalize(t *testing.T) {
	t.Run("empty input is valid", func(t *testing.T) {
		doc := Normalize("")
		assert.True(t, doc.IsEmpty())
		assert.Equal(t, 0, doc.Len())
		assert.Equal(t, "", doc.Raw())
	})

	t.Run("keeps raw text", func(t *testing.T) {
		raw := "Skills: Python, SQL"
		doc := Normalize(raw)
		assert.Equal(t, raw, doc.Raw())
		assert.Equal(t, []string{"skills", "python", "sql"}, doc.Tokens())
	})

	t.Run("tokens are a copy", func(t *testing.T) {
		doc := Normalize("kubernetes terraform")
		tokens := doc.Tokens()
		tokens[0] = "mutated"
		assert.Equal(t, []string{"kubernetes", "terraform"}, doc.Tokens())
	})

	t.Run("deterministic", func(t *testing.T) {
		raw := "Led a team of 5 engineers building data pipelines in Go."
		assert.Equal(t, Normalize(raw), Normalize(raw))
	})
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("don"))
	assert.False(t, IsStopword("python"))
	assert.False(t, IsStopword("The"), "stopword lookup expects lower-cased tokens")
}
