package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		topK int
		want []string
	}{
		{
			name: "frequency then first occurrence",
			text: "Python developer. Python and Django. Django REST python",
			topK: 10,
			want: []string{"python", "django", "developer", "rest"},
		},
		{
			name: "drops short, numeric and stopword tokens",
			text: "Go is a language; we use k8s and AWS in 2024 with the team",
			topK: 10,
			want: []string{"language", "use", "aws", "team"},
		},
		{
			name: "hyphenated tokens are not alphabetic",
			text: "cross-functional teams",
			topK: 10,
			want: []string{"teams"},
		},
		{
			name: "topK limit",
			text: "alpha beta gamma delta",
			topK: 2,
			want: []string{"alpha", "beta"},
		},
		{
			name: "empty",
			text: "",
			topK: 5,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.text, tt.topK))
		})
	}
}

func TestExtractKeywords_DefaultTopK(t *testing.T) {
	text := ""
	for _, w := range []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel",
		"india", "juliet", "kilo", "lima", "mike", "november", "oscar", "papa",
		"quebec", "romeo", "sierra", "tango", "uniform", "victor",
	} {
		text += w + " "
	}
	assert.Len(t, ExtractKeywords(text, 0), DefaultTopK)
}

func TestMissingKeywords(t *testing.T) {
	resume := []string{"golang", "docker"}
	job := []string{"golang", "kubernetes", "docker", "terraform"}

	assert.Equal(t, []string{"kubernetes", "terraform"}, MissingKeywords(resume, job, 0))
	assert.Equal(t, []string{"kubernetes"}, MissingKeywords(resume, job, 1))
	assert.Empty(t, MissingKeywords(job, job, 0))
}

func TestMissingKeywords_CapsAtTen(t *testing.T) {
	job := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9", "a10", "a11", "a12"}
	assert.Len(t, MissingKeywords(nil, job, 0), MaxMissingKeywords)
}

func TestKeywordCoverage(t *testing.T) {
	tests := []struct {
		name   string
		resume []string
		job    []string
		want   float64
	}{
		{"full", []string{"go", "sql"}, []string{"go", "sql"}, 100},
		{"none", []string{"java"}, []string{"go", "sql"}, 0},
		{"third", []string{"go"}, []string{"go", "sql", "aws"}, 33.33},
		{"two thirds", []string{"go", "sql"}, []string{"go", "sql", "aws"}, 66.67},
		{"empty job", []string{"go"}, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeywordCoverage(tt.resume, tt.job))
		})
	}
}
