package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/parsing"
	"github.com/jonathan/ats-scorer/internal/types"
)

func TestSuggestions_Bands(t *testing.T) {
	tests := []struct {
		score    int
		headline string
		withTips bool
	}{
		{0, "Critical: Resume needs significant improvement", true},
		{29, "Critical: Resume needs significant improvement", true},
		{30, "Moderate: Resume needs improvement", true},
		{49, "Moderate: Resume needs improvement", true},
		{50, "Good: Resume is well-aligned but could improve", true},
		{59, "Good: Resume is well-aligned but could improve", true},
		{60, "Good: Resume is well-aligned but could improve", false},
		{70, "Excellent: Resume is very well-aligned", false},
		{100, "Excellent: Resume is very well-aligned", false},
	}
	for _, tt := range tests {
		got := Suggestions(tt.score, nil, false)
		require.NotEmpty(t, got)
		assert.Equal(t, tt.headline, got[0], "score %d", tt.score)
		if tt.withTips {
			assert.Equal(t, generalTips, got[1:], "score %d", tt.score)
		} else {
			assert.Len(t, got, 1, "score %d", tt.score)
		}
	}
}

func TestSuggestions_MissingKeywordsListsFirstFive(t *testing.T) {
	missing := []string{"kubernetes", "terraform", "grpc", "kafka", "redis", "spark"}

	got := Suggestions(80, missing, false)

	require.Len(t, got, 2)
	assert.Equal(t, "Add missing keywords: kubernetes, terraform, grpc, kafka, redis", got[1])
}

func TestSuggestions_Degraded(t *testing.T) {
	got := Suggestions(80, nil, true)

	require.Len(t, got, 2)
	assert.Contains(t, got[1], "semantic matching was unavailable")
}

func TestPriority(t *testing.T) {
	assert.Equal(t, PriorityHigh, Priority(0))
	assert.Equal(t, PriorityHigh, Priority(29))
	assert.Equal(t, PriorityMedium, Priority(30))
	assert.Equal(t, PriorityMedium, Priority(59))
	assert.Equal(t, PriorityLow, Priority(60))
	assert.Equal(t, PriorityLow, Priority(100))
}

func TestSectionPresence(t *testing.T) {
	spans := parsing.DefaultExtractor().Extract("Skills: Go, SQL\n\nExperience\nBackend engineer at Acme")

	got := SectionPresence(spans, false)

	require.Len(t, got, 4)
	assert.True(t, got[types.CategorySkills].Present)
	assert.Empty(t, got[types.CategorySkills].Recommendations)
	assert.True(t, got[types.CategoryExperience].Present)
	assert.False(t, got[types.CategoryEducation].Present)
	assert.Equal(t, []string{"Add a section covering education"}, got[types.CategoryEducation].Recommendations)
	assert.False(t, got[types.SectionSummary].Present)
	assert.Equal(t, []string{"Add a professional summary section"}, got[types.SectionSummary].Recommendations)
}

func TestSectionPresence_WithSummary(t *testing.T) {
	text := "Professional Summary\nBackend engineer\n\nEducation\nBSc"
	extractor := parsing.DefaultExtractor()

	got := SectionPresence(extractor.Extract(text), extractor.HasSummary(text))

	assert.True(t, got[types.SectionSummary].Present)
	assert.Empty(t, got[types.SectionSummary].Recommendations)
	assert.True(t, got[types.CategoryEducation].Present)
	assert.False(t, got[types.CategorySkills].Present)
}
