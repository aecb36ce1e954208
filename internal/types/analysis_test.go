package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ScoreRequest
		wantErr bool
	}{
		{"empty texts allowed", ScoreRequest{}, false},
		{"normal", ScoreRequest{ResumeText: "Go developer", JobDescription: "Go role"}, false},
		{"resume at limit", ScoreRequest{ResumeText: strings.Repeat("a", MaxTextLength)}, false},
		{"resume over limit", ScoreRequest{ResumeText: strings.Repeat("a", MaxTextLength+1)}, true},
		{"job over limit", ScoreRequest{JobDescription: strings.Repeat("é", MaxTextLength+1)}, true},
		{"label too long", ScoreRequest{Label: strings.Repeat("x", 201)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBatchScoreRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     BatchScoreRequest
		wantErr bool
	}{
		{"one resume", BatchScoreRequest{Resumes: []string{"resume"}}, false},
		{"nil resumes", BatchScoreRequest{}, true},
		{"empty resumes", BatchScoreRequest{Resumes: []string{}}, true},
		{"too many resumes", BatchScoreRequest{Resumes: make([]string, 51)}, true},
		{"resume over limit", BatchScoreRequest{Resumes: []string{strings.Repeat("a", MaxTextLength+1)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range AllCategories() {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("hobbies").Valid())
}

func TestDocument_Immutable(t *testing.T) {
	tokens := []string{"go", "kubernetes", "go"}
	doc := NewDocument("Go Kubernetes Go", tokens)
	tokens[0] = "changed"

	got := doc.Tokens()
	got[1] = "changed"

	assert.Equal(t, []string{"go", "kubernetes", "go"}, doc.Tokens())
	assert.Equal(t, map[string]int{"go": 2, "kubernetes": 1}, doc.TermCounts())
	assert.Equal(t, 3, doc.Len())
	assert.False(t, doc.IsEmpty())
	assert.True(t, NewDocument("", nil).IsEmpty())
}
