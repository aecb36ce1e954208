package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ErrValidation{Field: "x", Message: "bad"}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("ctx: %w", &ErrValidation{}), http.StatusBadRequest},
		{"not found", &ErrNotFound{ID: uuid.New()}, http.StatusNotFound},
		{"storage", &ErrStorageUnavailable{}, http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrValidation_Error(t *testing.T) {
	err := &ErrValidation{Field: "resume_text", Message: "is required"}
	assert.Equal(t, "validation error: resume_text - is required", err.Error())
}

func TestFromValidator(t *testing.T) {
	req := types.BatchScoreRequest{Resumes: []string{}}
	err := fromValidator(req.Validate())

	var ve *ErrValidation
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "resumes", ve.Field)
	assert.Contains(t, ve.Message, "at least 1")
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "resume_text", toSnakeCase("ResumeText"))
	assert.Equal(t, "resumes[3]", toSnakeCase("Resumes[3]"))
	assert.Equal(t, "label", toSnakeCase("Label"))
}
